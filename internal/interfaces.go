package internal

//go:generate mockgen -destination=../internal/mocks/interfaces.go -package=mocks -source=../internal/interfaces.go

import (
	"context"

	"tasnim.dev/aws-key-rotator/internal/aws/iam"
)

type ReportSource interface {
	GetCredentialReport(ctx context.Context) (iam.CredentialReport, error)
	GenerateCredentialReport(ctx context.Context) (string, error)
}

type KeyLister interface {
	ListAccessKeys(ctx context.Context, userName string) ([]iam.AccessKey, error)
}

type KeyDeleter interface {
	DeleteAccessKey(ctx context.Context, userName, keyID string) error
}

type KeyStore interface {
	KeyLister
	KeyDeleter
}

type Publisher interface {
	Publish(ctx context.Context, topicARN, subject, message string) (string, error)
}
