package iam

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsiam "github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
)

// ErrServiceFailure marks a request that IAM rejected with ServiceFailureException.
var ErrServiceFailure = errors.New("iam service failure")

type IAMAPI interface {
	GetCredentialReport(ctx context.Context, params *awsiam.GetCredentialReportInput, optFns ...func(*awsiam.Options)) (*awsiam.GetCredentialReportOutput, error)
	GenerateCredentialReport(ctx context.Context, params *awsiam.GenerateCredentialReportInput, optFns ...func(*awsiam.Options)) (*awsiam.GenerateCredentialReportOutput, error)
	ListAccessKeys(ctx context.Context, params *awsiam.ListAccessKeysInput, optFns ...func(*awsiam.Options)) (*awsiam.ListAccessKeysOutput, error)
	DeleteAccessKey(ctx context.Context, params *awsiam.DeleteAccessKeyInput, optFns ...func(*awsiam.Options)) (*awsiam.DeleteAccessKeyOutput, error)
}

type Client struct {
	api IAMAPI
}

func NewClient(api IAMAPI) *Client {
	return &Client{api: api}
}

// GetCredentialReport fetches the current credential report. The not-ready,
// not-present and expired exceptions are reported through State rather than
// as errors.
func (c *Client) GetCredentialReport(ctx context.Context) (CredentialReport, error) {
	out, err := c.api.GetCredentialReport(ctx, &awsiam.GetCredentialReportInput{})
	if err != nil {
		var notReady *iamtypes.CredentialReportNotReadyException
		var notPresent *iamtypes.CredentialReportNotPresentException
		var expired *iamtypes.CredentialReportExpiredException
		switch {
		case errors.As(err, &notReady):
			return CredentialReport{State: ReportNotReady}, nil
		case errors.As(err, &notPresent):
			return CredentialReport{State: ReportNotPresent}, nil
		case errors.As(err, &expired):
			return CredentialReport{State: ReportExpired}, nil
		}
		return CredentialReport{}, fmt.Errorf("GetCredentialReport: %w", err)
	}

	var generatedAt time.Time
	if out.GeneratedTime != nil {
		generatedAt = *out.GeneratedTime
	}
	return CredentialReport{
		State:       ReportReady,
		Content:     out.Content,
		GeneratedAt: generatedAt,
	}, nil
}

// GenerateCredentialReport asks IAM to start building a new report and
// returns the generation state (STARTED, INPROGRESS or COMPLETE).
func (c *Client) GenerateCredentialReport(ctx context.Context) (string, error) {
	out, err := c.api.GenerateCredentialReport(ctx, &awsiam.GenerateCredentialReportInput{})
	if err != nil {
		return "", fmt.Errorf("GenerateCredentialReport: %w", err)
	}
	return string(out.State), nil
}

// ListAccessKeys returns the user's access keys in the order IAM lists them.
func (c *Client) ListAccessKeys(ctx context.Context, userName string) ([]AccessKey, error) {
	var keys []AccessKey
	var marker *string

	for {
		out, err := c.api.ListAccessKeys(ctx, &awsiam.ListAccessKeysInput{
			UserName: aws.String(userName),
			Marker:   marker,
		})
		if err != nil {
			return nil, fmt.Errorf("ListAccessKeys(%s): %w", userName, err)
		}

		for _, k := range out.AccessKeyMetadata {
			var createdAt time.Time
			if k.CreateDate != nil {
				createdAt = *k.CreateDate
			}
			keys = append(keys, AccessKey{
				ID:        aws.ToString(k.AccessKeyId),
				UserName:  aws.ToString(k.UserName),
				Status:    string(k.Status),
				CreatedAt: createdAt,
			})
		}

		if !out.IsTruncated {
			break
		}
		marker = out.Marker
	}

	return keys, nil
}

func (c *Client) DeleteAccessKey(ctx context.Context, userName, keyID string) error {
	_, err := c.api.DeleteAccessKey(ctx, &awsiam.DeleteAccessKeyInput{
		UserName:    aws.String(userName),
		AccessKeyId: aws.String(keyID),
	})
	if err != nil {
		var sf *iamtypes.ServiceFailureException
		if errors.As(err, &sf) {
			return fmt.Errorf("DeleteAccessKey(%s, %s): %w: %w", userName, keyID, ErrServiceFailure, err)
		}
		return fmt.Errorf("DeleteAccessKey(%s, %s): %w", userName, keyID, err)
	}
	return nil
}
