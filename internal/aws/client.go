package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	awsiam "tasnim.dev/aws-key-rotator/internal/aws/iam"
	awssns "tasnim.dev/aws-key-rotator/internal/aws/sns"
)

// ServiceClient bundles the adapters the rotation job talks to.
type ServiceClient struct {
	IAM       *awsiam.Client
	SNS       *awssns.Client
	AccountID string
}

func NewServiceClient(ctx context.Context, profile, region string) (*ServiceClient, error) {
	cfg, err := LoadConfig(ctx, profile, region)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &ServiceClient{
		IAM:       awsiam.NewClient(iam.NewFromConfig(cfg)),
		SNS:       awssns.NewClient(sns.NewFromConfig(cfg)),
		AccountID: GetAccountID(ctx, cfg),
	}, nil
}
