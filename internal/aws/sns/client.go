package sns

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSAPI defines the subset of the SNS API we use.
type SNSAPI interface {
	Publish(ctx context.Context, params *awssns.PublishInput, optFns ...func(*awssns.Options)) (*awssns.PublishOutput, error)
}

// Client wraps the SNS API.
type Client struct {
	api SNSAPI
}

// NewClient creates a new SNS client.
func NewClient(api SNSAPI) *Client {
	return &Client{api: api}
}

// Publish sends message to the topic and returns the SNS message ID.
// An empty subject is omitted from the request.
func (c *Client) Publish(ctx context.Context, topicARN, subject, message string) (string, error) {
	in := &awssns.PublishInput{
		TopicArn: aws.String(topicARN),
		Message:  aws.String(message),
	}
	if subject != "" {
		in.Subject = aws.String(subject)
	}

	out, err := c.api.Publish(ctx, in)
	if err != nil {
		return "", fmt.Errorf("Publish(%s): %w", topicARN, err)
	}
	return aws.ToString(out.MessageId), nil
}
