package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tasnim.dev/aws-key-rotator/internal/config"
	"tasnim.dev/aws-key-rotator/internal/job"
)

type jobRunner interface {
	Run(ctx context.Context) (job.Result, error)
}

// NewLambdaCmd starts the Lambda runtime loop. Configuration comes from the
// function's environment only.
func NewLambdaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Serve scheduled rotation events as an AWS Lambda function",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}

			cfg := config.Default()
			if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
				return fmt.Errorf("reading environment: %w", err)
			}
			if err := cfg.Validate(true); err != nil {
				return err
			}

			j, err := buildJob(context.Background(), cfg, "", "", log)
			if err != nil {
				return err
			}

			lambda.Start(newLambdaHandler(j, log))
			return nil
		},
	}
}

func newLambdaHandler(j jobRunner, log *zap.Logger) func(context.Context, events.CloudWatchEvent) (job.Result, error) {
	return func(ctx context.Context, event events.CloudWatchEvent) (job.Result, error) {
		fields := []zap.Field{
			zap.String("event_id", event.ID),
			zap.String("source", event.Source),
			zap.Time("scheduled_at", event.Time),
		}
		if deadline, ok := ctx.Deadline(); ok {
			fields = append(fields, zap.Duration("time_remaining", time.Until(deadline)))
		}
		log.Info("rotation invocation", fields...)

		result, err := j.Run(ctx)
		_ = log.Sync()
		return result, err
	}
}
