package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	awsclient "tasnim.dev/aws-key-rotator/internal/aws"
	"tasnim.dev/aws-key-rotator/internal/config"
	"tasnim.dev/aws-key-rotator/internal/job"
	"tasnim.dev/aws-key-rotator/internal/rotation"
)

// jobFlags are the flags shared by commands that run against an AWS account.
type jobFlags struct {
	profile    string
	region     string
	topicARN   string
	maxAgeDays int
	apply      bool
	debug      bool
}

func (f *jobFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "AWS profile to use")
	cmd.Flags().StringVarP(&f.region, "region", "r", "", "AWS region to use")
	cmd.Flags().IntVar(&f.maxAgeDays, "max-age-days", 0, "delete keys older than this many days (env - MAX_NUMBER_OF_DAYS)")
	cmd.Flags().StringVar(&f.topicARN, "topic-arn", "", "SNS topic to notify (env - SNS_TOPIC_ARN)")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "enable debug logging")
}

// load reads the config file and environment, then applies flags on top.
func (f *jobFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	f.applyTo(cmd, cfg)
	return cfg, nil
}

func (f *jobFlags) applyTo(cmd *cobra.Command, cfg *config.Config) {
	f.profile, f.region = cfg.Merge(f.profile, f.region)
	if cmd.Flags().Changed("max-age-days") {
		cfg.MaxAgeDays = f.maxAgeDays
	}
	if f.topicARN != "" {
		cfg.TopicARN = f.topicARN
	}
	if f.apply {
		cfg.Mode = string(rotation.ModeApply)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func buildJob(ctx context.Context, cfg *config.Config, profile, region string, log *zap.Logger) (*job.Job, error) {
	client, err := awsclient.NewServiceClient(ctx, profile, region)
	if err != nil {
		return nil, fmt.Errorf("initializing AWS client: %w", err)
	}
	return job.New(cfg, job.Deps{
		Reports:   client.IAM,
		Keys:      client.IAM,
		Publisher: client.SNS,
		AccountID: client.AccountID,
	}, log)
}
