package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func NewRunCmd() *cobra.Command {
	var flags jobFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Delete access keys older than the threshold and notify SNS",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(true); err != nil {
				return err
			}

			log, err := newLogger(flags.debug)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			ctx := context.Background()
			j, err := buildJob(ctx, cfg, flags.profile, flags.region, log)
			if err != nil {
				return err
			}

			result, runErr := j.Run(ctx)
			if result.StatusCode != 0 {
				out, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			}
			return runErr
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.apply, "apply", false, "delete keys instead of reporting them (env - EXECUTION_MODE=apply)")

	return cmd
}
