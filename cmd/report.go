package cmd

import (
	"context"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"tasnim.dev/aws-key-rotator/internal/keyage"
	"tasnim.dev/aws-key-rotator/internal/theme"
	"tasnim.dev/aws-key-rotator/internal/utils"
)

// User, access key, slot, status, created, age.
var reportColumns = []int{24, 22, 4, 12, 10}

func NewReportCmd() *cobra.Command {
	var flags jobFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "List access keys older than the threshold without deleting them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(false); err != nil {
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

			candidates, err := j.Scan(ctx)
			if err != nil {
				return err
			}
			_, err = lipgloss.Fprint(cmd.OutOrStdout(), renderReport(candidates, cfg.MaxAgeDays))
			return err
		},
	}

	flags.register(cmd)

	return cmd
}

func renderReport(candidates []keyage.Candidate, maxAgeDays int) string {
	rb := utils.NewReportBuilder(12, theme.SectionStyle)
	rb.Section("Access key age report")
	rb.Row("Threshold", utils.Days(maxAgeDays))

	if len(candidates) == 0 {
		rb.Row("Stale keys", theme.SuccessStyle.Render("0"))
		rb.Blank()
		rb.WriteString("  " + theme.SuccessStyle.Render("No access keys are older than the threshold.") + "\n")
		return rb.String()
	}

	rb.Row("Stale keys", theme.ErrorStyle.Render(fmt.Sprintf("%d", len(candidates))))
	rb.Blank()
	rb.Columns(reportColumns,
		theme.HeaderStyle.Render("User"),
		theme.HeaderStyle.Render("Access key"),
		theme.HeaderStyle.Render("Slot"),
		theme.HeaderStyle.Render("Status"),
		theme.HeaderStyle.Render("Created"),
		theme.HeaderStyle.Render("Age"))
	for _, c := range candidates {
		age := lipgloss.NewStyle().Foreground(theme.AgeColor(c.Age, maxAgeDays)).Render(utils.Days(c.Age))
		rb.Columns(reportColumns,
			c.User,
			c.KeyID,
			fmt.Sprintf("%d", c.Slot),
			theme.RenderStatus(keyStatus(c)),
			utils.Date(c.CreatedAt),
			age)
	}
	return rb.String()
}

// keyStatus prefers the status IAM listed and falls back to the report's flag.
func keyStatus(c keyage.Candidate) string {
	if c.Status != "" {
		return c.Status
	}
	if c.Active {
		return "Active"
	}
	return "Inactive"
}
