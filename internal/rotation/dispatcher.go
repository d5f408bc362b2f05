package rotation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"tasnim.dev/aws-key-rotator/internal"
	"tasnim.dev/aws-key-rotator/internal/keyage"
)

// Status summarizes what a dispatch did.
type Status int

const (
	OutcomeNoKeys Status = iota
	OutcomeDeleted
	OutcomeDryRun
	OutcomeFailed
)

func (s Status) String() string {
	switch s {
	case OutcomeNoKeys:
		return "no-keys"
	case OutcomeDeleted:
		return "deleted"
	case OutcomeDryRun:
		return "dry-run"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of a dispatch and the text sent to subscribers.
type Outcome struct {
	Status  Status
	Mode    Mode
	Message string
	Deleted []keyage.Candidate
	Failed  []keyage.Candidate
}

// Succeeded reports whether every attempted deletion went through.
func (o Outcome) Succeeded() bool {
	return o.Status != OutcomeFailed
}

// Dispatcher acts on stale keys according to its Mode.
type Dispatcher struct {
	keys internal.KeyDeleter
	mode Mode
	log  *zap.Logger
}

// NewDispatcher creates a dispatcher deleting through keys when mode is ModeApply.
func NewDispatcher(keys internal.KeyDeleter, mode Mode, log *zap.Logger) *Dispatcher {
	return &Dispatcher{keys: keys, mode: mode, log: log}
}

// Mode returns the execution mode chosen at construction.
func (d *Dispatcher) Mode() Mode {
	return d.mode
}

// Dispatch deletes the candidates (apply mode) or only reports them (dry-run)
// and composes the outcome message. Deletion errors are logged and reported
// in the message, never returned.
func (d *Dispatcher) Dispatch(ctx context.Context, candidates []keyage.Candidate, maxAgeDays int) Outcome {
	if len(candidates) == 0 {
		return Outcome{
			Status: OutcomeNoKeys,
			Mode:   d.mode,
			Message: fmt.Sprintf("The access key rotation job ran successfully, but no keys were detected that were older than %d days.\n"+
				"\nNo access keys were deleted.", maxAgeDays),
		}
	}

	if d.mode != ModeApply {
		for _, c := range candidates {
			d.log.Info("dry run: would delete access key",
				zap.String("user", c.User),
				zap.String("key_id", c.KeyID),
				zap.Int("age_days", c.Age))
		}
		return Outcome{
			Status: OutcomeDryRun,
			Mode:   d.mode,
			Message: fmt.Sprintf("The following access keys are older than %d days and would have been deleted (dry run, nothing was deleted):\n%s",
				maxAgeDays, formatKeys(candidates)),
		}
	}

	var deleted, failed []keyage.Candidate
	for _, c := range candidates {
		if err := d.keys.DeleteAccessKey(ctx, c.User, c.KeyID); err != nil {
			fields := []zap.Field{
				zap.String("user", c.User),
				zap.String("key_id", c.KeyID),
				zap.Error(err),
			}
			var apiErr smithy.APIError
			if errors.As(err, &apiErr) {
				fields = append(fields, zap.String("error_code", apiErr.ErrorCode()))
			}
			d.log.Error("failed to delete access key", fields...)
			failed = append(failed, c)
			continue
		}
		d.log.Info("deleted access key",
			zap.String("user", c.User),
			zap.String("key_id", c.KeyID),
			zap.Int("age_days", c.Age))
		deleted = append(deleted, c)
	}

	if len(failed) > 0 {
		msg := fmt.Sprintf("You have keys that are older than %d days, but there was an error deleting them. Please check the logs.", maxAgeDays)
		if len(deleted) > 0 {
			msg += "\n\nThe following access keys were deleted:\n" + formatKeys(deleted)
		}
		msg += "\n\nThe following access keys could not be deleted:\n" + formatKeys(failed)
		return Outcome{Status: OutcomeFailed, Mode: d.mode, Message: msg, Deleted: deleted, Failed: failed}
	}

	return Outcome{
		Status: OutcomeDeleted,
		Mode:   d.mode,
		Message: fmt.Sprintf("The following access keys were older than %d days and have been deleted:\n%s",
			maxAgeDays, formatKeys(deleted)),
		Deleted: deleted,
	}
}

func formatKeys(candidates []keyage.Candidate) string {
	out, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", candidates)
	}
	return string(out)
}
