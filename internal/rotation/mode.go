package rotation

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMode = errors.New("invalid execution mode")

// Mode selects whether stale keys are actually deleted.
type Mode string

const (
	ModeDryRun Mode = "dry-run"
	ModeApply  Mode = "apply"
)

// ParseMode accepts "dry-run" or "apply" in any case. Empty means dry-run.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeDryRun:
		return ModeDryRun, nil
	case ModeApply:
		return ModeApply, nil
	default:
		return "", fmt.Errorf("%w %q: want %q or %q", ErrInvalidMode, s, ModeDryRun, ModeApply)
	}
}
