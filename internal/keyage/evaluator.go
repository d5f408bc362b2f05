package keyage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"tasnim.dev/aws-key-rotator/internal"
	"tasnim.dev/aws-key-rotator/internal/aws/iam"
	"tasnim.dev/aws-key-rotator/internal/credreport"
)

const day = 24 * time.Hour

// Listed keys whose creation time is further than this from the report's
// last-rotated value belong to another slot.
const creationSkew = time.Minute

// Layouts accepted for last-rotated timestamps. Values without a zone are UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Candidate is an access key older than the configured threshold.
type Candidate struct {
	KeyID     string    `json:"KeyID"`
	User      string    `json:"User"`
	Age       int       `json:"KeyAge"`
	Slot      int       `json:"-"`
	Active    bool      `json:"-"`
	Status    string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Evaluator selects the access keys that are older than a threshold.
type Evaluator struct {
	keys internal.KeyLister
	log  *zap.Logger
	now  func() time.Time
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithClock replaces time.Now as the reference for key ages.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) {
		e.now = now
	}
}

// NewEvaluator creates an evaluator that looks keys up through keys.
func NewEvaluator(keys internal.KeyLister, log *zap.Logger, opts ...Option) *Evaluator {
	e := &Evaluator{keys: keys, log: log, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SelectStaleKeys returns every key slot whose age in whole days is strictly
// greater than maxAgeDays. Slots with an unparseable last-rotated value are
// skipped. The user's key list is fetched at most once, and only when one of
// their slots is stale.
func (e *Evaluator) SelectStaleKeys(ctx context.Context, rows []credreport.Row, maxAgeDays int) ([]Candidate, error) {
	now := e.now().UTC()
	var candidates []Candidate

	for _, row := range rows {
		if row.User == credreport.RootUser {
			e.warnRootKeys(row, now, maxAgeDays)
			continue
		}

		var keys []iam.AccessKey
		listed := false

		for i, slot := range row.Slots {
			rotated, err := ParseTimestamp(slot.LastRotated)
			if err != nil {
				e.log.Debug("skipping key slot",
					zap.String("user", row.User),
					zap.Int("slot", i+1),
					zap.String("last_rotated", slot.LastRotated))
				continue
			}

			age := AgeInDays(now, rotated)
			if age <= maxAgeDays {
				continue
			}

			if !listed {
				keys, err = e.keys.ListAccessKeys(ctx, row.User)
				if err != nil {
					return nil, err
				}
				listed = true
			}
			key, ok := matchKey(keys, i, rotated)
			if !ok {
				e.log.Warn("stale key slot has no matching access key",
					zap.String("user", row.User),
					zap.Int("slot", i+1),
					zap.Int("keys", len(keys)),
					zap.Time("last_rotated", rotated))
				continue
			}

			candidates = append(candidates, Candidate{
				KeyID:     key.ID,
				User:      row.User,
				Age:       age,
				Slot:      i + 1,
				Active:    slot.Active,
				Status:    key.Status,
				CreatedAt: key.CreatedAt,
			})
		}
	}

	e.log.Info("evaluated access key ages",
		zap.Int("users", len(rows)),
		zap.Int("max_age_days", maxAgeDays),
		zap.Int("stale_keys", len(candidates)))
	return candidates, nil
}

// warnRootKeys logs stale root user keys. They have to be rotated by hand.
func (e *Evaluator) warnRootKeys(row credreport.Row, now time.Time, maxAgeDays int) {
	for i, slot := range row.Slots {
		rotated, err := ParseTimestamp(slot.LastRotated)
		if err != nil {
			continue
		}
		if age := AgeInDays(now, rotated); age > maxAgeDays {
			e.log.Warn("root user access key is older than the threshold and must be rotated manually",
				zap.Int("slot", i+1),
				zap.Int("age_days", age))
		}
	}
}

// matchKey returns the listed key for a report slot. The key at the slot's
// position is used when its creation time agrees with the report; otherwise
// the key created at the slot's last-rotated time is searched for. Keys with
// no creation time are matched by position alone.
func matchKey(keys []iam.AccessKey, index int, rotated time.Time) (iam.AccessKey, bool) {
	if index < len(keys) && createdAround(keys[index], rotated) {
		return keys[index], true
	}
	for _, k := range keys {
		if !k.CreatedAt.IsZero() && createdAround(k, rotated) {
			return k, true
		}
	}
	return iam.AccessKey{}, false
}

func createdAround(k iam.AccessKey, rotated time.Time) bool {
	if k.CreatedAt.IsZero() {
		return true
	}
	d := k.CreatedAt.Sub(rotated)
	return d <= creationSkew && d >= -creationSkew
}

// ParseTimestamp parses a credential report timestamp. "N/A" and other
// placeholders return an error.
func ParseTimestamp(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", v)
}

// AgeInDays is the absolute distance between now and t in whole days.
func AgeInDays(now, t time.Time) int {
	d := now.Sub(t)
	if d < 0 {
		d = -d
	}
	return int(d / day)
}
