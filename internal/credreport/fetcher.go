package credreport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"

	"tasnim.dev/aws-key-rotator/internal"
	"tasnim.dev/aws-key-rotator/internal/aws/iam"
	"tasnim.dev/aws-key-rotator/internal/constants"
)

// ErrReportUnavailable is returned when the credential report never became
// ready within the poll budget or the context deadline.
var ErrReportUnavailable = errors.New("credential report unavailable")

type sleepFunc func(ctx context.Context, d time.Duration) error

// Fetcher retrieves the credential report, regenerating it when IAM reports
// it missing or expired and polling while it is being generated.
type Fetcher struct {
	source   internal.ReportSource
	log      *zap.Logger
	interval time.Duration
	maxPolls int
	sleep    sleepFunc
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithPollInterval overrides the wait between readiness checks.
func WithPollInterval(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.interval = d
		}
	}
}

// WithMaxPolls caps the number of waits. Zero leaves the context deadline as
// the only bound.
func WithMaxPolls(n int) Option {
	return func(f *Fetcher) {
		if n >= 0 {
			f.maxPolls = n
		}
	}
}

// NewFetcher creates a fetcher polling every 2s, at most 30 times, unless
// overridden by opts.
func NewFetcher(source internal.ReportSource, log *zap.Logger, opts ...Option) *Fetcher {
	f := &Fetcher{
		source:   source,
		log:      log,
		interval: constants.ReportPollInterval,
		maxPolls: constants.DefaultMaxReportPolls,
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the parsed rows of a ready credential report.
func (f *Fetcher) Fetch(ctx context.Context) ([]Row, error) {
	var policy backoff.BackOff = backoff.NewConstantBackOff(f.interval)
	if f.maxPolls > 0 {
		policy = backoff.WithMaxRetries(policy, uint64(f.maxPolls))
	}
	schedule := backoff.WithContext(policy, ctx)

	polls := 0
	for {
		report, err := f.source.GetCredentialReport(ctx)
		if err != nil {
			return nil, err
		}

		switch report.State {
		case iam.ReportReady:
			rows, err := Parse(report.Content)
			if err != nil {
				return nil, fmt.Errorf("parsing credential report: %w", err)
			}
			f.log.Info("credential report retrieved",
				zap.Int("users", len(rows)),
				zap.Time("generated_at", report.GeneratedAt),
				zap.Int("polls", polls))
			return rows, nil
		case iam.ReportNotReady:
			f.log.Info("waiting for credential report to generate")
		case iam.ReportNotPresent, iam.ReportExpired:
			f.log.Info("generating credential report", zap.Stringer("previous_state", report.State))
			state, err := f.source.GenerateCredentialReport(ctx)
			if err != nil {
				return nil, err
			}
			f.log.Debug("credential report generation requested", zap.String("state", state))
		default:
			return nil, fmt.Errorf("unexpected credential report state %d", report.State)
		}

		wait := schedule.NextBackOff()
		if wait == backoff.Stop {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrReportUnavailable, err)
			}
			return nil, fmt.Errorf("%w: still %s after %d polls", ErrReportUnavailable, report.State, polls)
		}
		if err := f.sleep(ctx, wait); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReportUnavailable, err)
		}
		polls++
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
