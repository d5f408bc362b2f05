package job

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"tasnim.dev/aws-key-rotator/internal"
	"tasnim.dev/aws-key-rotator/internal/config"
	"tasnim.dev/aws-key-rotator/internal/credreport"
	"tasnim.dev/aws-key-rotator/internal/keyage"
	"tasnim.dev/aws-key-rotator/internal/notify"
	"tasnim.dev/aws-key-rotator/internal/rotation"
)

// Result is logged at the end of every invocation and returned to Lambda.
type Result struct {
	StatusCode int    `json:"statusCode"`
	Target     string `json:"snsTopic"`
	Message    string `json:"snsMessage"`
	Outcome    string `json:"outcome"`
	Mode       string `json:"mode"`
	AccountID  string `json:"accountId,omitempty"`
}

// Deps are the AWS collaborators of a job.
type Deps struct {
	Reports   internal.ReportSource
	Keys      internal.KeyStore
	Publisher internal.Publisher
	AccountID string
}

type Job struct {
	maxAgeDays int
	target     string
	accountID  string
	fetcher    *credreport.Fetcher
	evaluator  *keyage.Evaluator
	dispatcher *rotation.Dispatcher
	notifier   *notify.Notifier
	log        *zap.Logger
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock sets the reference time used to age keys.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New builds a job from validated configuration.
func New(cfg *config.Config, deps Deps, log *zap.Logger, opts ...Option) (*Job, error) {
	mode, err := cfg.ExecutionMode()
	if err != nil {
		return nil, err
	}
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Job{
		maxAgeDays: cfg.MaxAgeDays,
		target:     cfg.TopicARN,
		accountID:  deps.AccountID,
		fetcher: credreport.NewFetcher(deps.Reports, log,
			credreport.WithPollInterval(cfg.PollInterval()),
			credreport.WithMaxPolls(cfg.MaxReportPolls)),
		evaluator:  keyage.NewEvaluator(deps.Keys, log, keyage.WithClock(o.now)),
		dispatcher: rotation.NewDispatcher(deps.Keys, mode, log),
		notifier:   notify.NewNotifier(deps.Publisher, cfg.Subject, log),
		log:        log,
	}, nil
}

// Scan fetches the credential report and returns the stale keys without
// acting on them.
func (j *Job) Scan(ctx context.Context) ([]keyage.Candidate, error) {
	rows, err := j.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching credential report: %w", err)
	}
	candidates, err := j.evaluator.SelectStaleKeys(ctx, rows, j.maxAgeDays)
	if err != nil {
		return nil, fmt.Errorf("evaluating key ages: %w", err)
	}
	return candidates, nil
}

// Run executes one rotation: scan, dispatch, notify. A notification failure
// is returned together with the computed Result.
func (j *Job) Run(ctx context.Context) (Result, error) {
	j.log.Info("rotation job started",
		zap.String("mode", string(j.dispatcher.Mode())),
		zap.Int("max_age_days", j.maxAgeDays))

	candidates, err := j.Scan(ctx)
	if err != nil {
		j.log.Error("rotation job failed", zap.Error(err))
		return Result{}, err
	}

	outcome := j.dispatcher.Dispatch(ctx, candidates, j.maxAgeDays)
	if outcome.Succeeded() {
		j.log.Info("rotation outcome", zap.String("message", outcome.Message))
	} else {
		j.log.Warn("rotation outcome", zap.String("message", outcome.Message),
			zap.Int("failed", len(outcome.Failed)))
	}

	result := Result{
		StatusCode: http.StatusOK,
		Target:     j.target,
		Message:    outcome.Message,
		Outcome:    outcome.Status.String(),
		Mode:       string(outcome.Mode),
		AccountID:  j.accountID,
	}

	if err := j.notifier.Notify(ctx, j.target, outcome.Message); err != nil {
		result.StatusCode = http.StatusBadGateway
		j.log.Error("rotation job finished without notification",
			zap.Int("status_code", result.StatusCode),
			zap.String("topic", result.Target),
			zap.String("outcome", result.Outcome),
			zap.Error(err))
		return result, err
	}

	j.log.Info("rotation job finished",
		zap.Int("status_code", result.StatusCode),
		zap.String("topic", result.Target),
		zap.String("outcome", result.Outcome),
		zap.String("mode", result.Mode),
		zap.Int("stale_keys", len(candidates)),
		zap.Int("deleted", len(outcome.Deleted)))
	return result, nil
}
