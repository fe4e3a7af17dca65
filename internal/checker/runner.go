package checker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	sharedErrors "github.com/khanhnv2901/scorecheck/internal/shared/errors"
)

const defaultRetryDelay = 500 * time.Millisecond

// ResultFunc receives each BatchResult as its check completes. Calls are
// serialized, in completion order.
type ResultFunc func(BatchResult)

// Runner executes a batch of checks concurrently. A failing, erroring or
// panicking check never affects its siblings.
type Runner struct {
	Concurrency int           // Maximum number of checks in flight
	RateLimit   int           // Check starts per second across the batch, 0 for no limit
	Retries     int           // Extra attempts for checks that fail with a network error
	RetryDelay  time.Duration // Pause between attempts
	Prober      *Prober
	Logger      *zap.SugaredLogger

	// execute replaces Check.Execute in tests.
	execute func(ctx context.Context, c *Check) (Result, error)
}

// Run executes every check and returns one BatchResult per check; result i
// belongs to checks[i]. onResult may be nil.
func (r *Runner) Run(ctx context.Context, checks []*Check, onResult ResultFunc) []BatchResult {
	concurrency := r.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	exec := r.execute
	if exec == nil {
		prober := r.Prober
		if prober == nil {
			prober = NewProber(DefaultProbeOptions())
		}
		exec = func(ctx context.Context, c *Check) (Result, error) {
			return c.Execute(ctx, prober)
		}
	}

	var limiter *rate.Limiter
	if r.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(r.RateLimit), r.RateLimit)
	}

	results := make([]BatchResult, len(checks))
	var mu sync.Mutex

	// No task returns an error, so the group never cancels siblings; it is
	// used only for its admission limit.
	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, c := range checks {
		g.Go(func() error {
			res := r.runOne(ctx, c, exec, limiter)
			results[i] = res
			logResult(logger, res)

			if onResult != nil {
				mu.Lock()
				onResult(res)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (r *Runner) runOne(ctx context.Context, c *Check, exec func(context.Context, *Check) (Result, error), limiter *rate.Limiter) BatchResult {
	start := time.Now()
	br := BatchResult{CheckedAt: start.UTC()}
	if c == nil {
		br.Failure = &Failure{Kind: KindInternal, Message: "nil check submitted"}
		return br
	}
	br.Name, br.Address, br.Port, br.Type = c.Name(), c.Address(), c.Port(), c.Type()

	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			br.Failure = &Failure{Kind: KindCancelled, Message: fmt.Sprintf("run cancelled before check started: %v", err)}
			return br
		}
	}
	if err := ctx.Err(); err != nil {
		br.Failure = &Failure{Kind: KindCancelled, Message: fmt.Sprintf("run cancelled before check started: %v", err)}
		return br
	}

	res, attempts, err := r.attempt(ctx, c, exec)
	br.Attempts = attempts
	br.Duration = time.Since(start)
	if err != nil {
		br.Failure = &Failure{Kind: KindOf(err), Message: err.Error()}
		return br
	}
	br.Result = &res
	return br
}

// attempt runs the check once, or under a retry policy when Retries is set.
// Only network errors are retried; a false result is a real answer.
func (r *Runner) attempt(ctx context.Context, c *Check, exec func(context.Context, *Check) (Result, error)) (Result, int, error) {
	attempts := 0
	run := func() (Result, error) {
		attempts++
		return safeExecute(ctx, c, exec)
	}
	if r.Retries <= 0 {
		res, err := run()
		return res, attempts, err
	}

	delay := r.RetryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	policy := retrypolicy.NewBuilder[Result]().
		HandleIf(func(_ Result, err error) bool {
			return err != nil && KindOf(err) == KindNetworkError
		}).
		WithMaxRetries(r.Retries).
		WithDelay(delay).
		ReturnLastFailure().
		Build()

	res, err := failsafe.With[Result](policy).WithContext(ctx).Get(run)
	return res, attempts, err
}

func safeExecute(ctx context.Context, c *Check, exec func(context.Context, *Check) (Result, error)) (res Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Result{}
			err = &Error{Check: c.Name(), Type: c.Type(), Err: fmt.Errorf("%w: %v", sharedErrors.ErrProbePanic, rec)}
		}
	}()
	return exec(ctx, c)
}

func logResult(logger *zap.SugaredLogger, res BatchResult) {
	fields := []interface{}{
		"name", res.Name,
		"address", res.Address,
		"port", res.Port,
		"type", res.Type,
		"status", res.Status(),
		"duration_ms", res.Duration.Milliseconds(),
	}
	if res.Failure != nil {
		logger.Warnw("check errored", append(fields, "kind", res.Failure.Kind, "error", res.Failure.Message)...)
		return
	}
	logger.Debugw("check complete", fields...)
}
