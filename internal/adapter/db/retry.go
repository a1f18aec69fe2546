package db

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

// RetryPolicy bounds how often a transient storage failure is retried.
type RetryPolicy struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:   3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     5 * time.Second,
	}
}

func (p RetryPolicy) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if p.InitialDelay > 0 {
		b.InitialInterval = p.InitialDelay
	}
	if p.MaxDelay > 0 {
		b.MaxInterval = p.MaxDelay
	}
	return b
}

// withRetry runs fn until it succeeds, fails with a non-transient error, or
// the policy is exhausted. The returned error is the last error of fn.
func withRetry[T any](ctx context.Context, policy RetryPolicy, op string, fn func() (T, error)) (T, error) {
	operation := func() (T, error) {
		value, err := fn()
		if err != nil && !isTransient(err) {
			return value, backoff.Permanent(err)
		}
		return value, err
	}

	maxTries := uint(1)
	if policy.MaxRetries > 0 {
		maxTries += uint(policy.MaxRetries)
	}

	value, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy.backOff()),
		backoff.WithMaxTries(maxTries),
		backoff.WithNotify(func(err error, delay time.Duration) {
			zap.L().Warn("retrying storage operation",
				zap.String("op", op),
				zap.Duration("delay", delay),
				zap.Error(err),
			)
		}),
	)

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Unwrap()
	}
	return value, err
}
