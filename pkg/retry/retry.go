// Package retry runs operations that may fail temporarily with exponential
// backoff. It is a thin layer over avast/retry-go.
package retry

import (
	"context"
	"time"

	retrygo "github.com/avast/retry-go/v4"
)

type Retry interface {
	// Execute runs operation until it succeeds, the attempts are exhausted,
	// the error is marked permanent or ctx is done.
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts uint
	delay    time.Duration
	maxDelay time.Duration
}

type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry with 3 attempts, a 200ms base delay and a 2s cap unless
// overridden by opts.
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    200 * time.Millisecond,
		maxDelay: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retrygo.Do(operation,
		retrygo.Attempts(r.cfg.attempts),
		retrygo.Delay(r.cfg.delay),
		retrygo.MaxDelay(r.cfg.maxDelay),
		retrygo.DelayType(retrygo.BackOffDelay),
		retrygo.LastErrorOnly(true),
		retrygo.Context(ctx),
	)
}

// Permanent marks err so that Execute returns it without further attempts.
func Permanent(err error) error {
	return retrygo.Unrecoverable(err)
}

// WithAttempts sets the total number of attempts, the first one included.
func WithAttempts(n uint) Option {
	return func(c *config) {
		if n > 0 {
			c.attempts = n
		}
	}
}

func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}
