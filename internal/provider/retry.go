package provider

import (
	"context"
	"math/rand"
	"time"
)

// Retry defaults. Each attempt gets its own deadline; between attempts the
// client waits with exponential backoff plus jitter.
const (
	DefaultMaxAttempts    = 3
	DefaultAttemptTimeout = 30 * time.Second
	defaultBaseDelay      = 1 * time.Second
	defaultMaxJitter      = 500 * time.Millisecond
)

// RetryPolicy controls how Client re-submits failed attempts.
type RetryPolicy struct {
	MaxAttempts    int
	AttemptTimeout time.Duration
	// BaseDelay is doubled for each subsequent attempt:
	// wait(n) = 2^(n-1) * BaseDelay + rand[0, MaxJitter).
	BaseDelay time.Duration
	MaxJitter time.Duration
}

// DefaultRetryPolicy returns the production policy: 3 attempts, 30 s per
// attempt, 1 s base backoff with up to 500 ms of jitter.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    DefaultMaxAttempts,
		AttemptTimeout: DefaultAttemptTimeout,
		BaseDelay:      defaultBaseDelay,
		MaxJitter:      defaultMaxJitter,
	}
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	if p.AttemptTimeout <= 0 {
		p.AttemptTimeout = DefaultAttemptTimeout
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = defaultBaseDelay
	}
	return p
}

// backoffDelay computes the wait before retry attempt+1. attempt counts
// from 1.
func backoffDelay(attempt int, p RetryPolicy) time.Duration {
	delay := time.Duration(1<<(attempt-1)) * p.BaseDelay
	if p.MaxJitter > 0 {
		delay += time.Duration(rand.Int63n(int64(p.MaxJitter)))
	}
	return delay
}

// Client wraps a GenerationService with per-attempt timeouts and bounded
// retry. It implements GenerationService itself, so callers are oblivious
// to the retry layer.
//
// Classification is structural: only *Error's status and timeout flag
// decide whether an attempt is repeated. Non-retryable failures surface on
// first occurrence; when every attempt fails, the last classified error is
// returned.
type Client struct {
	svc    GenerationService
	policy RetryPolicy
}

// NewClient wraps svc with the given retry policy.
func NewClient(svc GenerationService, policy RetryPolicy) *Client {
	return &Client{svc: svc, policy: policy.withDefaults()}
}

func (c *Client) Name() string {
	return c.svc.Name()
}

func (c *Client) IsAvailable(ctx context.Context) error {
	return c.svc.IsAvailable(ctx)
}

// Generate submits the request, retrying per the policy. The wait between
// attempts aborts as soon as ctx is cancelled, so a cancelled session never
// leaves a retry timer pending.
func (c *Client) Generate(ctx context.Context, cfg ServiceConfig, req GenerateRequest) (*GenerateResult, error) {
	var lastErr *Error

	for attempt := 1; attempt <= c.policy.MaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, c.policy.AttemptTimeout)
		res, err := c.svc.Generate(attemptCtx, cfg, req)
		cancel()

		if err == nil {
			return res, nil
		}

		perr, ok := err.(*Error)
		if !ok {
			perr = classifyTransport(c.svc.Name(), err)
		}
		lastErr = perr

		if !perr.Retryable() {
			return nil, perr
		}
		if attempt == c.policy.MaxAttempts {
			break
		}

		timer := time.NewTimer(backoffDelay(attempt, c.policy))
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, classifyTransport(c.svc.Name(), ctx.Err())
		}
	}

	return nil, lastErr
}
