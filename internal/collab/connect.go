package collab

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// Conn is an established relay connection.
type Conn interface {
	Endpoint() string
	Close() error
}

// Dialer opens a connection to a single relay endpoint.
type Dialer interface {
	Dial(ctx context.Context, endpoint string) (Conn, error)
}

// RetryPolicy bounds connection attempts per endpoint with exponential
// backoff and jitter between attempts.
type RetryPolicy struct {
	// AttemptsPerEndpoint is how many times each endpoint is tried
	// before moving to the next one. Minimum 1.
	AttemptsPerEndpoint int

	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryPolicy returns the standard relay connection policy.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		AttemptsPerEndpoint: 2,
		InitialWait:         500 * time.Millisecond,
		MaxWait:             5 * time.Second,
		Multiplier:          2.0,
	}
}

// ConnectWithFallback tries each endpoint in order, with bounded retries
// per endpoint, until one connects. It returns the first successful
// connection or the joined errors of every failed attempt.
func ConnectWithFallback(ctx context.Context, d Dialer, endpoints []string, policy RetryPolicy) (Conn, error) {
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("no relay endpoints configured")
	}

	attempts := policy.AttemptsPerEndpoint
	if attempts < 1 {
		attempts = 1
	}

	var errs []error
	for _, endpoint := range endpoints {
		for attempt := range attempts {
			conn, err := d.Dial(ctx, endpoint)
			if err == nil {
				return conn, nil
			}
			errs = append(errs, fmt.Errorf("%s (attempt %d): %w", endpoint, attempt+1, err))

			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, errors.Join(errs...)
			}

			// No wait after the endpoint's final attempt.
			if attempt == attempts-1 {
				continue
			}
			select {
			case <-ctx.Done():
				errs = append(errs, ctx.Err())
				return nil, errors.Join(errs...)
			case <-time.After(backoff(policy, attempt)):
			}
		}
	}

	return nil, fmt.Errorf("all relay endpoints failed: %w", errors.Join(errs...))
}

// backoff computes the wait before the next attempt, with ±20% jitter.
func backoff(policy RetryPolicy, attempt int) time.Duration {
	wait := float64(policy.InitialWait) * math.Pow(policy.Multiplier, float64(attempt))
	if wait > float64(policy.MaxWait) {
		wait = float64(policy.MaxWait)
	}

	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
