package collab

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type fakeConn struct {
	endpoint string
}

func (c *fakeConn) Endpoint() string { return c.endpoint }
func (c *fakeConn) Close() error     { return nil }

// scriptedDialer fails endpoints listed in failures; everything else
// connects. It records every attempt.
type scriptedDialer struct {
	failures map[string]error
	attempts []string
}

func (d *scriptedDialer) Dial(_ context.Context, endpoint string) (Conn, error) {
	d.attempts = append(d.attempts, endpoint)
	if err, ok := d.failures[endpoint]; ok {
		return nil, err
	}
	return &fakeConn{endpoint: endpoint}, nil
}

// fastPolicy keeps test waits negligible.
func fastPolicy(attempts int) RetryPolicy {
	return RetryPolicy{
		AttemptsPerEndpoint: attempts,
		InitialWait:         time.Microsecond,
		MaxWait:             time.Millisecond,
		Multiplier:          2.0,
	}
}

func TestConnectWithFallback_FirstEndpointWins(t *testing.T) {
	d := &scriptedDialer{}
	conn, err := ConnectWithFallback(context.Background(), d, []string{"relay-1", "relay-2"}, fastPolicy(2))
	if err != nil {
		t.Fatal(err)
	}
	if conn.Endpoint() != "relay-1" {
		t.Errorf("connected to %s, want relay-1", conn.Endpoint())
	}
	if len(d.attempts) != 1 {
		t.Errorf("attempts = %v, want one", d.attempts)
	}
}

func TestConnectWithFallback_FallsThroughInOrder(t *testing.T) {
	d := &scriptedDialer{failures: map[string]error{
		"relay-1": errors.New("refused"),
		"relay-2": errors.New("refused"),
	}}

	conn, err := ConnectWithFallback(context.Background(), d, []string{"relay-1", "relay-2", "relay-3"}, fastPolicy(2))
	if err != nil {
		t.Fatal(err)
	}
	if conn.Endpoint() != "relay-3" {
		t.Errorf("connected to %s, want relay-3", conn.Endpoint())
	}

	// Two bounded attempts per failing endpoint, then the winner.
	want := []string{"relay-1", "relay-1", "relay-2", "relay-2", "relay-3"}
	if fmt.Sprint(d.attempts) != fmt.Sprint(want) {
		t.Errorf("attempts = %v, want %v", d.attempts, want)
	}
}

func TestConnectWithFallback_AllFail(t *testing.T) {
	refused := errors.New("refused")
	d := &scriptedDialer{failures: map[string]error{
		"relay-1": refused,
		"relay-2": refused,
	}}

	_, err := ConnectWithFallback(context.Background(), d, []string{"relay-1", "relay-2"}, fastPolicy(3))
	if err == nil {
		t.Fatal("expected error when every endpoint fails")
	}
	if !errors.Is(err, refused) {
		t.Errorf("joined error does not wrap the dial failure: %v", err)
	}
	if len(d.attempts) != 6 {
		t.Errorf("attempts = %d, want 6 (3 per endpoint)", len(d.attempts))
	}
}

func TestConnectWithFallback_NoEndpoints(t *testing.T) {
	_, err := ConnectWithFallback(context.Background(), &scriptedDialer{}, nil, fastPolicy(1))
	if err == nil {
		t.Fatal("expected error for empty endpoint list")
	}
}

func TestConnectWithFallback_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := &scriptedDialer{failures: map[string]error{
		"relay-1": context.Canceled,
	}}
	_, err := ConnectWithFallback(ctx, d, []string{"relay-1", "relay-2"}, fastPolicy(3))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(d.attempts) != 1 {
		t.Errorf("attempts = %v, want to stop after the canceled dial", d.attempts)
	}
}

func TestBackoff_Bounds(t *testing.T) {
	policy := RetryPolicy{
		InitialWait: time.Second,
		MaxWait:     4 * time.Second,
		Multiplier:  2.0,
	}

	for attempt := 0; attempt < 6; attempt++ {
		w := backoff(policy, attempt)
		// MaxWait plus 20% jitter headroom.
		if w < 0 || w > time.Duration(float64(policy.MaxWait)*1.2) {
			t.Errorf("attempt %d: backoff %s outside bounds", attempt, w)
		}
	}
}
