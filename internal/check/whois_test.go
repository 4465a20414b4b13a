package check

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fastWhois builds a checker with a negligible interval so tests run
// quickly.
func fastWhois(lookup WhoisLookup) *WhoisChecker {
	c := NewWhoisCheckerWithLookup(lookup, time.Millisecond)
	c.backoff = time.Millisecond
	c.penalty = time.Millisecond
	return c
}

func TestWhoisCheckSingle(t *testing.T) {
	tests := []struct {
		name    string
		status  Status
		err     error
		want    Status
		wantErr bool
	}{
		{"available", StatusAvailable, nil, StatusAvailable, false},
		{"taken", StatusTaken, nil, StatusTaken, false},
		{"no match error means available", StatusUnknown, errors.New("No match for domain"), StatusAvailable, false},
		{"registered error means taken", StatusUnknown, errors.New("domain already registered"), StatusTaken, false},
		{"opaque error stays unknown", StatusUnknown, errors.New("connection reset"), StatusUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fastWhois(func(ctx context.Context, domain string) (Status, error) {
				return tt.status, tt.err
			})

			got, err := c.CheckSingle(context.Background(), "example.com")
			if got != tt.want {
				t.Errorf("status = %v, want %v", got, tt.want)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWhoisRateLimitRetriesOnce(t *testing.T) {
	calls := 0
	c := fastWhois(func(ctx context.Context, domain string) (Status, error) {
		calls++
		if calls == 1 {
			return StatusUnknown, errors.New("rate limit exceeded")
		}
		return StatusAvailable, nil
	})

	status, err := c.CheckSingle(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != StatusAvailable {
		t.Errorf("status = %v, want available after retry", status)
	}
	if calls != 2 {
		t.Errorf("lookup called %d times, want 2", calls)
	}
}

func TestWhoisRateLimitGivesUpAfterRetry(t *testing.T) {
	calls := 0
	c := fastWhois(func(ctx context.Context, domain string) (Status, error) {
		calls++
		return StatusUnknown, errors.New("too many requests")
	})

	status, err := c.CheckSingle(context.Background(), "example.com")
	if err == nil {
		t.Error("expected rate limit error to surface")
	}
	if status != StatusUnknown {
		t.Errorf("status = %v, want unknown", status)
	}
	if calls != 2 {
		t.Errorf("lookup called %d times, want exactly one retry", calls)
	}
}

func TestWhoisConsecutiveErrorsReset(t *testing.T) {
	fail := true
	c := fastWhois(func(ctx context.Context, domain string) (Status, error) {
		if fail {
			return StatusUnknown, errors.New("connection reset")
		}
		return StatusTaken, nil
	})

	_, _ = c.CheckSingle(context.Background(), "a.com")
	if c.consecutiveErrors != 1 {
		t.Errorf("consecutiveErrors = %d, want 1", c.consecutiveErrors)
	}

	fail = false
	_, _ = c.CheckSingle(context.Background(), "b.com")
	if c.consecutiveErrors != 0 {
		t.Errorf("consecutiveErrors = %d, want 0 after success", c.consecutiveErrors)
	}
}

func TestWhoisCheckBatchStopOnFound(t *testing.T) {
	statuses := map[string]Status{
		"a.com": StatusTaken,
		"b.com": StatusAvailable,
		"c.com": StatusTaken,
	}
	calls := 0
	c := fastWhois(func(ctx context.Context, domain string) (Status, error) {
		calls++
		return statuses[domain], nil
	})

	results, err := c.CheckBatch(context.Background(), []string{"a.com", "b.com", "c.com"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("lookup called %d times, want stop after first available", calls)
	}
	if results["b.com"] != StatusAvailable {
		t.Errorf("results missing the available find: %v", results)
	}
	if _, checked := results["c.com"]; checked {
		t.Error("c.com should not have been checked")
	}
}

func TestWhoisCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := fastWhois(func(ctx context.Context, domain string) (Status, error) {
		return StatusAvailable, nil
	})

	if _, err := c.CheckSingle(ctx, "example.com"); err == nil {
		t.Error("expected error from cancelled context")
	}
}
