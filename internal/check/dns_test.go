package check

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
)

func staticLookup(statuses map[string]Status) DNSLookup {
	return func(ctx context.Context, domain string) Status {
		return statuses[domain]
	}
}

func TestDNSCheckBatch(t *testing.T) {
	statuses := map[string]Status{
		"taken.com": StatusTaken,
		"free.com":  StatusAvailable,
		"flaky.com": StatusUnknown,
	}
	c := NewDNSCheckerWithLookup(staticLookup(statuses), 4)

	results := c.CheckBatch(context.Background(), []string{"taken.com", "free.com", "flaky.com"}, nil)

	if len(results) != 3 {
		t.Fatalf("expected a result per domain, got %d", len(results))
	}
	for domain, want := range statuses {
		if got := results[domain]; got != want {
			t.Errorf("results[%q] = %v, want %v", domain, got, want)
		}
	}
}

func TestDNSCheckBatchProgress(t *testing.T) {
	c := NewDNSCheckerWithLookup(staticLookup(nil), 2)
	domains := []string{"a.com", "b.com", "c.com"}

	var calls atomic.Int32
	var mu sync.Mutex
	seenTotal := 0

	c.CheckBatch(context.Background(), domains, func(done, total int) {
		calls.Add(1)
		mu.Lock()
		seenTotal = total
		mu.Unlock()
	})

	if got := int(calls.Load()); got != len(domains) {
		t.Errorf("progress called %d times, want %d", got, len(domains))
	}
	if seenTotal != len(domains) {
		t.Errorf("progress total = %d, want %d", seenTotal, len(domains))
	}
}

func TestDNSCheckBatchConcurrencyBound(t *testing.T) {
	var current, peak atomic.Int32

	lookup := func(ctx context.Context, domain string) Status {
		n := current.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		current.Add(-1)
		return StatusAvailable
	}

	c := NewDNSCheckerWithLookup(lookup, 3)
	domains := make([]string, 20)
	for i := range domains {
		domains[i] = string(rune('a'+i)) + ".com"
	}
	c.CheckBatch(context.Background(), domains, nil)

	if peak.Load() > 3 {
		t.Errorf("concurrency peaked at %d, limit is 3", peak.Load())
	}
}

func TestDNSCheckSingle(t *testing.T) {
	c := NewDNSCheckerWithLookup(staticLookup(map[string]Status{"x.com": StatusTaken}), 1)

	if got := c.CheckSingle(context.Background(), "x.com"); got != StatusTaken {
		t.Errorf("CheckSingle = %v, want taken", got)
	}
}
