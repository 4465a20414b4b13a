package check

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestService(t *testing.T, dnsStatuses map[string]Status, whois WhoisLookup, verify bool) *Service {
	t.Helper()
	dns := NewDNSCheckerWithLookup(staticLookup(dnsStatuses), 4)
	var wc *WhoisChecker
	if whois != nil {
		wc = fastWhois(whois)
	}
	cache := NewCache(filepath.Join(t.TempDir(), "cache.json"), time.Hour)
	return NewServiceWith(dns, wc, cache, verify)
}

func TestCheckBatchPipeline(t *testing.T) {
	dnsStatuses := map[string]Status{
		"taken.com":   StatusTaken,
		"free.com":    StatusAvailable,
		"squatted.io": StatusAvailable,
		"flaky.net":   StatusUnknown,
	}
	whois := func(ctx context.Context, domain string) (Status, error) {
		if domain == "squatted.io" {
			return StatusTaken, nil // registered but unresolved in DNS
		}
		return StatusAvailable, nil
	}

	svc := newTestService(t, dnsStatuses, whois, true)
	domains := []string{"taken.com", "free.com", "squatted.io", "flaky.net"}

	results, err := svc.CheckBatch(context.Background(), domains, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != len(domains) {
		t.Fatalf("got %d results, want %d", len(results), len(domains))
	}
	// Caller order is preserved.
	for i, domain := range domains {
		if results[i].Domain != domain {
			t.Errorf("results[%d] = %q, want %q", i, results[i].Domain, domain)
		}
	}

	want := map[string]struct {
		status Status
		method string
	}{
		"taken.com":   {StatusTaken, MethodDNS},
		"free.com":    {StatusAvailable, MethodWhois},
		"squatted.io": {StatusTaken, MethodWhois},
		"flaky.net":   {StatusUnknown, MethodDNS},
	}
	for _, r := range results {
		w := want[r.Domain]
		if r.Status != w.status || r.Method != w.method {
			t.Errorf("%s: got (%v, %s), want (%v, %s)", r.Domain, r.Status, r.Method, w.status, w.method)
		}
	}
}

func TestCheckBatchUsesCache(t *testing.T) {
	dnsCalls := 0
	dns := NewDNSCheckerWithLookup(func(ctx context.Context, domain string) Status {
		dnsCalls++
		return StatusTaken
	}, 1)
	cache := NewCache(filepath.Join(t.TempDir(), "cache.json"), time.Hour)
	svc := NewServiceWith(dns, nil, cache, false)

	ctx := context.Background()
	if _, err := svc.CheckBatch(ctx, []string{"example.com"}, nil); err != nil {
		t.Fatal(err)
	}
	if dnsCalls != 1 {
		t.Fatalf("dnsCalls = %d, want 1", dnsCalls)
	}

	results, err := svc.CheckBatch(ctx, []string{"example.com"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if dnsCalls != 1 {
		t.Errorf("second check should come from cache, dnsCalls = %d", dnsCalls)
	}
	if !results[0].Cached || results[0].Status != StatusTaken {
		t.Errorf("expected cached taken result, got %+v", results[0])
	}
}

func TestCheckBatchUnknownNotCached(t *testing.T) {
	dnsCalls := 0
	dns := NewDNSCheckerWithLookup(func(ctx context.Context, domain string) Status {
		dnsCalls++
		return StatusUnknown
	}, 1)
	cache := NewCache(filepath.Join(t.TempDir(), "cache.json"), time.Hour)
	svc := NewServiceWith(dns, nil, cache, false)

	ctx := context.Background()
	svc.CheckBatch(ctx, []string{"flaky.com"}, nil)
	svc.CheckBatch(ctx, []string{"flaky.com"}, nil)

	if dnsCalls != 2 {
		t.Errorf("unknown results must be rechecked, dnsCalls = %d", dnsCalls)
	}
}

func TestCheckBatchWhoisErrorTrustsDNS(t *testing.T) {
	dnsStatuses := map[string]Status{"free.com": StatusAvailable}
	whois := func(ctx context.Context, domain string) (Status, error) {
		return StatusUnknown, errors.New("whois timed out")
	}

	svc := newTestService(t, dnsStatuses, whois, true)

	results, err := svc.CheckBatch(context.Background(), []string{"free.com"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := results[0]
	if r.Status != StatusAvailable {
		t.Errorf("status = %v, want available on WHOIS failure", r.Status)
	}
	if r.Err == "" {
		t.Error("expected the WHOIS error to be recorded")
	}
}

func TestCheckBatchNoVerifySkipsWhois(t *testing.T) {
	whoisCalled := false
	whois := func(ctx context.Context, domain string) (Status, error) {
		whoisCalled = true
		return StatusTaken, nil
	}
	svc := newTestService(t, map[string]Status{"free.com": StatusAvailable}, whois, false)

	results, err := svc.CheckBatch(context.Background(), []string{"free.com"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if whoisCalled {
		t.Error("WHOIS should not run when verification is off")
	}
	if results[0].Status != StatusAvailable || results[0].Method != MethodDNS {
		t.Errorf("expected DNS-only available result, got %+v", results[0])
	}
}

func TestCheckSingle(t *testing.T) {
	svc := newTestService(t, map[string]Status{"taken.com": StatusTaken}, nil, false)

	r, err := svc.CheckSingle(context.Background(), "taken.com")
	if err != nil {
		t.Fatal(err)
	}
	if r.Status != StatusTaken || r.Method != MethodDNS {
		t.Errorf("unexpected result: %+v", r)
	}

	// Second lookup hits the cache.
	r, err = svc.CheckSingle(context.Background(), "taken.com")
	if err != nil {
		t.Fatal(err)
	}
	if !r.Cached {
		t.Error("expected cached result on repeat check")
	}
}

func TestCheckBatchProgressPhases(t *testing.T) {
	svc := newTestService(t, map[string]Status{"a.com": StatusTaken}, nil, false)

	phases := make(map[Phase]bool)
	_, err := svc.CheckBatch(context.Background(), []string{"a.com"}, func(phase Phase, current, total int) {
		phases[phase] = true
	})
	if err != nil {
		t.Fatal(err)
	}
	if !phases[PhaseCache] || !phases[PhaseDNS] {
		t.Errorf("expected cache and dns phases, got %v", phases)
	}
}

func TestFindAvailable(t *testing.T) {
	dnsStatuses := map[string]Status{
		"alpha.com": StatusAvailable,
		"alpha.io":  StatusTaken,
		"beta.com":  StatusTaken,
		"beta.io":   StatusTaken,
	}
	svc := newTestService(t, dnsStatuses, nil, false)

	results, err := svc.FindAvailable(context.Background(),
		[]string{"alpha", "beta"}, []string{"com", "io"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Domain != "alpha.com" {
		t.Errorf("FindAvailable = %v, want just alpha.com", results)
	}
}

func TestCrossTLDs(t *testing.T) {
	domains := CrossTLDs([]string{"a", "b"}, []string{"com", "io"})
	want := []string{"a.com", "a.io", "b.com", "b.io"}
	if len(domains) != len(want) {
		t.Fatalf("CrossTLDs = %v, want %v", domains, want)
	}
	for i := range want {
		if domains[i] != want[i] {
			t.Errorf("CrossTLDs[%d] = %q, want %q", i, domains[i], want[i])
		}
	}
}
