package check

import (
	"context"
	"fmt"
	"time"
)

// Options configures a Service.
type Options struct {
	DNSTimeout      time.Duration
	WhoisTimeout    time.Duration
	MaxConcurrent   int
	WhoisInterval   time.Duration
	Resolver        string
	CachePath       string
	CacheTTL        time.Duration
	DisableCache    bool
	VerifyWithWhois bool
}

// DefaultOptions mirrors the config defaults.
func DefaultOptions() Options {
	return Options{
		DNSTimeout:      3 * time.Second,
		WhoisTimeout:    10 * time.Second,
		MaxConcurrent:   10,
		WhoisInterval:   1500 * time.Millisecond,
		CachePath:       "data/results/checked_cache.json",
		CacheTTL:        24 * time.Hour,
		VerifyWithWhois: true,
	}
}

// Service runs the availability pipeline: cache, then a DNS batch,
// then WHOIS verification of DNS-available domains.
type Service struct {
	dns    *DNSChecker
	whois  *WhoisChecker
	cache  *Cache
	verify bool
}

// NewService wires up a service from options.
func NewService(opts Options) *Service {
	s := &Service{
		dns:    NewDNSChecker(opts.Resolver, opts.DNSTimeout, opts.MaxConcurrent),
		whois:  NewWhoisChecker(opts.WhoisTimeout, opts.WhoisInterval),
		verify: opts.VerifyWithWhois,
	}
	if !opts.DisableCache {
		s.cache = NewCache(opts.CachePath, opts.CacheTTL)
	}
	return s
}

// NewServiceWith wires a service from pre-built parts. cache may be
// nil to disable caching.
func NewServiceWith(dns *DNSChecker, whois *WhoisChecker, cache *Cache, verify bool) *Service {
	return &Service{dns: dns, whois: whois, cache: cache, verify: verify}
}

// Cache exposes the underlying cache, nil when disabled.
func (s *Service) Cache() *Cache { return s.cache }

// CheckSingle checks one domain through the full pipeline.
func (s *Service) CheckSingle(ctx context.Context, domain string) (Result, error) {
	if s.cache != nil {
		if entry, ok := s.cache.Get(domain); ok {
			return cachedResult(domain, entry), nil
		}
	}

	dnsStatus := s.dns.CheckSingle(ctx, domain)

	if dnsStatus == StatusTaken {
		s.cacheSet(domain, false, MethodDNS)
		return Result{Domain: domain, Status: StatusTaken, Method: MethodDNS}, nil
	}

	result := Result{Domain: domain, Status: dnsStatus, Method: MethodDNS}
	if dnsStatus == StatusAvailable && s.verify {
		whoisStatus, err := s.whois.CheckSingle(ctx, domain)
		result.Method = MethodWhois
		result.Status = whoisStatus
		if err != nil {
			result.Err = err.Error()
		}
	}

	if result.Status != StatusUnknown {
		s.cacheSet(domain, result.Status == StatusAvailable, result.Method)
	}
	if err := s.saveCache(); err != nil {
		return result, err
	}
	return result, nil
}

// CheckBatch checks domains through cache, DNS, and WHOIS phases,
// returning results in input order. progress may be nil.
func (s *Service) CheckBatch(ctx context.Context, domains []string, progress ProgressFunc) ([]Result, error) {
	notify := func(phase Phase, current, total int) {
		if progress != nil {
			progress(phase, current, total)
		}
	}

	cached := make(map[string]Result)
	var toCheck []string

	if s.cache != nil {
		for i, domain := range domains {
			if entry, ok := s.cache.Get(domain); ok {
				cached[domain] = cachedResult(domain, entry)
			} else {
				toCheck = append(toCheck, domain)
			}
			notify(PhaseCache, i+1, len(domains))
		}
	} else {
		toCheck = domains
		notify(PhaseCache, len(domains), len(domains))
	}

	fresh := make(map[string]Result, len(toCheck))
	if len(toCheck) > 0 {
		dnsResults := s.dns.CheckBatch(ctx, toCheck, func(done, total int) {
			notify(PhaseDNS, done, total)
		})

		var possiblyAvailable []string
		for _, domain := range toCheck {
			switch dnsResults[domain] {
			case StatusTaken:
				fresh[domain] = Result{Domain: domain, Status: StatusTaken, Method: MethodDNS}
				s.cacheSet(domain, false, MethodDNS)
			case StatusAvailable:
				possiblyAvailable = append(possiblyAvailable, domain)
			default:
				fresh[domain] = Result{Domain: domain, Status: StatusUnknown, Method: MethodDNS}
			}
		}

		switch {
		case s.verify && len(possiblyAvailable) > 0:
			for i, domain := range possiblyAvailable {
				result := Result{Domain: domain, Method: MethodWhois}

				status, err := s.whois.CheckSingle(ctx, domain)
				if err != nil {
					if ctx.Err() != nil {
						return nil, ctx.Err()
					}
					// WHOIS hiccup: trust the DNS signal but
					// record the error.
					result.Status = StatusAvailable
					result.Err = err.Error()
				} else {
					result.Status = status
				}

				fresh[domain] = result
				s.cacheSet(domain, result.Status == StatusAvailable, MethodWhois)
				notify(PhaseWhois, i+1, len(possiblyAvailable))
			}
		case len(possiblyAvailable) > 0:
			for _, domain := range possiblyAvailable {
				fresh[domain] = Result{Domain: domain, Status: StatusAvailable, Method: MethodDNS}
				s.cacheSet(domain, true, MethodDNS)
			}
		}
	}

	// Reassemble in caller order.
	results := make([]Result, 0, len(domains))
	for _, domain := range domains {
		if r, ok := cached[domain]; ok {
			results = append(results, r)
		} else if r, ok := fresh[domain]; ok {
			results = append(results, r)
		}
	}

	if err := s.saveCache(); err != nil {
		return results, err
	}
	return results, nil
}

// CheckWordAcrossTLDs checks word against each TLD.
func (s *Service) CheckWordAcrossTLDs(ctx context.Context, word string, tlds []string, progress ProgressFunc) ([]Result, error) {
	return s.CheckBatch(ctx, CrossTLDs([]string{word}, tlds), progress)
}

// FindAvailable checks every word x TLD combination and returns only
// the confirmed-available results.
func (s *Service) FindAvailable(ctx context.Context, wordList, tlds []string, progress ProgressFunc) ([]Result, error) {
	results, err := s.CheckBatch(ctx, CrossTLDs(wordList, tlds), progress)
	if err != nil {
		return nil, err
	}
	available := results[:0]
	for _, r := range results {
		if r.Available() {
			available = append(available, r)
		}
	}
	return available, nil
}

// CrossTLDs builds the word x TLD domain list, word-major order.
func CrossTLDs(wordList, tlds []string) []string {
	domains := make([]string, 0, len(wordList)*len(tlds))
	for _, w := range wordList {
		for _, tld := range tlds {
			domains = append(domains, fmt.Sprintf("%s.%s", w, tld))
		}
	}
	return domains
}

func cachedResult(domain string, entry CacheEntry) Result {
	status := StatusTaken
	if entry.Available {
		status = StatusAvailable
	}
	return Result{Domain: domain, Status: status, Method: entry.Method, Cached: true}
}

func (s *Service) cacheSet(domain string, available bool, method string) {
	if s.cache != nil {
		s.cache.Set(domain, available, method)
	}
}

func (s *Service) saveCache() error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Save()
}
