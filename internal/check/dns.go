package check

import (
	"context"
	"sync"
	"time"

	"github.com/miekg/dns"
	"golang.org/x/sync/errgroup"
)

// DNSLookup resolves a domain's availability signal. Implementations
// return StatusUnknown on timeouts or transport errors.
type DNSLookup func(ctx context.Context, domain string) Status

// DNSChecker is the fast pre-filter: a domain with live A records is
// definitely registered, NXDOMAIN means it is likely free.
type DNSChecker struct {
	lookup        DNSLookup
	maxConcurrent int
}

// NewDNSChecker builds a checker querying resolver (host:port; empty
// uses /etc/resolv.conf, falling back to Google public DNS).
func NewDNSChecker(resolver string, timeout time.Duration, maxConcurrent int) *DNSChecker {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &DNSChecker{
		lookup:        newWireLookup(resolver, timeout),
		maxConcurrent: maxConcurrent,
	}
}

// NewDNSCheckerWithLookup injects a lookup, used by tests and the
// service wiring.
func NewDNSCheckerWithLookup(lookup DNSLookup, maxConcurrent int) *DNSChecker {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &DNSChecker{lookup: lookup, maxConcurrent: maxConcurrent}
}

// CheckSingle resolves one domain.
func (c *DNSChecker) CheckSingle(ctx context.Context, domain string) Status {
	return c.lookup(ctx, domain)
}

// CheckBatch resolves domains with bounded concurrency. The result map
// has an entry for every input domain.
func (c *DNSChecker) CheckBatch(ctx context.Context, domains []string, progress func(done, total int)) map[string]Status {
	results := make(map[string]Status, len(domains))
	var mu sync.Mutex
	done := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrent)

	for _, domain := range domains {
		g.Go(func() error {
			status := c.lookup(ctx, domain)

			mu.Lock()
			results[domain] = status
			done++
			current := done
			mu.Unlock()

			if progress != nil {
				progress(current, len(domains))
			}
			return nil
		})
	}

	// Workers never return errors; unknown statuses stand in for
	// failures.
	_ = g.Wait()
	return results
}

// newWireLookup queries A records over the wire and classifies the
// response:
//
//	NXDOMAIN            -> available
//	answers present     -> taken
//	NOERROR, no answers -> taken (registered but unparked)
//	SERVFAIL/REFUSED    -> available (no authoritative servers)
//	timeout/other       -> unknown
func newWireLookup(resolver string, timeout time.Duration) DNSLookup {
	server := resolver
	if server == "" {
		if conf, err := dns.ClientConfigFromFile("/etc/resolv.conf"); err == nil && len(conf.Servers) > 0 {
			server = conf.Servers[0] + ":" + conf.Port
		} else {
			server = "8.8.8.8:53"
		}
	}

	client := &dns.Client{Timeout: timeout}

	return func(ctx context.Context, domain string) Status {
		msg := new(dns.Msg)
		msg.SetQuestion(dns.Fqdn(domain), dns.TypeA)

		resp, _, err := client.ExchangeContext(ctx, msg, server)
		if err != nil || resp == nil {
			return StatusUnknown
		}

		switch resp.Rcode {
		case dns.RcodeNameError:
			return StatusAvailable
		case dns.RcodeSuccess:
			return StatusTaken
		case dns.RcodeServerFailure, dns.RcodeRefused:
			return StatusAvailable
		default:
			return StatusUnknown
		}
	}
}
