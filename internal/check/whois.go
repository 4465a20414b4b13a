package check

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"golang.org/x/time/rate"
)

// WhoisLookup verifies a domain's availability against registry WHOIS.
type WhoisLookup func(ctx context.Context, domain string) (Status, error)

// Registrar responses that mean we are being throttled.
var rateLimitPatterns = []string{
	"rate limit", "too many requests", "quota exceeded", "try again later", "blocked",
}

// Registrar free-text hints when the parser cannot classify a record.
var availablePatterns = []string{
	"no match", "not found", "no entries", "available", "domain not found",
}

var registeredPatterns = []string{"registered", "exists"}

// WhoisChecker verifies availability sequentially, pacing requests
// with a token bucket and backing off when the registrar throttles us.
type WhoisChecker struct {
	lookup            WhoisLookup
	limiter           *rate.Limiter
	backoff           time.Duration
	penalty           time.Duration
	consecutiveErrors int
}

// NewWhoisChecker builds a checker with the given per-request timeout
// and minimum interval between requests.
func NewWhoisChecker(timeout, interval time.Duration) *WhoisChecker {
	return NewWhoisCheckerWithLookup(newWhoisLookup(timeout), interval)
}

// NewWhoisCheckerWithLookup injects a lookup, used by tests.
func NewWhoisCheckerWithLookup(lookup WhoisLookup, interval time.Duration) *WhoisChecker {
	if interval <= 0 {
		interval = 1500 * time.Millisecond
	}
	return &WhoisChecker{
		lookup:  lookup,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		backoff: 5 * time.Second,
		penalty: 2 * time.Second,
	}
}

// CheckSingle verifies one domain, retrying once after a backoff if
// the registrar rate-limits us.
func (c *WhoisChecker) CheckSingle(ctx context.Context, domain string) (Status, error) {
	return c.check(ctx, domain, true)
}

func (c *WhoisChecker) check(ctx context.Context, domain string, retry bool) (Status, error) {
	if err := c.wait(ctx); err != nil {
		return StatusUnknown, err
	}

	status, err := c.lookup(ctx, domain)
	if err == nil {
		c.consecutiveErrors = 0
		return status, nil
	}

	msg := strings.ToLower(err.Error())

	if matchesAny(msg, rateLimitPatterns) {
		c.consecutiveErrors++
		if retry {
			if err := sleepCtx(ctx, c.backoff); err != nil {
				return StatusUnknown, err
			}
			return c.check(ctx, domain, false)
		}
		return StatusUnknown, err
	}

	if matchesAny(msg, availablePatterns) {
		c.consecutiveErrors = 0
		return StatusAvailable, nil
	}
	if matchesAny(msg, registeredPatterns) {
		c.consecutiveErrors = 0
		return StatusTaken, nil
	}

	c.consecutiveErrors++
	return StatusUnknown, err
}

// wait blocks for the rate limiter plus an error-proportional penalty
// (one penalty unit per consecutive failure, capped at 30s).
func (c *WhoisChecker) wait(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	if c.consecutiveErrors > 0 {
		extra := time.Duration(c.consecutiveErrors) * c.penalty
		if extra > 30*time.Second {
			extra = 30 * time.Second
		}
		return sleepCtx(ctx, extra)
	}
	return nil
}

// CheckBatch verifies domains sequentially. With stopOnFound it
// returns as soon as one available domain appears.
func (c *WhoisChecker) CheckBatch(ctx context.Context, domains []string, stopOnFound bool) (map[string]Status, error) {
	results := make(map[string]Status, len(domains))
	for _, domain := range domains {
		status, err := c.CheckSingle(ctx, domain)
		if err != nil && errors.Is(err, context.Canceled) {
			return results, err
		}
		results[domain] = status
		if stopOnFound && status == StatusAvailable {
			break
		}
	}
	return results, nil
}

// newWhoisLookup queries WHOIS and parses the record. A parseable
// record means the domain is registered; the parser's not-found error
// means it is available.
func newWhoisLookup(timeout time.Duration) WhoisLookup {
	client := whois.NewClient()
	client.SetTimeout(timeout)

	return func(ctx context.Context, domain string) (Status, error) {
		raw, err := client.Whois(domain)
		if err != nil {
			return StatusUnknown, err
		}

		_, err = whoisparser.Parse(raw)
		switch {
		case err == nil:
			return StatusTaken, nil
		case errors.Is(err, whoisparser.ErrNotFoundDomain):
			return StatusAvailable, nil
		case errors.Is(err, whoisparser.ErrReservedDomain),
			errors.Is(err, whoisparser.ErrPremiumDomain),
			errors.Is(err, whoisparser.ErrBlockedDomain):
			return StatusTaken, nil
		default:
			return StatusUnknown, err
		}
	}
}

func matchesAny(msg string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
