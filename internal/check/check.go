// Package check determines domain registration availability using a
// cached, rate-limited DNS-then-WHOIS pipeline.
package check

// Status is the tri-state outcome of an availability lookup. Unknown
// results are never reported as available.
type Status int

const (
	StatusUnknown Status = iota
	StatusAvailable
	StatusTaken
)

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusTaken:
		return "taken"
	default:
		return "unknown"
	}
}

// Method records which phase produced a result.
const (
	MethodCache = "cache"
	MethodDNS   = "dns"
	MethodWhois = "whois"
)

// Result is the outcome of checking one domain.
type Result struct {
	Domain string `json:"domain"`
	Status Status `json:"status"`
	Method string `json:"method"`
	Cached bool   `json:"cached"`
	Err    string `json:"error,omitempty"`
}

// Available reports whether the domain is confirmed available.
func (r Result) Available() bool {
	return r.Status == StatusAvailable
}

// AvailablePtr maps the tri-state status onto a nullable bool for
// storage: true, false, or nil for unknown.
func (r Result) AvailablePtr() *bool {
	switch r.Status {
	case StatusAvailable:
		v := true
		return &v
	case StatusTaken:
		v := false
		return &v
	default:
		return nil
	}
}

// Phase identifies a stage of a batch check for progress reporting.
type Phase string

const (
	PhaseCache Phase = "cache"
	PhaseDNS   Phase = "dns"
	PhaseWhois Phase = "whois"
)

// ProgressFunc receives per-phase progress updates during batch checks.
type ProgressFunc func(phase Phase, current, total int)
