package probe

import (
	"context"
	"time"
)

// CheckResult is the outcome of a single probe.
//
// Success reports whether an HTTP response arrived at all; the status code
// is only meaningful when Success is true. Message carries the status line
// on success and the transport error on failure.
type CheckResult struct {
	Success    bool
	StatusCode int
	Message    string
	Elapsed    time.Duration
}

// Checker performs a single check for a given target URL.
type Checker interface {
	Check(ctx context.Context, target string) CheckResult
}
