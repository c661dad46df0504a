package probe

import (
	"context"
	"time"
)

// RetryChecker wraps another Checker and re-runs it until it succeeds or
// the extra attempts are used up. Retries happen back to back with no
// delay; the per-attempt timeout belongs to the wrapped checker, so the
// series as a whole has no deadline of its own.
type RetryChecker struct {
	Inner   Checker
	Retries int // attempts beyond the first; 0 means exactly one attempt
}

func (r *RetryChecker) Check(ctx context.Context, target string) CheckResult {
	attempts := r.Retries + 1
	if attempts < 1 {
		attempts = 1
	}

	start := time.Now()
	var last CheckResult
	for i := 0; i < attempts; i++ {
		last = r.Inner.Check(ctx, target)
		if last.Success {
			break
		}
	}
	// Elapsed spans the whole series; Message stays the final attempt's,
	// untouched, so reports carry the real error text.
	last.Elapsed = time.Since(start)
	return last
}
