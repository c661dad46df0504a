package probe

import (
	"context"
	"net/http"
	"time"
)

// HTTPChecker probes a target with a single GET request. Any response
// counts as success, a 500 included: the check asks "does the endpoint
// answer", not "is the answer healthy". Only transport-level failures
// (DNS, connection refused, timeout, unparseable URL) fail the check.
type HTTPChecker struct {
	Client    *http.Client
	UserAgent string
}

// NewHTTPChecker builds a checker whose client aborts any single attempt
// that exceeds timeout. version feeds the User-Agent, so requests identify
// the build that made them; empty falls back to "dev".
func NewHTTPChecker(timeout time.Duration, version string) *HTTPChecker {
	if version == "" {
		version = "dev"
	}
	return &HTTPChecker{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: "webcheck/" + version,
	}
}

func (h *HTTPChecker) Check(ctx context.Context, target string) CheckResult {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return CheckResult{Message: err.Error(), Elapsed: time.Since(start)}
	}
	if h.UserAgent != "" {
		req.Header.Set("User-Agent", h.UserAgent)
	}

	resp, err := h.Client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return CheckResult{Message: err.Error(), Elapsed: elapsed}
	}
	defer resp.Body.Close()

	return CheckResult{
		Success:    true,
		StatusCode: resp.StatusCode,
		Message:    resp.Status,
		Elapsed:    elapsed,
	}
}
