package domain

import "time"

// CheckResult is the outcome of checking one Target. Success reports whether
// any HTTP response arrived; a 404 or 500 still counts as a success because
// the endpoint answered. Status classification is left to report consumers.
type CheckResult struct {
	URL        string        `json:"url"`
	StatusCode *int          `json:"status_code"` // pointer to allow nil
	Success    bool          `json:"success"`
	Error      *string       `json:"error"` // pointer to allow nil
	Elapsed    time.Duration `json:"-"`
}

// Succeeded builds the result for a target that answered with code.
func Succeeded(url string, code int, elapsed time.Duration) CheckResult {
	return CheckResult{
		URL:        url,
		StatusCode: &code,
		Success:    true,
		Elapsed:    elapsed,
	}
}

// Failed builds the result for a target that produced no HTTP response.
// The reason is the final failure description after all attempts.
func Failed(url string, reason string, elapsed time.Duration) CheckResult {
	if reason == "" {
		reason = "unknown error"
	}
	return CheckResult{
		URL:     url,
		Success: false,
		Error:   &reason,
		Elapsed: elapsed,
	}
}
