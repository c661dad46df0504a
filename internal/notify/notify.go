// Package notify delivers post-run notifications. Delivery is best effort:
// callers log failures and move on, a run never fails because of it.
package notify

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/hamed0406/webcheck/internal/domain"
)

type Notifier interface {
	Send(ctx context.Context, title, text string) error
}

// Multi fans one message out to several notifiers and reports every
// failure, not just the first.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, title, text string) error {
	var errs error
	for _, n := range m {
		if n == nil {
			continue
		}
		errs = multierr.Append(errs, n.Send(ctx, title, text))
	}
	return errs
}

const summaryMaxLines = 10

// RunSummary renders the notification for a finished run: how many targets
// never answered, and which ones, capped to keep messages readable.
func RunSummary(results []domain.CheckResult) (title, text string) {
	var down []domain.CheckResult
	for _, r := range results {
		if !r.Success {
			down = append(down, r)
		}
	}

	title = fmt.Sprintf("webcheck: %d of %d targets unreachable", len(down), len(results))

	var b strings.Builder
	for i, r := range down {
		if i == summaryMaxLines {
			fmt.Fprintf(&b, "... and %d more\n", len(down)-summaryMaxLines)
			break
		}
		reason := "unknown error"
		if r.Error != nil {
			reason = *r.Error
		}
		fmt.Fprintf(&b, "- %s: %s\n", r.URL, reason)
	}
	return title, strings.TrimRight(b.String(), "\n")
}
