// Package report turns check results into the two run outputs: live
// progress lines during the run and the JSON report after it.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hamed0406/webcheck/internal/domain"
)

// LineReporter prints one line per finished check. Lines appear in
// completion order, so fast endpoints show up before slow ones regardless
// of input position.
type LineReporter struct {
	W io.Writer
}

func NewLineReporter(w io.Writer) *LineReporter {
	return &LineReporter{W: w}
}

func (l *LineReporter) Report(r domain.CheckResult) {
	fmt.Fprintf(l.W, "%s - Status: %s, Response Time: %s\n", r.URL, statusText(r), r.Elapsed)
}

func statusText(r domain.CheckResult) string {
	if r.Success && r.StatusCode != nil {
		return strconv.Itoa(*r.StatusCode)
	}
	if r.Error != nil {
		return *r.Error
	}
	return "unknown"
}
