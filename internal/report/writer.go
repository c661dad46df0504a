package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hamed0406/webcheck/internal/domain"
)

// WriteJSON renders results as a single indented JSON array. A nil or
// empty slice renders as [] so consumers always get an array.
func WriteJSON(w io.Writer, results []domain.CheckResult) error {
	if results == nil {
		results = []domain.CheckResult{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
