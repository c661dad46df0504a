// Package targets assembles the set of URLs a run will check: positional
// arguments first, then the optional URL file. URLs are taken as given,
// without validation or deduplication.
package targets

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hamed0406/webcheck/internal/domain"
)

// ErrNoTargets aborts a run before any probing happens.
var ErrNoTargets = errors.New("no targets supplied: pass URLs as arguments or with --file")

// FromArgs converts positional arguments into targets, unmodified.
func FromArgs(args []string) []domain.Target {
	ts := make([]domain.Target, 0, len(args))
	for _, a := range args {
		ts = append(ts, domain.Target(a))
	}
	return ts
}

// FromFile reads one URL per line. Lines are trimmed; blank lines and
// lines starting with # are skipped.
func FromFile(path string) ([]domain.Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open url file: %w", err)
	}
	defer f.Close()

	var ts []domain.Target
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ts = append(ts, domain.Target(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read url file: %w", err)
	}
	return ts, nil
}
