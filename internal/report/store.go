package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"

	"github.com/hamed0406/webcheck/internal/domain"
)

// ErrNoReport means no run has written a report yet.
var ErrNoReport = errors.New("no report available")

// Store is the port for report persistence. Swap in any backend later;
// Load returns ErrNoReport (possibly wrapped) when nothing was saved.
type Store interface {
	Save(results []domain.CheckResult) error
	Load() ([]domain.CheckResult, error)
}

// FileStore keeps the report as a JSON file on the local filesystem.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Save(results []domain.CheckResult) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	err = WriteJSON(f, results)
	return multierr.Append(err, f.Close())
}

func (s *FileStore) Load() ([]domain.CheckResult, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoReport, s.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var results []domain.CheckResult
	if err := json.Unmarshal(b, &results); err != nil {
		return nil, fmt.Errorf("parse report file: %w", err)
	}
	return results, nil
}
