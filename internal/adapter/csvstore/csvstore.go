// Package csvstore persists the dataset as a flat CSV file.
package csvstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Header is the fixed column set, in file order.
var Header = []string{"date", "mouse_id", "condition", "weight", "water_collected", "suggested_water"}

// Store reads and rewrites a single CSV file. It implements domain.DatasetRepository.
type Store struct {
	path string
}

// Open returns a Store for path, creating the parent directory if needed.
// The file itself is only created on the first Save.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("csvstore: empty path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("csvstore: create dir: %w", err)
		}
	}
	return &Store{path: path}, nil
}

// Path returns the dataset file path.
func (s *Store) Path() string { return s.path }

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("csvstore: %w", err)
	}
	return nil
}
