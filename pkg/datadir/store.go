// Package datadir loads scheduling inputs from a directory of flat files.
// The directory holds one file per input kind; optional files that are
// absent simply yield empty collections.
package datadir

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	teamFileName           = "team.txt"
	holidaysFileName       = "holidays.txt"
	patchingFileName       = "patching.txt"
	unavailabilityFileName = "unavailability.csv"
)

// dateLayout is the on-disk date format for every input file.
const dateLayout = "2006-01-02"

// Store reads scheduling inputs from flat files under a single directory.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore creates a store over the given data directory.
func NewStore(dir string, logger *zap.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger,
	}
}

// Dir returns the directory the store reads from.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// fileExists reports whether an input file is present in the data directory.
func (s *Store) fileExists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}
