// Package runlock serializes migration runs against a shared store.
//
// The migrator assumes exclusive single-writer access to the database for
// the duration of a run; the run-scoped slug registry and lookup caches are
// not safe to share across concurrent runs. A file lock next to the
// database enforces that assumption.
package runlock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Lock is a held exclusive run lock.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes the exclusive lock at path without blocking. It fails when
// another run already holds the lock.
func Acquire(path string) (*Lock, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create lock directory: %w", err)
		}
	}

	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another quizdb run holds the lock at %s", path)
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock. Safe to call on a nil lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
