package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is created in the project folder while outputs are written and
// removed again on release.
const LockFileName = ".reelprep.lock"

// Lock acquires the advisory output lock for the project. It fails
// immediately when another reelprep process holds it. Callers must invoke
// the returned release function.
func (p *Project) Lock() (func() error, error) {
	path := filepath.Join(p.Root, LockFileName)
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire project lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("project %s is locked by another reelprep process (%s)", p.Root, path)
	}
	return func() error {
		// Remove while still held so no other process can have locked the
		// path in between.
		rmErr := os.Remove(path)
		if errors.Is(rmErr, fs.ErrNotExist) {
			rmErr = nil
		}
		if err := lock.Unlock(); err != nil {
			return fmt.Errorf("release project lock %s: %w", path, err)
		}
		if rmErr != nil {
			return fmt.Errorf("remove project lock %s: %w", path, rmErr)
		}
		return nil
	}, nil
}
