// Package backup keeps a one-time snapshot of the original icon files.
//
// A backup, once written, is authoritative: later runs leave it alone even
// if the live file has changed since, unless Force is set.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"purple-icons/internal/imgio"
)

// Set is a backup directory.
type Set struct {
	Dir string
	// Force replaces existing backups instead of keeping the first copy.
	Force bool
}

// Ensure creates the backup directory if needed and reports whether it
// had to be created.
func (s Set) Ensure() (created bool, err error) {
	info, err := os.Stat(s.Dir)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, fmt.Errorf("backup dir %s: not a directory", s.Dir)
	case !imgio.IsNotExist(err):
		return false, fmt.Errorf("backup dir %s: %w", s.Dir, err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return false, fmt.Errorf("create backup dir %s: %w", s.Dir, err)
	}
	return true, nil
}

// Path returns where the backup of name lives.
func (s Set) Path(name string) string {
	return filepath.Join(s.Dir, filepath.Base(name))
}

// Has reports whether a backup of name exists.
func (s Set) Has(name string) bool {
	return imgio.Exists(s.Path(name))
}

// Save copies src byte for byte into the set under its base name. It
// returns false without touching anything when a backup already exists
// and Force is not set.
func (s Set) Save(src string) (bool, error) {
	if !s.Force && s.Has(src) {
		return false, nil
	}

	in, err := os.Open(src)
	if err != nil {
		return false, fmt.Errorf("backup %s: %w", src, err)
	}
	defer in.Close()

	err = imgio.WriteAtomic(s.Path(src), func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("backup %s: %w", src, err)
	}
	return true, nil
}
