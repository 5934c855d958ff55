// Package fsops provides the file operations the pipelines need on top of an
// afero filesystem: deterministic discovery of candidate files and atomic
// write-back.
package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// FS wraps an afero filesystem. Paths are slash or OS separated and relative
// to the filesystem root.
type FS struct {
	fs afero.Fs
}

// New wraps fsys.
func New(fsys afero.Fs) *FS {
	return &FS{fs: fsys}
}

// NewOS returns an FS rooted at dir on the real filesystem. dir must be an
// existing directory.
func NewOS(dir string) (*FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", abs)
	}
	return New(afero.NewBasePathFs(afero.NewOsFs(), abs)), nil
}

// NewMem returns an in-memory FS, mostly for tests.
func NewMem() *FS {
	return New(afero.NewMemMapFs())
}

// Afero exposes the underlying filesystem.
func (f *FS) Afero() afero.Fs {
	return f.fs
}

// IsDir reports whether path exists and is a directory.
func (f *FS) IsDir(path string) (bool, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// Find returns the regular files below each of dirs whose extension is one of
// exts. Missing directories are skipped. Results are de-duplicated and follow
// the lexical walk order of dirs as given.
func (f *FS) Find(dirs, exts []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, dir := range dirs {
		dir = filepath.Clean(filepath.FromSlash(dir))
		ok, err := f.IsDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
		}
		if !ok {
			continue
		}

		var found []string
		err = afero.Walk(f.fs, dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.Mode().IsRegular() || !hasExt(path, exts) {
				return nil
			}
			if !seen[path] {
				seen[path] = true
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}

// hasExt matches extensions exactly; ".TSX" is not ".tsx".
func hasExt(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// ReadFile reads the entire contents of a file.
func (f *FS) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(f.fs, path)
}

// AtomicWrite replaces path with data using a temp file in the same directory
// and a rename. The existing file mode is kept; new files get 0644.
func (f *FS) AtomicWrite(path string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := f.fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(f.fs, dir, ".padpatch-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	// Clean up temp file on error
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = f.fs.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := f.fs.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := f.fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	committed = true
	return nil
}
