package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bft-labs/tiff2pdf/internal/domain"
)

// Local implements ports.FileSystem on the local disk.
type Local struct{}

// NewLocal creates a Local file system adapter.
func NewLocal() *Local {
	return &Local{}
}

// ListTIFF returns regular files in dir whose names end in .tif or .tiff
// (any case), sorted by name. It does not recurse, so the output
// subdirectory is never picked up as input.
func (Local) ListTIFF(dir string) ([]domain.SourceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read source directory %s: %w", dir, err)
	}

	var files []domain.SourceFile
	for _, e := range entries {
		if e.IsDir() || !domain.IsTIFF(e.Name()) {
			continue
		}
		files = append(files, domain.SourceFile{
			Path: filepath.Join(dir, e.Name()),
			Name: e.Name(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// EnsureDir creates dir with all parents. Concurrent creators and an
// already existing directory are fine.
func (Local) EnsureDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("output path %s exists and is not a directory", dir)
		}
		return false, nil
	}
	if !errors.Is(err, iofs.ErrNotExist) {
		return false, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return true, nil
}

// Remove deletes path, ignoring a missing file.
func (Local) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return err
	}
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
