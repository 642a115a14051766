package ports

import "github.com/bft-labs/tiff2pdf/internal/domain"

// FileSystem abstracts the directory operations of a conversion run.
type FileSystem interface {
	// ListTIFF returns the TIFF files directly inside dir, sorted by name.
	// Subdirectories are not descended into.
	ListTIFF(dir string) ([]domain.SourceFile, error)

	// EnsureDir creates dir and any missing parents.
	// created is false when the directory already existed.
	EnsureDir(dir string) (created bool, err error)

	// Remove deletes a file. A missing file is not an error.
	Remove(path string) error
}
