package fs

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/bft-labs/tiff2pdf/internal/ports"
)

// TempStager implements ports.Stager with directories from os.MkdirTemp.
type TempStager struct {
	root string
}

// NewTempStager creates a stager rooted at root. An empty root uses the
// operating system's temporary directory.
func NewTempStager(root string) *TempStager {
	return &TempStager{root: root}
}

// Open creates a fresh staging directory.
func (s *TempStager) Open(prefix string) (ports.StagingArea, error) {
	dir, err := os.MkdirTemp(s.root, prefix)
	if err != nil {
		return nil, fmt.Errorf("create staging directory: %w", err)
	}
	return &tempArea{dir: dir}, nil
}

// tempArea is one staging directory. Frames are stored as PNG.
type tempArea struct {
	dir  string
	once sync.Once
	err  error
}

// Put encodes img as PNG into the staging directory.
func (a *tempArea) Put(name string, img image.Image) (string, error) {
	if filepath.Base(name) != name {
		return "", fmt.Errorf("invalid staging name %q", name)
	}
	path := filepath.Join(a.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// Close removes the staging directory and its contents.
func (a *tempArea) Close() error {
	a.once.Do(func() {
		a.err = os.RemoveAll(a.dir)
	})
	return a.err
}
