package app

import (
	"fmt"
	"strings"

	"github.com/bft-labs/tiff2pdf/internal/domain"
)

// DefaultOutputSubfolder is the output directory name used when none is set.
const DefaultOutputSubfolder = "_out"

// Config contains the settings of one Assembler. It is immutable after
// the Assembler is constructed.
type Config struct {
	// Directory is the source directory scanned for TIFF files
	Directory string

	// OutputSubfolder is created under Directory to receive the PDFs
	OutputSubfolder string

	// Workers is the number of document groups rendered concurrently
	Workers int

	// FailFast stops the run at the first failed group
	FailFast bool

	// DryRun plans outputs without decoding or writing anything
	DryRun bool
}

// SetDefaults fills zero values with defaults.
func (c *Config) SetDefaults() {
	if c.OutputSubfolder == "" {
		c.OutputSubfolder = DefaultOutputSubfolder
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Directory == "" {
		return fmt.Errorf("%w: directory is required", domain.ErrInvalidConfig)
	}
	if c.OutputSubfolder == "" {
		return fmt.Errorf("%w: output subfolder is required", domain.ErrInvalidConfig)
	}
	if strings.Contains(c.OutputSubfolder, "..") {
		return fmt.Errorf("%w: output subfolder %q must stay inside the source directory",
			domain.ErrInvalidConfig, c.OutputSubfolder)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive", domain.ErrInvalidConfig)
	}
	return nil
}
