// Package tiff2pdf converts a directory of scanned, possibly multi-page
// TIFF files into one PDF per logical document.
//
// Files are named <document>_<batch>_f<page>_<title>.tif. All files of one
// document are merged in page order into
// <dir>/<out>/<document>_<title>_output.pdf, one PDF page per TIFF frame at
// the frame's pixel size.
//
// Example usage:
//
//	cfg := tiff2pdf.DefaultConfig()
//	cfg.Directory = "/scans/incoming"
//	c, err := tiff2pdf.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := c.Convert(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Created)
package tiff2pdf

import (
	"context"
	"fmt"

	"github.com/bft-labs/tiff2pdf/internal/adapters/fs"
	"github.com/bft-labs/tiff2pdf/internal/adapters/pdf"
	"github.com/bft-labs/tiff2pdf/internal/adapters/tiff"
	"github.com/bft-labs/tiff2pdf/internal/app"
	"github.com/bft-labs/tiff2pdf/internal/domain"
)

// DefaultOutputSubfolder is the output directory used when none is set.
const DefaultOutputSubfolder = app.DefaultOutputSubfolder

// DefaultMaxFrames is the per-file frame limit used when none is set.
const DefaultMaxFrames = tiff.DefaultMaxFrames

// Report summarizes one conversion run.
type Report = domain.Report

// GroupFailure describes a document that could not be converted.
type GroupFailure = domain.GroupFailure

// Errors returned by Convert and New. Use errors.Is to test for them.
var (
	ErrInvalidConfig    = domain.ErrInvalidConfig
	ErrGroupFailed      = domain.ErrGroupFailed
	ErrUnsafeOutputName = domain.ErrUnsafeOutputName
	ErrNotTIFF          = domain.ErrNotTIFF
	ErrNoFrames         = domain.ErrNoFrames
	ErrTooManyFrames    = domain.ErrTooManyFrames
)

// Config holds the settings of a Converter.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// Directory is the source directory scanned for TIFF files (required)
	Directory string

	// OutputSubfolder is created inside Directory to receive the PDFs
	OutputSubfolder string

	// Workers is the number of documents converted concurrently
	Workers int

	// FailFast stops the run at the first document that fails
	FailFast bool

	// DryRun logs and reports the planned outputs without writing
	DryRun bool

	// StagingDir is the parent of per-document staging directories.
	// Empty means the OS temp directory.
	StagingDir string

	// MaxFrames bounds the number of frames read from a single file
	MaxFrames int
}

// DefaultConfig returns a Config with default values. Directory must still
// be set.
func DefaultConfig() Config {
	return Config{
		OutputSubfolder: DefaultOutputSubfolder,
		Workers:         1,
		MaxFrames:       DefaultMaxFrames,
	}
}

// SetDefaults fills zero values with defaults.
func (c *Config) SetDefaults() {
	d := DefaultConfig()
	if c.OutputSubfolder == "" {
		c.OutputSubfolder = d.OutputSubfolder
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.MaxFrames <= 0 {
		c.MaxFrames = d.MaxFrames
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxFrames <= 0 {
		return fmt.Errorf("%w: max frames must be positive", domain.ErrInvalidConfig)
	}
	ac := c.appConfig()
	return ac.Validate()
}

func (c *Config) appConfig() app.Config {
	return app.Config{
		Directory:       c.Directory,
		OutputSubfolder: c.OutputSubfolder,
		Workers:         c.Workers,
		FailFast:        c.FailFast,
		DryRun:          c.DryRun,
	}
}

// Converter converts one source directory. It holds no state between runs,
// so Convert may be called repeatedly, for example from a watch loop.
type Converter struct {
	config    Config
	assembler *app.Assembler
}

// New creates a Converter with the given configuration.
// Returns an error wrapping ErrInvalidConfig if the configuration is invalid.
func New(cfg Config, opts ...Option) (*Converter, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	assembler := app.NewAssembler(
		cfg.appConfig(),
		fs.NewLocal(),
		tiff.NewDecoder(cfg.MaxFrames),
		pdf.NewCanvasFactory(),
		fs.NewTempStager(cfg.StagingDir),
		o.logger,
	)

	return &Converter{config: cfg, assembler: assembler}, nil
}

// Config returns the effective configuration.
func (c *Converter) Config() Config {
	return c.config
}

// Convert runs one conversion pass. The Report is populated even when an
// error is returned. A failed document yields an error wrapping
// ErrGroupFailed; other documents are still converted unless FailFast is set.
func (c *Converter) Convert(ctx context.Context) (Report, error) {
	return c.assembler.Convert(ctx)
}
