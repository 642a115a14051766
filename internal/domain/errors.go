package domain

import "errors"

// Domain errors represent error conditions in the tiff2pdf domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("tiff2pdf: invalid configuration")

	// ErrGroupFailed is returned by Convert when at least one document group
	// could not be rendered. The per-group causes are joined to it.
	ErrGroupFailed = errors.New("tiff2pdf: document group failed")

	// ErrUnsafeOutputName is returned when a document title would produce an
	// output filename that escapes the output directory.
	ErrUnsafeOutputName = errors.New("tiff2pdf: unsafe output name")

	// ErrNotTIFF is returned when a file does not start with a TIFF header.
	ErrNotTIFF = errors.New("tiff2pdf: not a TIFF file")

	// ErrNoFrames is returned when a TIFF file contains no image directories.
	ErrNoFrames = errors.New("tiff2pdf: no frames in TIFF file")

	// ErrTooManyFrames is returned when a TIFF file has more image
	// directories than the configured limit.
	ErrTooManyFrames = errors.New("tiff2pdf: too many frames in TIFF file")
)
