package tiff2pdf

import (
	logAdapter "github.com/bft-labs/tiff2pdf/internal/adapters/log"
	"github.com/bft-labs/tiff2pdf/internal/ports"
)

// Logger is the interface for structured logging.
type Logger = ports.Logger

// LogField represents a structured log field.
type LogField = ports.Field

// Option configures optional behavior of a Converter.
type Option func(*options)

type options struct {
	logger ports.Logger
}

func defaultOptions() options {
	return options{logger: logAdapter.NewNoopLogger()}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
