package log

import (
	"time"

	"github.com/rs/zerolog"

	adapter "github.com/bft-labs/tiff2pdf/internal/adapters/log"
	"github.com/bft-labs/tiff2pdf/internal/ports"
)

// Logger provides structured logging capabilities.
type Logger = ports.Logger

// Field represents a key-value pair for structured logging.
type Field = ports.Field

// NewZerolog wraps an existing zerolog.Logger.
func NewZerolog(logger zerolog.Logger) Logger {
	return adapter.NewZerologAdapterWithLogger(logger)
}

// NewConsole returns a zerolog console logger on stderr with RFC3339
// timestamps.
func NewConsole() Logger {
	return adapter.NewZerologAdapter()
}

// NewNoop returns a Logger that discards everything.
func NewNoop() Logger {
	return adapter.NewNoopLogger()
}

// String creates a string field.
func String(key, value string) Field { return ports.String(key, value) }

// Strings creates a string slice field.
func Strings(key string, value []string) Field { return ports.Strings(key, value) }

// Int creates an int field.
func Int(key string, value int) Field { return ports.Int(key, value) }

// Bool creates a bool field.
func Bool(key string, value bool) Field { return ports.Bool(key, value) }

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field { return ports.Duration(key, value) }

// Err creates an error field with key "error".
func Err(err error) Field { return ports.Err(err) }
