package cliconfig

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger returns the console logger used by the CLI, writing to stderr at
// the given level. An empty level means info.
func Logger(level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		lvl, err = zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return zerolog.Nop(), err
		}
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
