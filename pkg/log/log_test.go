package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bft-labs/tiff2pdf"
	"github.com/bft-labs/tiff2pdf/pkg/log"
)

func TestNewZerolog_WithConverter(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "scan.tif"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	c, err := tiff2pdf.New(tiff2pdf.Config{Directory: dir},
		tiff2pdf.WithLogger(log.NewZerolog(zerolog.New(&buf))))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Convert(context.Background()); err != nil {
		t.Fatalf("Convert: %v", err)
	}

	var sawSkip bool
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("log line is not JSON: %q", line)
		}
		if entry["level"] == "warn" && entry["count"] == float64(1) {
			sawSkip = true
		}
	}
	if !sawSkip {
		t.Errorf("expected a warning about the unrecognized file, got:\n%s", buf.String())
	}
}

func TestNewNoop(t *testing.T) {
	l := log.NewNoop()
	l.Info("ignored", log.String("k", "v"), log.Int("n", 1), log.Err(nil))
}
