// Package watch re-runs a conversion whenever TIFF files appear in a
// directory and have stopped changing for a settle period.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/tiff2pdf/internal/domain"
	"github.com/bft-labs/tiff2pdf/internal/ports"
)

// DefaultSettle is the settle period used when none is configured.
const DefaultSettle = 2 * time.Second

// RunFunc performs one conversion pass.
type RunFunc func(ctx context.Context) (domain.Report, error)

// Watcher triggers RunFunc on TIFF activity in a single directory.
// Runs never overlap: events that arrive during a run restart the settle
// timer and lead to one more run afterwards.
type Watcher struct {
	dir    string
	settle time.Duration
	run    RunFunc
	logger ports.Logger
}

// New creates a Watcher for dir. A non-positive settle uses DefaultSettle.
func New(dir string, settle time.Duration, run RunFunc, logger ports.Logger) *Watcher {
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Watcher{dir: dir, settle: settle, run: run, logger: logger}
}

// Run converts once, then waits for TIFF files to be created or written
// and converts again after the settle period. It blocks until ctx is
// canceled and returns nil in that case.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info("watching for TIFF files",
		ports.String("dir", w.dir),
		ports.Duration("settle", w.settle),
	)

	w.convert(ctx)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !domain.IsTIFF(filepath.Base(event.Name)) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug("TIFF activity", ports.String("file", event.Name), ports.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.settle)
			fire = timer.C
		case <-fire:
			timer, fire = nil, nil
			w.convert(ctx)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", ports.Err(err))
		}
	}
}

func (w *Watcher) convert(ctx context.Context) {
	report, err := w.run(ctx)
	if err != nil && ctx.Err() == nil {
		w.logger.Error("conversion failed",
			ports.Int("failed", len(report.Failed)),
			ports.Err(err),
		)
	}
}
