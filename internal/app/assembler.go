package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/tiff2pdf/internal/domain"
	"github.com/bft-labs/tiff2pdf/internal/ports"
)

// Assembler discovers TIFF files, groups them into documents and renders
// one PDF per document group.
type Assembler struct {
	config   Config
	fs       ports.FileSystem
	decoder  ports.FrameDecoder
	canvases ports.CanvasFactory
	stager   ports.Stager
	logger   ports.Logger
}

// NewAssembler creates a new assembler with the given dependencies.
func NewAssembler(
	config Config,
	fs ports.FileSystem,
	decoder ports.FrameDecoder,
	canvases ports.CanvasFactory,
	stager ports.Stager,
	logger ports.Logger,
) *Assembler {
	return &Assembler{
		config:   config,
		fs:       fs,
		decoder:  decoder,
		canvases: canvases,
		stager:   stager,
		logger:   logger,
	}
}

// groupResult is the outcome of rendering one group.
type groupResult struct {
	path  string
	pages int
	err   error
}

// Convert runs one conversion pass over the source directory.
// The returned Report is valid even when an error is returned. Discovery
// and output-directory failures abort the run; group failures are
// isolated unless FailFast is set, and are reported as ErrGroupFailed.
func (a *Assembler) Convert(ctx context.Context) (domain.Report, error) {
	var report domain.Report
	start := time.Now()

	files, err := a.fs.ListTIFF(a.config.Directory)
	if err != nil {
		return report, err
	}
	report.Discovered = len(files)

	outDir := filepath.Join(a.config.Directory, a.config.OutputSubfolder)
	if !a.config.DryRun {
		created, err := a.fs.EnsureDir(outDir)
		if err != nil {
			return report, err
		}
		if created {
			a.logger.Info(fmt.Sprintf("Directory '%s' created.", outDir))
		}
	}

	if len(files) == 0 {
		a.logger.Info("No TIFF files found.", ports.String("dir", a.config.Directory))
		return report, nil
	}

	groups, unrecognized := domain.GroupFiles(files)
	for _, f := range unrecognized {
		report.Unrecognized = append(report.Unrecognized, f.Name)
	}
	if len(unrecognized) > 0 {
		a.logger.Warn("skipped files not matching the naming scheme",
			ports.Int("count", len(unrecognized)),
			ports.Strings("files", report.Unrecognized),
		)
	}
	report.Groups = len(groups)

	for _, g := range groups {
		g.Sort()
		a.checkGroup(g)
	}

	results := a.renderAll(ctx, groups, outDir)

	var errs []error
	for i, r := range results {
		id := groups[i].DocumentID
		switch {
		case r.err != nil:
			report.Failed = append(report.Failed, domain.GroupFailure{DocumentID: id, Err: r.err})
			errs = append(errs, fmt.Errorf("document %s: %w", id, r.err))
		case r.path == "":
			// not started because the run was canceled
		case a.config.DryRun:
			report.Planned = append(report.Planned, r.path)
		default:
			report.Created = append(report.Created, r.path)
			report.Pages += r.pages
		}
	}

	a.logger.Info("conversion finished",
		ports.Int("discovered", report.Discovered),
		ports.Int("unrecognized", len(report.Unrecognized)),
		ports.Int("groups", report.Groups),
		ports.Int("created", len(report.Created)),
		ports.Int("failed", len(report.Failed)),
		ports.Int("pages", report.Pages),
		ports.Duration("duration", time.Since(start)),
	)

	if len(errs) > 0 {
		return report, errors.Join(append([]error{domain.ErrGroupFailed}, errs...)...)
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// checkGroup warns about duplicate pages, missing pages and mixed titles.
// None of these stop the group from rendering.
func (a *Assembler) checkGroup(g *domain.DocumentGroup) {
	if dups := g.Duplicates(); len(dups) > 0 {
		a.logger.Warn("duplicate page numbers, all copies are kept",
			ports.String("document", g.DocumentID),
			ports.Ints("pages", dups),
		)
	}
	if gaps := g.Gaps(); len(gaps) > 0 {
		a.logger.Warn("missing page numbers",
			ports.String("document", g.DocumentID),
			ports.Ints("pages", gaps),
		)
	}
	if titles := g.Titles(); len(titles) > 1 {
		a.logger.Warn("document has more than one title, using the first",
			ports.String("document", g.DocumentID),
			ports.Strings("titles", titles),
		)
	}
}

// renderAll renders groups with at most Workers running at once.
// Results are indexed like groups.
func (a *Assembler) renderAll(ctx context.Context, groups []*domain.DocumentGroup, outDir string) []groupResult {
	results := make([]groupResult, len(groups))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(a.config.Workers)

	for i, g := range groups {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if egCtx.Err() != nil {
				return nil
			}
			path, pages, err := a.renderGroup(egCtx, g, outDir)
			results[i] = groupResult{path: path, pages: pages, err: err}

			if err != nil && a.config.FailFast {
				return err
			}
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

// renderGroup writes one group's PDF and returns its path and page count.
// The staging area is removed on every return path, and a partially
// written PDF is removed on failure.
func (a *Assembler) renderGroup(ctx context.Context, g *domain.DocumentGroup, outDir string) (string, int, error) {
	name, err := g.OutputName()
	if err != nil {
		a.logger.Error("cannot name output", ports.String("document", g.DocumentID), ports.Err(err))
		return "", 0, err
	}
	outPath := filepath.Join(outDir, name)

	if a.config.DryRun {
		a.logger.Info("Would create PDF: "+outPath, ports.Int("files", len(g.Entries)))
		return outPath, 0, nil
	}

	pages, err := a.drawGroup(ctx, g, outPath)
	if err != nil {
		if rmErr := a.fs.Remove(outPath); rmErr != nil {
			a.logger.Warn("cannot remove partial output", ports.String("path", outPath), ports.Err(rmErr))
		}
		a.logger.Error("document failed", ports.String("document", g.DocumentID), ports.Err(err))
		return outPath, 0, err
	}

	a.logger.Info("Created PDF: "+outPath, ports.Int("pages", pages))
	return outPath, pages, nil
}

// drawGroup streams every frame of every member file onto one canvas.
func (a *Assembler) drawGroup(ctx context.Context, g *domain.DocumentGroup, outPath string) (int, error) {
	area, err := a.stager.Open("tiff2pdf-" + g.DocumentID + "-")
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := area.Close(); err != nil {
			a.logger.Warn("cannot remove staging area", ports.String("document", g.DocumentID), ports.Err(err))
		}
	}()

	canvas := a.canvases.NewCanvas()
	for i, entry := range g.Entries {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		err := a.decoder.Frames(ctx, entry.File.Path, func(frame int, img image.Image) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Names are unique per group; the canvas caches images by path.
			staged, err := area.Put(fmt.Sprintf("p%05d-f%05d.png", i, frame), img)
			if err != nil {
				return err
			}
			b := img.Bounds()
			w, h := float64(b.Dx()), float64(b.Dy())
			canvas.AddPage(w, h)
			return canvas.DrawImage(staged, w, h)
		})
		if err != nil {
			return 0, fmt.Errorf("%s: %w", entry.File.Name, err)
		}
		a.logger.Debug("file rendered",
			ports.String("document", g.DocumentID),
			ports.String("file", entry.File.Name),
			ports.Int("page", entry.Page),
		)
	}

	if err := canvas.Save(outPath); err != nil {
		return 0, fmt.Errorf("write %s: %w", outPath, err)
	}
	return canvas.PageCount(), nil
}
