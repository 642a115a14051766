package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/tiff2pdf"
	logAdapter "github.com/bft-labs/tiff2pdf/internal/adapters/log"
	"github.com/bft-labs/tiff2pdf/internal/cliconfig"
	"github.com/bft-labs/tiff2pdf/internal/watch"
)

const helpDescription = `
Merge scanned TIFF pages into one PDF per document.

Files are grouped by their name, <document>_<batch>_f<page>_<title>.tif,
and written in page order to <dir>/<out>/<document>_<title>_output.pdf.
Every TIFF frame becomes one PDF page at the frame's pixel size.

Configure via file, env (TIFF2PDF_*), or flags.
`

var exampleUsage = strings.TrimSpace(`
  tiff2pdf /scans/incoming
  tiff2pdf --dir /scans/incoming --out pdf --workers 4
  tiff2pdf --config $HOME/.tiff2pdf/config.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log, _ := cliconfig.Logger(cfg.LogLevel)

	root := &cobra.Command{
		Use:           "tiff2pdf [dir]",
		Short:         "Merge scanned TIFF pages into one PDF per document",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.tiff2pdf/config.toml), then env, then flags
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// A positional directory counts as an explicit --dir
			if len(args) == 1 {
				if changed["dir"] && args[0] != cfg.Dir {
					return fmt.Errorf("%w: both --dir and a positional directory given", tiff2pdf.ErrInvalidConfig)
				}
				cfg.Dir = args[0]
				changed["dir"] = true
			}

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Apply environment variables (TIFF2PDF_*)
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			var err error
			log, err = cliconfig.Logger(cfg.LogLevel)
			if err != nil {
				return err
			}
			log.Debug().Interface("config", cfg).Msg("configuration")

			logger := logAdapter.NewZerologAdapterWithLogger(log)
			converter, err := tiff2pdf.New(cfg.Library(), tiff2pdf.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("create converter: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Watch {
				w := watch.New(cfg.Dir, cfg.Settle, converter.Convert, logger)
				if err := w.Run(ctx); err != nil {
					return err
				}
				log.Info().Msg("received signal, stopping...")
				return nil
			}

			_, err = converter.Convert(ctx)
			return err
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.tiff2pdf/config.toml)")
	root.Flags().StringVar(&cfg.Dir, "dir", cfg.Dir, "source directory containing TIFF files")
	root.Flags().StringVar(&cfg.Out, "out", cfg.Out, "output subdirectory created inside the source directory")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "number of documents converted concurrently")
	root.Flags().BoolVar(&cfg.FailFast, "fail-fast", cfg.FailFast, "stop at the first document that fails")
	root.Flags().BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "report planned PDFs without writing anything")
	root.Flags().StringVar(&cfg.StagingDir, "staging-dir", cfg.StagingDir, "directory for temporary page images (default: OS temp dir)")
	root.Flags().IntVar(&cfg.MaxFrames, "max-frames", cfg.MaxFrames, "maximum frames read from a single TIFF file")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "keep running and convert again when TIFF files arrive")
	root.Flags().DurationVar(&cfg.Settle, "settle", cfg.Settle, "quiet period after the last TIFF change before converting (watch mode)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("tiff2pdf")
		os.Exit(1)
	}
}
