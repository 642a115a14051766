// Package log exposes the logging abstraction accepted by
// tiff2pdf.WithLogger, together with ready-made zerolog and no-op
// implementations, so embedding programs need not implement Logger
// themselves.
//
// Usage:
//
//	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	c, err := tiff2pdf.New(cfg, tiff2pdf.WithLogger(log.NewZerolog(zl)))
package log
