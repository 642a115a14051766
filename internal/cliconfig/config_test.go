package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/tiff2pdf"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Out != "_out" {
		t.Errorf("Out = %v, want _out", cfg.Out)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %v, want 1", cfg.Workers)
	}
	if cfg.MaxFrames != tiff2pdf.DefaultMaxFrames {
		t.Errorf("MaxFrames = %v, want %v", cfg.MaxFrames, tiff2pdf.DefaultMaxFrames)
	}
	if cfg.Settle != 2*time.Second {
		t.Errorf("Settle = %v, want 2s", cfg.Settle)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.Dir = "/scans"
		return cfg
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "valid defaults", modify: func(*Config) {}},
		{name: "missing dir", modify: func(c *Config) { c.Dir = "" }, wantErr: true},
		{name: "empty out", modify: func(c *Config) { c.Out = "" }, wantErr: true},
		{name: "zero workers", modify: func(c *Config) { c.Workers = 0 }, wantErr: true},
		{name: "zero max frames", modify: func(c *Config) { c.MaxFrames = 0 }, wantErr: true},
		{name: "watch without settle", modify: func(c *Config) { c.Watch = true; c.Settle = 0 }, wantErr: true},
		{name: "settle ignored without watch", modify: func(c *Config) { c.Settle = 0 }},
		{name: "upper case level", modify: func(c *Config) { c.LogLevel = "DEBUG" }},
		{name: "unknown level", modify: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, tiff2pdf.ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Library(t *testing.T) {
	cfg := Config{
		Dir:        "/scans",
		Out:        "pdf",
		Workers:    3,
		FailFast:   true,
		DryRun:     true,
		StagingDir: "/tmp/stage",
		MaxFrames:  10,
	}

	got := cfg.Library()
	want := tiff2pdf.Config{
		Directory:       "/scans",
		OutputSubfolder: "pdf",
		Workers:         3,
		FailFast:        true,
		DryRun:          true,
		StagingDir:      "/tmp/stage",
		MaxFrames:       10,
	}
	if got != want {
		t.Errorf("Library() = %+v, want %+v", got, want)
	}
}
