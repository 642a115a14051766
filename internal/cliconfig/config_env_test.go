package cliconfig

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"TIFF2PDF_DIR":         "/env/scans",
				"TIFF2PDF_OUT":         "env_out",
				"TIFF2PDF_WORKERS":     "3",
				"TIFF2PDF_FAIL_FAST":   "true",
				"TIFF2PDF_DRY_RUN":     "1",
				"TIFF2PDF_STAGING_DIR": "/env/stage",
				"TIFF2PDF_MAX_FRAMES":  "100",
				"TIFF2PDF_WATCH":       "true",
				"TIFF2PDF_SETTLE":      "10s",
				"TIFF2PDF_LOG_LEVEL":   "debug",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Dir:        "/env/scans",
				Out:        "env_out",
				Workers:    3,
				FailFast:   true,
				DryRun:     true,
				StagingDir: "/env/stage",
				MaxFrames:  100,
				Watch:      true,
				Settle:     10 * time.Second,
				LogLevel:   "debug",
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"TIFF2PDF_DIR":     "/env/scans",
				"TIFF2PDF_WORKERS": "3",
			},
			changed:  map[string]bool{"dir": true},
			initial:  Config{Dir: "/cli/scans"},
			expected: Config{Dir: "/cli/scans", Workers: 3},
		},
		{
			name:     "non-positive workers ignored",
			envVars:  map[string]string{"TIFF2PDF_WORKERS": "0"},
			changed:  map[string]bool{},
			initial:  Config{Workers: 2},
			expected: Config{Workers: 2},
		},
		{
			name:     "returns error for invalid duration",
			envVars:  map[string]string{"TIFF2PDF_SETTLE": "not-a-duration"},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
		{
			name:     "returns error for invalid int",
			envVars:  map[string]string{"TIFF2PDF_MAX_FRAMES": "lots"},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.expected, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Integration test: precedence order (CLI > Env > File > defaults)
func TestConfigPrecedence(t *testing.T) {
	trueVal := true

	fileConf := FileConfig{
		Dir:      "/file/scans",
		Out:      "file_out",
		Workers:  4,
		FailFast: &trueVal,
	}

	t.Setenv("TIFF2PDF_DIR", "/env/scans")
	t.Setenv("TIFF2PDF_OUT", "env_out")

	// Simulate CLI flags
	changed := map[string]bool{"dir": true}

	cfg := DefaultConfig()
	cfg.Dir = "/cli/scans"

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	if cfg.Dir != "/cli/scans" {
		t.Errorf("Dir = %v, want /cli/scans (CLI should win)", cfg.Dir)
	}
	if cfg.Out != "env_out" {
		t.Errorf("Out = %v, want env_out (env should override file)", cfg.Out)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %v, want 4 (file should set)", cfg.Workers)
	}
	if !cfg.FailFast {
		t.Error("FailFast = false, want true (file should set)")
	}
	if cfg.Settle != 2*time.Second {
		t.Errorf("Settle = %v, want 2s (default should remain)", cfg.Settle)
	}
}
