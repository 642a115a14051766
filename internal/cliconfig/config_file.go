package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Dir        string `toml:"dir"`
	Out        string `toml:"out"`
	Workers    int    `toml:"workers"`
	FailFast   *bool  `toml:"fail_fast"`
	DryRun     *bool  `toml:"dry_run"`
	StagingDir string `toml:"staging_dir"`
	MaxFrames  int    `toml:"max_frames"`
	Watch      *bool  `toml:"watch"`
	Settle     string `toml:"settle"`
	LogLevel   string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.tiff2pdf/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".tiff2pdf", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("dir", fc.Dir, &cfg.Dir)
	s.setString("out", fc.Out, &cfg.Out)
	s.setString("staging-dir", fc.StagingDir, &cfg.StagingDir)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("workers", fc.Workers, &cfg.Workers)
	s.setInt("max-frames", fc.MaxFrames, &cfg.MaxFrames)

	if err := s.setDuration("settle", fc.Settle, &cfg.Settle); err != nil {
		return err
	}

	s.setBool("fail-fast", fc.FailFast, &cfg.FailFast)
	s.setBool("dry-run", fc.DryRun, &cfg.DryRun)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
