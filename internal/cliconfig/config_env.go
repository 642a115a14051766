package cliconfig

import "os"

// EnvPrefix is prepended to every environment variable read by ApplyEnvConfig.
const EnvPrefix = "TIFF2PDF_"

// ApplyEnvConfig applies TIFF2PDF_* environment variables to cfg.
// Variables override file configuration but not explicitly set flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("dir", os.Getenv(EnvPrefix+"DIR"), &cfg.Dir)
	s.setString("out", os.Getenv(EnvPrefix+"OUT"), &cfg.Out)
	s.setString("staging-dir", os.Getenv(EnvPrefix+"STAGING_DIR"), &cfg.StagingDir)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("workers", os.Getenv(EnvPrefix+"WORKERS"), &cfg.Workers); err != nil {
		return err
	}
	if err := s.setIntFromString("max-frames", os.Getenv(EnvPrefix+"MAX_FRAMES"), &cfg.MaxFrames); err != nil {
		return err
	}
	if err := s.setDuration("settle", os.Getenv(EnvPrefix+"SETTLE"), &cfg.Settle); err != nil {
		return err
	}

	s.setBoolFromString("fail-fast", os.Getenv(EnvPrefix+"FAIL_FAST"), &cfg.FailFast)
	s.setBoolFromString("dry-run", os.Getenv(EnvPrefix+"DRY_RUN"), &cfg.DryRun)
	s.setBoolFromString("watch", os.Getenv(EnvPrefix+"WATCH"), &cfg.Watch)

	return nil
}
