package config

import (
	"context"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Environment variables that override the loaded configuration.
const (
	EnvProject         = "UNITYTWEAK_PROJECT"
	EnvDryRun          = "UNITYTWEAK_DRY_RUN"
	EnvContinueOnError = "UNITYTWEAK_CONTINUE_ON_ERROR"
	EnvBackup          = "UNITYTWEAK_BACKUP"
)

// 🌱 ApplyEnv loads an optional .env file and applies UNITYTWEAK_* overrides to cfg.
func ApplyEnv(ctx context.Context, cfg *Config) error {
	// Load .env if present; real environment variables still win.
	if err := godotenv.Load(); err != nil {
		zerolog.Ctx(ctx).Trace().Err(err).Msg("no .env file loaded")
	}

	if v, ok := os.LookupEnv(EnvProject); ok {
		cfg.Project = v
	}

	for name, dst := range map[string]*bool{
		EnvDryRun:          &cfg.DryRun,
		EnvContinueOnError: &cfg.ContinueOnError,
		EnvBackup:          &cfg.Backup,
	} {
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Errorf("invalid %s value %q: %w", name, v, err)
		}
		*dst = b
	}

	return nil
}
