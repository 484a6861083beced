package opts

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/unitytweak/pkg/config"
	"github.com/walteh/unitytweak/pkg/log"
	"github.com/walteh/unitytweak/pkg/operation"
	"github.com/walteh/unitytweak/pkg/status"
)

// RootOpts contains shared options used by all commands.
// It is filled in by the root command before any subcommand runs.
type RootOpts struct {
	Config *config.Config
	Files  *status.Manager
	Logger *log.Logger
	ZLog   *zerolog.Logger
}

// Operation returns the options every operation is built from
func (o *RootOpts) Operation() operation.Options {
	return operation.Options{
		Config: o.Config,
		Files:  o.Files,
		Logger: o.Logger,
	}
}

// Run executes ops and prints the summary when asked for or when files failed
func (o *RootOpts) Run(ctx context.Context, ops ...operation.Operation) error {
	runner := operation.NewRunner(o.ZLog, o.Config.Async)
	err := runner.Run(ctx, ops...)

	summary := o.Files.Summary()
	if o.Config.Summary || summary.Failed > 0 {
		o.Logger.Summary(o.Files.Files(), summary, o.Files.DryRun())
	}

	return err
}
