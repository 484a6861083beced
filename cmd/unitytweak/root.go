package main

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/unitytweak/cmd/unitytweak/commands"
	"github.com/walteh/unitytweak/cmd/unitytweak/opts"
	"github.com/walteh/unitytweak/pkg/config"
	"github.com/walteh/unitytweak/pkg/log"
	"github.com/walteh/unitytweak/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the persistent flags shared by every command
type rootFlags struct {
	configFile      string
	debug           bool
	project         string
	dryRun          bool
	continueOnError bool
	backup          bool
	diff            bool
	summary         bool
	async           bool
	noColor         bool
}

// newRootCmd builds the command tree. Console lines go to the command's
// stdout, structured logs to its stderr.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "unitytweak",
		Short: "Apply build optimizations to a Unity project",
		Long: `unitytweak rewrites Unity project files in place: it enables crunched
compression on texture meta files and sets the managed code stripping level
in the project settings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsConfig(cmd) {
				return nil
			}

			zlog := setupLogging(cmd.ErrOrStderr(), flags.debug, flags.colored())
			ctx := zlog.WithContext(cmd.Context())

			if err := newRootOpts(ctx, cmd, flags, rootOpts); err != nil {
				return err
			}

			cmd.SetContext(log.NewContext(ctx, rootOpts.Logger))
			return nil
		},
	}

	addRootFlags(rootCmd, flags)

	rootCmd.AddCommand(
		commands.NewTexturesCmd(rootOpts),
		commands.NewStrippingCmd(rootOpts),
		commands.NewAllCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}

// skipConfigAnnotation marks commands that run without loading the config
const skipConfigAnnotation = "unitytweak.skip-config"

// skipsConfig reports whether cmd is informational: version, help or
// shell completion. A broken config must not stop these.
func skipsConfig(cmd *cobra.Command) bool {
	if _, ok := cmd.Annotations[skipConfigAnnotation]; ok {
		return true
	}
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return cmd.HasParent() && cmd.Parent().Name() == "completion"
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path (.yaml, .json or .hcl)")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&flags.project, "project", "p", "", "unity project directory (default: current directory)")
	cmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "report changes without writing them")
	cmd.PersistentFlags().BoolVar(&flags.continueOnError, "continue-on-error", false, "keep going when a file fails and report all failures at the end")
	cmd.PersistentFlags().BoolVar(&flags.backup, "backup", false, "copy each file to <file>.bak before rewriting it")
	cmd.PersistentFlags().BoolVar(&flags.diff, "diff", false, "print the change made to each file")
	cmd.PersistentFlags().BoolVar(&flags.summary, "summary", false, "print a table of every file looked at")
	cmd.PersistentFlags().BoolVar(&flags.async, "async", false, "run independent operations concurrently")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")
}

// setupLogging configures zerolog based on flags
func setupLogging(w io.Writer, debug, colored bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !colored}).Level(level).With().Timestamp().Logger()
}

func (f *rootFlags) colored() bool {
	return !f.noColor && !color.NoColor
}

// newRootOpts loads the config, applies explicitly set flags over it and
// creates the shared file manager and console logger.
func newRootOpts(ctx context.Context, cmd *cobra.Command, flags *rootFlags, o *opts.RootOpts) error {
	zlog := zerolog.Ctx(ctx)

	cfg, err := config.Load(ctx, flags.configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	changed := cmd.Flags().Changed
	if changed("project") {
		cfg.Project = flags.project
	}
	if changed("dry-run") {
		cfg.DryRun = flags.dryRun
	}
	if changed("continue-on-error") {
		cfg.ContinueOnError = flags.continueOnError
	}
	if changed("backup") {
		cfg.Backup = flags.backup
	}
	if changed("diff") {
		cfg.Diff = flags.diff
	}
	if changed("summary") {
		cfg.Summary = flags.summary
	}
	if changed("async") {
		cfg.Async = flags.async
	}

	if err := cfg.Validate(); err != nil {
		return errors.Errorf("validating config: %w", err)
	}

	zlog.Debug().Str("config", cfg.String()).Bool("dry_run", cfg.DryRun).Msg("configuration loaded")

	o.Config = cfg
	o.Files = status.New(status.Options{DryRun: cfg.DryRun, Backup: cfg.Backup})
	o.Logger = log.New(cmd.OutOrStdout(), *zlog, flags.colored())
	o.ZLog = zlog

	return nil
}
