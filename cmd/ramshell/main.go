package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/brettbedarf/ramshell/config"
	"github.com/brettbedarf/ramshell/internal/util"
	"github.com/brettbedarf/ramshell/machine"
	"github.com/brettbedarf/ramshell/requests"
)

type options struct {
	configPath string
	envFiles   []string
	layout     string
	verbose    int
	plain      bool
	logFile    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ramshell",
		Short: "a tiny shell over a memory-only file table",
		Long: `ramshell boots a fixed-size, memory-only table of files and directories
and drops you into a shell for it. Nothing is persisted.

Settings are layered: defaults, then --config, then RAMSHELL_* variables
(from --env files and the process environment), then flags.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML or JSON config file")
	flags.StringSliceVar(&opts.envFiles, "env", nil, "`.env` files with RAMSHELL_* settings")
	flags.StringVarP(&opts.layout, "layout", "l", "", "layout file (YAML or JSON) seeded after the default layout")
	flags.IntVarP(&opts.verbose, "verbose", "v", config.InfoVerbose, "log verbosity between 1 (error) and 5 (trace)")
	flags.BoolVarP(&opts.plain, "plain", "p", false, "read lines from stdin and write to stdout instead of the terminal UI")
	flags.StringVar(&opts.logFile, "log-file", "", "append logs to this file")

	return cmd
}

// loadConfig layers defaults, the config file, the environment and the flags
// that were set explicitly.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.NewConfigFromFile(opts.configPath); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	env, err := config.LoadEnvOverride(opts.envFiles...)
	if err != nil {
		return nil, err
	}
	cfg.Merge(env)

	var flagOverride config.ConfigOverride
	if cmd.Flags().Changed("verbose") {
		flagOverride.LogLvl = util.Pointer(opts.verbose)
	}
	if cmd.Flags().Changed("layout") {
		flagOverride.Layout = util.Pointer(opts.layout)
	}
	cfg.Merge(&flagOverride)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// logOutput picks where logs go: the log file when set, stderr in plain
// mode, nowhere when the terminal UI owns the screen.
func logOutput(cmd *cobra.Command, opts *options) (io.Writer, func(), error) {
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}
	if opts.plain {
		return cmd.ErrOrStderr(), func() {}, nil
	}
	return io.Discard, func() {}, nil
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	out, closeLog, err := logOutput(cmd, opts)
	if err != nil {
		return err
	}
	defer closeLog()
	util.InitializeLogger(cfg.LogLvl, out)
	logger := util.GetLogger("main")

	logger.Info().
		Int("slots", cfg.TableCapacity).
		Int("max_file_size", cfg.MaxFileSize).
		Str("layout", cfg.Layout).
		Bool("plain", opts.plain).
		Msg("ramshell initializing")

	m := machine.New(cfg)
	if _, err := m.Seed(machine.DefaultLayout(cfg)); err != nil {
		logger.Warn().Err(err).Msg("Default layout partially applied")
	}
	if cfg.Layout != "" {
		reqs, err := requests.LoadLayoutFile(cfg.Layout)
		if err != nil {
			return err
		}
		if _, err := m.Seed(reqs); err != nil {
			logger.Warn().Err(err).Str("layout", cfg.Layout).Msg("Layout partially applied")
		}
	} else {
		logger.Debug().Msg("No layout file provided")
	}

	ctx := cmd.Context()
	if opts.plain {
		err = m.RunPlain(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	} else {
		err = m.RunTerminal(ctx)
	}
	if err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info().Msg("ramshell stopped")
	return nil
}
