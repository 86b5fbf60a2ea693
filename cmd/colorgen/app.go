package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"tools.zach/dev/colorsets/internal/config"
	"tools.zach/dev/colorsets/internal/logger"
	"tools.zach/dev/colorsets/internal/paths"
)

// skipConfig marks commands that must run without loading colorgen.toml.
const skipConfig = "skip-config"

// options holds flag values shared by every command.
type options struct {
	configPath string
	out        string
	dark       string
	include    []string
	exclude    []string
	logLevel   string
}

// app carries the state shared between the root command's pre-run and the
// subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	opts   options

	cfg       *config.Config
	logCloser io.Closer
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

// execute runs the command tree with args and releases the log file.
func (a *app) execute(ctx context.Context, args []string) error {
	root := a.root()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if a.logCloser != nil {
		a.logCloser.Close()
	}
	return err
}

// root builds the command tree. Running the root command without a
// subcommand generates the catalog.
func (a *app) root() *cobra.Command {
	root := &cobra.Command{
		Use:   paths.BinaryName,
		Short: "Generate Xcode color sets from a palette",
		Long: `colorgen writes one <variant>.colorset/Contents.json per palette color
into an Xcode asset catalog. Settings are read from colorgen.toml when present;
flags override them.`,
		Version:           resolveVersion(),
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runGenerate,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.opts.configPath, "config", "c", paths.ConfigFile, "config file")
	pf.StringVar(&a.opts.out, "out", "", "asset catalog directory (overrides output.base_path)")
	pf.StringVar(&a.opts.dark, "dark", "", "dark-mode policy: auto, mirror, or off")
	pf.StringArrayVar(&a.opts.include, "include", nil, "only write variants matching this Family/variant glob (repeatable)")
	pf.StringArrayVar(&a.opts.exclude, "exclude", nil, "skip variants matching this Family/variant glob (repeatable)")
	pf.StringVar(&a.opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, or error")

	root.AddCommand(
		a.generateCmd(),
		a.watchCmd(),
		a.listCmd(),
		a.previewCmd(),
		a.paletteCmd(),
		a.configCmd(),
	)
	return root
}

// setup loads the config, applies flag overrides, and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipConfig] == "true" {
		a.installLogger(config.DefaultConfig().Log, cmd)
		return nil
	}
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.installLogger(cfg.Log, cmd)
	slog.Debug("config loaded", "path", a.opts.configPath, "version", resolveVersion())
	return nil
}

// loadConfig reads the config file and applies flags that were set
// explicitly on the command line.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.Output.BasePath = a.opts.out
	}
	if flags.Changed("dark") {
		cfg.Output.DarkMode = a.opts.dark
	}
	if flags.Changed("include") {
		cfg.Palette.Include = a.opts.include
	}
	if flags.Changed("exclude") {
		cfg.Palette.Exclude = a.opts.exclude
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func (a *app) installLogger(lc config.LogConfig, cmd *cobra.Command) {
	level := lc.Level
	if cmd.Flags().Changed("log-level") {
		level = a.opts.logLevel
	}
	log, closer := logger.New(logger.Options{
		Level:     logger.ParseLevel(level),
		Console:   a.stderr,
		File:      lc.File,
		MaxSizeMB: lc.MaxSizeMB,
	})
	a.logCloser = closer
	slog.SetDefault(log)
}
