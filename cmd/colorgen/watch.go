package main

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"tools.zach/dev/colorsets/internal/watch"
)

// settleDelay lets a burst of writes from one save finish before the
// catalog is regenerated.
const settleDelay = 150 * time.Millisecond

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the catalog whenever the config or palette file changes",
		Long: `watch generates the catalog once, then regenerates it each time the config
file or the palette file changes. A failed regeneration is logged and the
previous catalog is left as written; watching continues until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runWatch(cmd)
		},
	}
}

func (a *app) runWatch(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if _, err := a.generate(ctx, a.cfg); err != nil {
		return err
	}

	for {
		files := a.cfg.WatchedFiles(a.opts.configPath)
		w, err := watch.New(files...)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		if w.Polling() {
			slog.Info("using polling mode for file watching")
		}
		slog.Info("watching for changes", "files", files)

		reload := a.waitChange(cmd, w)
		w.Close()
		if !reload {
			return nil
		}
	}
}

// waitChange regenerates on each change until the set of watched files
// changes (reload = true) or ctx is done (reload = false).
func (a *app) waitChange(cmd *cobra.Command, w *watch.Watcher) (reload bool) {
	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			slog.Info("received shutdown signal")
			return false
		case <-w.Events():
		}

		select {
		case <-ctx.Done():
			return false
		case <-time.After(settleDelay):
		}
		select {
		case <-w.Events():
		default:
		}

		before := a.cfg.WatchedFiles(a.opts.configPath)
		if err := a.regenerate(cmd); err != nil {
			slog.Error("regeneration failed", "error", err)
		}
		if !slices.Equal(before, a.cfg.WatchedFiles(a.opts.configPath)) {
			return true
		}
	}
}

// regenerate reloads the config and rewrites the catalog. The current
// config is only replaced when the new one loads.
func (a *app) regenerate(cmd *cobra.Command) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	a.cfg = cfg
	_, err = a.generate(cmd.Context(), cfg)
	return err
}

