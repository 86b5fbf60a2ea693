package main

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"tools.zach/dev/colorsets/internal/catalog"
	"tools.zach/dev/colorsets/internal/config"
	"tools.zach/dev/colorsets/internal/palette"
)

func (a *app) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write every selected colorset into the asset catalog",
		Args:  cobra.NoArgs,
		RunE:  a.runGenerate,
	}
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	_, err := a.generate(cmd.Context(), a.cfg)
	return err
}

// generate resolves the palette for cfg and writes the catalog, printing
// progress to stdout.
func (a *app) generate(ctx context.Context, cfg *config.Config) (catalog.Result, error) {
	tbl, err := selectTable(ctx, cfg)
	if err != nil {
		return catalog.Result{}, err
	}
	if tbl.Len() == 0 {
		slog.Warn("no variants selected", "include", cfg.Palette.Include, "exclude", cfg.Palette.Exclude)
	}

	g := &catalog.Generator{
		BasePath: cfg.Output.BasePath,
		DarkMode: cfg.Output.DarkMode,
		Out:      a.stdout,
	}
	res, err := g.Run(ctx, tbl)
	if err != nil {
		return res, err
	}
	slog.Info("catalog size", "bytes", humanize.Bytes(uint64(res.Bytes)), "path", cfg.Output.BasePath)
	return res, nil
}

// selectTable fetches the configured palette and applies include/exclude.
func selectTable(ctx context.Context, cfg *config.Config) (*palette.Table, error) {
	tbl, err := palette.Fetch(ctx, cfg.PaletteSource())
	if err != nil {
		return nil, err
	}
	return tbl.Filter(cfg.Palette.Include, cfg.Palette.Exclude)
}
