package main

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"tools.zach/dev/colorsets/internal/atomicfile"
	"tools.zach/dev/colorsets/internal/preview"
)

func (a *app) previewCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the selected palette as a PNG contact sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("output") {
				output = a.cfg.Preview.Path
			}
			tbl, err := selectTable(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			otFont, err := preview.LoadFont(a.cfg.Preview.Font)
			if err != nil {
				return err
			}
			data, err := preview.Render(tbl, preview.Options{
				SwatchSize: a.cfg.Preview.SwatchSize,
				Columns:    a.cfg.Preview.Columns,
				DarkMode:   a.cfg.Output.DarkMode,
				Font:       otFont,
			})
			if err != nil {
				return fmt.Errorf("render preview: %w", err)
			}
			if err := atomicfile.Write(output, data, 0o644); err != nil {
				return err
			}
			slog.Debug("preview rendered", "variants", tbl.Len())
			fmt.Fprintf(a.stdout, "Wrote %s (%s)\n", output, humanize.Bytes(uint64(len(data))))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write (overrides preview.path)")
	return cmd
}
