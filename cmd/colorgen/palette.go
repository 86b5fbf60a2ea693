package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"tools.zach/dev/colorsets/internal/atomicfile"
	"tools.zach/dev/colorsets/internal/palette"
)

func (a *app) paletteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Palette file management",
	}
	cmd.AddCommand(a.paletteExportCmd())
	return cmd
}

func (a *app) paletteExportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the selected palette as a palette TOML file",
		Long: `export writes the palette selected by the current settings in the format
read by palette.source = "file". With no --output the palette is printed to
stdout, which makes the built-in palette a starting point for a custom one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl, err := selectTable(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			data := palette.Encode(tbl)
			if output == "" {
				_, err := a.stdout.Write(data)
				return err
			}
			if err := atomicfile.Write(output, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Wrote %s (%d variants)\n", output, tbl.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "palette file to write (default stdout)")
	return cmd
}
