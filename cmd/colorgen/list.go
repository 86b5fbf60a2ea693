package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"tools.zach/dev/colorsets/internal/catalog"
	"tools.zach/dev/colorsets/internal/palette"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the selected palette with terminal swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl, err := selectTable(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			return printTable(a.stdout, tbl, a.cfg.Output.DarkMode)
		},
	}
}

// printTable writes one line per variant: a light swatch, a dark swatch
// when the policy writes one, the name, and the hex values. Colors are
// dropped automatically when w is not a terminal.
func printTable(w io.Writer, t *palette.Table, darkMode string) error {
	r := lipgloss.NewRenderer(w)
	family := r.NewStyle().Bold(true)
	name := r.NewStyle().Width(nameWidth(t) + 2)
	muted := r.NewStyle().Faint(true)

	var b strings.Builder
	for i, f := range t.Families {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s\n", family.Render(f.Name), muted.Render(fmt.Sprintf("(%d)", len(f.Variants))))
		for _, v := range f.Variants {
			dark := catalog.DarkValue(darkMode, v)
			darkSwatch := "    "
			hexes := v.Light
			if dark != "" {
				darkSwatch = swatch(r, dark)
				hexes += " / " + dark
			}
			fmt.Fprintf(&b, "  %s%s %s%s\n", swatch(r, v.Light), darkSwatch, name.Render(v.Name), muted.Render(hexes))
		}
	}
	fmt.Fprintf(&b, "\n%d variants\n", t.Len())

	_, err := io.WriteString(w, b.String())
	return err
}

// swatch renders a four-cell block in hex.
func swatch(r *lipgloss.Renderer, hex string) string {
	return r.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}

func nameWidth(t *palette.Table) int {
	n := 0
	for _, f := range t.Families {
		for _, v := range f.Variants {
			n = max(n, len(v.Name))
		}
	}
	return n
}
