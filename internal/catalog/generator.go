// Package catalog writes a palette into an asset catalog directory: one
// <variant>.colorset/Contents.json per color variant.
//
// Every run regenerates every selected colorset from scratch. Existing
// Contents.json files are replaced in full and nothing is diffed or merged,
// so re-running after a failure is always safe. Two generators must not
// target the same catalog at the same time; nothing here locks it.
package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"tools.zach/dev/colorsets/internal/atomicfile"
	"tools.zach/dev/colorsets/internal/colorset"
	"tools.zach/dev/colorsets/internal/palette"
	"tools.zach/dev/colorsets/internal/paths"
)

// Dark-mode policies.
const (
	// DarkAuto writes a dark entry only for variants that define one.
	DarkAuto = "auto"
	// DarkMirror writes a dark entry for every variant, reusing the light
	// value where no dark value is defined.
	DarkMirror = "mirror"
	// DarkOff ignores dark values and writes light-only colorsets.
	DarkOff = "off"
)

// ///////////////////////////////////////////////
// Generator
// ///////////////////////////////////////////////

// Generator writes colorsets for a table.
type Generator struct {
	// BasePath is the asset catalog directory, e.g. Assets/Colors.xcassets.
	BasePath string
	// DarkMode is one of DarkAuto, DarkMirror, DarkOff. Empty means DarkAuto.
	DarkMode string
	// Out receives one progress line per colorset and a completion line.
	// Nil discards progress output.
	Out io.Writer
}

// Result summarizes a completed run.
type Result struct {
	// Written is the number of colorsets written.
	Written int
	// WithDark is how many of them carry a dark entry.
	WithDark int
	// Bytes is the total size of the Contents.json files written.
	Bytes int64
}

// Run writes every variant of t in table order. The first error aborts the
// run; colorsets already written stay on disk.
func (g *Generator) Run(ctx context.Context, t *palette.Table) (Result, error) {
	var res Result
	out := g.Out
	if out == nil {
		out = io.Discard
	}
	cat := paths.Catalog{Root: g.BasePath}

	err := t.Each(func(family string, v palette.Variant) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, dark, err := g.writeColorset(cat, v)
		if err != nil {
			return fmt.Errorf("%s/%s: %w", family, v.Name, err)
		}
		res.Written++
		res.Bytes += int64(n)
		suffix := ""
		if dark {
			res.WithDark++
			suffix = " (light + dark mode)"
		}
		fmt.Fprintf(out, "Created %s%s\n", cat.Contents(v.Name), suffix)
		slog.Debug("wrote colorset", "family", family, "variant", v.Name, "dark", dark)
		return nil
	})
	if err != nil {
		return res, err
	}

	fmt.Fprintf(out, "All %d color sets created successfully!\n", res.Written)
	slog.Info("catalog generated", "path", g.BasePath, "colorsets", res.Written, "dark", res.WithDark)
	return res, nil
}

// writeColorset creates the colorset directory and replaces its
// Contents.json. It returns the bytes written and whether a dark entry was
// included.
func (g *Generator) writeColorset(cat paths.Catalog, v palette.Variant) (int, bool, error) {
	if err := os.MkdirAll(cat.Colorset(v.Name), 0o755); err != nil {
		return 0, false, fmt.Errorf("create colorset dir: %w", err)
	}
	doc, err := colorset.Build(v.Light, DarkValue(g.DarkMode, v))
	if err != nil {
		return 0, false, err
	}
	data, err := doc.Encode()
	if err != nil {
		return 0, false, err
	}
	if err := atomicfile.Write(cat.Contents(v.Name), data, 0o644); err != nil {
		return 0, false, err
	}
	return len(data), doc.HasDark(), nil
}

// DarkValue applies the dark-mode policy to v and returns the hex value of
// its dark entry, or "" when none should be written.
func DarkValue(mode string, v palette.Variant) string {
	switch mode {
	case DarkOff:
		return ""
	case DarkMirror:
		if v.HasDark() {
			return v.Dark
		}
		return v.Light
	default:
		return v.Dark
	}
}

// ValidDarkMode reports whether mode names a known policy.
func ValidDarkMode(mode string) bool {
	switch mode {
	case DarkAuto, DarkMirror, DarkOff:
		return true
	}
	return false
}
