package config

// ///////////////////////////////////////////////
// Documentation Types
// ///////////////////////////////////////////////

// FieldDoc holds documentation and alternative examples for a single config field.
// The genconfig tool uses [FieldDoc] values to annotate the generated config.default.toml.
type FieldDoc struct {
	// Comment is shown as a header comment above the field in the example config.
	Comment string

	// Alternatives are shown as commented-out lines below the active value.
	Alternatives []string
}

// ///////////////////////////////////////////////
// Field Documentation Map
// ///////////////////////////////////////////////

// ConfigDocs maps TOML field paths (dot-separated, e.g. "output.dark_mode")
// to their [FieldDoc] entries.
var ConfigDocs = map[string]FieldDoc{
	// ── Root ──────────────────────────────────────────────────────
	"version": {
		Comment: "Config schema version. Do not edit.",
	},

	// ── Output ───────────────────────────────────────────────────
	"output.base_path": {
		Comment: "Asset catalog directory. Each variant becomes <base_path>/<variant>.colorset/Contents.json.",
	},
	"output.dark_mode": {
		Comment: "Dark appearance policy. Options: \"auto\", \"mirror\", \"off\"\n  auto:   add a dark entry only for variants that define one\n  mirror: add a dark entry to every variant, reusing the light color when none is defined\n  off:    write light-only colorsets",
		Alternatives: []string{
			`dark_mode = "mirror"`,
			`dark_mode = "off"`,
		},
	},

	// ── Palette ──────────────────────────────────────────────────
	"palette.source": {
		Comment: "Where the palette comes from. Options: \"builtin\", \"file\", \"url\"",
		Alternatives: []string{
			`source = "file"`,
			`source = "url"`,
		},
	},
	"palette.file": {
		Comment: "Palette TOML file for source \"file\". Export the built-in palette with: colorgen palette export",
		Alternatives: []string{
			`file = "palette.toml"`,
		},
	},
	"palette.url": {
		Comment: "Palette TOML URL for source \"url\". The last good response is cached and used when the fetch fails.",
		Alternatives: []string{
			`url = "https://example.com/palette.toml"`,
		},
	},
	"palette.cache_dir": {
		Comment: "Directory for the cached remote palette.",
	},
	"palette.include": {
		Comment: "Glob patterns matched against \"Family/variant\". When set, only matching variants are written.",
		Alternatives: []string{
			`include = ["Navy/*", "Grey/**"]`,
		},
	},
	"palette.exclude": {
		Comment: "Glob patterns matched against \"Family/variant\". Matching variants are skipped.",
		Alternatives: []string{
			`exclude = ["*/*50"]`,
		},
	},

	// ── Preview ──────────────────────────────────────────────────
	"preview.path": {
		Comment: "PNG written by: colorgen preview",
	},
	"preview.swatch_size": {
		Comment: "Swatch edge length in pixels.",
	},
	"preview.columns": {
		Comment: "Swatches per row.",
	},
	"preview.font": {
		Comment: "Label font (.ttf, .otf, .woff2). Defaults to Go Regular.",
		Alternatives: []string{
			`font = "fonts/Inter-Regular.woff2"`,
		},
	},

	// ── Log ──────────────────────────────────────────────────────
	"log.level": {
		Comment: "Minimum log level. Options: \"trace\", \"debug\", \"info\", \"warn\", \"error\"",
		Alternatives: []string{
			`level = "info"`,
			`level = "debug"`,
		},
	},
	"log.file": {
		Comment: "Also write logs to this file, rotated at max_size_mb.",
		Alternatives: []string{
			`file = ".colorgen-cache/colorgen.log"`,
		},
	},
	"log.max_size_mb": {},
}
