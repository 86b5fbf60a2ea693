// Package config provides configuration loading and defaults for colorgen.
//
// Configuration is read from colorgen.toml in the working directory. Every
// field is optional; a missing file yields [DefaultConfig], which writes the
// built-in palette to Assets/Colors.xcassets with light-only colorsets where
// no dark value is defined.
package config

//go:generate go run ../../cmd/genconfig

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"tools.zach/dev/colorsets/internal/atomicfile"
	"tools.zach/dev/colorsets/internal/catalog"
	"tools.zach/dev/colorsets/internal/logger"
	"tools.zach/dev/colorsets/internal/palette"
	"tools.zach/dev/colorsets/internal/paths"
)

// CurrentVersion is the config schema version written by this build.
const CurrentVersion = 1

// ///////////////////////////////////////////////
// Configuration Types
// ///////////////////////////////////////////////

// Config represents the top-level configuration.
type Config struct {
	// Version is the config schema version.
	Version int `toml:"version"`
	// Output holds asset catalog settings.
	Output OutputConfig `toml:"output"`
	// Palette holds palette source and selection settings.
	Palette PaletteConfig `toml:"palette"`
	// Preview holds preview sheet settings.
	Preview PreviewConfig `toml:"preview"`
	// Log holds logging settings.
	Log LogConfig `toml:"log"`
}

// OutputConfig holds asset catalog settings.
type OutputConfig struct {
	// BasePath is the asset catalog directory colorsets are written into.
	BasePath string `toml:"base_path"`
	// DarkMode is the dark appearance policy: "auto", "mirror", or "off".
	DarkMode string `toml:"dark_mode"`
}

// PaletteConfig holds palette source and selection settings.
type PaletteConfig struct {
	// Source selects where the palette comes from: "builtin", "file", or "url".
	Source string `toml:"source"`
	// File is the palette TOML path for source "file".
	File string `toml:"file,omitempty"`
	// URL is the palette TOML endpoint for source "url".
	URL string `toml:"url,omitempty"`
	// CacheDir stores the last palette fetched from URL.
	CacheDir string `toml:"cache_dir"`
	// Include keeps only variants whose "Family/variant" matches a pattern.
	Include []string `toml:"include"`
	// Exclude drops variants whose "Family/variant" matches a pattern.
	Exclude []string `toml:"exclude"`
}

// PreviewConfig holds preview sheet settings.
type PreviewConfig struct {
	// Path is the PNG file written by the preview command.
	Path string `toml:"path"`
	// SwatchSize is the edge length of each swatch in pixels.
	SwatchSize int `toml:"swatch_size"`
	// Columns is the number of swatches per row.
	Columns int `toml:"columns"`
	// Font is an optional TTF, OTF, or WOFF2 file used for labels.
	Font string `toml:"font,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `toml:"level"`
	// File, when set, also writes logs to this rotating file.
	File string `toml:"file,omitempty"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation.
	MaxSizeMB int `toml:"max_size_mb"`
}

// ///////////////////////////////////////////////
// Default Configuration
// ///////////////////////////////////////////////

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Output: OutputConfig{
			BasePath: paths.DefaultBasePath,
			DarkMode: catalog.DarkAuto,
		},
		Palette: PaletteConfig{
			Source:   palette.SourceBuiltin,
			CacheDir: paths.CacheDirRel,
			Include:  []string{},
			Exclude:  []string{},
		},
		Preview: PreviewConfig{
			Path:       "colors-preview.png",
			SwatchSize: 96,
			Columns:    10,
		},
		Log: LogConfig{
			Level:     "warn",
			MaxSizeMB: 10,
		},
	}
}

// ExampleConfig returns a Config suitable for generating config.default.toml.
func ExampleConfig() *Config {
	return DefaultConfig()
}

// ///////////////////////////////////////////////
// Loading and Saving
// ///////////////////////////////////////////////

// Load reads and validates the configuration file at path. If the file
// doesn't exist, Load returns DefaultConfig. Fields absent from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no config file, using defaults", "path", path)
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates raw TOML config bytes.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	for _, key := range md.Undecoded() {
		slog.Warn("unknown config key", "key", key.String())
	}

	switch {
	case cfg.Version == 0:
		cfg.Version = CurrentVersion
	case cfg.Version > CurrentVersion:
		return nil, fmt.Errorf("config version %d is newer than supported version %d", cfg.Version, CurrentVersion)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to disk as TOML using atomic file write.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return atomicfile.Write(path, buf.Bytes(), 0o644)
}

// ///////////////////////////////////////////////
// Validation
// ///////////////////////////////////////////////

// Validate checks that all configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output.BasePath) == "" {
		return fmt.Errorf("output.base_path must not be empty")
	}
	if !catalog.ValidDarkMode(c.Output.DarkMode) {
		return fmt.Errorf("invalid output.dark_mode %q: must be auto, mirror, or off", c.Output.DarkMode)
	}

	switch c.Palette.Source {
	case palette.SourceBuiltin:
	case palette.SourceFile:
		if c.Palette.File == "" {
			return fmt.Errorf("palette.file is required when palette.source is %q", palette.SourceFile)
		}
	case palette.SourceURL:
		if c.Palette.URL == "" {
			return fmt.Errorf("palette.url is required when palette.source is %q", palette.SourceURL)
		}
		if c.Palette.CacheDir == "" {
			return fmt.Errorf("palette.cache_dir is required when palette.source is %q", palette.SourceURL)
		}
	default:
		return fmt.Errorf("invalid palette.source %q: must be builtin, file, or url", c.Palette.Source)
	}

	for _, p := range c.Palette.Include {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid palette.include pattern %q", p)
		}
	}
	for _, p := range c.Palette.Exclude {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid palette.exclude pattern %q", p)
		}
	}

	if c.Preview.SwatchSize <= 0 {
		return fmt.Errorf("preview.swatch_size must be > 0, got %d", c.Preview.SwatchSize)
	}
	if c.Preview.Columns <= 0 {
		return fmt.Errorf("preview.columns must be > 0, got %d", c.Preview.Columns)
	}

	if !logger.ValidLevel(c.Log.Level) {
		return fmt.Errorf("invalid log.level %q: must be trace, debug, info, warn, or error", c.Log.Level)
	}
	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be > 0, got %d", c.Log.MaxSizeMB)
	}
	return nil
}

// ///////////////////////////////////////////////
// Accessors
// ///////////////////////////////////////////////

// PaletteSource returns the palette source described by the config.
func (c *Config) PaletteSource() palette.Source {
	return palette.Source{
		Kind:     c.Palette.Source,
		File:     c.Palette.File,
		URL:      c.Palette.URL,
		CacheDir: c.Palette.CacheDir,
	}
}

// WatchedFiles returns the local files whose changes should trigger a
// regeneration in watch mode. configPath is included even when it does not
// exist yet.
func (c *Config) WatchedFiles(configPath string) []string {
	files := []string{configPath}
	if c.Palette.Source == palette.SourceFile && c.Palette.File != "" {
		files = append(files, c.Palette.File)
	}
	return files
}
