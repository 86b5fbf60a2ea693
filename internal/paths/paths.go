// Package paths centralizes file and directory names used across the project.
// Asset catalog layout and tool file names are defined here as the single
// source of truth.
package paths

import "path/filepath"

// ///////////////////////////////////////////////
// Constants
// ///////////////////////////////////////////////

// Asset catalog layout.
const (
	DefaultBasePath = "Assets/Colors.xcassets"
	ColorsetExt     = ".colorset"
	ContentsFile    = "Contents.json"
)

// Tool file names.
const (
	BinaryName       = "colorgen"
	ConfigFile       = "colorgen.toml"
	PaletteCacheFile = "palette-cache.toml"
	CacheDirRel      = ".colorgen-cache" // relative to the working directory
)

// ///////////////////////////////////////////////
// Catalog
// ///////////////////////////////////////////////

// Catalog provides path construction methods rooted at an asset catalog
// directory such as Assets/Colors.xcassets.
type Catalog struct {
	Root string
}

// Colorset returns the directory for a color variant: <root>/<name>.colorset.
func (c Catalog) Colorset(name string) string {
	return filepath.Join(c.Root, name+ColorsetExt)
}

// Contents returns the Contents.json path for a color variant.
func (c Catalog) Contents(name string) string {
	return filepath.Join(c.Colorset(name), ContentsFile)
}

// ///////////////////////////////////////////////
// Cache
// ///////////////////////////////////////////////

// CacheDir holds files fetched from remote palette sources.
type CacheDir struct {
	Root string
}

// Palette returns the full path to the cached remote palette.
func (d CacheDir) Palette() string { return filepath.Join(d.Root, PaletteCacheFile) }
