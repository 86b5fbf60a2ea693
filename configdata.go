// Package colorsets provides embedded assets for the colorgen tool.
//
// The root package exists solely to embed [config.default.toml] via
// [DefaultConfigTOML], which `colorgen config init` writes out as a
// starting colorgen.toml.
package colorsets

import _ "embed"

// DefaultConfigTOML holds the raw bytes of config.default.toml, embedded at
// build time. It is regenerated by go generate ./internal/config.
//
//go:embed config.default.toml
var DefaultConfigTOML []byte
