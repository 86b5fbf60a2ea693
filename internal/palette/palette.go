// Package palette holds the color tables that colorsets are generated from.
//
// A [Table] is an ordered list of families, each an ordered list of
// variants. Order is significant: it is the order colorsets are written and
// reported in. Variant names are unique across the whole table because each
// one becomes a directory name in the asset catalog.
//
// Tables come from one of three sources (see [Fetch]): the built-in table
// compiled into the binary, a local TOML file, or a TOML document served
// over HTTP with an on-disk cache fallback.
package palette

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ///////////////////////////////////////////////
// Types
// ///////////////////////////////////////////////

// Variant is a single named color. Dark is empty for light-only colors.
type Variant struct {
	Name  string
	Light string
	Dark  string
}

// HasDark reports whether the variant supplies its own dark value.
func (v Variant) HasDark() bool { return v.Dark != "" }

// Family groups related variants, e.g. "Navy" holds navy50..navy900.
type Family struct {
	Name     string
	Variants []Variant
}

// Table is an ordered set of families.
type Table struct {
	Families []Family
}

// Len returns the number of variants across all families.
func (t *Table) Len() int {
	n := 0
	for _, f := range t.Families {
		n += len(f.Variants)
	}
	return n
}

// Each calls fn for every variant in table order, stopping at the first error.
func (t *Table) Each(fn func(family string, v Variant) error) error {
	for _, f := range t.Families {
		for _, v := range f.Variants {
			if err := fn(f.Name, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate checks structural invariants: non-empty names, a light value on
// every variant, and variant names unique across the table. Hex syntax is
// left to the colorset decoder so that malformed values fail at the variant
// that carries them.
func (t *Table) Validate() error {
	seen := make(map[string]string, t.Len())
	for _, f := range t.Families {
		if f.Name == "" {
			return fmt.Errorf("palette: family with empty name")
		}
		for _, v := range f.Variants {
			if v.Name == "" {
				return fmt.Errorf("palette: family %s has a variant with empty name", f.Name)
			}
			if strings.ContainsAny(v.Name, `/\`) {
				return fmt.Errorf("palette: variant name %q contains a path separator", v.Name)
			}
			if v.Light == "" {
				return fmt.Errorf("palette: variant %s/%s has no light value", f.Name, v.Name)
			}
			if prev, dup := seen[v.Name]; dup {
				return fmt.Errorf("palette: variant %q defined in both %s and %s", v.Name, prev, f.Name)
			}
			seen[v.Name] = f.Name
		}
	}
	return nil
}

// ///////////////////////////////////////////////
// Filtering
// ///////////////////////////////////////////////

// Filter returns a new table holding the variants whose "Family/variant"
// path matches at least one include pattern (all variants when include is
// empty) and no exclude pattern. Patterns use doublestar syntax. Families
// left without variants are dropped.
func (t *Table) Filter(include, exclude []string) (*Table, error) {
	for _, p := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid glob pattern %q", p)
		}
	}
	if len(include) == 0 && len(exclude) == 0 {
		return t, nil
	}

	out := &Table{}
	for _, f := range t.Families {
		kept := Family{Name: f.Name}
		for _, v := range f.Variants {
			p := f.Name + "/" + v.Name
			if len(include) > 0 && !matchAny(include, p) {
				continue
			}
			if matchAny(exclude, p) {
				continue
			}
			kept.Variants = append(kept.Variants, v)
		}
		if len(kept.Variants) > 0 {
			out.Families = append(out.Families, kept)
		}
	}
	return out, nil
}

// matchAny reports whether name matches one of patterns. Patterns were
// validated by the caller, so match errors cannot occur.
func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
