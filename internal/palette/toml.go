// toml.go reads and writes palette files.
//
// File format:
//
//	version = 1
//
//	[Navy]
//	navy50 = "#E8E9ED"
//	navy500 = { light = "#1C274C", dark = "#495270" }
//
// Each top-level table is a family; each key in it is a variant whose value
// is either a light hex string or an inline table with light and optional
// dark. Families and variants keep the order they appear in the file.

package palette

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"

	"github.com/BurntSushi/toml"
)

// FormatVersion is the palette file schema version written by [Encode] and
// accepted by [Decode].
const FormatVersion = 1

// bareKeyRe matches keys that TOML allows without quotes.
var bareKeyRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ///////////////////////////////////////////////
// Decode
// ///////////////////////////////////////////////

// Decode parses a palette file and validates the resulting table.
func Decode(data []byte) (*Table, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("parse palette: %w", err)
	}

	if v, ok := raw["version"]; ok {
		n, isInt := v.(int64)
		if !isInt || n != FormatVersion {
			return nil, fmt.Errorf("unsupported palette version %v (want %d)", v, FormatVersion)
		}
	}

	t := &Table{}
	index := map[string]int{}
	family := func(name string) (*Family, error) {
		if i, ok := index[name]; ok {
			return &t.Families[i], nil
		}
		if _, ok := raw[name].(map[string]any); !ok {
			return nil, fmt.Errorf("palette: top-level key %q is not a family table", name)
		}
		index[name] = len(t.Families)
		t.Families = append(t.Families, Family{Name: name})
		return &t.Families[len(t.Families)-1], nil
	}

	for _, key := range md.Keys() {
		if len(key) == 1 && key[0] == "version" {
			continue
		}
		f, err := family(key[0])
		if err != nil {
			return nil, err
		}
		if len(key) != 2 {
			continue
		}
		v, err := decodeVariant(key[1], raw[key[0]].(map[string]any)[key[1]])
		if err != nil {
			return nil, fmt.Errorf("palette: %s/%s: %w", key[0], key[1], err)
		}
		f.Variants = append(f.Variants, v)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// decodeVariant converts a raw TOML value into a Variant.
func decodeVariant(name string, val any) (Variant, error) {
	switch x := val.(type) {
	case string:
		return Variant{Name: name, Light: x}, nil
	case map[string]any:
		v := Variant{Name: name}
		for k, fv := range x {
			s, ok := fv.(string)
			if !ok {
				return Variant{}, fmt.Errorf("field %q must be a string", k)
			}
			switch k {
			case "light":
				v.Light = s
			case "dark":
				v.Dark = s
			default:
				return Variant{}, fmt.Errorf("unknown field %q (want light or dark)", k)
			}
		}
		return v, nil
	default:
		return Variant{}, fmt.Errorf("value must be a hex string or {light, dark} table, got %T", val)
	}
}

// ///////////////////////////////////////////////
// Encode
// ///////////////////////////////////////////////

// Encode renders t in the palette file format, preserving table order.
func Encode(t *Table) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "version = %d\n", FormatVersion)
	for _, f := range t.Families {
		fmt.Fprintf(&buf, "\n[%s]\n", tomlKey(f.Name))
		for _, v := range f.Variants {
			if v.HasDark() {
				fmt.Fprintf(&buf, "%s = { light = %s, dark = %s }\n",
					tomlKey(v.Name), strconv.Quote(v.Light), strconv.Quote(v.Dark))
				continue
			}
			fmt.Fprintf(&buf, "%s = %s\n", tomlKey(v.Name), strconv.Quote(v.Light))
		}
	}
	return buf.Bytes()
}

// tomlKey returns k bare when TOML permits it, quoted otherwise.
func tomlKey(k string) string {
	if bareKeyRe.MatchString(k) {
		return k
	}
	return strconv.Quote(k)
}
