// Package colorset builds the Contents.json document of a single asset catalog
// colorset.
//
// A document always carries a universal light entry. When a dark color is
// supplied a second entry follows it, selected by the luminosity/dark
// appearance. Encoded output matches what Xcode writes:
//
//	{
//	  "colors": [ { "color": { ... }, "idiom": "universal" } ],
//	  "info": { "author": "xcode", "version": 1 }
//	}
package colorset

import (
	"encoding/json"
	"fmt"
)

// Fixed document values.
const (
	ColorSpaceSRGB      = "srgb"
	IdiomUniversal      = "universal"
	AlphaOpaque         = "1.000"
	AppearanceLuminance = "luminosity"
	AppearanceDark      = "dark"
	InfoAuthor          = "xcode"
	InfoVersion         = 1
)

// ///////////////////////////////////////////////
// Types
// ///////////////////////////////////////////////

// Document is the Contents.json payload for one colorset. Field order is the
// JSON key order.
type Document struct {
	Colors []Entry `json:"colors"`
	Info   Info    `json:"info"`
}

// Entry is one appearance variant of the color.
type Entry struct {
	// Appearances is set only on the dark entry.
	Appearances []Appearance `json:"appearances,omitempty"`
	Color       Color        `json:"color"`
	Idiom       string       `json:"idiom"`
}

// Appearance selects an entry by display mode.
type Appearance struct {
	Appearance string `json:"appearance"`
	Value      string `json:"value"`
}

// Color holds the color space and its component strings.
type Color struct {
	ColorSpace string     `json:"color-space"`
	Components Components `json:"components"`
}

// Components are the channel strings. Alpha is always [AlphaOpaque].
type Components struct {
	Alpha string `json:"alpha"`
	Blue  string `json:"blue"`
	Green string `json:"green"`
	Red   string `json:"red"`
}

// Info is the fixed metadata block.
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// ///////////////////////////////////////////////
// Builder
// ///////////////////////////////////////////////

// Build decodes light (and dark, when non-empty) and returns the document.
// The only errors are decode errors, wrapped with the side that failed.
func Build(light, dark string) (*Document, error) {
	lc, err := ParseHex(light)
	if err != nil {
		return nil, fmt.Errorf("light: %w", err)
	}
	doc := &Document{
		Colors: []Entry{newEntry(lc)},
		Info:   Info{Author: InfoAuthor, Version: InfoVersion},
	}
	if dark == "" {
		return doc, nil
	}

	dc, err := ParseHex(dark)
	if err != nil {
		return nil, fmt.Errorf("dark: %w", err)
	}
	de := newEntry(dc)
	de.Appearances = []Appearance{{Appearance: AppearanceLuminance, Value: AppearanceDark}}
	doc.Colors = append(doc.Colors, de)
	return doc, nil
}

// newEntry returns a universal sRGB entry for c.
func newEntry(c RGB) Entry {
	return Entry{
		Color: Color{
			ColorSpace: ColorSpaceSRGB,
			Components: Components{
				Alpha: AlphaOpaque,
				Blue:  Component(c.B),
				Green: Component(c.G),
				Red:   Component(c.R),
			},
		},
		Idiom: IdiomUniversal,
	}
}

// HasDark reports whether the document carries a dark appearance entry.
func (d *Document) HasDark() bool {
	for _, e := range d.Colors {
		for _, a := range e.Appearances {
			if a.Appearance == AppearanceLuminance && a.Value == AppearanceDark {
				return true
			}
		}
	}
	return false
}

// Encode serializes d with two-space indentation and no trailing newline.
func (d *Document) Encode() ([]byte, error) {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode colorset: %w", err)
	}
	return b, nil
}
