// Package preview renders a palette as a PNG contact sheet so a palette can
// be reviewed without opening Xcode.
//
// Each family starts with a header band naming it, followed by its variants
// in rows. A variant cell is two swatches wide: the light appearance on the
// left and the dark appearance on the right, as the dark-mode policy would
// write it. Variants without a dark entry repeat the light color, which is
// what the asset catalog falls back to in dark mode.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"tools.zach/dev/colorsets/internal/catalog"
	"tools.zach/dev/colorsets/internal/colorset"
	"tools.zach/dev/colorsets/internal/palette"
)

// Options configures [Render].
type Options struct {
	// SwatchSize is the edge length of one swatch in pixels.
	SwatchSize int
	// Columns is the number of variant cells per row.
	Columns int
	// DarkMode is the catalog dark-mode policy used for the right half.
	DarkMode string
	// Font renders labels. Nil uses Go Regular.
	Font *opentype.Font
}

var (
	sheetBackground = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	headerText      = color.NRGBA{R: 0x1C, G: 0x1C, B: 0x1E, A: 0xFF}
	labelDark       = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	labelLight      = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// labelThreshold is the CIE L* lightness above which labels are drawn dark.
const labelThreshold = 0.6

// Render draws t and returns the encoded PNG.
func Render(t *palette.Table, opts Options) ([]byte, error) {
	if opts.SwatchSize <= 0 || opts.Columns <= 0 {
		return nil, fmt.Errorf("swatch size and columns must be positive")
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("palette has no variants")
	}
	otFont := opts.Font
	if otFont == nil {
		var err error
		if otFont, err = DefaultFont(); err != nil {
			return nil, err
		}
	}

	s := opts.SwatchSize
	header := s / 3
	face, err := opentype.NewFace(otFont, &opentype.FaceOptions{
		Size:    float64(max(s/8, 6)),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	defer face.Close()

	cellW := 2 * s
	height := 0
	for _, f := range t.Families {
		rows := (len(f.Variants) + opts.Columns - 1) / opts.Columns
		height += header + rows*s
	}
	img := image.NewNRGBA(image.Rect(0, 0, opts.Columns*cellW, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	y := 0
	for _, f := range t.Families {
		drawLabel(img, face, f.Name, image.Rect(0, y, img.Bounds().Dx(), y+header), headerText)
		y += header
		for i, v := range f.Variants {
			x := (i % opts.Columns) * cellW
			top := y + (i/opts.Columns)*s
			if err := drawCell(img, face, v, opts.DarkMode, image.Rect(x, top, x+cellW, top+s)); err != nil {
				return nil, fmt.Errorf("%s/%s: %w", f.Name, v.Name, err)
			}
		}
		y += ((len(f.Variants) + opts.Columns - 1) / opts.Columns) * s
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawCell fills the light and dark halves of r and labels the light half
// with the variant name.
func drawCell(img *image.NRGBA, face font.Face, v palette.Variant, mode string, r image.Rectangle) error {
	light, err := colorset.ParseHex(v.Light)
	if err != nil {
		return fmt.Errorf("light: %w", err)
	}
	dark := light
	if hex := catalog.DarkValue(mode, v); hex != "" {
		if dark, err = colorset.ParseHex(hex); err != nil {
			return fmt.Errorf("dark: %w", err)
		}
	}

	mid := r.Min.X + r.Dx()/2
	left := image.Rect(r.Min.X, r.Min.Y, mid, r.Max.Y)
	right := image.Rect(mid, r.Min.Y, r.Max.X, r.Max.Y)
	draw.Draw(img, left, image.NewUniform(nrgba(light)), image.Point{}, draw.Src)
	draw.Draw(img, right, image.NewUniform(nrgba(dark)), image.Point{}, draw.Src)

	drawLabel(img, face, v.Name, left, LabelColor(light))
	return nil
}

// drawLabel writes text at the lower left of r, clipped to r.
func drawLabel(img *image.NRGBA, face font.Face, text string, r image.Rectangle, c color.Color) {
	pad := max(r.Dy()/10, 2)
	d := &font.Drawer{
		Dst:  img.SubImage(r).(*image.NRGBA),
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(r.Min.X + pad), Y: fixed.I(r.Max.Y-pad) - face.Metrics().Descent},
	}
	d.DrawString(text)
}

// LabelColor returns black or white, whichever reads better on c.
func LabelColor(c colorset.RGB) color.NRGBA {
	l, _, _ := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Lab()
	if l > labelThreshold {
		return labelDark
	}
	return labelLight
}

func nrgba(c colorset.RGB) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}
