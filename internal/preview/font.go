package preview

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFont returns the embedded Go Regular face.
func DefaultFont() (*opentype.Font, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse default font: %w", err)
	}
	return f, nil
}

// LoadFont reads a TTF, OTF, or WOFF2 file. An empty path returns
// [DefaultFont]. WOFF2 data is converted to SFNT before parsing.
func LoadFont(path string) (*opentype.Font, error) {
	if path == "" {
		return DefaultFont()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	if isWOFF2(path, data) {
		sfnt, err := font.ToSFNT(data)
		if err != nil {
			return nil, fmt.Errorf("convert %s from WOFF2: %w", filepath.Base(path), err)
		}
		data = sfnt
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", filepath.Base(path), err)
	}
	return f, nil
}

// isWOFF2 checks the file extension and the wOF2 signature.
func isWOFF2(path string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(path), ".woff2") {
		return true
	}
	return bytes.HasPrefix(data, []byte("wOF2"))
}
