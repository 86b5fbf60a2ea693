// hex.go decodes "#RRGGBB" strings into [RGB] triples and renders channels in
// the "0xHH" form used by asset catalog component strings.

package colorset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedHex is returned (wrapped) for any hex color that is not exactly
// six hexadecimal digits after the optional "#" prefix.
var ErrMalformedHex = errors.New("malformed hex color")

// RGB is a decoded 8-bit-per-channel color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// ParseHex decodes a "#RRGGBB" or "RRGGBB" string. Exactly one leading "#"
// is stripped; the remainder must be six hex digits.
func ParseHex(hex string) (RGB, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w %q: must be 6 hex digits", ErrMalformedHex, hex)
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w %q: %w", ErrMalformedHex, hex, err)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Hex renders c as "#RRGGBB" with uppercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Component renders a single channel as "0xHH".
func Component(v uint8) string {
	return fmt.Sprintf("0x%02X", v)
}
