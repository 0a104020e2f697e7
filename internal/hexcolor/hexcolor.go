// Package hexcolor converts RGBA pixels to the 8-hex-digit color strings
// the level format expects, e.g. pure red -> "ff0000ff".
package hexcolor

import (
	"fmt"
	"image/color"
)

const hextable = "0123456789abcdef"

// Encode returns the channels as zero-padded lowercase hex, r g b a order.
func Encode(c color.NRGBA) string {
	b := [8]byte{
		hextable[c.R>>4], hextable[c.R&0x0f],
		hextable[c.G>>4], hextable[c.G&0x0f],
		hextable[c.B>>4], hextable[c.B&0x0f],
		hextable[c.A>>4], hextable[c.A&0x0f],
	}
	return string(b[:])
}

// Decode parses an 8-hex-digit color string back into a pixel.
func Decode(s string) (color.NRGBA, error) {
	if len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("hex color must be 8 digits, got %q", s)
	}
	var v [4]uint8
	for i := 0; i < 4; i++ {
		hi, ok1 := unhex(s[i*2])
		lo, ok2 := unhex(s[i*2+1])
		if !ok1 || !ok2 {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
		v[i] = hi<<4 | lo
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func unhex(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
