// Package colour holds the RGB and HSL colour types and the conversion
// between them.
package colour

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a colour with 8-bit red, green and blue channels.
type RGB struct {
	R, G, B uint8
}

// HSL is a colour as hue in degrees and saturation and lightness as
// percentages. Values are left as computed, so derived colours may have a
// hue outside [0, 360) or S/L outside [0, 100].
type HSL struct {
	H, S, L float64
}

// RGBA implements color.Color. Alpha is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 255}.RGBA()
}

// String returns the colour the way a browser renders a background colour,
// eg "rgb(232, 50, 133)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBToHSL converts c to HSL.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	lo := min(r, g, b)
	hi := max(r, g, b)

	var h float64
	switch {
	case hi == lo:
		h = 0
	case hi == r:
		h = 60 * ((g - b) / (hi - lo))
	case hi == g:
		h = 60 * (2 + (b-r)/(hi-lo))
	default:
		h = 60 * (4 + (r-g)/(hi-lo))
	}
	if h < 0 {
		h += 360
	}
	// Rounding can push a tiny negative hue up to exactly 360
	if h >= 360 {
		h -= 360
	}

	l := (lo + hi) / 2

	var s float64
	if hi == 0 || lo == 1 {
		s = 0
	} else {
		s = (hi - l) / min(l, 1-l)
	}

	return HSL{H: h, S: s * 100, L: l * 100}
}

// Normalised returns a copy of c with the hue wrapped into [0, 360) and S
// and L clamped to [0, 100].
func (c HSL) Normalised() HSL {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	return HSL{
		H: h,
		S: clamp(c.S, 0, 100),
		L: clamp(c.L, 0, 100),
	}
}

// ToRGB converts c back to RGB. Out-of-range components are normalised
// first, the way a renderer would treat them.
func (c HSL) ToRGB() RGB {
	n := c.Normalised()
	r, g, b := colorful.Hsl(n.H, n.S/100, n.L/100).RGB255()
	return RGB{r, g, b}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
