package harmony

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/realh/palette/pkg/colour"
)

var base = colour.HSL{H: 332, S: 80, L: 55}

func hsl(h, s, l float64) colour.HSL {
	return colour.HSL{H: h, S: s, L: l}
}

func TestDerive_Rules(t *testing.T) {
	tests := []struct {
		style    Style
		expected [4]colour.HSL
	}{
		{Analogous, [4]colour.HSL{
			hsl(352, 80, 55), hsl(372, 80, 55), hsl(312, 80, 55), hsl(292, 80, 55)}},
		{Monochromatic, [4]colour.HSL{
			hsl(332, 80, 75), hsl(332, 80, 95), hsl(332, 80, 35), hsl(332, 80, 15)}},
		{Triad, [4]colour.HSL{
			hsl(392, 80, 75), White, hsl(452, 80, 35), White}},
		{Complementary, [4]colour.HSL{
			hsl(512, 80, 75), White, White, White}},
		{Compound, [4]colour.HSL{
			hsl(512, 80, 75), hsl(372, 80, 55), hsl(312, 80, 55), hsl(292, 80, 55)}},
		{Shades, [4]colour.HSL{
			hsl(332, 70, 55), hsl(332, 50, 55), hsl(332, 90, 55), hsl(332, 110, 55)}},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			p := Derive(base, tt.style)
			assert.Equal(t, tt.style, p.Style)
			assert.Equal(t, base, p.Base)
			assert.Equal(t, tt.expected, p.Accents())
		})
	}
}

func TestDerive_NoWrapOrClamp(t *testing.T) {
	p := Derive(hsl(10, 95, 30), Analogous)
	assert.Equal(t, -30.0, p.Right2.H)

	p = Derive(hsl(10, 95, 30), Shades)
	assert.Equal(t, 125.0, p.Right2.S)

	p = Derive(hsl(10, 95, 30), Monochromatic)
	assert.Equal(t, -10.0, p.Right2.L)
}

func TestDerive_ComplementaryFallback(t *testing.T) {
	for _, b := range []colour.HSL{hsl(0, 0, 0), hsl(120, 100, 50), hsl(359, 3, 97)} {
		p := Derive(b, Complementary)
		assert.Equal(t, White, p.Left2)
		assert.Equal(t, White, p.Right1)
		assert.Equal(t, White, p.Right2)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	for _, s := range Styles() {
		assert.Equal(t, Derive(base, s), Derive(base, s))
	}
}

func TestDerivePalette_UnknownStyleIsShades(t *testing.T) {
	shades := DerivePalette(base, "shades")

	for _, tag := range []string{"", "foo", "Triad", "ANALOGOUS", " shades"} {
		t.Run(tag, func(t *testing.T) {
			assert.Equal(t, shades, DerivePalette(base, tag))
		})
	}
	assert.Equal(t, shades, Derive(base, Style("bogus")))
}

func TestParseStyle(t *testing.T) {
	for _, s := range Styles() {
		assert.Equal(t, s, ParseStyle(string(s)))
	}
	assert.Equal(t, Shades, ParseStyle("Compound"))
}

func TestStyle_Cycle(t *testing.T) {
	assert.Equal(t, Monochromatic, Analogous.Next())
	assert.Equal(t, Analogous, Shades.Next())
	assert.Equal(t, Shades, Analogous.Prev())
	assert.Equal(t, Triad, Complementary.Prev())

	s := Compound
	for range Styles() {
		s = s.Next()
	}
	assert.Equal(t, Compound, s)
}

func TestStyles_Copy(t *testing.T) {
	s := Styles()
	s[0] = "changed"
	assert.Equal(t, Analogous, Styles()[0])
}
