package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/realh/palette/pkg/colour"
	"github.com/realh/palette/pkg/harmony"
)

func TestFormatHSL(t *testing.T) {
	tests := []struct {
		name     string
		input    colour.HSL
		expected string
	}{
		{"whole numbers", colour.HSL{H: 0, S: 100, L: 50}, "hsl(0, 100%, 50%)"},
		{"rounded", colour.HSL{H: 332.63736, S: 79.82456, L: 55.29412},
			"hsl(332.64, 79.82%, 55.29%)"},
		{"unwrapped hue", colour.HSL{H: 512, S: 80, L: 75}, "hsl(512, 80%, 75%)"},
		{"negative", colour.HSL{H: -40, S: 110, L: -5}, "hsl(-40, 110%, -5%)"},
		{"tiny negative", colour.HSL{H: -0.001, S: 0, L: 0}, "hsl(0, 0%, 0%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatHSL(tt.input))
		})
	}
}

func TestDisplayHex(t *testing.T) {
	assert.Equal(t, "#ff0000", DisplayHex(colour.HSL{H: 360, S: 100, L: 50}))
	assert.Equal(t, "#ffffff", DisplayHex(harmony.White))
	assert.Equal(t, "#000000", DisplayHex(colour.HSL{H: 10, S: 50, L: -20}))
}

func TestText(t *testing.T) {
	p := harmony.Derive(colour.HSL{H: 100, S: 50, L: 50}, harmony.Complementary)
	out := Text(p)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 6)
	assert.Contains(t, lines[0], "complementary")
	assert.Contains(t, lines[1], "hsl(100, 50%, 50%)")
	assert.Contains(t, lines[2], "left-1")
	assert.Contains(t, lines[2], "hsl(280, 50%, 70%)")
	assert.Contains(t, lines[3], "#ffffff")
}

func TestLine(t *testing.T) {
	p := harmony.Derive(colour.HSL{H: 100, S: 50, L: 50}, harmony.Analogous)
	fields := strings.Split(Line("#abcdef", p), "\t")

	assert.Equal(t, []string{
		"#abcdef", "analogous", "hsl(100, 50%, 50%)",
		"hsl(120, 50%, 50%)", "hsl(140, 50%, 50%)",
		"hsl(80, 50%, 50%)", "hsl(60, 50%, 50%)",
	}, fields)
}

func TestRenderer_Palette(t *testing.T) {
	r := NewRenderer(0)
	assert.Equal(t, DEFAULT_SWATCH_WIDTH, r.SwatchWidth)

	p := harmony.Derive(colour.HSL{H: 200, S: 60, L: 40}, harmony.Triad)
	out := r.Palette(p)

	assert.Contains(t, out, "triad")
	for _, name := range append(SlotNames[:], "base") {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "hsl(260, 60%, 60%)")
}

func TestLabelColour(t *testing.T) {
	assert.Equal(t, "#000000", string(labelColour(harmony.White)))
	assert.Equal(t, "#ffffff", string(labelColour(colour.HSL{H: 0, S: 0, L: 10})))
}
