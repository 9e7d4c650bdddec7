// Package render turns palettes into text: CSS-style hsl() strings, plain
// listings and lipgloss swatches for the terminal. Hue wrapping and S/L
// clamping happen here, never in the colour or harmony packages.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/realh/palette/pkg/colour"
	"github.com/realh/palette/pkg/harmony"
)

const DEFAULT_SWATCH_WIDTH = 30

// Slot labels, in the order used by harmony.Palette.Accents.
var SlotNames = [4]string{"left-1", "left-2", "right-1", "right-2"}

func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // no "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatHSL returns "hsl(h, s%, l%)" with the raw values rounded to two
// decimal places. Out-of-range values are written as they are; browsers
// wrap and clamp them.
func FormatHSL(c colour.HSL) string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", num(c.H), num(c.S), num(c.L))
}

// DisplayHex returns the colour a renderer would actually show for c.
func DisplayHex(c colour.HSL) string {
	return c.ToRGB().Hex()
}

// Text returns a plain multi-line listing of p.
func Text(p harmony.Palette) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %s\n", "style", p.Style)
	fmt.Fprintf(&b, "%-8s %-28s %s\n", "base", FormatHSL(p.Base),
		DisplayHex(p.Base))
	for i, c := range p.Accents() {
		fmt.Fprintf(&b, "%-8s %-28s %s\n", SlotNames[i], FormatHSL(c),
			DisplayHex(c))
	}
	return b.String()
}

// Line returns p on a single tab-separated line: the input text, the style,
// then the base and four accents as hsl() strings.
func Line(input string, p harmony.Palette) string {
	fields := []string{input, string(p.Style), FormatHSL(p.Base)}
	for _, c := range p.Accents() {
		fields = append(fields, FormatHSL(c))
	}
	return strings.Join(fields, "\t")
}

// Renderer draws palettes as coloured blocks.
type Renderer struct {
	SwatchWidth int
}

// NewRenderer returns a Renderer; width <= 0 gives DEFAULT_SWATCH_WIDTH.
func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = DEFAULT_SWATCH_WIDTH
	}
	return &Renderer{SwatchWidth: width}
}

// labelColour picks black or white text, whichever shows up on c.
func labelColour(c colour.HSL) lipgloss.Color {
	if c.Normalised().L > 55 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

// Swatch draws one colour with a name and its hsl() value.
func (r *Renderer) Swatch(name string, c colour.HSL) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(DisplayHex(c))).
		Foreground(labelColour(c)).
		Width(r.SwatchWidth).
		Padding(1, 1).
		Align(lipgloss.Center).
		Render(name + "\n" + FormatHSL(c) + "\n" + DisplayHex(c))
}

// Palette draws the accents either side of the base, left-2 at the far
// left and right-2 at the far right.
func (r *Renderer) Palette(p harmony.Palette) string {
	title := lipgloss.NewStyle().Bold(true).Render(string(p.Style))
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		r.Swatch(SlotNames[1], p.Left2),
		r.Swatch(SlotNames[0], p.Left1),
		r.Swatch("base", p.Base),
		r.Swatch(SlotNames[2], p.Right1),
		r.Swatch(SlotNames[3], p.Right2),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, row)
}
