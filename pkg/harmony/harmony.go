// Package harmony derives accent colours from a base colour.
//
// A palette has the base colour plus four accents, shown as two on the left
// and two on the right of the base. Each harmony style fixes the offsets
// applied to the base's hue, saturation and lightness for each slot. Results
// are not wrapped or clamped; see colour.HSL.Normalised.
package harmony

import "github.com/realh/palette/pkg/colour"

// Style names a harmony rule.
type Style string

const (
	Analogous     Style = "analogous"
	Monochromatic Style = "monochromatic"
	Triad         Style = "triad"
	Complementary Style = "complementary"
	Compound      Style = "compound"
	Shades        Style = "shades"
)

// DefaultStyle is used for any tag that isn't one of the styles above.
const DefaultStyle = Shades

// White fills slots that a style doesn't derive from the base.
var White = colour.HSL{H: 0, S: 0, L: 100}

var styles = []Style{
	Analogous, Monochromatic, Triad, Complementary, Compound, Shades,
}

// Styles returns all the styles in display order.
func Styles() []Style {
	return append([]Style(nil), styles...)
}

// ParseStyle matches tag exactly (case-sensitive). Anything unrecognised,
// including "", gives DefaultStyle.
func ParseStyle(tag string) Style {
	for _, s := range styles {
		if string(s) == tag {
			return s
		}
	}
	return DefaultStyle
}

// Next returns the style after s in display order, wrapping round.
func (s Style) Next() Style {
	return s.step(1)
}

// Prev returns the style before s in display order, wrapping round.
func (s Style) Prev() Style {
	return s.step(len(styles) - 1)
}

func (s Style) step(n int) Style {
	for i, st := range styles {
		if st == s {
			return styles[(i+n)%len(styles)]
		}
	}
	return DefaultStyle
}

// Palette is a base colour and the four accents derived from it.
type Palette struct {
	Style  Style
	Base   colour.HSL
	Left1  colour.HSL
	Left2  colour.HSL
	Right1 colour.HSL
	Right2 colour.HSL
}

// Accents returns the derived colours in slot order: left-1, left-2,
// right-1, right-2.
func (p Palette) Accents() [4]colour.HSL {
	return [4]colour.HSL{p.Left1, p.Left2, p.Right1, p.Right2}
}

// An offset is added to each component of the base. A nil offset means the
// slot is White.
func off(h, s, l float64) *colour.HSL {
	return &colour.HSL{H: h, S: s, L: l}
}

// rules holds the offsets for left-1, left-2, right-1 and right-2.
var rules = map[Style][4]*colour.HSL{
	Analogous:     {off(20, 0, 0), off(40, 0, 0), off(-20, 0, 0), off(-40, 0, 0)},
	Monochromatic: {off(0, 0, 20), off(0, 0, 40), off(0, 0, -20), off(0, 0, -40)},
	Triad:         {off(60, 0, 20), nil, off(120, 0, -20), nil},
	Complementary: {off(180, 0, 20), nil, nil, nil},
	Compound:      {off(180, 0, 20), off(40, 0, 0), off(-20, 0, 0), off(-40, 0, 0)},
	Shades:        {off(0, -10, 0), off(0, -30, 0), off(0, 10, 0), off(0, 30, 0)},
}

func apply(base colour.HSL, o *colour.HSL) colour.HSL {
	if o == nil {
		return White
	}
	return colour.HSL{H: base.H + o.H, S: base.S + o.S, L: base.L + o.L}
}

// Derive computes the palette for base in the given style. A Style value
// outside the known set is treated as DefaultStyle.
func Derive(base colour.HSL, style Style) Palette {
	r, ok := rules[style]
	if !ok {
		style = DefaultStyle
		r = rules[style]
	}
	return Palette{
		Style:  style,
		Base:   base,
		Left1:  apply(base, r[0]),
		Left2:  apply(base, r[1]),
		Right1: apply(base, r[2]),
		Right2: apply(base, r[3]),
	}
}

// DerivePalette is Derive with the style given as a tag, resolved with
// ParseStyle.
func DerivePalette(base colour.HSL, tag string) Palette {
	return Derive(base, ParseStyle(tag))
}
