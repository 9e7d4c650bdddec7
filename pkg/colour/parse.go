package colour

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// ErrParse is the cause of every error returned by the Parse functions.
var ErrParse = errors.New("malformed colour")

// ParseRGB parses a colour written as "rgb(r, g, b)" or just "r, g, b" or
// "r g b". Each component must be a base-10 integer in [0, 255].
func ParseRGB(text string) (RGB, error) {
	inner := strings.TrimSpace(text)
	if i := strings.IndexByte(inner, '('); i >= 0 {
		if !strings.EqualFold(strings.TrimSpace(inner[:i]), "rgb") ||
			!strings.HasSuffix(inner, ")") {
			return RGB{}, errors.Wrapf(ErrParse, "'%s' is not rgb(...)", text)
		}
		inner = inner[i+1 : len(inner)-1]
	}
	tokens := strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(tokens) != 3 {
		return RGB{}, errors.Wrapf(ErrParse,
			"'%s' has %d components, want 3", text, len(tokens))
	}
	var v [3]uint8
	for i, t := range tokens {
		n, err := strconv.ParseUint(t, 10, 8)
		if err != nil {
			return RGB{}, errors.Wrapf(ErrParse,
				"component '%s' of '%s' is not in 0-255", t, text)
		}
		v[i] = uint8(n)
	}
	return RGB{v[0], v[1], v[2]}, nil
}

// ParseHex parses "#rrggbb" or "#rgb".
func ParseHex(text string) (RGB, error) {
	s := strings.TrimSpace(text)
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	if len(s) != 7 {
		return RGB{}, errors.Wrapf(ErrParse, "'%s' is not a hex colour", text)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, errors.Wrapf(ErrParse, "'%s' is not a hex colour", text)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

// ParseColour accepts either of the forms handled by ParseHex and ParseRGB.
func ParseColour(text string) (RGB, error) {
	if strings.HasPrefix(strings.TrimSpace(text), "#") {
		return ParseHex(text)
	}
	return ParseRGB(text)
}

// HSLFromString parses text with ParseColour and converts the result.
func HSLFromString(text string) (HSL, error) {
	c, err := ParseColour(text)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(c), nil
}
