// hsltest prints the HSL value of some named colours as computed by
// colour.RGBToHSL, next to colorconv's conversion of the same colour, and
// checks that converting back gives the original colour. Any further
// arguments are parsed as extra colours to show.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/crazy3lf/colorconv"

	"github.com/realh/palette/pkg/colour"
	"github.com/realh/palette/pkg/render"
)

type named struct {
	name string
	c    colour.RGB
}

var namedColours = []named{
	{"red", colour.RGB{R: 255, G: 0, B: 0}},
	{"green", colour.RGB{R: 0, G: 255, B: 0}},
	{"blue", colour.RGB{R: 0, G: 0, B: 255}},
	{"magenta", colour.RGB{R: 255, G: 0, B: 255}},
	{"cyan", colour.RGB{R: 0, G: 255, B: 255}},
	{"orange", colour.RGB{R: 255, G: 127, B: 0}},
	{"grey", colour.RGB{R: 128, G: 128, B: 128}},
	{"default", colour.RGB{R: 232, G: 50, B: 133}},
}

// hueDiff is the difference between two hues going the short way round.
func hueDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 360-d)
}

// showHsl prints one row and returns false if the two conversions disagree
// or the colour doesn't survive a round trip.
func showHsl(name string, c colour.RGB) bool {
	hsl := colour.RGBToHSL(c)
	h, s, l := colorconv.ColorToHSL(c)
	ref := colour.HSL{H: h, S: s * 100, L: l * 100}
	back := hsl.ToRGB()
	ok := hueDiff(hsl.H, ref.H) < 0.5 && math.Abs(hsl.S-ref.S) < 0.5 &&
		math.Abs(hsl.L-ref.L) < 0.5 && colour.ColourMatch(c, back) < 0.01
	mark := "ok"
	if !ok {
		mark = "MISMATCH"
	}
	fmt.Printf("%8s : %s : %-28s : %-28s : %s %s\n",
		name, c.Hex(), render.FormatHSL(hsl), render.FormatHSL(ref),
		back.Hex(), mark)
	return ok
}

func main() {
	colours := namedColours
	for _, arg := range os.Args[1:] {
		c, err := colour.ParseColour(arg)
		if err != nil {
			log.Fatal("Can't parse colour", "colour", arg, "err", err)
		}
		colours = append(colours, named{arg, c})
	}
	failed := 0
	for _, n := range colours {
		if !showHsl(n.name, n.c) {
			failed++
		}
	}
	if failed > 0 {
		log.Fatal("Conversions disagree", "colours", failed)
	}
}
