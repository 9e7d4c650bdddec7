package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/realh/palette/internal/tui"
	"github.com/realh/palette/pkg/colour"
	"github.com/realh/palette/pkg/harmony"
	"github.com/realh/palette/pkg/render"
)

// resolveStyle is harmony.ParseStyle, but says so when it falls back.
func resolveStyle(tag string, logger *log.Logger) harmony.Style {
	style := harmony.ParseStyle(tag)
	if string(style) != tag {
		logger.Warn("Unknown style, using default", "style", tag,
			"default", style)
	}
	return style
}

type DeriveCmd struct {
	Colour string `arg:"" optional:"" default:"${colour}" help:"Base colour, #rrggbb or rgb(r, g, b)"`
	Style  string `short:"s" default:"${style}" help:"One of: ${styles}. Anything else means shades"`
	Plain  bool   `help:"Print text instead of swatches"`
}

func (c *DeriveCmd) Run(app *App) error {
	base, err := colour.HSLFromString(c.Colour)
	if err != nil {
		return err
	}
	p := harmony.Derive(base, resolveStyle(c.Style, app.Log))
	app.Log.Debug("Derived palette", "colour", c.Colour, "style", p.Style)
	if c.Plain {
		_, err = io.WriteString(app.Out, render.Text(p))
	} else {
		_, err = fmt.Fprintln(app.Out, app.Renderer.Palette(p))
	}
	return err
}

type ConvertCmd struct {
	Colour string `arg:"" help:"Colour, #rrggbb or rgb(r, g, b)"`
}

func (c *ConvertCmd) Run(app *App) error {
	rgb, err := colour.ParseColour(c.Colour)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(app.Out, "%s\n%s\n%s\n", rgb, rgb.Hex(),
		render.FormatHSL(colour.RGBToHSL(rgb)))
	return err
}

type StylesCmd struct{}

func (c *StylesCmd) Run(app *App) error {
	for _, s := range harmony.Styles() {
		suffix := ""
		if s == harmony.DefaultStyle {
			suffix = " (default)"
		}
		if _, err := fmt.Fprintf(app.Out, "%s%s\n", s, suffix); err != nil {
			return err
		}
	}
	return nil
}

type BatchCmd struct {
	File  string `arg:"" optional:"" type:"existingfile" help:"Input file; stdin if omitted"`
	Style string `short:"s" default:"${style}" help:"One of: ${styles}. Anything else means shades"`
}

func (c *BatchCmd) Run(app *App) error {
	var rd io.Reader = os.Stdin
	if c.File != "" {
		fd, err := os.Open(c.File)
		if err != nil {
			return errors.Wrapf(err, "Error opening '%s'", c.File)
		}
		defer fd.Close()
		rd = fd
	}
	failed, err := batch(rd, app.Out, resolveStyle(c.Style, app.Log), app.Log)
	if err != nil {
		return err
	}
	if failed > 0 {
		return errors.Errorf("%d line(s) could not be parsed", failed)
	}
	return nil
}

// batch reads one colour per line from rd and writes a render.Line for
// each. Blank lines are skipped. Lines that don't parse are logged and
// counted but don't stop the batch.
func batch(rd io.Reader, w io.Writer, style harmony.Style, logger *log.Logger,
) (failed int, err error) {
	rdr := bufio.NewReader(rd)
	lineNo := 0
	for {
		line, rerr := rdr.ReadString('\n')
		lineNo++
		// In case of DOS line endings
		line = strings.TrimSpace(line)
		if len(line) != 0 {
			base, perr := colour.HSLFromString(line)
			if perr != nil {
				logger.Error("Skipping line", "line", lineNo, "err", perr)
				failed++
			} else {
				p := harmony.Derive(base, style)
				if _, err = fmt.Fprintln(w, render.Line(line, p)); err != nil {
					return failed, err
				}
			}
		}
		if rerr == io.EOF {
			return failed, nil
		}
		if rerr != nil {
			return failed, errors.Wrapf(rerr, "Error reading line %d", lineNo)
		}
	}
}

type PickCmd struct {
	Colour string `arg:"" optional:"" default:"${colour}" help:"Starting colour"`
	Style  string `short:"s" default:"${style}" help:"Starting style"`
}

func (c *PickCmd) Run(app *App) error {
	m := tui.New(c.Colour, resolveStyle(c.Style, app.Log), app.Renderer,
		app.Log)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return errors.Wrap(err, "picker failed")
}
