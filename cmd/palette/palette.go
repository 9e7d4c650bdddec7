// The palette binary computes a colour harmony palette from a base colour:
// four accent colours derived from the base's hue, saturation and lightness
// according to a style (analogous, monochromatic, triad, complementary,
// compound or shades). Colours may be given as "#rrggbb" or "rgb(r, g, b)".
//
// Defaults come from the environment (PALETTE_COLOUR, PALETTE_STYLE,
// PALETTE_LOG_LEVEL, PALETTE_LOG_FILE, PALETTE_SWATCH_WIDTH) and may be
// overridden by flags.
package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/realh/palette/internal/config"
	"github.com/realh/palette/internal/logging"
	"github.com/realh/palette/pkg/harmony"
	"github.com/realh/palette/pkg/render"
)

// App is what every command's Run gets.
type App struct {
	Out      io.Writer
	Log      *log.Logger
	Renderer *render.Renderer
}

type CLI struct {
	LogLevel string `help:"Log level (debug, info, warn, error)" default:"${log_level}"`
	LogFile  string `help:"Append logs to this file instead of stderr (default from PALETTE_LOG_FILE)"`
	Width    int    `help:"Width of each swatch" default:"${width}"`

	Derive  DeriveCmd  `cmd:"" default:"withargs" help:"Show the palette for a colour (default)"`
	Convert ConvertCmd `cmd:"" help:"Show a colour as rgb, hex and hsl"`
	Styles  StylesCmd  `cmd:"" help:"List the harmony styles"`
	Batch   BatchCmd   `cmd:"" help:"Derive a palette for each colour in a file, one per line"`
	Pick    PickCmd    `cmd:"" help:"Choose a colour and style interactively"`
}

func styleNames() string {
	names := make([]string, 0, 6)
	for _, s := range harmony.Styles() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

func vars(s *config.Settings) kong.Vars {
	return kong.Vars{
		"colour":    s.Colour,
		"style":     s.Style,
		"styles":    styleNames(),
		"log_level": s.LogLevel,
		"width":     strconv.Itoa(s.SwatchWidth),
	}
}

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", "err", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("palette"),
		kong.Description("Derive colour harmony palettes"),
		kong.UsageOnError(),
		vars(settings),
	)

	if cli.LogFile == "" {
		cli.LogFile = settings.LogFile
	}
	logger, closer, err := logging.New(cli.LogLevel, cli.LogFile)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&App{
		Out:      os.Stdout,
		Log:      logger,
		Renderer: render.NewRenderer(cli.Width),
	})
	closer.Close()
	ctx.FatalIfErrorf(err)
}
