package main

import (
	"errors"
	"log"
	"os"
	"os/signal"

	lib "github.com/awused/bgs/lib"
	"github.com/urfave/cli/v2"
)

const center = "center"
const zoom = "zoom"
const stretch = "stretch"
const mode = "mode"
const noRotate = "no-rotate"
const colour = "color"
const persistent = "persistent"
const filter = "filter"
const display = "display"
const configFile = "config"
const logFile = "log-file"

var errModeConflict = errors.New("Only one of -c, -z, -s and --mode may be given")

func drawFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    center,
			Aliases: []string{"c"},
			Usage:   "Center each image at its natural size",
		},
		&cli.BoolFlag{
			Name:    zoom,
			Aliases: []string{"z"},
			Usage:   "Scale each image to cover its monitor, cropping the overflow",
		},
		&cli.BoolFlag{
			Name:    stretch,
			Aliases: []string{"s"},
			Usage:   "Stretch each image to exactly fill its monitor",
		},
		&cli.StringFlag{
			Name:    mode,
			Aliases: []string{"m"},
			Usage:   "Placement mode: fit, center, zoom or stretch (default: fit). " +
				"Only one of -c, -z, -s and -m may be given",
		},
		&cli.BoolFlag{
			Name:    noRotate,
			Aliases: []string{"R"},
			Usage:   "Don't rotate images to match the monitor's orientation",
		},
		&cli.StringFlag{
			Name:    colour,
			Aliases: []string{"C"},
			Usage:   "Background colour as #rrggbb or a colour name (default: " + lib.DefaultColor + ")",
		},
		&cli.BoolFlag{
			Name:    persistent,
			Aliases: []string{"x"},
			Usage:   "Keep running and redraw whenever the screen is resized",
		},
		&cli.StringFlag{
			Name:    filter,
			Aliases: []string{"F"},
			Usage:   "Scaling filter: nearest, approx-bilinear, bilinear or catmull-rom (default: bilinear)",
		},
		&cli.StringFlag{
			Name:    display,
			Aliases: []string{"d"},
			Usage:   "X display to use instead of $DISPLAY",
		},
		&cli.StringFlag{
			Name:    configFile,
			Aliases: []string{"f"},
			Usage:   "Optional TOML or YAML file with default settings, flags override it. " +
				"Without -f no file is read",
		},
		&cli.StringFlag{
			Name:    logFile,
			Aliases: []string{"l"},
			Usage:   "Append log output to this file instead of stderr",
		},
	}
}

// configFromContext layers the command line over the optional config file
func configFromContext(c *cli.Context) (*lib.Config, error) {
	conf, err := lib.LoadConfig(c.String(configFile))
	if err != nil {
		return nil, err
	}

	modes := 0
	for _, m := range []string{center, zoom, stretch, mode} {
		if c.IsSet(m) {
			modes++
		}
	}
	if modes > 1 {
		return nil, errModeConflict
	}

	switch {
	case c.Bool(center):
		conf.Mode = center
	case c.Bool(zoom):
		conf.Mode = zoom
	case c.Bool(stretch):
		conf.Mode = stretch
	case c.IsSet(mode):
		conf.Mode = c.String(mode)
	}

	if c.Bool(noRotate) {
		rotate := false
		conf.Rotate = &rotate
	}
	if c.Bool(persistent) {
		conf.Persistent = true
	}

	for name, field := range map[string]*string{
		colour:  &conf.Color,
		filter:  &conf.Filter,
		display: &conf.Display,
		logFile: &conf.LogFile,
	} {
		if c.IsSet(name) {
			*field = c.String(name)
		}
	}

	conf.Paths = c.Args().Slice()

	return conf, conf.Validate()
}

func drawAction(c *cli.Context) (err error) {
	conf, err := configFromContext(c)
	if err != nil {
		return err
	}

	if conf.LogFile != "" {
		f, ferr := os.OpenFile(conf.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if ferr != nil {
			log.Fatalf("Error opening log file: %v", ferr)
		}

		prev := log.Writer()
		log.SetOutput(f)
		defer func() {
			// main reports to the previous writer once the file is closed
			if err != nil {
				log.Printf("Error: %s.\n", err)
			}
			log.SetOutput(prev)
			f.Close()
		}()
	}

	session, err := lib.NewSession(conf)
	if err != nil {
		return err
	}
	defer session.Close()

	ctx, stop := signal.NotifyContext(c.Context, stopSignals...)
	defer stop()

	return session.Run(ctx)
}
