package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// Set with -ldflags "-X main.version=..."
var version = "dev"

const usage = "usage: bgs [-v] [-c] [-C hex] [-s] [-z] [-R] [-x] [IMAGE]..."

func main() {
	err := newApp().Run(os.Args)
	checkErr(err)
}

func newApp() *cli.App {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version and exit",
	}
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(c.App.Writer, "bgs-%s, see LICENSE for details\n", c.App.Version)
	}

	app := cli.NewApp()
	app.Name = "bgs"
	app.Usage = "Set the X root window background, one image per monitor"
	app.UsageText = usage
	app.ArgsUsage = "IMAGE..."
	app.Version = version
	app.UseShortOptionHandling = true
	app.Flags = drawFlags()
	app.Action = drawAction
	app.OnUsageError = func(c *cli.Context, err error, _ bool) error {
		return cli.Exit(fmt.Sprintf("%s\n%s", err, usage), 1)
	}

	return app
}

func checkErr(err error) {
	if err != nil {
		log.Fatalf("Error: %s.\n", err)
	}
}
