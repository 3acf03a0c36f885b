package main

import (
	"fmt"
	"os"

	"github.com/df07/raest/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "raest"
	app.Usage = "render scenes using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a still image",
			Description: `
Render a built-in scene or a YAML scene description to a PNG file.

Settings are read from the config file when one is given; flags that are set
explicitly override it.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Usage: "YAML config file",
				},
				cli.StringFlag{
					Name:  "scene, s",
					Value: "random",
					Usage: "built-in scene name or path to a YAML scene description",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "output.png",
					Usage: "image filename for the rendered frame",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 640,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 360,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "samples, n",
					Value: 50,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "threads, j",
					Value: 4,
					Usage: "number of render workers (0 uses one per CPU)",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: 25,
					Usage: "maximum number of bounces per path",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "random seed",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:      "config",
			Usage:     "write the default configuration to a file",
			ArgsUsage: "config.yaml",
			Action:    cmd.WriteConfig,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
