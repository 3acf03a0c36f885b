package cmd

import (
	"errors"

	"github.com/df07/raest/pkg/config"
	"github.com/urfave/cli"
)

// WriteConfig writes the default configuration to a YAML file.
func WriteConfig(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing config file argument")
	}

	path := ctx.Args().First()
	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return err
	}

	logger.Noticef("wrote default config to %s", path)
	return nil
}
