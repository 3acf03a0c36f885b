package cmd

import (
	"github.com/df07/raest/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raest")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
