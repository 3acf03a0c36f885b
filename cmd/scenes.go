package cmd

import (
	"io"

	"github.com/df07/raest/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	writeSceneTable(ctx.App.Writer)
	return nil
}

func writeSceneTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scene.Builtins() {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()
}
