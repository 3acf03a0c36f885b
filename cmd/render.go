package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/raest/pkg/config"
	"github.com/df07/raest/pkg/renderer"
	"github.com/df07/raest/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderScene renders a still image of a built-in or YAML scene.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := renderConfig(ctx)
	if err != nil {
		return err
	}

	start := time.Now()
	sc, err := scene.Open(cfg.Render.Scene, cfg.SceneOptions())
	if err != nil {
		return err
	}
	logger.Infof("loaded scene %q in %d ms", cfg.Render.Scene, time.Since(start).Milliseconds())

	rt := renderer.NewRaytracer(sc, cfg.Render.Threads, cfg.Render.Seed)
	fb := renderer.NewFramebuffer(cfg.Render.Width, cfg.Render.Height)

	logger.Noticef("rendering %dx%d at %d samples per pixel with %d workers",
		cfg.Render.Width, cfg.Render.Height, cfg.Render.Samples, rt.NumWorkers())
	stats, err := rt.Render(fb)
	if err != nil {
		return err
	}

	displayRenderStats(stats)

	if cfg.Output.Path == "" {
		return nil
	}
	return writePNG(fb, cfg.Output.Path)
}

// renderConfig loads the config file if one is given and applies the flags
// that were set explicitly.
func renderConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := ctx.String("config"); path != "" {
		var err error
		if cfg, err = config.LoadConfig(path); err != nil {
			return nil, err
		}
	}

	if ctx.IsSet("scene") {
		cfg.Render.Scene = ctx.String("scene")
	}
	if ctx.IsSet("out") {
		cfg.Output.Path = ctx.String("out")
	}
	if ctx.IsSet("width") {
		cfg.Render.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Render.Height = ctx.Int("height")
	}
	if ctx.IsSet("samples") {
		cfg.Render.Samples = ctx.Int("samples")
	}
	if ctx.IsSet("threads") {
		cfg.Render.Threads = ctx.Int("threads")
	}
	if ctx.IsSet("max-depth") {
		cfg.Render.MaxDepth = ctx.Int("max-depth")
	}
	if ctx.IsSet("seed") {
		cfg.Render.Seed = ctx.Int64("seed")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writePNG(fb *renderer.Framebuffer, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	start := time.Now()
	if err := png.Encode(f, fb.Image()); err != nil {
		return fmt.Errorf("error encoding png file: %w", err)
	}
	logger.Noticef("wrote image to %s in %d ms", path, time.Since(start).Milliseconds())
	return nil
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Samples", "Flushes", "Contended", "Render time"})
	for _, w := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", w.ID),
			fmt.Sprintf("%d-%d", w.Rows.Start, w.Rows.End),
			fmt.Sprintf("%02.1f %%", 100*float64(w.Rows.Len())/float64(stats.Height)),
			fmt.Sprintf("%d", w.Samples),
			fmt.Sprintf("%d", w.Flushes),
			fmt.Sprintf("%d", w.Contended),
			w.Duration.String(),
		})
	}
	table.SetFooter([]string{
		"", "", "",
		fmt.Sprintf("%d", stats.TotalSamples),
		"",
		fmt.Sprintf("lum %.3f ± %.3f", stats.MeanLuminance, stats.StdDevLuminance),
		stats.Duration.String(),
	})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
