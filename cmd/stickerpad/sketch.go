package main

import (
	"flag"
	"fmt"

	"github.com/example/stickerpad/internal/sticker"
	"github.com/example/stickerpad/internal/tool"
	"github.com/example/stickerpad/internal/ui"
)

type sketchCmd struct {
	*root
	fs        *flag.FlagSet
	width     int
	height    int
	thickness int
}

func parseSketchCmd(args []string, r *root) (*sketchCmd, error) {
	fs := flag.NewFlagSet("sketch", flag.ExitOnError)
	cmd := &sketchCmd{root: r.subcommand("sketch"), fs: fs}
	fs.IntVar(&cmd.width, "width", 800, "initial window width in pixels")
	fs.IntVar(&cmd.height, "height", 600, "initial window height in pixels")
	thickness := tool.DefaultThickness
	if r.config != nil && r.config.Marker.Thickness > 0 {
		thickness = r.config.Marker.Thickness
	}
	fs.IntVar(&cmd.thickness, "thickness", thickness, "marker stroke thickness in pixels")
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (c *sketchCmd) FlagSet() *flag.FlagSet { return c.fs }

func (c *sketchCmd) Run() error {
	if c.width < 200 || c.height < 200 {
		return fmt.Errorf("window must be at least 200x200, got %dx%d", c.width, c.height)
	}
	if c.thickness < 1 {
		return fmt.Errorf("thickness must be positive, got %d", c.thickness)
	}

	store := sticker.NewStore(c.stickerFile)
	u := ui.New(
		ui.WithTheme(c.activeTheme),
		ui.WithSize(c.width, c.height),
		ui.WithMarkerThickness(c.thickness),
		ui.WithPresets(store.Load()),
		ui.WithStore(store),
		ui.WithNotifier(c.notifier),
	)
	u.Run()
	return nil
}
