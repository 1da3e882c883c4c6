// Command stack is an interactive editor for a square board of stacked,
// coloured cubes.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"cube-stack/config"
	"cube-stack/core"
	"cube-stack/editor"
	"cube-stack/grid"
	"cube-stack/internal/logx"
	"cube-stack/renderer"
)

func main() {
	cfg, err := config.Parse("stack", os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logx.SetDefault(os.Stderr, logx.LevelFromFlags(cfg.Log.Debug, cfg.Log.Verbose, cfg.Log.Quiet))

	if err := run(cfg); err != nil {
		slog.Error("stack", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	pal, err := cfg.Colours()
	if err != nil {
		return err
	}
	g, err := grid.New(cfg.Grid.Dim)
	if err != nil {
		return err
	}
	ed := editor.New(g, cfg.EditorOptions())

	windowConfig := core.DefaultWindowConfig()
	windowConfig.Width = cfg.Window.Width
	windowConfig.Height = cfg.Window.Height
	windowConfig.Title = cfg.Window.Title
	windowConfig.VSync = cfg.Window.VSync

	window, err := core.NewWindow(windowConfig)
	if err != nil {
		return err
	}
	defer window.Destroy()

	re, err := renderer.NewRenderEngine(window, cfg.Grid.Dim, cfg.View.FOV)
	if err != nil {
		return err
	}
	defer re.Destroy()

	window.SetListener(&listener{ed: ed, re: re})

	slog.Info("starting", "dim", g.Dim(), "height_max", ed.HeightMax(), "config", cfg.Path)
	slog.Debug("palette", "colours", pal.Hex())
	frames := 0
	start := core.Time()
	for !window.ShouldClose() {
		window.PollEvents()

		re.BeginFrame(ed, &pal)
		if ed.QuitRequested() {
			window.SetShouldClose(true)
		}
		re.Render(ed, &pal)
		re.Present()
		frames++
	}

	elapsed := core.Time() - start
	slog.Info("stopping", "frames", frames, "seconds", fmt.Sprintf("%.1f", elapsed), "cubes", re.DrawStats())
	return nil
}
