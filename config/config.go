// Package config loads the program settings from defaults, an optional TOML
// file and command line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"

	"cube-stack/editor"
	"cube-stack/palette"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Window holds the window settings.
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

// Grid holds the model settings.
type Grid struct {
	Dim           int `toml:"dim"`
	HeightMax     int `toml:"height_max"`
	DefaultColour int `toml:"default_colour"`
}

// View holds the camera settings.
type View struct {
	ScaleMin          float32 `toml:"scale_min"`
	ScaleMax          float32 `toml:"scale_max"`
	RotateSensitivity float32 `toml:"rotate_sensitivity"`
	ZoomStep          float32 `toml:"zoom_step"`
	FOV               float32 `toml:"fov"`
}

// Log selects the log level. See logx.LevelFromFlags.
type Log struct {
	Debug   bool `toml:"debug"`
	Verbose bool `toml:"verbose"`
	Quiet   bool `toml:"quiet"`
}

// Config is the complete program configuration.
type Config struct {
	Window  Window   `toml:"window"`
	Grid    Grid     `toml:"grid"`
	View    View     `toml:"view"`
	Palette []string `toml:"palette"`
	Log     Log      `toml:"log"`

	// Path of the TOML file to load; set from --config only.
	Path string `toml:"-"`
}

// Default returns the stock configuration.
func Default() Config {
	opts := editor.DefaultOptions()
	return Config{
		Window: Window{Width: 1024, Height: 768, Title: "Assignment 1", VSync: true},
		Grid: Grid{
			Dim:           16,
			HeightMax:     opts.HeightMax,
			DefaultColour: opts.DefaultColour,
		},
		View: View{
			ScaleMin:          opts.ScaleMin,
			ScaleMax:          opts.ScaleMax,
			RotateSensitivity: opts.RotateSensitivity,
			ZoomStep:          opts.ZoomStep,
			FOV:               45,
		},
	}
}

// Load reads the TOML file at path over the defaults.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.Path = path
	return c, nil
}

// Bind attaches the command line flags to c. Flag defaults are the current
// field values, so bind after loading any file.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Window.Width, "width", c.Window.Width, "window width in pixels")
	fs.IntVar(&c.Window.Height, "height", c.Window.Height, "window height in pixels")
	fs.BoolVar(&c.Window.VSync, "vsync", c.Window.VSync, "wait for vertical sync")
	fs.IntVar(&c.Grid.Dim, "dim", c.Grid.Dim, "cells along each side of the grid")
	fs.IntVar(&c.Grid.HeightMax, "height-max", c.Grid.HeightMax, "maximum cubes per cell")
	fs.StringSliceVar(&c.Palette, "palette", c.Palette, "comma separated #rrggbb colours overriding the palette")
	fs.BoolVarP(&c.Log.Verbose, "verbose", "v", c.Log.Verbose, "log informational messages")
	fs.BoolVar(&c.Log.Debug, "vv", c.Log.Debug, "log debug messages")
	fs.BoolVarP(&c.Log.Quiet, "quiet", "q", c.Log.Quiet, "only log errors")
}

// Parse builds the configuration from command line arguments. A --config
// file is applied before the remaining flags so that flags win.
func Parse(name string, args []string) (Config, error) {
	pre := pflag.NewFlagSet(name, pflag.ContinueOnError)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	pre.Usage = func() {}
	path := pre.String("config", "", "")
	if err := pre.Parse(args); err != nil && !errors.Is(err, pflag.ErrHelp) {
		return Config{}, err
	}

	c := Default()
	if *path != "" {
		var err error
		if c, err = Load(*path); err != nil {
			return c, err
		}
	}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", *path, "TOML file with settings")
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	return c, c.Validate()
}

// Validate checks the configuration for values the program cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Grid.Dim < 1:
		return fmt.Errorf("%w: grid dim %d", ErrInvalid, c.Grid.Dim)
	case c.Grid.HeightMax < 1:
		return fmt.Errorf("%w: height max %d", ErrInvalid, c.Grid.HeightMax)
	case !palette.Valid(c.Grid.DefaultColour):
		return fmt.Errorf("%w: default colour %d", ErrInvalid, c.Grid.DefaultColour)
	case c.View.ScaleMin <= 0 || c.View.ScaleMin > 1 || c.View.ScaleMax < 1:
		return fmt.Errorf("%w: scale range [%g, %g] must contain 1", ErrInvalid, c.View.ScaleMin, c.View.ScaleMax)
	case c.View.FOV <= 0 || c.View.FOV >= 180:
		return fmt.Errorf("%w: fov %g", ErrInvalid, c.View.FOV)
	}
	if _, err := palette.Parse(c.Palette); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// EditorOptions returns the editor tuning described by c.
func (c Config) EditorOptions() editor.Options {
	return editor.Options{
		HeightMax:         c.Grid.HeightMax,
		ScaleMin:          c.View.ScaleMin,
		ScaleMax:          c.View.ScaleMax,
		RotateSensitivity: c.View.RotateSensitivity,
		ZoomStep:          c.View.ZoomStep,
		DefaultColour:     c.Grid.DefaultColour,
	}
}

// Colours returns the palette described by c.
func (c Config) Colours() (palette.Palette, error) {
	return palette.Parse(c.Palette)
}
