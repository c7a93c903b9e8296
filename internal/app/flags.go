package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"lifegrid/internal/render"
	"lifegrid/internal/view"
	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Cell     int
	Speed    string
	Seed     int64
	Pattern  string
	Width    int
	Height   int
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Cell:     20,
		Speed:    "slow",
		Seed:     42,
		Width:    1280,
		Height:   800,
		HUDWidth: 240,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels at zoom 1")
	fs.StringVar(&c.Speed, "speed", c.Speed, "tick period preset: slow, normal, fast (or 200ms, 100ms, 50ms)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "start pattern instead of a random fill")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
}

// Validate rejects values the shell cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Cell <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %d", c.Cell))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.HUDWidth < 0 || c.HUDWidth >= c.Width {
		errs = append(errs, fmt.Errorf("hud width %d must be in [0, %d)", c.HUDWidth, c.Width))
	} else if c.Cell > 0 && c.Height > 0 {
		viewW, viewH := c.ViewSize()
		if area := view.MaxVisibleCells(viewW, viewH, c.Cell); area > render.MaxRasterCells {
			errs = append(errs, fmt.Errorf("cell size %d too small for a %dx%d view: %d cells when zoomed out, limit %d",
				c.Cell, viewW, viewH, area, render.MaxRasterCells))
		}
	}
	if _, err := core.ParseSpeed(c.Speed); err != nil {
		errs = append(errs, err)
	}
	if c.Pattern != "" {
		if _, ok := life.PatternByName(c.Pattern); !ok {
			errs = append(errs, fmt.Errorf("unknown pattern %q", c.Pattern))
		}
	}
	if _, ok := core.Sims()[c.Sim]; !ok {
		errs = append(errs, fmt.Errorf("unknown sim %q", c.Sim))
	}
	return errors.Join(errs...)
}

// SimConfig returns the options forwarded to the simulation factory.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	if c.Pattern != "" {
		m["pattern"] = c.Pattern
	}
	return m
}

// ViewSize returns the simulation viewport, the window minus the HUD.
func (c *Config) ViewSize() (int, int) {
	return c.Width - c.HUDWidth, c.Height
}
