// Command life-run advances a world without a window and prints its
// population per generation and an ASCII view of the result.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"lifegrid/internal/render"
	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*l = append(*l, value)
	return nil
}

// maxASCIIArea caps the printed window so a runaway pattern does not flood
// the terminal.
const maxASCIIArea = 200 * 200

type options struct {
	sim       string
	steps     int
	seed      int64
	window    string
	quiet     bool
	overrides kvList
}

func main() {
	var opts options
	flag.StringVar(&opts.sim, "sim", "life", "simulation to run")
	flag.IntVar(&opts.steps, "steps", 100, "generations to simulate")
	flag.Int64Var(&opts.seed, "seed", 0, "reset seed (0 uses the configured seed)")
	flag.StringVar(&opts.window, "window", "", "cells to print as x0,y0,x1,y1 (default: live bounds)")
	flag.BoolVar(&opts.quiet, "quiet", false, "only print the final state")
	flag.Var(&opts.overrides, "set", "sim config override in key=value form, e.g. pattern=glider (repeatable)")
	flag.Parse()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	if err := run(out, opts); err != nil {
		out.Flush()
		log.Fatal(err)
	}
}

func run(out io.Writer, opts options) error {
	factory, ok := core.Sims()[opts.sim]
	if !ok {
		return fmt.Errorf("unknown sim %q", opts.sim)
	}
	if opts.steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", opts.steps)
	}
	cfg := map[string]string{}
	for _, kv := range opts.overrides {
		parts := strings.SplitN(kv, "=", 2)
		cfg[parts[0]] = parts[1]
	}
	world, ok := factory(cfg).(*life.World)
	if !ok {
		return fmt.Errorf("sim %q is not a life world", opts.sim)
	}
	world.Reset(opts.seed)

	fmt.Fprintf(out, "%s rule %s\n", world.Name(), world.Rule())
	for i := 0; i < opts.steps; i++ {
		if !opts.quiet {
			fmt.Fprintf(out, "gen %d population %d\n", world.Generation(), world.Population())
		}
		world.Step()
	}
	fmt.Fprintf(out, "gen %d population %d\n", world.Generation(), world.Population())

	window, ok, err := pickWindow(world, opts.window)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return writeASCII(out, world, window)
}

func pickWindow(world *life.World, arg string) (core.Rect, bool, error) {
	if arg != "" {
		r, err := parseWindow(arg)
		return r, err == nil, err
	}
	r, ok := world.Bounds()
	return r, ok, nil
}

func parseWindow(s string) (core.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return core.Rect{}, fmt.Errorf("window %q: want x0,y0,x1,y1", s)
	}
	var v [4]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return core.Rect{}, fmt.Errorf("window %q: %w", s, err)
		}
		v[i] = n
	}
	return core.NewRect(v[0], v[1], v[2], v[3]), nil
}

func writeASCII(out io.Writer, src render.CellSource, window core.Rect) error {
	if window.Area() > maxASCIIArea {
		fmt.Fprintf(out, "window %v too large to print (%d cells)\n", window, window.Area())
		return nil
	}
	w, h := int(window.Width()), int(window.Height())
	rows := make([][]byte, h)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(".", w))
	}
	for c := range src.LiveCellsInRange(window) {
		rows[c.Y-window.Y0][c.X-window.X0] = 'O'
	}
	fmt.Fprintf(out, "window %v\n", window)
	for _, row := range rows {
		if _, err := fmt.Fprintf(out, "%s\n", row); err != nil {
			return err
		}
	}
	return nil
}
