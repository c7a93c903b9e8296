package app

import (
	"strings"
	"testing"
	"time"

	"lifegrid/internal/view"
	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	cam, err := view.NewCamera(200, 200, 10)
	if err != nil {
		t.Fatalf("camera: %v", err)
	}
	return NewSession(life.New(), cam, core.SpeedSlow)
}

func TestTickOnlyWhileRunning(t *testing.T) {
	s := newSession(t)
	s.World.StampPattern(life.Glider, 0, 0)
	start := time.Unix(100, 0)

	if s.Tick(start) || s.Tick(start.Add(time.Second)) {
		t.Fatal("paused session stepped")
	}
	if !s.TogglePlay() {
		t.Fatal("TogglePlay should start the session")
	}
	if s.Tick(start.Add(time.Second)) {
		t.Fatal("resume stepped before a full period")
	}
	if !s.Tick(start.Add(time.Second + 200*time.Millisecond)) {
		t.Fatal("expected a step after one period")
	}
	if s.World.Generation() != 1 {
		t.Fatalf("generation = %d", s.World.Generation())
	}
	s.TogglePlay()
	if s.Tick(start.Add(time.Hour)) {
		t.Fatal("paused again but stepped")
	}
}

func TestCycleSpeed(t *testing.T) {
	s := newSession(t)
	if got := s.CycleSpeed(); got != core.SpeedNormal {
		t.Fatalf("first cycle = %v", got)
	}
	if got := s.CycleSpeed(); got != core.SpeedFast {
		t.Fatalf("second cycle = %v", got)
	}
	if got := s.CycleSpeed(); got != core.SpeedSlow {
		t.Fatalf("third cycle = %v", got)
	}
}

func TestToggleAtUsesCamera(t *testing.T) {
	s := newSession(t)
	c := s.ToggleAt(100, 100)
	if c != (core.Cell{}) || !s.World.IsAlive(0, 0) {
		t.Fatalf("toggle at centre hit %v", c)
	}
	s.ToggleAt(100, 100)
	if s.World.Population() != 0 {
		t.Fatal("second toggle should kill the cell")
	}
}

func TestStampPatternAtViewCentre(t *testing.T) {
	s := newSession(t)
	s.Camera.Pan(-100, 0)
	if err := s.StampPattern("glider"); err != nil {
		t.Fatalf("stamp: %v", err)
	}
	centre := s.Camera.Center()
	for _, off := range life.Glider.Cells() {
		if !s.World.IsAlive(centre.X+off.X, centre.Y+off.Y) {
			t.Fatalf("missing glider cell %v", off)
		}
	}
	if err := s.StampPattern("nope"); err == nil {
		t.Fatal("unknown pattern accepted")
	}
}

func TestRandomizeViewStaysVisible(t *testing.T) {
	s := newSession(t)
	s.World.SetFloatParameter("density", 1)
	s.RandomizeView()
	vis := s.Camera.Visible(0)
	if uint64(s.World.Population()) != vis.Area() {
		t.Fatalf("population %d, visible area %d", s.World.Population(), vis.Area())
	}
	s.Clear()
	s.SeedNoiseView()
	for c := range s.World.LiveCellsInRange(vis.Inset(50)) {
		if !vis.Contains(c) {
			t.Fatalf("noise seeded %v outside %v", c, vis)
		}
	}
}

func TestStatus(t *testing.T) {
	s := newSession(t)
	st := s.Status()
	for _, part := range []string{"life", "gen 0", "pop 0", "200ms", "paused"} {
		if !strings.Contains(st, part) {
			t.Fatalf("status %q missing %q", st, part)
		}
	}
}
