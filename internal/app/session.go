package app

import (
	"fmt"
	"time"

	"lifegrid/internal/view"
	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"
)

// Session is the state the shell owns around the world: the play/pause flag,
// the speed preset and its ticker, and the camera. All methods run on the
// UI goroutine.
type Session struct {
	World  *life.World
	Camera *view.Camera

	running bool
	speed   core.Speed
	ticker  *core.FixedStep
}

// NewSession returns a paused session.
func NewSession(world *life.World, cam *view.Camera, speed core.Speed) *Session {
	ticker := core.NewFixedStep(speed.Interval())
	ticker.Pause()
	return &Session{World: world, Camera: cam, speed: speed, ticker: ticker}
}

// Running reports whether generations advance on their own.
func (s *Session) Running() bool { return s.running }

// Speed returns the active speed preset.
func (s *Session) Speed() core.Speed { return s.speed }

// TogglePlay starts or pauses the simulation and returns the new state.
func (s *Session) TogglePlay() bool {
	s.running = !s.running
	if !s.running {
		s.ticker.Pause()
	}
	return s.running
}

// CycleSpeed advances to the next preset; a running simulation continues at
// the new period.
func (s *Session) CycleSpeed() core.Speed {
	s.speed = s.speed.Next()
	s.ticker.SetInterval(s.speed.Interval())
	return s.speed
}

// Tick advances one generation if the session is running and a period has
// elapsed. It reports whether a step happened.
func (s *Session) Tick(now time.Time) bool {
	if !s.running || !s.ticker.ShouldStepAt(now) {
		return false
	}
	s.World.Step()
	return true
}

// StepOnce advances a single generation regardless of the play state.
func (s *Session) StepOnce() { s.World.Step() }

// ToggleAt flips the cell under the screen pixel (sx, sy).
func (s *Session) ToggleAt(sx, sy float64) core.Cell {
	c := s.Camera.CellAt(sx, sy)
	s.World.Toggle(c.X, c.Y)
	return c
}

// RandomizeView sprinkles live cells over the visible area at the world's
// configured density.
func (s *Session) RandomizeView() {
	s.World.RandomizeRegion(s.Camera.Visible(0), s.World.Config().Density)
}

// SeedNoiseView seeds the visible area from Perlin noise.
func (s *Session) SeedNoiseView() {
	s.World.SeedNoise(s.Camera.Visible(0), s.World.Config().NoiseThreshold)
}

// Clear empties the world.
func (s *Session) Clear() { s.World.Clear() }

// StampPattern places the named preset with its anchor at the centre of the
// view.
func (s *Session) StampPattern(name string) error {
	p, ok := life.PatternByName(name)
	if !ok {
		return fmt.Errorf("unknown pattern %q", name)
	}
	c := s.Camera.Center()
	s.World.StampPattern(p, c.X, c.Y)
	return nil
}

// Status summarises the session for the overlay.
func (s *Session) Status() string {
	state := "paused"
	if s.running {
		state = "running"
	}
	return fmt.Sprintf("%s  gen %d  pop %d  speed %s  zoom %.1f  %s",
		s.World.Name(), s.World.Generation(), s.World.Population(), s.speed, s.Camera.Zoom(), state)
}
