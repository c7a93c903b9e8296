package app

import (
	"flag"
	"testing"
)

func TestConfigBindParses(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "highlife", "-cell", "8", "-speed", "50ms", "-pattern", "glider", "-seed", "7"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Sim != "highlife" || cfg.Cell != 8 || cfg.Speed != "50ms" || cfg.Seed != 7 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	m := cfg.SimConfig()
	if m["pattern"] != "glider" || m["seed"] != "7" {
		t.Fatalf("sim config %v", m)
	}
}

func TestConfigDefaultsValid(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if w, h := cfg.ViewSize(); w != 1040 || h != 800 {
		t.Fatalf("view size %dx%d", w, h)
	}
	if _, ok := cfg.SimConfig()["pattern"]; ok {
		t.Fatal("empty pattern should not be forwarded")
	}
}

func TestConfigValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"cell":    func(c *Config) { c.Cell = 0 },
		"tiny":    func(c *Config) { c.Cell = 1 },
		"small":   func(c *Config) { c.Cell = 2 },
		"window":  func(c *Config) { c.Height = -1 },
		"hud":     func(c *Config) { c.HUDWidth = c.Width },
		"speed":   func(c *Config) { c.Speed = "ludicrous" },
		"pattern": func(c *Config) { c.Pattern = "spaceship" },
		"sim":     func(c *Config) { c.Sim = "wireworld" },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestConfigSmallestCellThatFits(t *testing.T) {
	cfg := NewConfig()
	cfg.Cell = 3
	if err := cfg.Validate(); err != nil {
		t.Fatalf("cell 3 on the default window should fit: %v", err)
	}
}
