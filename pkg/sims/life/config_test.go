package life

import "testing"

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"rule":            "B36/S23",
		"density":         "0.5",
		"noise_threshold": "-0.2",
		"noise_scale":     "0.3",
		"pattern":         "gosper",
		"w":               "10",
		"h":               "12",
		"seed":            "-9",
	})
	if c.Rule != HighLife || c.Density != 0.5 || c.NoiseThreshold != -0.2 || c.NoiseScale != 0.3 {
		t.Fatalf("unexpected seeding config %+v", c)
	}
	if c.Pattern != "gosper" || c.Width != 10 || c.Height != 12 || c.Seed != -9 {
		t.Fatalf("unexpected world config %+v", c)
	}
}

func TestFromMapIgnoresInvalid(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"rule":            "B0/S23",
		"density":         "lots",
		"noise_threshold": "4",
		"noise_scale":     "-1",
		"pattern":         "unicorn",
		"w":               "0",
		"h":               "-3",
		"seed":            "x",
	})
	if c != def {
		t.Fatalf("invalid values changed config: %+v", c)
	}
}

func TestFromMapClampsDensity(t *testing.T) {
	if c := FromMap(map[string]string{"density": "1.7"}); c.Density != 1 {
		t.Fatalf("density = %v, want 1", c.Density)
	}
	if c := FromMap(map[string]string{"density": "-0.1"}); c.Density != 0 {
		t.Fatalf("density = %v, want 0", c.Density)
	}
}

func TestSetFloatParameterClamps(t *testing.T) {
	w := New()
	if !w.SetFloatParameter("density", 1.5) {
		t.Fatal("density should be adjustable")
	}
	if w.Config().Density != 1 {
		t.Fatalf("density = %v, want clamp to 1", w.Config().Density)
	}
	if w.SetFloatParameter("generation", 3) {
		t.Fatal("generation is read-only")
	}
	p, ok := w.Parameters().Lookup("density")
	if !ok || p.Value != "1" {
		t.Fatalf("snapshot density = %+v, %v", p, ok)
	}
	if rule, _ := w.Parameters().Lookup("rule"); rule.Value != "B3/S23" {
		t.Fatalf("snapshot rule = %q", rule.Value)
	}
}
