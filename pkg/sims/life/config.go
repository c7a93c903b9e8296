package life

import "strconv"

// Config holds the tunables of a life world.
type Config struct {
	Rule Rule

	// Density is the probability used by Reset's random fill and by the
	// viewport randomizer.
	Density float64

	// NoiseThreshold and NoiseScale shape SeedNoise: cells whose sampled
	// noise exceeds the threshold come alive, and the scale converts cell
	// coordinates into noise space.
	NoiseThreshold float64
	NoiseScale     float64

	// Pattern, when it names a preset, replaces the random fill on Reset.
	Pattern string

	// Width and Height size the random start area centred on the origin.
	Width  int
	Height int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rule:           Conway,
		Density:        0.3,
		NoiseThreshold: 0.15,
		NoiseScale:     0.12,
		Width:          64,
		Height:         48,
		Seed:           1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Merge(cfg)
}

// Merge overrides c with the recognised keys of m. Values that do not parse
// or fall outside their valid range are ignored.
func (c Config) Merge(m map[string]string) Config {
	if m == nil {
		return c
	}
	if v, ok := m["rule"]; ok {
		if parsed, err := ParseRule(v); err == nil {
			c.Rule = parsed
		}
	}
	if v, ok := m["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Density = clampUnit(parsed)
		}
	}
	if v, ok := m["noise_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= -1 && parsed <= 1 {
			c.NoiseThreshold = parsed
		}
	}
	if v, ok := m["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.NoiseScale = parsed
		}
	}
	if v, ok := m["pattern"]; ok {
		if _, known := PatternByName(v); known || v == "" {
			c.Pattern = v
		}
	}
	if v, ok := m["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := m["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := m["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

func clampUnit(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
