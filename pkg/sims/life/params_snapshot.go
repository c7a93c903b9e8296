package life

import (
	"math"
	"strconv"

	"lifegrid/pkg/core"
)

// Parameters reports the world's configuration and live statistics.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: w.cfg.Rule.String()},
				intParam("generation", "Generation", w.gen),
				intParam("population", "Population", len(w.cells)),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				floatParam("density", "Random density", w.cfg.Density),
				floatParam("noise_threshold", "Noise threshold", w.cfg.NoiseThreshold),
				floatParam("noise_scale", "Noise scale", w.cfg.NoiseScale),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(w.cfg.Seed, 10)},
			},
		},
	}}
}

var parameterControls = []core.ParameterControl{
	{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "noise_threshold", Label: "Noise threshold", Type: core.ParamTypeFloat, Step: 0.05, Min: -1, Max: 1, HasMin: true, HasMax: true},
	{Key: "noise_scale", Label: "Noise scale", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.01, Max: 1, HasMin: true, HasMax: true},
}

// ParameterControls lists the HUD-adjustable seeding parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), parameterControls...)
}

// SetFloatParameter updates a seeding parameter, clamping to the control's
// bounds. It reports false for unknown keys.
func (w *World) SetFloatParameter(key string, value float64) bool {
	var ctrl core.ParameterControl
	found := false
	for _, c := range parameterControls {
		if c.Key == key {
			ctrl, found = c, true
			break
		}
	}
	if !found || math.IsNaN(value) {
		return false
	}
	value = ctrl.Clamp(value)
	switch key {
	case "density":
		w.cfg.Density = value
	case "noise_threshold":
		w.cfg.NoiseThreshold = value
	case "noise_scale":
		w.cfg.NoiseScale = value
	}
	return true
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', -1, 64)}
}
