package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeString denotes free-form values such as rule notation.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterProvider exposes a snapshot of the current parameters.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional and interpreted based on the
// parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Clamp limits v to the control's bounds.
func (c ParameterControl) Clamp(v float64) float64 {
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
