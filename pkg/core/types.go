package core

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Reset(seed int64)
	Step()
	Generation() int
	Population() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
