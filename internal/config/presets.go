package config

// Presets are named configurations covering each damping regime plus
// the planar mode. The 1D presets share m=1, k=4 so the regimes line up
// at c=0.2 (zeta 0.05), c=4 (zeta 1), c=10 (zeta 2.5).
var Presets = map[string]*Config{
	"underdamped": {
		Mode: "1D", Integrator: "rk4", Dt: 1.0 / 120.0, Duration: 10.0,
		Params:    ParamsConfig{Mass: 1.0, Stiffness: 4.0, Damping: 0.2, Gravity: 9.81, NaturalLength: 1.0},
		InitState: InitStateConfig{X: 0.2},
	},
	"critical": {
		Mode: "1D", Integrator: "rk4", Dt: 1.0 / 120.0, Duration: 10.0,
		Params:    ParamsConfig{Mass: 1.0, Stiffness: 4.0, Damping: 4.0, Gravity: 9.81, NaturalLength: 1.0},
		InitState: InitStateConfig{X: 0.2},
	},
	"overdamped": {
		Mode: "1D", Integrator: "rk4", Dt: 1.0 / 120.0, Duration: 10.0,
		Params:    ParamsConfig{Mass: 1.0, Stiffness: 4.0, Damping: 10.0, Gravity: 9.81, NaturalLength: 1.0},
		InitState: InitStateConfig{X: 0.2},
	},
	"conservative": {
		Mode: "1D", Integrator: "rk4", Dt: 1.0 / 120.0, Duration: 20.0,
		Params:    ParamsConfig{Mass: 1.0, Stiffness: 10.0, Damping: 0.0, Gravity: 9.81, NaturalLength: 1.0},
		InitState: InitStateConfig{X: 0.5},
	},
	"planar": {
		Mode: "VECTOR", Integrator: "rk4", Dt: 1.0 / 120.0, Duration: 15.0,
		Params:    ParamsConfig{Mass: 1.0, Stiffness: 10.0, Damping: 0.5, Gravity: 9.81, NaturalLength: 1.0},
		InitState: InitStateConfig{X: 0.3, Y: 1.2},
	},
	"planar-drop": {
		Mode: "VECTOR", Integrator: "rk4", Dt: 1.0 / 120.0, Duration: 15.0,
		Params:    ParamsConfig{Mass: 1.0, Stiffness: 20.0, Damping: 1.0, Gravity: 9.81, NaturalLength: 1.0},
		InitState: InitStateConfig{X: 0.0, Y: 0.2},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
