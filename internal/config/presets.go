package config

// Presets are well-known Lorenz regimes reachable by name from the CLI.
var Presets = map[string]*Config{
	// The canonical strange attractor.
	"classic": presetSim(SimConfig{
		Sigma: 10.0, Rho: 28.0, Beta: 8.0 / 3.0,
		Dt: 0.01, StepsPerFrame: 1, MaxPoints: 50000, LineAlpha: 1.0,
	}),
	// Below the subcritical Hopf bifurcation; trajectories spiral into a
	// fixed point.
	"calm": presetSim(SimConfig{
		Sigma: 10.0, Rho: 14.0, Beta: 8.0 / 3.0,
		Dt: 0.01, StepsPerFrame: 1, MaxPoints: 20000, LineAlpha: 1.0,
	}),
	// A periodic window at high rho: a closed orbit instead of chaos.
	"periodic": presetSim(SimConfig{
		Sigma: 10.0, Rho: 99.96, Beta: 8.0 / 3.0,
		Dt: 0.005, StepsPerFrame: 2, MaxPoints: 30000, LineAlpha: 0.9,
	}),
	// Fast, dense exploration with a long trail.
	"storm": presetSim(SimConfig{
		Sigma: 16.0, Rho: 45.92, Beta: 4.0,
		Dt: 0.005, StepsPerFrame: 8, MaxPoints: 120000, LineAlpha: 0.5,
	}),
}

func presetSim(sim SimConfig) *Config {
	cfg := DefaultConfig()
	cfg.Sim = sim
	return cfg
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
