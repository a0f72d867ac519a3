// Package app holds the shared application state record. The frame-loop
// orchestrator owns it; the input and parameter-panel collaborators receive
// a pointer and write into it directly between frames.
package app

import (
	"github.com/san-kum/lorenzvis/internal/config"
	"github.com/san-kum/lorenzvis/internal/lorenz"
)

// State is everything the GUI and TUI let the user touch at runtime. The
// solver reads Params/Dt at the next step boundary, so edits land between
// any two steps without further coordination.
type State struct {
	Running       bool
	StepsPerFrame int
	Dt            float64
	Params        lorenz.Params
	MaxPoints     int
	LineAlpha     float64
}

// NewState returns the startup state: paused, canonical parameters.
func NewState() *State {
	return &State{
		Running:       false,
		StepsPerFrame: 1,
		Dt:            0.01,
		Params:        lorenz.DefaultParams(),
		MaxPoints:     50000,
		LineAlpha:     1.0,
	}
}

// FromConfig builds the startup state from a resolved configuration.
func FromConfig(cfg *config.Config) *State {
	return &State{
		Running:       false,
		StepsPerFrame: cfg.Sim.StepsPerFrame,
		Dt:            cfg.Sim.Dt,
		Params:        lorenz.Params{Sigma: cfg.Sim.Sigma, Rho: cfg.Sim.Rho, Beta: cfg.Sim.Beta},
		MaxPoints:     cfg.Sim.MaxPoints,
		LineAlpha:     cfg.Sim.LineAlpha,
	}
}
