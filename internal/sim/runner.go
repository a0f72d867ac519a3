// Package sim drives the solver headlessly: a fixed-step run over a
// duration with observer callbacks, no graphics context required.
package sim

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/lorenzvis/internal/lorenz"
)

// Observer is notified after every integration step.
type Observer interface {
	OnStep(state mgl64.Vec3, t float64)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(state mgl64.Vec3, t float64)

func (f ObserverFunc) OnStep(state mgl64.Vec3, t float64) { f(state, t) }

// Config controls a headless run.
type Config struct {
	Dt        float64
	Duration  float64
	MaxPoints int // trajectory bound applied once per eviction interval; <=0 means unbounded
}

// Result summarizes a completed run.
type Result struct {
	FinalState mgl64.Vec3
	StepsTaken int
	Points     int
	Elapsed    time.Duration
	Diverged   bool // state left the finite range at some step
}

// Runner owns a solver for the duration of a run.
type Runner struct {
	solver    *lorenz.Solver
	observers []Observer
}

func New(solver *lorenz.Solver) *Runner {
	return &Runner{solver: solver}
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Solver exposes the underlying solver, e.g. for trajectory access after a
// run.
func (r *Runner) Solver() *lorenz.Solver { return r.solver }

// Run integrates for cfg.Duration, bounding the trajectory to cfg.MaxPoints
// after each step, mirroring the per-frame eviction contract of the render
// loop. Returns early with the context error if canceled.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("sim: dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("sim: duration must be positive, got %f", cfg.Duration)
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{}
	start := time.Now()

	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			result.FinalState = r.solver.State()
			result.Points = len(r.solver.Trajectory())
			result.Elapsed = time.Since(start)
			return result, ctx.Err()
		default:
		}

		r.solver.Step(cfg.Dt)
		t += cfg.Dt
		result.StepsTaken++

		s := r.solver.State()
		if !finite(s) {
			result.Diverged = true
		}
		for _, o := range r.observers {
			o.OnStep(s, t)
		}

		if cfg.MaxPoints > 0 {
			r.solver.ClearOldest(cfg.MaxPoints)
		}
	}

	result.FinalState = r.solver.State()
	result.Points = len(r.solver.Trajectory())
	result.Elapsed = time.Since(start)
	return result, nil
}

func finite(v mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return false
		}
	}
	return true
}
