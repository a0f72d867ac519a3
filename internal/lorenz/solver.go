package lorenz

import "github.com/go-gl/mathgl/mgl64"

// Params holds the Lorenz vector-field coefficients. They are unconstrained:
// sliders and config files feed arbitrary finite values in here.
type Params struct {
	Sigma float64
	Rho   float64
	Beta  float64
}

// DefaultParams returns the canonical chaotic regime.
func DefaultParams() Params {
	return Params{Sigma: 10.0, Rho: 28.0, Beta: 8.0 / 3.0}
}

// Seed is the canonical initial condition.
var Seed = mgl64.Vec3{0, 1, 0}

// VectorField evaluates the Lorenz right-hand side at s.
func VectorField(p Params, s mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		p.Sigma * (s[1] - s[0]),
		s[0]*(p.Rho-s[2]) - s[1],
		s[0]*s[1] - p.Beta*s[2],
	}
}

// StepState advances s by one fixed-step RK4 iteration with step size dt.
// Parameters are held fixed across the four stage evaluations.
func StepState(p Params, s mgl64.Vec3, dt float64) mgl64.Vec3 {
	k1 := VectorField(p, s)
	k2 := VectorField(p, s.Add(k1.Mul(dt*0.5)))
	k3 := VectorField(p, s.Add(k2.Mul(dt*0.5)))
	k4 := VectorField(p, s.Add(k3.Mul(dt)))
	return s.Add(k1.Add(k2.Mul(2)).Add(k3.Mul(2)).Add(k4).Mul(dt / 6))
}

// Solver owns the current state, the vector-field parameters, and the
// trajectory traced so far. The trajectory's last element is always the
// current state. Single-threaded: the frame loop settles the solver fully
// before the renderer reads the trajectory.
type Solver struct {
	params     Params
	state      mgl64.Vec3
	trajectory []mgl64.Vec3
}

// NewSolver creates a solver at the canonical seed with the given parameters.
func NewSolver(p Params) *Solver {
	s := &Solver{params: p}
	s.state = Seed
	s.trajectory = make([]mgl64.Vec3, 0, 50000)
	s.trajectory = append(s.trajectory, s.state)
	return s
}

// SetParameters replaces the vector-field coefficients, taking effect on the
// next step.
func (s *Solver) SetParameters(sigma, rho, beta float64) {
	s.params = Params{Sigma: sigma, Rho: rho, Beta: beta}
}

// Params returns the current coefficients.
func (s *Solver) Params() Params { return s.params }

// SetState moves the solver to (x, y, z) and restarts the trajectory as a
// singleton containing it.
func (s *Solver) SetState(x, y, z float64) {
	s.state = mgl64.Vec3{x, y, z}
	s.trajectory = s.trajectory[:0]
	s.trajectory = append(s.trajectory, s.state)
}

// Step advances the state by one RK4 iteration and appends the result to the
// trajectory. No length check here; eviction is a separate ClearOldest pass.
func (s *Solver) Step(dt float64) {
	s.state = StepState(s.params, s.state, dt)
	s.trajectory = append(s.trajectory, s.state)
}

// Advance performs n steps. It exists so the integration cadence can be
// driven (and tested) independently of any render loop.
func (s *Solver) Advance(dt float64, n int) {
	for i := 0; i < n; i++ {
		s.Step(dt)
	}
}

// ClearOldest discards the oldest entries so at most keep remain, preserving
// order. No-op when the trajectory already fits. Parameters and the current
// state are untouched.
func (s *Solver) ClearOldest(keep int) {
	if keep < 0 {
		keep = 0
	}
	overflow := len(s.trajectory) - keep
	if overflow <= 0 {
		return
	}
	// Reslice rather than shift; append reclaims the dropped prefix when the
	// backing array next grows.
	s.trajectory = s.trajectory[overflow:]
}

// Reset restores the canonical seed and a singleton trajectory. Parameters
// keep their current values.
func (s *Solver) Reset() {
	s.state = Seed
	s.trajectory = s.trajectory[:0]
	s.trajectory = append(s.trajectory, s.state)
}

// Trajectory returns the recorded path, oldest first. The slice is a view
// into solver-owned storage valid until the next Step/ClearOldest/Reset;
// callers must not mutate it.
func (s *Solver) Trajectory() []mgl64.Vec3 { return s.trajectory }

// State returns the current position by value.
func (s *Solver) State() mgl64.Vec3 { return s.state }
