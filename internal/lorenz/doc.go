// Package lorenz implements the Lorenz system and its fixed-step RK4
// integration, along with the bounded trajectory buffer that feeds the
// renderer.
//
// The solver is deliberately total over finite floating-point inputs: it
// never validates parameters or step size, and non-finite states simply
// propagate through the trajectory. Degenerate inputs produce degenerate
// trajectories, not errors.
package lorenz
