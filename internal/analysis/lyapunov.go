// Package analysis provides chaos diagnostics for the Lorenz system.
//
// A positive largest Lyapunov exponent indicates chaotic dynamics; the
// canonical parameters give roughly 0.9.
package analysis

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/lorenzvis/internal/lorenz"
)

// LargestLyapunov estimates the largest Lyapunov exponent by the
// twin-trajectory separation method: integrate x0 and a copy perturbed by
// perturbation along x, accumulate log separation growth, and renormalize
// the twin whenever the separation exceeds unity so it stays in the linear
// regime.
func LargestLyapunov(p lorenz.Params, x0 mgl64.Vec3, dt, duration, perturbation float64) float64 {
	if dt <= 0 || duration <= 0 || perturbation == 0 {
		return 0
	}

	x := x0
	xp := x0
	xp[0] += perturbation
	d0 := math.Abs(perturbation)

	sumLog := 0.0
	count := 0

	for t := 0.0; t < duration; t += dt {
		x = lorenz.StepState(p, x, dt)
		xp = lorenz.StepState(p, xp, dt)

		sep := xp.Sub(x).Len()
		if sep <= 0 || math.IsNaN(sep) || math.IsInf(sep, 0) {
			break
		}
		sumLog += math.Log(sep / d0)
		count++

		// Renormalize every step so the twin stays an infinitesimal
		// perturbation (Benettin's method).
		xp = x.Add(xp.Sub(x).Mul(d0 / sep))
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}
