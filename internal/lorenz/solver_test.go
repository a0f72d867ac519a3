package lorenz_test

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lorenzvis/internal/lorenz"
)

// Reference states for sigma=10, rho=28, beta=8/3, seed (0,1,0), dt=0.01,
// computed once with the same RK4 stage ordering in IEEE-754 doubles.
var reference = map[int]mgl64.Vec3{
	1:    {0.09512136887442708, 1.003536737149201, 0.0004790063015099316},
	10:   {0.9120352599452406, 2.091927190356329, 0.06245150237820413},
	100:  {-9.443192485965104, -9.378954395410615, 28.33784458673752},
	500:  {-7.00057596101224, -6.784360741116716, 25.531121712633787},
	1000: {-5.9165655066757115, -5.523312211443933, 24.572445598792758},
}

func relClose(got, want mgl64.Vec3, tol float64) bool {
	for i := 0; i < 3; i++ {
		scale := math.Max(math.Abs(want[i]), 1e-12)
		if math.Abs(got[i]-want[i])/scale > tol {
			return false
		}
	}
	return true
}

var _ = Describe("Solver", func() {
	var s *lorenz.Solver

	BeforeEach(func() {
		s = lorenz.NewSolver(lorenz.DefaultParams())
	})

	It("starts at the canonical seed with a singleton trajectory", func() {
		Expect(s.State()).To(Equal(lorenz.Seed))
		Expect(s.Trajectory()).To(HaveLen(1))
		Expect(s.Trajectory()[0]).To(Equal(lorenz.Seed))
	})

	Describe("Step", func() {
		It("grows the trajectory by exactly one per step", func() {
			for i := 1; i <= 250; i++ {
				s.Step(0.01)
				Expect(s.Trajectory()).To(HaveLen(1 + i))
			}
		})

		It("keeps the current state as the last trajectory element", func() {
			s.Advance(0.01, 50)
			traj := s.Trajectory()
			Expect(traj[len(traj)-1]).To(Equal(s.State()))
		})

		It("matches the reference trajectory at canonical parameters", func() {
			for i := 1; i <= 1000; i++ {
				s.Step(0.01)
				if want, ok := reference[i]; ok {
					Expect(relClose(s.State(), want, 1e-9)).To(BeTrue(),
						"step %d: got %v want %v", i, s.State(), want)
				}
			}
		})

		It("is a no-op on state for dt=0", func() {
			before := s.State()
			s.Step(0)
			Expect(s.State()).To(Equal(before))
			Expect(s.Trajectory()).To(HaveLen(2))
		})

		It("survives numerical blow-up without panicking", func() {
			s.SetParameters(1e300, 1e300, 1e300)
			Expect(func() {
				s.Advance(100.0, 20)
			}).NotTo(Panic())
			Expect(s.Trajectory()).To(HaveLen(21))
		})
	})

	Describe("SetParameters", func() {
		It("takes effect on the next step only", func() {
			twin := lorenz.NewSolver(lorenz.DefaultParams())
			s.Step(0.01)
			twin.Step(0.01)
			Expect(s.State()).To(Equal(twin.State()))

			s.SetParameters(16, 45.92, 4)
			s.Step(0.01)
			twin.Step(0.01)
			Expect(s.State()).NotTo(Equal(twin.State()))
		})

		It("holds parameters fixed within a step but not across steps", func() {
			s.SetParameters(10, 28, 8.0/3.0)
			s.Step(0.01)
			mid := s.State()
			s.SetParameters(10, 99.96, 8.0/3.0)
			s.Step(0.01)
			Expect(s.State()).To(Equal(lorenz.StepState(
				lorenz.Params{Sigma: 10, Rho: 99.96, Beta: 8.0 / 3.0}, mid, 0.01)))
		})
	})

	Describe("SetState", func() {
		It("restarts the trajectory as a singleton at the new position", func() {
			s.Advance(0.01, 40)
			s.SetState(3, -1, 12.5)
			Expect(s.State()).To(Equal(mgl64.Vec3{3, -1, 12.5}))
			Expect(s.Trajectory()).To(Equal([]mgl64.Vec3{{3, -1, 12.5}}))
		})
	})

	Describe("ClearOldest", func() {
		It("keeps the most recent entries in order", func() {
			s.Advance(0.01, 99) // trajectory length 100
			want := append([]mgl64.Vec3(nil), s.Trajectory()[60:]...)
			s.ClearOldest(40)
			Expect(s.Trajectory()).To(Equal(want))
		})

		It("is a no-op when keep covers the whole trajectory", func() {
			s.Advance(0.01, 10)
			want := append([]mgl64.Vec3(nil), s.Trajectory()...)
			s.ClearOldest(11)
			Expect(s.Trajectory()).To(Equal(want))
			s.ClearOldest(10000)
			Expect(s.Trajectory()).To(Equal(want))
		})

		It("empties the trajectory for keep=0 and clamps negative keep", func() {
			s.Advance(0.01, 5)
			s.ClearOldest(0)
			Expect(s.Trajectory()).To(BeEmpty())
			s.Step(0.01)
			s.ClearOldest(-3)
			Expect(s.Trajectory()).To(BeEmpty())
		})

		It("never touches parameters or the current state", func() {
			s.Advance(0.01, 20)
			state, params := s.State(), s.Params()
			s.ClearOldest(5)
			Expect(s.State()).To(Equal(state))
			Expect(s.Params()).To(Equal(params))
		})

		It("bounds the trajectory across a long run", func() {
			const maxPoints = 100
			for i := 0; i < 250; i++ {
				s.Step(0.01)
			}
			s.ClearOldest(maxPoints)
			traj := s.Trajectory()
			Expect(traj).To(HaveLen(maxPoints))
			Expect(traj[len(traj)-1]).To(Equal(s.State()))
		})
	})

	Describe("Reset", func() {
		It("returns to the seed and a singleton trajectory, keeping parameters", func() {
			s.SetParameters(14, 35, 3)
			s.Advance(0.02, 123)
			s.Reset()
			Expect(s.State()).To(Equal(lorenz.Seed))
			Expect(s.Trajectory()).To(Equal([]mgl64.Vec3{lorenz.Seed}))
			Expect(s.Params()).To(Equal(lorenz.Params{Sigma: 14, Rho: 35, Beta: 3}))
		})
	})
})

var _ = Describe("VectorField", func() {
	It("evaluates the Lorenz right-hand side", func() {
		f := lorenz.VectorField(lorenz.DefaultParams(), mgl64.Vec3{1, 2, 3})
		Expect(f[0]).To(Equal(10.0 * (2.0 - 1.0)))
		Expect(f[1]).To(Equal(1.0*(28.0-3.0) - 2.0))
		Expect(f[2]).To(Equal(1.0*2.0 - (8.0/3.0)*3.0))
	})

	It("has equilibria at the fixed points", func() {
		p := lorenz.DefaultParams()
		c := math.Sqrt(p.Beta * (p.Rho - 1))
		fp := mgl64.Vec3{c, c, p.Rho - 1}
		f := lorenz.VectorField(p, fp)
		Expect(f.Len()).To(BeNumerically("<", 1e-12))
	})
})
