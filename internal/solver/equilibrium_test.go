package solver_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/radsim/internal/catalog"
	"github.com/san-kum/radsim/internal/physics"
	"github.com/san-kum/radsim/internal/solver"
)

// closedForm is the analytic root of the balance, used as a reference.
func closedForm(p solver.Problem) float64 {
	return math.Pow(p.Absorbed()/(p.EmissivityIR*physics.Sigma), 0.25)
}

var _ = Describe("EquilibriumTemperature", func() {
	It("equilibrates to ambient when nothing is absorbed", func() {
		t, err := solver.EquilibriumTemperature(1.0, 0.0, 0.0)
		Expect(err).NotTo(HaveOccurred())
		Expect(t).To(BeNumerically("~", 3.0, 1e-6))
	})

	It("honours a custom ambient temperature", func() {
		t, err := solver.EquilibriumTemperatureAt(0.5, 0.0, 0.0, 77.0)
		Expect(err).NotTo(HaveOccurred())
		Expect(t).To(BeNumerically("~", 77.0, 1e-6))
	})

	It("solves White Paint at the Earth orbit average", func() {
		p := solver.Problem{EmissivityIR: 0.90, AbsorptivitySolar: 0.18, SolarFlux: 341.5, AmbientTemp: 3}
		t, err := solver.EquilibriumTemperature(p.EmissivityIR, p.AbsorptivitySolar, p.SolarFlux)
		Expect(err).NotTo(HaveOccurred())
		Expect(t).To(BeNumerically("~", closedForm(p), 1e-6))
		Expect(t).To(BeNumerically("~", 186.3, 0.1))
	})

	It("drives the residual to zero", func() {
		p := solver.Problem{EmissivityIR: 0.85, AbsorptivitySolar: 0.10, SolarFlux: 1366, AmbientTemp: 3}
		res, err := solver.New(solver.DefaultConfig()).Solve(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Converged).To(BeTrue())
		Expect(math.Abs(solver.Balance(p, res.TemperatureK))).To(BeNumerically("<", 1e-9))
	})

	It("returns absolute zero when no power is absorbed at all", func() {
		res, err := solver.New(solver.DefaultConfig()).Solve(solver.Problem{EmissivityIR: 0.9})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Converged).To(BeTrue())
		Expect(res.TemperatureK).To(BeZero())
	})

	It("is monotonically non-decreasing in solar flux", func() {
		for _, m := range catalog.DefaultMaterials().All() {
			prev := -1.0
			for flux := 0.0; flux <= 2000; flux += 25 {
				t, err := solver.EquilibriumTemperature(m.EmissivityIR, m.AbsorptivitySolar, flux)
				Expect(err).NotTo(HaveOccurred(), m.Name)
				Expect(t).To(BeNumerically(">=", prev), m.Name)
				prev = t
			}
		}
	})

	DescribeTable("matches the closed form across the realistic domain",
		func(e, a, flux float64) {
			p := solver.Problem{EmissivityIR: e, AbsorptivitySolar: a, SolarFlux: flux, AmbientTemp: 3}
			res, err := solver.New(solver.DefaultConfig()).Solve(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.TemperatureK).To(BeNumerically("~", closedForm(p), 1e-6))
			Expect(res.Iterations).To(BeNumerically("<=", solver.DefaultConfig().MaxIter))
		},
		Entry("polished aluminum, full sun", 0.05, 0.12, 1366.0),
		Entry("black paint, severe storm", 0.95, 0.95, 1800.0),
		Entry("ideal radiator, deep space", 1.0, 0.0, 0.0),
		Entry("low emissivity, deep space", 0.01, 0.5, 0.0),
		Entry("dark absorber, weak sun", 1.0, 1.0, 1.0),
		Entry("grey, LEO hot case", 0.5, 0.5, 800.0),
	)
})

var _ = Describe("Solver errors", func() {
	var s *solver.Solver

	BeforeEach(func() {
		s = solver.New(solver.DefaultConfig())
	})

	It("rejects zero emissivity as degenerate", func() {
		_, err := s.Solve(solver.Problem{EmissivityIR: 0, AbsorptivitySolar: 0.5, SolarFlux: 1366, AmbientTemp: 3})
		Expect(err).To(MatchError(solver.ErrDegenerate))
		Expect(err).To(MatchError(physics.ErrInvalidArgument))
	})

	DescribeTable("rejects out-of-domain inputs",
		func(p solver.Problem) {
			_, err := s.Solve(p)
			Expect(err).To(MatchError(physics.ErrInvalidArgument))
		},
		Entry("emissivity above one", solver.Problem{EmissivityIR: 1.5, AbsorptivitySolar: 0.1, SolarFlux: 100}),
		Entry("negative absorptivity", solver.Problem{EmissivityIR: 0.5, AbsorptivitySolar: -0.1, SolarFlux: 100}),
		Entry("negative flux", solver.Problem{EmissivityIR: 0.5, AbsorptivitySolar: 0.1, SolarFlux: -1}),
		Entry("negative ambient", solver.Problem{EmissivityIR: 0.5, AbsorptivitySolar: 0.1, SolarFlux: 1, AmbientTemp: -3}),
		Entry("NaN flux", solver.Problem{EmissivityIR: 0.5, AbsorptivitySolar: 0.1, SolarFlux: math.NaN()}),
	)

	It("reports non-convergence with the best estimate", func() {
		cfg := solver.DefaultConfig()
		cfg.MaxIter = 1
		p := solver.Problem{EmissivityIR: 1, AbsorptivitySolar: 1, SolarFlux: 1800, AmbientTemp: 3}

		res, err := solver.New(cfg).Solve(p)
		Expect(err).To(MatchError(solver.ErrNoConvergence))
		Expect(res.Converged).To(BeFalse())
		Expect(res.Iterations).To(Equal(1))
		Expect(res.TemperatureK).To(BeNumerically(">", 0))

		var cerr *solver.ConvergenceError
		Expect(err).To(BeAssignableToTypeOf(cerr))
	})

	It("does not report convergence far above a sub-kelvin root", func() {
		p := solver.Problem{EmissivityIR: 1, AbsorptivitySolar: 1, SolarFlux: 1e-300, AmbientTemp: 0}

		res, err := s.Solve(p)
		Expect(err).To(MatchError(solver.ErrNoConvergence))
		Expect(res.Converged).To(BeFalse())
	})

	It("keeps relative accuracy for a sub-kelvin root given enough iterations", func() {
		cfg := solver.DefaultConfig()
		cfg.MaxIter = 2000
		p := solver.Problem{EmissivityIR: 1, AbsorptivitySolar: 1, SolarFlux: 1e-300, AmbientTemp: 0}

		res, err := solver.New(cfg).Solve(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Converged).To(BeTrue())
		want := closedForm(p)
		Expect(math.Abs(res.TemperatureK-want) / want).To(BeNumerically("<", 1e-6))
	})

	It("rejects an invalid configuration", func() {
		cfg := solver.DefaultConfig()
		cfg.Tolerance = 0
		_, err := solver.New(cfg).Solve(solver.Problem{EmissivityIR: 1, SolarFlux: 1})
		Expect(err).To(MatchError(physics.ErrInvalidArgument))
	})

	It("names the material on failure", func() {
		_, err := s.SolveMaterial(catalog.Material{Name: "Void", EmissivityIR: 0, AbsorptivitySolar: 0.3}, 100)
		Expect(err).To(MatchError(ContainSubstring("Void")))
		Expect(err).To(MatchError(solver.ErrDegenerate))
	})
})
