package degradation_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/radsim/internal/catalog"
	"github.com/san-kum/radsim/internal/degradation"
	"github.com/san-kum/radsim/internal/physics"
)

var _ = Describe("Model", func() {
	var (
		materials *catalog.Materials
		model     *degradation.Model
	)

	BeforeEach(func() {
		materials = catalog.DefaultMaterials()
		model = degradation.New(materials)
	})

	It("is the identity at zero exposure for every material", func() {
		for _, name := range materials.Names() {
			base, err := materials.Lookup(name)
			Expect(err).NotTo(HaveOccurred())

			e, a, err := model.DegradedProperties(name, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(e).To(Equal(base.EmissivityIR), name)
			Expect(a).To(Equal(base.AbsorptivitySolar), name)
		}
	})

	It("applies the linear drift", func() {
		e, a, err := model.DegradedProperties("White Paint (Z93-type)", 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(e).To(BeNumerically("~", 0.85, 1e-12))
		Expect(a).To(BeNumerically("~", 0.33, 1e-12))
	})

	It("stays inside [0,1] for long exposures", func() {
		for _, name := range materials.Names() {
			for _, years := range []float64{1, 10, 100, 1000, 1e6} {
				e, a, err := model.DegradedProperties(name, years)
				Expect(err).NotTo(HaveOccurred())
				Expect(e).To(And(BeNumerically(">=", 0), BeNumerically("<=", 1)), name)
				Expect(a).To(And(BeNumerically(">=", 0), BeNumerically("<=", 1)), name)
			}
		}
	})

	It("clamps polished aluminum emissivity at zero", func() {
		e, _, err := model.DegradedProperties("Polished Aluminum", 20)
		Expect(err).NotTo(HaveOccurred())
		Expect(e).To(BeZero())
	})

	It("rejects negative or NaN exposure", func() {
		_, _, err := model.DegradedProperties("Black Paint", -1)
		Expect(err).To(MatchError(physics.ErrInvalidArgument))

		_, _, err = model.DegradedProperties("Black Paint", math.NaN())
		Expect(err).To(MatchError(physics.ErrInvalidArgument))
	})

	It("reports unknown materials", func() {
		_, _, err := model.DegradedProperties("Gold Foil", 1)
		Expect(err).To(MatchError(catalog.ErrNotFound))
	})

	It("labels aged materials", func() {
		m, err := model.Aged("Black Paint", 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Name).To(Equal("Black Paint (+5y)"))

		m, err = model.Aged("Black Paint", 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Name).To(Equal("Black Paint"))
	})

	It("builds a timeline", func() {
		tl, err := model.Timeline("White Paint (AZ93-type)", []float64{0, 1, 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(tl).To(HaveLen(3))
		Expect(tl[2].AbsorptivitySolar).To(BeNumerically(">", tl[1].AbsorptivitySolar))
		Expect(tl[1].AbsorptivitySolar).To(BeNumerically(">", tl[0].AbsorptivitySolar))
	})
})

var _ = Describe("Project", func() {
	It("works on ad-hoc materials outside the catalog", func() {
		m := catalog.Material{Name: "custom", EmissivityIR: 0.5, AbsorptivitySolar: 0.5}
		r := catalog.DegradationRate{DeltaAlphaPerYear: 0.1, DeltaEpsilonPerYear: 0.1}

		aged := degradation.Project(m, r, 10)
		Expect(aged.EmissivityIR).To(Equal(1.0))
		Expect(aged.AbsorptivitySolar).To(Equal(1.0))
		Expect(aged.Name).To(Equal("custom"))
	})
})
