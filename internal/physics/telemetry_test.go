package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravitylab/internal/params"
	"github.com/san-kum/gravitylab/internal/physics"
)

var _ = Describe("Classify", func() {
	DescribeTable("maps velocity to status",
		func(v float64, want physics.Status) {
			Expect(physics.Classify(v)).To(Equal(want))
		},
		Entry("escaping", 1.5, physics.Escaping),
		Entry("just above escape threshold", 1.2001, physics.Escaping),
		Entry("escape threshold itself", 1.2, physics.Decaying),
		Entry("gap between stable and escaping", 1.18, physics.Decaying),
		Entry("upper stable bound", 1.15, physics.Stable),
		Entry("equilibrium", 1.0, physics.Stable),
		Entry("inside stable band", 0.9, physics.Stable),
		Entry("lower stable bound", 0.85, physics.Stable),
		Entry("slow", 0.5, physics.Decaying),
		Entry("minimum", 0.1, physics.Decaying),
	)

	It("carries fixed labels and colours", func() {
		Expect(physics.Stable.String()).To(Equal("STABLE"))
		Expect(physics.Escaping.String()).To(Equal("ESCAPING"))
		Expect(physics.Decaying.String()).To(Equal("DECAYING"))
		Expect(physics.Stable.Color()).To(Equal("#10b981"))
		Expect(physics.Escaping.Color()).To(Equal("#f59e0b"))
		Expect(physics.Decaying.Color()).To(Equal("#ef4444"))
	})
})

var _ = Describe("Stability", func() {
	It("peaks at the equilibrium velocity", func() {
		Expect(physics.Stability(1.0)).To(Equal(100.0))
	})

	It("bottoms out at zero", func() {
		Expect(physics.Stability(2.0)).To(BeNumerically("~", 0, 1e-9))
		Expect(physics.Stability(3.0)).To(Equal(0.0))
	})

	It("is symmetric around equilibrium", func() {
		for _, d := range []float64{0.05, 0.2, 0.5, 0.9} {
			Expect(physics.Stability(1 + d)).To(BeNumerically("~", physics.Stability(1-d), 1e-9))
		}
	})
})

var _ = Describe("Force", func() {
	It("matches the Earth-Moon reference scenario", func() {
		Expect(physics.Force(5.97, 0.073, 350)).To(BeNumerically("~", 35.57, 0.01))
	})

	It("grows with either mass and falls with distance", func() {
		base := physics.Force(5, 0.1, 300)
		Expect(physics.Force(6, 0.1, 300)).To(BeNumerically(">", base))
		Expect(physics.Force(5, 0.2, 300)).To(BeNumerically(">", base))
		Expect(physics.Force(5, 0.1, 400)).To(BeNumerically("<", base))
	})
})

var _ = Describe("Compute", func() {
	It("bundles the default readout", func() {
		tel := physics.Compute(params.Defaults())
		Expect(tel.Status).To(Equal(physics.Stable))
		Expect(tel.Stability).To(Equal(100.0))
		Expect(tel.Force).To(BeNumerically("~", 35.57, 0.01))
	})
})
