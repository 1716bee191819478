package dynamics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/clobos/statlab/internal/dynamics"
)

var _ = Describe("logistic growth", func() {
	var sys *dynamics.Logistic

	BeforeEach(func() {
		sys = dynamics.NewLogistic()
		sys.R = 1.3
		sys.K = 10
	})

	It("has fixed points at 0 and K", func() {
		fps, err := dynamics.Analyze(sys)
		Expect(err).NotTo(HaveOccurred())
		Expect(fps).To(HaveLen(2))
		Expect(fps[0].State[0]).To(BeNumerically("~", 0, 1e-9))
		Expect(fps[1].State[0]).To(BeNumerically("~", sys.K, 1e-9))
	})

	It("is unstable at 0 with derivative r", func() {
		fps, err := dynamics.Analyze(sys)
		Expect(err).NotTo(HaveOccurred())
		Expect(real(fps[0].Eigenvalues[0])).To(BeNumerically("~", sys.R, 1e-9))
		Expect(fps[0].Class).To(Equal(dynamics.UnstableNode))
		Expect(fps[0].Class.Stable()).To(BeFalse())
	})

	It("is stable at K with derivative -r", func() {
		fps, err := dynamics.Analyze(sys)
		Expect(err).NotTo(HaveOccurred())
		Expect(real(fps[1].Eigenvalues[0])).To(BeNumerically("~", -sys.R, 1e-9))
		Expect(fps[1].Class).To(Equal(dynamics.StableNode))
		Expect(fps[1].Class.Stable()).To(BeTrue())
	})

	It("agrees with the numeric Jacobian", func() {
		x := dynamics.State{3.7}
		analytic := sys.JacobianAt(x).At(0, 0)
		numeric := dynamics.NumericJacobian(sys, x, 1e-6).At(0, 0)
		Expect(numeric).To(BeNumerically("~", analytic, 1e-5))
	})
})

var _ = Describe("predator-prey", func() {
	var sys *dynamics.PredatorPrey

	BeforeEach(func() {
		sys = dynamics.NewPredatorPrey() // A=5, B=1, C=1, D=0.2
	})

	It("has equilibria at the origin and (1, 5)", func() {
		fps, err := dynamics.Analyze(sys)
		Expect(err).NotTo(HaveOccurred())
		Expect(fps).To(HaveLen(2))
		Expect(fps[0].State[0]).To(BeNumerically("~", 0, 1e-9))
		Expect(fps[0].State[1]).To(BeNumerically("~", 0, 1e-9))
		Expect(fps[1].State[0]).To(BeNumerically("~", 1, 1e-9))
		Expect(fps[1].State[1]).To(BeNumerically("~", 5, 1e-9))
	})

	It("classifies the origin as a saddle", func() {
		fps, err := dynamics.Analyze(sys)
		Expect(err).NotTo(HaveOccurred())
		origin := fps[0]
		Expect(origin.Class).To(Equal(dynamics.Saddle))
		// Real eigenvalues of opposite sign: A and -D.
		Expect(dynamics.Oscillatory(origin.Eigenvalues)).To(BeFalse())
		signs := 0
		for _, e := range origin.Eigenvalues {
			if real(e) > 0 {
				signs++
			}
		}
		Expect(signs).To(Equal(1))
	})

	It("classifies coexistence as a stable spiral", func() {
		fps, err := dynamics.Analyze(sys)
		Expect(err).NotTo(HaveOccurred())
		coex := fps[1]
		Expect(coex.Class).To(Equal(dynamics.StableSpiral))
		Expect(coex.Class.Stable()).To(BeTrue())
		Expect(dynamics.Oscillatory(coex.Eigenvalues)).To(BeTrue())
		// Trace of the Jacobian is -D, so the shared real part is -D/2.
		for _, e := range coex.Eigenvalues {
			Expect(real(e)).To(BeNumerically("~", -sys.D/2, 1e-9))
		}
	})

	It("exposes the nullclines of both rates", func() {
		win := dynamics.Window{XMin: 0, XMax: 3, YMin: 0, YMax: 8}
		ncs := dynamics.SampleNullclines(sys, win, 100)
		Expect(ncs).To(HaveLen(2))

		// Prey nullcline is the horizontal line y = A/B.
		for _, pt := range ncs[0].Points {
			Expect(pt[1]).To(BeNumerically("~", sys.A/sys.B, 1e-9))
		}
		// Predator nullcline is y = Cx/D.
		for _, pt := range ncs[1].Points {
			Expect(pt[1]).To(BeNumerically("~", sys.C*pt[0]/sys.D, 1e-9))
		}
	})
})

var _ = Describe("harvested logistic", func() {
	It("loses its equilibria past the maximum sustainable yield", func() {
		sys := dynamics.NewHarvestedLogistic() // r=1, K=10, msy = rK/4 = 2.5
		sys.H = 1.0
		fps, err := dynamics.Analyze(sys)
		Expect(err).NotTo(HaveOccurred())
		Expect(fps).To(HaveLen(2))
		Expect(fps[0].Class.Stable()).To(BeFalse())
		Expect(fps[1].Class.Stable()).To(BeTrue())

		sys.H = 3.0
		fps, err = dynamics.Analyze(sys)
		Expect(err).NotTo(HaveOccurred())
		Expect(fps).To(BeEmpty())
	})
})

var _ = Describe("classification", func() {
	DescribeTable("reads stability off eigenvalues",
		func(eigs []complex128, want dynamics.Stability) {
			Expect(dynamics.Classify(eigs)).To(Equal(want))
		},
		Entry("1-D stable", []complex128{complex(-0.5, 0)}, dynamics.StableNode),
		Entry("1-D unstable", []complex128{complex(0.5, 0)}, dynamics.UnstableNode),
		Entry("1-D marginal", []complex128{complex(0, 0)}, dynamics.Marginal),
		Entry("stable node", []complex128{complex(-1, 0), complex(-2, 0)}, dynamics.StableNode),
		Entry("unstable node", []complex128{complex(1, 0), complex(2, 0)}, dynamics.UnstableNode),
		Entry("saddle", []complex128{complex(5, 0), complex(-0.2, 0)}, dynamics.Saddle),
		Entry("stable spiral", []complex128{complex(-0.1, 1), complex(-0.1, -1)}, dynamics.StableSpiral),
		Entry("unstable spiral", []complex128{complex(0.1, 1), complex(0.1, -1)}, dynamics.UnstableSpiral),
		Entry("center", []complex128{complex(0, 1), complex(0, -1)}, dynamics.Center),
	)

	It("marks complex pairs oscillatory", func() {
		Expect(dynamics.Oscillatory([]complex128{complex(-0.1, 2.2), complex(-0.1, -2.2)})).To(BeTrue())
		Expect(dynamics.Oscillatory([]complex128{complex(-1, 0), complex(-2, 0)})).To(BeFalse())
	})
})

var _ = Describe("newton refinement", func() {
	It("polishes a perturbed candidate back onto the equilibrium", func() {
		sys := dynamics.NewPredatorPrey()
		x, err := dynamics.Refine(sys, dynamics.State{1.02, 4.97})
		Expect(err).NotTo(HaveOccurred())
		Expect(x[0]).To(BeNumerically("~", 1, 1e-8))
		Expect(x[1]).To(BeNumerically("~", 5, 1e-8))
		Expect(math.Abs(sys.Derive(x)[0])).To(BeNumerically("<", 1e-8))
	})
})
