package dynamics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/clobos/statlab/internal/dynamics"
)

// coupled is a planar system without closed-form nullclines, so sampling
// must fall back to the grid scan. Its nullclines are y = 2 and y = x.
type coupled struct{}

func (c *coupled) Name() string     { return "coupled" }
func (c *coupled) StateDim() int    { return 2 }
func (c *coupled) Labels() []string { return []string{"x", "y"} }
func (c *coupled) Derive(s dynamics.State) dynamics.State {
	return dynamics.State{s[1] - 2, s[1] - s[0]}
}

var _ = Describe("nullcline sampling", func() {
	It("scans for sign changes when no closed form is available", func() {
		// The window starts off the y=x corner so every crossing is
		// strictly interior to a scan column.
		win := dynamics.Window{XMin: 0.1, XMax: 3, YMin: 0, YMax: 3}
		ncs := dynamics.SampleNullclines(&coupled{}, win, 60)
		Expect(ncs).To(HaveLen(2))

		Expect(ncs[0].Points).NotTo(BeEmpty())
		for _, pt := range ncs[0].Points {
			Expect(pt[1]).To(BeNumerically("~", 2, 1e-6))
		}

		Expect(ncs[1].Points).NotTo(BeEmpty())
		for _, pt := range ncs[1].Points {
			Expect(pt[1]).To(BeNumerically("~", pt[0], 1e-6))
		}
	})

	It("labels scanned nullclines by the vanishing rate", func() {
		win := dynamics.Window{XMin: 0, XMax: 3, YMin: 0, YMax: 3}
		ncs := dynamics.SampleNullclines(&coupled{}, win, 20)
		Expect(ncs[0].Label).To(Equal("dx/dt=0"))
		Expect(ncs[1].Label).To(Equal("dy/dt=0"))
	})

	It("returns nothing for scalar systems", func() {
		win := dynamics.Window{XMax: 1, YMax: 1}
		Expect(dynamics.SampleNullclines(dynamics.NewLogistic(), win, 20)).To(BeNil())
	})
})

var _ = Describe("window", func() {
	It("contains its interior and boundary", func() {
		w := dynamics.Window{XMin: -1, XMax: 1, YMin: 0, YMax: 2}
		Expect(w.Contains(0, 1)).To(BeTrue())
		Expect(w.Contains(-1, 0)).To(BeTrue())
		Expect(w.Contains(1.0001, 1)).To(BeFalse())
		Expect(w.Contains(0, math.Nextafter(2, 3))).To(BeFalse())
	})
})
