package dynamics

// NullclineFunc describes one nullcline of a planar system as an explicit
// curve y(x). Var says which state variable's rate is zero on it.
type NullclineFunc struct {
	Var   int
	Label string
	Y     func(x float64) float64
}

// NullclineProvider is implemented by planar systems whose nullclines have
// closed forms.
type NullclineProvider interface {
	Nullclines() []NullclineFunc
}

// Window is an axis-aligned viewing region of a planar phase space.
type Window struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Contains reports whether the point lies inside the window.
func (w Window) Contains(x, y float64) bool {
	return x >= w.XMin && x <= w.XMax && y >= w.YMin && y <= w.YMax
}

// Nullcline is a sampled nullcline curve.
type Nullcline struct {
	Var    int
	Label  string
	Points [][2]float64
}

// SampleNullclines samples a planar system's nullclines across a window.
// Systems with closed forms provide them; otherwise the rates are scanned
// on a grid and sign changes in each column are bisected.
func SampleNullclines(sys System, win Window, samples int) []Nullcline {
	if sys.StateDim() != 2 {
		return nil
	}
	if np, ok := sys.(NullclineProvider); ok {
		return sampleExplicit(np.Nullclines(), win, samples)
	}
	return scanNullclines(sys, win, samples)
}

func sampleExplicit(funcs []NullclineFunc, win Window, samples int) []Nullcline {
	out := make([]Nullcline, 0, len(funcs))
	dx := (win.XMax - win.XMin) / float64(samples-1)
	for _, f := range funcs {
		nc := Nullcline{Var: f.Var, Label: f.Label}
		for i := 0; i < samples; i++ {
			x := win.XMin + float64(i)*dx
			y := f.Y(x)
			if win.Contains(x, y) {
				nc.Points = append(nc.Points, [2]float64{x, y})
			}
		}
		out = append(out, nc)
	}
	return out
}

func scanNullclines(sys System, win Window, samples int) []Nullcline {
	labels := []string{"d" + sys.Labels()[0] + "/dt=0", "d" + sys.Labels()[1] + "/dt=0"}
	out := []Nullcline{
		{Var: 0, Label: labels[0]},
		{Var: 1, Label: labels[1]},
	}
	dx := (win.XMax - win.XMin) / float64(samples-1)
	dy := (win.YMax - win.YMin) / float64(samples-1)

	for i := 0; i < samples; i++ {
		x := win.XMin + float64(i)*dx
		for v := 0; v < 2; v++ {
			prev := sys.Derive(State{x, win.YMin})[v]
			for j := 1; j < samples; j++ {
				y := win.YMin + float64(j)*dy
				cur := sys.Derive(State{x, y})[v]
				if prev == 0 || prev*cur < 0 {
					yc := bisectY(sys, v, x, y-dy, y)
					out[v].Points = append(out[v].Points, [2]float64{x, yc})
				}
				prev = cur
			}
		}
	}
	return out
}

func bisectY(sys System, v int, x, ylo, yhi float64) float64 {
	flo := sys.Derive(State{x, ylo})[v]
	for i := 0; i < 40; i++ {
		mid := (ylo + yhi) / 2
		fm := sys.Derive(State{x, mid})[v]
		if fm == 0 {
			return mid
		}
		if flo*fm < 0 {
			yhi = mid
		} else {
			ylo = mid
			flo = fm
		}
	}
	return (ylo + yhi) / 2
}
