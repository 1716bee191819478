package analysis

import (
	"context"
	"strings"

	"github.com/clobos/statlab/internal/dynamics"
	"github.com/clobos/statlab/internal/integrators"
)

// Portrait holds everything drawn on a 2D phase plane: trajectories from a
// set of initial conditions, the nullclines, and the fixed points.
type Portrait struct {
	Window       dynamics.Window
	XLabel       string
	YLabel       string
	Trajectories [][][2]float64
	Nullclines   []dynamics.Nullcline
	FixedPoints  []dynamics.FixedPoint
}

// GeneratePortrait simulates each initial condition and assembles the
// phase-plane view of a planar system.
func GeneratePortrait(ctx context.Context, sys dynamics.System, step integrators.Stepper, ics []dynamics.State, win dynamics.Window, cfg Config) (*Portrait, error) {
	if sys.StateDim() != 2 {
		return nil, dynamics.ErrDimension
	}

	labels := sys.Labels()
	p := &Portrait{
		Window:     win,
		XLabel:     labels[0],
		YLabel:     labels[1],
		Nullclines: dynamics.SampleNullclines(sys, win, 200),
	}

	if fps, err := dynamics.Analyze(sys); err == nil {
		for _, fp := range fps {
			if win.Contains(fp.State[0], fp.State[1]) {
				p.FixedPoints = append(p.FixedPoints, fp)
			}
		}
	}

	for _, x0 := range ics {
		res, err := Simulate(ctx, sys, step, x0, cfg)
		if err != nil && (res == nil || len(res.States) == 0) {
			return nil, err
		}
		traj := make([][2]float64, 0, len(res.States))
		for _, s := range res.States {
			traj = append(traj, [2]float64{s[0], s[1]})
		}
		p.Trajectories = append(p.Trajectories, traj)
	}

	return p, nil
}

// ASCII renders the portrait on a rune canvas: trajectories as dots,
// nullclines as faint dots, fixed points starred, axes where they cross
// the window.
func (p *Portrait) ASCII(width, height int) string {
	win := p.Window
	rangeX := win.XMax - win.XMin
	rangeY := win.YMax - win.YMin
	if rangeX <= 0 || rangeY <= 0 {
		return ""
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	set := func(x, y float64, c rune) {
		col := int((x - win.XMin) / rangeX * float64(width-1))
		row := height - 1 - int((y-win.YMin)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = c
		}
	}

	// Axes first so everything else draws over them.
	if win.XMin <= 0 && win.XMax >= 0 {
		col := int((0 - win.XMin) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			canvas[row][col] = '│'
		}
	}
	if win.YMin <= 0 && win.YMax >= 0 {
		row := height - 1 - int((0-win.YMin)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			canvas[row][col] = '─'
		}
	}

	for _, nc := range p.Nullclines {
		for _, pt := range nc.Points {
			set(pt[0], pt[1], '·')
		}
	}

	for _, traj := range p.Trajectories {
		for _, pt := range traj {
			if win.Contains(pt[0], pt[1]) {
				set(pt[0], pt[1], '•')
			}
		}
	}

	for _, fp := range p.FixedPoints {
		if fp.Class.Stable() {
			set(fp.State[0], fp.State[1], '@')
		} else {
			set(fp.State[0], fp.State[1], 'o')
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	sb.WriteString("• trajectory   · nullcline   @ stable   o unstable\n")
	return sb.String()
}
