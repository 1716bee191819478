package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/clobos/statlab/internal/analysis"
	"github.com/clobos/statlab/internal/config"
	"github.com/clobos/statlab/internal/dataset"
	"github.com/clobos/statlab/internal/dynamics"
	"github.com/clobos/statlab/internal/experiment"
	"github.com/clobos/statlab/internal/lesson"
	"github.com/clobos/statlab/internal/regress"
	"github.com/clobos/statlab/internal/stats"
	"github.com/clobos/statlab/internal/store"
	"github.com/clobos/statlab/internal/tui"
	"github.com/clobos/statlab/internal/viz"
)

var (
	dataDir    string
	response   string
	predictors string
	family     string
	level      float64
	column     string
	dt         float64
	duration   float64
	initState  string
	integrator string
	configFile string
	preset     string
	// Phase window
	xMin, xMax float64
	yMin, yMax float64
	paramName  string
	paramMin   float64
	paramMax   float64
	paramSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "statlab",
		Short: "applied statistics and dynamical systems teaching lab",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the lesson browser when no command given
			if err := tui.Browse(lesson.NewRegistry()); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".statlab", "data directory")

	datasetsCmd := &cobra.Command{
		Use:   "datasets",
		Short: "list embedded teaching datasets",
		RunE:  listDatasets,
	}

	describeCmd := &cobra.Command{
		Use:   "describe [dataset]",
		Short: "summary statistics for a dataset",
		Args:  cobra.ExactArgs(1),
		RunE:  describeDataset,
	}
	describeCmd.Flags().StringVar(&column, "column", "", "describe a single column")

	fitCmd := &cobra.Command{
		Use:   "fit [dataset]",
		Short: "fit a (generalized) linear model",
		Args:  cobra.ExactArgs(1),
		RunE:  fitModel,
	}
	fitCmd.Flags().StringVar(&response, "response", "", "response column")
	fitCmd.Flags().StringVar(&predictors, "predictors", "", "comma-separated predictor columns")
	fitCmd.Flags().StringVar(&family, "family", "gaussian", "gaussian or binomial")
	fitCmd.Flags().Float64Var(&level, "level", 0.95, "confidence level")
	fitCmd.MarkFlagRequired("response")
	fitCmd.MarkFlagRequired("predictors")

	lessonsCmd := &cobra.Command{
		Use:   "lessons",
		Short: "list lessons",
		RunE:  listLessons,
	}

	lessonCmd := &cobra.Command{
		Use:   "lesson [name]",
		Short: "run one lesson",
		Args:  cobra.ExactArgs(1),
		RunE:  runLesson,
	}

	galleryCmd := &cobra.Command{
		Use:   "gallery [anscombe|simpson]",
		Short: "visualization pitfall demonstrations",
		Args:  cobra.ExactArgs(1),
		RunE:  runGallery,
	}

	systemsCmd := &cobra.Command{
		Use:   "systems",
		Short: "list the dynamical systems",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := experiment.NewRegistry()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, name := range reg.ListSystems() {
				sys, err := reg.GetSystem(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d-D\t%s\t\n", name, sys.StateDim(), strings.Join(sys.Labels(), ", "))
			}
			return w.Flush()
		},
	}

	simulateCmd := &cobra.Command{
		Use:   "simulate [system]",
		Short: "integrate a trajectory and plot it",
		Args:  cobra.ExactArgs(1),
		RunE:  simulateSystem,
	}
	simulateCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	simulateCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	simulateCmd.Flags().StringVar(&initState, "x0", "", "comma-separated initial state")
	simulateCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator")
	simulateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml); explicit flags override it")
	simulateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration; explicit flags override it")

	phaseCmd := &cobra.Command{
		Use:   "phase [system]",
		Short: "phase portrait with nullclines and fixed points",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePortrait,
	}
	phaseCmd.Flags().Float64Var(&dt, "dt", 0.005, "timestep")
	phaseCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	phaseCmd.Flags().StringVar(&initState, "x0", "", "comma-separated initial state")
	phaseCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator")
	phaseCmd.Flags().Float64Var(&xMin, "xmin", -0.2, "window x minimum")
	phaseCmd.Flags().Float64Var(&xMax, "xmax", 3, "window x maximum")
	phaseCmd.Flags().Float64Var(&yMin, "ymin", -0.5, "window y minimum")
	phaseCmd.Flags().Float64Var(&yMax, "ymax", 8, "window y maximum")

	stabilityCmd := &cobra.Command{
		Use:   "stability [system]",
		Short: "fixed points, Jacobians and eigenvalue classification",
		Args:  cobra.ExactArgs(1),
		RunE:  stabilityReport,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [system]",
		Short: "track equilibria across a parameter range",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepParameter,
	}
	sweepCmd.Flags().StringVar(&paramName, "param", "", "parameter to vary")
	sweepCmd.Flags().Float64Var(&paramMin, "from", 0, "range start")
	sweepCmd.Flags().Float64Var(&paramMax, "to", 1, "range end")
	sweepCmd.Flags().IntVar(&paramSteps, "steps", 21, "number of values")
	sweepCmd.MarkFlagRequired("param")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list presets for a system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if names == nil {
				return fmt.Errorf("no presets for system %q", args[0])
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	}

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "interactive lesson browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Browse(lesson.NewRegistry())
		},
	}

	rootCmd.AddCommand(datasetsCmd, describeCmd, fitCmd, lessonsCmd, lessonCmd,
		galleryCmd, systemsCmd, simulateCmd, phaseCmd, stabilityCmd, sweepCmd,
		runsCmd, plotCmd, exportCmd, presetsCmd, browseCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func listDatasets(cmd *cobra.Command, args []string) error {
	for _, name := range dataset.Names() {
		tbl, err := dataset.Open(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-12s %d rows, columns: %s\n", name, tbl.NRows(), strings.Join(tbl.ColumnNames(), ", "))
	}
	return nil
}

func describeDataset(cmd *cobra.Command, args []string) error {
	tbl, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	names := tbl.ColumnNames()
	if column != "" {
		names = []string{column}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "column\tn\tmin\tq1\tmedian\tq3\tmax\tmean\tsd\t")
	for _, name := range names {
		c, err := tbl.Column(name)
		if err != nil {
			return err
		}
		if c.Kind != dataset.Numeric {
			fmt.Fprintf(w, "%s\t%d\t(categorical: %s)\t\t\t\t\t\t\t\n", name, tbl.NRows(), strings.Join(c.Levels(), ", "))
			continue
		}
		xs, err := tbl.NumericComplete(name)
		if err != nil {
			return err
		}
		s, err := stats.Describe(xs)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%.3g\t%.3g\t%.3g\t%.3g\t%.3g\t%.3g\t%.3g\t\n",
			name, s.N, s.Min, s.Q1, s.Median, s.Q3, s.Max, s.Mean, s.StdDev)
	}
	return w.Flush()
}

func fitModel(cmd *cobra.Command, args []string) error {
	tbl, err := dataset.Load(args[0])
	if err != nil {
		return err
	}
	preds := strings.Split(predictors, ",")
	for i := range preds {
		preds[i] = strings.TrimSpace(preds[i])
	}

	switch regress.Family(family) {
	case regress.Gaussian:
		m, err := regress.FitLinear(tbl, response, preds)
		if err != nil {
			return err
		}
		fmt.Print(m.Summary())
		ci, err := m.ConfInt(level)
		if err != nil {
			return err
		}
		printIntervals(m.Coefficients, ci)
	case regress.Binomial:
		g, err := regress.FitGLM(tbl, response, preds, regress.Binomial)
		if err != nil {
			return err
		}
		fmt.Print(g.Summary())
		ci, err := g.ConfInt(level)
		if err != nil {
			return err
		}
		printIntervals(g.Coefficients, ci)
	default:
		return fmt.Errorf("unknown family %q", family)
	}
	return nil
}

func printIntervals(coefs []regress.Coefficient, intervals []stats.Interval) {
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "term\t%.0f%% lower\t%.0f%% upper\tverdict\t\n", intervals[0].Level*100, intervals[0].Level*100)
	for i, c := range coefs {
		verdict := string(stats.Judge(c.PValue))
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%s\t\n", c.Term, intervals[i].Lower, intervals[i].Upper,
			viz.VerdictStyle(verdict).Render(verdict))
	}
	w.Flush()
}

func listLessons(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, l := range lesson.NewRegistry().List() {
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", l.Name, l.Title, l.Summary)
	}
	return w.Flush()
}

func runLesson(cmd *cobra.Command, args []string) error {
	l, err := lesson.NewRegistry().Get(args[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.HeaderStyle.Render(l.Title))
	return l.Run(os.Stdout)
}

func runGallery(cmd *cobra.Command, args []string) error {
	reg := lesson.NewRegistry()
	switch args[0] {
	case "anscombe":
		return runNamedLesson(reg, "anscombe")
	case "simpson":
		return runNamedLesson(reg, "simpsons-paradox")
	default:
		return fmt.Errorf("unknown gallery item %q (want anscombe or simpson)", args[0])
	}
}

func runNamedLesson(reg *lesson.Registry, name string) error {
	l, err := reg.Get(name)
	if err != nil {
		return err
	}
	fmt.Println(viz.HeaderStyle.Render(l.Title))
	return l.Run(os.Stdout)
}

// resolveRun builds the run configuration from defaults, then a config file
// or preset if given, then any explicitly passed flags on top.
func resolveRun(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset != "" {
		p := config.GetPreset(args[0], preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q for system %q", preset, args[0])
		}
		c := *p
		cfg = &c
	}
	cfg.System = args[0]
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if initState != "" {
		x0, err := parseFloats(initState)
		if err != nil {
			return nil, err
		}
		cfg.InitState = x0
	}
	return cfg, nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q in %q", p, s)
		}
		out = append(out, v)
	}
	return out, nil
}

func simulateSystem(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}
	reg := experiment.NewRegistry()
	sys, err := reg.GetSystem(cfg.System)
	if err != nil {
		return err
	}
	step, err := reg.GetStepper(cfg.Integrator)
	if err != nil {
		return err
	}
	x0 := dynamics.State(cfg.InitState)
	if len(x0) != sys.StateDim() {
		return fmt.Errorf("system %s needs %d state values, got %d", sys.Name(), sys.StateDim(), len(x0))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := analysis.Simulate(ctx, sys, step, x0, analysis.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return err
	}

	series := make([][]float64, sys.StateDim())
	for i := range series {
		series[i] = res.Series(i)
	}
	fmt.Println(viz.LinePlot(series, res.Labels, 12))

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.System, cfg.Integrator, cfg.Dt, cfg.Duration, cfg.InitState, res)
	if err != nil {
		return err
	}
	fmt.Printf("\nsaved run %s\n", runID)
	return nil
}

func phasePortrait(cmd *cobra.Command, args []string) error {
	reg := experiment.NewRegistry()
	sys, err := reg.GetSystem(args[0])
	if err != nil {
		return err
	}
	if sys.StateDim() != 2 {
		return fmt.Errorf("phase portraits need a 2-D system, %s has dimension %d", sys.Name(), sys.StateDim())
	}
	step, err := reg.GetStepper(integrator)
	if err != nil {
		return err
	}

	ics := []dynamics.State{{2, 2}, {0.5, 6}}
	if initState != "" {
		x0, err := parseFloats(initState)
		if err != nil {
			return err
		}
		if len(x0) != 2 {
			return fmt.Errorf("phase initial state needs 2 values, got %d", len(x0))
		}
		ics = []dynamics.State{x0}
	}

	win := dynamics.Window{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p, err := analysis.GeneratePortrait(ctx, sys, step, ics, win, analysis.Config{Dt: dt, Duration: duration})
	if err != nil {
		return err
	}
	labels := sys.Labels()
	fmt.Printf("%s: %s vs %s\n\n", sys.Name(), labels[1], labels[0])
	fmt.Print(p.ASCII(72, 24))
	return nil
}

func stabilityReport(cmd *cobra.Command, args []string) error {
	reg := experiment.NewRegistry()
	sys, err := reg.GetSystem(args[0])
	if err != nil {
		return err
	}
	fps, err := dynamics.Analyze(sys)
	if err != nil {
		return err
	}
	if len(fps) == 0 {
		fmt.Println("no fixed points in this parameter regime")
		return nil
	}

	for _, fp := range fps {
		fmt.Printf("fixed point %v\n", []float64(fp.State))
		fmt.Printf("jacobian:\n%v\n", mat.Formatted(fp.Jacobian, mat.Prefix("  "), mat.Squeeze()))
		fmt.Printf("eigenvalues: %v\n", fp.Eigenvalues)
		class := viz.StabilityStyle(fp.Class.Stable()).Render(string(fp.Class))
		if dynamics.Oscillatory(fp.Eigenvalues) {
			fmt.Printf("class: %s (oscillatory)\n\n", class)
		} else {
			fmt.Printf("class: %s\n\n", class)
		}
	}
	return nil
}

func sweepParameter(cmd *cobra.Command, args []string) error {
	reg := experiment.NewRegistry()
	sys, err := reg.GetSystem(args[0])
	if err != nil {
		return err
	}
	points, err := analysis.EquilibriumSweep(sys, paramName, paramMin, paramMax, paramSteps)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tequilibria\t\n", paramName)
	for _, pt := range points {
		if len(pt.Points) == 0 {
			fmt.Fprintf(w, "%.4g\t%s\t\n", pt.Param, "none")
			continue
		}
		descs := make([]string, 0, len(pt.Points))
		for _, fp := range pt.Points {
			descs = append(descs, fmt.Sprintf("%.4g (%s)", fp.State[0], fp.Class))
		}
		fmt.Fprintf(w, "%.4g\t%s\t\n", pt.Param, strings.Join(descs, ", "))
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs yet")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tsystem\tintegrator\tdt\tduration\twhen\t")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4g\t%.4g\t%s\t\n",
			r.ID, r.System, r.Integrator, r.Dt, r.Duration, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, states, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("run %s has no samples", args[0])
	}
	series := make([][]float64, len(states[0]))
	for i := range series {
		series[i] = make([]float64, len(states))
		for j, s := range states {
			series[i][j] = s[i]
		}
	}
	fmt.Printf("%s (%s)\n\n", meta.ID, meta.System)
	fmt.Println(viz.LinePlot(series, meta.Labels, 12))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	data, err := st.Export(args[0])
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
