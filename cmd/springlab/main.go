package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/springlab/internal/analytic"
	"github.com/san-kum/springlab/internal/config"
	"github.com/san-kum/springlab/internal/dynamo"
	"github.com/san-kum/springlab/internal/export"
	"github.com/san-kum/springlab/internal/integrators"
	"github.com/san-kum/springlab/internal/metrics"
	"github.com/san-kum/springlab/internal/sim"
	"github.com/san-kum/springlab/internal/spring"
	"github.com/san-kum/springlab/internal/storage"
	"github.com/san-kum/springlab/internal/viz"
)

var (
	dataDir    string
	mode       string
	integrator string
	dt         float64
	duration   float64
	mass       float64
	stiffness  float64
	damping    float64
	gravity    float64
	natLength  float64
	x0         float64
	y0         float64
	vx0        float64
	vy0        float64
	configFile string
	preset     string
	frameRate  int
	// Phase plot axes
	xAxis int
	yAxis int
	// Sweep damping values
	dampings string
	// Analytic sampling
	samples float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "springlab",
		Short: "damped spring-mass simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".springlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and store the trajectory",
		RunE:  runSimulation,
	}
	addPhysicsFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	addPhysicsFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	analyticCmd := &cobra.Command{
		Use:   "analytic",
		Short: "print the closed-form solution for the configured state",
		RunE:  showAnalytic,
	}
	addPhysicsFlags(analyticCmd)
	analyticCmd.Flags().Float64Var(&samples, "sample", 0, "also plot x(t) over this many seconds")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run a parallel damping sweep across regimes",
		RunE:  runSweep,
	}
	addPhysicsFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&dampings, "dampings", "0.2,4,10", "comma-separated damping values")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run against its analytic solution",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", -1, "state index for y-axis (default: matching velocity)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a stored run's trajectory to stdout as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a stored run to an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, n := range names {
				fmt.Println(n)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, analyticCmd, sweepCmd, listCmd,
		plotCmd, phaseCmd, exportCSVCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addPhysicsFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	cmd.Flags().StringVar(&mode, "mode", def.Mode, "oscillator mode (1D or VECTOR)")
	cmd.Flags().StringVar(&integrator, "integrator", def.Integrator, "integrator (rk4 or euler)")
	cmd.Flags().Float64Var(&dt, "dt", def.Dt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", def.Duration, "duration")
	cmd.Flags().Float64Var(&mass, "mass", def.Params.Mass, "mass (kg)")
	cmd.Flags().Float64Var(&stiffness, "stiffness", def.Params.Stiffness, "spring constant (N/m)")
	cmd.Flags().Float64Var(&damping, "damping", def.Params.Damping, "damping coefficient (N*s/m)")
	cmd.Flags().Float64Var(&gravity, "gravity", def.Params.Gravity, "gravitational acceleration")
	cmd.Flags().Float64Var(&natLength, "length", def.Params.NaturalLength, "natural spring length")
	cmd.Flags().Float64Var(&x0, "x0", def.InitState.X, "initial displacement x")
	cmd.Flags().Float64Var(&y0, "y0", def.InitState.Y, "initial y (VECTOR mode)")
	cmd.Flags().Float64Var(&vx0, "vx0", def.InitState.VX, "initial velocity x")
	cmd.Flags().Float64Var(&vy0, "vy0", def.InitState.VY, "initial velocity y (VECTOR mode)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
}

// buildConfig layers preset, config file, and changed flags over the
// defaults, in that order.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("mode") {
		cfg.Mode = mode
	}
	if f.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if f.Changed("dt") {
		cfg.Dt = dt
	}
	if f.Changed("time") {
		cfg.Duration = duration
	}
	if f.Changed("mass") {
		cfg.Params.Mass = mass
	}
	if f.Changed("stiffness") {
		cfg.Params.Stiffness = stiffness
	}
	if f.Changed("damping") {
		cfg.Params.Damping = damping
	}
	if f.Changed("gravity") {
		cfg.Params.Gravity = gravity
	}
	if f.Changed("length") {
		cfg.Params.NaturalLength = natLength
	}
	if f.Changed("x0") {
		cfg.InitState.X = x0
	}
	if f.Changed("y0") {
		cfg.InitState.Y = y0
	}
	if f.Changed("vx0") {
		cfg.InitState.VX = vx0
	}
	if f.Changed("vy0") {
		cfg.InitState.VY = vy0
	}

	return cfg, nil
}

func getIntegrator(name string) (dynamo.Integrator, error) {
	switch name {
	case "rk4":
		return integrators.NewRK4(), nil
	case "euler":
		return integrators.NewEuler(), nil
	default:
		return nil, fmt.Errorf("unknown integrator %q", name)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	params, err := cfg.SpringParams()
	if err != nil {
		return err
	}
	sys, err := spring.NewSystem(params)
	if err != nil {
		return err
	}
	integ, err := getIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	initState := dynamo.State(cfg.GetInitState())
	sol := analytic.Solve(params, initState)

	runner := sim.New(sys, integ)
	runner.AddMetric(metrics.NewEnergyDrift(sys))
	runner.AddMetric(metrics.NewPeakAmplitude(params.NaturalLength))

	fmt.Printf("running %s simulation (%s, dt=%.5f)...\n", params.Mode, cfg.Integrator, cfg.Dt)
	start := time.Now()

	result, err := runner.Run(context.Background(), initState, dynamo.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		ValidateState: true,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(params.Mode.String(), cfg.Dt, cfg.Duration, cfg.Integrator, sol, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("regime: %s (omega_n=%.4f, zeta=%.4f)\n", sol.Regime, sol.OmegaN, sol.Zeta)
	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	params, err := cfg.SpringParams()
	if err != nil {
		return err
	}
	sys, err := spring.NewSystem(params)
	if err != nil {
		return err
	}
	integ, err := getIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	return viz.RunLive(sys, integ, cfg.GetInitState(), cfg.Dt, frameRate)
}

func showAnalytic(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	params, err := cfg.SpringParams()
	if err != nil {
		return err
	}

	state := dynamo.State(cfg.GetInitState())
	sol := analytic.Solve(params, state)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "case\t%s\n", sol.Regime)
	fmt.Fprintf(w, "omega_n\t%.6f\n", sol.OmegaN)
	fmt.Fprintf(w, "zeta\t%.6f\n", sol.Zeta)
	switch sol.Regime {
	case analytic.Underdamped:
		fmt.Fprintf(w, "omega_d\t%.6f\n", sol.OmegaD)
		fmt.Fprintf(w, "A\t%.6f\n", sol.A)
		fmt.Fprintf(w, "B\t%.6f\n", sol.B)
	case analytic.Critical:
		fmt.Fprintf(w, "A\t%.6f\n", sol.A)
		fmt.Fprintf(w, "B\t%.6f\n", sol.B)
	case analytic.Overdamped:
		fmt.Fprintf(w, "r1\t%.6f\n", sol.R1)
		fmt.Fprintf(w, "r2\t%.6f\n", sol.R2)
		fmt.Fprintf(w, "A\t%.6f\n", sol.A)
		fmt.Fprintf(w, "B\t%.6f\n", sol.B)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if samples > 0 {
		n := 400
		data := make([]float64, n)
		for i := 0; i < n; i++ {
			data[i] = sol.Evaluate(samples * float64(i) / float64(n-1))
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("x(t), 0..%.1fs", samples)),
		))
	}

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	baseParams, err := cfg.SpringParams()
	if err != nil {
		return err
	}

	var values []float64
	for _, field := range strings.Split(dampings, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return fmt.Errorf("bad damping value %q: %w", field, err)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return fmt.Errorf("no damping values given")
	}

	cases := make([]sim.SweepCase, 0, len(values))
	sols := make([]analytic.Solution, 0, len(values))
	initState := dynamo.State(cfg.GetInitState())

	for _, c := range values {
		p := baseParams
		p.Damping = c
		sys, err := spring.NewSystem(p)
		if err != nil {
			return err
		}
		integ, err := getIntegrator(cfg.Integrator)
		if err != nil {
			return err
		}
		cases = append(cases, sim.SweepCase{
			Label: fmt.Sprintf("c=%g", c),
			Sys:   sys,
			X0:    initState,
			Integ: integ,
		})
		sols = append(sols, analytic.Solve(p, initState))
	}

	results, err := sim.Sweep(context.Background(), cases, dynamo.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		ValidateState: true,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAMPING\tREGIME\tZETA\tFINAL |X|\tSTEPS")
	for i, res := range results {
		final := res.States[len(res.States)-1]
		disp := final[0]
		if len(final) >= 4 {
			disp = math.Hypot(final[0], final[1])
		}
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.6f\t%d\n",
			cases[i].Label, sols[i].Regime, sols[i].Zeta, math.Abs(disp), res.StepsTaken)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tTIME\tDURATION\tDT\tINTEG\tREGIME")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.5fs\t%s\t%s\n",
			run.ID,
			run.Mode,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
			run.Regime,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("mode: %s  regime: %s  zeta: %.4f\n", meta.Mode, meta.Regime, meta.Zeta)
	fmt.Printf("samples: %d\n\n", len(states))

	// Last column is the stored analytic reconstruction.
	width := len(states[0])
	numeric := make([]float64, len(states))
	closed := make([]float64, len(states))
	for i, s := range states {
		if meta.Mode == spring.ModeVector.String() && width >= 5 {
			numeric[i] = math.Hypot(s[0], s[1])
		} else {
			numeric[i] = s[0]
		}
		closed[i] = s[width-1]
	}

	graph := asciigraph.PlotMany(
		[][]float64{numeric, closed},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		asciigraph.Caption("displacement: numeric (green) vs analytic (red)"),
	)
	fmt.Println(graph)

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	y := yAxis
	if y < 0 {
		// Default pairing: x with vx, which sits at index 1 (1D) or 2 (planar).
		y = 1
		if meta.Mode == spring.ModeVector.String() {
			y = 2
		}
	}

	portrait := viz.NewPhasePortrait(states, xAxis, y)
	if portrait == nil {
		return fmt.Errorf("state indices out of range")
	}

	fmt.Printf("phase portrait: x%d vs x%d (%s)\n\n", xAxis, y, meta.ID)
	fmt.Println(portrait.ASCII(70, 20))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, v := range states[i] {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	width := len(states[0])
	numeric := make([]float64, len(states))
	closed := make([]float64, len(states))
	for i, s := range states {
		if meta.Mode == spring.ModeVector.String() && width >= 5 {
			numeric[i] = math.Hypot(s[0], s[1])
		} else {
			numeric[i] = s[0]
		}
		closed[i] = s[width-1]
	}

	svg := export.TrajectorySVG(times, []export.Series{
		{Label: "numeric", Stroke: "#00ff88", Values: numeric},
		{Label: "analytic", Stroke: "#ff4444", Values: closed},
	}, 800, 400)

	outPath := filepath.Join(dataDir, runID+".svg")
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}
