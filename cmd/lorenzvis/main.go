package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lorenzvis/internal/analysis"
	"github.com/san-kum/lorenzvis/internal/app"
	"github.com/san-kum/lorenzvis/internal/config"
	"github.com/san-kum/lorenzvis/internal/gui"
	"github.com/san-kum/lorenzvis/internal/lorenz"
	"github.com/san-kum/lorenzvis/internal/sim"
	"github.com/san-kum/lorenzvis/internal/tui"
)

var (
	configFile string
	preset     string
	sigma      float64
	rho        float64
	beta       float64
	dt         float64
	duration   float64
	steps      int
	maxPoints  int
	frameRate  int
	// analyze
	analyzeDuration float64
	perturbation    float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lorenzvis",
		Short: "real-time 3D Lorenz attractor visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the GUI when no subcommand is given.
			return gui.Run(loadConfig())
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named parameter preset")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the OpenGL visualization window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			applySimFlags(cmd, cfg)
			return gui.Run(cfg)
		},
	}
	addSimFlags(guiCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate headlessly and print a summary",
		RunE:  runHeadless,
	}
	addSimFlags(runCmd)
	runCmd.Flags().Float64Var(&duration, "time", 50.0, "duration to integrate")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "live terminal view (no graphics context needed)",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "estimate the largest Lyapunov exponent",
		RunE:  runAnalyze,
	}
	addSimFlags(analyzeCmd)
	analyzeCmd.Flags().Float64Var(&analyzeDuration, "time", 100.0, "duration to integrate")
	analyzeCmd.Flags().Float64Var(&perturbation, "perturbation", 1e-8, "initial twin separation")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named parameter presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIGMA\tRHO\tBETA\tDT")
			for _, name := range names {
				c := config.GetPreset(name).Sim
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\n", name, c.Sigma, c.Rho, c.Beta, c.Dt)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(guiCmd, runCmd, liveCmd, analyzeCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "sigma coefficient")
	cmd.Flags().Float64Var(&rho, "rho", config.DefaultRho, "rho coefficient")
	cmd.Flags().Float64Var(&beta, "beta", config.DefaultBeta, "beta coefficient")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "integration timestep")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultStepsPerFrame, "integration steps per frame")
	cmd.Flags().IntVar(&maxPoints, "max-points", config.DefaultMaxPoints, "trajectory buffer bound")
}

// loadConfig resolves precedence: defaults, then preset, then config file.
// Explicitly-set flags are layered on top by applySimFlags.
func loadConfig() *config.Config {
	cfg := config.DefaultConfig()
	if preset != "" {
		if p := config.GetPreset(preset); p != nil {
			cfg = p
		} else {
			fmt.Fprintf(os.Stderr, "unknown preset %q, using defaults\n", preset)
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v, using defaults\n", err)
		} else {
			cfg = loaded
		}
	}
	return cfg
}

func applySimFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("sigma") {
		cfg.Sim.Sigma = sigma
	}
	if cmd.Flags().Changed("rho") {
		cfg.Sim.Rho = rho
	}
	if cmd.Flags().Changed("beta") {
		cfg.Sim.Beta = beta
	}
	if cmd.Flags().Changed("dt") {
		cfg.Sim.Dt = dt
	}
	if cmd.Flags().Changed("steps") {
		cfg.Sim.StepsPerFrame = steps
	}
	if cmd.Flags().Changed("max-points") {
		cfg.Sim.MaxPoints = maxPoints
	}
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	applySimFlags(cmd, cfg)
	state := app.FromConfig(cfg)

	solver := lorenz.NewSolver(state.Params)
	runner := sim.New(solver)

	// Sample x(t) for the terminal plot.
	samples := make([]float64, 0, 200)
	total := int(duration / state.Dt)
	stride := total / 200
	if stride < 1 {
		stride = 1
	}
	i := 0
	runner.AddObserver(sim.ObserverFunc(func(s mgl64.Vec3, t float64) {
		if i%stride == 0 {
			samples = append(samples, s[0])
		}
		i++
	}))

	res, err := runner.Run(cmd.Context(), sim.Config{
		Dt:        state.Dt,
		Duration:  duration,
		MaxPoints: state.MaxPoints,
	})
	if err != nil {
		return err
	}

	if len(samples) > 1 {
		fmt.Println(asciigraph.Plot(samples,
			asciigraph.Height(12), asciigraph.Width(72), asciigraph.Caption("x(t)")))
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "steps\t%d\n", res.StepsTaken)
	fmt.Fprintf(w, "points\t%d\n", res.Points)
	fmt.Fprintf(w, "final state\t(%.6f, %.6f, %.6f)\n", res.FinalState[0], res.FinalState[1], res.FinalState[2])
	fmt.Fprintf(w, "elapsed\t%s\n", res.Elapsed)
	if res.Diverged {
		fmt.Fprintf(w, "note\tstate left the finite range (blow-up)\n")
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	applySimFlags(cmd, cfg)
	state := app.FromConfig(cfg)
	state.Running = true
	return tui.Run(lorenz.NewSolver(state.Params), state, frameRate)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	applySimFlags(cmd, cfg)
	p := lorenz.Params{Sigma: cfg.Sim.Sigma, Rho: cfg.Sim.Rho, Beta: cfg.Sim.Beta}

	// Settle onto the attractor before measuring.
	x0 := lorenz.Seed
	for i := 0; i < 2000; i++ {
		x0 = lorenz.StepState(p, x0, cfg.Sim.Dt)
	}

	lambda := analysis.LargestLyapunov(p, x0, cfg.Sim.Dt, analyzeDuration, perturbation)
	fmt.Printf("largest Lyapunov exponent: %.4f\n", lambda)
	if lambda > 0 {
		fmt.Println("positive exponent: dynamics are chaotic")
	} else {
		fmt.Println("non-positive exponent: dynamics are not chaotic")
	}
	return nil
}
