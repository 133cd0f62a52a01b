package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/san-kum/chaosgen/internal/analysis"
	"github.com/san-kum/chaosgen/internal/chaos"
	"github.com/san-kum/chaosgen/internal/config"
	"github.com/san-kum/chaosgen/internal/dataset"
	"github.com/san-kum/chaosgen/internal/export"
	"github.com/san-kum/chaosgen/internal/log"
	"github.com/san-kum/chaosgen/internal/solver"
	"github.com/san-kum/chaosgen/internal/storage"
	"github.com/san-kum/chaosgen/internal/viz"
	"github.com/spf13/cobra"
)

var logger *zerolog.Logger

var (
	dataDir    string
	samples    int
	depth      int
	rate       float64
	seed       int64
	workers    int
	x0         float64
	period     int
	preset     string
	configFile string
	save       bool
	format     string
	output     string
	// Solver options
	guess     float64
	useBisect bool
	showAll   bool
	maxPeriod int
	// Sweep axis
	sweepMin       float64
	sweepMax       float64
	sweepSteps     int
	sweepTransient int
	sweepRecord    int
	// Plot sizing
	cobwebSteps int
	specSteps   int
	bins        int
)

// main is the entry point for the chaosgen CLI; it registers commands and
// flags and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	// A missing .env is not an error; values then come from the process
	// environment.
	_ = godotenv.Load()

	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err = log.NewLogger(&env.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Debug().Str("data_dir", env.DataDir).Msg("Environment loaded")

	rootCmd := &cobra.Command{
		Use:   "chaosgen",
		Short: "dataset lab for the chaotic map rho*|x| - 1",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", env.DataDir, "data directory")

	genCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a dataset",
		RunE:  runGenerate,
	}
	genCmd.Flags().IntVar(&samples, "samples", 10000, "number of starting points")
	genCmd.Flags().IntVar(&depth, "depth", 40, "iterations per point")
	genCmd.Flags().Float64Var(&rate, "rate", 1.618, "growth rate")
	genCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	genCmd.Flags().IntVar(&workers, "workers", 1, "worker pool size")
	genCmd.Flags().IntVar(&period, "period", 0, "derive the rate from an odd period instead of --rate")
	genCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	genCmd.Flags().StringVar(&configFile, "config", env.ConfigFile, "config file path (yaml)")
	genCmd.Flags().BoolVar(&save, "save", false, "store the run in the data directory")
	genCmd.Flags().StringVar(&format, "format", config.DefaultFormat, "output format (csv, json, xlsx, svg)")
	genCmd.Flags().StringVar(&output, "output", "", "write the dataset to a file")

	streamCmd := &cobra.Command{
		Use:   "stream",
		Short: "stream samples to stdout as csv",
		RunE:  streamSamples,
	}
	streamCmd.Flags().IntVar(&samples, "samples", 10000, "number of starting points")
	streamCmd.Flags().IntVar(&depth, "depth", 40, "iterations per point")
	streamCmd.Flags().Float64Var(&rate, "rate", 1.618, "growth rate")
	streamCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	solveCmd := &cobra.Command{
		Use:   "solve [period]",
		Short: "solve the growth rate for an odd period",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().Float64Var(&guess, "guess", solver.DefaultGuess, "newton starting guess")
	solveCmd.Flags().BoolVar(&useBisect, "bisect", false, "use bisection instead of newton")
	solveCmd.Flags().BoolVar(&showAll, "all", false, "print the full root spectrum")

	periodsCmd := &cobra.Command{
		Use:   "periods",
		Short: "solve the rate for every odd period up to a bound",
		RunE:  listPeriods,
	}
	periodsCmd.Flags().IntVar(&maxPeriod, "max", 15, "largest period to solve")

	orbitCmd := &cobra.Command{
		Use:   "orbit",
		Short: "plot a single orbit",
		RunE:  plotOrbit,
	}
	orbitCmd.Flags().Float64Var(&rate, "rate", 1.618, "growth rate")
	orbitCmd.Flags().Float64Var(&x0, "start", 0.1, "starting point in [-1, 1]")
	orbitCmd.Flags().IntVar(&depth, "depth", 40, "iterations to plot")

	cobwebCmd := &cobra.Command{
		Use:   "cobweb",
		Short: "cobweb diagram of the map",
		RunE:  plotCobweb,
	}
	cobwebCmd.Flags().Float64Var(&rate, "rate", 1.618, "growth rate")
	cobwebCmd.Flags().Float64Var(&x0, "start", 0.1, "starting point in [-1, 1]")
	cobwebCmd.Flags().IntVar(&cobwebSteps, "steps", 30, "staircase steps")
	cobwebCmd.Flags().StringVar(&output, "output", "", "write the diagram to an svg file")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "power spectrum of an orbit",
		RunE:  plotSpectrum,
	}
	spectrumCmd.Flags().Float64Var(&rate, "rate", 1.618, "growth rate")
	spectrumCmd.Flags().Float64Var(&x0, "start", 0.1, "starting point in [-1, 1]")
	spectrumCmd.Flags().IntVar(&specSteps, "steps", 512, "orbit length")

	sweepCmd := &cobra.Command{
		Use:   "bifurcation",
		Short: "bifurcation sweep across rates",
		RunE:  plotBifurcation,
	}
	sweepCmd.Flags().Float64Var(&sweepMin, "min", chaos.SqrtTwo, "sweep lower rate")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", chaos.GoldenRatio, "sweep upper rate")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", config.DefaultSweepSteps, "rates to sample")
	sweepCmd.Flags().IntVar(&sweepTransient, "transient", config.DefaultSweepTransient, "iterations discarded before recording")
	sweepCmd.Flags().IntVar(&sweepRecord, "record", config.DefaultSweepRecord, "iterations recorded per rate")
	sweepCmd.Flags().Float64Var(&x0, "start", 0.1, "starting point in [-1, 1]")
	sweepCmd.Flags().StringVar(&configFile, "config", env.ConfigFile, "config file path (yaml)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "summarize a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&bins, "bins", config.DefaultBins, "histogram bins")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", config.DefaultFormat, "output format (csv, json, xlsx, svg)")
	exportCmd.Flags().StringVar(&output, "output", "", "write to a file; omit for json on stdout")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive orbit explorer",
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&rate, "rate", 1.618, "growth rate")
	liveCmd.Flags().Float64Var(&x0, "start", 0.1, "starting point in [-1, 1]")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSAMPLES\tDEPTH\tRATE\tSEED\tWORKERS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%.6f\t%d\t%d\n",
					name, p.Samples, p.Depth, p.Rate, p.Seed, p.Workers)
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "chaosgen.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark dataset generation",
		RunE:  benchGenerate,
	}
	benchCmd.Flags().IntVar(&depth, "depth", 40, "iterations per point")
	benchCmd.Flags().Float64Var(&rate, "rate", 1.618, "growth rate")

	rootCmd.AddCommand(genCmd, streamCmd, solveCmd, periodsCmd, orbitCmd, cobwebCmd, spectrumCmd, sweepCmd, analyzeCmd, listCmd, exportCmd, liveCmd, presetsCmd, initCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyDatasetConfig overlays cfg onto the flag variables, skipping any
// flag the user set explicitly.
func applyDatasetConfig(cmd *cobra.Command, cfg dataset.Config) {
	if !cmd.Flags().Changed("samples") {
		samples = cfg.Samples
	}
	if !cmd.Flags().Changed("depth") {
		depth = cfg.Depth
	}
	if !cmd.Flags().Changed("rate") {
		rate = cfg.Rate
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}
	if cfg.Workers != 0 && !cmd.Flags().Changed("workers") {
		workers = cfg.Workers
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Load preset if specified
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		applyDatasetConfig(cmd, *cfg)
	}

	// Load config file if specified (CLI flags override config)
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyDatasetConfig(cmd, cfg.Dataset)
	}

	if cmd.Flags().Changed("period") {
		rho, err := solver.Solve(period)
		if err != nil {
			return err
		}
		rate = rho
		fmt.Printf("solved period %d rate: %.12f\n", period, rate)
	}

	cfg := dataset.Config{Samples: samples, Depth: depth, Rate: rate, Seed: seed, Workers: workers}
	if !chaos.InTheoreticalRange(cfg.Rate) {
		logger.Warn().
			Float64("rate", cfg.Rate).
			Float64("min", chaos.SqrtTwo).
			Float64("max", chaos.GoldenRatio).
			Msg("Rate outside the bounded window")
	}

	gen := dataset.New(cfg, *logger)
	gen.AddMetric(dataset.NewBounds(1.0))
	gen.AddMetric(dataset.NewSpread())

	fmt.Printf("generating %d samples at rate %.6f...\n", cfg.Samples, cfg.Rate)
	start := time.Now()

	ds, err := gen.Generate(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("samples: %d\n", ds.Len())
	fmt.Println("\nmetrics:")
	for name, val := range ds.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(ds)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	if output != "" {
		registry := export.NewRegistry()
		if err := registry.Write(format, output, ds); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", output)
	}

	return nil
}

func streamSamples(cmd *cobra.Command, args []string) error {
	cfg := dataset.Config{Samples: samples, Depth: depth, Rate: rate, Seed: seed, Workers: 1}
	gen := dataset.New(cfg, *logger)

	w := csv.NewWriter(os.Stdout)

	if err := w.Write([]string{"x0", "y"}); err != nil {
		return err
	}

	err := gen.Stream(context.Background(), func(s dataset.Sample) {
		_ = w.Write([]string{
			strconv.FormatFloat(s.X0, 'g', -1, 64),
			strconv.FormatFloat(s.Y, 'g', -1, 64),
		})
	})
	if err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func runSolve(cmd *cobra.Command, args []string) error {
	p, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid period: %s", args[0])
	}

	var rho float64
	if useBisect {
		rho, err = solver.Bisect(p)
	} else {
		rho, err = solver.SolveFrom(p, guess)
	}
	if err != nil {
		return err
	}

	c, err := solver.NewCharacteristic(p)
	if err != nil {
		return err
	}

	fmt.Printf("period: %d\n", p)
	fmt.Printf("rate: %.15f\n", rho)
	fmt.Printf("residual: %.3e\n", c.Eval(rho))
	if chaos.InTheoreticalRange(rho) {
		fmt.Println("window: inside [sqrt 2, golden ratio]")
	} else {
		fmt.Println("window: outside [sqrt 2, golden ratio]")
	}

	orbit, closure, err := analysis.CriticalOrbit(p)
	if err != nil {
		return err
	}
	if len(orbit) <= 24 {
		fmt.Print("critical orbit:")
		for _, v := range orbit {
			fmt.Printf(" %+.6f", v)
		}
		fmt.Println()
	}
	fmt.Printf("orbit closure: %.3e\n", closure)

	if showAll {
		reals, err := solver.RealRoots(p)
		if err != nil {
			return err
		}
		all, err := solver.AllRoots(p)
		if err != nil {
			return err
		}
		fmt.Printf("\nroot spectrum: %d roots, %d real\n", len(all), len(reals))
		for _, r := range reals {
			fmt.Printf("  %+.12f\n", r)
		}
	}

	return nil
}

func listPeriods(cmd *cobra.Command, args []string) error {
	ps := solver.OddPeriods(maxPeriod)
	if len(ps) == 0 {
		return fmt.Errorf("no odd periods up to %d", maxPeriod)
	}

	rates, err := solver.SolveRange(context.Background(), ps)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PERIOD\tRATE\tABOVE SQRT2\tLYAPUNOV")

	for i, p := range ps {
		fmt.Fprintf(w, "%d\t%.12f\t%.3e\t%.6f\n",
			p,
			rates[i],
			rates[i]-chaos.SqrtTwo,
			analysis.TheoreticalLyapunov(rates[i]),
		)
	}

	return w.Flush()
}

func plotOrbit(cmd *cobra.Command, args []string) error {
	if x0 < -1 || x0 > 1 {
		return fmt.Errorf("start %v outside [-1, 1]", x0)
	}

	m, err := chaos.New(rate)
	if err != nil {
		return err
	}

	o := m.Orbit(x0, depth)

	fmt.Printf("rate: %.6f  start: %+.4f  steps: %d\n\n", rate, x0, depth)

	graph := asciigraph.Plot(o,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("orbit"),
	)
	fmt.Println(graph)
	fmt.Println()

	fmt.Printf("min: %+.6f  max: %+.6f  amplitude: %.6f\n", o.Min(), o.Max(), o.Amplitude())
	fmt.Printf("bounded: %v\n", o.Bounded(1.0))

	if p := analysis.DetectPeriod(o, 16, 1e-9); p > 0 {
		fmt.Printf("detected period: %d\n", p)
	} else {
		fmt.Println("no period detected (chaotic band)")
	}

	return nil
}

func plotCobweb(cmd *cobra.Command, args []string) error {
	if x0 < -1 || x0 > 1 {
		return fmt.Errorf("start %v outside [-1, 1]", x0)
	}

	m, err := chaos.New(rate)
	if err != nil {
		return err
	}

	c := analysis.GenerateCobweb(m, x0, cobwebSteps)

	if output != "" {
		svg := export.PathSVG(c.Points, 800, 600, "#00ff88")
		if svg == "" {
			return fmt.Errorf("no data to plot")
		}
		if err := os.WriteFile(output, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", output)
		return nil
	}

	fmt.Printf("cobweb at rate %.6f from %+.4f\n\n", c.Rate, x0)
	fmt.Print(analysis.CobwebToASCII(c, 70, 24))
	return nil
}

func plotSpectrum(cmd *cobra.Command, args []string) error {
	if x0 < -1 || x0 > 1 {
		return fmt.Errorf("start %v outside [-1, 1]", x0)
	}

	m, err := chaos.New(rate)
	if err != nil {
		return err
	}

	ps := analysis.OrbitSpectrum(m, x0, specSteps)
	if len(ps) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("power spectrum at rate %.6f, %d steps\n\n", rate, specSteps)

	graph := asciigraph.Plot(ps,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	bin := analysis.DominantBin(ps)
	fmt.Printf("dominant bin: %d of %d\n", bin, len(ps))
	if bin > 0 {
		// The transform length is twice the spectrum length.
		fmt.Printf("cycle length: %.1f steps\n", float64(2*len(ps))/float64(bin))
	}

	return nil
}

func plotBifurcation(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("min") {
			sweepMin = cfg.Sweep.Min
		}
		if !cmd.Flags().Changed("max") {
			sweepMax = cfg.Sweep.Max
		}
		if !cmd.Flags().Changed("steps") {
			sweepSteps = cfg.Sweep.Steps
		}
		if !cmd.Flags().Changed("transient") {
			sweepTransient = cfg.Sweep.Transient
		}
		if !cmd.Flags().Changed("record") {
			sweepRecord = cfg.Sweep.Record
		}
	}

	fmt.Printf("sweeping rate over [%.6f, %.6f] in %d steps...\n\n", sweepMin, sweepMax, sweepSteps)

	points, err := analysis.RateSweep(context.Background(), sweepMin, sweepMax, sweepSteps, sweepTransient, sweepRecord, x0)
	if err != nil {
		return err
	}

	fmt.Print(analysis.SweepToASCII(points, 80, 24))
	fmt.Printf("\nrate axis: %.4f to %.4f, bands merge at sqrt 2 = %.6f\n", sweepMin, sweepMax, chaos.SqrtTwo)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	ds, err := st.LoadDataset(runID)
	if err != nil {
		return err
	}

	if ds.Len() == 0 {
		return fmt.Errorf("no data")
	}

	s := dataset.Summarize(ds)

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("rate: %.6f  depth: %d  seed: %d\n\n", ds.Config.Rate, ds.Config.Depth, ds.Config.Seed)
	fmt.Printf("count: %d\n", s.Count)
	fmt.Printf("mean x0: %+.6f  std x0: %.6f\n", s.MeanX0, s.StdX0)
	fmt.Printf("mean y: %+.6f  std y: %.6f\n", s.MeanY, s.StdY)
	fmt.Printf("y range: [%+.6f, %+.6f]\n", s.MinY, s.MaxY)
	fmt.Printf("mean |y|: %.6f\n", s.MeanAbsY)
	fmt.Printf("bounded share: %.4f\n\n", s.BoundedShare)

	counts, edges := dataset.Histogram(ds.Y, bins)
	if len(counts) > 0 {
		graph := asciigraph.Plot(counts,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("y distribution, %d bins over [%.3f, %.3f]", bins, edges[0], edges[len(edges)-1])),
		)
		fmt.Println(graph)
	}

	m, err := chaos.New(ds.Config.Rate)
	if err != nil {
		return err
	}
	lam := analysis.LyapunovExponent(m, ds.X0[0], 2000, 1e-9)
	fmt.Printf("\nlyapunov exponent: %.6f (ln rate = %.6f)\n", lam, analysis.TheoreticalLyapunov(ds.Config.Rate))

	return nil
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
	fmt.Fprintln(w, "ID\tTIME\tSAMPLES\tDEPTH\tRATE\tSEED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.6f\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
			run.Depth,
			run.Rate,
			run.Seed,
		)
	}

	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	ds, err := st.LoadDataset(runID)
	if err != nil {
		return err
	}

	if output == "" {
		return export.WriteJSONStdout(ds)
	}

	registry := export.NewRegistry()
	if err := registry.Write(format, output, ds); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", output)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	m, err := viz.NewModel(rate, x0)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func benchGenerate(cmd *cobra.Command, args []string) error {
	sampleCounts := []int{1000, 10000, 100000}
	workerCounts := []int{1, 2, 4}

	fmt.Printf("benchmarking generation (depth=%d, rate=%.4f)\n\n", depth, rate)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SAMPLES\tWORKERS\tTIME\tSAMPLES/SEC")

	for _, n := range sampleCounts {
		for _, wk := range workerCounts {
			cfg := dataset.Config{Samples: n, Depth: depth, Rate: rate, Seed: 42, Workers: wk}
			gen := dataset.New(cfg, zerolog.Nop())

			start := time.Now()
			ds, err := gen.Generate(context.Background())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			perSec := float64(ds.Len()) / elapsed.Seconds()
			fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n", n, wk, elapsed, perSec)
		}
	}

	return w.Flush()
}
