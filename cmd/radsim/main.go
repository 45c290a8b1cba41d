package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/san-kum/radsim/internal/analysis"
	"github.com/san-kum/radsim/internal/config"
	"github.com/san-kum/radsim/internal/solver"
	"github.com/san-kum/radsim/internal/viz"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logFile    string
	theme      string

	customE      float64
	customA      float64
	save         bool
	degradeSteps int
	sweepSteps   int
	designSteps  int
	maxFlux      float64
	temps        []float64
	svgPath      string
	category     string
	outFile      string

	ua      float64
	hotCap  float64
	hotIn   float64
	coldCap float64
	coldIn  float64

	capacity    float64
	initialTemp float64
	duration    float64
	dt          float64
	integrator  string
	adaptive    bool
	orbitPeriod float64
	eclipse     float64
	heaterMode  string
	heaterSet   float64
	heaterPower float64
	targetTemp  float64

	// resolved by setup before every command
	cfg      *config.Config
	closeLog = func() error { return nil }
)

// main executes the root command and exits with status 1 if it fails.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if cerr := closeLog(); cerr != nil {
		fmt.Fprintf(os.Stderr, "closing log file: %v\n", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the radsim commands and flags.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "radsim",
		Short:             "radiative cooling calculator for spacecraft surfaces",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".radsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write JSON logs to this file")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, fmt.Sprintf("color theme %v", viz.ThemeNames()))

	equilibriumCmd := &cobra.Command{
		Use:   "equilibrium [material...]",
		Short: "equilibrium temperature of materials in a scenario",
		RunE:  runEquilibrium,
	}
	addScenarioFlags(equilibriumCmd)
	equilibriumCmd.Flags().Float64("years", 0, "years of exposure before solving")
	equilibriumCmd.Flags().Float64Var(&customE, "custom-e", 0.9, "emissivity of an extra custom material")
	equilibriumCmd.Flags().Float64Var(&customA, "custom-a", 0.2, "absorptivity of an extra custom material")
	equilibriumCmd.Flags().BoolVar(&save, "save", false, "save results as a run")

	degradeCmd := &cobra.Command{
		Use:   "degrade [material]",
		Short: "equilibrium temperature as a coating ages",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDegrade,
	}
	addScenarioFlags(degradeCmd)
	degradeCmd.Flags().Float64("years", 0, "aging horizon in years (default 10)")
	degradeCmd.Flags().IntVar(&degradeSteps, "steps", 11, "number of points")
	degradeCmd.Flags().BoolVar(&save, "save", false, "save results as a run")

	sweepCmd := &cobra.Command{
		Use:   "sweep [material]",
		Short: "equilibrium temperature against solar flux",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64("ambient", 0, "ambient temperature in K")
	sweepCmd.Flags().Float64Var(&maxFlux, "max-flux", 2000, "upper end of the flux range in W/m²")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 21, "number of points")

	balanceCmd := &cobra.Command{
		Use:   "balance [material...]",
		Short: "emitted against absorbed power over temperature",
		RunE:  runBalance,
	}
	addScenarioFlags(balanceCmd)
	balanceCmd.Flags().StringVar(&svgPath, "svg", "", "also write the curves to an svg file")

	radianceCmd := &cobra.Command{
		Use:   "radiance",
		Short: "blackbody spectral radiance curves",
		RunE:  runRadiance,
	}
	radianceCmd.Flags().Float64SliceVar(&temps, "temps", analysis.DefaultSpectrumTemps, "temperatures in K")
	radianceCmd.Flags().StringVar(&svgPath, "svg", "", "also write the curves to an svg file")

	exchangerCmd := &cobra.Command{
		Use:   "exchanger",
		Short: "counterflow heat exchanger (ε-NTU)",
		RunE:  runExchanger,
	}
	exchangerCmd.Flags().Float64Var(&ua, "ua", 500, "overall conductance U·A in W/K")
	exchangerCmd.Flags().Float64Var(&hotCap, "hot-cap", 400, "hot stream capacity ṁ·cp in W/K")
	exchangerCmd.Flags().Float64Var(&hotIn, "hot-in", 350, "hot inlet temperature in K")
	exchangerCmd.Flags().Float64Var(&coldCap, "cold-cap", 600, "cold stream capacity ṁ·cp in W/K")
	exchangerCmd.Flags().Float64Var(&coldIn, "cold-in", 280, "cold inlet temperature in K")

	transientCmd := &cobra.Command{
		Use:   "transient [material...]",
		Short: "panel temperature over time, optionally through orbit eclipses",
		RunE:  runTransient,
	}
	addScenarioFlags(transientCmd)
	transientCmd.Flags().Float64("years", 0, "years of exposure before simulating")
	transientCmd.Flags().Float64Var(&capacity, "capacity", 0, "areal heat capacity in J/(m²·K)")
	transientCmd.Flags().Float64Var(&initialTemp, "t0", 0, "initial temperature in K")
	transientCmd.Flags().Float64Var(&duration, "duration", 0, "simulated time in s")
	transientCmd.Flags().Float64Var(&dt, "dt", 0, "time step in s")
	transientCmd.Flags().StringVar(&integrator, "integrator", "", "integrator (euler, rk4, rk45)")
	transientCmd.Flags().BoolVar(&adaptive, "adaptive", false, "adaptive step size")
	transientCmd.Flags().Float64Var(&orbitPeriod, "orbit-period", 0, "orbit period in s (0 for constant flux)")
	transientCmd.Flags().Float64Var(&eclipse, "eclipse", 0, "fraction of each orbit in shadow")
	transientCmd.Flags().StringVar(&heaterMode, "heater", "", "survival heater (off, thermostat, pid)")
	transientCmd.Flags().Float64Var(&heaterSet, "heater-setpoint", 0, "heater setpoint in K")
	transientCmd.Flags().Float64Var(&heaterPower, "heater-power", 0, "maximum heater power in W/m²")

	designCmd := &cobra.Command{
		Use:   "design",
		Short: "search ε and α for a coating that reaches a target temperature",
		RunE:  runDesign,
	}
	addScenarioFlags(designCmd)
	designCmd.Flags().Float64Var(&targetTemp, "target", 293.15, "target equilibrium temperature in K")
	designCmd.Flags().IntVar(&designSteps, "steps", 20, "grid points per property")

	batchCmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "run the equilibrium cases listed in a yaml batch file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().BoolVar(&save, "save", false, "save every case as a run")

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list materials",
		RunE:  listMaterials,
	}

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list scenarios",
		RunE:  listScenarios,
	}
	scenariosCmd.Flags().StringVar(&category, "category", "", "only scenarios in this category")

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "material catalog csv import/export",
	}
	catalogExportCmd := &cobra.Command{
		Use:   "export",
		Short: "write the material catalog as csv",
		RunE:  exportCatalog,
	}
	catalogExportCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")
	catalogImportCmd := &cobra.Command{
		Use:   "import [file]",
		Short: "validate a material csv and show its contents",
		Args:  cobra.ExactArgs(1),
		RunE:  importCatalog,
	}
	catalogCmd.AddCommand(catalogExportCmd, catalogImportCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run results",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	rootCmd.AddCommand(equilibriumCmd, degradeCmd, sweepCmd, balanceCmd, radianceCmd, exchangerCmd, transientCmd, designCmd, batchCmd,
		materialsCmd, scenariosCmd, catalogCmd, presetsCmd, initConfigCmd, listCmd, showCmd, exportCmd)
	return rootCmd
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().String("scenario", config.DefaultScenario, "named scenario")
	cmd.Flags().Float64("flux", 0, "solar flux in W/m² (overrides --scenario)")
	cmd.Flags().Float64("ambient", 0, "ambient temperature in K")
}

// setup resolves the configuration (defaults, then preset, then config file,
// then explicitly set flags) and installs the default logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	// config file overrides preset
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("theme") {
		cfg.Plot.Theme = theme
	}
	if flags.Changed("scenario") {
		cfg.Scenario, _ = flags.GetString("scenario")
		cfg.Flux = nil
	}
	if flags.Changed("flux") {
		v, _ := flags.GetFloat64("flux")
		cfg.Flux = &v
	}
	if flags.Changed("years") {
		cfg.Years, _ = flags.GetFloat64("years")
	}
	if flags.Changed("ambient") {
		cfg.Solver.AmbientTemp, _ = flags.GetFloat64("ambient")
	}
	overrideTransient(flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := config.ParseLevel(cfg.Log.Level)
	logger, cleanup := config.SetupLogger(cfg.Log.File, level)
	slog.SetDefault(logger)
	closeLog = cleanup

	slog.Debug("configuration resolved",
		"command", cmd.Name(),
		"scenario", cfg.Scenario,
		"materials", cfg.Materials,
		"years", cfg.Years,
		"ambient_temp", cfg.Solver.AmbientTemp,
	)
	return nil
}

func overrideTransient(flags *pflag.FlagSet) {
	tc := &cfg.Transient
	if flags.Changed("capacity") {
		tc.HeatCapacity = capacity
	}
	if flags.Changed("t0") {
		tc.InitialTemp = initialTemp
	}
	if flags.Changed("duration") {
		tc.Run.Duration = duration
	}
	if flags.Changed("dt") {
		tc.Run.Dt = dt
	}
	if flags.Changed("integrator") {
		tc.Integrator = integrator
	}
	if flags.Changed("adaptive") {
		tc.Run.Adaptive = adaptive
	}
	if flags.Changed("orbit-period") {
		tc.OrbitPeriod = orbitPeriod
	}
	if flags.Changed("eclipse") {
		tc.EclipseFraction = eclipse
	}
	if flags.Changed("heater") {
		tc.Heater.Mode = heaterMode
	}
	if flags.Changed("heater-setpoint") {
		tc.Heater.Setpoint = heaterSet
	}
	if flags.Changed("heater-power") {
		tc.Heater.Power = heaterPower
	}
}

func newSolver() *solver.Solver {
	return solver.New(cfg.Solver).WithLogger(slog.Default())
}

func newStyles() viz.Styles {
	return viz.NewStyles(viz.GetTheme(cfg.Plot.Theme))
}

func chartOptions(caption string) viz.ChartOptions {
	return viz.ChartOptions{Width: cfg.Plot.Width, Height: cfg.Plot.Height, Caption: caption}
}

func plotTemps(series []float64, caption string) string {
	return viz.Plot(series, chartOptions(caption))
}

func plotMany(series [][]float64, caption string) string {
	return viz.PlotMany(series, chartOptions(caption))
}
