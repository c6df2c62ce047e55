package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravitylab/internal/config"
	"github.com/san-kum/gravitylab/internal/export"
	"github.com/san-kum/gravitylab/internal/gui"
	"github.com/san-kum/gravitylab/internal/metrics"
	"github.com/san-kum/gravitylab/internal/optim"
	"github.com/san-kum/gravitylab/internal/params"
	"github.com/san-kum/gravitylab/internal/physics"
	"github.com/san-kum/gravitylab/internal/scene"
	"github.com/san-kum/gravitylab/internal/sim"
	"github.com/san-kum/gravitylab/internal/storage"
	"github.com/san-kum/gravitylab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	// Parameter overrides
	earthMass float64
	moonMass  float64
	distance  float64
	velocity  float64
	manual    bool
	// Live view
	frameRate int
	scale     float64
	logFile   string
	// Headless runs
	frames   int
	interval time.Duration
	width    float64
	height   float64
	output   string
	// Sweeps
	sweepKey    string
	sweepFrom   float64
	sweepTo     float64
	sweepSteps  int
	sweepMetric string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravitylab",
		Short: "earth-moon gravity lab",
		RunE:  runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	addSceneFlags(rootCmd)
	addLiveFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)
	addLiveFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "windowed view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(*cfg)
			return nil
		},
	}
	addSceneFlags(guiCmd)

	telemetryCmd := &cobra.Command{
		Use:   "telemetry",
		Short: "print the derived readout for one parameter set",
		RunE:  printTelemetry,
	}
	addSceneFlags(telemetryCmd)

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run headless and save the per-frame trace",
		RunE:  runTrace,
	}
	addSceneFlags(traceCmd)
	addHeadlessFlags(traceCmd)
	traceCmd.Flags().DurationVar(&interval, "interval", 0, "wall time per frame (0 runs flat out)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved traces",
		RunE:  listTraces,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [trace_id]",
		Short: "plot a saved trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrace,
	}

	exportCmd := &cobra.Command{
		Use:   "export [trace_id]",
		Short: "export trace metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportTrace,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [trace_id]",
		Short: "export trace metadata and samples to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame to SVG",
		RunE:  runSnapshot,
	}
	addSceneFlags(snapshotCmd)
	addHeadlessFlags(snapshotCmd)
	snapshotCmd.Flags().StringVarP(&output, "output", "o", "snapshot.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tEARTH\tMOON\tDIST\tVEL\tORBIT\tSTATUS")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%.2f\t%.3f\t%.0f\t%.2f\t%v\t%s\n",
					name, p.EarthMass, p.MoonMass, p.Distance, p.Velocity, p.AutoOrbit, physics.Classify(p.Velocity))
			}
			return w.Flush()
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run headless traces across one parameter and rank a metric",
		RunE:  runSweep,
	}
	addSceneFlags(sweepCmd)
	addHeadlessFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepKey, "key", "velocity", "parameter to sweep (earth, moon, distance, velocity)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.5, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1.5, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 11, "number of values")
	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "stable_fraction", "metric to rank by (highest wins)")

	rootCmd.AddCommand(liveCmd, guiCmd, telemetryCmd, traceCmd, listCmd, plotCmd, exportCmd, exportJSONCmd, snapshotCmd, presetsCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Int64Var(&seed, "seed", 0, "star field seed (0 = time based)")
	cmd.Flags().Float64Var(&earthMass, "earth", params.DefaultEarthMass, "earth mass")
	cmd.Flags().Float64Var(&moonMass, "moon", params.DefaultMoonMass, "moon mass")
	cmd.Flags().Float64Var(&distance, "distance", params.DefaultDistance, "separation")
	cmd.Flags().Float64Var(&velocity, "velocity", params.DefaultVelocity, "velocity factor")
	cmd.Flags().BoolVar(&manual, "manual", false, "start with auto-orbit off")
}

func addLiveFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().Float64Var(&scale, "scale", config.DefaultViewportScale, "scene pixels per braille dot")
	cmd.Flags().StringVar(&logFile, "log", "", "write debug log to file")
}

func addHeadlessFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to render")
	cmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "surface width")
	cmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "surface height")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.Resolve(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("earth") {
		cfg.Params.EarthMass = earthMass
	}
	if flags.Changed("moon") {
		cfg.Params.MoonMass = moonMass
	}
	if flags.Changed("distance") {
		cfg.Params.Distance = distance
	}
	if flags.Changed("velocity") {
		cfg.Params.Velocity = velocity
	}
	if flags.Changed("manual") {
		cfg.Params.AutoOrbit = !manual
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("scale") {
		cfg.ViewportScale = scale
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("data") || configFile == "" {
		cfg.DataDir = dataDir
	}
	cfg.Normalize()
	return cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(*cfg, logFile)
}

func printTelemetry(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p := cfg.Params
	tel := physics.Compute(p)
	raw := physics.ArrowForce(p.EarthMass, p.MoonMass, p.Distance)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "earth mass\t%.2f\n", p.EarthMass)
	fmt.Fprintf(w, "moon mass\t%.3f\n", p.MoonMass)
	fmt.Fprintf(w, "distance\t%.0f\n", p.Distance)
	fmt.Fprintf(w, "velocity\t%.2f\n", p.Velocity)
	fmt.Fprintf(w, "force\t%.2f N(s)\n", tel.Force)
	fmt.Fprintf(w, "stability\t%.0f%%\n", tel.Stability)
	fmt.Fprintf(w, "status\t%s\n", tel.Status)
	fmt.Fprintf(w, "radius\t%.0f km\n", physics.RadiusKM(p.Distance))
	fmt.Fprintf(w, "arrow force\t%.0fN\n", raw)
	fmt.Fprintf(w, "arrow length\t%.1f\n", physics.ArrowLength(raw))
	fmt.Fprintf(w, "orbit step\t%.5f rad/frame\n", physics.OrbitStep(p.Velocity, p.Distance))
	return w.Flush()
}

func newRenderer(cfg *config.Config) *scene.Renderer {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return scene.NewRenderer(scene.NewStarField(cfg.Stars, rand.New(rand.NewSource(s))))
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	store := params.NewStore(cfg.Params)
	runner := sim.New(store, newRenderer(cfg), scene.Discard{W: cfg.Width, H: cfg.Height})
	for _, m := range metrics.Defaults() {
		runner.AddMetric(m)
	}

	events := make([]sim.Event, len(cfg.Events))
	for i, ev := range cfg.Events {
		events[i] = sim.Event{Frame: ev.Frame, Update: ev.Update}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("tracing %d frames...\n", cfg.Frames)
	start := time.Now()

	result, err := runner.Run(ctx, sim.Config{Frames: cfg.Frames, Interval: interval, Events: events})
	if err != nil && result == nil {
		return err
	}
	if err != nil {
		fmt.Printf("interrupted after %d frames\n", len(result.Samples))
	}

	id, saveErr := st.Save(storage.TraceMetadata{
		Preset:  preset,
		Seed:    cfg.Seed,
		Frames:  len(result.Samples),
		Width:   cfg.Width,
		Height:  cfg.Height,
		Initial: cfg.Params,
	}, result)
	if saveErr != nil {
		return saveErr
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("trace id: %s\n", id)
	fmt.Printf("frames: %d\n", len(result.Samples))
	fmt.Println("\nmetrics:")
	for _, m := range metrics.Defaults() {
		fmt.Printf("  %s: %.6f\n", m.Name(), result.Metrics[m.Name()])
	}
	return nil
}

func listTraces(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	traces, err := st.List()
	if err != nil {
		return err
	}

	if len(traces) == 0 {
		fmt.Println("no traces found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tFRAMES\tVEL\tSTATUS")

	for _, tr := range traces {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%s\n",
			tr.ID,
			tr.Preset,
			tr.Timestamp.Format("2006-01-02 15:04:05"),
			tr.Frames,
			tr.Initial.Velocity,
			physics.Classify(tr.Initial.Velocity),
		)
	}

	return w.Flush()
}

func plotTrace(cmd *cobra.Command, args []string) error {
	id := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(id)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("trace: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(samples))

	series := []struct {
		caption string
		value   func(sim.Sample) float64
	}{
		{"force N(s)", func(s sim.Sample) float64 { return s.Force }},
		{"stability %", func(s sim.Sample) float64 { return s.Stability }},
		{"distance", func(s sim.Sample) float64 { return s.Distance }},
		{"moon y", func(s sim.Sample) float64 { return s.MoonY }},
	}
	for _, sr := range series {
		data := make([]float64, len(samples))
		for i, s := range samples {
			data[i] = sr.value(s)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(sr.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportTrace(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// runSnapshot advances a renderer off screen so the trail and angle match
// frame N, then writes that frame.
func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	r := newRenderer(cfg)
	surface := scene.Discard{W: cfg.Width, H: cfg.Height}
	for i := 1; i < cfg.Frames; i++ {
		r.Render(surface, cfg.Params)
	}
	if err := export.WriteSnapshot(output, r, cfg.Params, cfg.Width, cfg.Height); err != nil {
		return err
	}
	fmt.Printf("wrote %s (frame %d)\n", output, cfg.Frames)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var key params.Key
	found := false
	for _, k := range params.Keys {
		if k.String() == sweepKey {
			key, found = k, true
		}
	}
	if !found {
		return fmt.Errorf("unknown parameter: %s (available: %v)", sweepKey, params.Keys)
	}

	grid := optim.NewGridSearch([]params.Key{key}, [][]float64{optim.Linspace(sweepFrom, sweepTo, sweepSteps)})
	run := func(ctx context.Context, p params.Parameters) (*sim.Result, error) {
		r := sim.New(params.NewStore(p), newRenderer(cfg), scene.Discard{W: cfg.Width, H: cfg.Height})
		for _, m := range metrics.Defaults() {
			r.AddMetric(m)
		}
		return r.Run(ctx, sim.Config{Frames: cfg.Frames})
	}

	points, err := grid.Evaluate(cmd.Context(), cfg.Params, run)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tSTATUS", sweepKey)
	for _, m := range metrics.Defaults() {
		fmt.Fprintf(w, "\t%s", m.Name())
	}
	fmt.Fprintln(w)
	for _, pt := range points {
		fmt.Fprintf(w, "%.3f\t%s", key.Value(pt.Params), physics.Classify(pt.Params.Velocity))
		for _, m := range metrics.Defaults() {
			fmt.Fprintf(w, "\t%.4f", pt.Metrics[m.Name()])
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if best, v, ok := optim.Best(points, sweepMetric, true); ok {
		fmt.Printf("\nbest %s: %.4f at %s=%.3f\n", sweepMetric, v, sweepKey, key.Value(best.Params))
	}
	return nil
}
