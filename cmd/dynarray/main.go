package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/dynarray/internal/config"
	"github.com/san-kum/dynarray/internal/metrics"
	"github.com/san-kum/dynarray/internal/script"
	"github.com/san-kum/dynarray/internal/store"
	"github.com/san-kum/dynarray/internal/tui"
	"github.com/san-kum/dynarray/internal/viz"
	"github.com/spf13/cobra"
)

type options struct {
	dataDir    string
	configFile string
	element    string
	capacity   int
	theme      string
	out        string
	save       bool
	plot       bool
	tree       bool
	live       bool
	frameRate  int
	strict     bool
	appends    int
}

// main is the entry point for the dynarray CLI. With no subcommand it opens
// the interactive REPL.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "dynarray",
		Short:        "growable list playground",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data", ".dynarray", "data directory for saved runs")
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.element, "element", config.DefaultElement, "element kind (int, string, option)")
	rootCmd.PersistentFlags().IntVar(&opts.capacity, "capacity", config.DefaultCapacity, "initial capacity")
	rootCmd.PersistentFlags().StringVar(&opts.theme, "theme", config.DefaultTheme, "color theme")

	addRunFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&opts.out, "out", "", "write the trace as JSON to this path")
		cmd.Flags().BoolVar(&opts.save, "save", false, "save the run under the data directory")
		cmd.Flags().BoolVar(&opts.plot, "plot", false, "plot count and capacity per step")
		cmd.Flags().BoolVar(&opts.tree, "tree", false, "print the final layout as a tree")
		cmd.Flags().BoolVar(&opts.live, "live", false, "print each step as it is applied")
		cmd.Flags().IntVar(&opts.frameRate, "fps", 0, "steps per second with --live (0 = no delay)")
		cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail if any op fails")
	}

	runCmd := &cobra.Command{
		Use:   "run [script.yaml]",
		Short: "run a script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to load script: %w", err)
			}
			name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			return runScript(cmd, opts, name, cfg)
		},
	}
	addRunFlags(runCmd)

	execCmd := &cobra.Command{
		Use:     "exec [op...]",
		Short:   "run ops given as arguments",
		Example: `  dynarray exec "add 10" "add 20" "insert 1 15" pop`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := baseConfig(opts)
			if err != nil {
				return err
			}
			cfg.Ops = args
			return runScript(cmd, opts, "exec", cfg)
		},
	}
	addRunFlags(execCmd)

	presetCmd := &cobra.Command{
		Use:   "preset [name]",
		Short: "run a built-in preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetPreset(args[0])
			if cfg == nil {
				return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
			}
			return runScript(cmd, opts, args[0], cfg)
		},
	}
	addRunFlags(presetCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(out, "  %-12s %-7s cap=%d  %d ops\n", name, p.Element, p.Capacity, len(p.Ops))
			}
			return nil
		},
	}

	growthCmd := &cobra.Command{
		Use:   "growth",
		Short: "append N elements and chart capacity growth",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrowth(cmd, opts)
		},
	}
	growthCmd.Flags().IntVarP(&opts.appends, "count", "n", 64, "number of appends")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := store.New(opts.dataDir).List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "no runs found")
				return nil
			}
			for _, r := range runs {
				fmt.Fprintf(out, "  %s\n", r)
			}
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id|trace.json]",
		Short: "replay a saved run or exported trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showTrace(cmd, opts, args[0])
		},
	}
	showCmd.Flags().BoolVar(&opts.plot, "plot", false, "plot count and capacity per step")
	showCmd.Flags().BoolVar(&opts.tree, "tree", false, "print the final layout as a tree")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, opts)
		},
	}

	rootCmd.AddCommand(runCmd, execCmd, presetCmd, presetsCmd, growthCmd, runsCmd, showCmd, replCmd)
	return rootCmd
}

// baseConfig loads --config if given, otherwise the defaults.
func baseConfig(opts *options) (*config.Config, error) {
	if opts.configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// applyFlags lets explicitly set flags override the loaded configuration.
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("element") {
		cfg.Element = opts.element
	}
	if flags.Changed("capacity") {
		cfg.Capacity = opts.capacity
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}
	return cfg.Validate()
}

func newEngine(cfg *config.Config) (script.Engine, error) {
	engine, err := script.NewRegistry().NewEngine(cfg.Element, cfg.Capacity)
	if err != nil {
		return nil, err
	}
	for _, m := range metrics.Defaults() {
		engine.AddMetric(m)
	}
	return engine, nil
}

func runScript(cmd *cobra.Command, opts *options, name string, cfg *config.Config) error {
	if err := applyFlags(cmd, opts, cfg); err != nil {
		return err
	}
	ops, err := script.ParseOps(cfg.Ops)
	if err != nil {
		return err
	}
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	theme := viz.GetTheme(cfg.Theme)
	if opts.live {
		engine.AddObserver(tui.NewLiveRenderer(out, theme, opts.frameRate))
	}

	fmt.Fprintln(out, viz.Header(fmt.Sprintf("%s · list[%s] · %d ops", name, cfg.Element, len(ops)), theme))
	fmt.Fprintln(out, viz.Slots(engine.Snapshot(), -1, theme))
	fmt.Fprintln(out)

	trace, err := engine.Run(cmd.Context(), ops)
	if err != nil {
		return err
	}

	report(cmd, opts, trace, cfg, theme, !opts.live)

	if opts.out != "" {
		if err := store.ExportJSON(opts.out, name, trace); err != nil {
			return err
		}
		fmt.Fprintf(out, "\ntrace written to %s\n", opts.out)
	}

	if opts.save {
		st := store.New(opts.dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(name, trace)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nrun id: %s\n", runID)
	}

	if opts.strict && trace.Failed > 0 {
		return fmt.Errorf("%d of %d ops failed", trace.Failed, len(trace.Steps))
	}
	return nil
}

func report(cmd *cobra.Command, opts *options, trace *script.Trace, cfg *config.Config, theme viz.Theme, steps bool) {
	out := cmd.OutOrStdout()

	if steps {
		for _, step := range trace.Steps {
			fmt.Fprintln(out, viz.StepLine(step, theme))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.Header("final", theme))
	fmt.Fprintln(out, viz.Slots(trace.Final, -1, theme))
	if trace.Failed > 0 {
		fmt.Fprintf(out, "%d of %d ops failed\n", trace.Failed, len(trace.Steps))
	}

	if len(trace.Metrics) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.Header("metrics", theme))
		fmt.Fprintln(out, viz.Metrics(trace.Metrics, theme))
	}

	if opts.plot {
		if graph := viz.GrowthPlot(trace, cfg.Graph.Height, cfg.Graph.Width); graph != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, graph)
		}
	}

	if opts.tree {
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.Tree(trace.Final, trace.Element))
	}
}

func runGrowth(cmd *cobra.Command, opts *options) error {
	if opts.appends <= 0 {
		return fmt.Errorf("n must be positive, got %d", opts.appends)
	}
	cfg, err := baseConfig(opts)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, opts, cfg); err != nil {
		return err
	}
	cfg.Element = "int"

	ops := make([]script.Op, opts.appends)
	for i := range ops {
		ops[i] = script.Op{Kind: script.OpAdd, Index: -1, Value: strconv.Itoa(i)}
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}
	trace, err := engine.Run(cmd.Context(), ops)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	theme := viz.GetTheme(cfg.Theme)
	fmt.Fprintln(out, viz.Header(fmt.Sprintf("%d appends from capacity %d", opts.appends, cfg.Capacity), theme))
	fmt.Fprintln(out, viz.Metrics(trace.Metrics, theme))
	fmt.Fprintf(out, "amortized copies per append: %.3f\n", trace.Metrics["copied_elements"]/float64(opts.appends))
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.GrowthPlot(trace, cfg.Graph.Height, cfg.Graph.Width))
	return nil
}

func showTrace(cmd *cobra.Command, opts *options, target string) error {
	path := target
	if filepath.Ext(target) != ".json" {
		path = filepath.Join(opts.dataDir, target, "trace.json")
	}
	data, err := store.ImportJSON(path)
	if err != nil {
		return fmt.Errorf("failed to load trace: %w", err)
	}

	cfg, err := baseConfig(opts)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, opts, cfg); err != nil {
		return err
	}
	theme := viz.GetTheme(cfg.Theme)

	fmt.Fprintln(cmd.OutOrStdout(), viz.Header(fmt.Sprintf("%s · list[%s] · %d ops", data.Name, data.Element, len(data.Steps)), theme))
	report(cmd, opts, data.Trace(), cfg, theme, true)
	return nil
}

func runRepl(cmd *cobra.Command, opts *options) error {
	cfg, err := baseConfig(opts)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, opts, cfg); err != nil {
		return err
	}
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}
	if len(cfg.Ops) > 0 {
		ops, err := script.ParseOps(cfg.Ops)
		if err != nil {
			return err
		}
		for _, op := range ops {
			engine.Apply(op)
		}
	}
	return tui.Run(engine, viz.GetTheme(cfg.Theme))
}
