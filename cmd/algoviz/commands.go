package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/stats"
	"github.com/san-kum/algoviz/internal/storage"
	"github.com/san-kum/algoviz/internal/trace"
	"github.com/san-kum/algoviz/internal/tui"
	"github.com/san-kum/algoviz/internal/viz"
)

func playAlgorithm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	return viz.Run(cfg, cfg.NewInput(), logger)
}

func runAlgorithm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	values, err := runInput(cmd, cfg)
	if err != nil {
		return err
	}

	info, _ := algorithms.Lookup(cfg.AlgorithmID())
	t, err := algorithms.Run(info.ID, values, cfg.SearchTarget)
	if err != nil {
		return err
	}
	logger.Debug("trace generated", "algorithm", info.ID, "size", len(values), "steps", t.Len())

	if saveRun {
		runID, err := openStore().Save(t, values, cfg.Seed)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		fmt.Fprintf(os.Stderr, "saved run %s\n", runID)
	}

	summary := stats.Summarize(t, info)
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	printSummary(os.Stdout, summary)
	if showSteps {
		fmt.Println()
		printSteps(os.Stdout, t)
	}
	return nil
}

// runInput picks the array for a one-shot run: --data, then configured
// custom input, then the algorithm's default preset when nothing was asked
// for, then a random array.
func runInput(cmd *cobra.Command, cfg *config.Config) ([]int, error) {
	if jsonData != "" {
		return input.ParseJSON([]byte(jsonData))
	}
	if values := cfg.Values(); len(values) > 0 {
		return values, nil
	}
	if !cmd.Flags().Changed("size") && !cmd.Flags().Changed("input") {
		if def := config.Default(cfg.Algorithm); def != nil {
			if cfg.SearchTarget == nil {
				cfg.SearchTarget = def.SearchTarget
			}
			return def.Values(), nil
		}
	}
	return cfg.NewInput().Values(), nil
}

func printSummary(w io.Writer, s stats.Summary) {
	keys := make([]string, 0, len(s.Result))
	for k := range s.Result {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, s.Result[k])
	}

	fmt.Fprintf(w, "algorithm:  %s (%s)\n", s.Name, s.Algorithm)
	fmt.Fprintf(w, "complexity: %s\n", s.Complexity)
	fmt.Fprintf(w, "steps:      %d\n", s.Steps)
	fmt.Fprintf(w, "message:    %s\n", s.Message)
	fmt.Fprintf(w, "result:     %s\n", strings.Join(parts, " "))
}

func newTable(w io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false
	return tbl
}

func printSteps(w io.Writer, t *trace.Trace) {
	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"#", "cmp", "swp", "values", "description"})
	for i, step := range t.Steps() {
		tbl.AppendRow(table.Row{i, step.Comparisons, step.Swaps, formatStep(step), step.Description})
	}
	tbl.Render()
}

// formatStep renders values with their highlights, e.g. "[34] 64* 25".
func formatStep(step trace.Step) string {
	parts := make([]string, len(step.Elements))
	for i, e := range step.Elements {
		v := fmt.Sprint(e.Value)
		switch {
		case e.Flags.Has(trace.Found):
			v = "<" + v + ">"
		case e.Flags.Has(trace.Swapping):
			v = v + "*"
		case e.Flags.Has(trace.Comparing):
			v = "[" + v + "]"
		case e.Flags.Has(trace.Pivot):
			v = v + "^"
		}
		parts[i] = v
	}
	return strings.Join(parts, " ")
}

func watchAlgorithm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := append(cfg.SessionOptions(), playback.WithLogger(logger))
	s, err := playback.NewSession(cfg.NewInput(), cfg.AlgorithmID(), opts...)
	if err != nil {
		return err
	}
	defer s.Close()

	r := tui.NewLiveRenderer(os.Stdout, ansi)
	done := make(chan struct{})
	var once sync.Once
	s.OnChange(r.OnChange)
	s.OnChange(func(snap playback.Snapshot) {
		if snap.State == playback.Completed {
			once.Do(func() { close(done) })
		}
	})

	r.Start()
	defer r.Stop()
	if err := s.Play(); err != nil {
		return err
	}

	select {
	case <-done:
	case <-ctx.Done():
		s.Close()
	}
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	list := algorithms.List()
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"algorithms": list})
	}

	tbl := newTable(os.Stdout)
	tbl.AppendHeader(table.Row{"id", "name", "kind", "complexity", "description"})
	for _, info := range list {
		tbl.AppendRow(table.Row{info.ID, info.Name, info.Kind, info.Complexity, info.Description})
	}
	tbl.Render()
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := openStore().List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	tbl := newTable(os.Stdout)
	tbl.AppendHeader(table.Row{"id", "algorithm", "saved", "size", "steps", "comparisons", "swaps", "trace"})
	for _, run := range runs {
		tbl.AppendRow(table.Row{
			run.ID,
			run.Algorithm,
			humanize.Time(run.Timestamp),
			len(run.Input),
			humanize.Comma(int64(run.Steps)),
			humanize.Comma(int64(run.Comparisons)),
			humanize.Comma(int64(run.Swaps)),
			humanize.Bytes(uint64(run.TraceBytes)),
		})
	}
	tbl.Render()
	return nil
}

func showRun(cmd *cobra.Command, args []string) error {
	st := openStore()
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run:         %s\n", meta.ID)
	fmt.Printf("algorithm:   %s (%s)\n", meta.Name, meta.Complexity)
	fmt.Printf("saved:       %s (%s)\n", meta.Timestamp.Format("2006-01-02 15:04:05"), humanize.Time(meta.Timestamp))
	fmt.Printf("seed:        %d\n", meta.Seed)
	fmt.Printf("input:       %v\n", meta.Input)
	if meta.Target != nil {
		fmt.Printf("target:      %d\n", *meta.Target)
	}
	fmt.Printf("steps:       %s\n", humanize.Comma(int64(meta.Steps)))
	fmt.Printf("comparisons: %s\n", humanize.Comma(int64(meta.Comparisons)))
	fmt.Printf("swaps:       %s\n", humanize.Comma(int64(meta.Swaps)))
	fmt.Printf("trace:       %s compressed\n", humanize.Bytes(uint64(meta.TraceBytes)))
	fmt.Printf("message:     %s\n", meta.Message)

	if !showSteps {
		return nil
	}
	t, err := st.LoadTrace(meta.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	printSteps(os.Stdout, t)
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := openStore()
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	t, err := st.LoadTrace(meta.ID)
	if err != nil {
		return err
	}
	if t.Len() < 2 {
		return fmt.Errorf("run %s has a single step, nothing to plot", meta.ID)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s\n", meta.Name)
	fmt.Printf("steps: %d\n\n", t.Len())

	series := stats.SeriesOf(t)
	for _, p := range []struct {
		caption string
		data    []float64
	}{
		{"comparisons vs step", series.Comparisons},
		{"swaps vs step", series.Swaps},
	} {
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

// output returns stdout, or the --output file and its closer.
func output() (io.Writer, func() error, error) {
	if outFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := openStore()
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	t, err := st.LoadTrace(meta.ID)
	if err != nil {
		return err
	}

	w, closeFn, err := output()
	if err != nil {
		return err
	}
	if err := storage.ExportJSON(w, *meta, t); err != nil {
		closeFn()
		return err
	}
	if err := closeFn(); err != nil {
		return err
	}
	if outFile != "" {
		fmt.Fprintf(os.Stderr, "exported %s to %s\n", meta.ID, outFile)
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := openStore()
	t, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	w, closeFn, err := output()
	if err != nil {
		return err
	}
	if err := storage.ExportCSV(w, t); err != nil {
		closeFn()
		return err
	}
	if err := closeFn(); err != nil {
		return err
	}
	if outFile != "" {
		fmt.Fprintf(os.Stderr, "exported %s to %s\n", args[0], outFile)
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	t, err := openStore().LoadTrace(args[0])
	if err != nil {
		return err
	}

	var svg string
	if counters {
		svg = export.SeriesToSVG(stats.SeriesOf(t).Comparisons, 800, 300, export.DefaultPalette.Comparing)
		if svg == "" {
			return fmt.Errorf("run %s has a single step, nothing to plot", args[0])
		}
	} else {
		i := stepIndex
		if i < 0 {
			i = t.Len() - 1
		}
		svg = export.StepToSVG(t.At(t.Clamp(i)), 800, 300, export.DefaultPalette)
	}

	w, closeFn, err := output()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, svg+"\n"); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	k := algorithms.Kind(strings.ToLower(kind))
	ids := stats.IDsOfKind(k)
	if len(ids) == 0 {
		return fmt.Errorf("unknown kind %q (have: sorting, searching)", kind)
	}
	values := cfg.NewInput().Values()
	if k == algorithms.Searching {
		// binary search reports positions in sorted order
		sort.Ints(values)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	out, err := stats.NewEnsemble(ids, cfg.SearchTarget).Run(ctx, values)
	if err != nil {
		return err
	}
	logger.Debug("ensemble finished", "kind", k, "algorithms", len(ids), "size", len(values))

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"input": values, "runs": out})
	}

	fmt.Printf("input: %v\n\n", values)
	tbl := newTable(os.Stdout)
	tbl.AppendHeader(table.Row{"algorithm", "complexity", "steps", "comparisons", "swaps", "message"})
	for _, s := range out {
		tbl.AppendRow(table.Row{
			s.Name, s.Complexity,
			humanize.Comma(int64(s.Steps)),
			s.Result["comparisons"], s.Result["swaps"],
			s.Message,
		})
	}
	tbl.Render()
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	var ids []string
	if len(args) > 0 {
		id, err := algorithms.ParseID(args[0])
		if err != nil {
			return err
		}
		ids = []string{string(id)}
	} else {
		for _, info := range algorithms.List() {
			ids = append(ids, string(info.ID))
		}
	}

	tbl := newTable(os.Stdout)
	tbl.AppendHeader(table.Row{"algorithm", "preset", "speed", "input", "target"})
	for _, id := range ids {
		for _, name := range config.ListPresets(id) {
			p := config.GetPreset(id, name)
			tgt := "-"
			if p.SearchTarget != nil {
				tgt = fmt.Sprint(*p.SearchTarget)
			}
			tbl.AppendRow(table.Row{id, name, p.Speed, p.CustomInput, tgt})
		}
	}
	tbl.Render()
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(args[0]); err == nil {
		return fmt.Errorf("%s already exists", args[0])
	}
	if err := config.Save(args[0], config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}
