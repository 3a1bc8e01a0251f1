package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	logLevel   string
	logFile    string
	seed       int64
	speed      int
	arraySize  int
	customData string
	jsonData   string
	target     string
	preset     string
	theme      string
	saveRun    bool
	jsonOut    bool
	showSteps  bool
	ansi       bool
	outFile    string
	stepIndex  int
	counters   bool
	kind       string
)

// main registers the commands and runs the player when no subcommand is
// given. It exits with status 1 when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:               "algoviz [algorithm]",
		Short:             "step-by-step sorting and searching visualizer",
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: setupLogging,
		RunE:              playAlgorithm,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "run storage directory (default .algoviz)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	addSessionFlags(rootCmd)
	rootCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "open the interactive player",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playAlgorithm,
	}
	addSessionFlags(playCmd)
	playCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "generate a trace and print its summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAlgorithm,
	}
	addSessionFlags(runCmd)
	runCmd.Flags().StringVar(&jsonData, "data", "", `input array as JSON, e.g. "[64,34,25]"`)
	runCmd.Flags().BoolVar(&saveRun, "save", false, "persist the trace to the data directory")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "print the summary as JSON")
	runCmd.Flags().BoolVar(&showSteps, "steps", false, "print every step")

	watchCmd := &cobra.Command{
		Use:   "watch [algorithm]",
		Short: "play a run in the terminal without interaction",
		Args:  cobra.MaximumNArgs(1),
		RunE:  watchAlgorithm,
	}
	addSessionFlags(watchCmd)
	watchCmd.Flags().BoolVar(&ansi, "ansi", true, "redraw in place with ANSI escapes")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}
	algorithmsCmd.Flags().BoolVar(&jsonOut, "json", false, "print the catalogue as JSON")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().BoolVar(&showSteps, "steps", false, "print every step")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the counters of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the steps of a saved run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a step or the counters of a saved run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&stepIndex, "step", -1, "step to draw (default last)")
	exportSVGCmd.Flags().BoolVar(&counters, "counters", false, "draw the comparison counter instead of bars")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run every algorithm of a kind on the same array",
		Args:  cobra.NoArgs,
		RunE:  compareAlgorithms,
	}
	addSessionFlags(compareCmd)
	compareCmd.Flags().StringVar(&kind, "kind", "sorting", "sorting or searching")
	compareCmd.Flags().BoolVar(&jsonOut, "json", false, "print the summaries as JSON")

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list presets, for one algorithm or all",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a config file with the default settings",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(playCmd, runCmd, watchCmd, algorithmsCmd, listCmd, showCmd,
		plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, compareCmd, presetsCmd, initCmd)

	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&speed, "speed", 50, "playback speed 1-100")
	cmd.Flags().IntVar(&arraySize, "size", 20, "random array size 5-50")
	cmd.Flags().StringVar(&customData, "input", "", `comma-separated values, e.g. "5, 3, 8"`)
	cmd.Flags().StringVar(&target, "target", "", "search target (default first element)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
}
