package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/storage"
)

var (
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	logSink io.Closer
)

// setupLogging installs the process logger from --log-level, --log-file and
// the config file, in that order of precedence.
func setupLogging(cmd *cobra.Command, args []string) error {
	level := logLevel
	if level == "" && configFile != "" {
		if cfg, err := config.Load(configFile); err == nil {
			level = cfg.LogLevel
		}
	}
	if level == "" {
		level = config.DefaultLogLevel
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}

	var out io.Writer = os.Stderr
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = f
		logSink = f
	} else if isPlayer(cmd) {
		// stderr would tear through the alternate screen
		out = io.Discard
	}

	logger = newLogger(out, lvl)
	slog.SetDefault(logger)
	return nil
}

// closeLog closes the --log-file sink, if one was opened.
func closeLog() {
	if logSink == nil {
		return
	}
	if err := logSink.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
	}
	logSink = nil
}

func newLogger(out io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl}))
}

func isPlayer(cmd *cobra.Command) bool {
	return cmd.Name() == "play" || !cmd.HasParent()
}

// loadConfig builds the effective config: defaults, then the config file,
// then the preset, then the positional algorithm, then explicitly set flags.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		id, err := algorithms.ParseID(args[0])
		if err != nil {
			return nil, err
		}
		cfg.Algorithm = string(id)
	}

	if preset != "" {
		p := config.GetPreset(cfg.Algorithm, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q for %s (have: %s)",
				preset, cfg.Algorithm, strings.Join(config.ListPresets(cfg.Algorithm), ", "))
		}
		applyPreset(cfg, p)
	}

	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("size") {
		cfg.ArraySize = arraySize
	}
	if flags.Changed("input") {
		cfg.CustomInput = customData
	}
	if flags.Changed("target") {
		cfg.SearchTarget = algorithms.ParseTarget(target)
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Theme = theme
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.Normalize()
	return cfg, nil
}

func applyPreset(cfg, p *config.Config) {
	cfg.Algorithm = p.Algorithm
	cfg.Speed = p.Speed
	cfg.ArraySize = p.ArraySize
	cfg.CustomInput = p.CustomInput
	cfg.SearchTarget = p.SearchTarget
}

func openStore() *storage.Store {
	dir := dataDir
	if dir == "" && configFile != "" {
		if cfg, err := config.Load(configFile); err == nil {
			dir = cfg.DataDir
		}
	}
	if dir == "" {
		dir = config.DefaultDataDir
	}
	return storage.New(dir).WithLogger(logger)
}
