package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/analogy/config"
	"github.com/katalvlaran/analogy/search"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	envFile    string
	logLevel   string
	logFormat  string
}

// searchFlags are the search knobs of map and explain.
type searchFlags struct {
	algorithm          string
	seed               int64
	restarts           int
	workers            int
	maxExhaustivePairs int
	allowLarge         bool
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	root := &cobra.Command{
		Use:           "analogy",
		Short:         "Structure mapping between labeled graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&rf.configPath, "config", "", "TOML configuration file")
	root.PersistentFlags().StringVar(&rf.envFile, "env-file", ".env", "dotenv file with ANALOGY_* overrides")
	root.PersistentFlags().StringVar(&rf.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&rf.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(newMapCmd(rf), newScoreCmd(rf), newExplainCmd(rf), newInspectCmd(rf))

	return root
}

func addSearchFlags(cmd *cobra.Command, sf *searchFlags) {
	f := cmd.Flags()
	f.StringVar(&sf.algorithm, "algorithm", "", "search algorithm: greedy or exhaustive")
	f.Int64Var(&sf.seed, "seed", 0, "tie-break seed (0 uses the default seed)")
	f.IntVar(&sf.restarts, "restarts", 0, "independent greedy restarts")
	f.IntVar(&sf.workers, "workers", 0, "goroutines used for restarts")
	f.IntVar(&sf.maxExhaustivePairs, "max-exhaustive-pairs", 0, "largest pair product exhaustive search accepts")
	f.BoolVar(&sf.allowLarge, "allow-large", false, "lift the exhaustive size guard")
}

// resolveConfig layers defaults, the config file, the dotenv file, the
// environment and finally flags that were set explicitly.
func resolveConfig(cmd *cobra.Command, rf *rootFlags, sf *searchFlags) (*config.Config, error) {
	cfg := config.Default()
	if rf.configPath != "" {
		loaded, err := config.Load(rf.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	config.LoadDotEnv(rf.envFile)
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if rf.logLevel != "" {
		cfg.Log.Level = rf.logLevel
	}
	if rf.logFormat != "" {
		cfg.Log.Format = rf.logFormat
	}
	if sf != nil {
		if flags.Changed("algorithm") {
			cfg.Search.Algorithm = sf.algorithm
		}
		if flags.Changed("seed") {
			cfg.Search.Seed = sf.seed
		}
		if flags.Changed("restarts") {
			cfg.Search.Restarts = sf.restarts
		}
		if flags.Changed("workers") {
			cfg.Search.Workers = sf.workers
		}
		if flags.Changed("max-exhaustive-pairs") {
			cfg.Search.MaxExhaustivePairs = sf.maxExhaustivePairs
		}
		if flags.Changed("allow-large") {
			cfg.Search.AllowLarge = sf.allowLarge
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger builds the stderr logger tagged with a per-invocation run id.
func newLogger(w io.Writer, lc config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(lc.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if strings.ToLower(lc.Format) == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With(slog.String("run_id", uuid.New().String()))
}

// setup resolves configuration and logging for one subcommand run.
func setup(cmd *cobra.Command, rf *rootFlags, sf *searchFlags) (*config.Config, *slog.Logger, []search.Option, error) {
	cfg, err := resolveConfig(cmd, rf, sf)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Log)
	opts := append(cfg.SearchOptions(), search.WithLogger(logger))

	return cfg, logger, opts, nil
}

func formatSimilarity(s float64) string {
	return fmt.Sprintf("Similarity: %.2f%%", s*100)
}
