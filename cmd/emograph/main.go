package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/nvandessel/emograph/internal/advisor"
	"github.com/nvandessel/emograph/internal/config"
	"github.com/nvandessel/emograph/internal/graph"
	"github.com/nvandessel/emograph/internal/lexicon"
	"github.com/nvandessel/emograph/internal/sanitize"
	"github.com/nvandessel/emograph/internal/telemetry"
	"github.com/nvandessel/emograph/internal/verses"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "emograph",
		Short: "Emotion graph - detect feelings in text and suggest verses",
		Long: `emograph infers which emotions a short piece of text expresses.

Words in the text carry intensity scores that propagate through a small
weighted graph of emotions and keywords. Reachable emotions are ranked by
path cost, and each is paired with matching verses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (for agent consumption)")
	rootCmd.PersistentFlags().String("root", ".", "Project root directory")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json (overrides config)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newInitCmd(),
		newAnalyzeCmd(),
		newRankCmd(),
		newGraphCmd(),
		newLexiconCmd(),
		newMCPServerCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"version": version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "emograph version %s\n", version)
			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create .emograph/ with a config file and an editable lexicon",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			dir := config.LocalPath(sanitize.FilePath(root))

			if err := config.EnsureDir(dir); err != nil {
				return err
			}

			lexiconPath := filepath.Join(dir, config.LexiconFileName)
			if _, err := os.Stat(lexiconPath); os.IsNotExist(err) {
				if err := lexicon.WriteFile(lexiconPath, lexicon.Default()); err != nil {
					return err
				}
			}

			configPath := filepath.Join(dir, config.FileName)
			if _, err := os.Stat(configPath); os.IsNotExist(err) {
				cfg := config.Default()
				cfg.LexiconPath = config.LexiconFileName
				if err := config.Save(configPath, cfg); err != nil {
					return err
				}
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"status": "initialized",
					"path":   dir,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s/ in %s\n", config.DirName, root)
			return nil
		},
	}
}

// env is everything a command needs after loading config.
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	lexicon  *lexicon.Lexicon
	graph    *graph.Graph
	registry *prometheus.Registry
	metrics  *telemetry.Metrics
}

// loadEnv reads config, sets up logging and builds the graph.
func loadEnv(cmd *cobra.Command) (*env, error) {
	root, _ := cmd.Flags().GetString("root")
	cfg, err := config.Load(sanitize.FilePath(root))
	if err != nil {
		return nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if format, _ := cmd.Flags().GetString("log-format"); format != "" {
		cfg.Log.Format = format
	}

	logger, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	lex := lexicon.Default()
	if cfg.LexiconPath != "" {
		lex, err = lexicon.LoadFile(sanitize.FilePath(cfg.LexiconPath))
		if err != nil {
			return nil, err
		}
	}

	g := graph.New(graph.WithLogger(logger))
	warnings, err := g.Build(lex)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, g.SetPriorities(cfg.Priorities)...)
	graph.LogWarnings(logger, warnings)

	reg := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(reg)
	metrics.RecordWarnings(warnings)

	return &env{
		cfg:      cfg,
		logger:   logger,
		lexicon:  lex,
		graph:    g,
		registry: reg,
		metrics:  metrics,
	}, nil
}

// advisor builds the pipeline for requests from source.
func (e *env) advisor(source string, opts ...advisor.Option) *advisor.Advisor {
	base := []advisor.Option{
		advisor.WithTopK(e.cfg.TopK),
		advisor.WithLogger(e.logger),
		advisor.WithMetrics(e.metrics, source),
		advisor.WithVerses(verses.NewDefaultMapper(verses.WithThresholds(e.cfg.VerseThresholds))),
	}
	return advisor.New(e.graph, append(base, opts...)...)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
