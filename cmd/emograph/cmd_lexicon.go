package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/emograph/internal/graph"
	"github.com/nvandessel/emograph/internal/lexicon"
	"github.com/nvandessel/emograph/internal/sanitize"
)

func newLexiconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Export and check emotion lexicons",
		Long: `A lexicon is the YAML table of emotions, their keywords and weights, the
bridges between them, and optional traversal priorities.

Examples:
  emograph lexicon export my-lexicon.yaml
  emograph lexicon validate my-lexicon.yaml`,
	}

	cmd.AddCommand(
		newLexiconExportCmd(),
		newLexiconValidateCmd(),
	)
	return cmd
}

func newLexiconExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Write the active lexicon as YAML (stdout when no path)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				data, err := lexicon.Marshal(e.lexicon)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			path := sanitize.FilePath(args[0])
			if err := lexicon.WriteFile(path, e.lexicon); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Lexicon %s written to %s\n", e.lexicon.Version, path)
			return nil
		},
	}
}

func newLexiconValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>",
		Short: "Check a lexicon file and report graph warnings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			lex, err := lexicon.LoadFile(sanitize.FilePath(args[0]))
			if err != nil {
				return err
			}
			g := graph.New()
			warnings, err := g.Build(lex)
			if err != nil {
				return err
			}
			warnings = append(warnings, g.SetPriorities(lex.Priorities)...)

			if jsonOut {
				if warnings == nil {
					warnings = []graph.Warning{}
				}
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"valid":    true,
					"version":  lex.Version,
					"stats":    g.Stats(),
					"warnings": warnings,
				})
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Lexicon %s is valid: %d emotions, %d nodes, %d edges\n",
				lex.Version, len(lex.Emotions), g.NodeCount(), g.EdgeCount())
			for _, warn := range warnings {
				fmt.Fprintf(w, "  warning: %s\n", warn)
			}
			return nil
		},
	}
}
