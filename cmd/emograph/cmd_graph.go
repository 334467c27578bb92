package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvandessel/emograph/internal/graph"
)

func newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Show the emotion graph's shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			stats := e.graph.Stats()
			emotions := e.graph.Emotions()
			components := e.graph.Components()

			if jsonOut {
				keywords := make(map[string][]string, len(emotions))
				for _, em := range emotions {
					keywords[em] = e.graph.Keywords(em)
				}
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"lexicon_version": e.lexicon.Version,
					"stats":           stats,
					"connected":       e.graph.Connected(),
					"emotions":        keywords,
					"components":      components,
				})
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Lexicon version: %s\n", e.lexicon.Version)
			fmt.Fprintf(w, "Nodes: %d (%d emotions, %d keywords)\n", stats.Nodes, stats.Emotions, stats.Keywords)
			fmt.Fprintf(w, "Edges: %d\n", stats.Edges)
			fmt.Fprintf(w, "Components: %d\n", stats.Components)
			if stats.Islands > 0 {
				fmt.Fprintf(w, "Isolated nodes: %d\n", stats.Islands)
			}
			fmt.Fprintln(w, "\nEmotions:")
			for _, em := range emotions {
				fmt.Fprintf(w, "  %-10s %s\n", em, strings.Join(e.graph.Keywords(em), ", "))
			}
			if len(components) > 1 {
				fmt.Fprintln(w, "\nComponents:")
				fmt.Fprint(w, graph.DescribeComponents(components))
			}
			return nil
		},
	}
}
