package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvandessel/emograph/internal/ranking"
)

func newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank emotions from raw intensity and tone scores",
		Long: `Run the ranking traversal directly, skipping text analysis.

Examples:
  emograph rank --intensity worried=2
  emograph rank --intensity sad=1.5,lonely=0.7 --tone sadness=0.75 --top-k 5 --paths`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			rawIntensity, _ := cmd.Flags().GetStringSlice("intensity")
			rawTone, _ := cmd.Flags().GetStringSlice("tone")
			topK, _ := cmd.Flags().GetInt("top-k")
			paths, _ := cmd.Flags().GetBool("paths")

			intensity, err := parseScores(rawIntensity)
			if err != nil {
				return fmt.Errorf("invalid --intensity: %w", err)
			}
			tone, err := parseScores(rawTone)
			if err != nil {
				return fmt.Errorf("invalid --tone: %w", err)
			}

			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			if topK <= 0 {
				topK = e.cfg.TopK
			}

			engine := ranking.NewEngine(e.graph,
				ranking.WithLogger(e.logger),
				ranking.WithObserver(e.metrics),
			)
			res, err := engine.Rank(cmd.Context(), ranking.Query{
				Intensity: intensity,
				Tone:      tone,
				TopK:      topK,
				WithPaths: paths,
			})
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), res)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Max path cost: %.4f\n", res.MaxPathCost)
			if len(res.Emotions) == 0 {
				fmt.Fprintln(w, "No emotions reached.")
				return nil
			}
			for i, se := range res.Emotions {
				fmt.Fprintf(w, "%d. %s (score: %.4f, cost: %.4f)\n", i+1, se.Emotion, se.Score, se.Cost)
				if len(se.Path) > 0 {
					fmt.Fprintf(w, "   %s\n", strings.Join(se.Path, " -> "))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSlice("intensity", nil, "Word intensities as word=value (repeatable)")
	cmd.Flags().StringSlice("tone", nil, "Emotion tone scores as emotion=value (repeatable)")
	cmd.Flags().Int("top-k", 0, "Number of emotions to return (default from config)")
	cmd.Flags().Bool("paths", false, "Show the graph path to each emotion")

	return cmd
}

// parseScores parses key=value pairs into a finite score map.
func parseScores(pairs []string) (map[string]float64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	scores := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("value for %q: %w", key, err)
		}
		scores[key] = v
	}
	if err := ranking.ValidateScores("scores", scores); err != nil {
		return nil, err
	}
	return scores, nil
}
