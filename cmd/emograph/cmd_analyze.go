package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvandessel/emograph/internal/advisor"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Detect emotions in text and suggest verses",
		Long: `Analyze a line of text: score word intensities, rank the emotions they
reach in the emotion graph, and suggest verses for each.

With no arguments, one line is read from stdin.

Examples:
  emograph analyze "I am so worried about tomorrow"
  echo "feeling kind of lonely" | emograph analyze --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			topK, _ := cmd.Flags().GetInt("top-k")
			paths, _ := cmd.Flags().GetBool("paths")

			text := strings.Join(args, " ")
			if len(args) == 0 {
				if !jsonOut {
					fmt.Fprint(cmd.ErrOrStderr(), "Enter your feelings or thoughts:\n> ")
				}
				line, err := readLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = line
			}

			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			opts := []advisor.Option{advisor.WithPaths(paths)}
			if topK > 0 {
				opts = append(opts, advisor.WithTopK(topK))
			}
			report, err := e.advisor("cli", opts...).Advise(cmd.Context(), text)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().Int("top-k", 0, "Number of emotions to report (default from config)")
	cmd.Flags().Bool("paths", false, "Show the graph path to each emotion")

	return cmd
}

func readLine(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	if sc.Scan() {
		return sc.Text(), nil
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return "", errors.New("no input")
}

func printReport(w io.Writer, report *advisor.Report) {
	if len(report.Emotions) == 0 {
		fmt.Fprintln(w, "No emotions detected.")
		return
	}

	fmt.Fprintln(w, "Top emotions detected:")
	for _, rec := range report.Emotions {
		fmt.Fprintf(w, "- %s (score: %.4f)\n", rec.Emotion, rec.Score)
		if len(rec.Path) > 0 {
			fmt.Fprintf(w, "  Path: %s\n", strings.Join(rec.Path, " -> "))
		}
		if len(rec.Verses) == 0 {
			fmt.Fprintln(w, "  No matching verses found.")
			continue
		}
		fmt.Fprintln(w, "  Suggested verses:")
		for _, m := range rec.Verses {
			fmt.Fprintf(w, "    * %s\n", m.Verse)
		}
	}
}
