package graph

import (
	"fmt"
	"log/slog"
)

// WarningKind classifies a non-fatal configuration problem.
type WarningKind string

const (
	// WarnUnknownNode: a priority was set for a node that is not in the graph.
	WarnUnknownNode WarningKind = "unknown-node"

	// WarnUnknownEmotion: keywords were set for an emotion that is not in the graph.
	WarnUnknownEmotion WarningKind = "unknown-emotion"

	// WarnMissingKeyword: an indexed keyword is not a node of the graph.
	WarnMissingKeyword WarningKind = "missing-keyword"

	// WarnDisconnected: an emotion cannot reach the other emotions.
	WarnDisconnected WarningKind = "disconnected"
)

// Warning is a non-fatal diagnostic. The operation that produced it still
// took effect.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Key     string      `json:"key"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

// LogWarnings writes each warning to logger at warn level.
func LogWarnings(logger *slog.Logger, warnings []Warning) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, w := range warnings {
		logger.Warn(w.Message, "kind", string(w.Kind), "key", w.Key)
	}
}
