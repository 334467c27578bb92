package graph

import (
	"fmt"
	"sort"
)

// SetPriorities upserts traversal priorities. A priority for a node that is
// not in the graph is stored anyway and reported as a warning.
func (g *Graph) SetPriorities(priorities map[string]float64) []Warning {
	g.mu.Lock()
	defer g.mu.Unlock()

	var warnings []Warning
	for _, id := range sortedKeys(priorities) {
		if _, ok := g.adj[id]; !ok {
			warnings = append(warnings, Warning{
				Kind:    WarnUnknownNode,
				Key:     id,
				Message: fmt.Sprintf("priority set for %q, which is not in the graph", id),
			})
		}
		g.priorities[id] = priorities[id]
	}
	return warnings
}

// SetKeywords upserts emotion-keyword index entries, replacing the keyword set
// of every emotion named in keywords. Unknown emotions and keywords that are
// not graph nodes are stored anyway and reported as warnings; an unknown
// emotion still becomes an emotion for ranking purposes.
func (g *Graph) SetKeywords(keywords map[string][]string) []Warning {
	g.mu.Lock()
	defer g.mu.Unlock()

	var warnings []Warning
	for _, emotion := range sortedKeys(keywords) {
		if _, ok := g.adj[emotion]; !ok {
			warnings = append(warnings, Warning{
				Kind:    WarnUnknownEmotion,
				Key:     emotion,
				Message: fmt.Sprintf("keywords set for emotion %q, which is not in the graph", emotion),
			})
		}

		g.indexEmotion(emotion)
		g.keywords[emotion] = []string{}
		for _, kw := range keywords[emotion] {
			if _, ok := g.adj[kw]; !ok {
				warnings = append(warnings, Warning{
					Kind:    WarnMissingKeyword,
					Key:     kw,
					Message: fmt.Sprintf("keyword %q of emotion %q is not in the graph", kw, emotion),
				})
			}
			g.indexKeyword(emotion, kw)
		}
	}
	return warnings
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
