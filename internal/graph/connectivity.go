package graph

import (
	"fmt"
	"strings"
)

// Stats summarizes the graph shape.
type Stats struct {
	Nodes      int `json:"nodes"`
	Edges      int `json:"edges"`
	Emotions   int `json:"emotions"`
	Keywords   int `json:"keywords"`
	Components int `json:"components"`
	Islands    int `json:"islands"` // nodes without any edge
}

// Stats computes node, edge and component counts.
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{
		Nodes:      len(g.nodes),
		Edges:      g.edges,
		Emotions:   len(g.emotions),
		Components: len(g.components()),
	}
	for _, id := range g.nodes {
		if _, ok := g.keywords[id]; !ok {
			s.Keywords++
		}
		if len(g.adj[id]) == 0 {
			s.Islands++
		}
	}
	return s
}

// Components returns the connected components. Components are ordered by
// their first node's insertion order and list nodes in breadth-first order.
func (g *Graph) Components() [][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.components()
}

// Connected reports whether every emotion can reach every other emotion.
func (g *Graph) Connected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.disconnectedEmotions()) == 0
}

func (g *Graph) components() [][]string {
	seen := make(map[string]bool, len(g.nodes))
	var out [][]string
	for _, start := range g.nodes {
		if seen[start] {
			continue
		}
		seen[start] = true
		comp := []string{start}
		for i := 0; i < len(comp); i++ {
			for _, e := range g.adj[comp[i]] {
				if !seen[e.To] {
					seen[e.To] = true
					comp = append(comp, e.To)
				}
			}
		}
		out = append(out, comp)
	}
	return out
}

// disconnectedEmotions reports emotions outside the component of the first
// emotion. Caller must hold a lock.
func (g *Graph) disconnectedEmotions() []Warning {
	if len(g.emotions) < 2 {
		return nil
	}

	componentOf := make(map[string]int, len(g.nodes))
	for i, comp := range g.components() {
		for _, id := range comp {
			componentOf[id] = i
		}
	}

	first := g.emotions[0]
	anchor, ok := componentOf[first]
	if !ok {
		anchor = -1
	}

	var stray []string
	for _, emotion := range g.emotions[1:] {
		c, ok := componentOf[emotion]
		if !ok || c != anchor {
			stray = append(stray, emotion)
		}
	}
	if len(stray) == 0 {
		return nil
	}

	warnings := make([]Warning, 0, len(stray))
	for _, emotion := range stray {
		warnings = append(warnings, Warning{
			Kind:    WarnDisconnected,
			Key:     emotion,
			Message: fmt.Sprintf("emotion %q is not connected to %q", emotion, first),
		})
	}
	return warnings
}

// DescribeComponents renders components for diagnostics, one per line.
func DescribeComponents(components [][]string) string {
	var b strings.Builder
	for i, comp := range components {
		fmt.Fprintf(&b, "%d: %s\n", i+1, strings.Join(comp, ", "))
	}
	return b.String()
}
