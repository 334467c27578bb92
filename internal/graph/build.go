package graph

import (
	"fmt"

	"github.com/nvandessel/emograph/internal/lexicon"
)

// Build clears the graph and repopulates it from lex: emotion nodes first,
// then each emotion's keywords with their keyword-emotion edges and index
// entries, then the curated bridges, then the lexicon's priorities.
//
// An invalid lexicon is an error and leaves the graph untouched. Emotions that
// end up disconnected from each other are reported as warnings.
func (g *Graph) Build(lex *lexicon.Lexicon) ([]Warning, error) {
	if err := lex.Validate(); err != nil {
		return nil, fmt.Errorf("building graph: %w", err)
	}

	g.mu.Lock()
	g.reset()

	for _, e := range lex.Emotions {
		g.addNode(e.Name)
	}

	for _, e := range lex.Emotions {
		g.indexEmotion(e.Name)
		for _, kw := range e.Keywords {
			g.addNode(kw.Keyword)
			g.addEdge(kw.Keyword, e.Name, kw.Weight)
			g.indexKeyword(e.Name, kw.Keyword)
		}
	}

	for _, b := range lex.Bridges {
		g.addEdge(b.From, b.To, b.Weight)
	}

	for id, p := range lex.Priorities {
		g.priorities[id] = p
	}

	warnings := g.disconnectedEmotions()
	nodes, edges := len(g.nodes), g.edges
	g.mu.Unlock()

	g.logger.Debug("emotion graph built",
		"lexicon_version", lex.Version,
		"nodes", nodes,
		"edges", edges,
		"emotions", len(lex.Emotions),
		"warnings", len(warnings),
	)

	return warnings, nil
}

// BuildDefault builds the graph from the built-in lexicon.
func (g *Graph) BuildDefault() []Warning {
	warnings, err := g.Build(lexicon.Default())
	if err != nil {
		// The built-in lexicon is covered by tests; failing here is a programming error.
		panic(fmt.Sprintf("graph: default lexicon rejected: %v", err))
	}
	return warnings
}

// NewDefault returns a graph built from the built-in lexicon.
func NewDefault(opts ...Option) *Graph {
	g := New(opts...)
	g.BuildDefault()
	return g
}

func (g *Graph) indexEmotion(emotion string) {
	if _, ok := g.keywords[emotion]; ok {
		return
	}
	g.keywords[emotion] = []string{}
	g.emotions = append(g.emotions, emotion)
}

func (g *Graph) indexKeyword(emotion, keyword string) {
	for _, existing := range g.keywords[emotion] {
		if existing == keyword {
			return
		}
	}
	g.keywords[emotion] = append(g.keywords[emotion], keyword)
}
