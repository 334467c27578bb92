// Package graph implements the emotion graph: an undirected, weighted
// multigraph over emotion and keyword nodes, together with the
// emotion-keyword index and per-node traversal priorities.
//
// A node is an emotion exactly when it is a key of the emotion-keyword index;
// no separate kind flag is stored.
//
// The graph is safe for concurrent use: reads (including whole ranking
// traversals run through Read) share a lock, writers are exclusive.
package graph

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
)

var (
	// ErrNegativeWeight is returned by AddEdge for weights below zero.
	ErrNegativeWeight = errors.New("negative edge weight")

	// ErrInvalidWeight is returned by AddEdge for NaN or infinite weights.
	ErrInvalidWeight = errors.New("non-finite edge weight")
)

// Edge is one adjacency entry: the neighbor and the base weight of the edge.
type Edge struct {
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Graph is the emotion graph store.
type Graph struct {
	mu sync.RWMutex

	adj   map[string][]Edge // node -> neighbors in insertion order
	nodes []string          // node insertion order
	edges int               // undirected edge count, parallel edges included

	keywords map[string][]string // emotion -> keywords, deduplicated, ordered
	emotions []string            // index key insertion order

	priorities map[string]float64

	logger *slog.Logger
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger sets the logger used for construction diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates an empty graph.
func New(opts ...Option) *Graph {
	g := &Graph{logger: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	g.reset()
	return g
}

// reset clears all state. Caller must hold the write lock (or own g).
func (g *Graph) reset() {
	g.adj = make(map[string][]Edge)
	g.nodes = nil
	g.edges = 0
	g.keywords = make(map[string][]string)
	g.emotions = nil
	g.priorities = make(map[string]float64)
}

// AddNode inserts a node with no neighbors. Re-adding a node is a no-op.
func (g *Graph) AddNode(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNode(id)
}

func (g *Graph) addNode(id string) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.adj[id] = nil
	g.nodes = append(g.nodes, id)
}

// AddEdge inserts an undirected edge, creating missing endpoints. Adding the
// same pair twice creates a parallel edge; it never updates a weight.
func (g *Graph) AddEdge(a, b string, weight float64) error {
	if err := checkWeight(weight); err != nil {
		return fmt.Errorf("edge %s-%s: %w", a, b, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addEdge(a, b, weight)
	return nil
}

func (g *Graph) addEdge(a, b string, weight float64) {
	g.addNode(a)
	g.addNode(b)
	g.adj[a] = append(g.adj[a], Edge{To: b, Weight: weight})
	g.adj[b] = append(g.adj[b], Edge{To: a, Weight: weight})
	g.edges++
}

func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, w)
	}
	if w < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeWeight, w)
	}
	return nil
}

// HasNode reports whether id is a node.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]
	return ok
}

// Nodes returns all node IDs in insertion order.
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]string(nil), g.nodes...)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges, parallel edges included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edges
}

// Emotions returns the emotion-keyword index keys in insertion order.
func (g *Graph) Emotions() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]string(nil), g.emotions...)
}

// IsEmotion reports whether id is a key of the emotion-keyword index.
func (g *Graph) IsEmotion(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.keywords[id]
	return ok
}

// Keywords returns the keywords indexed under emotion.
func (g *Graph) Keywords(emotion string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]string(nil), g.keywords[emotion]...)
}

// Priority returns the priority set for id, if any.
func (g *Graph) Priority(id string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	p, ok := g.priorities[id]
	return p, ok
}

// Read runs fn with a read-only view while holding the read lock, so writers
// cannot interleave with the work done inside fn. The view must not escape fn.
func (g *Graph) Read(fn func(v View)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn(View{g: g})
}

// View is lock-free read access to a graph, valid only inside Graph.Read.
type View struct {
	g *Graph
}

// HasNode reports whether id is a node.
func (v View) HasNode(id string) bool {
	_, ok := v.g.adj[id]
	return ok
}

// Neighbors returns id's adjacency list. The slice must not be modified.
func (v View) Neighbors(id string) []Edge {
	return v.g.adj[id]
}

// IsEmotion reports whether id is a key of the emotion-keyword index.
func (v View) IsEmotion(id string) bool {
	_, ok := v.g.keywords[id]
	return ok
}

// Priority returns the priority set for id, if any.
func (v View) Priority(id string) (float64, bool) {
	p, ok := v.g.priorities[id]
	return p, ok
}

// Keywords returns the keywords indexed under emotion. The slice must not be
// modified.
func (v View) Keywords(emotion string) []string {
	return v.g.keywords[emotion]
}

// KeywordIndex returns the emotion-keyword index. It must not be modified.
func (v View) KeywordIndex() map[string][]string {
	return v.g.keywords
}
