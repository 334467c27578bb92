// Package ranking ranks emotion nodes for a piece of text by running an
// adaptive-cost relaxation traversal over the emotion graph.
//
// The traversal is Dijkstra-shaped (min-heap, lazy deletion, each node
// expanded once) but edge costs are recomputed from the query's intensity,
// tone and priority signals every time an edge is relaxed, and a cutoff that
// scales inversely with input strength bounds how far the search reaches. It
// is a ranking heuristic, not an exact shortest-path solver.
//
// Cost model, per relaxed edge u->n with base weight w:
//
//	dynamic = w / (max(intensity[n] or 1, 0.1) + tone[n] + 1e-6)
//	        * (1 / max(0.01, priority[n]) if set)
//	        * (1.5 if n is among the last 3 nodes of the path to u, else 1)
//
// Seeds start at 1 / (max(intensity, 0.1) + 1e-6). Emotions reached within
// 100 / (avgIntensity + avgTone + 1e-3) are scored 1 / (cost + 1e-6).
package ranking

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/nvandessel/emograph/internal/graph"
)

// ScoredEmotion is one ranked emotion.
type ScoredEmotion struct {
	Emotion string   `json:"emotion"`
	Score   float64  `json:"score"`
	Cost    float64  `json:"cost"`
	Path    []string `json:"path,omitempty"`
}

// Query is a single ranking request.
type Query struct {
	// Intensity maps tokens to emotional intensity. Tokens that are graph
	// nodes seed the traversal.
	Intensity map[string]float64

	// Tone maps emotions to tone similarity.
	Tone map[string]float64

	// TopK caps the result length. TopK <= 0 yields no results.
	TopK int

	// WithPaths reconstructs the cheapest path to every ranked emotion.
	WithPaths bool
}

// Stats describes the work done by one traversal.
type Stats struct {
	Seeds    int           `json:"seeds"`
	Expanded int           `json:"expanded"`
	Reached  int           `json:"reached"`
	Returned int           `json:"returned"`
	Duration time.Duration `json:"duration"`
}

// Result is the outcome of Rank.
type Result struct {
	Emotions    []ScoredEmotion `json:"emotions"`
	MaxPathCost float64         `json:"max_path_cost"`
	Stats       Stats           `json:"stats"`
}

// Observer receives traversal statistics after every Rank call.
type Observer interface {
	ObserveRank(stats Stats)
}

// Engine ranks emotions over a graph. It keeps no per-query state and is
// safe for concurrent use.
type Engine struct {
	graph    *graph.Graph
	config   Config
	logger   *slog.Logger
	observer Observer
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig overrides the cost model. Unset fields keep their defaults;
// a zero ContextWindow disables the repeat penalty.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.config = cfg.normalize()
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithObserver registers an observer for traversal statistics.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// NewEngine creates an engine over g.
func NewEngine(g *graph.Graph, opts ...Option) *Engine {
	e := &Engine{
		graph:  g,
		config: DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine's cost model.
func (e *Engine) Config() Config {
	return e.config
}

// RankEmotions returns up to topK emotions ordered by descending score.
// Equal scores keep discovery order.
func (e *Engine) RankEmotions(intensity, tone map[string]float64, topK int) []ScoredEmotion {
	res, err := e.Rank(context.Background(), Query{Intensity: intensity, Tone: tone, TopK: topK})
	if err != nil {
		// Only cancellation can fail, and the background context is never cancelled.
		return []ScoredEmotion{}
	}
	return res.Emotions
}

// Rank runs one traversal. The graph is read-locked for its duration. The
// only error is ctx's, checked between queue pops.
func (e *Engine) Rank(ctx context.Context, q Query) (*Result, error) {
	var res *Result
	var err error
	e.graph.Read(func(v graph.View) {
		res, err = e.RankView(ctx, v, q)
	})
	return res, err
}

// RankView is Rank over a view the caller already holds, so inputs derived
// from the same view (such as tone) and the traversal see one graph state.
func (e *Engine) RankView(ctx context.Context, v graph.View, q Query) (*Result, error) {
	start := time.Now()

	res, err := e.traverse(ctx, v, q)
	if err != nil {
		return nil, err
	}

	res.Stats.Duration = time.Since(start)
	res.Stats.Returned = len(res.Emotions)

	e.logger.DebugContext(ctx, "ranked emotions",
		"seeds", res.Stats.Seeds,
		"expanded", res.Stats.Expanded,
		"reached", res.Stats.Reached,
		"returned", res.Stats.Returned,
		"max_path_cost", res.MaxPathCost,
	)
	if e.observer != nil {
		e.observer.ObserveRank(res.Stats)
	}
	return res, nil
}

// MaxPathCost returns the adaptive cutoff for the given inputs.
func (e *Engine) MaxPathCost(intensity, tone map[string]float64) float64 {
	return e.config.CutoffScale / (mean(intensity) + mean(tone) + e.config.CutoffEpsilon)
}

// best is the lowest known cost for a node and the arena step reaching it.
type best struct {
	cost float64
	step int
}

type traversal struct {
	view    graph.View
	cfg     Config
	q       Query
	arena   pathArena
	queue   *minQueue
	best    map[string]best
	order   []string // discovery order
	visited map[string]bool
}

func (e *Engine) traverse(ctx context.Context, v graph.View, q Query) (*Result, error) {
	res := &Result{
		Emotions:    []ScoredEmotion{},
		MaxPathCost: e.MaxPathCost(q.Intensity, q.Tone),
	}
	if q.TopK <= 0 || len(q.Intensity) == 0 {
		return res, nil
	}

	t := &traversal{
		view:    v,
		cfg:     e.config,
		q:       q,
		queue:   newMinQueue(),
		best:    make(map[string]best),
		visited: make(map[string]bool),
	}

	// Seed in sorted token order so ties resolve identically on every run.
	for _, token := range sortedKeys(q.Intensity) {
		if !v.HasNode(token) {
			continue
		}
		cost := 1 / (math.Max(q.Intensity[token], t.cfg.MinIntensity) + t.cfg.Epsilon)
		t.record(token, cost, noParent)
		res.Stats.Seeds++
	}

	for !t.queue.empty() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item, _ := t.queue.pop()
		node := t.arena.node(item.step)
		if t.visited[node] {
			continue
		}
		t.visited[node] = true

		if item.cost > res.MaxPathCost {
			continue
		}
		res.Stats.Expanded++
		t.relax(item)
	}

	res.Stats.Reached = len(t.order)
	res.Emotions = t.extract(res.MaxPathCost, q.TopK, q.WithPaths)
	return res, nil
}

// record stores an improved cost for node and queues it.
func (t *traversal) record(node string, cost float64, parent int) {
	if _, seen := t.best[node]; !seen {
		t.order = append(t.order, node)
	}
	s := t.arena.add(node, parent)
	t.best[node] = best{cost: cost, step: s}
	t.queue.push(cost, s)
}

func (t *traversal) relax(item queueItem) {
	from := t.arena.node(item.step)
	for _, edge := range t.view.Neighbors(from) {
		n := edge.To
		if t.visited[n] {
			continue
		}
		cost := item.cost + t.edgeCost(edge, item.step)
		if b, ok := t.best[n]; !ok || cost < b.cost {
			t.record(n, cost, item.step)
		}
	}
}

// edgeCost is the dynamic cost of following edge from the path ending at step.
func (t *traversal) edgeCost(edge graph.Edge, at int) float64 {
	n := edge.To

	intensity := t.cfg.DefaultIntensity
	if v, ok := t.q.Intensity[n]; ok {
		intensity = v
	}
	intensity = math.Max(intensity, t.cfg.MinIntensity)

	tone := t.q.Tone[n]

	priorityFactor := 1.0
	if p, ok := t.view.Priority(n); ok {
		priorityFactor = 1 / math.Max(t.cfg.MinPriority, p)
	}

	contextBoost := 1.0
	if t.arena.inSuffix(at, n, t.cfg.ContextWindow) {
		contextBoost += t.cfg.ContextPenalty
	}

	return edge.Weight / (intensity + tone + t.cfg.Epsilon) * priorityFactor * contextBoost
}

// extract scores reached emotions within the cutoff, in discovery order, then
// stable-sorts them by descending score.
func (t *traversal) extract(cutoff float64, topK int, withPaths bool) []ScoredEmotion {
	out := []ScoredEmotion{}
	for _, node := range t.order {
		b := t.best[node]
		if b.cost > cutoff || !t.view.IsEmotion(node) {
			continue
		}
		se := ScoredEmotion{
			Emotion: node,
			Score:   1 / (b.cost + t.cfg.Epsilon),
			Cost:    b.cost,
		}
		if withPaths {
			se.Path = t.arena.path(b.step)
		}
		out = append(out, se)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > topK {
		out = out[:topK]
	}
	return out
}

func mean(m map[string]float64) float64 {
	if len(m) == 0 {
		return 0
	}
	sum := 0.0
	for _, k := range sortedKeys(m) {
		sum += m[k]
	}
	return sum / float64(len(m))
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
