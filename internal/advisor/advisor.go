// Package advisor runs the full text-to-recommendation pipeline: analyze a
// line of text, rank the emotions it expresses over the emotion graph, and
// pick matching verses for each ranked emotion.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nvandessel/emograph/internal/analysis"
	"github.com/nvandessel/emograph/internal/graph"
	"github.com/nvandessel/emograph/internal/ranking"
	"github.com/nvandessel/emograph/internal/similarity"
	"github.com/nvandessel/emograph/internal/telemetry"
	"github.com/nvandessel/emograph/internal/verses"
)

// DefaultTopK is how many emotions a report carries unless configured.
const DefaultTopK = 3

// ErrEmptyText is returned when the text has nothing left to analyze after
// sanitization.
var ErrEmptyText = errors.New("no text to analyze")

// Recommendation is one ranked emotion with its verses.
type Recommendation struct {
	Emotion string         `json:"emotion"`
	Score   float64        `json:"score"`
	Cost    float64        `json:"cost"`
	Path    []string       `json:"path,omitempty"`
	Verses  []verses.Match `json:"verses"`
}

// Report is the result of one Advise call.
type Report struct {
	RequestID   string             `json:"request_id"`
	Text        string             `json:"text"`
	Tokens      []string           `json:"tokens"`
	Intensity   map[string]float64 `json:"intensity"`
	Tone        map[string]float64 `json:"tone"`
	MaxPathCost float64            `json:"max_path_cost"`
	Emotions    []Recommendation   `json:"emotions"`
	Stats       ranking.Stats      `json:"stats"`
}

// Advisor wires analysis, ranking and verse retrieval together.
type Advisor struct {
	graph   *graph.Graph
	engine  *ranking.Engine
	verses  *verses.Mapper
	topK    int
	paths   bool
	source  string
	logger  *slog.Logger
	metrics *telemetry.Metrics
	rankCfg *ranking.Config
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithTopK sets how many emotions a report carries.
func WithTopK(k int) Option {
	return func(a *Advisor) {
		if k > 0 {
			a.topK = k
		}
	}
}

// WithPaths includes the cheapest graph path to every ranked emotion.
func WithPaths(enabled bool) Option {
	return func(a *Advisor) {
		a.paths = enabled
	}
}

// WithVerses replaces the built-in verse table.
func WithVerses(m *verses.Mapper) Option {
	return func(a *Advisor) {
		if m != nil {
			a.verses = m
		}
	}
}

// WithRankingConfig overrides the ranking cost model.
func WithRankingConfig(cfg ranking.Config) Option {
	return func(a *Advisor) {
		a.rankCfg = &cfg
	}
}

// WithLogger sets the logger used by the advisor and its ranking engine.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Advisor) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithMetrics records pipeline metrics, labelling requests with source.
func WithMetrics(m *telemetry.Metrics, source string) Option {
	return func(a *Advisor) {
		a.metrics = m
		a.source = source
	}
}

// New creates an advisor over g.
func New(g *graph.Graph, opts ...Option) *Advisor {
	a := &Advisor{
		graph:  g,
		topK:   DefaultTopK,
		source: "cli",
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.verses == nil {
		a.verses = verses.NewDefaultMapper()
	}

	engineOpts := []ranking.Option{ranking.WithLogger(a.logger)}
	if a.metrics != nil {
		engineOpts = append(engineOpts, ranking.WithObserver(a.metrics))
	}
	if a.rankCfg != nil {
		engineOpts = append(engineOpts, ranking.WithConfig(*a.rankCfg))
	}
	a.engine = ranking.NewEngine(g, engineOpts...)
	return a
}

// Engine returns the ranking engine used by the advisor.
func (a *Advisor) Engine() *ranking.Engine {
	return a.engine
}

// Advise analyzes text and returns the top emotions with verses.
func (a *Advisor) Advise(ctx context.Context, text string) (*Report, error) {
	an := analysis.Analyze(text)
	if len(an.Tokens) == 0 {
		return nil, ErrEmptyText
	}
	a.metrics.RecordAdvice(a.source)

	requestID := uuid.NewString()
	logger := a.logger.With("request_id", requestID)

	var (
		tone     map[string]float64
		res      *ranking.Result
		err      error
		keywords = make(map[string][]string)
	)
	a.graph.Read(func(v graph.View) {
		tone = similarity.Tone(an.Tokens, v.KeywordIndex())
		res, err = a.engine.RankView(ctx, v, ranking.Query{
			Intensity: an.Intensity,
			Tone:      tone,
			TopK:      a.topK,
			WithPaths: a.paths,
		})
		if err != nil {
			return
		}
		for _, se := range res.Emotions {
			keywords[se.Emotion] = append([]string(nil), v.Keywords(se.Emotion)...)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("ranking emotions: %w", err)
	}

	report := &Report{
		RequestID:   requestID,
		Text:        an.Text,
		Tokens:      an.Tokens,
		Intensity:   an.Intensity,
		Tone:        tone,
		MaxPathCost: res.MaxPathCost,
		Emotions:    make([]Recommendation, 0, len(res.Emotions)),
		Stats:       res.Stats,
	}
	for _, se := range res.Emotions {
		report.Emotions = append(report.Emotions, Recommendation{
			Emotion: se.Emotion,
			Score:   se.Score,
			Cost:    se.Cost,
			Path:    se.Path,
			Verses:  a.verses.Recommend(se.Emotion, an.Tokens, keywords[se.Emotion]),
		})
	}

	logger.InfoContext(ctx, "advice ready",
		"tokens", len(an.Tokens),
		"emotions", len(report.Emotions),
		"max_path_cost", report.MaxPathCost,
	)
	return report, nil
}

// Verses recommends verses for emotion given free text.
func (a *Advisor) Verses(emotion, text string) []verses.Match {
	an := analysis.Analyze(text)
	return a.verses.Recommend(emotion, an.Tokens, a.graph.Keywords(emotion))
}
