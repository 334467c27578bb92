// Package mcp exposes the emotion pipeline as Model Context Protocol tools
// served over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nvandessel/emograph/internal/advisor"
	"github.com/nvandessel/emograph/internal/ranking"
	"github.com/nvandessel/emograph/internal/sanitize"
	"github.com/nvandessel/emograph/internal/verses"
)

// Tool names.
const (
	ToolAnalyze = "emograph_analyze"
	ToolRank    = "emograph_rank"
	ToolVerses  = "emograph_verses"
)

// MaxTopK bounds the top_k a client may request from emograph_rank.
const MaxTopK = 50

// Config configures a Server.
type Config struct {
	Name    string
	Version string

	// Advisor runs the pipeline. Required.
	Advisor *advisor.Advisor

	Logger *slog.Logger
}

// Server is an MCP server over an advisor.
type Server struct {
	server  *sdk.Server
	advisor *advisor.Advisor
	engine  *ranking.Engine
	logger  *slog.Logger
}

// NewServer creates a server and registers its tools.
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil || cfg.Advisor == nil {
		return nil, errors.New("mcp: advisor is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		server: sdk.NewServer(&sdk.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		}, nil),
		advisor: cfg.Advisor,
		engine:  cfg.Advisor.Engine(),
		logger:  logger,
	}
	s.registerTools()
	return s, nil
}

// Run serves over stdio until the client disconnects or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server starting", "transport", "stdio")
	return s.server.Run(ctx, &sdk.StdioTransport{})
}

func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        ToolAnalyze,
		Description: "Detect the emotions expressed in a short piece of text and suggest verses for each",
	}, s.handleAnalyze)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        ToolRank,
		Description: "Rank emotions directly from per-word intensity and per-emotion tone scores",
	}, s.handleRank)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        ToolVerses,
		Description: "Recommend verses for an emotion, optionally matched against free text",
	}, s.handleVerses)
}

// AnalyzeInput is the input of emograph_analyze.
type AnalyzeInput struct {
	Text string `json:"text" jsonschema:"Free text describing how the user feels"`
}

func (s *Server) handleAnalyze(ctx context.Context, _ *sdk.CallToolRequest, in AnalyzeInput) (*sdk.CallToolResult, advisor.Report, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, advisor.Report{}, errors.New("text is required")
	}

	report, err := s.advisor.Advise(ctx, in.Text)
	if err != nil {
		return nil, advisor.Report{}, err
	}
	s.logger.Debug("tool call", "tool", ToolAnalyze, "request_id", report.RequestID)
	return nil, *report, nil
}

// RankInput is the input of emograph_rank.
type RankInput struct {
	Intensity map[string]float64 `json:"intensity" jsonschema:"Intensity per word; words that are graph nodes seed the search"`
	Tone      map[string]float64 `json:"tone,omitempty" jsonschema:"Tone similarity per emotion, roughly 0 to 3"`
	TopK      int                `json:"top_k,omitempty" jsonschema:"Maximum number of emotions to return (default 3)"`
	WithPaths bool               `json:"with_paths,omitempty" jsonschema:"Include the cheapest graph path to each emotion"`
}

// RankOutput is the output of emograph_rank.
type RankOutput struct {
	Emotions    []ranking.ScoredEmotion `json:"emotions"`
	MaxPathCost float64                 `json:"max_path_cost"`
	Stats       ranking.Stats           `json:"stats"`
}

func (s *Server) handleRank(ctx context.Context, _ *sdk.CallToolRequest, in RankInput) (*sdk.CallToolResult, RankOutput, error) {
	if err := ranking.ValidateScores("intensity", in.Intensity); err != nil {
		return nil, RankOutput{}, err
	}
	if err := ranking.ValidateScores("tone", in.Tone); err != nil {
		return nil, RankOutput{}, err
	}

	topK := in.TopK
	switch {
	case topK == 0:
		topK = advisor.DefaultTopK
	case topK < 0 || topK > MaxTopK:
		return nil, RankOutput{}, fmt.Errorf("top_k must be between 1 and %d, got %d", MaxTopK, topK)
	}

	intensity, err := normalizeKeys("intensity", in.Intensity)
	if err != nil {
		return nil, RankOutput{}, err
	}
	tone, err := normalizeKeys("tone", in.Tone)
	if err != nil {
		return nil, RankOutput{}, err
	}

	res, err := s.engine.Rank(ctx, ranking.Query{
		Intensity: intensity,
		Tone:      tone,
		TopK:      topK,
		WithPaths: in.WithPaths,
	})
	if err != nil {
		return nil, RankOutput{}, err
	}
	return nil, RankOutput{
		Emotions:    res.Emotions,
		MaxPathCost: res.MaxPathCost,
		Stats:       res.Stats,
	}, nil
}

// VersesInput is the input of emograph_verses.
type VersesInput struct {
	Emotion string `json:"emotion" jsonschema:"Emotion name, e.g. anxiety"`
	Text    string `json:"text,omitempty" jsonschema:"Optional text to match verses against"`
}

// VersesOutput is the output of emograph_verses.
type VersesOutput struct {
	Emotion string         `json:"emotion"`
	Verses  []verses.Match `json:"verses"`
}

func (s *Server) handleVerses(_ context.Context, _ *sdk.CallToolRequest, in VersesInput) (*sdk.CallToolResult, VersesOutput, error) {
	emotion := sanitize.Term(in.Emotion)
	if emotion == "" {
		return nil, VersesOutput{}, errors.New("emotion is required")
	}

	matches := s.advisor.Verses(emotion, in.Text)
	if len(matches) == 0 {
		return nil, VersesOutput{}, fmt.Errorf("no verses for emotion %q", emotion)
	}
	return nil, VersesOutput{Emotion: emotion, Verses: matches}, nil
}

// normalizeKeys sanitizes client-supplied node names. Keys that sanitize to
// the same name are rejected.
func normalizeKeys(name string, m map[string]float64) (map[string]float64, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[string]float64, len(m))
	from := make(map[string]string, len(m))
	for _, k := range sortedKeys(m) {
		key := sanitize.Term(k)
		if key == "" {
			continue
		}
		if prev, ok := from[key]; ok {
			return nil, fmt.Errorf("%s keys %q and %q both name %q", name, prev, k, key)
		}
		from[key] = k
		out[key] = m[k]
	}
	return out, nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
