package ranking

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvandessel/emograph/internal/graph"
)

func emotionsOf(ranked []ScoredEmotion) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Emotion
	}
	return out
}

// markEmotions makes the given nodes emotions with empty keyword sets.
func markEmotions(g *graph.Graph, emotions ...string) {
	kws := make(map[string][]string, len(emotions))
	for _, e := range emotions {
		kws[e] = nil
	}
	g.SetKeywords(kws)
}

func TestRankEmotions_Worried(t *testing.T) {
	e := NewEngine(graph.NewDefault())

	res, err := e.Rank(context.Background(), Query{
		Intensity: map[string]float64{"worried": 2.0},
		TopK:      3,
		WithPaths: true,
	})
	require.NoError(t, err)
	require.Len(t, res.Emotions, 3)

	assert.Equal(t, []string{"anxiety", "fear", "sadness"}, emotionsOf(res.Emotions))
	assert.InDelta(t, 1.5, res.Emotions[0].Cost, 1e-4)
	assert.InDelta(t, 2.7, res.Emotions[1].Cost, 1e-4)
	assert.InDelta(t, 4.0, res.Emotions[2].Cost, 1e-4)
	assert.InDelta(t, 1/1.5, res.Emotions[0].Score, 1e-4)

	assert.Equal(t, []string{"worried", "anxiety"}, res.Emotions[0].Path)
	assert.Equal(t, []string{"worried", "nervous", "fear"}, res.Emotions[1].Path)
	assert.Equal(t, []string{"worried", "anxiety", "sadness"}, res.Emotions[2].Path)

	assert.InDelta(t, 100/2.001, res.MaxPathCost, 1e-9)
	assert.Equal(t, 1, res.Stats.Seeds)
	assert.Equal(t, 3, res.Stats.Returned)
}

func TestRankEmotions_AllEmotionsReachable(t *testing.T) {
	e := NewEngine(graph.NewDefault())

	ranked := e.RankEmotions(map[string]float64{"worried": 2.0}, nil, 10)
	assert.Equal(t,
		[]string{"anxiety", "fear", "sadness", "anger", "guilt", "love", "joy"},
		emotionsOf(ranked))
	for _, r := range ranked {
		assert.Nil(t, r.Path)
	}
}

func TestRankEmotions_OrderingAndBounds(t *testing.T) {
	e := NewEngine(graph.NewDefault())
	inputs := []map[string]float64{
		{"worried": 2.0},
		{"sad": 1.5, "lonely": 0.7},
		{"angry": -1.0, "happy": 0.3},
		{"terrified": 3.0, "crying": 1.2, "sorry": 0.4},
	}

	for _, intensity := range inputs {
		for _, k := range []int{1, 2, 5, 10} {
			ranked := e.RankEmotions(intensity, nil, k)
			assert.LessOrEqual(t, len(ranked), k)

			seen := make(map[string]bool)
			for i, r := range ranked {
				assert.False(t, seen[r.Emotion], "duplicate %s", r.Emotion)
				seen[r.Emotion] = true
				assert.Positive(t, r.Score)
				if i > 0 {
					assert.GreaterOrEqual(t, ranked[i-1].Score, r.Score)
				}
			}
		}
	}
}

func TestRankEmotions_Deterministic(t *testing.T) {
	e := NewEngine(graph.NewDefault())
	intensity := map[string]float64{"sad": 1.0, "angry": 1.0, "happy": 1.0, "worried": 1.0}
	tone := map[string]float64{"joy": 0.5, "anger": 0.5}

	first := e.RankEmotions(intensity, tone, 7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, e.RankEmotions(intensity, tone, 7))
	}
}

func TestRankEmotions_TiesKeepDiscoveryOrder(t *testing.T) {
	tests := []struct {
		name  string
		edges [][2]string
		want  []string
	}{
		{"e1 first", [][2]string{{"s", "e1"}, {"s", "e2"}}, []string{"e1", "e2"}},
		{"e2 first", [][2]string{{"s", "e2"}, {"s", "e1"}}, []string{"e2", "e1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graph.New()
			for _, edge := range tt.edges {
				require.NoError(t, g.AddEdge(edge[0], edge[1], 1))
			}
			markEmotions(g, "e1", "e2")

			ranked := NewEngine(g).RankEmotions(map[string]float64{"s": 1}, nil, 5)
			require.Len(t, ranked, 2)
			assert.Equal(t, ranked[0].Score, ranked[1].Score)
			assert.Equal(t, tt.want, emotionsOf(ranked))
		})
	}
}

func TestRankEmotions_SeedIntensityIsMonotonic(t *testing.T) {
	e := NewEngine(graph.NewDefault())

	prev := 0.0
	for _, i := range []float64{0.05, 0.5, 1, 2, 4} {
		ranked := e.RankEmotions(map[string]float64{"anxiety": i}, nil, 1)
		require.Len(t, ranked, 1)
		assert.Equal(t, "anxiety", ranked[0].Emotion)
		assert.GreaterOrEqual(t, ranked[0].Score, prev)
		prev = ranked[0].Score
	}

	// Intensities below the floor seed at the same cost.
	low := e.RankEmotions(map[string]float64{"anxiety": 0.01}, nil, 1)
	floor := e.RankEmotions(map[string]float64{"anxiety": 0.1}, nil, 1)
	require.Len(t, low, 1)
	require.Len(t, floor, 1)
	assert.Equal(t, floor[0].Cost, low[0].Cost)
}

func TestRankEmotions_CutoffShrinksWithInputStrength(t *testing.T) {
	e := NewEngine(graph.NewDefault())

	tests := []struct {
		worried float64
		want    int
	}{
		{1, 7},
		{10, 7},
		{40, 2},
		{100, 0},
	}
	prevCutoff := math.Inf(1)
	for _, tt := range tests {
		intensity := map[string]float64{"worried": tt.worried}
		res, err := e.Rank(context.Background(), Query{Intensity: intensity, TopK: 10})
		require.NoError(t, err)

		assert.Len(t, res.Emotions, tt.want, "worried=%v", tt.worried)
		assert.Less(t, res.MaxPathCost, prevCutoff)
		prevCutoff = res.MaxPathCost
	}

	base := e.MaxPathCost(map[string]float64{"a": 1}, map[string]float64{"x": 1})
	doubled := e.MaxPathCost(map[string]float64{"a": 2}, map[string]float64{"x": 2})
	assert.Less(t, doubled, base)
}

func TestRankEmotions_EmptyResults(t *testing.T) {
	e := NewEngine(graph.NewDefault())

	tests := []struct {
		name      string
		intensity map[string]float64
		topK      int
	}{
		{"nil intensity", nil, 5},
		{"empty intensity", map[string]float64{}, 5},
		{"unknown tokens only", map[string]float64{"zzz": 1, "qqq": 2}, 5},
		{"zero topK", map[string]float64{"worried": 1}, 0},
		{"negative topK", map[string]float64{"worried": 1}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := e.RankEmotions(tt.intensity, map[string]float64{"joy": 1}, tt.topK)
			assert.NotNil(t, ranked)
			assert.Empty(t, ranked)
		})
	}
}

func TestRankEmotions_EmptyGraph(t *testing.T) {
	ranked := NewEngine(graph.New()).RankEmotions(map[string]float64{"worried": 1}, nil, 3)
	assert.Empty(t, ranked)
}

func TestRankEmotions_NothingReachable(t *testing.T) {
	g := graph.New()
	g.AddNode("lonely")
	require.NoError(t, g.AddEdge("x", "e", 1))
	markEmotions(g, "e")

	assert.Empty(t, NewEngine(g).RankEmotions(map[string]float64{"lonely": 1}, nil, 3))
}

func TestRankEmotions_ParallelEdgesTakeCheapest(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("a", "b", 5))
	require.NoError(t, g.AddEdge("a", "b", 1))
	markEmotions(g, "b")

	ranked := NewEngine(g).RankEmotions(map[string]float64{"a": 1}, nil, 1)
	require.Len(t, ranked, 1)
	assert.Equal(t, "b", ranked[0].Emotion)
	assert.InDelta(t, 2.0, ranked[0].Cost, 1e-4)
}

func TestRankEmotions_SeedEmotionRanksItself(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("joy", "happy", 1))
	markEmotions(g, "joy")

	ranked := NewEngine(g).RankEmotions(map[string]float64{"joy": 1}, nil, 1)
	require.Len(t, ranked, 1)
	assert.Equal(t, "joy", ranked[0].Emotion)
	assert.InDelta(t, 1.0, ranked[0].Cost, 1e-4)
}

func TestRankEmotions_PriorityReordersResults(t *testing.T) {
	g := graph.NewDefault()
	e := NewEngine(g)
	intensity := map[string]float64{"worried": 2.0}

	require.Equal(t, "anxiety", e.RankEmotions(intensity, nil, 1)[0].Emotion)

	assert.Empty(t, g.SetPriorities(map[string]float64{"anxiety": 0.1}))
	ranked := e.RankEmotions(intensity, nil, 2)
	assert.Equal(t, []string{"fear", "anger"}, emotionsOf(ranked))
	assert.InDelta(t, 5.7, ranked[1].Cost, 1e-4)

	all := e.RankEmotions(intensity, nil, 7)
	var anxiety *ScoredEmotion
	for i := range all {
		if all[i].Emotion == "anxiety" {
			anxiety = &all[i]
		}
	}
	require.NotNil(t, anxiety)
	assert.InDelta(t, 10.5, anxiety.Cost, 1e-4)
}

func TestRankEmotions_ToneLowersCost(t *testing.T) {
	e := NewEngine(graph.NewDefault())
	intensity := map[string]float64{"worried": 2.0}

	without := e.RankEmotions(intensity, nil, 7)
	with := e.RankEmotions(intensity, map[string]float64{"sadness": 2}, 7)

	cost := func(ranked []ScoredEmotion, emotion string) float64 {
		for _, r := range ranked {
			if r.Emotion == emotion {
				return r.Cost
			}
		}
		t.Fatalf("%s not ranked", emotion)
		return 0
	}
	assert.Less(t, cost(with, "sadness"), cost(without, "sadness"))
}

func TestRank_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := NewEngine(graph.NewDefault()).Rank(ctx, Query{
		Intensity: map[string]float64{"worried": 1},
		TopK:      3,
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestRankView_MatchesRank(t *testing.T) {
	g := graph.NewDefault()
	e := NewEngine(g)
	q := Query{
		Intensity: map[string]float64{"worried": 2.0},
		TopK:      7,
		WithPaths: true,
	}

	want, err := e.Rank(context.Background(), q)
	require.NoError(t, err)

	var got *Result
	g.Read(func(v graph.View) {
		got, err = e.RankView(context.Background(), v, q)
	})
	require.NoError(t, err)
	assert.Equal(t, want.Emotions, got.Emotions)
	assert.Equal(t, want.MaxPathCost, got.MaxPathCost)
}

type recordingObserver struct {
	stats []Stats
}

func (r *recordingObserver) ObserveRank(s Stats) {
	r.stats = append(r.stats, s)
}

func TestRank_NotifiesObserver(t *testing.T) {
	obs := &recordingObserver{}
	e := NewEngine(graph.NewDefault(), WithObserver(obs))

	e.RankEmotions(map[string]float64{"worried": 2.0}, nil, 3)
	e.RankEmotions(nil, nil, 3)

	require.Len(t, obs.stats, 2)
	assert.Equal(t, 1, obs.stats[0].Seeds)
	assert.Equal(t, 3, obs.stats[0].Returned)
	assert.Positive(t, obs.stats[0].Expanded)
	assert.GreaterOrEqual(t, obs.stats[0].Reached, obs.stats[0].Expanded)
	assert.Zero(t, obs.stats[1].Returned)
}

func TestEdgeCost(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("a", "b", 2))
	assert.Empty(t, g.SetPriorities(map[string]float64{"b": 0.5}))

	cfg := DefaultConfig()
	g.Read(func(v graph.View) {
		tr := &traversal{
			view: v,
			cfg:  cfg,
			q: Query{
				Intensity: map[string]float64{"b": 0.01},
				Tone:      map[string]float64{"b": 0.4},
			},
		}
		root := tr.arena.add("a", noParent)
		// 2 / (0.1 + 0.4) * (1 / 0.5)
		assert.InDelta(t, 8.0, tr.edgeCost(graph.Edge{To: "b", Weight: 2}, root), 1e-4)

		// b already on the path ending at this step.
		mid := tr.arena.add("b", root)
		tip := tr.arena.add("a", mid)
		assert.InDelta(t, 12.0, tr.edgeCost(graph.Edge{To: "b", Weight: 2}, tip), 1e-4)
	})
}

func TestWithConfig_DisablesContextPenalty(t *testing.T) {
	e := NewEngine(graph.New(), WithConfig(Config{ContextWindow: 0}))
	cfg := e.Config()
	assert.Zero(t, cfg.ContextWindow)
	assert.Equal(t, DefaultConfig().Epsilon, cfg.Epsilon)
	assert.Equal(t, DefaultConfig().CutoffScale, cfg.CutoffScale)
}
