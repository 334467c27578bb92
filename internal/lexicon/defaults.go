package lexicon

// DefaultVersion is the version of the built-in lexicon.
// Bump this when default content changes.
const DefaultVersion = "1.1.0"

// Emotion category names used by the built-in lexicon.
const (
	Anxiety = "anxiety"
	Sadness = "sadness"
	Fear    = "fear"
	Anger   = "anger"
	Joy     = "joy"
	Guilt   = "guilt"
	Love    = "love"
)

// Default returns a fresh copy of the built-in lexicon.
func Default() *Lexicon {
	return &Lexicon{
		Version:  DefaultVersion,
		Emotions: defaultEmotions(),
		Bridges:  defaultBridges(),
	}
}

func kw(keyword string, weight float64) KeywordWeight {
	return KeywordWeight{Keyword: keyword, Weight: weight}
}

func defaultEmotions() []Emotion {
	return []Emotion{
		{Name: Anxiety, Keywords: []KeywordWeight{
			kw("worried", 1.0), kw("overwhelmed", 1.0), kw("stressed", 1.0), kw("uneasy", 1.2),
			kw("panicking", 0.9), kw("anxious", 1.0), kw("tense", 1.1), kw("pressured", 1.2),
			kw("nervousness", 1.0), kw("exhausted", 0.8), kw("jittery", 1.3), kw("restless", 1.2),
			kw("fearful", 1.3),
		}},
		{Name: Sadness, Keywords: []KeywordWeight{
			kw("sad", 1.0), kw("down", 1.0), kw("lonely", 1.1), kw("depressed", 1.0),
			kw("crying", 1.0), kw("hurt", 1.2), kw("broken", 1.0), kw("heartbroken", 0.9),
			kw("hopeless", 1.0), kw("grief", 0.8), kw("melancholy", 1.3), kw("gloomy", 1.2),
		}},
		{Name: Fear, Keywords: []KeywordWeight{
			kw("afraid", 1.0), kw("scared", 1.0), kw("fearful", 1.0), kw("terrified", 0.8),
			kw("nervous", 1.0), kw("shaking", 1.2), kw("paranoid", 0.9), kw("panicked", 0.9),
		}},
		{Name: Anger, Keywords: []KeywordWeight{
			kw("angry", 1.0), kw("mad", 1.0), kw("furious", 0.8), kw("rage", 0.9),
			kw("irritated", 1.2), kw("annoyed", 1.1), kw("frustrated", 1.0), kw("resentful", 0.9),
		}},
		{Name: Joy, Keywords: []KeywordWeight{
			kw("happy", 1.0), kw("joyful", 0.9), kw("excited", 1.0), kw("grateful", 1.1),
			kw("thankful", 1.2), kw("cheerful", 1.0), kw("delighted", 0.8), kw("content", 1.0),
		}},
		{Name: Guilt, Keywords: []KeywordWeight{
			kw("guilty", 1.0), kw("ashamed", 1.0), kw("regretful", 0.9), kw("remorseful", 0.8),
			kw("sorry", 1.1), kw("blame", 1.2),
		}},
		{Name: Love, Keywords: []KeywordWeight{
			kw("loved", 1.0), kw("cherished", 0.9), kw("valued", 1.1), kw("adored", 0.8),
			kw("cared", 1.0), kw("special", 1.0), kw("affection", 1.1),
		}},
	}
}

// defaultBridges connects related emotions and keywords. Anger-fear is heavier
// than anxiety-fear: weights are distances.
func defaultBridges() []Bridge {
	return []Bridge{
		// emotion <-> emotion
		{From: Anxiety, To: Fear, Weight: 2.0},
		{From: Sadness, To: Guilt, Weight: 2.5},
		{From: Joy, To: Love, Weight: 1.5},
		{From: Anger, To: Fear, Weight: 3.0},
		{From: Guilt, To: Sadness, Weight: 2.5},
		{From: Anxiety, To: Sadness, Weight: 2.5},
		{From: Love, To: Sadness, Weight: 3.0},

		// keyword <-> keyword
		{From: "nervous", To: Anxiety, Weight: 1.0},
		{From: "nervous", To: Fear, Weight: 1.0},
		{From: "worried", To: "nervous", Weight: 1.2},
		{From: "depressed", To: "sad", Weight: 1.1},
		{From: "hurt", To: "sad", Weight: 1.2},
		{From: "angry", To: "frustrated", Weight: 1.1},
		{From: "happy", To: "joyful", Weight: 0.9},
		{From: "heartbroken", To: "loved", Weight: 2.0},
	}
}
