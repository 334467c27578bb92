// Package analysis turns a line of free text into the signals the emotion
// ranking consumes: normalized tokens and per-word intensity scores.
package analysis

import (
	"strings"
	"unicode"

	"github.com/nvandessel/emograph/internal/sanitize"
)

// Intensity modifiers.
const (
	// NegationSpan is how many scored words a negation flips.
	NegationSpan = 2

	// StrongBoost and MildBoost replace the base intensity of the next word.
	StrongBoost = 1.5
	MildBoost   = -0.5

	UppercaseBonus = 0.5
	RepeatBonus    = 0.2
	ExclaimBonus   = 0.3 // per '!' anywhere in the text

	// MaxRepeat is the longest run of one character kept by CollapseRepeats.
	MaxRepeat = 3
)

var (
	negations          = set("not", "no", "never")
	strongIntensifiers = set("very", "so", "super", "extremely", "really")
	mildIntensifiers   = set("slightly", "somewhat")

	// Two-word mild intensifiers, keyed by first word.
	mildPhrases = map[string]map[string]bool{
		"a":    set("little", "bit"),
		"kind": set("of"),
	}
)

// Analysis is the analyzed form of one piece of text.
type Analysis struct {
	Text      string             `json:"text"`
	Tokens    []string           `json:"tokens"`
	Intensity map[string]float64 `json:"intensity"`
}

// Analyze sanitizes text, then tokenizes and scores it.
func Analyze(text string) Analysis {
	clean := sanitize.Text(text)
	return Analysis{
		Text:      clean,
		Tokens:    Tokenize(clean),
		Intensity: ScoreIntensities(clean),
	}
}

// Tokenize splits text on whitespace, removes punctuation and symbols other
// than apostrophes, lowercases, and drops words left empty.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		word := strings.Map(func(r rune) rune {
			if r != '\'' && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
				return -1
			}
			return r
		}, f)
		if word = strings.ToLower(word); word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// CollapseRepeats shortens every run of one character to at most MaxRepeat,
// so "saaaaad" and "saaad" score as the same word.
func CollapseRepeats(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	var prev rune
	run := 0
	for i, r := range word {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run <= MaxRepeat {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

// ScoreIntensities assigns an intensity to every word of text.
//
// Words are reduced to letters and apostrophes, lowercased and
// repeat-collapsed. A word scores 1, or the boost set by the intensifier right
// before it, plus bonuses for uppercase letters, doubled characters and every
// '!' in the text. Inside a negation window the score flips sign. Scores of a
// word that appears more than once add up.
func ScoreIntensities(text string) map[string]float64 {
	scores := make(map[string]float64)
	raw := strings.Fields(text)
	exclaims := strings.Count(text, "!")

	words := make([]string, len(raw))
	for i, r := range raw {
		words[i] = normalizeWord(r)
	}

	boost := 1.0
	negation := 0
	for i := 0; i < len(words); i++ {
		word := words[i]
		if word == "" {
			continue
		}

		if negations[word] {
			negation = NegationSpan
			boost = 1.0
			continue
		}
		if strongIntensifiers[word] {
			boost = StrongBoost
			continue
		}
		if mildIntensifiers[word] {
			boost = MildBoost
			continue
		}
		if next, ok := mildPhrases[word]; ok && i+1 < len(words) && next[words[i+1]] {
			boost = MildBoost
			i++
			continue
		}

		intensity := boost
		if hasUpper(raw[i]) {
			intensity += UppercaseBonus
		}
		if hasDoubled(raw[i]) {
			intensity += RepeatBonus
		}
		intensity += ExclaimBonus * float64(exclaims)

		if negation > 0 {
			intensity = -intensity
			negation--
		}

		scores[word] += intensity
		boost = 1.0
	}
	return scores
}

func normalizeWord(raw string) string {
	word := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || r == '\'' {
			return unicode.ToLower(r)
		}
		return -1
	}, raw)
	return CollapseRepeats(word)
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// hasDoubled reports whether s has two identical adjacent characters,
// punctuation included.
func hasDoubled(s string) bool {
	var prev rune
	for i, r := range s {
		if i > 0 && r == prev {
			return true
		}
		prev = r
	}
	return false
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
