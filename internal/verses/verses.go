// Package verses maps emotions to scripture passages and picks the passages
// that best match what the user wrote.
package verses

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/nvandessel/emograph/internal/similarity"
)

// DefaultThresholds are the similarity thresholds Recommend tries, in order.
var DefaultThresholds = []float64{0.03, 0.01, 0.0}

var stopWords = map[string]bool{
	"the": true, "is": true, "and": true, "a": true, "an": true, "of": true,
	"to": true, "in": true, "that": true, "it": true, "for": true, "on": true,
	"with": true, "as": true, "by": true, "at": true, "i": true, "you": true,
	"he": true, "she": true, "we": true, "they": true, "be": true, "this": true,
	"will": true, "but": true, "do": true, "not": true,
}

// referenceSep separates reference and text in a verse's string form.
const referenceSep = " >> "

// Verse is a scripture passage.
type Verse struct {
	Reference string `json:"reference" yaml:"reference"`
	Text      string `json:"text" yaml:"text"`
}

// String renders the verse as "Reference >> Text".
func (v Verse) String() string {
	if v.Reference == "" {
		return v.Text
	}
	return v.Reference + referenceSep + v.Text
}

// ParseVerse splits "Reference >> Text". Input without a separator is all text.
func ParseVerse(s string) Verse {
	ref, text, ok := strings.Cut(s, referenceSep)
	if !ok {
		return Verse{Text: strings.TrimSpace(s)}
	}
	return Verse{Reference: strings.TrimSpace(ref), Text: strings.TrimSpace(text)}
}

// Match is a verse with its similarity to the query.
type Match struct {
	Verse      Verse   `json:"verse"`
	Similarity float64 `json:"similarity"`
}

type entry struct {
	verse  Verse
	tokens []string
}

// Mapper holds the emotion-to-verse table. It is safe for concurrent use.
type Mapper struct {
	mu         sync.RWMutex
	table      map[string][]entry
	emotions   []string
	thresholds []float64
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithThresholds overrides DefaultThresholds.
func WithThresholds(thresholds []float64) Option {
	return func(m *Mapper) {
		if len(thresholds) > 0 {
			m.thresholds = append([]float64(nil), thresholds...)
		}
	}
}

// NewMapper returns an empty mapper.
func NewMapper(opts ...Option) *Mapper {
	m := &Mapper{
		table:      make(map[string][]entry),
		thresholds: DefaultThresholds,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewDefaultMapper returns a mapper loaded with the built-in verse table.
func NewDefaultMapper(opts ...Option) *Mapper {
	m := NewMapper(opts...)
	for _, d := range defaultTable {
		for _, v := range d.verses {
			m.Add(d.emotion, v)
		}
	}
	return m
}

// Add appends a verse to an emotion's list.
func (m *Mapper) Add(emotion string, v Verse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.table[emotion]; !ok {
		m.emotions = append(m.emotions, emotion)
	}
	m.table[emotion] = append(m.table[emotion], entry{verse: v, tokens: tokenize(v.String())})
}

// Get returns every verse for emotion, or nil if it has none.
func (m *Mapper) Get(emotion string) []Verse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := m.table[emotion]
	if len(entries) == 0 {
		return nil
	}
	out := make([]Verse, len(entries))
	for i, e := range entries {
		out[i] = e.verse
	}
	return out
}

// Emotions returns the emotions with verses, in the order first added.
func (m *Mapper) Emotions() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.emotions...)
}

// Thresholds returns the thresholds Recommend tries.
func (m *Mapper) Thresholds() []float64 {
	return append([]float64(nil), m.thresholds...)
}

// Ranked returns emotion's verses whose similarity to the input tokens plus
// similarity to the neighbor tokens reaches threshold, most similar first.
// Similarity is Jaccard over verse words with punctuation and stop words removed.
func (m *Mapper) Ranked(emotion string, input, neighbors []string, threshold float64) []Match {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Match
	for _, e := range m.table[emotion] {
		sim := similarity.Jaccard(e.tokens, input) + similarity.Jaccard(e.tokens, neighbors)
		if sim >= threshold {
			out = append(out, Match{Verse: e.verse, Similarity: sim})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})
	return out
}

// Recommend returns the verses of the first threshold that matches anything,
// falling back to every verse for emotion. Unknown emotions yield nil.
func (m *Mapper) Recommend(emotion string, input, neighbors []string) []Match {
	for _, threshold := range m.thresholds {
		if matches := m.Ranked(emotion, input, neighbors, threshold); len(matches) > 0 {
			return matches
		}
	}

	all := m.Get(emotion)
	if all == nil {
		return nil
	}
	out := make([]Match, len(all))
	for i, v := range all {
		out[i] = Match{Verse: v}
	}
	return out
}

// Validate checks that every emotion in emotions has at least one verse.
func (m *Mapper) Validate(emotions []string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var missing []string
	for _, e := range emotions {
		if len(m.table[e]) == 0 {
			missing = append(missing, e)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("no verses for emotions: %s", strings.Join(missing, ", "))
	}
	return nil
}

// tokenize returns the distinct lowercase words of s with punctuation,
// symbols and stop words removed.
func tokenize(s string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range strings.Fields(s) {
		word := strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) || unicode.IsSymbol(r) {
				return -1
			}
			return unicode.ToLower(r)
		}, f)
		if word == "" || stopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		out = append(out, word)
	}
	return out
}
