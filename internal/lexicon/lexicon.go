// Package lexicon defines the emotion lexicon that the emotion graph is built
// from: the emotion categories, their keywords with base edge weights, the
// curated bridging edges and optional traversal priorities.
package lexicon

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is returned when a lexicon fails validation.
var ErrInvalid = errors.New("invalid lexicon")

// KeywordWeight links a keyword to its emotion with a base edge weight.
// Weights are distances: lower means closer.
type KeywordWeight struct {
	Keyword string  `json:"keyword" yaml:"keyword"`
	Weight  float64 `json:"weight" yaml:"weight"`
}

// Emotion is one top-level affect category and its keywords.
type Emotion struct {
	Name     string          `json:"name" yaml:"name"`
	Keywords []KeywordWeight `json:"keywords" yaml:"keywords"`
}

// Bridge is a curated edge between two emotions or two keywords.
type Bridge struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Lexicon is the complete configuration the graph is built from.
// Slices are ordered; that order becomes adjacency insertion order.
type Lexicon struct {
	Version    string             `json:"version" yaml:"version"`
	Emotions   []Emotion          `json:"emotions" yaml:"emotions"`
	Bridges    []Bridge           `json:"bridges,omitempty" yaml:"bridges,omitempty"`
	Priorities map[string]float64 `json:"priorities,omitempty" yaml:"priorities,omitempty"`
}

// EmotionNames returns emotion names in declaration order.
func (l *Lexicon) EmotionNames() []string {
	names := make([]string, 0, len(l.Emotions))
	for _, e := range l.Emotions {
		names = append(names, e.Name)
	}
	return names
}

// KeywordIndex returns emotion -> keywords in declaration order.
func (l *Lexicon) KeywordIndex() map[string][]string {
	index := make(map[string][]string, len(l.Emotions))
	for _, e := range l.Emotions {
		kws := make([]string, 0, len(e.Keywords))
		for _, kw := range e.Keywords {
			kws = append(kws, kw.Keyword)
		}
		index[e.Name] = kws
	}
	return index
}

// Clone returns a deep copy of the lexicon.
func (l *Lexicon) Clone() *Lexicon {
	out := &Lexicon{
		Version:  l.Version,
		Emotions: make([]Emotion, len(l.Emotions)),
		Bridges:  append([]Bridge(nil), l.Bridges...),
	}
	for i, e := range l.Emotions {
		out.Emotions[i] = Emotion{
			Name:     e.Name,
			Keywords: append([]KeywordWeight(nil), e.Keywords...),
		}
	}
	if l.Priorities != nil {
		out.Priorities = make(map[string]float64, len(l.Priorities))
		for k, v := range l.Priorities {
			out.Priorities[k] = v
		}
	}
	return out
}

// Validate checks names and weights. Weights must be finite and non-negative
// because the ranking traversal relies on non-decreasing path costs.
func (l *Lexicon) Validate() error {
	if l == nil {
		return fmt.Errorf("%w: nil lexicon", ErrInvalid)
	}
	if len(l.Emotions) == 0 {
		return fmt.Errorf("%w: no emotions defined", ErrInvalid)
	}

	seen := make(map[string]bool, len(l.Emotions))
	for i, e := range l.Emotions {
		if e.Name == "" {
			return fmt.Errorf("%w: emotion %d has an empty name", ErrInvalid, i)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: duplicate emotion %q", ErrInvalid, e.Name)
		}
		seen[e.Name] = true

		for _, kw := range e.Keywords {
			if kw.Keyword == "" {
				return fmt.Errorf("%w: emotion %q has an empty keyword", ErrInvalid, e.Name)
			}
			if err := checkWeight(kw.Weight); err != nil {
				return fmt.Errorf("%w: keyword %q of %q: %v", ErrInvalid, kw.Keyword, e.Name, err)
			}
		}
	}

	for _, b := range l.Bridges {
		if b.From == "" || b.To == "" {
			return fmt.Errorf("%w: bridge with empty endpoint (%q, %q)", ErrInvalid, b.From, b.To)
		}
		if err := checkWeight(b.Weight); err != nil {
			return fmt.Errorf("%w: bridge %s-%s: %v", ErrInvalid, b.From, b.To, err)
		}
	}

	for name, p := range l.Priorities {
		if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
			return fmt.Errorf("%w: priority for %q must be a positive finite number, got %v", ErrInvalid, name, p)
		}
	}

	return nil
}

func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("weight %v is not finite", w)
	}
	if w < 0 {
		return fmt.Errorf("weight %v is negative", w)
	}
	return nil
}
