package lexicon

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	lex := Default()
	require.NoError(t, lex.Validate())
	assert.Equal(t, DefaultVersion, lex.Version)
	assert.Equal(t, []string{Anxiety, Sadness, Fear, Anger, Joy, Guilt, Love}, lex.EmotionNames())
}

func TestDefault_ReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Emotions[0].Keywords[0].Weight = 42
	a.Bridges[0].Weight = 42

	b := Default()
	assert.Equal(t, 1.0, b.Emotions[0].Keywords[0].Weight)
	assert.Equal(t, 2.0, b.Bridges[0].Weight)
}

func TestKeywordIndex(t *testing.T) {
	index := Default().KeywordIndex()
	require.Len(t, index, 7)
	assert.Contains(t, index[Anxiety], "worried")
	assert.Contains(t, index[Fear], "nervous")
	// "fearful" belongs to two emotions
	assert.Contains(t, index[Anxiety], "fearful")
	assert.Contains(t, index[Fear], "fearful")
}

func TestClone_Independent(t *testing.T) {
	orig := Default()
	orig.Priorities = map[string]float64{Joy: 2}

	clone := orig.Clone()
	clone.Emotions[1].Keywords[0].Keyword = "changed"
	clone.Priorities[Joy] = 5
	clone.Bridges[0].From = "changed"

	assert.Equal(t, "sad", orig.Emotions[1].Keywords[0].Keyword)
	assert.Equal(t, 2.0, orig.Priorities[Joy])
	assert.Equal(t, Anxiety, orig.Bridges[0].From)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Lexicon)
	}{
		{"no emotions", func(l *Lexicon) { l.Emotions = nil }},
		{"empty emotion name", func(l *Lexicon) { l.Emotions[0].Name = "" }},
		{"duplicate emotion", func(l *Lexicon) { l.Emotions[1].Name = l.Emotions[0].Name }},
		{"empty keyword", func(l *Lexicon) { l.Emotions[0].Keywords[0].Keyword = "" }},
		{"negative keyword weight", func(l *Lexicon) { l.Emotions[0].Keywords[0].Weight = -1 }},
		{"NaN keyword weight", func(l *Lexicon) { l.Emotions[0].Keywords[0].Weight = math.NaN() }},
		{"infinite bridge weight", func(l *Lexicon) { l.Bridges[0].Weight = math.Inf(1) }},
		{"empty bridge endpoint", func(l *Lexicon) { l.Bridges[0].To = "" }},
		{"zero priority", func(l *Lexicon) { l.Priorities = map[string]float64{Joy: 0} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex := Default()
			tt.mutate(lex)
			err := lex.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	var lex *Lexicon
	assert.ErrorIs(t, lex.Validate(), ErrInvalid)
}

func TestWriteAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	lex := Default()
	lex.Priorities = map[string]float64{Joy: 1.5}

	require.NoError(t, WriteFile(path, lex))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, lex, loaded)
}

func TestParse(t *testing.T) {
	data := []byte(`
version: "test"
emotions:
  - name: calm
    keywords:
      - keyword: peaceful
        weight: 0.7
      - keyword: relaxed
        weight: 1.0
bridges:
  - from: peaceful
    to: relaxed
    weight: 0.5
`)
	lex, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "test", lex.Version)
	require.Len(t, lex.Emotions, 1)
	assert.Equal(t, []KeywordWeight{{"peaceful", 0.7}, {"relaxed", 1.0}}, lex.Emotions[0].Keywords)
	assert.Equal(t, []Bridge{{From: "peaceful", To: "relaxed", Weight: 0.5}}, lex.Bridges)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("emotions: []\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte("emotions: [unclosed"))
	assert.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
