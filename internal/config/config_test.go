package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))
}

// isolate points HOME at an empty directory and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv(EnvTopK, "")
	t.Setenv(EnvLexicon, "")
	return home
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Layers(t *testing.T) {
	home := isolate(t)
	root := t.TempDir()

	writeConfig(t, filepath.Join(home, DirName), `
top_k: 5
priorities:
  anxiety: 2
log:
  level: debug
`)
	writeConfig(t, LocalPath(root), `
top_k: 4
lexicon_path: custom.yaml
priorities:
  fear: 0.5
verse_thresholds: [0.1, 0]
`)

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.TopK)
	assert.Equal(t, filepath.Join(LocalPath(root), "custom.yaml"), cfg.LexiconPath)
	assert.Equal(t, map[string]float64{"anxiety": 2, "fear": 0.5}, cfg.Priorities)
	assert.Equal(t, []float64{0.1, 0}, cfg.VerseThresholds)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_LexiconPathRelativeToFile(t *testing.T) {
	tests := []struct {
		name   string
		global string
		local  string
		want   func(home, root string) string
	}{
		{
			name:   "global only",
			global: "lexicon_path: lexicon.yaml\n",
			want: func(home, _ string) string {
				return filepath.Join(home, DirName, "lexicon.yaml")
			},
		},
		{
			name:   "project overrides global",
			global: "lexicon_path: lexicon.yaml\n",
			local:  "lexicon_path: ../shared/lexicon.yaml\n",
			want: func(_, root string) string {
				return filepath.Join(root, "shared", "lexicon.yaml")
			},
		},
		{
			name:   "project without path keeps global",
			global: "lexicon_path: lexicon.yaml\n",
			local:  "top_k: 2\n",
			want: func(home, _ string) string {
				return filepath.Join(home, DirName, "lexicon.yaml")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := isolate(t)
			root := t.TempDir()
			writeConfig(t, filepath.Join(home, DirName), tt.global)
			if tt.local != "" {
				writeConfig(t, LocalPath(root), tt.local)
			}

			cfg, err := Load(root)
			require.NoError(t, err)
			assert.Equal(t, tt.want(home, root), cfg.LexiconPath)
		})
	}
}

func TestLoad_EnvLexiconStaysRelative(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	writeConfig(t, LocalPath(root), "lexicon_path: project.yaml\n")
	t.Setenv(EnvLexicon, "mine.yaml")

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "mine.yaml", cfg.LexiconPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	writeConfig(t, LocalPath(root), "top_k: 4\n")

	t.Setenv(EnvTopK, "7")
	t.Setenv(EnvLexicon, "/abs/lexicon.yaml")

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.TopK)
	assert.Equal(t, "/abs/lexicon.yaml", cfg.LexiconPath)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     string
		invalid bool
	}{
		{name: "malformed yaml", file: "top_k: [1"},
		{name: "zero top_k", file: "top_k: 0", invalid: true},
		{name: "negative priority", file: "priorities: {fear: -1}", invalid: true},
		{name: "bad log level", file: "log: {level: loud}", invalid: true},
		{name: "bad log format", file: "log: {format: xml}", invalid: true},
		{name: "bad env top_k", env: "many", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			root := t.TempDir()
			if tt.file != "" {
				writeConfig(t, LocalPath(root), tt.file)
			}
			if tt.env != "" {
				t.Setenv(EnvTopK, tt.env)
			}

			_, err := Load(root)
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default()
	cfg.TopK = 6
	cfg.Priorities = map[string]float64{"joy": 1.5}
	cfg.Metrics.Addr = ":9464"

	require.NoError(t, Save(path, cfg))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLogConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "kind", "unknown-node")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, `"msg":"shown"`), out)
	assert.Contains(t, out, `"kind":"unknown-node"`)

	buf.Reset()
	logger, err = LogConfig{}.NewLogger(&buf)
	require.NoError(t, err)
	logger.Info("text line")
	assert.Contains(t, buf.String(), "msg=\"text line\"")

	_, err = LogConfig{Level: "trace"}.NewLogger(&buf)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("proj", DirName), LocalPath("proj"))

	home := isolate(t)
	global, err := GlobalPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DirName), global)

	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
