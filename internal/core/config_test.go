package core_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lexforge/textlab/internal/core"
)

func Test_MustLoadBaseConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textlab.toml")
	raw := []byte("[log]\nlevel = \"info\"\n\n[analyze]\ncase_fold = true\ntop_n = 5\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := core.MustLoadBaseConfig(path)

	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.True(t, cfg.Analyze.CaseFold)
	assert.Equal(t, 5, cfg.Analyze.TopN)
}

func Test_LoadBaseConfigFromENV(t *testing.T) {
	t.Setenv("TEXTLAB_LOG_LEVEL", "error")
	t.Setenv("TEXTLAB_ANALYZE_CASE_FOLD", "true")
	t.Setenv("TEXTLAB_ANALYZE_TOP_N", "3")

	cfg := core.LoadBaseConfigFromENV()

	assert.Equal(t, slog.LevelError, cfg.Log.SlogLevel())
	assert.True(t, cfg.Analyze.CaseFold)
	assert.Equal(t, 3, cfg.Analyze.TopN)
}

func Test_SlogLevelDefault(t *testing.T) {
	var l core.Log
	assert.Equal(t, slog.LevelWarn, l.SlogLevel())
}
