package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shunichi-ikebuchi/journalfmt/pkg/journal"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journalfmt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(Overrides{}, "", "")
	require.NoError(t, err)

	assert.Equal(t, journal.DefaultOptions(), cfg.Options)
	assert.Equal(t, DefaultRefreshInterval, cfg.RefreshInterval)
	assert.Empty(t, cfg.Workspace)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
amount_column: 50
alignment: fixed
indent_width: 2
negative_style: sign-before-symbol
date_format: YYYY/MM/DD
comment_char: "#"
workspace: /ledger
refresh_interval: 1m
`)

	cfg, err := Load(Overrides{}, path, "")
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Options.AmountColumn)
	assert.Equal(t, journal.AlignFixedColumn, cfg.Options.Alignment)
	assert.Equal(t, 2, cfg.Options.IndentWidth)
	assert.Equal(t, journal.SignBeforeSymbol, cfg.Options.NegativeStyle)
	assert.Equal(t, journal.DateSlash, cfg.Options.DateFormat)
	assert.Equal(t, byte('#'), cfg.Options.CommentChar)
	assert.Equal(t, "/ledger", cfg.Workspace)
	assert.Equal(t, time.Minute, cfg.RefreshInterval)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "amount_column: 50\n")
	t.Setenv("JOURNALFMT_AMOUNT_COLUMN", "60")

	cfg, err := Load(Overrides{}, path, "")
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Options.AmountColumn)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("JOURNALFMT_AMOUNT_COLUMN", "60")
	t.Setenv("JOURNALFMT_WORKSPACE", "/env-ledger")

	col := 70
	ws := "/flag-ledger"
	cfg, err := Load(Overrides{AmountColumn: &col, Workspace: &ws}, "", "")
	require.NoError(t, err)

	assert.Equal(t, 70, cfg.Options.AmountColumn)
	assert.Equal(t, "/flag-ledger", cfg.Workspace)
}

func TestLoadIgnoresUnknownEnumValues(t *testing.T) {
	path := writeConfig(t, `
alignment: diagonal
negative_style: upside-down
date_format: DD-MM-YYYY
comment_char: "##"
`)

	cfg, err := Load(Overrides{}, path, "")
	require.NoError(t, err)

	defaults := journal.DefaultOptions()
	assert.Equal(t, defaults.Alignment, cfg.Options.Alignment)
	assert.Equal(t, defaults.NegativeStyle, cfg.Options.NegativeStyle)
	assert.Equal(t, defaults.DateFormat, cfg.Options.DateFormat)
	assert.Equal(t, defaults.CommentChar, cfg.Options.CommentChar)
}

func TestLoadNormalizesOutOfRangeValues(t *testing.T) {
	col := -5
	indent := 0
	cfg, err := Load(Overrides{AmountColumn: &col, IndentWidth: &indent}, "", "")
	require.NoError(t, err)

	defaults := journal.DefaultOptions()
	assert.Equal(t, defaults.AmountColumn, cfg.Options.AmountColumn)
	assert.Equal(t, defaults.IndentWidth, cfg.Options.IndentWidth)
}

func TestLoadExplicitConfigFileMustExist(t *testing.T) {
	_, err := Load(Overrides{}, filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.Error(t, err)
}

func TestLoadMissingDefaultConfigIsFine(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = Load(Overrides{}, "", "")
	assert.NoError(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("JOURNALFMT_INDENT_WIDTH=3\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("JOURNALFMT_INDENT_WIDTH") })

	cfg, err := Load(Overrides{}, "", envPath)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Options.IndentWidth)
}
