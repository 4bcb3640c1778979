package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmark/selekt/config"
)

// TestLoad_Selection verifies a full selection document round-trips.
func TestLoad_Selection(t *testing.T) {
	doc := "strategy: constant\nparams:\n  value: 0.5\n"

	sel, err := config.Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "constant", sel.Strategy)

	var p struct {
		Value float64 `yaml:"value"`
	}
	require.NoError(t, sel.DecodeParams(&p))
	assert.Equal(t, 0.5, p.Value)
}

// TestLoad_NoParams verifies the params block is optional.
func TestLoad_NoParams(t *testing.T) {
	sel, err := config.Load(strings.NewReader("strategy: mean\n"))
	require.NoError(t, err)
	assert.Equal(t, "mean", sel.Strategy)

	var p struct {
		Value float64 `yaml:"value"`
	}
	require.NoError(t, sel.DecodeParams(&p), "absent params must decode as a no-op")
	assert.Zero(t, p.Value)
}

// TestLoad_MissingStrategy verifies an unnamed selection is rejected.
func TestLoad_MissingStrategy(t *testing.T) {
	_, err := config.Load(strings.NewReader("params:\n  value: 1\n"))
	assert.ErrorIs(t, err, config.ErrMissingStrategy)
}

// TestLoad_BadYAML verifies parse failures carry context.
func TestLoad_BadYAML(t *testing.T) {
	_, err := config.Load(strings.NewReader("strategy: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode selection")
}

// TestLoadFile verifies loading from disk and the missing-file error.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "impute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: forward\n"), 0o644))

	sel, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "forward", sel.Strategy)

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

// TestEnvOverride verifies <PREFIX>_STRATEGY replaces the file's strategy
// and drops its params.
func TestEnvOverride(t *testing.T) {
	sel, err := config.Load(strings.NewReader("strategy: constant\nparams:\n  value: 1\n"))
	require.NoError(t, err)

	t.Setenv("SELEKT_STRATEGY", "median")
	require.NoError(t, config.EnvOverride("SELEKT", &sel))
	assert.Equal(t, "median", sel.Strategy)
	assert.True(t, sel.Params.IsZero(), "override must drop stale params")
}

// TestEnvOverride_Unset verifies the selection is untouched without the
// variable.
func TestEnvOverride_Unset(t *testing.T) {
	sel := config.Selection{Strategy: "mean"}

	require.NoError(t, config.EnvOverride("SELEKT_TEST_UNSET", &sel))
	assert.Equal(t, "mean", sel.Strategy)
}
