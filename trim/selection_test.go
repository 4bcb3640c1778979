package trim_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmark/selekt/config"
	"github.com/velmark/selekt/trim"
)

// TestFromSelection wires YAML selections through to Trim.
func TestFromSelection(t *testing.T) {
	sel, err := config.Load(strings.NewReader("strategy: left\nparams:\n  chars: \"x\"\n"))
	require.NoError(t, err)

	desc, err := trim.FromSelection(sel)
	require.NoError(t, err)
	assert.Equal(t, trim.Cutset(trim.Left, "x"), desc)

	got, err := trim.Trim("xxhello", desc)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	// Without chars the bare name trims whitespace.
	sel, err = config.Load(strings.NewReader("strategy: both\n"))
	require.NoError(t, err)

	desc, err = trim.FromSelection(sel)
	require.NoError(t, err)
	got, err = trim.Trim("  hello  ", desc)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}
