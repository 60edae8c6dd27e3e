package selection

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigup-dev/rigup/internal/component"
)

func TestParsePreservesOrder(t *testing.T) {
	var warnings bytes.Buffer
	sel := Parse("tailscale-persistent inputleap", &warnings)
	assert.Equal(t, Selection{component.TailscalePersistent, component.InputLeap}, sel)
	assert.Empty(t, warnings.String())
}

func TestParseWarnsAndSkipsUnknown(t *testing.T) {
	var warnings bytes.Buffer
	sel := Parse("inputleap bogus-item tailscale-ephemeral", &warnings)
	assert.Equal(t, Selection{component.InputLeap, component.TailscaleEphemeral}, sel)

	lines := strings.Count(warnings.String(), "\n")
	assert.Equal(t, 1, lines)
	assert.Contains(t, warnings.String(), "bogus-item")
}

func TestParseEmpty(t *testing.T) {
	var warnings bytes.Buffer
	sel := Parse("   ", &warnings)
	assert.Empty(t, sel)
	assert.Empty(t, warnings.String())
}

func TestCanonical(t *testing.T) {
	sel := Canonical()
	require.Len(t, sel, 3)
	assert.NotContains(t, sel, component.TailscaleEphemeral)
	assert.Equal(t, component.InputLeap, sel[0])
}
