package installer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rigup-dev/rigup/internal/component"
	"github.com/rigup-dev/rigup/internal/testutil"
)

func TestActionsCoverAllComponents(t *testing.T) {
	inst := newTestInstaller(testutil.NewFakeSystem(), &bytes.Buffer{})
	actions := inst.Actions()
	for _, c := range component.All() {
		assert.Contains(t, actions, c.ID)
	}
	assert.Len(t, actions, len(component.All()))
}

func TestDetected(t *testing.T) {
	sys := testutil.NewFakeSystem()
	inst := newTestInstaller(sys, &bytes.Buffer{})

	assert.False(t, inst.Detected(component.InputLeap))
	assert.False(t, inst.Detected(component.TailscalePersistent))
	assert.False(t, inst.Detected(component.RemoveFlatpakInputLeap))

	sys.Binaries["input-leap"] = true
	sys.Binaries["tailscale"] = true
	sys.Binaries["flatpak"] = true
	sys.Outputs["flatpak info io.github.input_leap.input-leap"] = "Input Leap"

	assert.True(t, inst.Detected(component.InputLeap))
	assert.True(t, inst.Detected(component.TailscaleEphemeral))
	assert.True(t, inst.Detected(component.TailscalePersistent))
	assert.True(t, inst.Detected(component.RemoveFlatpakInputLeap))
}
