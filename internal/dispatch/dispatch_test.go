package dispatch

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigup-dev/rigup/internal/component"
	"github.com/rigup-dev/rigup/internal/selection"
)

func TestRunInvokesInSelectionOrder(t *testing.T) {
	var order []component.ID
	record := func(id component.ID) func() error {
		return func() error {
			order = append(order, id)
			return nil
		}
	}
	d := &Dispatcher{
		Actions: map[component.ID]func() error{
			component.InputLeap:           record(component.InputLeap),
			component.TailscalePersistent: record(component.TailscalePersistent),
		},
		Out: &bytes.Buffer{},
	}

	sel := selection.Selection{component.TailscalePersistent, component.InputLeap}
	outcomes := d.Run(sel)

	assert.Equal(t, []component.ID{component.TailscalePersistent, component.InputLeap}, order)
	require.Len(t, outcomes, 2)
	assert.Equal(t, 0, Failed(outcomes))
}

func TestRunContinuesPastFailure(t *testing.T) {
	boom := errors.New("download timed out")
	ran := false
	var out bytes.Buffer
	d := &Dispatcher{
		Actions: map[component.ID]func() error{
			component.InputLeap: func() error { return boom },
			component.TailscalePersistent: func() error {
				ran = true
				return nil
			},
		},
		Out: &out,
	}

	outcomes := d.Run(selection.Selection{component.InputLeap, component.TailscalePersistent})

	assert.True(t, ran)
	require.Len(t, outcomes, 2)
	assert.ErrorIs(t, outcomes[0].Err, boom)
	assert.NoError(t, outcomes[1].Err)
	assert.Equal(t, 1, Failed(outcomes))
	assert.Contains(t, out.String(), "download timed out")
}

func TestRunMissingAction(t *testing.T) {
	d := &Dispatcher{Actions: map[component.ID]func() error{}, Out: &bytes.Buffer{}}
	outcomes := d.Run(selection.Selection{component.InputLeap})
	require.Len(t, outcomes, 1)
	assert.Error(t, outcomes[0].Err)
}

func TestFailedEmpty(t *testing.T) {
	assert.Equal(t, 0, Failed(nil))
}
