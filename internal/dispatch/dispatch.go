// Package dispatch invokes installer operations in selection order,
// isolating per-component failures from the rest of the run.
package dispatch

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/rigup-dev/rigup/internal/component"
	"github.com/rigup-dev/rigup/internal/selection"
)

// Outcome is the result of one component's operation.
type Outcome struct {
	ID  component.ID
	Err error
}

// Dispatcher maps component IDs to their installer operations.
type Dispatcher struct {
	Actions map[component.ID]func() error
	Out     io.Writer
}

// Run invokes the operation for each selected component strictly in
// selection order, synchronously. A failing component is reported and the
// run continues with the next one.
func (d *Dispatcher) Run(sel selection.Selection) []Outcome {
	outcomes := make([]Outcome, 0, len(sel))
	for _, id := range sel {
		action, ok := d.Actions[id]
		if !ok {
			// Selection parsing already filters unknown IDs; this guards
			// a registry/action map mismatch.
			outcomes = append(outcomes, Outcome{ID: id, Err: fmt.Errorf("no installer for %q", id)})
			continue
		}
		err := action()
		if err != nil {
			_, _ = fmt.Fprintln(d.Out, color.RedString("%s: %v", id, err))
		}
		outcomes = append(outcomes, Outcome{ID: id, Err: err})
	}
	return outcomes
}

// Failed counts the outcomes that carry an error.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
