package menu

import (
	"github.com/charmbracelet/huh"

	"github.com/rigup-dev/rigup/internal/component"
	"github.com/rigup-dev/rigup/internal/messages"
	"github.com/rigup-dev/rigup/internal/selection"
)

// RunChecklist presents every component with its default preselection and
// returns the checked subset in declaration order.
func RunChecklist(ui UI) (selection.Selection, error) {
	comps := component.All()
	options := make([]huh.Option[string], len(comps))
	for i, c := range comps {
		options[i] = huh.NewOption(c.Label, string(c.ID)).Selected(c.Preselected)
	}

	var chosen []string
	if err := ui.MultiSelect(messages.MenuTitle, options, &chosen); err != nil {
		return nil, err
	}

	picked := make(map[string]bool, len(chosen))
	for _, id := range chosen {
		picked[id] = true
	}
	var sel selection.Selection
	for _, c := range comps {
		if picked[string(c.ID)] {
			sel = append(sel, c.ID)
		}
	}
	return sel, nil
}
