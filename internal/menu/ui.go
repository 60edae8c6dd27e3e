// Package menu holds the interactive selection front-ends: the huh
// checklist and the numbered-menu fallback. Both produce the same Selection
// shape consumed by the dispatcher.
package menu

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rigup-dev/rigup/internal/terminal"
)

// ErrCancelled reports that the user aborted the checklist. Treated as an
// early quit, not a failure.
var ErrCancelled = errors.New("selection cancelled")

var errNoTerminal = errors.New("checklist requires an interactive terminal")

// UI abstracts the interactive form so command tests can stub it.
type UI interface {
	MultiSelect(title string, options []huh.Option[string], selected *[]string) error
}

// HuhUI implements UI with a charmbracelet/huh form.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI using the default terminal check.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

// MultiSelect renders the component checklist.
func (ui *HuhUI) MultiSelect(title string, options []huh.Option[string], selected *[]string) error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if !checker() {
		return errNoTerminal
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(title).
				Filterable(false).
				Options(options...).
				Value(selected),
		),
	)
	form.WithKeyMap(menuKeyMap())
	form.WithProgramOptions(tea.WithOutput(os.Stderr))

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}

// menuKeyMap makes Esc abort the form alongside Ctrl+C. Filtering is
// disabled; the component list is small.
func menuKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit"))
	return km
}
