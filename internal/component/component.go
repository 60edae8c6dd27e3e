// Package component defines the fixed set of installable units.
package component

// ID is the stable string key for a component.
type ID string

// Recognized component identifiers.
const (
	InputLeap              ID = "inputleap"
	TailscaleEphemeral     ID = "tailscale-ephemeral"
	TailscalePersistent    ID = "tailscale-persistent"
	RemoveFlatpakInputLeap ID = "remove-flatpak-inputleap"
)

// Component is one selectable installable unit. The set is fixed at build
// time and not user-extensible.
type Component struct {
	ID    ID
	Label string
	// Preselected marks components checked by default in the checklist.
	Preselected bool
	// Canonical marks components included by the --all convenience flag.
	// The ephemeral Tailscale mode is deliberately excluded: --all is meant
	// for permanent workstation setup.
	Canonical bool
}

// registry lists every component in declaration order. Checklist results and
// the canonical subset preserve this order.
var registry = []Component{
	{ID: InputLeap, Label: "Input Leap (keyboard/mouse sharing)", Preselected: true, Canonical: true},
	{ID: RemoveFlatpakInputLeap, Label: "Remove flatpak Input Leap", Preselected: true, Canonical: true},
	{ID: TailscaleEphemeral, Label: "Tailscale VPN (ephemeral session)"},
	{ID: TailscalePersistent, Label: "Tailscale VPN (persistent)", Preselected: true, Canonical: true},
}

// All returns every component in declaration order.
func All() []Component {
	return append([]Component(nil), registry...)
}

// Lookup returns the component for id, if recognized.
func Lookup(id string) (Component, bool) {
	for _, c := range registry {
		if c.ID == ID(id) {
			return c, true
		}
	}
	return Component{}, false
}

// Canonical returns the IDs selected by --all, in declaration order.
func Canonical() []ID {
	var ids []ID
	for _, c := range registry {
		if c.Canonical {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
