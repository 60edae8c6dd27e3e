// Package installer implements one idempotent detect-then-act installer per
// component. Installers never persist state; installation state is derived
// from the host on every run.
package installer

import (
	"errors"
	"io"

	"github.com/rigup-dev/rigup/internal/component"
	"github.com/rigup-dev/rigup/internal/config"
	"github.com/rigup-dev/rigup/internal/system"
)

// Per-component failure classes. All are non-fatal: the dispatcher logs the
// failure and continues with the next selected component.
var (
	ErrFetch      = errors.New("fetch failed")
	ErrInstall    = errors.New("install failed")
	ErrActivation = errors.New("activation failed")
)

// Installer holds the shared dependencies of every component installer.
type Installer struct {
	Sys system.System
	Cfg *config.Config
	Out io.Writer
}

// New builds an Installer writing progress to out.
func New(sys system.System, cfg *config.Config, out io.Writer) *Installer {
	return &Installer{Sys: sys, Cfg: cfg, Out: out}
}

// Actions maps each component ID to its installer operation.
func (i *Installer) Actions() map[component.ID]func() error {
	return map[component.ID]func() error{
		component.InputLeap:              i.InputLeap,
		component.TailscaleEphemeral:     i.TailscaleEphemeral,
		component.TailscalePersistent:    i.TailscalePersistent,
		component.RemoveFlatpakInputLeap: i.RemoveFlatpakInputLeap,
	}
}

// Detected reports whether the component's install marker is present.
// For the flatpak removal component the marker is the flatpak itself.
func (i *Installer) Detected(id component.ID) bool {
	switch id {
	case component.InputLeap:
		return i.inputLeapPresent()
	case component.TailscaleEphemeral, component.TailscalePersistent:
		return i.tailscalePresent()
	case component.RemoveFlatpakInputLeap:
		return i.flatpakInputLeapPresent()
	}
	return false
}
