// Package service enables and starts systemd units, tolerating their
// absence on hosts that do not carry them.
package service

import (
	"fmt"
	"io"

	"github.com/rigup-dev/rigup/internal/messages"
	"github.com/rigup-dev/rigup/internal/system"
)

// EnableAndStart enables and starts unit if systemd knows it. An unknown
// unit is a warning no-op, and enable/start errors warn rather than fail:
// a component is still usable without its service running.
func EnableAndStart(sys system.System, out io.Writer, unit string) {
	if !unitKnown(sys, unit) {
		_, _ = fmt.Fprintf(out, messages.ServiceUnknownWarnFmt, unit)
		return
	}
	if err := sys.Privileged("systemctl", "enable", "--now", unit); err != nil {
		_, _ = fmt.Fprintf(out, messages.ServiceEnableWarnFmt, unit, err)
		return
	}
	_, _ = fmt.Fprintf(out, messages.ServiceEnabledFmt, unit)
}

// IsActive reports whether the unit is currently active.
func IsActive(sys system.System, unit string) bool {
	state, err := sys.Output("systemctl", "is-active", unit)
	return err == nil && state == "active"
}

func unitKnown(sys system.System, unit string) bool {
	out, err := sys.Output("systemctl", "list-unit-files", "--no-legend", unit+".service")
	return err == nil && out != ""
}
