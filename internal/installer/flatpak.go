package installer

import (
	"fmt"

	"github.com/rigup-dev/rigup/internal/messages"
)

// flatpakInputLeapRef is the flathub application ID for Input Leap.
const flatpakInputLeapRef = "io.github.input_leap.input-leap"

// RemoveFlatpakInputLeap removes the sandboxed flatpak packaging of Input
// Leap so it does not coexist with the native install. Absence and removal
// failure are both non-fatal.
func (i *Installer) RemoveFlatpakInputLeap() error {
	if !i.flatpakInputLeapPresent() {
		_, _ = fmt.Fprintf(i.Out, messages.RemoveAbsentFmt, messages.FlatpakInputLeapLabel)
		return nil
	}
	_, _ = fmt.Fprintf(i.Out, messages.RemoveStartFmt, messages.FlatpakInputLeapLabel)
	if err := i.Sys.Privileged("flatpak", "uninstall", "-y", flatpakInputLeapRef); err != nil {
		_, _ = fmt.Fprintf(i.Out, messages.RemoveFailedWarnFmt, messages.FlatpakInputLeapLabel, err)
		return nil
	}
	_, _ = fmt.Fprintf(i.Out, messages.RemoveDoneFmt, messages.FlatpakInputLeapLabel)
	return nil
}

func (i *Installer) flatpakInputLeapPresent() bool {
	if _, err := i.Sys.LookPath("flatpak"); err != nil {
		return false
	}
	_, err := i.Sys.Output("flatpak", "info", flatpakInputLeapRef)
	return err == nil
}
