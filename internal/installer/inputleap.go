package installer

import (
	"fmt"

	"github.com/rigup-dev/rigup/internal/messages"
)

// Input Leap ships both a combined binary and the legacy split client.
var inputLeapBinaries = []string{"input-leap", "input-leapc"}

// InputLeap installs Input Leap from the configured .deb release. A host
// that already has the binary on PATH is reported and left untouched.
func (i *Installer) InputLeap() error {
	if i.inputLeapPresent() {
		_, _ = fmt.Fprintf(i.Out, messages.AlreadyInstalledFmt, messages.InputLeapLabel)
		return nil
	}
	_, _ = fmt.Fprintf(i.Out, messages.InstallStartFmt, messages.InputLeapLabel)

	url := i.Cfg.ResolvedDebURL()
	scratch, err := i.Sys.CreateScratch("inputleap-*.deb")
	if err != nil {
		return fmt.Errorf(messages.ScratchErrFmt, ErrFetch, messages.InputLeapLabel, err)
	}
	// The scratch artifact is removed regardless of install outcome.
	defer func() {
		_ = i.Sys.Remove(scratch)
	}()

	_, _ = fmt.Fprintf(i.Out, messages.DownloadFmt, url)
	if err := i.Sys.Download(url, scratch); err != nil {
		return fmt.Errorf(messages.FetchErrFmt, ErrFetch, url, err)
	}
	// apt resolves and installs the package's transitive dependencies.
	if err := i.Sys.Privileged("apt-get", "install", "-y", scratch); err != nil {
		return fmt.Errorf(messages.InstallErrFmt, ErrInstall, messages.InputLeapLabel, err)
	}
	_, _ = fmt.Fprintf(i.Out, messages.InstallDoneFmt, messages.InputLeapLabel)
	return nil
}

func (i *Installer) inputLeapPresent() bool {
	for _, name := range inputLeapBinaries {
		if _, err := i.Sys.LookPath(name); err == nil {
			return true
		}
	}
	return false
}
