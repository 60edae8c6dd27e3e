package installer

import (
	"fmt"
	"strings"

	"github.com/rigup-dev/rigup/internal/messages"
	"github.com/rigup-dev/rigup/internal/service"
)

const (
	tailscaleInstallURL = "https://tailscale.com/install.sh"
	tailscaleUnit       = "tailscaled"
)

// TailscaleEphemeral installs Tailscale and brings it up with the ephemeral
// auth key. The connection does not survive the session; SSH access is
// registered in both modes.
func (i *Installer) TailscaleEphemeral() error {
	return i.tailscale(messages.TailscaleEphemeralMode, i.Cfg.EphemeralAuthKey)
}

// TailscalePersistent installs Tailscale and brings it up with the
// persistent auth key, surviving reboots.
func (i *Installer) TailscalePersistent() error {
	return i.tailscale(messages.TailscalePersistMode, i.Cfg.PersistentAuthKey)
}

func (i *Installer) tailscale(mode string, authKey string) error {
	if i.tailscalePresent() {
		_, _ = fmt.Fprintf(i.Out, messages.AlreadyInstalledFmt, messages.TailscaleLabel)
	} else if err := i.installTailscale(); err != nil {
		return err
	}
	return i.activateTailscale(mode, authKey)
}

// installTailscale fetches the vendor install script to a scratch file and
// runs it. The script handles apt repository setup and package install.
func (i *Installer) installTailscale() error {
	_, _ = fmt.Fprintf(i.Out, messages.InstallStartFmt, messages.TailscaleLabel)
	scratch, err := i.Sys.CreateScratch("tailscale-install-*.sh")
	if err != nil {
		return fmt.Errorf(messages.ScratchErrFmt, ErrFetch, messages.TailscaleLabel, err)
	}
	defer func() {
		_ = i.Sys.Remove(scratch)
	}()

	_, _ = fmt.Fprintf(i.Out, messages.DownloadFmt, tailscaleInstallURL)
	if err := i.Sys.Download(tailscaleInstallURL, scratch); err != nil {
		return fmt.Errorf(messages.FetchErrFmt, ErrFetch, tailscaleInstallURL, err)
	}
	if err := i.Sys.Run("sh", scratch); err != nil {
		return fmt.Errorf(messages.InstallErrFmt, ErrInstall, messages.TailscaleLabel, err)
	}
	service.EnableAndStart(i.Sys, i.Out, tailscaleUnit)
	_, _ = fmt.Fprintf(i.Out, messages.InstallDoneFmt, messages.TailscaleLabel)
	return nil
}

// activateTailscale brings the interface up unless a session already
// exists, in which case authentication is skipped and the current address
// reported.
func (i *Installer) activateTailscale(mode string, authKey string) error {
	if addr, ok := i.tailscaleLoggedIn(); ok {
		_, _ = fmt.Fprintf(i.Out, messages.TailscaleLoggedInFmt, addr)
		return nil
	}
	_, _ = fmt.Fprintf(i.Out, messages.TailscaleUpFmt, mode)
	if err := i.Sys.Privileged("tailscale", "up", "--auth-key="+authKey, "--ssh", "--timeout=30s"); err != nil {
		return fmt.Errorf(messages.ActivationErrFmt, ErrActivation, mode, err)
	}
	if addr, err := i.Sys.Output("tailscale", "ip", "-4"); err == nil && addr != "" {
		_, _ = fmt.Fprintf(i.Out, messages.TailscaleAddressFmt, addr)
	}
	return nil
}

// TailscaleAddress reports the current Tailscale address when a session
// exists. Used by the doctor and list commands.
func (i *Installer) TailscaleAddress() (string, bool) {
	return i.tailscaleLoggedIn()
}

func (i *Installer) tailscalePresent() bool {
	_, err := i.Sys.LookPath("tailscale")
	return err == nil
}

// tailscaleLoggedIn reports the current address when a session exists.
func (i *Installer) tailscaleLoggedIn() (string, bool) {
	if !i.tailscalePresent() {
		return "", false
	}
	status, err := i.Sys.Output("tailscale", "status", "--peers=false")
	if err != nil || strings.Contains(status, "Logged out") {
		return "", false
	}
	addr, err := i.Sys.Output("tailscale", "ip", "-4")
	if err != nil || addr == "" {
		return "", false
	}
	return addr, true
}
