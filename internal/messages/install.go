package messages

// Installer messages covering detection, acquisition, and activation.
const (
	InstallStartFmt        = "Installing %s...\n"
	InstallDoneFmt         = "%s installed\n"
	AlreadyInstalledFmt    = "%s is already installed, skipping\n"
	UnknownComponentFmt    = "Warning: unknown component %q, skipping\n"
	RemoveStartFmt         = "Removing %s...\n"
	RemoveDoneFmt          = "%s removed\n"
	RemoveAbsentFmt        = "%s is not present, nothing to remove\n"
	RemoveFailedWarnFmt    = "Warning: failed to remove %s: %v\n"
	DownloadFmt            = "Downloading %s\n"
	FetchErrFmt            = "%w: download %s: %v"
	InstallErrFmt          = "%w: install %s: %v"
	ActivationErrFmt       = "%w: bring up %s: %v"
	ScratchErrFmt          = "%w: scratch file for %s: %v"
	TailscaleLoggedInFmt   = "Tailscale is already logged in (address %s), skipping authentication\n"
	TailscaleAddressFmt    = "Tailscale address: %s\n"
	TailscaleUpFmt         = "Bringing Tailscale up in %s mode...\n"
	AuthKeyMissingFmt      = "auth key for %s is not set; supply %s or the matching config field"
	FlatpakInputLeapLabel  = "flatpak Input Leap"
	InputLeapLabel         = "Input Leap"
	TailscaleLabel         = "Tailscale"
	TailscaleEphemeralMode = "ephemeral"
	TailscalePersistMode   = "persistent"
)

// Service activation messages.
const (
	ServiceUnknownWarnFmt = "Warning: service %s is not known to systemd, skipping\n"
	ServiceEnableWarnFmt  = "Warning: failed to enable %s: %v\n"
	ServiceEnabledFmt     = "Service %s enabled and started\n"
)
