package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "rigup"
	// RootShort is the short description for the root command.
	RootShort = "Bootstrap installer for Debian-family workstations"
	RootLong  = `rigup installs a fixed set of optional workstation components.

Run with no arguments for an interactive checklist (or a numbered menu when
no terminal is available), or select components directly with flags.

Components:
  inputleap                 Input Leap (cross-machine keyboard/mouse sharing)
  tailscale-ephemeral       Tailscale mesh VPN, session-only connection
  tailscale-persistent      Tailscale mesh VPN, survives reboots
  remove-flatpak-inputleap  Remove the flatpak packaging of Input Leap`

	RootFlagAll            = "Install the canonical component set non-interactively"
	RootFlagApps           = "Space-separated component identifiers to install"
	RootFlagStrictPlatform = "Fail instead of warn when the host is not Debian-family"
	RootFlagDryRun         = "Print the commands that would run without executing them"
	RootFlagVerbose        = "Log every external command to stderr"
	RootVersionFlag        = "Print version and exit"

	RootUnknownFlagFmt = "Warning: ignoring unrecognized flag %s\n"
	RootNothingChosen  = "Nothing selected."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// ListUse is the list command name.
	ListUse     = "list"
	ListShort   = "Show each component and its detected install state"
	ListLineFmt = "%-26s %-10s %s\n"

	ListStateInstalled    = "installed"
	ListStateNotInstalled = "absent"

	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the host environment for problems"

	DoctorStatusOKLabel   = "[OK]"
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"
	DoctorResultLineFmt   = "%s %s: %s\n"
	DoctorRecommendPrefix = "       -> "
	DoctorFailureSummary  = "Doctor found problems."
	DoctorSuccessSummary  = "Host looks healthy."
	DoctorFailureError    = "doctor checks failed"

	DoctorCheckNamePlatform  = "Platform"
	DoctorCheckNameElevation = "Elevation"
	DoctorCheckNameTools     = "Tools"
	DoctorCheckNameService   = "Service"
	DoctorCheckNameTailscale = "Tailscale"

	DoctorPlatformOKFmt      = "detected %s"
	DoctorElevationOK        = "elevated access available"
	DoctorElevationAdvice    = "run as root or configure passwordless sudo"
	DoctorToolPresentFmt     = "%s is available"
	DoctorToolMissingFmt     = "%s is not on PATH"
	DoctorToolMissingAdvice  = "rigup installs missing prerequisite tools automatically at run time"
	DoctorServiceActiveFmt   = "%s is active"
	DoctorServiceInactiveFmt = "%s is not active"
	DoctorServiceUnknownFmt  = "%s is not known to systemd"
	DoctorTailscaleLoggedIn  = "logged in, address %s"
	DoctorTailscaleLoggedOut = "installed but logged out"
	DoctorTailscaleAbsent    = "not installed"

	// MenuTitle is shown above the interactive checklist.
	MenuTitle        = "Select components to install"
	MenuNumberedHead = "Components:"
	MenuNumberedItem = "  %d) %s\n"
	MenuNumberedQuit = "  q) quit\n"
	MenuPrompt       = "Select a component (or q to quit): "
	MenuInvalidFmt   = "Warning: %q is not a valid choice\n"

	// SummaryHeader precedes the per-component outcome list.
	SummaryHeader     = "Summary:"
	SummaryOKFmt      = "  %s: ok\n"
	SummaryFailedFmt  = "  %s: failed (%v)\n"
	SummaryFailureFmt = "%d component(s) failed"
)
