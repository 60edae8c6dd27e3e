package messages

// System and probe messages.
const (
	ProbeNoElevation        = "elevated access is required: run as root or configure passwordless sudo"
	ProbeUnsupportedFmt     = "unsupported platform %q: rigup targets Debian-family systems"
	ProbeUnsupportedWarnFmt = "Warning: unsupported platform %q, continuing anyway\n"
	ProbeToolInstallFmt     = "Installing prerequisite %s...\n"
	ProbeToolErrFmt         = "install prerequisite %s: %w"
	ProbeOSReleaseErrFmt    = "read %s: %w"

	SystemDryRunFmt      = "would run: %s\n"
	SystemDryRunFetchFmt = "would download: %s\n"

	ConfigReadErrFmt       = "read config %s: %w"
	ConfigParseErrFmt      = "parse config %s: %w"
	ConfigVersionRequired  = "inputleap version must not be empty"
	ConfigURLRequired      = "inputleap deb URL template must not be empty"
	ConfigURLInvalidFmt    = "inputleap deb URL %q is not a valid URL: %v"
	ConfigHomeDirErrFmt    = "resolve home dir: %w"
)
