// Package probe checks the host before any component runs: elevated access,
// platform family, and prerequisite tools.
package probe

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rigup-dev/rigup/internal/messages"
	"github.com/rigup-dev/rigup/internal/system"
)

// Fatal and warning conditions detected before dispatch.
var (
	// ErrPermissionDenied means no elevated access is available. Fatal for
	// the whole run.
	ErrPermissionDenied = errors.New(messages.ProbeNoElevation)
	// ErrUnsupportedPlatform means the host is not Debian-family. Fatal only
	// in strict mode; a warning otherwise.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// osReleasePath is a variable so tests can point it at a fixture.
var osReleasePath = "/etc/os-release"

// Prober runs the pre-dispatch host checks.
type Prober struct {
	Sys system.System
	// Out receives non-fatal warnings.
	Out io.Writer
	// Strict turns the platform mismatch warning into a hard failure.
	Strict bool
}

// EnsureElevated verifies rigup can run privileged commands: either the
// process is root, or passwordless sudo works.
func (p *Prober) EnsureElevated() error {
	if p.Sys.Geteuid() == 0 {
		return nil
	}
	if _, err := p.Sys.LookPath("sudo"); err != nil {
		return ErrPermissionDenied
	}
	if err := p.Sys.Run("sudo", "-n", "true"); err != nil {
		return ErrPermissionDenied
	}
	return nil
}

// CheckPlatform verifies the host is Debian-family. In lenient mode a
// mismatch warns and continues; in strict mode it fails the run.
func (p *Prober) CheckPlatform() error {
	id, like, err := p.Platform()
	if err != nil {
		return err
	}
	if DebianFamily(id, like) {
		return nil
	}
	if p.Strict {
		return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, fmt.Sprintf(messages.ProbeUnsupportedFmt, id))
	}
	_, _ = fmt.Fprintf(p.Out, messages.ProbeUnsupportedWarnFmt, id)
	return nil
}

// Platform returns the os-release ID and ID_LIKE values.
func (p *Prober) Platform() (id string, like string, err error) {
	data, err := p.Sys.ReadFile(osReleasePath)
	if err != nil {
		return "", "", fmt.Errorf(messages.ProbeOSReleaseErrFmt, osReleasePath, err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		key, value, found := strings.Cut(strings.TrimSpace(line), "=")
		if !found {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "ID":
			id = value
		case "ID_LIKE":
			like = value
		}
	}
	return id, like, nil
}

// DebianFamily reports whether the os-release ID/ID_LIKE pair names a
// Debian-family system.
func DebianFamily(id string, like string) bool {
	if id == "debian" {
		return true
	}
	for _, token := range strings.Fields(like) {
		if token == "debian" {
			return true
		}
	}
	return false
}

// EnsureTools installs any of the named prerequisite tools missing from
// PATH via the package manager. Failure here is fatal for the run.
func (p *Prober) EnsureTools(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, err := p.Sys.LookPath(name); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	for _, name := range missing {
		_, _ = fmt.Fprintf(p.Out, messages.ProbeToolInstallFmt, name)
	}
	if err := p.Sys.Privileged("apt-get", "update"); err != nil {
		return fmt.Errorf(messages.ProbeToolErrFmt, strings.Join(missing, " "), err)
	}
	args := append([]string{"install", "-y"}, missing...)
	if err := p.Sys.Privileged("apt-get", args...); err != nil {
		return fmt.Errorf(messages.ProbeToolErrFmt, strings.Join(missing, " "), err)
	}
	return nil
}
