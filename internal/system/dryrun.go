package system

import (
	"fmt"
	"io"

	"github.com/rigup-dev/rigup/internal/messages"
)

// DryRun wraps a System, printing mutating operations instead of executing
// them. Read-only probes (LookPath, Output, ReadFile) pass through so
// detection still reflects the real host.
type DryRun struct {
	System
	Out io.Writer
}

// Run prints the command instead of executing it.
func (d *DryRun) Run(name string, args ...string) error {
	_, _ = fmt.Fprintf(d.Out, messages.SystemDryRunFmt, commandLine(name, args))
	return nil
}

// Privileged prints the command instead of executing it.
func (d *DryRun) Privileged(name string, args ...string) error {
	_, _ = fmt.Fprintf(d.Out, messages.SystemDryRunFmt, commandLine("sudo "+name, args))
	return nil
}

// Download prints the fetch instead of performing it.
func (d *DryRun) Download(url string, dest string) error {
	_, _ = fmt.Fprintf(d.Out, messages.SystemDryRunFetchFmt, url)
	return nil
}

// CreateScratch reports a placeholder path without touching the filesystem.
func (d *DryRun) CreateScratch(pattern string) (string, error) {
	return "/tmp/" + pattern, nil
}

// Remove is a no-op under dry run.
func (d *DryRun) Remove(path string) error {
	return nil
}
