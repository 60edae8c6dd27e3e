// Package doctor runs read-only host health checks for the doctor command.
package doctor

import (
	"fmt"

	"github.com/rigup-dev/rigup/internal/component"
	"github.com/rigup-dev/rigup/internal/installer"
	"github.com/rigup-dev/rigup/internal/messages"
	"github.com/rigup-dev/rigup/internal/probe"
	"github.com/rigup-dev/rigup/internal/service"
	"github.com/rigup-dev/rigup/internal/system"
)

// Status classifies a check result.
type Status int

// Check statuses.
const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Result is one health check outcome.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// CheckPlatform reports whether the host is Debian-family.
func CheckPlatform(p *probe.Prober) Result {
	id, like, err := p.Platform()
	if err != nil {
		return Result{Status: StatusFail, CheckName: messages.DoctorCheckNamePlatform, Message: err.Error()}
	}
	if !probe.DebianFamily(id, like) {
		return Result{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNamePlatform,
			Message:   fmt.Sprintf(messages.ProbeUnsupportedFmt, id),
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePlatform,
		Message:   fmt.Sprintf(messages.DoctorPlatformOKFmt, id),
	}
}

// CheckElevation reports whether privileged commands can run.
func CheckElevation(p *probe.Prober) Result {
	if err := p.EnsureElevated(); err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameElevation,
			Message:        err.Error(),
			Recommendation: messages.DoctorElevationAdvice,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameElevation,
		Message:   messages.DoctorElevationOK,
	}
}

// CheckTools reports which prerequisite tools are on PATH. Missing tools
// are warnings: the run installs them itself.
func CheckTools(sys system.System, names ...string) []Result {
	results := make([]Result, 0, len(names))
	for _, name := range names {
		if _, err := sys.LookPath(name); err != nil {
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameTools,
				Message:        fmt.Sprintf(messages.DoctorToolMissingFmt, name),
				Recommendation: messages.DoctorToolMissingAdvice,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameTools,
			Message:   fmt.Sprintf(messages.DoctorToolPresentFmt, name),
		})
	}
	return results
}

// CheckService reports whether the named systemd unit is active.
func CheckService(sys system.System, unit string) Result {
	if service.IsActive(sys, unit) {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameService,
			Message:   fmt.Sprintf(messages.DoctorServiceActiveFmt, unit),
		}
	}
	return Result{
		Status:    StatusWarn,
		CheckName: messages.DoctorCheckNameService,
		Message:   fmt.Sprintf(messages.DoctorServiceInactiveFmt, unit),
	}
}

// CheckTailscale reports the Tailscale install and login state.
func CheckTailscale(inst *installer.Installer) Result {
	if addr, ok := inst.TailscaleAddress(); ok {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameTailscale,
			Message:   fmt.Sprintf(messages.DoctorTailscaleLoggedIn, addr),
		}
	}
	if inst.Detected(component.TailscalePersistent) {
		return Result{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameTailscale,
			Message:   messages.DoctorTailscaleLoggedOut,
		}
	}
	return Result{
		Status:    StatusWarn,
		CheckName: messages.DoctorCheckNameTailscale,
		Message:   messages.DoctorTailscaleAbsent,
	}
}
