package probe

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigup-dev/rigup/internal/testutil"
)

func TestEnsureElevatedRoot(t *testing.T) {
	sys := testutil.NewFakeSystem()
	p := &Prober{Sys: sys, Out: &bytes.Buffer{}}
	require.NoError(t, p.EnsureElevated())
	assert.Empty(t, sys.Commands)
}

func TestEnsureElevatedSudo(t *testing.T) {
	sys := testutil.NewFakeSystem()
	sys.Euid = 1000
	sys.Binaries["sudo"] = true
	p := &Prober{Sys: sys, Out: &bytes.Buffer{}}
	require.NoError(t, p.EnsureElevated())
	assert.Equal(t, []string{"sudo -n true"}, sys.Commands)
}

func TestEnsureElevatedNoSudo(t *testing.T) {
	sys := testutil.NewFakeSystem()
	sys.Euid = 1000
	p := &Prober{Sys: sys, Out: &bytes.Buffer{}}
	err := p.EnsureElevated()
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestEnsureElevatedSudoRefused(t *testing.T) {
	sys := testutil.NewFakeSystem()
	sys.Euid = 1000
	sys.Binaries["sudo"] = true
	sys.RunErrs["sudo -n true"] = errors.New("a password is required")
	p := &Prober{Sys: sys, Out: &bytes.Buffer{}}
	assert.ErrorIs(t, p.EnsureElevated(), ErrPermissionDenied)
}

func setOSRelease(t *testing.T, sys *testutil.FakeSystem, content string) {
	t.Helper()
	prev := osReleasePath
	osReleasePath = "/test/os-release"
	t.Cleanup(func() { osReleasePath = prev })
	sys.Files[osReleasePath] = []byte(content)
}

func TestCheckPlatformDebian(t *testing.T) {
	sys := testutil.NewFakeSystem()
	setOSRelease(t, sys, "ID=debian\nVERSION_ID=\"12\"\n")
	p := &Prober{Sys: sys, Out: &bytes.Buffer{}}
	require.NoError(t, p.CheckPlatform())
}

func TestCheckPlatformDerivative(t *testing.T) {
	sys := testutil.NewFakeSystem()
	setOSRelease(t, sys, "ID=ubuntu\nID_LIKE=debian\n")
	p := &Prober{Sys: sys, Out: &bytes.Buffer{}}
	require.NoError(t, p.CheckPlatform())
}

func TestCheckPlatformLenientWarns(t *testing.T) {
	sys := testutil.NewFakeSystem()
	setOSRelease(t, sys, "ID=fedora\n")
	var out bytes.Buffer
	p := &Prober{Sys: sys, Out: &out}
	require.NoError(t, p.CheckPlatform())
	assert.Contains(t, out.String(), "fedora")
}

func TestCheckPlatformStrictFails(t *testing.T) {
	sys := testutil.NewFakeSystem()
	setOSRelease(t, sys, "ID=fedora\n")
	p := &Prober{Sys: sys, Out: &bytes.Buffer{}, Strict: true}
	err := p.CheckPlatform()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
	assert.Contains(t, err.Error(), "fedora")
}

func TestCheckPlatformMissingOSRelease(t *testing.T) {
	sys := testutil.NewFakeSystem()
	p := &Prober{Sys: sys, Out: &bytes.Buffer{}}
	require.Error(t, p.CheckPlatform())
}

func TestPlatformParsesQuotedValues(t *testing.T) {
	sys := testutil.NewFakeSystem()
	setOSRelease(t, sys, "ID=\"linuxmint\"\nID_LIKE=\"ubuntu debian\"\n")
	p := &Prober{Sys: sys, Out: &bytes.Buffer{}}
	id, like, err := p.Platform()
	require.NoError(t, err)
	assert.Equal(t, "linuxmint", id)
	assert.Equal(t, "ubuntu debian", like)
}

func TestDebianFamily(t *testing.T) {
	assert.True(t, DebianFamily("debian", ""))
	assert.True(t, DebianFamily("ubuntu", "debian"))
	assert.True(t, DebianFamily("linuxmint", "ubuntu debian"))
	assert.False(t, DebianFamily("fedora", ""))
	assert.False(t, DebianFamily("arch", "archlinux"))
}

func TestEnsureToolsAllPresent(t *testing.T) {
	sys := testutil.NewFakeSystem()
	sys.Binaries["curl"] = true
	p := &Prober{Sys: sys, Out: &bytes.Buffer{}}
	require.NoError(t, p.EnsureTools("curl"))
	assert.Empty(t, sys.Commands)
}

func TestEnsureToolsInstallsMissing(t *testing.T) {
	sys := testutil.NewFakeSystem()
	var out bytes.Buffer
	p := &Prober{Sys: sys, Out: &out}
	require.NoError(t, p.EnsureTools("curl"))
	assert.Equal(t, []string{
		"apt-get update",
		"apt-get install -y curl",
	}, sys.Commands)
	assert.Contains(t, out.String(), "curl")
}

func TestEnsureToolsInstallFailureIsFatal(t *testing.T) {
	sys := testutil.NewFakeSystem()
	sys.RunErrs["apt-get install -y curl"] = errors.New("exit status 100")
	p := &Prober{Sys: sys, Out: &bytes.Buffer{}}
	err := p.EnsureTools("curl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "curl")
}
