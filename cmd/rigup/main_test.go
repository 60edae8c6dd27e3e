package main

import (
	"bytes"
	"errors"
	"io"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubExecute(t *testing.T, err error) {
	t.Helper()
	prev := executeFunc
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error { return err }
	t.Cleanup(func() { executeFunc = prev })
}

func TestRunMainSuccess(t *testing.T) {
	stubExecute(t, nil)
	exited := false
	runMain([]string{"rigup"}, io.Discard, io.Discard, func(int) { exited = true })
	assert.False(t, exited)
}

func TestRunMainError(t *testing.T) {
	stubExecute(t, errors.New("1 component(s) failed"))
	var stderr bytes.Buffer
	code := -1
	runMain([]string{"rigup"}, io.Discard, &stderr, func(c int) { code = c })
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "1 component(s) failed")
}

func TestRunMainSilentExit(t *testing.T) {
	stubExecute(t, &SilentExitError{Code: 3})
	var stderr bytes.Buffer
	code := -1
	runMain([]string{"rigup"}, io.Discard, &stderr, func(c int) { code = c })
	assert.Equal(t, 3, code)
	assert.Empty(t, stderr.String())
}

func TestRunMainExitError(t *testing.T) {
	err := exec.Command("sh", "-c", "exit 7").Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)

	stubExecute(t, err)
	code := -1
	runMain([]string{"rigup"}, io.Discard, io.Discard, func(c int) { code = c })
	assert.Equal(t, 7, code)
}

func TestVersionString(t *testing.T) {
	prevVersion, prevCommit, prevDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = prevVersion, prevCommit, prevDate })

	Version, Commit, BuildDate = "1.2.3", "unknown", "unknown"
	assert.Equal(t, "1.2.3", versionString())

	Commit = "abc1234"
	assert.Equal(t, "1.2.3 (commit abc1234)", versionString())

	BuildDate = "2026-08-25"
	assert.Equal(t, "1.2.3 (commit abc1234, built 2026-08-25)", versionString())
}

func TestExecuteVersionFlag(t *testing.T) {
	sys := newReadySystem()
	stubSeams(t, sys)

	var stdout bytes.Buffer
	err := execute([]string{"rigup", "--version"}, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), Version)
}
