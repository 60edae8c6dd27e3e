// Package testutil provides the recording fake System shared by tests.
package testutil

import (
	"errors"
	"os"
	"strings"
)

// ErrNotFound is returned by FakeSystem.LookPath for absent binaries.
var ErrNotFound = errors.New("executable not found")

// FakeSystem implements system.System entirely in memory, recording every
// mutating call so tests can assert exactly which host commands a run
// would have executed.
type FakeSystem struct {
	// Binaries maps names LookPath resolves successfully.
	Binaries map[string]bool
	// Outputs maps a full command line to the stdout Output returns.
	Outputs map[string]string
	// OutputErrs maps a full command line to an Output error.
	OutputErrs map[string]error
	// RunErrs maps a full command line to a Run/Privileged error.
	RunErrs map[string]error
	// Files backs ReadFile.
	Files map[string][]byte
	// Env backs LookupEnv.
	Env map[string]string

	DownloadErr error
	ScratchErr  error
	Euid        int

	// Commands records every Run and Privileged invocation in order.
	Commands []string
	// Downloads records every Download URL in order.
	Downloads []string
	// Removed records every Remove path in order.
	Removed []string
}

// NewFakeSystem returns a root-privileged fake with empty state.
func NewFakeSystem() *FakeSystem {
	return &FakeSystem{
		Binaries:   map[string]bool{},
		Outputs:    map[string]string{},
		OutputErrs: map[string]error{},
		RunErrs:    map[string]error{},
		Files:      map[string][]byte{},
		Env:        map[string]string{},
	}
}

// LookPath resolves names registered in Binaries.
func (f *FakeSystem) LookPath(name string) (string, error) {
	if f.Binaries[name] {
		return "/usr/bin/" + name, nil
	}
	return "", ErrNotFound
}

// Run records the command and returns any configured error.
func (f *FakeSystem) Run(name string, args ...string) error {
	line := commandLine(name, args)
	f.Commands = append(f.Commands, line)
	return f.RunErrs[line]
}

// Privileged behaves like Run; the fake is always "root".
func (f *FakeSystem) Privileged(name string, args ...string) error {
	return f.Run(name, args...)
}

// Output returns the configured stdout for the command line.
func (f *FakeSystem) Output(name string, args ...string) (string, error) {
	line := commandLine(name, args)
	if err, ok := f.OutputErrs[line]; ok {
		return "", err
	}
	out, ok := f.Outputs[line]
	if !ok {
		return "", ErrNotFound
	}
	return out, nil
}

// Download records the URL and returns any configured error.
func (f *FakeSystem) Download(url string, dest string) error {
	f.Downloads = append(f.Downloads, url)
	return f.DownloadErr
}

// CreateScratch returns a deterministic scratch path.
func (f *FakeSystem) CreateScratch(pattern string) (string, error) {
	if f.ScratchErr != nil {
		return "", f.ScratchErr
	}
	return "/tmp/" + pattern, nil
}

// Remove records the removed path.
func (f *FakeSystem) Remove(path string) error {
	f.Removed = append(f.Removed, path)
	return nil
}

// ReadFile serves from Files.
func (f *FakeSystem) ReadFile(name string) ([]byte, error) {
	data, ok := f.Files[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

// Geteuid returns the configured effective UID.
func (f *FakeSystem) Geteuid() int {
	return f.Euid
}

// LookupEnv serves from Env.
func (f *FakeSystem) LookupEnv(key string) (string, bool) {
	v, ok := f.Env[key]
	return v, ok
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
