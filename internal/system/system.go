// Package system abstracts the host operations rigup performs: process
// execution, privilege escalation, network fetches, and scratch files.
// Installers and probes depend on the System interface so tests can record
// commands without touching the host.
package system

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"
)

// System is the host surface consumed by installers, probes, and the
// service activator.
type System interface {
	// LookPath reports where name resolves on PATH.
	LookPath(name string) (string, error)
	// Run executes a command with stdio attached to the run's writers.
	Run(name string, args ...string) error
	// Privileged runs a command through sudo when not already root.
	Privileged(name string, args ...string) error
	// Output runs a command and returns its trimmed stdout.
	Output(name string, args ...string) (string, error)
	// Download fetches url into dest.
	Download(url string, dest string) error
	// CreateScratch creates a scratch file and returns its path.
	CreateScratch(pattern string) (string, error)
	// Remove deletes a path, tolerating absence.
	Remove(path string) error
	// ReadFile reads the named file.
	ReadFile(name string) ([]byte, error)
	// Geteuid returns the effective user ID.
	Geteuid() int
	// LookupEnv returns the value and presence of an environment variable.
	LookupEnv(key string) (string, bool)
}

// RealSystem implements System against the live host.
type RealSystem struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
	Client *http.Client
}

// NewRealSystem builds a RealSystem writing command output to stdout/stderr.
func NewRealSystem(stdout io.Writer, stderr io.Writer, logger *log.Logger) *RealSystem {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &RealSystem{
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Client: &http.Client{Timeout: 5 * time.Minute},
	}
}

// LookPath reports where name resolves on PATH.
func (s *RealSystem) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes a command with stdio attached to the configured writers.
func (s *RealSystem) Run(name string, args ...string) error {
	s.Logger.Debug("exec", "command", commandLine(name, args))
	cmd := exec.Command(name, args...)
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	return cmd.Run()
}

// Privileged runs a command through sudo unless already root.
func (s *RealSystem) Privileged(name string, args ...string) error {
	if s.Geteuid() == 0 {
		return s.Run(name, args...)
	}
	return s.Run("sudo", append([]string{name}, args...)...)
}

// Output runs a command and returns its trimmed stdout.
func (s *RealSystem) Output(name string, args ...string) (string, error) {
	s.Logger.Debug("exec", "command", commandLine(name, args))
	out, err := exec.Command(name, args...).Output()
	return strings.TrimSpace(string(out)), err
}

// Download fetches url into dest.
func (s *RealSystem) Download(url string, dest string) error {
	s.Logger.Debug("download", "url", url, "dest", dest)
	resp, err := s.Client.Get(url)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	file, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(file, resp.Body); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// CreateScratch creates a scratch file under the system temp dir.
func (s *RealSystem) CreateScratch(pattern string) (string, error) {
	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	path := file.Name()
	if err := file.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// Remove deletes a path, tolerating absence.
func (s *RealSystem) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// ReadFile reads the named file.
func (s *RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Geteuid returns the effective user ID.
func (s *RealSystem) Geteuid() int {
	return unix.Geteuid()
}

// LookupEnv returns the value and presence of an environment variable.
func (s *RealSystem) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
