package system

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandLine(t *testing.T) {
	assert.Equal(t, "apt-get", commandLine("apt-get", nil))
	assert.Equal(t, "apt-get install -y curl", commandLine("apt-get", []string{"install", "-y", "curl"}))
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	sys := NewRealSystem(io.Discard, io.Discard, nil)
	dest := filepath.Join(t.TempDir(), "artifact")
	require.NoError(t, sys.Download(srv.URL, dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestDownloadNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	sys := NewRealSystem(io.Discard, io.Discard, nil)
	err := sys.Download(srv.URL, filepath.Join(t.TempDir(), "artifact"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestCreateScratchAndRemove(t *testing.T) {
	sys := NewRealSystem(io.Discard, io.Discard, nil)
	path, err := sys.CreateScratch("rigup-test-*.tmp")
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, sys.Remove(path))

	// Removing an already-absent path is not an error.
	require.NoError(t, sys.Remove(path))
}

func TestRunTracesWhenVerbose(t *testing.T) {
	var trace bytes.Buffer
	logger := log.New(&trace)
	logger.SetLevel(log.DebugLevel)

	sys := NewRealSystem(io.Discard, io.Discard, logger)
	require.NoError(t, sys.Run("true"))
	assert.Contains(t, trace.String(), "true")
}

func TestDryRunPrintsInsteadOfExecuting(t *testing.T) {
	var out bytes.Buffer
	dry := &DryRun{System: NewRealSystem(io.Discard, io.Discard, nil), Out: &out}

	require.NoError(t, dry.Run("apt-get", "update"))
	require.NoError(t, dry.Privileged("apt-get", "install", "-y", "curl"))
	require.NoError(t, dry.Download("https://example.com/pkg.deb", "/tmp/pkg.deb"))

	assert.Contains(t, out.String(), "would run: apt-get update")
	assert.Contains(t, out.String(), "would run: sudo apt-get install -y curl")
	assert.Contains(t, out.String(), "would download: https://example.com/pkg.deb")
}

func TestDryRunScratchAndRemove(t *testing.T) {
	dry := &DryRun{System: NewRealSystem(io.Discard, io.Discard, nil), Out: io.Discard}

	path, err := dry.CreateScratch("pkg-*.deb")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pkg-*.deb", path)

	// Remove never touches the filesystem under dry run.
	require.NoError(t, dry.Remove("/definitely/not/a/real/path"))
}
