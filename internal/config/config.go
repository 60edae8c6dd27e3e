// Package config holds the run configuration: component versions, download
// URLs, and Tailscale auth keys. Values come from an optional TOML file
// overlaid with RIGUP_* environment variables and are validated once at
// startup — never read lazily mid-run.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/rigup-dev/rigup/internal/component"
	"github.com/rigup-dev/rigup/internal/messages"
)

// Built-in defaults. Auth keys deliberately have no default: they must be
// supplied externally.
const (
	DefaultInputLeapVersion = "3.0.2"
	DefaultInputLeapDebURL  = "https://github.com/input-leap/input-leap/releases/download/v%[1]s/InputLeap_%[1]s_debian12_amd64.deb"
)

// Environment variable names recognized by Load.
const (
	EnvInputLeapVersion = "RIGUP_INPUTLEAP_VERSION"
	EnvInputLeapDebURL  = "RIGUP_INPUTLEAP_DEB_URL"
	EnvEphemeralKey     = "RIGUP_TS_EPHEMERAL_KEY"
	EnvPersistentKey    = "RIGUP_TS_PERSISTENT_KEY"
	EnvStrictPlatform   = "RIGUP_STRICT_PLATFORM"
)

// Config is the validated run configuration.
type Config struct {
	InputLeapVersion  string
	InputLeapDebURL   string // URL template; %[1]s is the version
	EphemeralAuthKey  string
	PersistentAuthKey string
	StrictPlatform    bool
}

// fileConfig mirrors the TOML layout of ~/.config/rigup/config.toml.
type fileConfig struct {
	StrictPlatform *bool `toml:"strict_platform"`
	InputLeap      struct {
		Version string `toml:"version"`
		DebURL  string `toml:"deb_url"`
	} `toml:"inputleap"`
	Tailscale struct {
		EphemeralAuthKey  string `toml:"ephemeral_auth_key"`
		PersistentAuthKey string `toml:"persistent_auth_key"`
	} `toml:"tailscale"`
}

// Source supplies the file and environment reads Load performs.
// system.RealSystem satisfies it.
type Source interface {
	ReadFile(name string) ([]byte, error)
	LookupEnv(key string) (string, bool)
}

// DefaultPath returns the config file location under the user's home.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigHomeDirErrFmt, err)
	}
	return filepath.Join(home, ".config", "rigup", "config.toml"), nil
}

// Load builds a Config from defaults, the TOML file at path (absence is not
// an error), and environment overrides, then validates it.
func Load(path string, src Source) (*Config, error) {
	cfg := &Config{
		InputLeapVersion: DefaultInputLeapVersion,
		InputLeapDebURL:  DefaultInputLeapDebURL,
	}

	if path != "" {
		data, err := src.ReadFile(path)
		switch {
		case err == nil:
			var fc fileConfig
			if err := toml.Unmarshal(data, &fc); err != nil {
				return nil, fmt.Errorf(messages.ConfigParseErrFmt, path, err)
			}
			cfg.applyFile(fc)
		case os.IsNotExist(err):
			// No config file is the common case.
		default:
			return nil, fmt.Errorf(messages.ConfigReadErrFmt, path, err)
		}
	}

	if err := cfg.applyEnv(src); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(fc fileConfig) {
	if fc.InputLeap.Version != "" {
		c.InputLeapVersion = fc.InputLeap.Version
	}
	if fc.InputLeap.DebURL != "" {
		c.InputLeapDebURL = fc.InputLeap.DebURL
	}
	if fc.Tailscale.EphemeralAuthKey != "" {
		c.EphemeralAuthKey = fc.Tailscale.EphemeralAuthKey
	}
	if fc.Tailscale.PersistentAuthKey != "" {
		c.PersistentAuthKey = fc.Tailscale.PersistentAuthKey
	}
	if fc.StrictPlatform != nil {
		c.StrictPlatform = *fc.StrictPlatform
	}
}

func (c *Config) applyEnv(src Source) error {
	if v, ok := src.LookupEnv(EnvInputLeapVersion); ok && v != "" {
		c.InputLeapVersion = v
	}
	if v, ok := src.LookupEnv(EnvInputLeapDebURL); ok && v != "" {
		c.InputLeapDebURL = v
	}
	if v, ok := src.LookupEnv(EnvEphemeralKey); ok && v != "" {
		c.EphemeralAuthKey = v
	}
	if v, ok := src.LookupEnv(EnvPersistentKey); ok && v != "" {
		c.PersistentAuthKey = v
	}
	if v, ok := src.LookupEnv(EnvStrictPlatform); ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStrictPlatform, err)
		}
		c.StrictPlatform = strict
	}
	return nil
}

// Validate checks the fields every run needs. Auth keys are checked
// separately per selection, since a run that never touches Tailscale does
// not need one.
func (c *Config) Validate() error {
	if c.InputLeapVersion == "" {
		return fmt.Errorf(messages.ConfigVersionRequired)
	}
	if c.InputLeapDebURL == "" {
		return fmt.Errorf(messages.ConfigURLRequired)
	}
	resolved := c.ResolvedDebURL()
	parsed, err := url.Parse(resolved)
	if err != nil {
		return fmt.Errorf(messages.ConfigURLInvalidFmt, resolved, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" || parsed.Host == "" {
		return fmt.Errorf(messages.ConfigURLInvalidFmt, resolved, fmt.Errorf("missing scheme or host"))
	}
	return nil
}

// ResolvedDebURL substitutes the configured version into the URL template.
func (c *Config) ResolvedDebURL() string {
	return fmt.Sprintf(c.InputLeapDebURL, c.InputLeapVersion)
}

// ValidateSelected fails fast when a selected Tailscale mode has no auth key.
func (c *Config) ValidateSelected(ids []component.ID) error {
	for _, id := range ids {
		switch id {
		case component.TailscaleEphemeral:
			if c.EphemeralAuthKey == "" {
				return fmt.Errorf(messages.AuthKeyMissingFmt, messages.TailscaleEphemeralMode, EnvEphemeralKey)
			}
		case component.TailscalePersistent:
			if c.PersistentAuthKey == "" {
				return fmt.Errorf(messages.AuthKeyMissingFmt, messages.TailscalePersistMode, EnvPersistentKey)
			}
		}
	}
	return nil
}
