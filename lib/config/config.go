// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] consults for a config
// file path.
const EnvironmentVariable = "MUGSHOT_CONFIG"

// Config is the master configuration for mugshot.
type Config struct {
	// Paths configures the files mugshot reads and writes.
	Paths PathsConfig `yaml:"paths"`

	// Privileged configures the account database write path.
	Privileged PrivilegedConfig `yaml:"privileged"`

	// Accounts configures the desktop identity service.
	Accounts AccountsConfig `yaml:"accounts"`

	// Chat configures the chat client integration.
	Chat ChatConfig `yaml:"chat"`
}

// PathsConfig configures file locations.
type PathsConfig struct {
	// Face is the local profile photo cache.
	// Default: ${HOME}/.face
	Face string `yaml:"face"`

	// OfficePrefs is the office suite user profile registry. The
	// office suite sink is only used when this file exists.
	// Default: ${HOME}/.config/libreoffice/4/user/registrymodifications.xcu
	OfficePrefs string `yaml:"office_prefs"`

	// ChatPrefs is the chat client preference file, edited when the
	// client is not running.
	// Default: ${HOME}/.purple/prefs.xml
	ChatPrefs string `yaml:"chat_prefs"`

	// LocalPrefs is the local override store for initials, email
	// and fax.
	// Default: ${XDG_CONFIG_HOME:-${HOME}/.config}/mugshot/preferences.cbor
	LocalPrefs string `yaml:"local_prefs"`
}

// PrivilegedConfig configures the password-gated account writes.
type PrivilegedConfig struct {
	// Sudo is the privilege escalation tool.
	// Default: sudo
	Sudo string `yaml:"sudo"`

	// Chfn is the account database editor.
	// Default: chfn
	Chfn string `yaml:"chfn"`

	// VerifyCommand is run through Sudo to check a password without
	// changing anything. Default: [-k, /bin/true]
	VerifyCommand []string `yaml:"verify_command"`

	// PromptTimeout bounds the wait for the password prompt.
	// Default: 5s
	PromptTimeout string `yaml:"prompt_timeout"`

	// MaxAttempts is the number of password attempts before giving up.
	// Default: 3
	MaxAttempts int `yaml:"max_attempts"`
}

// AccountsConfig configures the desktop identity service.
type AccountsConfig struct {
	// Enabled turns the system bus lookup on. Default: true
	Enabled bool `yaml:"enabled"`
}

// ChatConfig configures the chat client integration.
type ChatConfig struct {
	// ProcessName is matched against /proc/<pid>/comm to decide
	// between the live update and the preference file edit.
	// Default: pidgin
	ProcessName string `yaml:"process_name"`
}

// Default returns the default configuration. Paths contain unexpanded
// variables; [Load] and [LoadFile] expand them.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Face:        "${HOME}/.face",
			OfficePrefs: "${HOME}/.config/libreoffice/4/user/registrymodifications.xcu",
			ChatPrefs:   "${HOME}/.purple/prefs.xml",
			LocalPrefs:  "${XDG_CONFIG_HOME:-${HOME}/.config}/mugshot/preferences.cbor",
		},
		Privileged: PrivilegedConfig{
			Sudo:          "sudo",
			Chfn:          "chfn",
			VerifyCommand: []string{"-k", "/bin/true"},
			PromptTimeout: "5s",
			MaxAttempts:   3,
		},
		Accounts: AccountsConfig{
			Enabled: true,
		},
		Chat: ChatConfig{
			ProcessName: "pidgin",
		},
	}
}

// Load locates the configuration file and loads it. When no file is
// named by MUGSHOT_CONFIG and none exists at the XDG location, Load
// returns the expanded defaults.
func Load() (*Config, error) {
	if configPath := os.Getenv(EnvironmentVariable); configPath != "" {
		return LoadFile(configPath)
	}

	discovered := DiscoveredPath()
	if discovered != "" {
		if _, err := os.Stat(discovered); err == nil {
			return LoadFile(discovered)
		}
	}

	cfg := Default()
	cfg.expandVariables()
	return cfg, nil
}

// DiscoveredPath returns the XDG location of the configuration file,
// or empty when neither XDG_CONFIG_HOME nor HOME is set.
func DiscoveredPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home := os.Getenv("HOME")
		if home == "" {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "mugshot", "config.yaml")
}

// LoadFile loads configuration from a specific file path. A missing
// file is an error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.expandVariables()
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Paths.Face = expandVars(c.Paths.Face, vars)
	c.Paths.OfficePrefs = expandVars(c.Paths.OfficePrefs, vars)
	c.Paths.ChatPrefs = expandVars(c.Paths.ChatPrefs, vars)
	c.Paths.LocalPrefs = expandVars(c.Paths.LocalPrefs, vars)
}

// varPattern matches ${VAR} and ${VAR:-default}. A default may itself
// contain one level of ${VAR}, which is expanded after substitution.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-((?:[^${}]|\$\{[^}]*\})*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return expandVars(defaultValue, vars)
	})
}

// PromptTimeoutDuration parses Privileged.PromptTimeout.
func (c *Config) PromptTimeoutDuration() (time.Duration, error) {
	duration, err := time.ParseDuration(c.Privileged.PromptTimeout)
	if err != nil {
		return 0, fmt.Errorf("privileged.prompt_timeout: %w", err)
	}
	return duration, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Paths.Face == "" {
		errs = append(errs, fmt.Errorf("paths.face is required"))
	}
	if c.Paths.LocalPrefs == "" {
		errs = append(errs, fmt.Errorf("paths.local_prefs is required"))
	}

	if c.Privileged.Sudo == "" {
		errs = append(errs, fmt.Errorf("privileged.sudo is required"))
	}
	if c.Privileged.Chfn == "" {
		errs = append(errs, fmt.Errorf("privileged.chfn is required"))
	}
	if len(c.Privileged.VerifyCommand) == 0 {
		errs = append(errs, fmt.Errorf("privileged.verify_command is required"))
	}
	if duration, err := c.PromptTimeoutDuration(); err != nil {
		errs = append(errs, err)
	} else if duration <= 0 {
		errs = append(errs, fmt.Errorf("privileged.prompt_timeout must be positive, got %s", c.Privileged.PromptTimeout))
	}
	if c.Privileged.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("privileged.max_attempts must be at least 1, got %d", c.Privileged.MaxAttempts))
	}

	if c.Chat.ProcessName == "" {
		errs = append(errs, fmt.Errorf("chat.process_name is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// EnsurePaths creates the parent directories of the files mugshot
// owns. The office suite and chat client files belong to those
// programs and are never created.
func (c *Config) EnsurePaths() error {
	for _, path := range []string{c.Paths.Face, c.Paths.LocalPrefs} {
		if path == "" {
			continue
		}
		directory := filepath.Dir(path)
		if err := os.MkdirAll(directory, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", directory, err)
		}
	}
	return nil
}
