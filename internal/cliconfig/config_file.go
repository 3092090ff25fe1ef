package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors Config but uses strings for durations to keep files friendly.
// The password is deliberately absent; it is read from the environment only.
type FileConfig struct {
	ServiceURL  string `toml:"service_url" yaml:"service_url"`
	LoginPath   string `toml:"login_path" yaml:"login_path"`
	Email       string `toml:"email" yaml:"email"`
	HTTPTimeout string `toml:"http_timeout" yaml:"http_timeout"`
	MaxAttempts int    `toml:"max_attempts" yaml:"max_attempts"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	Output      string `toml:"output" yaml:"output"`
	Watch       *bool  `toml:"watch" yaml:"watch"`
}

// LoadFileConfig reads a config file. Files ending in .yaml or .yml are parsed
// as YAML, everything else as TOML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		if err := toml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("decode toml: %w", err)
		}
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.signin/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".signin", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("service-url", fc.ServiceURL, &cfg.ServiceURL)
	s.setString("login-path", fc.LoginPath, &cfg.LoginPath)
	s.setString("email", fc.Email, &cfg.Email)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("output", fc.Output, &cfg.Output)

	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setInt("attempts", fc.MaxAttempts, &cfg.MaxAttempts)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
