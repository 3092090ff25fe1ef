package cliconfig

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ServiceURL != DefaultServiceURL {
		t.Errorf("ServiceURL = %v, want %v", cfg.ServiceURL, DefaultServiceURL)
	}
	if cfg.LoginPath != DefaultLoginPath {
		t.Errorf("LoginPath = %v, want %v", cfg.LoginPath, DefaultLoginPath)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v, want 15s", cfg.HTTPTimeout)
	}
	if cfg.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %v, want 3", cfg.MaxAttempts)
	}
	if cfg.Output != OutputText {
		t.Errorf("Output = %v, want text", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			ServiceURL:  "https://auth.example.com/api",
			LoginPath:   "/login",
			HTTPTimeout: time.Second,
			MaxAttempts: 1,
			Output:      OutputText,
			LogLevel:    "info",
		}
	}

	tests := []struct {
		name         string
		mutate       func(*Config)
		wantErr      bool
		wantLoginURL string
		wantOutput   string
	}{
		{
			name:         "valid config",
			mutate:       func(c *Config) {},
			wantLoginURL: "https://auth.example.com/api/login",
		},
		{
			name:         "trailing slash trimmed",
			mutate:       func(c *Config) { c.ServiceURL = "https://auth.example.com/api///" },
			wantLoginURL: "https://auth.example.com/api/login",
		},
		{
			name:         "login path gets leading slash",
			mutate:       func(c *Config) { c.LoginPath = "signin" },
			wantLoginURL: "https://auth.example.com/api/signin",
		},
		{
			name:         "empty service url falls back to default",
			mutate:       func(c *Config) { c.ServiceURL = ""; c.LoginPath = "" },
			wantLoginURL: DefaultServiceURL + DefaultLoginPath,
		},
		{
			name:         "empty output means text",
			mutate:       func(c *Config) { c.Output = "" },
			wantLoginURL: "https://auth.example.com/api/login",
			wantOutput:   OutputText,
		},
		{
			name:    "relative service url",
			mutate:  func(c *Config) { c.ServiceURL = "auth.example.com/api" },
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			mutate:  func(c *Config) { c.ServiceURL = "ftp://auth.example.com" },
			wantErr: true,
		},
		{
			name:    "missing host",
			mutate:  func(c *Config) { c.ServiceURL = "http://" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.HTTPTimeout = 0 },
			wantErr: true,
		},
		{
			name:    "zero attempts",
			mutate:  func(c *Config) { c.MaxAttempts = 0 },
			wantErr: true,
		},
		{
			name:    "unknown output",
			mutate:  func(c *Config) { c.Output = "yaml" },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := cfg.LoginURL(); got != tt.wantLoginURL {
				t.Errorf("LoginURL() = %v, want %v", got, tt.wantLoginURL)
			}
			if tt.wantOutput != "" && cfg.Output != tt.wantOutput {
				t.Errorf("Output = %v, want %v", cfg.Output, tt.wantOutput)
			}
		})
	}
}

func TestConfig_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := (Config{LogLevel: tt.level}).Level(); got != tt.want {
			t.Errorf("Level(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
