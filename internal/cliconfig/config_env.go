package cliconfig

import (
	"os"

	"github.com/joho/godotenv"
)

// EnvPrefix is the prefix of every environment variable signin reads.
const EnvPrefix = "SIGNIN_"

// LoadDotEnv loads variables from a .env file if it exists.
// Variables already present in the environment are left untouched.
func LoadDotEnv(path string) error {
	if !FileExists(path) {
		return nil
	}
	return godotenv.Load(path)
}

// ApplyEnvConfig applies SIGNIN_* environment variables to cfg.
// They override file values but not explicitly set flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("service-url", env("SERVICE_URL"), &cfg.ServiceURL)
	s.setString("login-path", env("LOGIN_PATH"), &cfg.LoginPath)
	s.setString("email", env("EMAIL"), &cfg.Email)
	s.setString("password", env("PASSWORD"), &cfg.Password)
	s.setString("log-level", env("LOG_LEVEL"), &cfg.LogLevel)
	s.setString("output", env("OUTPUT"), &cfg.Output)

	if err := s.setDuration("timeout", env("HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setIntFromString("attempts", env("MAX_ATTEMPTS"), &cfg.MaxAttempts); err != nil {
		return err
	}
	s.setBoolFromString("watch", env("WATCH"), &cfg.Watch)

	return nil
}

func env(name string) string {
	return os.Getenv(EnvPrefix + name)
}

// Resolve layers file and environment on top of base and validates the result.
// base should already hold defaults and flag values; changed names the flags
// the user set. A missing file at path is not an error.
func Resolve(base Config, path string, changed map[string]bool) (Config, error) {
	cfg := base
	if path != "" && FileExists(path) {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return cfg, err
		}
		if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
			return cfg, err
		}
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
