// Package config loads the optional nutricli defaults file. Every value
// here can also be supplied on the command line; flags win over the
// environment, which wins over the file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"nutricli/apiclients/nutrislice"
)

// Environment variables overriding file values.
const (
	envDistrict = "NUTRICLI_DISTRICT"
	envSchool   = "NUTRICLI_SCHOOL"
)

// Config represents the application defaults from a YAML file.
type Config struct {
	District       string `yaml:"district"`
	School         string `yaml:"school"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`

	// Derived from TimeoutSeconds.
	Timeout time.Duration
}

// Load loads and validates the defaults from the given file path. An
// empty path returns defaults built from the environment alone; a
// non-empty path must name an existing file.
func Load(filePath string) (*Config, error) {

	var cfg Config

	if filePath != "" {
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", filePath)
		}
		configFile, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(configFile, &cfg); err != nil {
			return nil, fmt.Errorf("unable to parse YAML config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := validateAndPrepare(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overlays environment variables on the file values. A .env
// file in the working directory is honoured if present; missing .env
// files are not an error.
func applyEnv(c *Config) {
	_ = godotenv.Load()

	if district := os.Getenv(envDistrict); district != "" {
		c.District = district
	}
	if school := os.Getenv(envSchool); school != "" {
		c.School = school
	}
}

// validateAndPrepare checks for required fields and sets up derived
// values.
func validateAndPrepare(c *Config) error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative: %d", c.TimeoutSeconds)
	}
	// The API client owns the default; the file only overrides it.
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = int(nutrislice.DefaultTimeout / time.Second)
	}
	c.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	return nil
}
