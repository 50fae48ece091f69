// Package config loads the run configuration for sigfind
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// JVM signatures to look for, e.g. `foo(Ljava/util/List;I)`
	Targets []string `yaml:"targets"`
	// Signatures of methods whose return type is of interest
	ReturnTypes []string `yaml:"return_types"`
	LogLevel    string   `yaml:"log_level"`
	// How many files are scanned at once
	Jobs int `yaml:"jobs"`
	// Log and drop malformed signatures instead of failing the run
	SkipInvalid bool `yaml:"skip_invalid"`
}

// Default is the configuration used when no file is given
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Jobs:     runtime.NumCPU(),
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path only applies the overrides.
func Load(path string) (*Config, error) {
	// A .env file is optional
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if level := os.Getenv("SIGFIND_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if jobs := os.Getenv("SIGFIND_JOBS"); jobs != "" {
		n, err := strconv.Atoi(jobs)
		if err != nil {
			return nil, fmt.Errorf("SIGFIND_JOBS: %w", err)
		}
		cfg.Jobs = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be used as given
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	return nil
}

// Level is the parsed LogLevel, which Validate has already checked
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
