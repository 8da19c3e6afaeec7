// Package config loads run configuration from a YAML file with environment
// variable expansion. Every setting has a default, and the path-like
// settings can be overridden through environment variables alone, so a
// config file is optional.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for a jobsweep run.
type Config struct {
	InputPath   string        // company spreadsheet (.xlsx or .csv)
	OutputDir   string        // directory for new_openings_<ts> output files
	SeenPath    string        // dedup store (.csv/.txt line file, or .db/.sqlite)
	UserAgent   string        // HTTP User-Agent sent to every provider
	Timeout     time.Duration // per-request HTTP timeout
	Concurrency int           // companies fetched in parallel; 1 = sequential
	Keywords    string        // default keyword filter for rows without one
	Slack       SlackConfig
}

// SlackConfig controls the optional Slack webhook announcement of fresh postings.
type SlackConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// rawConfig is used for YAML unmarshaling (snake_case fields, duration as string).
type rawConfig struct {
	InputPath   string      `yaml:"input"`
	OutputDir   string      `yaml:"output_dir"`
	SeenPath    string      `yaml:"seen_path"`
	UserAgent   string      `yaml:"user_agent"`
	Timeout     string      `yaml:"timeout"`
	Concurrency int         `yaml:"concurrency"`
	Keywords    string      `yaml:"keywords"`
	Slack       SlackConfig `yaml:"slack"`
}

// Default returns the configuration used when no config file is given.
// Values come from the environment where set: JOBSWEEP_INPUT,
// JOBSWEEP_OUTPUT_DIR, JOBSWEEP_SEEN, HTTP_TIMEOUT (seconds), HTTP_UA.
func Default() *Config {
	cfg := &Config{
		InputPath:   envOr("JOBSWEEP_INPUT", "companies.xlsx"),
		OutputDir:   envOr("JOBSWEEP_OUTPUT_DIR", "out"),
		SeenPath:    envOr("JOBSWEEP_SEEN", "seen.csv"),
		UserAgent:   envOr("HTTP_UA", "jobsweep/1.0"),
		Timeout:     20 * time.Second,
		Concurrency: 1,
	}
	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	return cfg
}

// Load reads and parses the YAML config file at path, expanding environment
// variables in its text first. Unset fields fall back to Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if raw.InputPath != "" {
		cfg.InputPath = raw.InputPath
	}
	if raw.OutputDir != "" {
		cfg.OutputDir = raw.OutputDir
	}
	if raw.SeenPath != "" {
		cfg.SeenPath = raw.SeenPath
	}
	if raw.UserAgent != "" {
		cfg.UserAgent = raw.UserAgent
	}
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse timeout %q: %w", raw.Timeout, err)
		}
		cfg.Timeout = d
	}
	if raw.Concurrency > 0 {
		cfg.Concurrency = raw.Concurrency
	}
	if raw.Keywords != "" {
		cfg.Keywords = raw.Keywords
	}
	cfg.Slack = raw.Slack

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.Slack.Enabled && c.Slack.WebhookURL == "" {
		return fmt.Errorf("slack.webhook_url is required when slack.enabled is true")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
