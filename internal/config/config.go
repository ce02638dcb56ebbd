// Package config provides environment-backed configuration for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults applied when the environment does not override them.
const (
	DefaultPort       = 8080
	DefaultLLMTimeout = 30 * time.Second
)

// Config holds the deployment configuration for the service. The provider
// endpoint, auth token, and model identifier are deployment parameters, not
// part of the recommendation core's contract.
type Config struct {
	Port        int           // HTTP listen port
	APIKey      string        // provider API key; empty selects local-only mode
	Provider    string        // provider family (gemini)
	Model       string        // model identifier override
	DatabaseURL string        // optional Postgres catalog source
	LLMTimeout  time.Duration // bound on a single outbound provider call
}

// FromEnv loads configuration from environment variables with defaults.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        DefaultPort,
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		Provider:    os.Getenv("LLM_PROVIDER"),
		Model:       os.Getenv("LLM_MODEL"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LLMTimeout:  DefaultLLMTimeout,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	if timeoutStr := os.Getenv("LLM_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TIMEOUT value %q: %w", timeoutStr, err)
		}
		cfg.LLMTimeout = timeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.LLMTimeout <= 0 {
		return fmt.Errorf("config error: LLM timeout must be positive")
	}
	return nil
}
