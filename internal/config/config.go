// Package config provides configuration loading and validation for the CLI
// and the scoring engine's calibration constants.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Candidate  string `json:"candidate,omitempty"`  // Path to candidate resume (txt, pdf, or docx)
	Role       string `json:"role,omitempty"`       // Path to role posting text file
	RoleURL    string `json:"role_url,omitempty"`   // URL to fetch role posting from
	Vocabulary string `json:"vocabulary,omitempty"` // Path to skill vocabulary JSON (optional, embedded default otherwise)

	// Behavior
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name override
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed breakdown output
	NoExplain      bool   `json:"no_explain,omitempty"`      // Skip the LLM explanation call

	// Scoring overrides; nil means use DefaultScoringConfig
	Scoring *ScoringConfig `json:"scoring,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Role != "" && c.RoleURL != "" {
		return NewConfigError("role", "'role' and 'role_url' are mutually exclusive")
	}

	// Validate file paths exist (if specified)
	if c.Candidate != "" {
		if _, err := os.Stat(c.Candidate); os.IsNotExist(err) {
			return NewConfigError("candidate", fmt.Sprintf("file not found: %s", c.Candidate))
		}
	}
	if c.Role != "" {
		if _, err := os.Stat(c.Role); os.IsNotExist(err) {
			return NewConfigError("role", fmt.Sprintf("file not found: %s", c.Role))
		}
	}
	if c.Vocabulary != "" {
		if _, err := os.Stat(c.Vocabulary); os.IsNotExist(err) {
			return NewConfigError("vocabulary", fmt.Sprintf("file not found: %s", c.Vocabulary))
		}
	}

	// Validate scoring overrides up front so a bad config fails before any scoring
	if c.Scoring != nil {
		if err := c.Scoring.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ScoringOrDefault returns the scoring overrides if present, otherwise the defaults
func (c *Config) ScoringOrDefault() ScoringConfig {
	if c.Scoring != nil {
		return *c.Scoring
	}
	return DefaultScoringConfig()
}
