package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults for the client configuration. The completion defaults target
// Groq's OpenAI-compatible endpoint.
const (
	DefaultStoreURL = "http://localhost:8080"
	DefaultAPIBase  = "https://api.groq.com/openai/v1"
	DefaultModel    = "llama-3.3-70b-versatile"
)

// Config holds client settings loaded from the config file and environment
type Config struct {
	StoreURL string `yaml:"store_url"` // chat store base URL
	APIBase  string `yaml:"api_base"`  // completion endpoint base URL
	Model    string `yaml:"model"`     // completion model name
	APIKey   string `yaml:"api_key"`   // completion API key
}

// DefaultConfigPath returns the default config file location
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "chatbox", "config.yaml"), nil
}

// LoadConfig reads the YAML config at path (or the default location when
// path is empty), fills in defaults for missing fields, and applies
// environment overrides (CHATBOX_STORE_URL, GROQ_API_KEY). A missing config
// file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		StoreURL: DefaultStoreURL,
		APIBase:  DefaultAPIBase,
		Model:    DefaultModel,
	}

	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if v := os.Getenv("CHATBOX_STORE_URL"); v != "" {
		cfg.StoreURL = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		cfg.APIKey = v
	}

	return cfg, nil
}
