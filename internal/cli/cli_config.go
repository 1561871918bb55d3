package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CLIConfig represents the configuration for the CLI
type CLIConfig struct {
	SchemaPath string `yaml:"schemaPath"`
	ServerURL  string `yaml:"serverURL"`
}

// LoadCLIConfig loads configuration from multiple sources in order of precedence:
// 1. Flags (handled by caller)
// 2. Environment variables
// 3. Config file (~/.confline/config.yaml)
func LoadCLIConfig() (*CLIConfig, error) {
	config := &CLIConfig{}

	// 1. Load from config file
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".confline", "config.yaml")
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err == nil {
				if err := yaml.Unmarshal(data, config); err != nil {
					return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
				}
			}
		}
	}

	// 2. Load from environment variables (override config file)
	if envSchema := os.Getenv("CONFLINE_SCHEMA"); envSchema != "" {
		config.SchemaPath = envSchema
	}
	if envURL := os.Getenv("CONFLINE_SERVER_URL"); envURL != "" {
		config.ServerURL = envURL
	}

	return config, nil
}

// ResolveSchemaPath picks the schema path from the flag value, then the
// environment/config file, in that order.
func ResolveSchemaPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	config, err := LoadCLIConfig()
	if err != nil {
		return "", err
	}
	if config.SchemaPath == "" {
		return "", fmt.Errorf("no schema file given: pass --schema or set schemaPath in ~/.confline/config.yaml")
	}
	return config.SchemaPath, nil
}
