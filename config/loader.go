// Package config provides deployment configuration loading and parsing functionality
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFormat represents the configuration file format
type ConfigFormat string

const (
	FormatYAML ConfigFormat = "yaml"
	FormatJSON ConfigFormat = "json"
)

// Loader handles deployment configuration loading from various sources
type Loader struct {
	// Configuration search paths
	searchPaths []string

	// Environment variable prefix
	envPrefix string

	// Default configuration
	defaultConfig *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		searchPaths: []string{
			".",
			"./config",
			"./configs",
			"/etc/akka",
			os.Getenv("HOME") + "/.akka",
		},
		envPrefix:     "AKKA",
		defaultConfig: DefaultConfig(),
	}
}

// SetSearchPaths sets the configuration file search paths
func (l *Loader) SetSearchPaths(paths []string) *Loader {
	l.searchPaths = paths
	return l
}

// SetEnvPrefix sets the environment variable prefix
func (l *Loader) SetEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// SetDefaultConfig sets the default configuration
func (l *Loader) SetDefaultConfig(config *Config) *Loader {
	l.defaultConfig = config
	return l
}

// Load loads configuration from the specified file, falling back to
// defaults when filename is empty.
func (l *Loader) Load(filename string) (*Config, error) {
	if filename != "" {
		return l.loadFromFile(filename)
	}

	config := l.defaultConfig
	if config == nil {
		config = DefaultConfig()
	}

	if err := l.loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadFromFile loads configuration from a specific file
func (l *Loader) LoadFromFile(filename string) (*Config, error) {
	return l.loadFromFile(filename)
}

// LoadFromReader loads configuration from an io.Reader
func (l *Loader) LoadFromReader(reader io.Reader, format ConfigFormat) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration data: %w", err)
	}

	config, err := l.parseConfig(data, format)
	if err != nil {
		return nil, err
	}

	config = l.mergeConfig(l.defaults(), config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// AutoLoad automatically discovers and loads configuration
func (l *Loader) AutoLoad() (*Config, error) {
	configFile, _, err := l.findConfigFile()
	if err != nil {
		// If no config file found, use default config
		if err == ErrConfigFileNotFound {
			return l.Load("")
		}
		return nil, err
	}

	return l.loadFromFile(configFile)
}

// findConfigFile searches for configuration files in search paths
func (l *Loader) findConfigFile() (string, ConfigFormat, error) {
	filenames := []string{
		"deploy.yaml", "deploy.yml",
		"akka.yaml", "akka.yml",
		"deploy.json", "akka.json",
	}

	for _, searchPath := range l.searchPaths {
		for _, filename := range filenames {
			fullPath := filepath.Join(searchPath, filename)
			if _, err := os.Stat(fullPath); err == nil {
				format, err := formatForFile(filename)
				if err != nil {
					continue
				}
				return fullPath, format, nil
			}
		}
	}

	return "", "", ErrConfigFileNotFound
}

// formatForFile determines the configuration format from a file extension
func formatForFile(filename string) (ConfigFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported config file format: %s", ext)
	}
}

// loadFromFile loads configuration from a file
func (l *Loader) loadFromFile(filename string) (*Config, error) {
	format, err := formatForFile(filename)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := l.parseConfig(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	config = l.mergeConfig(l.defaults(), config)

	if err := l.loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// parseConfig parses configuration data based on format
func (l *Loader) parseConfig(data []byte, format ConfigFormat) (*Config, error) {
	config := &Config{}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	return config, nil
}

// defaults returns the loader's default configuration, never nil.
func (l *Loader) defaults() *Config {
	if l.defaultConfig != nil {
		return l.defaultConfig
	}
	return DefaultConfig()
}

// loadFromEnv loads configuration overrides from environment variables
func (l *Loader) loadFromEnv(config *Config) error {
	if val := os.Getenv(l.envPrefix + "_DEFAULT_CAPACITY"); val != "" {
		capacity, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%s_DEFAULT_CAPACITY: %w", l.envPrefix, err)
		}
		config.Defaults.Capacity = capacity
	}
	if val := os.Getenv(l.envPrefix + "_DEFAULT_TIMEOUT"); val != "" {
		timeout, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("%s_DEFAULT_TIMEOUT: %w", l.envPrefix, err)
		}
		config.Defaults.Timeout = timeout
	}
	if val := os.Getenv(l.envPrefix + "_DEFAULT_EXECUTOR"); val != "" {
		config.Defaults.Executor = val
	}

	return nil
}

// mergeConfig merges user config with default config
func (l *Loader) mergeConfig(defaultConfig, userConfig *Config) *Config {
	merged := *defaultConfig

	if userConfig.Defaults.Capacity != 0 {
		merged.Defaults.Capacity = userConfig.Defaults.Capacity
	}
	if userConfig.Defaults.Timeout != 0 {
		merged.Defaults.Timeout = userConfig.Defaults.Timeout
	}
	if userConfig.Defaults.Executor != "" {
		merged.Defaults.Executor = userConfig.Defaults.Executor
	}

	if userConfig.Deployments != nil {
		if merged.Deployments == nil {
			merged.Deployments = make(map[string]DeploymentConfig)
		} else {
			// Copy so the default config's map stays untouched
			deployments := make(map[string]DeploymentConfig, len(merged.Deployments))
			for path, entry := range merged.Deployments {
				deployments[path] = entry
			}
			merged.Deployments = deployments
		}
		for path, entry := range userConfig.Deployments {
			merged.Deployments[path] = entry
		}
	}

	if userConfig.Custom != nil {
		if merged.Custom == nil {
			merged.Custom = make(map[string]interface{})
		}
		for k, v := range userConfig.Custom {
			merged.Custom[k] = v
		}
	}

	return &merged
}
