// Package config provides deployment configuration management for the akka framework
package config

import (
	"strings"
	"time"
)

// Config represents the deployment configuration file: framework-wide
// defaults plus per-path deployment entries.
type Config struct {
	// Framework-wide deployment defaults
	Defaults DefaultsConfig `yaml:"defaults" json:"defaults"`

	// Per-path deployment entries, keyed by deployment path
	Deployments map[string]DeploymentConfig `yaml:"deployments,omitempty" json:"deployments,omitempty"`

	// Custom configurations (for user-defined tooling)
	Custom map[string]interface{} `yaml:"custom,omitempty" json:"custom,omitempty"`
}

// DefaultsConfig contains framework-wide deployment defaults
type DefaultsConfig struct {
	// Default mailbox capacity
	Capacity int `yaml:"capacity" json:"capacity"`

	// Default per-message processing timeout
	Timeout time.Duration `yaml:"timeout" json:"timeout"`

	// Default executor name
	Executor string `yaml:"executor,omitempty" json:"executor,omitempty"`
}

// DeploymentConfig contains the settings recorded for one deployment path
type DeploymentConfig struct {
	// Mailbox capacity, 0 means inherit the default
	Capacity int `yaml:"capacity,omitempty" json:"capacity,omitempty"`

	// Per-message processing timeout, 0 means inherit the default
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`

	// Executor name, empty means inherit the default
	Executor string `yaml:"executor,omitempty" json:"executor,omitempty"`

	// Human-readable unit name
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Capacity: 1000,
			Timeout:  30 * time.Second,
		},
		Deployments: map[string]DeploymentConfig{},
	}
}

// IsValidPath checks if path is a valid deployment path. Deployment
// paths are slash-rooted, like "/user/worker".
func IsValidPath(path string) bool {
	if !strings.HasPrefix(path, "/") {
		return false
	}
	return !strings.Contains(path, "//") && path != "/"
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Defaults.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if c.Defaults.Timeout < 0 {
		return ErrInvalidTimeout
	}

	for path, entry := range c.Deployments {
		if !IsValidPath(path) {
			return ErrInvalidPath
		}
		if entry.Capacity < 0 {
			return ErrInvalidCapacity
		}
		if entry.Timeout < 0 {
			return ErrInvalidTimeout
		}
	}

	return nil
}

// Entry returns the deployment entry recorded for path.
func (c *Config) Entry(path string) (DeploymentConfig, bool) {
	entry, ok := c.Deployments[path]
	return entry, ok
}
