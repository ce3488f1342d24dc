// Package config provides error definitions for deployment configuration management
package config

import "errors"

// Configuration validation errors
var (
	ErrInvalidCapacity = errors.New("invalid mailbox capacity")
	ErrInvalidTimeout  = errors.New("invalid processing timeout")
	ErrInvalidPath     = errors.New("invalid deployment path")
)

// Configuration loading errors
var (
	ErrConfigFileNotFound  = errors.New("configuration file not found")
	ErrConfigParseError    = errors.New("configuration parse error")
	ErrConfigValidateError = errors.New("configuration validation error")
	ErrConfigWatchError    = errors.New("configuration watch error")
)

// Deployment lookup errors
var (
	ErrUnknownDeployment = errors.New("unknown deployment path")
)
