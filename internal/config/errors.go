package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAutomationConfigs indicates invalid automation client
	// settings (for example, empty store DSN or target).
	ErrInvalidAutomationConfigs = errors.New("invalid automation configuration")
	// ErrInvalidBridgeConfigs indicates invalid bridge settings
	// (for example, missing address or negative size bound).
	ErrInvalidBridgeConfigs = errors.New("invalid bridge configuration")
	// ErrInvalidWindowConfigs indicates invalid window geometry.
	ErrInvalidWindowConfigs = errors.New("invalid window configuration")
	// ErrInvalidAdapterConfigs indicates invalid UI adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
