// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

var logLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Automation.StoreDSN) == "" || strings.TrimSpace(cfg.Automation.Target) == "" {
		return ErrInvalidAutomationConfigs
	}
	if _, ok := logLevels[strings.ToLower(cfg.Automation.LogLevel)]; !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidAutomationConfigs, cfg.Automation.LogLevel)
	}

	if cfg.Bridge.HTTPAddress == "" || cfg.Bridge.MaxFileSize < 0 {
		return ErrInvalidBridgeConfigs
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return ErrInvalidWindowConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
