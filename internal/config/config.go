// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"runtime"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-wa-desk application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// where the windowed shape writes its console stream.
	App App `envPrefix:"APP_"`

	// Automation holds settings of the WhatsApp automation client.
	Automation Automation `envPrefix:"AUTOMATION_"`

	// Bridge holds the address and limits of the UI bridge served by the
	// host process.
	Bridge Bridge `envPrefix:"BRIDGE_"`

	// Window holds window geometry and platform conventions.
	Window Window `envPrefix:"WINDOW_"`

	// Adapter holds settings the UI process uses to reach the bridge.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// ConsoleLogPath is the file the windowed shape writes its console
	// stream (status lines and the rendered login code) to, because the
	// terminal is owned by the window.
	// Env: APP_CONSOLE_LOG
	ConsoleLogPath string `env:"CONSOLE_LOG"`
}

// Automation holds settings of the messaging automation client.
type Automation struct {
	// StoreDSN is the sqlite DSN of the device store. The default keeps the
	// store in memory so no session survives a restart.
	// Env: AUTOMATION_STORE_DSN
	StoreDSN string `env:"STORE_DSN"`

	// Target is the chat that receives files sent from the UI. "me" is the
	// account's own chat.
	// Env: AUTOMATION_TARGET
	Target string `env:"TARGET"`

	// LogLevel is the minimum level of the automation library's own log
	// lines ("debug", "info", "warn", "error").
	// Env: AUTOMATION_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Bridge holds network and limit settings of the UI bridge.
type Bridge struct {
	// HTTPAddress is the TCP address on which the bridge listens,
	// in "host:port" format (e.g. "127.0.0.1:8765").
	// Env: BRIDGE_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// MaxFileSize is an upper bound in bytes for a single send-file payload.
	// Zero disables the bound.
	// Env: BRIDGE_MAX_FILE_SIZE
	MaxFileSize int64 `env:"MAX_FILE_SIZE"`
}

// Window holds the window geometry and the platform convention that
// decides whether the process survives its last window.
type Window struct {
	// Width is the initial window width in terminal cells.
	// Env: WINDOW_WIDTH
	Width int `env:"WIDTH"`

	// Height is the initial window height in terminal cells.
	// Env: WINDOW_HEIGHT
	Height int `env:"HEIGHT"`

	// Platform is the OS name used for window lifecycle conventions.
	// Defaults to runtime.GOOS.
	// Env: WINDOW_PLATFORM
	Platform string `env:"PLATFORM"`
}

// Adapter holds settings the UI process uses to reach the bridge.
type Adapter struct {
	// HTTPAddress is the bridge endpoint. Defaults to Bridge.HTTPAddress.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single bridge request. Zero means no timeout,
	// which is also the default: a send runs to completion or failure.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// PersistentBackgroundPlatform is the platform on which applications keep
// running after their last window was closed.
const PersistentBackgroundPlatform = "darwin"

// KeepAliveWithoutWindows reports whether the process should stay alive
// once every window is closed.
func (w Window) KeepAliveWithoutWindows() bool {
	return w.Platform == PersistentBackgroundPlatform
}

// Defaults returns the values used for every field no source has set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:        "dev",
			ConsoleLogPath: "wa-desk-console.log",
		},
		Automation: Automation{
			StoreDSN: "file:wadesk?mode=memory&cache=shared&_foreign_keys=on",
			Target:   "me",
			LogLevel: "warn",
		},
		Bridge: Bridge{
			HTTPAddress: "127.0.0.1:8765",
		},
		Window: Window{
			Width:    80,
			Height:   24,
			Platform: runtime.GOOS,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
