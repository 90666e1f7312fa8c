// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for parley.
//
// Settings come from a TOML file with sensible defaults, environment
// variable overrides (including .env files), and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - APIConfig: Completion endpoint and credential settings
//   - UIConfig: Theme and rendering settings
//   - FileWatcher: Hot reload of the config file
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (PARLEY_*)
//   - ~/.parley/config.toml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	key := cfg.API.APIKey
//	model := cfg.DefaultModel
//
// Watch for edits while running:
//
//	w, _ := config.WatchGlobal(func(cfg *config.Config) {
//	    // apply the new settings
//	})
//	defer w.Close()
package config
