// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/parley/internal/config"
)

// =============================================================================
// CONFIG COMMAND
// =============================================================================

// HandleConfig runs the config command and exits on failure.
func HandleConfig(args *Args) {
	exitOnError(HandleConfigCommand(args))
}

// HandleConfigCommand dispatches config subcommands: show (default),
// get, set, path.
func HandleConfigCommand(args *Args) error {
	parser := NewArgParser(args.Raw)

	switch parser.Subcommand() {
	case "", "show":
		return handleConfigShow(args)
	case "get":
		return handleConfigGet(parser)
	case "set":
		return handleConfigSet(parser)
	case "path":
		return handleConfigPath()
	default:
		return NewUsageError("config", fmt.Sprintf("unknown subcommand %q (use show, get, set, or path)", parser.Subcommand()))
	}
}

// handleConfigShow prints every configuration value, secrets masked.
func handleConfigShow(args *Args) error {
	cfg, err := loadForDisplay()
	if err != nil {
		return err
	}

	if args.JSON {
		out := make(map[string]interface{}, len(cfg.GetAllKeys()))
		for _, key := range cfg.GetAllKeys() {
			value, err := cfg.Get(key)
			if err != nil {
				continue
			}
			if isSecretKey(key) {
				value = maskAPIKey(fmt.Sprint(value))
			}
			out[key] = value
		}
		encoded, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	}

	fmt.Println(TitleStyle.Render("parley configuration"))

	sections := []struct {
		name   string
		prefix string
	}{
		{"general", ""},
		{"api", "api."},
		{"ui", "ui."},
		{"chat", "chat."},
	}

	for _, section := range sections {
		fmt.Println(SectionStyle.Render("[" + section.name + "]"))
		for _, key := range cfg.GetAllKeys() {
			if !keyInSection(key, section.prefix) {
				continue
			}
			value, err := cfg.Get(key)
			if err != nil {
				continue
			}
			display := fmt.Sprint(value)
			if isSecretKey(key) {
				display = maskAPIKey(display)
			}
			if display == "" {
				display = DimStyle.Render("(not set)")
			} else {
				display = ValueStyle.Render(display)
			}
			fmt.Println("  " + LabelStyle.Render(strings.TrimPrefix(key, section.prefix)) + display)
		}
	}

	fmt.Println()
	fmt.Println(DimStyle.Render("File: " + describeConfigPath()))
	return nil
}

// keyInSection reports whether a dotted key belongs to a section. The
// empty prefix matches only undotted keys.
func keyInSection(key, prefix string) bool {
	if prefix == "" {
		return !strings.Contains(key, ".")
	}
	return strings.HasPrefix(key, prefix)
}

// handleConfigGet prints one configuration value.
func handleConfigGet(parser *ArgParser) error {
	key := parser.Positional(1)
	if key == "" {
		return NewUsageError("config get", "a key is required, for example: parley config get ui.theme")
	}
	key = strings.ToLower(key)

	cfg, err := loadForDisplay()
	if err != nil {
		return err
	}

	value, err := cfg.Get(key)
	if err != nil {
		return fmt.Errorf("unknown key %q (valid keys: %s)", key, strings.Join(cfg.GetAllKeys(), ", "))
	}

	display := fmt.Sprint(value)
	if isSecretKey(key) {
		display = maskAPIKey(display)
	}
	fmt.Println(display)
	return nil
}

// handleConfigSet changes one configuration value and writes the file.
func handleConfigSet(parser *ArgParser) error {
	key := strings.ToLower(parser.Positional(1))
	if key == "" || parser.PositionalCount() < 3 {
		return NewUsageError("config set", "a key and value are required, for example: parley config set default_model haiku")
	}
	value := parser.Positional(2)

	cfg, err := loadForDisplay()
	if err != nil {
		return err
	}

	if err := cfg.Set(key, value); err != nil {
		return fmt.Errorf("cannot set %q: %w (valid keys: %s)", key, err, strings.Join(cfg.GetAllKeys(), ", "))
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("rejected: %w", err)
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	display := value
	if isSecretKey(key) {
		display = maskAPIKey(value)
	}
	fmt.Printf("%s %s = %s\n", RenderStatus(true, false), key, display)
	return nil
}

// handleConfigPath prints where the configuration file lives.
func handleConfigPath() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("cannot determine config path: %w", err)
	}

	fmt.Println(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		Infof("(file does not exist yet; 'parley setup' or 'parley config set' will create it)")
	}
	return nil
}

// loadForDisplay reads the config fresh from disk so the command reflects
// the file, not this process's startup snapshot.
func loadForDisplay() (*config.Config, error) {
	cfg, err := config.Load()
	if cfg == nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SECRET MASKING
// =============================================================================

// maskAPIKey renders a credential for display without exposing any of it.
// A hash prefix lets the user tell two keys apart without seeing either.
func maskAPIKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) < 8 {
		return "[invalid key]"
	}
	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("sha256:%x...", hash[:4])
}

// isSecretKey reports whether a config key holds a credential.
func isSecretKey(key string) bool {
	lower := strings.ToLower(key)
	return strings.Contains(lower, "key") ||
		strings.Contains(lower, "secret") ||
		strings.Contains(lower, "token") ||
		strings.Contains(lower, "password")
}
