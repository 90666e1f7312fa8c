// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/jeranaias/parley/internal/cloud"
	"github.com/jeranaias/parley/internal/config"
	"github.com/jeranaias/parley/internal/model"
)

// =============================================================================
// SETUP COMMAND
// =============================================================================

// HandleSetup runs the setup wizard and exits on failure.
func HandleSetup(args *Args) {
	exitOnError(HandleSetupCommand(args))
}

// HandleSetupCommand walks the user through the configuration file: API
// key, base URL, default model, theme. Existing values are offered as
// defaults so rerunning the wizard only changes what the user retypes.
func HandleSetupCommand(args *Args) error {
	if err := RequiresTTY("run the setup wizard"); err != nil {
		return err
	}

	// A missing or broken config file is exactly why the wizard exists, so
	// load failures fall back to defaults instead of aborting.
	cfg, err := config.Load()
	if cfg == nil {
		Debugf("config load failed, starting from defaults: %v", err)
		cfg = config.Default()
	}

	fmt.Println(TitleStyle.Render("parley setup"))
	fmt.Println("This wizard writes " + describeConfigPath())
	fmt.Println()

	if err := stepAPIKey(cfg); err != nil {
		return err
	}
	if err := stepBaseURL(cfg); err != nil {
		return err
	}
	if err := stepModel(cfg, args.Model); err != nil {
		return err
	}
	if err := stepTheme(cfg); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(SectionStyle.Render("Summary"))
	printSetupSummary(cfg)

	save, err := promptYesNo("Save configuration?", true)
	if err != nil {
		return err
	}
	if !save {
		fmt.Println("Nothing written.")
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	if err := config.MarkWizardComplete(cfg); err != nil {
		return fmt.Errorf("failed to record setup completion: %w", err)
	}

	fmt.Println()
	fmt.Println(RenderStatus(true, false) + " Configuration saved.")
	fmt.Println(DimStyle.Render("Run 'parley' to start chatting, or 'parley ask \"hello\"' to test."))
	return nil
}

// describeConfigPath returns the config path for display.
func describeConfigPath() string {
	path, err := config.ConfigPath()
	if err != nil {
		return "~/.parley/config.toml"
	}
	return path
}

// =============================================================================
// WIZARD STEPS
// =============================================================================

// stepAPIKey prompts for the API credential with hidden input.
func stepAPIKey(cfg *config.Config) error {
	fmt.Println("Step 1: API Credential")
	fmt.Println(strings.Repeat("-", 22))
	fmt.Println(DimStyle.Render("Create a key at https://openrouter.ai/keys (or use any OpenAI-compatible key)."))

	prompt := "API key (input hidden): "
	if cfg.API.APIKey != "" {
		prompt = "API key (input hidden, empty keeps the current one): "
	}

	key, err := promptSecure(prompt)
	if err != nil {
		return err
	}
	if key == "" {
		if cfg.API.APIKey != "" {
			fmt.Println("Keeping the existing key.")
		} else {
			fmt.Println(WarningStyle.Render("No key set. Completions will fail until one is configured."))
		}
		fmt.Println()
		return nil
	}

	if !cloud.ValidateAPIKey(key) {
		fmt.Println(WarningStyle.Render("That does not look like an API key (too short or too uniform)."))
		keep, err := promptYesNo("Use it anyway?", false)
		if err != nil {
			return err
		}
		if !keep {
			fmt.Println("Key discarded.")
			fmt.Println()
			return nil
		}
	}

	cfg.API.APIKey = key
	fmt.Println()
	return nil
}

// stepBaseURL prompts for the API endpoint.
func stepBaseURL(cfg *config.Config) error {
	fmt.Println("Step 2: API Endpoint")
	fmt.Println(strings.Repeat("-", 20))

	current := cfg.API.BaseURL
	if current == "" {
		current = cloud.DefaultBaseURL
	}

	url, err := promptInputWithDefault("Base URL", current)
	if err != nil {
		return err
	}
	cfg.API.BaseURL = url
	fmt.Println()
	return nil
}

// stepModel prompts for the default model from the registry, with a
// free-form escape for models the registry does not know.
func stepModel(cfg *config.Config, override string) error {
	fmt.Println("Step 3: Default Model")
	fmt.Println(strings.Repeat("-", 21))

	if override != "" {
		cfg.DefaultModel = override
		fmt.Printf("Using --model %s\n\n", override)
		return nil
	}

	models := model.ListModels()
	options := make([]string, 0, len(models)+1)
	defaultIdx := 0
	for i, info := range models {
		options = append(options, fmt.Sprintf("%-14s %s (%s)", shortNameFor(info), info.Name, info.CostString()))
		if info.ID == model.ResolveModel(cfg.DefaultModel) || shortNameFor(info) == cfg.DefaultModel {
			defaultIdx = i
		}
	}
	options = append(options, "other (type a model id)")

	choice, err := promptChoice("Default model", options, defaultIdx)
	if err != nil {
		return err
	}

	if choice == len(options)-1 {
		id, err := promptInputWithDefault("Model id", cfg.DefaultModel)
		if err != nil {
			return err
		}
		cfg.DefaultModel = id
	} else {
		cfg.DefaultModel = shortNameFor(models[choice])
	}
	fmt.Println()
	return nil
}

// shortNameFor finds the registry short name for a model entry.
func shortNameFor(info model.ModelInfo) string {
	for _, name := range model.ModelShortNames() {
		if model.Models[name].ID == info.ID {
			return name
		}
	}
	return info.ID
}

// stepTheme prompts for the UI theme.
func stepTheme(cfg *config.Config) error {
	fmt.Println("Step 4: Theme")
	fmt.Println(strings.Repeat("-", 13))

	themes := []string{"dark", "light", "auto"}
	defaultIdx := 0
	for i, t := range themes {
		if t == cfg.UI.Theme {
			defaultIdx = i
		}
	}

	choice, err := promptChoice("Theme", themes, defaultIdx)
	if err != nil {
		return err
	}
	cfg.UI.Theme = themes[choice]
	fmt.Println()
	return nil
}

// printSetupSummary shows what will be written, with the key masked.
func printSetupSummary(cfg *config.Config) {
	key := "(not set)"
	if cfg.API.APIKey != "" {
		key = maskAPIKey(cfg.API.APIKey)
	}
	fmt.Println(LabelStyle.Render("API key") + ValueStyle.Render(key))
	fmt.Println(LabelStyle.Render("Base URL") + ValueStyle.Render(cfg.API.BaseURL))
	fmt.Println(LabelStyle.Render("Default model") + ValueStyle.Render(cfg.DefaultModel))
	fmt.Println(LabelStyle.Render("Theme") + ValueStyle.Render(cfg.UI.Theme))
}

// =============================================================================
// INPUT HELPERS
// =============================================================================

// Wizard input goes through one shared reader so buffered bytes are never
// split across prompts.
var (
	inputReader = bufio.NewReader(os.Stdin)
	inputMutex  sync.Mutex
)

// promptInput reads one trimmed line of input.
func promptInput(prompt string) (string, error) {
	inputMutex.Lock()
	defer inputMutex.Unlock()

	fmt.Print(prompt)
	line, err := inputReader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptInputWithDefault reads a line, returning def when the user just
// presses enter.
func promptInputWithDefault(prompt, def string) (string, error) {
	input, err := promptInput(fmt.Sprintf("%s [%s]: ", prompt, def))
	if err != nil {
		return "", err
	}
	if input == "" {
		return def, nil
	}
	return input, nil
}

// promptSecure reads a line without echoing it. Used for credentials so
// keys never land in scrollback or shell history.
func promptSecure(prompt string) (string, error) {
	inputMutex.Lock()
	defer inputMutex.Unlock()

	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// promptYesNo asks a yes/no question with a default.
func promptYesNo(prompt string, defaultYes bool) (bool, error) {
	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	input, err := promptInput(prompt + suffix)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(input) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// promptChoice shows a numbered menu and returns the chosen index.
func promptChoice(prompt string, options []string, defaultIdx int) (int, error) {
	for i, opt := range options {
		marker := " "
		if i == defaultIdx {
			marker = HighlightStyle.Render("*")
		}
		fmt.Printf("  [%d]%s %s\n", i+1, marker, opt)
	}

	for {
		input, err := promptInput(fmt.Sprintf("%s [%d]: ", prompt, defaultIdx+1))
		if err != nil {
			return 0, err
		}
		if input == "" {
			return defaultIdx, nil
		}
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(options) {
			fmt.Printf("Enter a number between 1 and %d.\n", len(options))
			continue
		}
		return n - 1, nil
	}
}
