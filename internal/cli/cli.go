// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/parley/internal/cloud"
	"github.com/jeranaias/parley/internal/config"
	"github.com/jeranaias/parley/internal/model"
)

// Version information, overridden at build time via -ldflags.
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// COMMANDS
// =============================================================================

// Command identifies which command the binary was asked to run.
type Command int

const (
	CmdTUI Command = iota // Default: full-screen TUI
	CmdChat
	CmdAsk
	CmdSetup
	CmdConfig
	CmdModels
	CmdExport
	CmdVersion
	CmdHelp
)

// Args carries the global flags plus the unconsumed remainder of the
// argument list. Each command parses its own remainder with ArgParser.
type Args struct {
	Model   string // --model: model override for this run
	Verbose bool   // --verbose: debug diagnostics on stderr
	Quiet   bool   // --quiet: suppress informational output
	JSON    bool   // --json: machine-readable output where supported
	Plain   bool   // --plain: no markdown rendering of replies
	NoColor bool   // --no-color: no ANSI colors

	Raw []string // Arguments after the command name
}

// =============================================================================
// USAGE
// =============================================================================

const usageText = `parley - chat with cloud language models from your terminal

Usage:
  parley                  Start the full-screen TUI
  parley <command> [arguments]

Commands:
  chat                    Line-based REPL (plain terminal, no alternate screen)
  ask <question>          One-shot question, answer on stdout
  setup                   Interactive configuration wizard
  config                  Show configuration
  config get <key>        Print one configuration value
  config set <key> <val>  Change a configuration value
  config path             Print the configuration file location
  models                  List known models and their short names
  export <in> [out]       Convert a saved transcript (.json) to another format
  version                 Print version information
  help                    Show this help

Global flags:
  --model <name>          Model for this run (short name or full id)
  --verbose               Debug diagnostics on stderr
  --quiet                 Suppress informational output
  --json                  Machine-readable output where supported
  --plain                 Print replies without markdown rendering
  --no-color              Disable colored output

Examples:
  parley
  parley ask "why is the sky blue?"
  git diff | parley ask "review this change"
  parley chat --model sonnet
  parley config set default_model haiku
  parley export transcript.json notes.md

Environment:
  PARLEY_API_KEY          API key (overrides the config file)
  PARLEY_BASE_URL         API base URL
  PARLEY_MODEL            Default model
  NO_COLOR                Disable colored output

Version: %s
`

// PrintUsage prints the usage text to stdout.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints the one-line version string.
func PrintVersion() {
	fmt.Printf("parley %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// =============================================================================
// PARSING
// =============================================================================

// Parse inspects os.Args and returns the command to run plus its arguments.
// No arguments means the TUI; an unrecognized first token also falls through
// to the TUI with the tokens preserved in Args.Raw.
func Parse() (Command, *Args) {
	remaining, args := parseGlobalFlags(os.Args[1:])

	SetVerbose(args.Verbose)
	SetQuiet(args.Quiet)
	if args.NoColor {
		ForceColorsEnabled(false)
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	args.Raw = remaining[1:]

	switch cmd {
	case "chat", "repl":
		return CmdChat, args
	case "ask":
		return CmdAsk, args
	case "setup":
		return CmdSetup, args
	case "config":
		return CmdConfig, args
	case "models", "list":
		return CmdModels, args
	case "export":
		return CmdExport, args
	case "version", "-v", "--version":
		return CmdVersion, args
	case "help", "-h", "--help":
		return CmdHelp, args
	default:
		args.Raw = remaining
		return CmdTUI, args
	}
}

// parseGlobalFlags extracts the global flags from anywhere in the argument
// list and returns what is left in order.
func parseGlobalFlags(raw []string) ([]string, *Args) {
	args := &Args{}
	var remaining []string

	for i := 0; i < len(raw); i++ {
		arg := raw[i]
		switch {
		case arg == "--model" || arg == "-m":
			if i+1 < len(raw) {
				args.Model = raw[i+1]
				i++
			}
		case strings.HasPrefix(arg, "--model="):
			args.Model = strings.TrimPrefix(arg, "--model=")
		case arg == "--verbose":
			args.Verbose = true
		case arg == "--quiet":
			args.Quiet = true
		case arg == "--json":
			args.JSON = true
		case arg == "--plain":
			args.Plain = true
		case arg == "--no-color":
			args.NoColor = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, args
}

// =============================================================================
// CLIENT CONSTRUCTION
// =============================================================================

// NewClientFromConfig builds a completions client from the configuration
// plus an optional model override, and returns it with the resolved wire
// model identifier. Shared by every surface that talks to the API.
func NewClientFromConfig(cfg *config.Config, modelOverride string) (*cloud.Client, string) {
	name := modelOverride
	if name == "" {
		name = cfg.DefaultModel
	}
	resolved := model.ResolveModel(name)

	client := cloud.NewClient(cfg.API.APIKey)
	if cfg.API.BaseURL != "" {
		client = client.WithBaseURL(cfg.API.BaseURL)
	}
	client = client.WithModel(resolved)

	Debugf("client: base_url=%s model=%s key=%s", client.BaseURL(), resolved, client.APIKeyMasked())
	return client, resolved
}

// =============================================================================
// VERSION AND HELP
// =============================================================================

// HandleVersion prints version information and exits on failure.
func HandleVersion(args *Args) {
	exitOnError(HandleVersionCommand(args))
}

// HandleVersionCommand prints the version, as JSON when requested.
func HandleVersionCommand(args *Args) error {
	if args.JSON {
		payload := struct {
			Name      string `json:"name"`
			Version   string `json:"version"`
			Commit    string `json:"commit"`
			BuildDate string `json:"build_date"`
		}{"parley", Version, GitCommit, BuildDate}

		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode version: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	PrintVersion()
	return nil
}

// HandleHelp prints the usage text.
func HandleHelp() {
	PrintUsage()
}
