// parley - A terminal chat client for OpenAI-compatible LLM endpoints.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/parley/internal/cli"
	"github.com/jeranaias/parley/internal/config"
	"github.com/jeranaias/parley/internal/session"
	"github.com/jeranaias/parley/internal/ui/chat"
	"github.com/jeranaias/parley/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	// Parse CLI arguments
	cmd, args := cli.Parse()

	// Route to appropriate handler
	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdChat:
		cli.HandleChat(args)
	case cli.CmdAsk:
		cli.HandleAsk(args)
	case cli.CmdSetup:
		cli.HandleSetup(args)
	case cli.CmdConfig:
		cli.HandleConfig(args)
	case cli.CmdModels:
		cli.HandleModels(args)
	case cli.CmdExport:
		cli.HandleExport(args)
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp()
	default:
		runTUI(args) // Default to TUI
	}
}

// runTUI starts the full-screen terminal interface.
func runTUI(args *cli.Args) {
	// Load configuration at startup
	cfg := config.Global()

	// USABILITY: point brand-new users at the wizard instead of dropping
	// them into a TUI that cannot answer anything.
	if config.IsFirstRun() && cfg.API.APIKey == "" {
		cli.Infof("No configuration found. Run 'parley setup' to create one, or set PARLEY_API_KEY.")
	}

	// Build the completions client; CLI --model overrides config
	client, modelID := cli.NewClientFromConfig(cfg, args.Model)

	ctrl := session.NewController(client, session.Config{Model: modelID})
	defer ctrl.Close()

	theme := styles.NewTheme()
	m := chat.New(ctrl, theme, Version)

	// Create the Bubble Tea program
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	// Send must not run on the listener path: it can block while the
	// program starts up, and the controller requires listeners to return
	// promptly.
	ctrl.Subscribe(func() {
		go p.Send(chat.StateChangedMsg{})
	})

	// Pick up config edits made while the TUI is open. An in-flight
	// request keeps the client it started with; the next turn uses the
	// new credentials.
	watcher, err := config.WatchGlobal(func(newCfg *config.Config) {
		newClient, _ := cli.NewClientFromConfig(newCfg, args.Model)
		ctrl.SetClient(newClient)
		go p.Send(chat.StateChangedMsg{})
	})
	if err != nil {
		cli.Debugf("config watcher unavailable: %v", err)
	} else {
		defer watcher.Close()
	}

	// Run the program
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running parley: %v\n", err)
		os.Exit(1)
	}
}
