// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// commands.go - Slash command registry for the chat interface.
//
// Commands are handled locally and never reach the API. Feedback goes to
// the transient notice line; the transcript itself only ever holds user
// messages and replies.
package chat

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/parley/internal/export"
	"github.com/jeranaias/parley/internal/model"
)

// =============================================================================
// COMMAND HANDLER REGISTRY
// =============================================================================

// CommandHandler handles a single slash command. It receives the model and
// the arguments after the command name.
type CommandHandler func(m Model, args []string) (tea.Model, tea.Cmd)

// commandHandlers maps command names (and their short aliases) to handlers.
var commandHandlers = map[string]CommandHandler{
	"help": handleHelpCommand,
	"h":    handleHelpCommand,
	"?":    handleHelpCommand,

	"model": handleModelCommand,
	"m":     handleModelCommand,

	"save": handleSaveCommand,
	"s":    handleSaveCommand,

	"clear-screen": handleClearScreenCommand,
	"cls":          handleClearScreenCommand,

	"quit": handleQuitCommand,
	"q":    handleQuitCommand,
	"exit": handleQuitCommand,
}

// handleCommand parses and dispatches a /-prefixed input line.
func (m Model) handleCommand(text string) (tea.Model, tea.Cmd) {
	m.input.Reset()

	parts := strings.Fields(text)
	if len(parts) == 0 {
		return m, nil
	}

	cmdName := strings.ToLower(strings.TrimPrefix(parts[0], "/"))
	args := parts[1:]

	handler, ok := commandHandlers[cmdName]
	if !ok {
		m.statusMsg = "Unknown command: /" + cmdName + " (type /help for commands)"
		return m, nil
	}

	return handler(m, args)
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// handleHelpCommand opens the keyboard shortcut and command overlay.
func handleHelpCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	m.showHelp = true
	m.statusMsg = ""
	return m, nil
}

// handleModelCommand switches the model used for the next turn. Without
// arguments it reports the active model.
func handleModelCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		m.statusMsg = "Model: " + m.ctrl.Model() + " (usage: /model <name>, e.g. /model " +
			strings.Join(model.ModelShortNames()[:3], ", ") + ", ...)"
		return m, nil
	}

	resolved := m.ctrl.SetModel(strings.Join(args, " "))
	m.header.SetModel(resolved)
	m.status.SetModel(resolved)
	m.statusMsg = "Model set to " + resolved
	return m, nil
}

// handleSaveCommand exports the transcript. The optional argument is the
// target path; its extension picks the format (default Markdown).
func handleSaveCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	if m.ctrl.MessageCount() == 0 {
		m.statusMsg = "Nothing to save yet"
		return m, nil
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	format := export.FormatFromPath(path)

	m.statusMsg = "Exporting..."
	return m, exportCmd(m.ctrl.Snapshot(), format, path)
}

// handleClearScreenCommand repaints the terminal. The transcript is
// untouched; only the screen is redrawn.
func handleClearScreenCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	m.viewport.GotoBottom()
	return m, tea.ClearScreen
}

// handleQuitCommand exits the program.
func handleQuitCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
