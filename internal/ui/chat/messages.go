// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// messages.go - Bubble Tea message types for the chat interface.
//
// The chat screen has exactly two asynchronous inputs: the controller's
// change notification (bridged in from outside the program) and the result
// of a /save export. Everything else arrives through Bubble Tea's own
// message types.
package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/parley/internal/export"
	"github.com/jeranaias/parley/internal/model"
)

// =============================================================================
// CONTROLLER BRIDGE
// =============================================================================

// StateChangedMsg is delivered after every transcript append. The controller
// fires its change listeners on the appending goroutine, so the bridge in
// main forwards each notification with program.Send from a fresh goroutine;
// the update loop re-reads Controller.Messages() on every delivery.
type StateChangedMsg struct{}

// =============================================================================
// EXPORT MESSAGES
// =============================================================================

// ExportCompleteMsg carries the result of a /save export.
type ExportCompleteMsg struct {
	Path string
	Err  error
}

// exportCmd runs an export off the update loop and reports the result.
// The snapshot is taken before the command runs, so the exported transcript
// is exactly what the user saw when they typed /save.
func exportCmd(conv *model.Conversation, format export.Format, path string) tea.Cmd {
	return func() tea.Msg {
		written, err := export.Export(conv, format, path)
		return ExportCompleteMsg{Path: written, Err: err}
	}
}
