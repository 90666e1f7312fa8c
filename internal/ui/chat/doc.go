// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the full-screen chat view for the parley TUI.

The package implements a Bubble Tea model over a session.Controller. The
controller owns the conversation; the chat model holds presentation state
only and re-reads the transcript whenever the controller reports a change.

# Key Components

## Model (model.go)

The central Bubble Tea model:
  - Input handling (Enter submits, buffer clears immediately)
  - Viewport scrolling over the rendered transcript
  - Thinking spinner while a completion is in flight
  - Esc double-tap and Ctrl+C quit handling

## View Rendering (view.go)

  - Header with model name, status bar with token estimate
  - Welcome screen until the first keypress
  - Help overlay with keyboard shortcuts
  - Transient notice line for command feedback

## Commands (commands.go)

Slash command handler registry supporting:
  - /help - Show shortcuts and commands
  - /model - Switch the model for the next turn
  - /save - Export the transcript (Markdown or JSON)
  - /clear-screen - Repaint the terminal
  - /quit - Exit

# Wiring

The controller's change notification must be bridged into the program from
outside the update loop:

	ctrl := session.NewController(client, session.DefaultConfig())
	m := chat.New(ctrl, styles.NewTheme(), version)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	ctrl.Subscribe(func() {
		go p.Send(chat.StateChangedMsg{})
	})
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}

Listeners fire on the appending goroutine while the update loop may be
blocked inside program.Send's receiver, so the bridge sends from a fresh
goroutine.
*/
package chat
