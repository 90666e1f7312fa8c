// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// view.go - Rendering for the chat interface.
//
// Layout: header + transcript (viewport) + [thinking line] + [notice] +
// input + status bar. The viewport absorbs whatever height the measured
// chrome leaves over, so the total always equals the terminal height.
package chat

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/parley/internal/ui/components"
	"github.com/jeranaias/parley/internal/ui/styles"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the current screen.
func (m Model) View() string {
	if !m.ready {
		return "Starting parley..."
	}

	if m.state == StateWelcome && m.ctrl.MessageCount() == 0 {
		return m.welcome.View()
	}

	return m.renderChat()
}

// renderChat renders the main chat layout.
func (m Model) renderChat() string {
	header := m.header.View()
	input := m.input.View()
	statusBar := m.status.View()

	var thinking string
	if m.state == StateThinking {
		thinking = m.spinner.View()
	}

	var notice string
	if m.statusMsg != "" {
		notice = m.renderNotice()
	}

	// The viewport gets whatever is left after the measured chrome
	available := m.height -
		lipgloss.Height(header) -
		lipgloss.Height(input) -
		lipgloss.Height(statusBar)
	if thinking != "" {
		available -= lipgloss.Height(thinking)
	}
	if notice != "" {
		available -= lipgloss.Height(notice)
	}
	if available < 3 {
		available = 3
	}
	if m.viewport.Height != available {
		m.viewport.Height = available
	}

	transcript := m.viewport.View()
	if m.showHelp {
		transcript = m.renderHelpOverlay(available)
	}

	sections := []string{header, transcript}
	if thinking != "" {
		sections = append(sections, thinking)
	}
	if notice != "" {
		sections = append(sections, notice)
	}
	sections = append(sections, input, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// =============================================================================
// OVERLAYS AND NOTICES
// =============================================================================

// renderHelpOverlay renders the keyboard shortcut sheet in place of the
// transcript. Any key dismisses it.
func (m Model) renderHelpOverlay(height int) string {
	panel := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Purple).
		Padding(1, 3).
		Render(components.KeyboardShortcuts())

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, panel)
}

// renderNotice renders the transient status line (export results, the Esc
// quit hint, command feedback).
func (m Model) renderNotice() string {
	return lipgloss.NewStyle().
		Foreground(styles.Amber).
		Italic(true).
		PaddingLeft(2).
		MaxWidth(m.width).
		Render(m.statusMsg)
}
