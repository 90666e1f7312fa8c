// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// SHARED CLI STYLES
// =============================================================================

func init() {
	// Pin the lipgloss profile to the color decision so styled output
	// renders as plain text under NO_COLOR and in pipes.
	lipgloss.SetColorProfile(GetColorProfile())
}

// Shared styles for command output. Handlers that need a one-off style
// define it next to their code; these are the ones used across commands.
var (
	// TitleStyle renders command headings.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			MarginBottom(1)

	// SectionStyle renders section headings within a command's output.
	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true).
			MarginTop(1)

	// LabelStyle renders row labels in aligned key/value output.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(20)

	// ValueStyle renders row values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// SuccessStyle renders confirmation markers.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	// ErrorStyle renders failure markers.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	// WarningStyle renders cautions that do not stop the command.
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// DimStyle renders secondary detail: hints, masked values, fine print.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	// InfoStyle renders neutral informational lines.
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75"))

	// HighlightStyle marks the selected entry in listings.
	HighlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	// SeparatorStyle renders horizontal rules.
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// RenderSeparator returns a horizontal rule sized to the terminal, capped
// at the default width so rules do not sprawl on wide terminals.
func RenderSeparator() string {
	width := GetTerminalWidth()
	if width > DefaultTerminalWidth {
		width = DefaultTerminalWidth
	}
	return SeparatorStyle.Render(strings.Repeat("-", width))
}

// RenderStatus renders a bracketed status marker: [OK], [WARN], or [FAIL].
func RenderStatus(ok bool, warn bool) string {
	switch {
	case ok:
		return SuccessStyle.Render("[OK]")
	case warn:
		return WarningStyle.Render("[WARN]")
	default:
		return ErrorStyle.Render("[FAIL]")
	}
}
