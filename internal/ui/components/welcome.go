// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the parley TUI.
package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/parley/internal/ui/styles"
	"github.com/jeranaias/parley/internal/util"
)

// =============================================================================
// WELCOME SCREEN MODEL
// =============================================================================

// Welcome is the welcome screen component.
type Welcome struct {
	// Display info
	version    string
	modelName  string
	baseURL    string
	configured bool // True when an API key is present

	// Dimensions
	width  int
	height int

	// Theme
	theme *styles.Theme
}

// NewWelcome creates a new welcome screen.
func NewWelcome(theme *styles.Theme) Welcome {
	return Welcome{
		version:   "dev",
		modelName: "gpt-4o-mini",
		baseURL:   "https://openrouter.ai/api/v1",
		theme:     theme,
	}
}

// SetVersion sets the version string.
func (w *Welcome) SetVersion(version string) {
	w.version = version
}

// SetModelName sets the model name.
func (w *Welcome) SetModelName(name string) {
	w.modelName = name
}

// SetEndpoint sets the API endpoint URL.
func (w *Welcome) SetEndpoint(baseURL string) {
	w.baseURL = baseURL
}

// SetConfigured sets whether an API key is present.
func (w *Welcome) SetConfigured(configured bool) {
	w.configured = configured
}

// SetSize updates the dimensions.
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the welcome screen.
func (w Welcome) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (w Welcome) Update(msg tea.Msg) (Welcome, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
	}
	return w, nil
}

// View renders the welcome screen.
// Responsive: adapts to terminal size, minimum 80x24 supported.
func (w Welcome) View() string {
	width := w.width
	if width == 0 {
		width = 80
	}
	height := w.height
	if height == 0 {
		height = 24
	}

	// Calculate box width - responsive to terminal width
	boxWidth := 62
	if width < 70 {
		boxWidth = width - 8
	}
	if boxWidth < 40 {
		boxWidth = 40
	}
	if boxWidth > width-4 {
		boxWidth = width - 4
	}

	// Adjust padding for narrow terminals
	horizontalPadding := 4
	verticalPadding := 1
	if width < 70 {
		horizontalPadding = 2
	}

	// Box overhead: 2 (border top/bottom) + 2*verticalPadding
	boxOverhead := 2 + 2*verticalPadding

	// Available lines for content inside the box
	availableContentLines := height - boxOverhead

	// Build the content based on available space
	// Logo: 6 lines (without leading newline)
	// Version: 1 line
	// Session info: 3 lines (Model, API, Key)
	// Quick start: 5 lines (title + 4 tips)
	// Press key: 1 line

	var content string
	var contentLines int

	if availableContentLines >= 24 {
		// Full layout with quick start tips
		content = w.renderLogo()
		content += "\n\n" + w.renderVersion()
		content += "\n\n" + w.renderSessionInfo()
		content += "\n\n" + w.renderQuickStart()
		content += "\n\n" + w.renderPressKey()
		contentLines = 6 + 2 + 1 + 2 + 3 + 2 + 5 + 2 + 1 // 24
	} else if availableContentLines >= 18 {
		// Standard layout with double newlines
		content = w.renderLogo()
		content += "\n\n" + w.renderVersion()
		content += "\n\n" + w.renderSessionInfo()
		content += "\n\n" + w.renderPressKey()
		contentLines = 6 + 2 + 1 + 2 + 3 + 2 + 1 // 17
	} else if availableContentLines >= 14 {
		// Compact: single newlines between sections
		content = w.renderLogo()
		content += "\n" + w.renderVersion()
		content += "\n" + w.renderSessionInfo()
		content += "\n" + w.renderPressKey()
		contentLines = 6 + 1 + 1 + 1 + 3 + 1 + 1 // 14
	} else if availableContentLines >= 10 {
		// Very compact: use compact logo, minimal spacing
		content = w.renderLogoCompact()
		content += "\n" + w.renderVersion()
		content += "\n" + w.renderSessionInfo()
		content += "\n" + w.renderPressKey()
		contentLines = 3 + 1 + 1 + 1 + 3 + 1 + 1 // 11
	} else {
		// Ultra compact: minimal content
		content = w.renderLogoCompact()
		content += "\n" + w.renderSessionInfoCompact()
		content += "\n" + w.renderPressKey()
		contentLines = 3 + 1 + 1 + 1 + 1 // 7
	}

	// If still too tight, remove vertical padding
	if contentLines+boxOverhead > height {
		verticalPadding = 0
	}

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(styles.Purple).
		Padding(verticalPadding, horizontalPadding).
		Width(boxWidth).
		Align(lipgloss.Center).
		Render(content)

	boxHeight := lipgloss.Height(box)

	// Don't center if box is taller than available space.
	// Align to top so the logo stays visible instead of clipping.
	if boxHeight >= height {
		return lipgloss.Place(
			width, height,
			lipgloss.Center, lipgloss.Top,
			box,
		)
	}

	// Box fits - center it vertically
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

// =============================================================================
// RENDER HELPERS
// =============================================================================

// renderLogo renders the ASCII art logo (6 lines).
// Responsive: uses compact or simple logo for narrow terminals.
func (w Welcome) renderLogo() string {
	logoStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	// Full ASCII art is ~38 chars wide, needs ~46 with box padding
	if w.width >= 60 {
		// Full ASCII art logo - 6 lines using pure ASCII characters
		logo := ` ____   _    ____  _     _______   __
|  _ \ / \  |  _ \| |   | ____\ \ / /
| |_) / _ \ | |_) | |   |  _|  \ V /
|  __/ ___ \|  _ <| |___| |___  | |
|_| /_/   \_\_| \_\_____|_____| |_|
                                     `
		return logoStyle.Render(logo)
	}

	// For narrow terminals, use compact logo
	return w.renderLogoCompact()
}

// renderLogoCompact renders a compact text-based logo (3 lines).
func (w Welcome) renderLogoCompact() string {
	logoStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	if w.width >= 40 {
		// Compact box logo for narrow terminals - 3 lines
		// Uses standard ASCII box drawing for maximum compatibility
		return logoStyle.Render(`+--------------------+
|       parley       |
+--------------------+`)
	}

	// Simple text logo for very narrow terminals - 1 line
	return logoStyle.Render("parley - Terminal AI Chat")
}

// renderVersion renders the version subtitle.
func (w Welcome) renderVersion() string {
	return lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true).
		Render("Terminal AI Chat v" + w.version)
}

// renderSessionInfo renders model, endpoint, and key info (3 lines).
func (w Welcome) renderSessionInfo() string {
	labelStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Width(8)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	endpointStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted)

	lines := []string{
		labelStyle.Render("Model: ") + valueStyle.Render(w.modelName),
		labelStyle.Render("API:   ") + endpointStyle.Render(w.displayEndpoint()),
		labelStyle.Render("Key:   ") + w.renderKeyIndicator(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderSessionInfoCompact renders a single-line session info (1 line).
func (w Welcome) renderSessionInfoCompact() string {
	valueStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	return valueStyle.Render(w.modelName) + " | " + w.renderKeyIndicator()
}

// renderKeyIndicator renders the API key status with appropriate color.
func (w Welcome) renderKeyIndicator() string {
	if w.configured {
		return lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Bold(true).
			Render("configured")
	}
	return lipgloss.NewStyle().
		Foreground(styles.Amber).
		Bold(true).
		Render("missing (run: parley setup)")
}

// displayEndpoint strips the URL scheme for a cleaner info line.
func (w Welcome) displayEndpoint() string {
	endpoint := strings.TrimPrefix(w.baseURL, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	// UNICODE: truncation counts runes, not bytes
	return util.TruncateRunes(endpoint, 40)
}

// renderQuickStart renders the quick start tips.
func (w Welcome) renderQuickStart() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Bold(true)

	bulletStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	tipStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary)

	tips := []string{
		bulletStyle.Render("-") + tipStyle.Render(" Type a message and press Enter"),
		bulletStyle.Render("-") + tipStyle.Render(" Use /help to see all commands"),
		bulletStyle.Render("-") + tipStyle.Render(" Use /model to switch models"),
		bulletStyle.Render("-") + tipStyle.Render(" Press Ctrl+C to quit"),
	}

	title := titleStyle.Render("Quick Start:")

	return title + "\n" + lipgloss.JoinVertical(lipgloss.Left, tips...)
}

// renderPressKey renders the "press any key" prompt.
func (w Welcome) renderPressKey() string {
	return lipgloss.NewStyle().
		Foreground(styles.Purple).
		Render("Press any key to start chatting...")
}

// =============================================================================
// KEYBOARD SHORTCUT HELP
// =============================================================================

// KeyboardShortcuts returns a formatted list of keyboard shortcuts.
func KeyboardShortcuts() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary)

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send message"},
		{"Ctrl+C", "Quit"},
		{"Ctrl+L", "Clear screen"},
		{"Ctrl+H", "Toggle help"},
		{"Up/Down", "Scroll transcript"},
		{"PgUp/PgDn", "Page scroll"},
		{"Esc", "Dismiss help"},
	}

	lines := make([]string, len(shortcuts))
	for i, s := range shortcuts {
		lines[i] = keyStyle.Render(s.key) + descStyle.Render(s.desc)
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Bold(true)

	return titleStyle.Render("Keyboard Shortcuts") + "\n" +
		lipgloss.JoinVertical(lipgloss.Left, lines...)
}
