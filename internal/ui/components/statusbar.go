// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the parley TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/parley/internal/model"
	"github.com/jeranaias/parley/internal/ui/styles"
	"github.com/jeranaias/parley/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT - Bottom status bar
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusReady Status = iota
	StatusThinking
	StatusOffline
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusThinking:
		return "Thinking..."
	case StatusOffline:
		return "No API key"
	default:
		return "Unknown"
	}
}

// Icon returns an icon for the status.
// ACCESSIBILITY: Uses distinct shapes alongside colors for colorblind users
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusThinking:
		return styles.StatusIndicators.Pending
	case StatusOffline:
		return styles.StatusIndicators.Warning
	default:
		return "?"
	}
}

// StatusBar is the bottom status bar of the chat view.
type StatusBar struct {
	ModelName     string // Current model display name
	MessageCount  int    // Messages in the transcript
	TokenCount    int    // Estimated tokens used by the conversation
	MaxTokens     int    // Context window of the current model
	Status        Status // Current status
	Width         int    // Available width
	ShowShortcuts bool   // Show keyboard shortcuts
	ShowTokens    bool   // Show the token gauge
	theme         *styles.Theme
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		ModelName:     "",
		MessageCount:  0,
		TokenCount:    0,
		MaxTokens:     4096,
		Status:        StatusReady,
		Width:         80,
		ShowShortcuts: true,
		ShowTokens:    true,
		theme:         theme,
	}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetTokenUsage updates the token count display.
func (s *StatusBar) SetTokenUsage(used int) {
	s.TokenCount = used
}

// SetMessageCount updates the transcript length display.
func (s *StatusBar) SetMessageCount(count int) {
	s.MessageCount = count
}

// SetStatus updates the current status.
func (s *StatusBar) SetStatus(status Status) {
	s.Status = status
}

// SetModel updates the model name with optional registry lookup.
// If the model is found in the registry, displays the friendly name and
// adopts the model's context window for the gauge.
func (s *StatusBar) SetModel(modelName string) {
	if info, ok := model.GetModelInfo(modelName); ok {
		s.ModelName = info.Name
		if info.MaxTokens > 0 {
			s.MaxTokens = info.MaxTokens
		}
	} else {
		// Unknown model - display as-is
		s.ModelName = modelName
	}
}

// View renders the status bar.
func (s *StatusBar) View() string {
	// Choose layout based on width
	if s.Width < 60 {
		return s.viewNarrow()
	}
	if s.Width < 100 {
		return s.viewMedium()
	}
	return s.viewWide()
}

// viewNarrow renders a compact status bar for narrow terminals.
// Format: [icon] Nmsg gauge
func (s *StatusBar) viewNarrow() string {
	parts := []string{}

	// Status icon
	statusStyle := s.getStatusStyle()
	parts = append(parts, statusStyle.Render(s.Status.Icon()))

	// Message count
	countStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
	parts = append(parts, countStyle.Render(util.IntToString(s.MessageCount)+"msg"))

	// Context gauge (small)
	if s.ShowTokens {
		parts = append(parts, s.renderContextBar(6))
	}

	separator := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" ")
	result := strings.Join(parts, separator)

	// Apply background
	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Width(s.Width).
		Render(result)
}

// viewMedium renders a medium-width status bar.
// Format: model | N msgs | Ctx: gauge | Status
func (s *StatusBar) viewMedium() string {
	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")

	parts := []string{}

	// Model, truncated by display width so the bar stays on one line
	if s.ModelName != "" {
		modelStyle := lipgloss.NewStyle().Foreground(styles.Purple).Bold(true)
		parts = append(parts, modelStyle.Render(util.TruncateWidth(s.ModelName, 18)))
	}

	// Message count
	countStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
	parts = append(parts, countStyle.Render(fmtNumber(s.MessageCount)+" msgs"))

	// Context gauge with label
	if s.ShowTokens {
		contextLabel := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Render("Ctx:")
		parts = append(parts, contextLabel+" "+s.renderContextBar(10))
	}

	// Status
	statusStyle := s.getStatusStyle()
	parts = append(parts, statusStyle.Render(s.Status.String()))

	result := strings.Join(parts, separator)

	// Apply background
	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Padding(0, 1).
		Width(s.Width).
		Render(result)
}

// viewWide renders a full-featured status bar for wide terminals.
// Format: model | N msgs | 1.2k tok | Ctx: gauge percent | Status | shortcuts
func (s *StatusBar) viewWide() string {
	// Left section: model, counts
	leftParts := []string{}

	if s.ModelName != "" {
		modelStyle := lipgloss.NewStyle().Foreground(styles.Purple).Bold(true)
		leftParts = append(leftParts, modelStyle.Render(s.ModelName))
	}

	countStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
	leftParts = append(leftParts, countStyle.Render(fmtNumber(s.MessageCount)+" msgs"))

	tokenStr := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render(util.FormatCount(s.TokenCount) + " tok")
	leftParts = append(leftParts, tokenStr)

	leftSep := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")
	leftSection := strings.Join(leftParts, leftSep)

	// Center section: context gauge with percentage
	centerSection := ""
	if s.ShowTokens {
		contextLabel := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Render("Ctx: ")
		centerSection = contextLabel + s.renderContextBar(10) + " " + s.renderContextPercent()
	}

	// Right section: status and shortcuts
	rightParts := []string{}

	statusStyle := s.getStatusStyle()
	rightParts = append(rightParts, statusStyle.Render(s.Status.String()))

	if s.ShowShortcuts {
		rightParts = append(rightParts, s.renderShortcuts())
	}

	rightSection := strings.Join(rightParts, " ")

	// Calculate spacing
	leftWidth := lipgloss.Width(leftSection)
	centerWidth := lipgloss.Width(centerSection)
	rightWidth := lipgloss.Width(rightSection)
	totalContent := leftWidth + centerWidth + rightWidth

	// Add spacing between sections
	spacing := s.Width - totalContent - 4 // Account for padding
	if spacing < 4 {
		spacing = 4
	}

	leftSpace := strings.Repeat(" ", spacing/2)
	rightSpace := strings.Repeat(" ", spacing-spacing/2)

	result := leftSection + leftSpace + centerSection + rightSpace + rightSection

	// Apply styled border for wide view
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(styles.Overlay).
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Padding(0, 1).
		Width(s.Width).
		Render(result)
}

// ==========================================================================
// HELPER RENDER METHODS
// ==========================================================================

// renderContextBar renders the context usage gauge at the given width.
func (s *StatusBar) renderContextBar(width int) string {
	percent := s.contextPercent()

	// Choose color based on percentage
	// ACCESSIBILITY: High contrast colors at the warning thresholds
	barColor := styles.Cyan
	if percent >= 90 {
		barColor = styles.ErrorHighContrast
	} else if percent >= 75 {
		barColor = styles.WarningHighContrast
	} else if percent >= 50 {
		barColor = styles.Emerald
	}

	bar := styles.RenderProgressBar(width, percent)
	return lipgloss.NewStyle().Foreground(barColor).Render("[" + bar + "]")
}

// renderContextPercent renders the context percentage with token counts.
func (s *StatusBar) renderContextPercent() string {
	percent := s.contextPercent()

	// Choose color based on percentage
	color := styles.TextMuted
	if percent >= 90 {
		color = styles.Rose
	} else if percent >= 75 {
		color = styles.Amber
	}

	percentStyle := lipgloss.NewStyle().Foreground(color)

	// Format: 2,048/4,096 (50.0%)
	return percentStyle.Render(
		fmtNumber(s.TokenCount) + "/" + fmtNumber(s.MaxTokens) +
			" (" + fmtPercent(percent) + ")",
	)
}

// renderShortcuts renders keyboard shortcut hints.
func (s *StatusBar) renderShortcuts() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted)

	shortcuts := []string{
		keyStyle.Render("^H") + descStyle.Render("help"),
		keyStyle.Render("^C") + descStyle.Render("quit"),
	}

	return strings.Join(shortcuts, " ")
}

// getStatusStyle returns the style for the current status.
// ACCESSIBILITY: Uses high contrast colors with bold for colorblind users
func (s *StatusBar) getStatusStyle() lipgloss.Style {
	switch s.Status {
	case StatusReady:
		return lipgloss.NewStyle().Foreground(styles.SuccessHighContrast).Bold(true)
	case StatusThinking:
		return lipgloss.NewStyle().Foreground(styles.InfoHighContrast).Bold(true)
	case StatusOffline:
		return lipgloss.NewStyle().Foreground(styles.WarningHighContrast).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(styles.TextMuted)
	}
}

// contextPercent returns the context usage as a 0-100 percentage.
func (s *StatusBar) contextPercent() float64 {
	if s.MaxTokens <= 0 {
		return 0
	}
	return float64(s.TokenCount) / float64(s.MaxTokens) * 100
}
