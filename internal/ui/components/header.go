// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the parley TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/parley/internal/model"
	"github.com/jeranaias/parley/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - Title bar with parley branding
// =============================================================================

// Header represents the title bar component
type Header struct {
	Title     string // Main title (default: "parley")
	ModelName string // Current model display name
	Provider  string // Provider of the current model ("OpenAI", "Anthropic", ...)
	Width     int    // Available width
	theme     *styles.Theme
}

// NewHeader creates a new Header component with default values
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:     "parley",
		ModelName: "",
		Provider:  "",
		Width:     80,
		theme:     theme,
	}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetModel updates the current model name. If the model is in the registry,
// the display name and provider are resolved from it.
func (h *Header) SetModel(modelName string) {
	if info, ok := model.GetModelInfo(modelName); ok {
		h.ModelName = info.Name
		h.Provider = info.Provider
		return
	}
	h.ModelName = modelName
	h.Provider = ""
}

// View renders the header component
func (h *Header) View() string {
	// Ensure minimum width
	width := h.Width
	if width < 40 {
		width = 40
	}

	// Calculate inner width (accounting for borders and padding)
	innerWidth := width - 6

	// Brand title with decorative accents
	accentStyle := lipgloss.NewStyle().
		Foreground(styles.Purple)

	brand := accentStyle.Render("< ") +
		h.renderBrandTitle() +
		accentStyle.Render(" >")

	// Subtitle line with model and provider
	subtitleParts := []string{}

	if h.ModelName != "" {
		modelStyle := lipgloss.NewStyle().
			Foreground(styles.TextSecondary)
		subtitleParts = append(subtitleParts, modelStyle.Render(h.ModelName))
	}

	if h.Provider != "" {
		providerStyle := h.getProviderStyle()
		subtitleParts = append(subtitleParts, providerStyle.Render("["+strings.ToUpper(h.Provider)+"]"))
	}

	subtitle := strings.Join(subtitleParts, " ")

	// Center the content
	brandLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Render(brand)

	subtitleLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Foreground(styles.TextMuted).
		Render(subtitle)

	// Combine lines
	content := lipgloss.JoinVertical(lipgloss.Center, brandLine, subtitleLine)

	// Apply the border and styling
	headerBox := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Purple).
		Background(styles.SurfaceDim).
		Padding(0, 2).
		Width(width)

	return headerBox.Render(content)
}

// ViewCompact renders a compact single-line header for narrow terminals
func (h *Header) ViewCompact() string {
	// Compact format: <parley> | model | [PROVIDER]
	accentStyle := lipgloss.NewStyle().
		Foreground(styles.Purple)

	brand := accentStyle.Render("<") +
		h.renderBrandTitle() +
		accentStyle.Render(">")

	parts := []string{brand}

	if h.ModelName != "" {
		modelStyle := lipgloss.NewStyle().
			Foreground(styles.TextMuted)
		parts = append(parts, modelStyle.Render(h.ModelName))
	}

	if h.Provider != "" {
		providerStyle := h.getProviderStyle()
		parts = append(parts, providerStyle.Render("["+strings.ToUpper(h.Provider)+"]"))
	}

	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")

	return strings.Join(parts, separator)
}

// renderBrandTitle renders the brand title, with a gradient on terminals
// that support true color.
func (h *Header) renderBrandTitle() string {
	if h.theme != nil && h.theme.HasTrueColor {
		start := lipgloss.Color(styles.GradientStart.Light)
		end := lipgloss.Color(styles.GradientEnd.Light)
		if h.theme.IsDark {
			start = lipgloss.Color(styles.GradientStart.Dark)
			end = lipgloss.Color(styles.GradientEnd.Dark)
		}
		return GradientTitle(h.Title, start, end)
	}

	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Cyan).
		Render(h.Title)
}

// getProviderStyle returns the badge style for the current provider
func (h *Header) getProviderStyle() lipgloss.Style {
	switch h.Provider {
	case "OpenAI":
		return lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Bold(true)
	case "Anthropic":
		return lipgloss.NewStyle().
			Foreground(styles.Amber).
			Bold(true)
	case "":
		return lipgloss.NewStyle().
			Foreground(styles.TextMuted)
	default:
		return lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)
	}
}

// =============================================================================
// GRADIENT TITLE (for terminals with true color support)
// =============================================================================

// GradientTitle creates a gradient text effect.
// Note: This works best in terminals with true color support
func GradientTitle(text string, startColor, endColor lipgloss.Color) string {
	if len(text) == 0 {
		return ""
	}

	// For short text, just use the start color
	if len(text) < 3 {
		return lipgloss.NewStyle().Foreground(startColor).Render(text)
	}

	// Build gradient character by character
	var result strings.Builder
	chars := []rune(text)
	n := len(chars)

	for i, char := range chars {
		// Calculate interpolation factor
		t := float64(i) / float64(n-1)

		// Interpolate colors (simplified - works for hex colors)
		color := interpolateColor(startColor, endColor, t)

		style := lipgloss.NewStyle().Foreground(color).Bold(true)
		result.WriteString(style.Render(string(char)))
	}

	return result.String()
}

// interpolateColor interpolates between two colors
// This is a simplified version that works for the gradient effect
func interpolateColor(start, end lipgloss.Color, t float64) lipgloss.Color {
	// Extract RGB values from hex colors
	startHex := string(start)
	endHex := string(end)

	// Handle # prefix
	if len(startHex) > 0 && startHex[0] == '#' {
		startHex = startHex[1:]
	}
	if len(endHex) > 0 && endHex[0] == '#' {
		endHex = endHex[1:]
	}

	// Parse hex colors (default to white if parsing fails)
	sr, sg, sb := parseHexColor(startHex)
	er, eg, eb := parseHexColor(endHex)

	// Interpolate each channel
	r := uint8(float64(sr) + t*(float64(er)-float64(sr)))
	g := uint8(float64(sg) + t*(float64(eg)-float64(sg)))
	b := uint8(float64(sb) + t*(float64(eb)-float64(sb)))

	// Format as hex color
	return lipgloss.Color(formatHexColor(r, g, b))
}

// parseHexColor parses a hex color string into RGB components
func parseHexColor(hex string) (r, g, b uint8) {
	if len(hex) < 6 {
		return 255, 255, 255 // Default to white
	}

	// Parse each component
	r = parseHexByte(hex[0:2])
	g = parseHexByte(hex[2:4])
	b = parseHexByte(hex[4:6])
	return
}

// parseHexByte parses a two-character hex string into a byte
func parseHexByte(s string) uint8 {
	if len(s) != 2 {
		return 255
	}

	var result uint8
	for _, c := range s {
		result *= 16
		switch {
		case c >= '0' && c <= '9':
			result += uint8(c - '0')
		case c >= 'a' && c <= 'f':
			result += uint8(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			result += uint8(c - 'A' + 10)
		default:
			return 255
		}
	}
	return result
}

// formatHexColor formats RGB values as a hex color string
func formatHexColor(r, g, b uint8) string {
	const hexChars = "0123456789ABCDEF"
	return "#" +
		string(hexChars[r>>4]) + string(hexChars[r&0xF]) +
		string(hexChars[g>>4]) + string(hexChars[g&0xF]) +
		string(hexChars[b>>4]) + string(hexChars[b&0xF])
}
