// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the parley TUI.

This package defines the color palette, theme, and animation primitives used
throughout the application. All colors use Lip Gloss AdaptiveColor for
automatic light/dark terminal detection.

# Color System (colors.go)

## Primary Accent Colors

  - Purple - Primary accent for bot replies and selections
  - Cyan - Brand color for info, commands, and user highlights
  - Emerald - Success states and the connected indicator
  - Amber - Warnings and missing-credential hints
  - Rose - Errors and critical warnings

## Semantic Colors

Message bubbles use semantic color tokens:

	UserBubbleBg - Background for user messages
	UserBubbleFg - Text color for user messages
	BotBubbleBg  - Background for bot replies (including error replies)
	BotBubbleFg  - Text color for bot replies

## Surface Colors

Layered surface system for depth:

	Surface    - Main background
	SurfaceDim - Subtle backgrounds (headers, status bars)
	Overlay    - Borders, separators, popups

## Text Colors

Hierarchical text color system:

	TextPrimary   - Main content text
	TextSecondary - Supporting text
	TextMuted     - De-emphasized text
	TextInverse   - Text on colored backgrounds

# Theme System (theme.go)

The Theme struct provides runtime color adaptation:

	theme := styles.NewTheme()
	if theme.IsDark {
		// Dark terminal detected
	}
	if theme.HasTrueColor {
		// Terminal supports 16M colors
	}

Themes carry the full set of pre-built lipgloss styles for the chat view,
input area, status bar, spinner, welcome screen, and help overlay.

# Animation System (animations.go)

Pre-defined spinner styles:

	LineSpinner  - Simple line rotation
	DotsSpinner  - Classic three-dot animation
	PulseSpinner - Pulsing indicator

RenderProgressBar draws the context usage gauge for the status bar.

# Status Indicators

ASCII indicators for various states:

	StatusIndicators.Success - [OK]
	StatusIndicators.Error   - [X]
	StatusIndicators.Warning - [!]
	StatusIndicators.Info    - [i]

# Usage Example

	import "github.com/jeranaias/parley/internal/ui/styles"

	// Use adaptive colors
	headerStyle := lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextPrimary)

	// Use theme for runtime detection
	theme := styles.NewTheme()
	theme.SetSize(120, 40)
	if theme.GetLayoutMode() == styles.LayoutWide {
		// Render the wide status bar
	}
*/
package styles
