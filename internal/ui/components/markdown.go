// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// markdown.go - Glamour-backed markdown rendering for bot prose.
//
// USABILITY: Bot replies are markdown; rendering them with glamour gives
// headings, emphasis, and lists proper terminal styling. Fenced code blocks
// are handled separately by CodeBlock, so only the prose between fences
// flows through here.
package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// proseRenderer is the shared glamour renderer for bot prose. The renderer
// bakes in its word-wrap width, so it is rebuilt whenever the bubble width
// changes. All rendering happens on the UI goroutine.
var (
	proseRenderer      *glamour.TermRenderer
	proseRendererWidth int
)

// renderMarkdownProse renders markdown prose wrapped to the given width.
// Returns ok=false when the renderer is unavailable or rendering fails;
// callers fall back to plain word wrapping so the text is never lost.
func renderMarkdownProse(text string, width int) (string, bool) {
	if width < 20 {
		width = 20
	}

	if proseRenderer == nil || proseRendererWidth != width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", false
		}
		proseRenderer = renderer
		proseRendererWidth = width
	}

	rendered, err := proseRenderer.Render(text)
	if err != nil {
		return "", false
	}

	rendered = strings.Trim(rendered, "\n")
	if strings.TrimSpace(rendered) == "" {
		return "", false
	}

	return rendered, true
}
