// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the parley TUI application.

This package contains a collection of styled components built on top of the
Bubble Tea and Lip Gloss libraries. Each component is designed to be visually
polished and consistent with the parley design language.

# Core Components

## Input Components

InputArea (input.go) - Styled text input with character counter.

## Display Components

Header (header.go) - Application header with branding, model name, and provider badge.
StatusBar (statusbar.go) - Bottom status bar with model, context gauge, and shortcuts.
MessageBubble (message.go) - Styled message bubbles for the chat transcript.
MessageList (message.go) - Renders the full transcript as a stack of bubbles.
CodeBlock (codeblock.go) - Syntax-highlighted code blocks using Chroma.
Welcome (welcome.go) - First-run welcome screen with session info.

## Progress and Feedback

Spinner (spinner.go) - Animated spinner shown while a reply is pending.

# Key Types

## Theme Integration

All components accept a *styles.Theme for consistent styling:

	theme := styles.NewTheme()
	header := components.NewHeader(theme)
	header.SetWidth(80)
	header.SetModel("gpt-4o-mini")
	view := header.View()

## Message Rendering

The transcript renders through MessageList, which picks a bubble style per
role. Bot replies have fenced code blocks pulled out of the bubble and
rendered with syntax highlighting:

	list := components.NewMessageList(theme)
	list.SetWidth(80)
	list.SetMessages(conversation.GetHistory())
	view := list.View()

Error replies are ordinary bot messages and render like any other reply.

# Helper Functions

The package includes shared helper functions in helpers.go:
  - fmtNumber() - Integer formatting with thousands separators
  - fmtPercent() - Percentage formatting with one decimal place
  - wordWrap() - Cell-width aware word wrapping for bubble content
  - formatElapsed() - Human-readable elapsed time for the spinner
*/
package components
