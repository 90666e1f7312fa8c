// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the parley TUI.
package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/parley/internal/model"
	"github.com/jeranaias/parley/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT - Chat transcript bubbles
// =============================================================================

// MessageBubble represents a styled message bubble
type MessageBubble struct {
	Message       *model.Message
	Width         int
	ShowTimestamp bool
	theme         *styles.Theme
}

// NewMessageBubble creates a new MessageBubble
func NewMessageBubble(msg *model.Message, theme *styles.Theme) *MessageBubble {
	if msg == nil {
		// Render as an empty generic bubble rather than panicking
		return &MessageBubble{
			Message: &model.Message{},
			Width:   80,
			theme:   theme,
		}
	}
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		theme:         theme,
	}
}

// SetWidth sets the bubble width
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble
func (b *MessageBubble) View() string {
	switch b.Message.Role {
	case model.RoleUser:
		return b.renderUserBubble()
	case model.RoleBot:
		return b.renderBotBubble()
	default:
		return b.renderGenericBubble()
	}
}

// ==========================================================================
// USER BUBBLE - Blue tones, right-aligned feel
// ==========================================================================

func (b *MessageBubble) renderUserBubble() string {
	content := b.Message.Content
	if content == "" {
		content = "..."
	}

	// Word wrap the content
	maxContentWidth := b.Width - 12 // Account for margins and padding
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrappedContent := wordWrap(content, maxContentWidth)

	// Calculate actual content width (for the bubble)
	contentWidth := minInt(maxLineWidth(wrappedContent)+4, b.Width-8)

	// User bubble style - blue tones
	bubbleStyle := lipgloss.NewStyle().
		Foreground(styles.UserBubbleFg).
		Background(styles.UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.UserBubbleBorder).
		Padding(0, 2).
		Width(contentWidth)

	bubble := bubbleStyle.Render(wrappedContent)

	// Role indicator - subtle, not bold
	roleStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)
	roleIndicator := roleStyle.Render("you")

	// Timestamp (dimmed)
	timestamp := ""
	if b.ShowTimestamp {
		timestamp = b.renderTimestamp()
	}

	// Build the header (role + timestamp)
	headerParts := []string{roleIndicator}
	if timestamp != "" {
		headerParts = append(headerParts, timestamp)
	}
	header := strings.Join(headerParts, " ")

	// Right-align the bubble with left margin
	leftMargin := b.Width - contentWidth - 4
	if leftMargin < 0 {
		leftMargin = 0
	}

	marginStyle := lipgloss.NewStyle().MarginLeft(leftMargin)

	// Assemble: header above, bubble below (right-aligned)
	headerLine := marginStyle.Render(header)
	bubbleLine := marginStyle.Render(bubble)

	return lipgloss.JoinVertical(lipgloss.Right, headerLine, bubbleLine)
}

// ==========================================================================
// BOT BUBBLE - Purple/violet tones, left-aligned
// ==========================================================================

// renderBotBubble renders a reply in purple tones. Fenced code blocks are
// pulled out of the bubble and rendered with syntax highlighting and line
// numbers; the surrounding prose is markdown and goes through glamour, with
// plain word wrapping as the fallback. Error replies flow through here
// unchanged since they are ordinary transcript messages.
func (b *MessageBubble) renderBotBubble() string {
	content := b.Message.Content
	if strings.TrimSpace(content) == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}

	bubbleStyle := lipgloss.NewStyle().
		Foreground(styles.BotBubbleFg).
		Background(styles.BotBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.BotBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	var sections []string
	for _, part := range ParseCodeBlocks(content) {
		if part.IsCode {
			cb := NewCodeBlock(part.Language, part.Content)
			cb.SetMaxWidth(maxContentWidth)
			sections = append(sections, cb.Render())
			continue
		}

		text := strings.TrimSpace(part.Content)
		if text == "" {
			continue
		}
		if rendered, ok := renderMarkdownProse(text, maxContentWidth); ok {
			contentWidth := minInt(lipgloss.Width(rendered)+4, b.Width-8)
			sections = append(sections, bubbleStyle.Width(contentWidth).Render(rendered))
			continue
		}
		// Plain fallback still styles `inline code`; the backticks swap for
		// the span padding, so wrapped line widths are unchanged.
		wrapped := wordWrap(text, maxContentWidth)
		contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)
		sections = append(sections, bubbleStyle.Width(contentWidth).Render(ParseInlineCode(wrapped)))
	}

	// All-whitespace content still gets a bubble
	if len(sections) == 0 {
		wrapped := wordWrap(content, maxContentWidth)
		contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)
		sections = append(sections, bubbleStyle.Width(contentWidth).Render(wrapped))
	}

	// Role indicator - subtle, not bold
	roleStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)
	roleIndicator := roleStyle.Render("bot")

	// Timestamp
	timestamp := ""
	if b.ShowTimestamp {
		timestamp = b.renderTimestamp()
	}

	// Build header
	headerParts := []string{roleIndicator}
	if timestamp != "" {
		headerParts = append(headerParts, timestamp)
	}
	header := strings.Join(headerParts, " ")

	lines := append([]string{header}, sections...)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// ==========================================================================
// GENERIC BUBBLE - Fallback for unknown roles
// ==========================================================================

func (b *MessageBubble) renderGenericBubble() string {
	content := b.Message.Content
	if content == "" {
		content = "..."
	}

	// Word wrap
	maxContentWidth := b.Width - 10
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	if maxContentWidth > b.Width-2 {
		maxContentWidth = b.Width - 2
	}
	wrappedContent := wordWrap(content, maxContentWidth)

	// Simple style
	bubbleStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Overlay).
		Padding(0, 2)

	bubble := bubbleStyle.Render(wrappedContent)

	// Unknown roles keep their raw name as the indicator
	name := b.Message.Role.DisplayName()
	if name == "" {
		return bubble
	}
	roleStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)

	return lipgloss.JoinVertical(lipgloss.Left, roleStyle.Render(name), bubble)
}

// ==========================================================================
// HELPER METHODS
// ==========================================================================

// renderTimestamp renders a dimmed timestamp
func (b *MessageBubble) renderTimestamp() string {
	timestampStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)

	ts := b.Message.Timestamp
	if ts.IsZero() {
		return ""
	}

	// Format: "12:34 PM" or "Jan 5, 12:34 PM"
	now := time.Now()
	var formatted string

	if ts.Year() == now.Year() && ts.YearDay() == now.YearDay() {
		// Same day - just show time
		formatted = formatTime(ts)
	} else {
		// Different day - show date and time
		formatted = formatDate(ts) + ", " + formatTime(ts)
	}

	return timestampStyle.Render(formatted)
}

// =============================================================================
// MESSAGE LIST COMPONENT - For rendering the transcript
// =============================================================================

// MessageList represents a list of message bubbles
type MessageList struct {
	Messages       []*model.Message
	Width          int
	ShowTimestamps bool
	theme          *styles.Theme
}

// NewMessageList creates a new MessageList
func NewMessageList(theme *styles.Theme) *MessageList {
	return &MessageList{
		Messages:       []*model.Message{},
		Width:          80,
		ShowTimestamps: true,
		theme:          theme,
	}
}

// SetMessages sets the messages to display
func (ml *MessageList) SetMessages(messages []*model.Message) {
	ml.Messages = messages
}

// SetWidth sets the list width
func (ml *MessageList) SetWidth(width int) {
	ml.Width = width
}

// View renders all messages
func (ml *MessageList) View() string {
	if len(ml.Messages) == 0 {
		// Empty state
		emptyStyle := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Width(ml.Width).
			Align(lipgloss.Center).
			Padding(2, 0)

		return emptyStyle.Render("No messages yet. Say hello!")
	}

	var bubbles []string

	for _, msg := range ml.Messages {
		bubble := NewMessageBubble(msg, ml.theme)
		bubble.SetWidth(ml.Width)
		bubble.ShowTimestamp = ml.ShowTimestamps

		bubbles = append(bubbles, bubble.View())
	}

	// Add spacing between messages
	separator := "\n"

	return strings.Join(bubbles, separator)
}
