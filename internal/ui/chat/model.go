// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the full-screen chat view for the parley TUI.
package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/parley/internal/config"
	"github.com/jeranaias/parley/internal/model"
	"github.com/jeranaias/parley/internal/session"
	"github.com/jeranaias/parley/internal/ui/components"
	"github.com/jeranaias/parley/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	// StateWelcome shows the welcome banner until the first keypress.
	StateWelcome State = iota

	// StateReady accepts input.
	StateReady

	// StateThinking has a completion in flight. Input stays live so the
	// user can type (and submit) the next message while waiting.
	StateThinking
)

// escQuitWindow is how quickly a second Esc press must follow the first
// one to quit.
const escQuitWindow = 2 * time.Second

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat screen. All conversation state
// lives in the session controller; the model only holds presentation state
// and re-reads the transcript on every StateChangedMsg.
type Model struct {
	state State

	// Conversation
	ctrl *session.Controller

	// Layout
	width  int
	height int
	ready  bool

	// Components
	theme       *styles.Theme
	viewport    viewport.Model
	input       *components.InputArea
	spinner     components.Spinner
	header      *components.Header
	status      *components.StatusBar
	welcome     components.Welcome
	messageList *components.MessageList

	// Keys and help
	keyMap   KeyMap
	showHelp bool

	// Transient notice above the status bar; replaced by the next action
	statusMsg string

	// Esc double-tap tracking
	lastEsc time.Time

	version string
}

// New creates the chat model around an existing controller.
func New(ctrl *session.Controller, theme *styles.Theme, version string) Model {
	cfg := config.Global()
	st := ctrl.GetStatus()

	input := components.NewInputArea(theme)

	header := components.NewHeader(theme)
	header.SetModel(st.Model)

	status := components.NewStatusBar(theme)
	status.SetModel(st.Model)
	status.SetMessageCount(st.MessageCount)
	status.SetTokenUsage(st.TokensUsed)
	status.ShowTokens = cfg.UI.ShowTokens
	if !st.Configured {
		status.SetStatus(components.StatusOffline)
	}

	welcome := components.NewWelcome(theme)
	welcome.SetVersion(version)
	welcome.SetModelName(st.Model)
	welcome.SetEndpoint(cfg.API.BaseURL)
	welcome.SetConfigured(st.Configured)

	return Model{
		state:       StateWelcome,
		ctrl:        ctrl,
		theme:       theme,
		input:       input,
		header:      header,
		status:      status,
		welcome:     welcome,
		spinner:     components.NewThinkingSpinner(),
		messageList: components.NewMessageList(theme),
		keyMap:      DefaultKeyMap(),
		version:     version,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

// =============================================================================
// UPDATE LOOP
// =============================================================================

// Update dispatches incoming messages to the appropriate handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Wheel scrolling is handled by the viewport
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case StateChangedMsg:
		return m.handleStateChanged()

	case ExportCompleteMsg:
		return m.handleExportComplete(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Everything else (cursor blinks and the like) belongs to the input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// RESIZE HANDLING
// =============================================================================

// handleResize recomputes the layout for a new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.header.SetWidth(msg.Width)
	m.status.SetWidth(msg.Width)
	m.input.SetWidth(msg.Width)
	m.welcome.SetSize(msg.Width, msg.Height)
	m.messageList.SetWidth(msg.Width)

	vpHeight := m.transcriptHeight()
	if !m.ready {
		m.viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
	}
	m.viewport.SetContent(m.messageList.View())
	m.viewport.GotoBottom()

	return m, nil
}

// transcriptHeight returns the viewport height left over after measuring
// the surrounding chrome at the current width.
func (m *Model) transcriptHeight() int {
	reserved := lipgloss.Height(m.header.View()) +
		lipgloss.Height(m.input.View()) +
		lipgloss.Height(m.status.View())
	if m.statusMsg != "" {
		reserved++
	}
	if m.state == StateThinking {
		reserved += lipgloss.Height(m.spinner.View())
	}

	h := m.height - reserved
	if h < 3 {
		h = 3
	}
	return h
}

// =============================================================================
// KEY HANDLING
// =============================================================================

// handleKey routes a keypress. Order matters: quit always works, an open
// help overlay swallows the key, Esc tracks the double-tap, and only then
// do the global bindings run. Unclaimed keys type into the input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if key.Matches(msg, m.keyMap.Escape) {
		return m.handleEscape()
	}

	// Any other key wakes the chat from the welcome screen and then
	// behaves normally, so typing starts immediately.
	if m.state == StateWelcome {
		m.state = StateReady
	}

	switch {
	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keyMap.Clear):
		m.statusMsg = ""
		m.viewport.GotoBottom()
		return m, tea.ClearScreen

	case key.Matches(msg, m.keyMap.Submit):
		return m.submitInput()

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.ViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Home):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keyMap.End):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleEscape implements the Esc double-tap quit. A single press dismisses
// the transient notice and arms the quit window.
func (m Model) handleEscape() (tea.Model, tea.Cmd) {
	now := time.Now()
	if !m.lastEsc.IsZero() && now.Sub(m.lastEsc) <= escQuitWindow {
		return m, tea.Quit
	}

	m.lastEsc = now
	m.statusMsg = "Press Esc again to quit"
	return m, nil
}

// =============================================================================
// INPUT SUBMISSION
// =============================================================================

// submitInput sends the input buffer through the controller. Empty input is
// a no-op. The buffer is cleared as soon as the controller accepts the
// text, before any reply exists.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	// Slash commands are handled locally and never reach the API
	if strings.HasPrefix(text, "/") {
		return m.handleCommand(text)
	}

	if !m.ctrl.Submit(text) {
		return m, nil
	}

	m.input.Reset()
	m.statusMsg = ""
	m.state = StateThinking
	m.status.SetStatus(components.StatusThinking)
	cmd := m.spinner.Start()
	return m, cmd
}

// =============================================================================
// CONTROLLER NOTIFICATIONS
// =============================================================================

// handleStateChanged re-reads the controller after a transcript append and
// brings every component back in sync with it.
func (m Model) handleStateChanged() (tea.Model, tea.Cmd) {
	st := m.ctrl.GetStatus()

	m.status.SetMessageCount(st.MessageCount)
	m.status.SetTokenUsage(st.TokensUsed)
	m.header.SetModel(st.Model)

	var cmd tea.Cmd
	switch {
	case st.Busy:
		m.state = StateThinking
		m.status.SetStatus(components.StatusThinking)
		if !m.spinner.IsActive() {
			cmd = m.spinner.Start()
		}
	case !st.Configured:
		m.spinner.Stop()
		m.state = StateReady
		m.status.SetStatus(components.StatusOffline)
	default:
		m.spinner.Stop()
		m.state = StateReady
		m.status.SetStatus(components.StatusReady)
	}

	m.refreshTranscript()
	return m, cmd
}

// refreshTranscript rebuilds the viewport content from the controller's
// transcript and keeps the view pinned to the latest message.
func (m *Model) refreshTranscript() {
	msgs := m.ctrl.Messages()
	ptrs := make([]*model.Message, len(msgs))
	for i := range msgs {
		ptrs[i] = &msgs[i]
	}
	m.messageList.SetMessages(ptrs)

	if m.ready {
		m.viewport.Height = m.transcriptHeight()
		m.viewport.SetContent(m.messageList.View())
		m.viewport.GotoBottom()
	}
}

// handleExportComplete surfaces the /save result in the status line.
func (m Model) handleExportComplete(msg ExportCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.statusMsg = "Export failed: " + msg.Err.Error()
	} else {
		m.statusMsg = "Saved to " + msg.Path
	}
	return m, nil
}
