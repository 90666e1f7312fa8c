// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/jeranaias/parley/internal/config"
	"github.com/jeranaias/parley/internal/export"
	"github.com/jeranaias/parley/internal/model"
	"github.com/jeranaias/parley/internal/session"
)

// Styles for the REPL surface.
var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	welcomeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true)
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// =============================================================================
// LINE EDITOR
// =============================================================================

// ChatCLI wraps the line editor with persistent history. History lives in
// the configured history file (default ~/.parley/history) and survives
// across sessions.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a line editor with history loaded from disk.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	historyFile, err := config.Global().HistoryFilePath()
	if err != nil {
		historyFile = os.TempDir() + "/parley_history"
	}

	c := &ChatCLI{line: line, historyFile: historyFile}
	c.LoadHistory()
	return c
}

// LoadHistory reads the history file if it exists.
func (c *ChatCLI) LoadHistory() {
	f, err := os.Open(c.historyFile)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.ReadHistory(f)
}

// ReadInput prompts for a line of input. Non-empty input is appended to
// the in-memory history.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory writes the history file. The file is chmod 0600 because
// prompts can contain anything the user typed.
func (c *ChatCLI) SaveHistory() error {
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	_, err = c.line.WriteHistory(f)
	return err
}

// Close saves history and releases the terminal.
func (c *ChatCLI) Close() {
	if err := c.SaveHistory(); err != nil {
		Debugf("history save failed: %v", err)
	}
	c.line.Close()
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

// HandleChat runs the chat command and exits on failure.
func HandleChat(args *Args) {
	exitOnError(HandleChatCommand(args))
}

// HandleChatCommand runs the line-based REPL. Each entered line becomes one
// turn through the session controller; the reply (or the error standing in
// for it) prints beneath the prompt. For the full-screen interface run the
// binary with no command instead.
func HandleChatCommand(args *Args) error {
	if err := RequiresTTY("run the chat REPL"); err != nil {
		return err
	}

	cfg := config.Global()
	client, modelID := NewClientFromConfig(cfg, args.Model)

	ctrl := session.NewController(client, session.Config{Model: modelID})
	defer ctrl.Close()

	chatCLI := NewChatCLI()
	defer chatCLI.Close()

	// Ctrl-C during an in-flight turn closes the controller, which cancels
	// the request and unblocks Wait below. Ctrl-C at the prompt is handled
	// separately by liner as ErrPromptAborted.
	var interrupted atomic.Bool
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		interrupted.Store(true)
		ctrl.Close()
	}()

	printChatWelcome(ctrl)

	useMarkdown := shouldRenderMarkdown(args, cfg)

	for {
		input, err := chatCLI.ReadInput(promptStyle.Render("parley> "))
		if err != nil {
			// Ctrl-C at the prompt or Ctrl-D both end the session.
			fmt.Println()
			printExitSummary(ctrl)
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			keepGoing, err := handleSlashCommand(input, ctrl)
			if err != nil {
				fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
			}
			if !keepGoing {
				printExitSummary(ctrl)
				return nil
			}
			continue
		}

		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			printExitSummary(ctrl)
			return nil
		}

		if !ctrl.Submit(input) {
			// Controller closed underneath us, usually by the signal
			// handler above.
			printExitSummary(ctrl)
			return nil
		}
		ctrl.Wait()

		if interrupted.Load() {
			fmt.Println()
			printExitSummary(ctrl)
			return nil
		}

		if last, ok := ctrl.LastMessage(); ok && last.Role == model.RoleBot {
			displayReply(last.Content, useMarkdown)
		}
	}
}

// displayReply prints one reply with surrounding blank lines.
func displayReply(content string, useMarkdown bool) {
	fmt.Println()
	if useMarkdown {
		fmt.Println(renderReply(content))
	} else {
		fmt.Println(content)
	}
	fmt.Println()
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleSlashCommand dispatches a /command line. Returns false when the
// session should end.
func handleSlashCommand(input string, ctrl *session.Controller) (bool, error) {
	parts := strings.Fields(input)
	command := strings.ToLower(parts[0])

	switch command {
	case "/help", "/h", "/?":
		printChatHelp()
		return true, nil

	case "/model", "/m":
		if len(parts) < 2 {
			fmt.Printf("Model: %s\n", ctrl.Model())
			fmt.Println(DimStyle.Render("usage: /model <name>  (see 'parley models' for names)"))
			return true, nil
		}
		resolved := ctrl.SetModel(parts[1])
		fmt.Printf("Model set to %s\n", resolved)
		return true, nil

	case "/save":
		return true, saveTranscript(ctrl, strings.Join(parts[1:], " "))

	case "/clear-screen", "/cls":
		// ANSI clear plus cursor home. The transcript itself is untouched.
		fmt.Print("\x1b[2J\x1b[H")
		return true, nil

	case "/quit", "/q", "/exit":
		return false, nil

	case "/":
		printChatHelp()
		return true, nil

	default:
		return true, fmt.Errorf("unknown command: %s (type /help for commands)", command)
	}
}

// saveTranscript exports the conversation to the given path, or to a
// generated filename when none is given.
func saveTranscript(ctrl *session.Controller, path string) error {
	snapshot := ctrl.Snapshot()
	if snapshot.IsEmpty() {
		fmt.Println("Nothing to save yet.")
		return nil
	}

	path = strings.TrimSpace(path)
	format := export.FormatMarkdown
	if path != "" {
		format = export.FormatFromPath(path)
	}

	written, err := export.Export(snapshot, format, path)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Printf("Saved %d messages to %s\n", snapshot.MessageCount(), written)
	return nil
}

// =============================================================================
// REPL OUTPUT
// =============================================================================

// printChatWelcome prints the session banner.
func printChatWelcome(ctrl *session.Controller) {
	fmt.Println(welcomeStyle.Render("parley " + Version))
	fmt.Println(InfoStyle.Render("Model: ") + ctrl.Model())
	if !ctrl.IsConfigured() {
		fmt.Println(WarningStyle.Render("No API key configured. Run 'parley setup' or set PARLEY_API_KEY."))
	}
	fmt.Println(DimStyle.Render("Type /help for commands, /quit or Ctrl-D to leave."))
	fmt.Println()
}

// printChatHelp prints the slash command reference.
func printChatHelp() {
	fmt.Println("Commands:")
	commands := []struct {
		name string
		desc string
	}{
		{"/help", "Show this help"},
		{"/model [name]", "Show or switch the model"},
		{"/save [path]", "Export the transcript (markdown or .json)"},
		{"/clear-screen", "Clear the terminal (transcript is kept)"},
		{"/quit", "End the session"},
	}
	for _, c := range commands {
		fmt.Printf("  %s %s\n", commandStyle.Render(fmt.Sprintf("%-15s", c.name)), c.desc)
	}
	fmt.Println()
}

// printExitSummary prints the end-of-session line.
func printExitSummary(ctrl *session.Controller) {
	count := ctrl.MessageCount()
	if count > 0 {
		fmt.Printf("%d messages this session.\n", count)
	}
	fmt.Println("Goodbye!")
}
