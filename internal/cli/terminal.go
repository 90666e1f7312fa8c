// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TERMINAL DETECTION
// =============================================================================

// Terminal width bounds. Output is formatted for DefaultTerminalWidth when
// the real width cannot be determined, and never narrower than
// MinTerminalWidth even on degenerate terminals.
const (
	DefaultTerminalWidth = 80
	MinTerminalWidth     = 40
)

// IsTTY returns true if stdin is connected to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is connected to a terminal.
// False when output is piped or redirected.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsStderrTTY returns true if stderr is connected to a terminal.
func IsStderrTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// GetTerminalWidth returns the current terminal width in columns, clamped
// to MinTerminalWidth and defaulting to DefaultTerminalWidth when stdout is
// not a terminal.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// GetTerminalSize returns the terminal dimensions, falling back to 80x24.
func GetTerminalSize() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return DefaultTerminalWidth, 24
	}
	return w, h
}

// =============================================================================
// COLOR SUPPORT
// =============================================================================

var (
	colorsEnabled     bool
	colorsEnabledOnce sync.Once
)

// ColorsEnabled reports whether output should use ANSI colors.
//
// USABILITY: NO_COLOR takes precedence over FORCE_COLOR; both take
// precedence over TTY detection. The answer is computed once per process.
func ColorsEnabled() bool {
	colorsEnabledOnce.Do(func() {
		if os.Getenv("NO_COLOR") != "" {
			colorsEnabled = false
			return
		}
		if os.Getenv("FORCE_COLOR") != "" {
			colorsEnabled = true
			return
		}
		colorsEnabled = IsStdoutTTY()
	})
	return colorsEnabled
}

// ForceColorsEnabled overrides color detection. Tests use this to pin the
// answer regardless of the environment they run in.
func ForceColorsEnabled(enabled bool) {
	colorsEnabledOnce.Do(func() {})
	colorsEnabled = enabled
}

// GetColorProfile returns the termenv color profile matching the color
// decision, so styled output degrades to plain text when colors are off.
func GetColorProfile() termenv.Profile {
	if !ColorsEnabled() {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

// =============================================================================
// INTERACTIVITY
// =============================================================================

// CanPrompt reports whether the process can ask the user questions: stdin
// must be a terminal to read answers and stderr one to show prompts.
func CanPrompt() bool {
	return IsTTY() && IsStderrTTY()
}

// TTYRequiredError indicates an interactive operation was attempted without
// a terminal attached.
type TTYRequiredError struct {
	Operation string
}

// Error implements the error interface.
func (e *TTYRequiredError) Error() string {
	return fmt.Sprintf("stdin is not a terminal; cannot %s interactively", e.Operation)
}

// RequiresTTY returns a TTYRequiredError when the process cannot prompt.
func RequiresTTY(operation string) error {
	if !CanPrompt() {
		return &TTYRequiredError{Operation: operation}
	}
	return nil
}
