// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/parley/internal/config"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer renders replies for terminal display. Created once at
// startup; nil means glamour could not initialize and replies print as raw
// text instead.
var markdownRenderer *glamour.TermRenderer

func init() {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(GetTerminalWidth()),
	)
	if err == nil {
		markdownRenderer = r
	}
}

// renderReply renders a reply as markdown, falling back to the raw text
// when rendering is unavailable or fails.
func renderReply(content string) string {
	if markdownRenderer == nil {
		return content
	}
	out, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}

// shouldRenderMarkdown decides whether replies get markdown treatment:
// only on a real terminal, only when neither the --plain flag nor the
// config disables it.
func shouldRenderMarkdown(args *Args, cfg *config.Config) bool {
	return IsStdoutTTY() && !args.Plain && cfg.UI.Markdown
}

// =============================================================================
// ASK COMMAND
// =============================================================================

// HandleAsk runs the ask command and exits on failure.
func HandleAsk(args *Args) {
	exitOnError(HandleAskCommand(args))
}

// HandleAskCommand performs a one-shot completion: question in, answer on
// stdout, exit. The question is the joined positional arguments; when stdin
// is piped its content is appended to the question, so both
// `parley ask "..."` and `git diff | parley ask "review this"` work.
func HandleAskCommand(args *Args) error {
	parser := NewArgParser(args.Raw)
	prompt := JoinPositionalArgs(parser.PositionalFrom(0))

	if !IsTTY() {
		piped, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		pipedText := strings.TrimSpace(string(piped))
		switch {
		case prompt == "":
			prompt = pipedText
		case pipedText != "":
			prompt = prompt + "\n\n" + pipedText
		}
	}

	if prompt == "" {
		return NewUsageError("ask", `a question is required: parley ask "why is the sky blue?"`)
	}

	cfg := config.Global()
	client, modelID := NewClientFromConfig(cfg, args.Model)

	// Ctrl-C cancels the in-flight request instead of killing the process
	// mid-write.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	Debugf("ask: model=%s prompt_chars=%d", modelID, len(prompt))
	reply, err := client.Complete(ctx, prompt)
	if err != nil {
		return fmt.Errorf("completion failed: %w", err)
	}

	if shouldRenderMarkdown(args, cfg) {
		fmt.Println(renderReply(reply))
	} else {
		fmt.Println(reply)
	}
	return nil
}
