// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/jeranaias/parley/internal/export"
)

// =============================================================================
// EXPORT COMMAND
// =============================================================================

// HandleExport runs the export command and exits on failure.
func HandleExport(args *Args) {
	exitOnError(HandleExportCommand(args))
}

// HandleExportCommand converts a transcript saved with /save into another
// format: the input is a .json transcript, the output format comes from
// --format or the output file's extension, defaulting to markdown.
func HandleExportCommand(args *Args) error {
	parser := NewArgParser(args.Raw)

	input := parser.Positional(0)
	if input == "" {
		return NewUsageError("export", "a transcript file is required, for example: parley export transcript.json notes.md")
	}
	output := parser.Positional(1)

	conv, err := export.LoadConversation(input)
	if err != nil {
		return fmt.Errorf("cannot read transcript: %w", err)
	}

	format := export.FormatMarkdown
	if v, ok := parser.Flag("format"); ok {
		format, err = export.ParseFormat(v)
		if err != nil {
			return NewUsageError("export", err.Error())
		}
	} else if output != "" {
		format = export.FormatFromPath(output)
	}

	written, err := export.Export(conv, format, output)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("Exported %d messages to %s\n", conv.MessageCount(), written)
	return nil
}
