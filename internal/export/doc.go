// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes conversation transcripts to disk.
//
// The conversation lives in memory only; this package is the explicit
// "save a copy" path invoked from the TUI (/save) and the CLI (export).
//
// # Key Types
//
//   - Format: Export format enumeration (Markdown, JSON)
//   - Exporter: Per-format export interface
//   - Options: Metadata and timestamp toggles
//
// # Supported Formats
//
//   - Markdown: YAML frontmatter plus one "## User" / "## Bot" section
//     per message
//   - JSON: The complete conversation, indented, with a stable schema
//
// # Usage
//
// Export with a default filename (parley-<date>.md):
//
//	path, err := export.Export(conv, export.FormatMarkdown, "")
//
// Export to a specific file:
//
//	path, err := export.Export(conv, export.FormatJSON, "chat.json")
package export
