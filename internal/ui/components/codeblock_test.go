// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the parley TUI.
package components

import (
	"strings"
	"testing"
)

// =============================================================================
// CODE BLOCK TESTS
// =============================================================================

func TestNewCodeBlock(t *testing.T) {
	cb := NewCodeBlock("go", "fmt.Println(1)")

	if cb.Language != "go" {
		t.Errorf("NewCodeBlock() Language = %q, want %q", cb.Language, "go")
	}
	if cb.Code != "fmt.Println(1)" {
		t.Errorf("NewCodeBlock() Code = %q, want %q", cb.Code, "fmt.Println(1)")
	}
	if cb.MaxWidth != 80 {
		t.Errorf("NewCodeBlock() MaxWidth = %d, want 80", cb.MaxWidth)
	}
}

func TestCodeBlockSetMaxWidth(t *testing.T) {
	cb := NewCodeBlock("go", "x := 1")

	cb.SetMaxWidth(120)
	if cb.MaxWidth != 120 {
		t.Errorf("SetMaxWidth(120) MaxWidth = %d, want 120", cb.MaxWidth)
	}
}

func TestCodeBlockRender(t *testing.T) {
	cb := NewCodeBlock("go", "package main\n\nfunc main() {}")

	view := cb.Render()
	if view == "" {
		t.Error("Render() should return non-empty string")
	}

	// Language badge should appear
	if !strings.Contains(view, "go") {
		t.Error("Render() should contain the language badge")
	}
}

func TestCodeBlockRenderPlainText(t *testing.T) {
	cb := NewCodeBlock("", "hello world")

	view := cb.Render()
	if view == "" {
		t.Error("Render() should return non-empty string for plain text")
	}
	if !strings.Contains(view, "hello") {
		t.Error("Render() should contain the code text")
	}
}

func TestCodeBlockRenderNarrow(t *testing.T) {
	cb := NewCodeBlock("go", "x := 1")
	cb.SetMaxWidth(5) // Below the minimum

	view := cb.Render()
	if view == "" {
		t.Error("Render() should handle very narrow widths")
	}
}

// =============================================================================
// FENCE PARSER TESTS
// =============================================================================

func TestParseCodeBlocksPlainText(t *testing.T) {
	parts := ParseCodeBlocks("just some prose\nwith two lines")

	if len(parts) != 1 {
		t.Fatalf("ParseCodeBlocks(prose) returned %d parts, want 1", len(parts))
	}
	if parts[0].IsCode {
		t.Error("prose part should not be code")
	}
	if parts[0].Content != "just some prose\nwith two lines" {
		t.Errorf("prose content = %q, want original text", parts[0].Content)
	}
}

func TestParseCodeBlocksWithFence(t *testing.T) {
	text := "Before\n```go\nx := 1\n```\nAfter"
	parts := ParseCodeBlocks(text)

	if len(parts) != 3 {
		t.Fatalf("ParseCodeBlocks() returned %d parts, want 3", len(parts))
	}

	if parts[0].IsCode || parts[0].Content != "Before" {
		t.Errorf("part 0 = %+v, want prose %q", parts[0], "Before")
	}

	if !parts[1].IsCode {
		t.Error("part 1 should be code")
	}
	if parts[1].Language != "go" {
		t.Errorf("part 1 Language = %q, want %q", parts[1].Language, "go")
	}
	if parts[1].Content != "x := 1" {
		t.Errorf("part 1 Content = %q, want %q", parts[1].Content, "x := 1")
	}

	if parts[2].IsCode || parts[2].Content != "After" {
		t.Errorf("part 2 = %+v, want prose %q", parts[2], "After")
	}
}

func TestParseCodeBlocksFenceOnly(t *testing.T) {
	parts := ParseCodeBlocks("```python\nprint(1)\nprint(2)\n```")

	if len(parts) != 1 {
		t.Fatalf("ParseCodeBlocks(fence only) returned %d parts, want 1", len(parts))
	}
	if !parts[0].IsCode {
		t.Error("single part should be code")
	}
	if parts[0].Language != "python" {
		t.Errorf("Language = %q, want %q", parts[0].Language, "python")
	}
	if parts[0].Content != "print(1)\nprint(2)" {
		t.Errorf("Content = %q, want both lines", parts[0].Content)
	}
}

func TestParseCodeBlocksUnclosedFence(t *testing.T) {
	// Partial replies can end mid-fence; the remainder counts as code
	parts := ParseCodeBlocks("Look:\n```go\nx := 1")

	if len(parts) != 2 {
		t.Fatalf("ParseCodeBlocks(unclosed) returned %d parts, want 2", len(parts))
	}
	if parts[0].IsCode {
		t.Error("part 0 should be prose")
	}
	if !parts[1].IsCode {
		t.Error("part 1 should be code")
	}
	if parts[1].Language != "go" {
		t.Errorf("part 1 Language = %q, want %q", parts[1].Language, "go")
	}
	if parts[1].Content != "x := 1" {
		t.Errorf("part 1 Content = %q, want %q", parts[1].Content, "x := 1")
	}
}

func TestParseCodeBlocksNoLanguage(t *testing.T) {
	parts := ParseCodeBlocks("```\nsome code\n```")

	if len(parts) != 1 {
		t.Fatalf("ParseCodeBlocks() returned %d parts, want 1", len(parts))
	}
	if !parts[0].IsCode {
		t.Error("part should be code")
	}
	if parts[0].Language != "" {
		t.Errorf("Language = %q, want empty", parts[0].Language)
	}
}

func TestParseCodeBlocksMultipleFences(t *testing.T) {
	text := "```go\na\n```\nmiddle\n```sh\nb\n```"
	parts := ParseCodeBlocks(text)

	if len(parts) != 3 {
		t.Fatalf("ParseCodeBlocks() returned %d parts, want 3", len(parts))
	}
	if !parts[0].IsCode || parts[0].Language != "go" {
		t.Errorf("part 0 = %+v, want go code", parts[0])
	}
	if parts[1].IsCode || parts[1].Content != "middle" {
		t.Errorf("part 1 = %+v, want prose %q", parts[1], "middle")
	}
	if !parts[2].IsCode || parts[2].Language != "sh" {
		t.Errorf("part 2 = %+v, want sh code", parts[2])
	}
}

// =============================================================================
// INLINE CODE TESTS
// =============================================================================

func TestRenderInlineCode(t *testing.T) {
	result := RenderInlineCode("go build")
	if !strings.Contains(result, "go build") {
		t.Errorf("RenderInlineCode() = %q, should contain the code", result)
	}
}

func TestParseInlineCode(t *testing.T) {
	result := ParseInlineCode("run `go build` to compile")

	if !strings.Contains(result, "go build") {
		t.Errorf("ParseInlineCode() = %q, should contain the code text", result)
	}
	if strings.Contains(result, "`") {
		t.Errorf("ParseInlineCode() = %q, should strip the backticks", result)
	}
}

func TestParseInlineCodeUnclosed(t *testing.T) {
	// An unclosed backtick is restored as a literal
	result := ParseInlineCode("this ` is literal")

	if !strings.Contains(result, "`") {
		t.Errorf("ParseInlineCode(unclosed) = %q, should keep the literal backtick", result)
	}
}

func TestParseInlineCodeMultipleSpans(t *testing.T) {
	result := ParseInlineCode("`a` and `b`")

	if !strings.Contains(result, "a") || !strings.Contains(result, "b") {
		t.Errorf("ParseInlineCode() = %q, should contain both spans", result)
	}
	if strings.Contains(result, "`") {
		t.Errorf("ParseInlineCode() = %q, should strip all backticks", result)
	}
}

func TestParseInlineCodeEmpty(t *testing.T) {
	if result := ParseInlineCode(""); result != "" {
		t.Errorf("ParseInlineCode(\"\") = %q, want empty", result)
	}
}
