// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the parley TUI.
package components

import (
	"testing"
	"time"
)

// =============================================================================
// NUMBER FORMATTING TESTS
// =============================================================================

func TestFmtNumber(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{1, "1"},
		{999, "999"},
		{1000, "1,000"},
		{1234, "1,234"},
		{12345, "12,345"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{1234567890, "1,234,567,890"},
		{-1, "-1"},
		{-999, "-999"},
		{-1000, "-1,000"},
		{-1234, "-1,234"},
		{-123456, "-123,456"},
		{-9223372036854775808, "-9,223,372,036,854,775,808"}, // MinInt64
	}

	for _, tc := range tests {
		got := fmtNumber(tc.input)
		if got != tc.want {
			t.Errorf("fmtNumber(%d) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFmtNumberLargeNumbers(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{9999999, "9,999,999"},
		{10000000, "10,000,000"},
		{100000000, "100,000,000"},
		{1000000000, "1,000,000,000"},
		{2147483647, "2,147,483,647"}, // MaxInt32
	}

	for _, tc := range tests {
		got := fmtNumber(tc.input)
		if got != tc.want {
			t.Errorf("fmtNumber(%d) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFmtPercent(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0.0, "0.0%"},
		{1.0, "1.0%"},
		{50.0, "50.0%"},
		{99.9, "99.9%"},
		{100.0, "100.0%"},
		{0.5, "0.5%"},
		{12.3, "12.3%"},
		{87.6, "87.6%"},
		{33.333, "33.3%"}, // Rounds to one decimal
	}

	for _, tc := range tests {
		got := fmtPercent(tc.input)
		if got != tc.want {
			t.Errorf("fmtPercent(%f) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFmtPercentEdgeCases(t *testing.T) {
	// Negative percentages preserve the sign
	tests := []struct {
		input float64
		want  string
	}{
		{-1.0, "-1.0%"},
		{-10.5, "-10.5%"},
		{-0.1, "-0.1%"},
	}

	for _, tc := range tests {
		got := fmtPercent(tc.input)
		if got != tc.want {
			t.Errorf("fmtPercent(%f) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// =============================================================================
// WORD WRAP TESTS
// =============================================================================

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"empty", "", 10, ""},
		{"fits", "hello", 10, "hello"},
		{"two words fit", "a b c", 10, "a b c"},
		{"wraps at width", "hello world", 5, "hello\nworld"},
		{"wraps multiple", "one two three four", 7, "one two\nthree\nfour"},
		{"preserves newlines", "a\n\nb", 10, "a\n\nb"},
		{"zero width returns input", "hello world", 0, "hello world"},
		{"long word kept whole", "supercalifragilistic", 5, "supercalifragilistic"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := wordWrap(tc.text, tc.width)
			if got != tc.want {
				t.Errorf("wordWrap(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
			}
		})
	}
}

func TestWordWrapWideRunes(t *testing.T) {
	// UNICODE: CJK characters occupy two cells each, so two ideographs
	// exceed a width of 4 once a space joins the words.
	got := wordWrap("你好 世界", 4)
	want := "你好\n世界"
	if got != want {
		t.Errorf("wordWrap(CJK, 4) = %q, want %q", got, want)
	}
}

func TestMaxLineWidth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"abc\nde", 3},
		{"ab\ncdef\ng", 4},
		{"你好", 4}, // Two cells per ideograph
	}

	for _, tc := range tests {
		got := maxLineWidth(tc.text)
		if got != tc.want {
			t.Errorf("maxLineWidth(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestMinInt(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{1, 2, 1},
		{2, 1, 1},
		{5, 5, 5},
		{-1, 1, -1},
		{0, 0, 0},
	}

	for _, tc := range tests {
		got := minInt(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("minInt(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

// =============================================================================
// TIME FORMATTING TESTS
// =============================================================================

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{5 * time.Second, "5s"},
		{59 * time.Second, "59s"},
		{60 * time.Second, "1m 0s"},
		{65 * time.Second, "1m 5s"},
		{125 * time.Second, "2m 5s"},
	}

	for _, tc := range tests {
		got := formatElapsed(tc.d)
		if got != tc.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{0, 0, "12:00 AM"},
		{0, 5, "12:05 AM"},
		{9, 7, "9:07 AM"},
		{11, 59, "11:59 AM"},
		{12, 0, "12:00 PM"},
		{13, 45, "1:45 PM"},
		{23, 59, "11:59 PM"},
	}

	for _, tc := range tests {
		ts := time.Date(2025, time.March, 10, tc.hour, tc.minute, 0, 0, time.UTC)
		got := formatTime(ts)
		if got != tc.want {
			t.Errorf("formatTime(%02d:%02d) = %q, want %q", tc.hour, tc.minute, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		month time.Month
		day   int
		want  string
	}{
		{time.January, 5, "Jan 5"},
		{time.June, 30, "Jun 30"},
		{time.December, 25, "Dec 25"},
	}

	for _, tc := range tests {
		ts := time.Date(2025, tc.month, tc.day, 12, 0, 0, 0, time.UTC)
		got := formatDate(ts)
		if got != tc.want {
			t.Errorf("formatDate(%v %d) = %q, want %q", tc.month, tc.day, got, tc.want)
		}
	}
}

// =============================================================================
// BENCHMARK TESTS
// =============================================================================

func BenchmarkFmtNumber(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = fmtNumber(123456789)
	}
}

func BenchmarkFmtPercent(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = fmtPercent(87.654)
	}
}

func BenchmarkWordWrap(b *testing.B) {
	text := "The quick brown fox jumps over the lazy dog and keeps on running"
	for i := 0; i < b.N; i++ {
		_ = wordWrap(text, 20)
	}
}
