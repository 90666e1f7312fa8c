// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the parley application.
package util

import (
	"fmt"
	"strconv"
)

// IntToString converts an int to string.
// Uses strconv.Itoa for optimal performance.
func IntToString(i int) string {
	return strconv.Itoa(i)
}

// FormatCount renders a count for tight status bars: plain digits below
// one thousand, a one-decimal "k" form up to a million, then "M".
func FormatCount(n int) string {
	switch {
	case n < 1000:
		return strconv.Itoa(n)
	case n < 1000000:
		return trimZero(fmt.Sprintf("%.1fk", float64(n)/1000))
	default:
		return trimZero(fmt.Sprintf("%.1fM", float64(n)/1000000))
	}
}

// trimZero drops the ".0" a whole-number quotient leaves behind.
func trimZero(s string) string {
	if len(s) < 3 {
		return s
	}
	unit := s[len(s)-1:]
	num := s[:len(s)-1]
	if len(num) > 2 && num[len(num)-2:] == ".0" {
		return num[:len(num)-2] + unit
	}
	return s
}
