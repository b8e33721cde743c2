// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements blank checks, whitespace tokenizing and padding.
//              Widths are counted in runes so box-drawing output lines up.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-06-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-06-14 v0.2.0: Added Words and Width, dropped unused helpers

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Words splits s on runs of whitespace and drops empty tokens.
// Leading and trailing whitespace never produce tokens.
func Words(s string) []string {
	return strings.FieldsFunc(s, unicode.IsSpace)
}

// Width returns the display width of s in runes.
func Width(s string) int {
	return utf8.RuneCountInString(s)
}

// Repeat returns pad repeated n times; n <= 0 yields "".
func Repeat(pad rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(pad), n)
}

// PadRight pads s on the right with pad up to width.
// If s is already at least width runes long it is returned unchanged.
func PadRight(s string, width int, pad rune) string {
	return s + Repeat(pad, width-Width(s))
}

// Center centers s within width. When the padding is odd the extra
// rune goes to the right.
func Center(s string, width int, pad rune) string {
	total := width - Width(s)
	if total <= 0 {
		return s
	}
	left := total / 2
	return Repeat(pad, left) + s + Repeat(pad, total-left)
}

// HasPrefixFold reports whether s begins with prefix, ignoring case.
func HasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
