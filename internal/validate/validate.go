// Package validate holds the syntax checks for dialogue input.
package validate

import (
	"unicode"
	"unicode/utf8"
)

const (
	// CodeLength is the exact length of a room code
	CodeLength = 7

	// HostMinLength is the shortest accepted host name, in characters
	HostMinLength = 2

	// HostMaxLength is the longest accepted host name, in characters
	HostMaxLength = 15
)

// Code reports whether text is a room code: exactly CodeLength ASCII letters or digits
func Code(text string) bool {
	if len(text) != CodeLength {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}

// Host reports whether text is a host name: 2 to 15 printable characters
func Host(text string) bool {
	n := utf8.RuneCountInString(text)
	if n < HostMinLength || n > HostMaxLength {
		return false
	}
	for _, r := range text {
		if r == utf8.RuneError || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// UserID reports whether text looks like a Discord user ID
func UserID(text string) bool {
	if text == "" || len(text) > 20 {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}
