// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import (
	"strings"
	"unicode"
)

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func toLower(r rune) rune {
	if isUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// withCaseOf returns letter in the case of original.
func withCaseOf(letter, original rune) rune {
	if isUpper(original) {
		return toUpper(letter)
	}
	return toLower(letter)
}

// CleanMessage reduces s to lowercase ASCII letters.
func CleanMessage(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isLetter(r) {
			b.WriteRune(toLower(r))
		}
	}
	return b.String()
}

// letters returns the letters of s in order, case preserved.
func letters(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if isLetter(r) {
			out = append(out, r)
		}
	}
	return out
}

func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if isLetter(r) {
			n++
		}
	}
	return n
}

// firstLetter returns the index of the first letter in rs, or -1.
func firstLetter(rs []rune) int {
	for i, r := range rs {
		if isLetter(r) {
			return i
		}
	}
	return -1
}

// carrierLines splits text into its non-blank lines.
func carrierLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func isMark(r rune) bool {
	return r == '.' || r == '!'
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
