// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import (
	"fmt"
	"strings"
)

// Method identifies a hiding technique.
type Method string

const (
	MethodELS         Method = "els"
	MethodAcrostic    Method = "acrostic"
	MethodPunctuation Method = "punctuation"
	MethodNullCipher  Method = "null-cipher"

	// MethodAuto asks the decoder to detect the method itself.
	MethodAuto Method = "auto"
)

// Methods lists the concrete methods in detection tie-break order.
var Methods = []Method{MethodPunctuation, MethodAcrostic, MethodNullCipher, MethodELS}

// ParseMethod maps a request tag onto a Method.
// An empty tag is treated as auto when allowAuto is set.
func ParseMethod(tag string, allowAuto bool) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "els":
		return MethodELS, nil
	case "acrostic":
		return MethodAcrostic, nil
	case "punctuation":
		return MethodPunctuation, nil
	case "null-cipher", "null", "nullcipher":
		return MethodNullCipher, nil
	case "auto", "":
		if allowAuto {
			return MethodAuto, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMethod, tag)
}

// DisplayName is the human readable name of the method.
func (m Method) DisplayName() string {
	switch m {
	case MethodELS:
		return "Equidistant Letter Sequence (ELS)"
	case MethodAcrostic:
		return "Acrostic (First Letters)"
	case MethodPunctuation:
		return "Punctuation Pattern"
	case MethodNullCipher:
		return "Null Cipher (Word Method)"
	case MethodAuto:
		return "Automatic Detection"
	}
	return string(m)
}

// Level scales how far apart ELS letters are spread.
type Level string

const (
	LevelLight  Level = "light"
	LevelMedium Level = "medium"
	LevelHeavy  Level = "heavy"
)

// ParseLevel maps a request tag onto a Level, defaulting to medium.
func ParseLevel(tag string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "", "medium":
		return LevelMedium, nil
	case "light":
		return LevelLight, nil
	case "heavy":
		return LevelHeavy, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLevel, tag)
}

func (l Level) multiplier() float64 {
	switch l {
	case LevelLight:
		return 1
	case LevelHeavy:
		return 2.5
	}
	return 1.5
}
