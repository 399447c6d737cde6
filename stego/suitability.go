// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import (
	"fmt"
	"math"
	"strings"
)

// elsSafeFactor is the letters-per-message-letter ratio CheckCarrier
// considers comfortable for ELS, well above the encoder's hard minimum.
const elsSafeFactor = 5

// Suitability is the verdict of CheckCarrier.
type Suitability struct {
	Suitable        bool     `json:"suitable"`
	Score           int      `json:"score"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// CheckCarrier reports whether carrier comfortably fits message under method.
func CheckCarrier(method Method, message, carrier string) (Suitability, error) {
	s := Suitability{Suitable: true, Warnings: []string{}, Recommendations: []string{}}
	n := len(CleanMessage(message))
	if n == 0 && method != MethodPunctuation {
		return s, ErrEmptyMessage
	}

	var score float64
	switch method {
	case MethodELS:
		have, need := countLetters(carrier), n*elsSafeFactor
		if have < need {
			s.Suitable = false
			s.Warnings = append(s.Warnings, fmt.Sprintf("Text has %d letters but needs %d for secure ELS encoding", have, need))
			score = float64(have) / float64(need) * 100
		} else {
			score = math.Min(100, float64(have)/float64(need)*100)
			if have > need*2 {
				score = 95
				s.Recommendations = append(s.Recommendations, "Excellent letter density for ELS encoding")
			}
		}

	case MethodAcrostic:
		lines := carrierLines(carrier)
		if len(lines) < n {
			s.Suitable = false
			s.Warnings = append(s.Warnings, fmt.Sprintf("Text has %d lines but needs %d for acrostic method", len(lines), n))
			score = float64(len(lines)) / float64(n) * 100
		} else {
			modifiable := 0
			for _, line := range lines[:n] {
				if countLetters(line) > 0 {
					modifiable++
				}
			}
			score = float64(modifiable) / float64(n) * 100
			if modifiable == n {
				s.Recommendations = append(s.Recommendations, "Perfect acrostic structure")
			}
		}

	case MethodPunctuation:
		if message == "" {
			return s, ErrEmptyMessage
		}
		marks := len(readMarks(carrier, 0))
		bits := len(message) * bitsPerByte
		if float64(marks) < float64(bits)/2 {
			s.Warnings = append(s.Warnings, fmt.Sprintf("Text has %d punctuation marks but may need up to %d for binary encoding", marks, bits))
			score = float64(marks) / (float64(bits) / 2) * 100
		} else {
			score = math.Min(100, float64(marks)/float64(bits)*100)
			if marks >= bits {
				s.Recommendations = append(s.Recommendations, "Excellent punctuation density for binary encoding")
			}
		}

	case MethodNullCipher:
		words := strings.Fields(carrier)
		if len(words) < n {
			s.Suitable = false
			s.Warnings = append(s.Warnings, fmt.Sprintf("Text has %d words but needs %d for null cipher", len(words), n))
			score = float64(len(words)) / float64(n) * 100
		} else {
			quality := 0
			for _, w := range words[:n] {
				if len(w) > 2 && countLetters(w) > 0 {
					quality++
				}
			}
			score = float64(quality) / float64(n) * 100
			if score > 90 {
				s.Recommendations = append(s.Recommendations, "High-quality words suitable for null cipher")
			}
		}

	default:
		return s, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}

	s.Score = int(math.Round(score))
	return s, nil
}
