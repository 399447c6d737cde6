// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// TextStatistics are raw counts over a candidate carrier.
type TextStatistics struct {
	Characters         int `json:"characters"`
	CharactersNoSpaces int `json:"characters_no_spaces"`
	Words              int `json:"words"`
	Sentences          int `json:"sentences"`
	Paragraphs         int `json:"paragraphs"`
	Lines              int `json:"lines"`
	Letters            int `json:"letters"`
	Punctuation        int `json:"punctuation"`
}

// Capacity estimates how many message characters each method can hide.
type Capacity struct {
	ELS         int `json:"els"`
	Acrostic    int `json:"acrostic"`
	Punctuation int `json:"punctuation"`
	NullCipher  int `json:"null_cipher"`
}

// For returns the capacity of method.
func (c Capacity) For(method Method) int {
	switch method {
	case MethodELS:
		return c.ELS
	case MethodAcrostic:
		return c.Acrostic
	case MethodPunctuation:
		return c.Punctuation
	case MethodNullCipher:
		return c.NullCipher
	}
	return 0
}

// Best returns the method with the largest capacity.
func (c Capacity) Best() Method {
	order := []Method{MethodELS, MethodAcrostic, MethodPunctuation, MethodNullCipher}
	best := order[0]
	for _, m := range order[1:] {
		if c.For(m) >= c.For(best) {
			best = m
		}
	}
	return best
}

// TextProfile describes how well a text can serve as a carrier.
type TextProfile struct {
	Statistics      TextStatistics     `json:"statistics"`
	Capacity        Capacity           `json:"capacity"`
	LetterFrequency map[string]float64 `json:"letter_frequency"`
	Recommendations []string           `json:"recommendations"`
}

// Profile gathers carrier statistics, capacity estimates and advice for text.
func Profile(text string) TextProfile {
	stats := TextStatistics{
		Characters: utf8.RuneCountInString(text),
		Words:      len(strings.Fields(text)),
		Sentences:  countSegments(strings.FieldsFunc(text, isSentenceEnd)),
		Paragraphs: countSegments(paragraphBreak.Split(text, -1)),
		Lines:      strings.Count(text, "\n") + 1,
	}
	freq := make(map[rune]int)
	for _, r := range text {
		if !unicode.IsSpace(r) {
			stats.CharactersNoSpaces++
		}
		if isLetter(r) {
			stats.Letters++
			freq[toUpper(r)]++
		}
		if strings.ContainsRune(".!?,:;", r) {
			stats.Punctuation++
		}
	}

	capacity := Capacity{
		ELS:         stats.Letters / 10,
		Acrostic:    min(stats.Lines, stats.Sentences),
		Punctuation: stats.Punctuation / bitsPerByte,
		NullCipher:  min(stats.Words, 100),
	}

	letterFreq := make(map[string]float64, len(freq))
	for r, n := range freq {
		letterFreq[string(r)] = math.Round(float64(n)/float64(stats.Letters)*1000) / 10
	}

	return TextProfile{
		Statistics:      stats,
		Capacity:        capacity,
		LetterFrequency: letterFreq,
		Recommendations: profileRecommendations(stats, capacity),
	}
}

func countSegments(parts []string) int {
	n := 0
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

func profileRecommendations(s TextStatistics, c Capacity) []string {
	var recs []string
	if s.Characters < 500 {
		recs = append(recs, "Text is quite short. Consider using longer carrier text for better security.")
	}
	if c.ELS < 10 {
		recs = append(recs, "Limited ELS capacity. Add more text for longer messages.")
	}
	if c.Punctuation < 5 {
		recs = append(recs, "Low punctuation count. Add more sentences for punctuation-based encoding.")
	}
	if s.Lines < 10 {
		recs = append(recs, "Few lines available. Break text into more lines for acrostic method.")
	}
	if s.Words < 50 {
		recs = append(recs, "Limited word count. Add more text for null cipher method.")
	}
	best := c.Best()
	recs = append(recs, fmt.Sprintf("Recommended method: %s (capacity: %s characters)", best, humanize.Comma(int64(c.For(best)))))
	return recs
}
