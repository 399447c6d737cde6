// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import "strings"

// Detection labels.
const (
	DetectionHigh     = "high"
	DetectionModerate = "moderate"
	DetectionLow      = "low"
	DetectionUnclear  = "unclear"
)

// TextStats are the surface counts the detector works from.
type TextStats struct {
	Words   int `json:"words"`
	Lines   int `json:"lines"`
	Letters int `json:"letters"`
	Marks   int `json:"marks"`
}

// Detection is the detector's verdict on a text.
type Detection struct {
	// Method is empty when no method scored.
	Method     Method         `json:"method"`
	Confidence string         `json:"confidence"`
	Tallies    map[Method]int `json:"tallies"`
	Stats      TextStats      `json:"stats"`
}

// Detect guesses which method most likely produced text from cheap surface
// statistics. It never fails; text with no signal yields an unclear verdict.
func Detect(text string) Detection {
	stats := TextStats{
		Words:   len(strings.Fields(text)),
		Lines:   len(carrierLines(text)),
		Letters: countLetters(text),
	}
	for _, r := range text {
		if isSentenceEnd(r) {
			stats.Marks++
		}
	}

	tallies := map[Method]int{
		MethodPunctuation: punctuationTally(stats),
		MethodAcrostic:    acrosticTally(stats),
		MethodNullCipher:  nullCipherTally(stats),
		MethodELS:         elsTally(stats),
	}

	var best Method
	bestTally := 0
	for _, m := range Methods {
		if tallies[m] > bestTally {
			best, bestTally = m, tallies[m]
		}
	}

	return Detection{
		Method:     best,
		Confidence: detectionLabel(bestTally),
		Tallies:    tallies,
		Stats:      stats,
	}
}

func punctuationTally(s TextStats) int {
	t := 0
	words := float64(s.Words)
	switch marks := float64(s.Marks); {
	case marks > 0.3*words:
		t += 3
	case marks > 0.15*words:
		t++
	}
	if s.Marks >= punctuationMinMarks {
		t++
	}
	return t
}

func acrosticTally(s TextStats) int {
	if s.Lines < acrosticMinLines || s.Lines > 50 {
		return 0
	}
	avg := float64(s.Words) / float64(s.Lines)
	t := 1
	if avg <= 12 {
		t = 2
	}
	if avg <= 8 {
		t++
	}
	return t
}

func nullCipherTally(s TextStats) int {
	if s.Words >= 5 && s.Words <= 100 {
		return 2
	}
	return 0
}

func elsTally(s TextStats) int {
	t := 0
	if s.Letters > 200 {
		t++
	}
	if s.Letters > 500 {
		t++
	}
	return t
}

func detectionLabel(tally int) string {
	switch {
	case tally >= 3:
		return DetectionHigh
	case tally == 2:
		return DetectionModerate
	case tally == 1:
		return DetectionLow
	}
	return DetectionUnclear
}
