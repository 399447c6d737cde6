// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		method     Method
		confidence string
	}{
		{"empty", "", "", DetectionUnclear},
		{"dense punctuation", ". ! . ! . ! . ! . !", MethodPunctuation, DetectionHigh},
		{"short lines", "Apple pie\nBanana split\nCherry tart", MethodAcrostic, DetectionHigh},
		{"forty short lines", strings.Repeat("Quiet morning light\n", 40) + "The end.", MethodAcrostic, DetectionHigh},
		{"long single paragraph", strings.Repeat("lorem ipsum dolor ", 40), MethodELS, DetectionModerate},
		{"a handful of words", "plain words without any marks at all", MethodNullCipher, DetectionModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Detect(tt.text)
			assert.Equal(t, tt.method, d.Method)
			assert.Equal(t, tt.confidence, d.Confidence)
			assert.Len(t, d.Tallies, len(Methods))
		})
	}
}

func TestDetectTieBreak(t *testing.T) {
	// Acrostic and null cipher both tally 2; acrostic comes first.
	d := Detect("one two three four five six seven eight nine ten\nalpha beta gamma delta epsilon zeta eta theta iota kappa\nred orange yellow green blue indigo violet black white grey")
	assert.Equal(t, 2, d.Tallies[MethodAcrostic])
	assert.Equal(t, 2, d.Tallies[MethodNullCipher])
	assert.Equal(t, MethodAcrostic, d.Method)
}

func TestDetectStats(t *testing.T) {
	d := Detect("Hi there.\n\nHow are you?")
	assert.Equal(t, TextStats{Words: 5, Lines: 2, Letters: 16, Marks: 2}, d.Stats)
}

func TestDetectionLabel(t *testing.T) {
	assert.Equal(t, DetectionUnclear, detectionLabel(0))
	assert.Equal(t, DetectionLow, detectionLabel(1))
	assert.Equal(t, DetectionModerate, detectionLabel(2))
	assert.Equal(t, DetectionHigh, detectionLabel(3))
	assert.Equal(t, DetectionHigh, detectionLabel(4))
}
