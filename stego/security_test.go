// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityScore(t *testing.T) {
	tests := []struct {
		name         string
		msg, carrier int
		method       Method
		want         int
	}{
		{"tiny ratio els", 1, 200, MethodELS, 100},
		{"ratio at 0.1", 10, 100, MethodAcrostic, 45},
		{"ratio at 0.05", 5, 100, MethodPunctuation, 75},
		{"ratio below 0.05", 4, 100, MethodNullCipher, 80},
		{"empty carrier", 1, 0, MethodNullCipher, 50},
		{"unknown method gets no bonus", 1, 1000, Method("x"), 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SecurityScore(tt.msg, tt.carrier, tt.method))
		})
	}
}

func TestSecurityScoreMonotonic(t *testing.T) {
	for _, method := range Methods {
		prev := 101
		for carrier := 2000; carrier >= 10; carrier -= 10 {
			s := SecurityScore(10, carrier, method)
			assert.LessOrEqual(t, s, prev, "%s carrier %d", method, carrier)
			prev = s
		}
	}
}

func TestAssessMonotonic(t *testing.T) {
	const message = "attack at dawn"
	for _, method := range Methods {
		prev := 101
		for k := 200; k >= 1; k-- {
			carrier := strings.Repeat("Calm seas today. ", k)
			m := Assess(method, message, carrier, nil)
			assert.LessOrEqual(t, m.StatisticalSecurity, prev, "%s repeats %d", method, k)
			assert.GreaterOrEqual(t, m.StatisticalSecurity, 0)
			prev = m.StatisticalSecurity
		}
	}
}

func TestEncodeScoresELSAgainstLetters(t *testing.T) {
	// 800 letters in 1000 runes: 9/1000 is under 0.01, 9/800 is not.
	carrier := strings.Repeat("abcd ", 200)

	res, err := Encode(MethodELS, "attacknow", carrier, Params{})
	require.NoError(t, err)
	assert.Equal(t, 90, res.SecurityScore)

	res, err = Encode(MethodNullCipher, "attacknow", carrier, Params{})
	require.NoError(t, err)
	assert.Equal(t, SecurityScore(9, 1000, MethodNullCipher), res.SecurityScore)
}

func TestAssessRiskBands(t *testing.T) {
	tests := []struct {
		carrierLen int
		risk       Risk
		score      int
	}{
		{1000, RiskLow, 85},
		{200, RiskMedium, 65},
		{100, RiskHigh, 45},
		{50, RiskCritical, 25},
	}
	for _, tt := range tests {
		m := Assess(Method("none"), "tenletters", strings.Repeat("x", tt.carrierLen), nil)
		assert.Equal(t, tt.risk, m.DetectionRisk, "carrier %d", tt.carrierLen)
		assert.Equal(t, tt.score, m.StatisticalSecurity, "carrier %d", tt.carrierLen)
	}
}

func TestAssessAcrostic(t *testing.T) {
	m := Assess(MethodAcrostic, "hi", strings.Repeat("a", 2000), nil)
	assert.Equal(t, RiskMedium, m.DetectionRisk)
	assert.Equal(t, 70, m.StatisticalSecurity)
	assert.Len(t, m.Recommendations, 2)
}

func TestAssessELSShortSkip(t *testing.T) {
	res, err := Encode(MethodELS, "ab", "abcd", Params{Level: LevelLight})
	require.NoError(t, err)
	require.Equal(t, 2, res.Instructions.SkipDistance)

	m := Assess(MethodELS, "ab", "abcd", res.Positions)
	assert.Equal(t, RiskCritical, m.DetectionRisk)
	assert.Equal(t, 20, m.StatisticalSecurity)
	assert.Contains(t, m.Recommendations, "Skip distance is very low - easily detectable")
	assert.Contains(t, m.Recommendations, "Consider using irregular skip patterns for advanced security")
}

func TestAssessPunctuation(t *testing.T) {
	m := Assess(MethodPunctuation, "hi", "No marks here", nil)
	assert.Contains(t, m.Recommendations, "Insufficient punctuation marks for complete encoding")
	assert.Contains(t, m.Recommendations, "Punctuation patterns can be detected by frequency analysis")
}

func TestAssessNeverEmptyRecommendations(t *testing.T) {
	m := Assess(MethodELS, "hi", strings.Repeat("abcdefghij", 200), nil)
	assert.NotNil(t, m.Recommendations)
	assert.Equal(t, RiskLow, m.DetectionRisk)
	assert.Equal(t, 85, m.StatisticalSecurity)
}

func TestLower(t *testing.T) {
	assert.Equal(t, 60, lower(85, 25, 20))
	assert.Equal(t, 20, lower(25, 20, 20))
	assert.Equal(t, 25, lower(25, 10, 40), "never raised to the floor")
}
