// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Risk is an advisory classification of how noticeable a hidden message is.
type Risk string

const (
	RiskLow      Risk = "Low"
	RiskMedium   Risk = "Medium"
	RiskHigh     Risk = "High"
	RiskCritical Risk = "Critical"
)

// SecurityMetrics is the advisory report produced by Assess.
type SecurityMetrics struct {
	DetectionRisk       Risk     `json:"detection_risk"`
	StatisticalSecurity int      `json:"statistical_security"`
	Recommendations     []string `json:"recommendations"`
}

var methodBonus = map[Method]int{
	MethodELS:         20,
	MethodPunctuation: 15,
	MethodNullCipher:  10,
	MethodAcrostic:    5,
}

// SecurityScore estimates 0-100 how plausible an encoding looks given the
// message and carrier lengths. It is a heuristic, not a guarantee.
func SecurityScore(messageLen, carrierLen int, method Method) int {
	score := 50
	switch ratio := lengthRatio(messageLen, carrierLen); {
	case ratio < 0.01:
		score += 30
	case ratio < 0.05:
		score += 20
	case ratio < 0.1:
		score += 10
	default:
		score -= 10
	}
	score += methodBonus[method]
	return clampScore(score)
}

func lengthRatio(messageLen, carrierLen int) float64 {
	if carrierLen <= 0 {
		return math.Inf(1)
	}
	return float64(messageLen) / float64(carrierLen)
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// lower reduces s by by, but not below floor. It never raises s.
func lower(s, by, floor int) int {
	n := s - by
	if n < floor {
		n = floor
	}
	if n > s {
		return s
	}
	return n
}

// Assess rates an encoding after the fact. positions are the ones returned by
// Encode and only matter for ELS.
func Assess(method Method, message, carrier string, positions []Position) SecurityMetrics {
	m := SecurityMetrics{Recommendations: []string{}}
	msgLen := utf8.RuneCountInString(message)
	carrierLen := utf8.RuneCountInString(carrier)

	switch ratio := lengthRatio(msgLen, carrierLen); {
	case ratio > 0.15:
		m.DetectionRisk, m.StatisticalSecurity = RiskCritical, 25
		m.recommend("Message is too long relative to carrier text - very high detection risk")
	case ratio > 0.08:
		m.DetectionRisk, m.StatisticalSecurity = RiskHigh, 45
		m.recommend("Consider using longer carrier text for better security")
	case ratio > 0.04:
		m.DetectionRisk, m.StatisticalSecurity = RiskMedium, 65
		m.recommend("Reasonable security, but longer carrier text would be safer")
	default:
		m.DetectionRisk, m.StatisticalSecurity = RiskLow, 85
	}

	switch method {
	case MethodELS:
		m.assessELS(message, carrier, positions)
	case MethodAcrostic:
		if m.DetectionRisk == RiskLow {
			m.DetectionRisk = RiskMedium
		}
		m.StatisticalSecurity = lower(m.StatisticalSecurity, 15, 25)
		m.recommend("Acrostic method is easily detectable by pattern analysis")
		m.recommend("Best used for short messages or in combination with other methods")
	case MethodPunctuation:
		marks := strings.Count(carrier, ".") + strings.Count(carrier, "!") + strings.Count(carrier, "?")
		bits := len(message) * bitsPerByte
		if marks < bits {
			m.recommend("Insufficient punctuation marks for complete encoding")
			m.StatisticalSecurity = lower(m.StatisticalSecurity, 25, 20)
		} else if float64(marks) < float64(bits)*1.5 {
			m.recommend("Limited punctuation - consider adding more sentences")
			m.StatisticalSecurity = lower(m.StatisticalSecurity, 10, 40)
		}
		m.recommend("Punctuation patterns can be detected by frequency analysis")
	case MethodNullCipher:
		if len(strings.Fields(carrier)) < msgLen*2 {
			m.recommend("Limited word count - message may be too dense")
			m.StatisticalSecurity = lower(m.StatisticalSecurity, 15, 30)
		}
		m.recommend("Null cipher is moderately secure but can be detected by first-letter analysis")
	}

	if carrierLen < 1000 {
		m.recommend("Short carrier text reduces security - use longer documents when possible")
	}
	if msgLen > 100 {
		m.recommend("Long messages are harder to hide securely - consider splitting into multiple carriers")
	}
	if len(m.Recommendations) > 5 {
		m.StatisticalSecurity = lower(m.StatisticalSecurity, 10, 15)
	}
	return m
}

func (m *SecurityMetrics) assessELS(message, carrier string, positions []Position) {
	if len(positions) == 0 {
		return
	}
	n := len(CleanMessage(message))
	if n == 0 {
		return
	}
	base := countLetters(carrier) / n

	avg := base
	if len(positions) > 1 {
		span := positions[len(positions)-1].Unit - positions[0].Unit
		avg = int(math.Round(float64(span) / float64(len(positions)-1)))
	}

	if avg < 5 {
		m.recommend("Skip distance is very low - easily detectable")
		m.StatisticalSecurity = lower(m.StatisticalSecurity, 20, 20)
	} else if avg < 10 {
		m.recommend("Skip distance could be higher for better security")
		m.StatisticalSecurity = lower(m.StatisticalSecurity, 10, 30)
	}
	if avg == base {
		m.recommend("Consider using irregular skip patterns for advanced security")
	}
}

func (m *SecurityMetrics) recommend(s string) {
	m.Recommendations = append(m.Recommendations, s)
}
