// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package confidence

import (
	"strings"
)

// Scoring weights
const (
	exactWordBonus     = 95
	containedByBonus   = 75
	containsWordBonus  = 65
	frequencyWeight    = 3.0
	frequencyCap       = 35.0
	vowelBandBonus     = 25
	vowelWideBonus     = 15
	sweetSpotBonus     = 15
	shortBonus         = 10
	longPenalty        = 15
	veryLongPenalty    = 30
	bigramBonus        = 8
	trigramBonus       = 12
	varietyBonus       = 10
	shapeBonus         = 5
	unusualPenalty     = 20
	capitalizedBonus   = 10
	minScoredLength    = 2
	minPartialMatchLen = 3
)

// commonWords is ordered; the first partial match wins.
var commonWords = []string{
	"THE", "AND", "FOR", "ARE", "BUT", "NOT", "YOU", "ALL", "CAN", "HER", "WAS", "ONE", "OUR",
	"HAD", "BY", "WORD", "OIL", "ITS", "NOW", "FIND", "LONG", "DOWN", "WAY", "BEEN", "CALL",
	"WHO", "DID", "GET", "COME", "MADE", "MAY", "PART", "OVER", "NEW", "SOUND", "TAKE", "ONLY",
	"LITTLE", "WORK", "KNOW", "PLACE", "YEAR", "LIVE", "BACK", "GIVE", "MOST", "VERY",
	"AFTER", "THING", "NAME", "GOOD", "SENTENCE", "MAN", "THINK", "SAY", "GREAT", "WHERE",
	"HELP", "THROUGH", "MUCH", "BEFORE", "LINE", "RIGHT", "TOO", "MEANS", "OLD", "ANY",
	"SAME", "TELL", "BOY", "FOLLOW", "CAME", "WANT", "SHOW", "ALSO", "AROUND",
	"FORM", "THREE", "SMALL", "SET", "PUT", "END", "WHY", "AGAIN", "TURN", "HERE", "OFF",
	"WENT", "NUMBER", "NO", "COULD", "PEOPLE", "MY", "THAN", "FIRST", "WATER",
	"MEET", "STOP", "WAIT", "GO", "YES", "OK", "HI", "BYE", "LOVE",
	"HATE", "LIKE", "NEED", "HAVE", "WILL", "MUST", "SHOULD", "WOULD",
	"MIGHT", "SHALL", "DO", "DOES", "DONE", "MAKE", "MAKES",
	"SEE", "SEES", "SAW", "SEEN", "LOOK", "LOOKS", "LOOKED", "COMES",
	"TIME", "HOUSE", "HAND", "EYE", "LIFE", "HEAD", "SIDE", "NIGHT", "WORLD",
	"ASK", "SEEM", "FEEL", "TRY", "LEAVE", "MOVE", "BELIEVE",
	"BRING", "HAPPEN", "WRITE", "SIT", "STAND", "LOSE", "PAY", "INCLUDE",
	"CONTINUE", "LEARN", "CHANGE", "LEAD", "UNDERSTAND", "WATCH",
	"CREATE", "SPEAK", "READ", "ALLOW", "ADD", "SPEND", "GROW", "OPEN", "WALK",
	"WIN", "OFFER", "REMEMBER", "CONSIDER", "APPEAR", "BUY", "SERVE",
	"DIE", "SEND", "EXPECT", "BUILD", "STAY", "FALL", "CUT", "REACH", "KILL", "REMAIN",
}

var dictionary = func() map[string]bool {
	m := make(map[string]bool, len(commonWords))
	for _, w := range commonWords {
		m[w] = true
	}
	return m
}()

// englishFrequency is the percentage share of each letter in English text.
var englishFrequency = map[rune]float64{
	'E': 12.7, 'T': 9.1, 'A': 8.2, 'O': 7.5, 'I': 7.0, 'N': 6.7, 'S': 6.3, 'H': 6.1,
	'R': 6.0, 'D': 4.3, 'L': 4.0, 'C': 2.8, 'U': 2.8, 'M': 2.4, 'W': 2.4, 'F': 2.2,
	'G': 2.0, 'Y': 2.0, 'P': 1.9, 'B': 1.3, 'V': 1.0, 'K': 0.8, 'J': 0.15, 'X': 0.15,
	'Q': 0.10, 'Z': 0.07,
}

var commonBigrams = map[string]bool{
	"TH": true, "HE": true, "IN": true, "ER": true, "AN": true, "RE": true, "ED": true,
	"ND": true, "ON": true, "EN": true, "AT": true, "OU": true, "IT": true, "IS": true,
	"OR": true, "TI": true, "HI": true, "ST": true, "AR": true, "NE": true, "TE": true,
	"HA": true, "AS": true, "TO": true, "LL": true, "LE": true, "VE": true, "CO": true,
}

var commonTrigrams = map[string]bool{
	"THE": true, "AND": true, "ING": true, "HER": true, "HAT": true, "HIS": true,
	"THA": true, "ERE": true, "FOR": true, "ENT": true, "ION": true, "TER": true,
	"WAS": true, "YOU": true, "ITH": true, "VER": true, "ALL": true, "WIT": true,
	"THI": true, "TIO": true,
}

var unusualPairs = []string{"QU", "XZ", "ZX", "QW", "ZQ", "XQ"}

var commonSuffixes = []string{"ING", "ED", "ER", "LY", "ION"}

// Score rates how plausible it is that sequence is meaningful English.
// The result is clamped to [0, 100].
func Score(sequence string) float64 {
	seq := []rune(strings.ToUpper(sequence))
	if len(seq) < minScoredLength {
		return 0
	}
	upper := string(seq)
	length := len(seq)

	score := 0.0

	if dictionary[upper] {
		score += exactWordBonus
	}
	score += partialMatch(upper, length)
	score += frequencyScore(seq)
	score += vowelScore(seq)

	switch {
	case length >= 4 && length <= 12:
		score += sweetSpotBonus
	case length >= 3:
		score += shortBonus
	}
	switch {
	case length > 25:
		score -= veryLongPenalty
	case length > 15:
		score -= longPenalty
	}

	for i := 0; i+2 <= length; i++ {
		if commonBigrams[string(seq[i:i+2])] {
			score += bigramBonus
		}
	}
	for i := 0; i+3 <= length; i++ {
		if commonTrigrams[string(seq[i:i+3])] {
			score += trigramBonus
		}
	}

	unique := make(map[rune]struct{}, length)
	for _, r := range seq {
		unique[r] = struct{}{}
	}
	if ratio := float64(len(unique)) / float64(length); ratio >= 0.5 && ratio <= 0.85 {
		score += varietyBonus
	}

	score += shapeScore(seq, upper)

	for _, pair := range unusualPairs {
		if strings.Contains(upper, pair) {
			score -= unusualPenalty
		}
	}

	if isCapitalized(sequence) {
		score += capitalizedBonus
	}

	return clamp(score)
}

func partialMatch(upper string, length int) float64 {
	for _, word := range commonWords {
		if length >= minPartialMatchLen && strings.Contains(word, upper) {
			return containedByBonus
		}
		if len(word) >= minPartialMatchLen && strings.Contains(upper, word) {
			return containsWordBonus
		}
	}
	return 0
}

func frequencyScore(seq []rune) float64 {
	total := 0.0
	for _, r := range seq {
		total += englishFrequency[r]
	}
	s := total / float64(len(seq)) * frequencyWeight
	if s > frequencyCap {
		return frequencyCap
	}
	return s
}

func vowelScore(seq []rune) float64 {
	vowels := 0
	for _, r := range seq {
		if isVowel(r) {
			vowels++
		}
	}
	ratio := float64(vowels) / float64(len(seq))
	switch {
	case ratio >= 0.25 && ratio <= 0.55:
		return vowelBandBonus
	case ratio >= 0.15 && ratio <= 0.65:
		return vowelWideBonus
	}
	return 0
}

func shapeScore(seq []rune, upper string) float64 {
	score := 0.0
	if isVowel(seq[0]) {
		score += shapeBonus
	}
	if isVowel(seq[len(seq)-1]) {
		score += shapeBonus
	}
	if isConsonant(seq[0]) && isVowel(seq[1]) {
		score += shapeBonus
	}
	for _, suffix := range commonSuffixes {
		if strings.HasSuffix(upper, suffix) {
			score += shapeBonus
		}
	}
	return score
}

// isCapitalized reports whether s looks like a proper noun: one capital
// followed only by lowercase letters.
func isCapitalized(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func isVowel(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

func isConsonant(r rune) bool {
	return r >= 'A' && r <= 'Z' && !isVowel(r)
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
