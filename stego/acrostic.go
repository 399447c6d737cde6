// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/danielhkuo/codevault/confidence"
)

const (
	acrosticMinLines     = 3
	acrosticMaxLines     = 100
	acrosticMinSequence  = 3
	acrosticThreshold    = 20
	acrosticClauseLetter = 3
)

var clauseConjunctions = []string{" and ", " but ", " or ", " so ", " yet "}

func encodeAcrostic(message, carrier string, p Params) (*EncodeResult, error) {
	clean := []rune(CleanMessage(message))
	n := len(clean)
	if n == 0 {
		return nil, &EncodeError{Method: MethodAcrostic, Kind: ErrEmptyMessage}
	}

	lines, split, added := padLines(carrierLines(carrier), n, p)
	if len(lines) < n {
		return nil, &EncodeError{
			Method: MethodAcrostic,
			Kind:   ErrInsufficientCarrier,
			Needed: n,
			Detail: fmt.Sprintf("need %d lines, have %d", n, len(lines)),
		}
	}

	positions := make([]Position, 0, n)
	lineStart := 0
	for i := range lines {
		rs := []rune(lines[i])
		if i < n {
			target := clean[i]
			idx := firstLetter(rs)
			pos := Position{Unit: i}
			if idx < 0 {
				rs = append([]rune{toUpper(target)}, rs...)
				idx = 0
			} else {
				pos.Original = string(rs[idx])
				rs[idx] = withCaseOf(target, rs[idx])
			}
			pos.Offset = lineStart + idx
			pos.Encoded = string(rs[idx])
			positions = append(positions, pos)
			lines[i] = string(rs)
		}
		lineStart += len(rs) + 1
	}

	return &EncodeResult{
		EncodedText: strings.Join(lines, "\n"),
		Parameters: map[string]int{
			ParamLinesUsed:     n,
			ParamLinesAdded:    added,
			"lines_split":      split,
			ParamMessageLength: n,
		},
		Positions: positions,
		Instructions: Instructions{
			Method:        MethodAcrostic,
			NumberOfLines: n,
		},
	}, nil
}

// padLines grows lines to at least n entries, first by splitting long lines
// at clause boundaries and then by appending filler lines.
func padLines(lines []string, n int, p Params) (out []string, split, added int) {
	for len(lines) < n {
		best, bestLen := -1, -1
		var head, tail string
		for i, line := range lines {
			h, t, ok := splitClause(line)
			if !ok {
				continue
			}
			if l := utf8.RuneCountInString(line); l > bestLen {
				best, bestLen, head, tail = i, l, h, t
			}
		}
		if best < 0 {
			break
		}
		next := make([]string, 0, len(lines)+1)
		next = append(next, lines[:best]...)
		next = append(next, head, tail)
		next = append(next, lines[best+1:]...)
		lines = next
		split++
	}

	pools := p.fillers()
	sel := p.selector()
	for i := 0; len(lines) < n; i++ {
		lines = append(lines, pools.Lines[sel.Pick(i, len(pools.Lines))])
		added++
	}
	return lines, split, added
}

// splitClause cuts line at the clause boundary closest to its middle. Both
// halves must keep a few letters.
func splitClause(line string) (head, tail string, ok bool) {
	var cuts []int
	for i := 0; i < len(line); i++ {
		if line[i] == ';' || line[i] == ',' {
			cuts = append(cuts, i+1)
		}
	}
	for _, conj := range clauseConjunctions {
		for from := 0; ; {
			idx := strings.Index(line[from:], conj)
			if idx < 0 {
				break
			}
			cuts = append(cuts, from+idx)
			from += idx + 1
		}
	}

	mid := len(line) / 2
	best, bestDist := -1, len(line)+1
	for _, cut := range cuts {
		h := strings.TrimRightFunc(line[:cut], unicode.IsSpace)
		t := strings.TrimSpace(line[cut:])
		if countLetters(h) < acrosticClauseLetter || countLetters(t) < acrosticClauseLetter {
			continue
		}
		dist := cut - mid
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist || (dist == bestDist && cut < best) {
			best, bestDist = cut, dist
		}
	}
	if best < 0 {
		return "", "", false
	}

	head = strings.TrimRightFunc(line[:best], unicode.IsSpace)
	rs := []rune(strings.TrimSpace(line[best:]))
	if idx := firstLetter(rs); idx >= 0 {
		rs[idx] = toUpper(rs[idx])
	}
	return head, string(rs), true
}

func decodeAcrostic(text string, in Instructions) (string, error) {
	if in.NumberOfLines < 1 {
		return "", fmt.Errorf("%w: number_of_lines %d", ErrInvalidInstructions, in.NumberOfLines)
	}
	return string(firstLettersOf(carrierLines(text), in.NumberOfLines)), nil
}

// firstLettersOf returns the lowercased first letter of each of the first
// limit units. Units without a letter contribute nothing.
func firstLettersOf(units []string, limit int) []rune {
	if limit > len(units) {
		limit = len(units)
	}
	out := make([]rune, 0, limit)
	for _, u := range units[:limit] {
		for _, r := range u {
			if isLetter(r) {
				out = append(out, toLower(r))
				break
			}
		}
	}
	return out
}

func analyzeAcrostic(text string, _ AnalyzeOptions) []Candidate {
	lines := carrierLines(text)
	if len(lines) < acrosticMinLines {
		return nil
	}
	seq := firstLettersOf(lines, acrosticMaxLines)
	return firstLetterCandidates(seq, MethodAcrostic, 1.0, acrosticThreshold,
		func(used int) string {
			return fmt.Sprintf("Lines analyzed: %d, Message length: %d", len(lines), used)
		}, ParamLinesUsed)
}

// firstLetterCandidates scores a first-letter sequence. Besides the full
// sequence it reports the best scoring prefix when that beats the whole, since
// a short message rarely spans every line or word of a carrier.
func firstLetterCandidates(seq []rune, method Method, weight, threshold float64, details func(int) string, param string) []Candidate {
	if len(seq) < acrosticMinSequence {
		return nil
	}

	var out []Candidate
	full := confidence.Score(string(seq)) * weight
	if full > threshold {
		out = append(out, firstLetterCandidate(seq, method, full, details, param))
	}

	bestLen, bestScore := 0, full
	for l := acrosticMinSequence; l < len(seq); l++ {
		if s := confidence.Score(string(seq[:l])) * weight; s > bestScore {
			bestLen, bestScore = l, s
		}
	}
	if bestLen > 0 && bestScore > threshold {
		out = append(out, firstLetterCandidate(seq[:bestLen], method, bestScore, details, param))
	}
	return rank(out, 0)
}

func firstLetterCandidate(seq []rune, method Method, score float64, details func(int) string, param string) Candidate {
	return Candidate{
		Message:    string(seq),
		Method:     method,
		Confidence: score,
		Details:    details(len(seq)),
		Parameters: map[string]int{param: len(seq)},
	}
}
