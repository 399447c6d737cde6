// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/codevault/confidence"
)

const (
	elsMinCarrierFactor = 2
	elsMinSkip          = 2
	elsMaxSkip          = 30
	elsMaxStarts        = 10
	elsMinSequence      = 3
	elsMaxSequence      = 50
	elsMinLetters       = 10
	elsThreshold        = 25
	elsLimit            = 15
)

func encodeELS(message, carrier string, p Params) (*EncodeResult, error) {
	clean := []rune(CleanMessage(message))
	n := len(clean)
	if n == 0 {
		return nil, &EncodeError{Method: MethodELS, Kind: ErrEmptyMessage}
	}

	available := countLetters(carrier)
	if available < n*elsMinCarrierFactor {
		return nil, &EncodeError{
			Method: MethodELS,
			Kind:   ErrInsufficientCarrier,
			Needed: n * elsMinCarrierFactor,
			Detail: fmt.Sprintf("need at least %d letters, have %d", n*elsMinCarrierFactor, available),
		}
	}

	skip := elsSkip(available, n, p.level())
	// Never true once available >= 2n; elsSkip keeps the stride at 2 or more.
	if skip < elsMinSkip {
		return nil, &EncodeError{Method: MethodELS, Kind: ErrSkipTooSmall, Detail: fmt.Sprintf("stride %d", skip)}
	}

	text := []rune(carrier)
	positions := make([]Position, 0, n)
	letterIdx, placed := 0, 0
	for i, r := range text {
		if placed == n {
			break
		}
		if !isLetter(r) {
			continue
		}
		if letterIdx%skip == 0 {
			text[i] = withCaseOf(clean[placed], r)
			positions = append(positions, Position{
				Offset:   i,
				Unit:     letterIdx,
				Original: string(r),
				Encoded:  string(text[i]),
			})
			placed++
		}
		letterIdx++
	}

	// Never true while elsSkip caps the stride at (available-1)/(n-1).
	if placed < n {
		return nil, &EncodeError{Method: MethodELS, Kind: ErrEncodingIncomplete, Placed: placed, Needed: n}
	}

	return &EncodeResult{
		EncodedText: string(text),
		Parameters: map[string]int{
			ParamSkipDistance:  skip,
			ParamStartPosition: 0,
			ParamMessageLength: n,
		},
		Positions: positions,
		Instructions: Instructions{
			Method:        MethodELS,
			SkipDistance:  skip,
			StartPosition: 0,
			MessageLength: n,
		},
	}, nil
}

// elsSkip scales the base stride by the level and caps it at the widest
// stride that still fits n letters into available.
func elsSkip(available, n int, level Level) int {
	base := available / n
	skip := int(float64(base) * level.multiplier())
	if skip < elsMinSkip {
		skip = elsMinSkip
	}
	widest := available
	if n > 1 {
		widest = (available - 1) / (n - 1)
	}
	if skip > widest {
		skip = widest
	}
	return skip
}

func decodeELS(text string, in Instructions) (string, error) {
	if in.SkipDistance < 1 || in.StartPosition < 0 || in.MessageLength < 0 {
		return "", fmt.Errorf("%w: skip %d, start %d", ErrInvalidInstructions, in.SkipDistance, in.StartPosition)
	}
	ls := letters(text)
	var b strings.Builder
	count := 0
	for i := in.StartPosition; i < len(ls); i += in.SkipDistance {
		if in.MessageLength > 0 && count == in.MessageLength {
			break
		}
		b.WriteRune(toLower(ls[i]))
		count++
	}
	return b.String(), nil
}

type elsKey struct {
	sequence    string
	skip, start int
}

func analyzeELS(text string, opts AnalyzeOptions) []Candidate {
	ls := letters(text)
	if len(ls) < elsMinLetters || opts.StartPosition < 0 {
		return nil
	}

	var skips []int
	if opts.SkipDistance > 0 {
		skips = []int{opts.SkipDistance}
	} else {
		for s := elsMinSkip; s <= elsMaxSkip; s++ {
			skips = append(skips, s)
		}
	}

	seen := make(map[elsKey]bool)
	var out []Candidate
	for _, skip := range skips {
		for _, start := range elsStarts(skip, opts) {
			seq := make([]rune, 0, elsMaxSequence)
			for i := start; i < len(ls) && len(seq) < elsMaxSequence; i += skip {
				seq = append(seq, toLower(ls[i]))
				if len(seq) < elsMinSequence {
					continue
				}
				s := string(seq)
				score := confidence.Score(s)
				if score <= elsThreshold {
					continue
				}
				key := elsKey{s, skip, start}
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, Candidate{
					Message:    s,
					Method:     MethodELS,
					Confidence: score,
					Details:    fmt.Sprintf("Skip: %d, Start: %d, Length: %d", skip, start, len(seq)),
					Parameters: map[string]int{
						ParamSkipDistance:  skip,
						ParamStartPosition: start,
						ParamMessageLength: len(seq),
					},
				})
			}
		}
	}
	return rank(out, elsLimit)
}

func elsStarts(skip int, opts AnalyzeOptions) []int {
	if opts.SkipDistance > 0 {
		return []int{opts.StartPosition}
	}
	n := skip
	if n > elsMaxStarts {
		n = elsMaxStarts
	}
	starts := make([]int, n)
	for i := range starts {
		starts[i] = i
	}
	return starts
}
