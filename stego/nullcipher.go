// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	nullMinWords  = 3
	nullMaxWords  = 200
	nullWeight    = 0.7
	nullThreshold = 15
)

// wordSpans returns the [start, end) rune ranges of the whitespace-delimited
// words in rs, matching strings.Fields.
func wordSpans(rs []rune) [][2]int {
	var spans [][2]int
	start := -1
	for i, r := range rs {
		if unicode.IsSpace(r) {
			if start >= 0 {
				spans = append(spans, [2]int{start, i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, [2]int{start, len(rs)})
	}
	return spans
}

func encodeNullCipher(message, carrier string, p Params) (*EncodeResult, error) {
	clean := []rune(CleanMessage(message))
	n := len(clean)
	if n == 0 {
		return nil, &EncodeError{Method: MethodNullCipher, Kind: ErrEmptyMessage}
	}

	pools := p.fillers()
	sel := p.selector()

	rs := []rune(carrier)
	spans := wordSpans(rs)
	out := make([]rune, 0, len(rs)+n)
	positions := make([]Position, 0, n)

	// mark rewrites the first letter of word to carry clean[w].
	mark := func(word []rune, w int) []rune {
		target := clean[w]
		idx := firstLetter(word)
		if idx < 0 {
			replacement := []rune(string(target) + pools.NoLetterSuffix)
			positions = append(positions, Position{
				Offset:   len(out),
				Unit:     w,
				Original: string(word),
				Encoded:  string(replacement),
			})
			return replacement
		}
		original := word[idx]
		word[idx] = withCaseOf(target, original)
		positions = append(positions, Position{
			Offset:   len(out) + idx,
			Unit:     w,
			Original: string(original),
			Encoded:  string(word[idx]),
		})
		return word
	}

	cursor := 0
	for w, span := range spans {
		out = append(out, rs[cursor:span[0]]...)
		word := append([]rune(nil), rs[span[0]:span[1]]...)
		if w < n {
			word = mark(word, w)
		}
		out = append(out, word...)
		cursor = span[1]
	}
	out = append(out, rs[cursor:]...)

	added := 0
	for w := len(spans); w < n; w++ {
		if len(out) > 0 && !unicode.IsSpace(out[len(out)-1]) {
			out = append(out, ' ')
		}
		filler := []rune(pools.Words[sel.Pick(added, len(pools.Words))])
		out = append(out, mark(filler, w)...)
		added++
	}

	return &EncodeResult{
		EncodedText: string(out),
		Parameters: map[string]int{
			ParamWordsModified: n,
			ParamWordsAdded:    added,
			ParamTotalWords:    len(spans) + added,
			ParamMessageLength: n,
		},
		Positions: positions,
		Instructions: Instructions{
			Method:        MethodNullCipher,
			NumberOfWords: n,
		},
	}, nil
}

func decodeNullCipher(text string, in Instructions) (string, error) {
	if in.NumberOfWords < 1 {
		return "", fmt.Errorf("%w: number_of_words %d", ErrInvalidInstructions, in.NumberOfWords)
	}
	return string(firstLettersOf(strings.Fields(text), in.NumberOfWords)), nil
}

func analyzeNullCipher(text string, _ AnalyzeOptions) []Candidate {
	words := strings.Fields(text)
	if len(words) < nullMinWords {
		return nil
	}
	seq := firstLettersOf(words, nullMaxWords)
	return firstLetterCandidates(seq, MethodNullCipher, nullWeight, nullThreshold,
		func(used int) string {
			return fmt.Sprintf("Words analyzed: %d, Message length: %d", len(words), used)
		}, ParamWordsModified)
}
