// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import (
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"
)

type (
	encodeFunc  func(message, carrier string, p Params) (*EncodeResult, error)
	decodeFunc  func(text string, in Instructions) (string, error)
	analyzeFunc func(text string, opts AnalyzeOptions) []Candidate
)

type strategy struct {
	encode  encodeFunc
	decode  decodeFunc
	analyze analyzeFunc
}

var strategies = map[Method]strategy{
	MethodELS:         {encodeELS, decodeELS, analyzeELS},
	MethodAcrostic:    {encodeAcrostic, decodeAcrostic, analyzeAcrostic},
	MethodPunctuation: {encodePunctuation, decodePunctuation, analyzePunctuation},
	MethodNullCipher:  {encodeNullCipher, decodeNullCipher, analyzeNullCipher},
}

// Encode hides message in carrier using method.
func Encode(method Method, message, carrier string, p Params) (*EncodeResult, error) {
	s, ok := strategies[method]
	if !ok {
		return nil, &EncodeError{Method: method, Kind: ErrInvalidMethod}
	}
	level, err := ParseLevel(string(p.Level))
	if err != nil {
		return nil, &EncodeError{Method: method, Kind: ErrInvalidLevel, Detail: string(p.Level)}
	}
	p.Level = level

	res, err := s.encode(message, carrier, p)
	if err != nil {
		return nil, err
	}
	res.Method = method
	res.MethodName = method.DisplayName()
	carrierLen := utf8.RuneCountInString(carrier)
	if method == MethodELS {
		// ELS only ever uses the letters
		carrierLen = countLetters(carrier)
	}
	res.SecurityScore = SecurityScore(payloadLength(method, message), carrierLen, method)
	return res, nil
}

// payloadLength is the number of characters method actually hides.
func payloadLength(method Method, message string) int {
	if method == MethodPunctuation {
		return len(message)
	}
	return len(CleanMessage(message))
}

// Decode re-extracts a message from text using the instructions returned by
// Encode. ELS, acrostic and null-cipher messages come back as lowercase letters.
func Decode(text string, in Instructions) (string, error) {
	s, ok := strategies[in.Method]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidMethod, in.Method)
	}
	return s.decode(text, in)
}

// Analysis is the outcome of a blind decode.
type Analysis struct {
	Candidates []Candidate `json:"results"`
	Detection  *Detection  `json:"detection,omitempty"`
}

// Analyze searches text for hidden messages. With MethodAuto the method is
// detected first; when detection is unclear or the detected method finds
// nothing, every analyzer runs and the candidates are merged.
func Analyze(text string, method Method, opts AnalyzeOptions) (*Analysis, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	if method != MethodAuto {
		s, ok := strategies[method]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
		}
		return &Analysis{Candidates: rank(s.analyze(text, opts), limit)}, nil
	}

	det := Detect(text)
	var candidates []Candidate
	if det.Method != "" {
		candidates = strategies[det.Method].analyze(text, opts)
	}
	if len(candidates) == 0 {
		candidates = analyzeAll(text, opts)
	}
	return &Analysis{Candidates: rank(candidates, limit), Detection: &det}, nil
}

// analyzeAll runs every analyzer concurrently and merges the candidates in
// Methods order.
func analyzeAll(text string, opts AnalyzeOptions) []Candidate {
	results := make([][]Candidate, len(Methods))
	var wg sync.WaitGroup
	for i, m := range Methods {
		wg.Add(1)
		go func(i int, analyze analyzeFunc) {
			defer wg.Done()
			results[i] = analyze(text, opts)
		}(i, strategies[m].analyze)
	}
	wg.Wait()

	var merged []Candidate
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

// rank sorts candidates by descending confidence, keeping the original order
// among equals, and truncates to limit when limit is positive.
func rank(candidates []Candidate, limit int) []Candidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
