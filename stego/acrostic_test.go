// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAcrostic(t *testing.T) {
	res, err := Encode(MethodAcrostic, "hi", "Apples are red\n\nOranges are orange\nPears are green", Params{})
	require.NoError(t, err)
	assert.Equal(t, "Hpples are red\nIranges are orange\nPears are green", res.EncodedText)
	assert.Equal(t, 2, res.Instructions.NumberOfLines)
	assert.Equal(t, 0, res.Parameters[ParamLinesAdded])
}

func TestEncodeAcrosticSplitsClauses(t *testing.T) {
	carrier := "Roses are red, and violets are blue\nSugar is sweet"
	res, err := Encode(MethodAcrostic, "abc", carrier, Params{})
	require.NoError(t, err)
	assert.Equal(t, "Aoses are red,\nBnd violets are blue\nCugar is sweet", res.EncodedText)
	assert.Equal(t, 1, res.Parameters["lines_split"])
	assert.Equal(t, 0, res.Parameters[ParamLinesAdded])
}

func TestEncodeAcrosticAppendsFillers(t *testing.T) {
	res, err := Encode(MethodAcrostic, "xyz", "one line only", Params{})
	require.NoError(t, err)

	lines := strings.Split(res.EncodedText, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "xne line only", lines[0])
	assert.Equal(t, "Yhe art of communication is the language of leadership.", lines[1])
	assert.Equal(t, "Zvery moment is a fresh beginning.", lines[2])
	assert.Equal(t, 2, res.Parameters[ParamLinesAdded])
}

func TestEncodeAcrosticPadsTwoLineCarrier(t *testing.T) {
	res, err := Encode(MethodAcrostic, "hello", "Roses are red\nViolets are blue", Params{})
	require.NoError(t, err)

	lines := strings.Split(res.EncodedText, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Hoses are red", lines[0])
	assert.Equal(t, "Eiolets are blue", lines[1])
	assert.Equal(t, 3, res.Parameters[ParamLinesAdded])
	assert.Equal(t, 5, res.Instructions.NumberOfLines)

	got, err := Decode(res.EncodedText, res.Instructions)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assertPositions(t, res)
}

func TestEncodeAcrosticCustomFillers(t *testing.T) {
	pools := &FillerPools{Lines: []string{"first filler", "second filler"}, Words: []string{"word"}}
	res, err := Encode(MethodAcrostic, "abc", "", Params{Fillers: pools, Select: Cyclic{Offset: 1}})
	require.NoError(t, err)
	assert.Equal(t, "aecond filler\nbirst filler\ncecond filler", res.EncodedText)
}

func TestEncodeAcrosticLineWithoutLetter(t *testing.T) {
	res, err := Encode(MethodAcrostic, "ok", "---\n123 go", Params{})
	require.NoError(t, err)
	assert.Equal(t, "O---\n123 ko", res.EncodedText)

	got, err := Decode(res.EncodedText, res.Instructions)
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assertPositions(t, res)
}

func TestSplitClause(t *testing.T) {
	tests := []struct {
		line       string
		head, tail string
		ok         bool
	}{
		{"We walked home; the rain kept falling", "We walked home;", "The rain kept falling", true},
		{"Cats sleep but dogs bark", "Cats sleep", "But dogs bark", true},
		{"No boundary here", "", "", false},
		{"a, bcd", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			head, tail, ok := splitClause(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.head, head)
			assert.Equal(t, tt.tail, tail)
		})
	}
}

func TestAnalyzeAcrostic(t *testing.T) {
	text := "Meet me later\nEvery day counts\nEach of us\nTake it slow"
	cands := analyzeAcrostic(text, AnalyzeOptions{})
	require.NotEmpty(t, cands)
	assert.Equal(t, "meet", cands[0].Message)
	assert.Equal(t, MethodAcrostic, cands[0].Method)
	assert.InDelta(t, 100, cands[0].Confidence, 0.001)
	assert.Equal(t, 4, cands[0].Parameters[ParamLinesUsed])
}

func TestAnalyzeAcrosticReportsPrefix(t *testing.T) {
	text := "Stop here\nTurn back\nOnly once\nPlease go\nXylophones\nQuietly\nZebras"
	cands := analyzeAcrostic(text, AnalyzeOptions{})
	require.Len(t, cands, 2)
	assert.True(t, strings.HasPrefix("stopxqz", cands[0].Message))
	assert.Less(t, len(cands[0].Message), len("stopxqz"))
	assert.Equal(t, "stopxqz", cands[1].Message)
	assert.Greater(t, cands[0].Confidence, cands[1].Confidence)
}

func TestAnalyzeAcrosticTooFewLines(t *testing.T) {
	assert.Empty(t, analyzeAcrostic("one\ntwo", AnalyzeOptions{}))
}
