// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeELS(t *testing.T) {
	tests := []struct {
		name    string
		carrier string
		level   Level
		want    string
		skip    int
	}{
		{"light", "abcdefghij", LevelLight, "xbcdeyghij", 5},
		{"medium", "abcdefghij", LevelMedium, "xbcdefgyij", 7},
		{"heavy stride is capped", "abcdefghij", LevelHeavy, "xbcdefghiy", 9},
		{"case is kept", "ABCDEFGHIJ", LevelLight, "XBCDEYGHIJ", 5},
		{"non-letters are skipped", "ab, cd. ef-gh ij", LevelLight, "xb, cd. ey-gh ij", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Encode(MethodELS, "XY", tt.carrier, Params{Level: tt.level})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.EncodedText)
			assert.Equal(t, tt.skip, res.Instructions.SkipDistance)
			assert.Equal(t, 0, res.Instructions.StartPosition)
			assert.Equal(t, 2, res.Instructions.MessageLength)
			assert.Equal(t, tt.skip, res.Parameters[ParamSkipDistance])
			require.Len(t, res.Positions, 2)
			assert.Equal(t, 0, res.Positions[0].Unit)
			assert.Equal(t, tt.skip, res.Positions[1].Unit)
		})
	}
}

func TestEncodeELSMinimumCarrier(t *testing.T) {
	// Exactly two letters per message letter leaves a stride of 2.
	res, err := Encode(MethodELS, "abc", "uvwxyz", Params{Level: LevelLight})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Instructions.SkipDistance)
	assert.Equal(t, "avbxcz", res.EncodedText)

	_, err = Encode(MethodELS, "abc", "uvwxy", Params{})
	assert.ErrorIs(t, err, ErrInsufficientCarrier)
	assert.Equal(t, "insufficient_carrier", KindName(err))
}

func TestElsSkip(t *testing.T) {
	tests := []struct {
		available, n int
		level        Level
		want         int
	}{
		{100, 10, LevelLight, 10},
		{100, 10, LevelMedium, 11}, // 15 capped at 99/9
		{100, 1, LevelHeavy, 100},
		{20, 10, LevelLight, 2},
		{1000, 4, LevelMedium, 333},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, elsSkip(tt.available, tt.n, tt.level), "%+v", tt)
	}
}

func TestElsSkipAlwaysFits(t *testing.T) {
	for n := 1; n <= 60; n++ {
		for available := 2 * n; available <= 2*n+300; available++ {
			for _, level := range []Level{LevelLight, LevelMedium, LevelHeavy} {
				skip := elsSkip(available, n, level)
				require.GreaterOrEqual(t, skip, elsMinSkip, "n %d available %d %s", n, available, level)
				require.Less(t, (n-1)*skip, available, "n %d available %d %s", n, available, level)
			}
		}
	}
}

func TestDecodeELS(t *testing.T) {
	got, err := Decode("M-a-E-b-E-c-T", Instructions{Method: MethodELS, SkipDistance: 2})
	require.NoError(t, err)
	assert.Equal(t, "meet", got)

	got, err = Decode("xmxexextx", Instructions{Method: MethodELS, SkipDistance: 2, StartPosition: 1, MessageLength: 3})
	require.NoError(t, err)
	assert.Equal(t, "mee", got)
}

func TestAnalyzeELSFindsEncodedMessage(t *testing.T) {
	res, err := Encode(MethodELS, "meet", mediumCarrier, Params{Level: LevelLight})
	require.NoError(t, err)

	a, err := Analyze(res.EncodedText, MethodELS, AnalyzeOptions{SkipDistance: res.Instructions.SkipDistance})
	require.NoError(t, err)
	assert.Contains(t, messagesOf(a.Candidates), "meet")
	assertRanked(t, a.Candidates)
	for _, c := range a.Candidates {
		assert.Equal(t, MethodELS, c.Method)
		assert.Equal(t, res.Instructions.SkipDistance, c.Parameters[ParamSkipDistance])
		assert.Greater(t, c.Confidence, float64(elsThreshold))
	}
}

func TestAnalyzeELSTooShort(t *testing.T) {
	assert.Empty(t, analyzeELS("short", AnalyzeOptions{}))
	assert.Empty(t, analyzeELS(mediumCarrier, AnalyzeOptions{SkipDistance: 3, StartPosition: -1}))
}

func TestAnalyzeELSCapsResults(t *testing.T) {
	text := strings.Repeat("the end and then the rest ", 40)
	cands := analyzeELS(text, AnalyzeOptions{})
	assert.LessOrEqual(t, len(cands), elsLimit)
	assertRanked(t, cands)
}
