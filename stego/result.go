// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

// Parameter keys used in EncodeResult.Parameters and Candidate.Parameters.
const (
	ParamSkipDistance  = "skip_distance"
	ParamStartPosition = "start_position"
	ParamMessageLength = "message_length"
	ParamLinesUsed     = "lines_used"
	ParamLinesAdded    = "lines_added"
	ParamBinaryLength  = "binary_length"
	ParamModifications = "modifications"
	ParamMarksAppended = "marks_appended"
	ParamWordsModified = "words_modified"
	ParamWordsAdded    = "words_added"
	ParamTotalWords    = "total_words"
)

// Position records one modification of the carrier.
type Position struct {
	// Offset is the rune index in the encoded text.
	Offset int `json:"offset"`
	// Unit is the letter, line, word or bit index the modification carries.
	Unit     int    `json:"unit"`
	Original string `json:"original,omitempty"`
	Encoded  string `json:"encoded"`
}

// Instructions hold exactly what is needed to re-extract a message.
type Instructions struct {
	Method        Method `json:"method"`
	SkipDistance  int    `json:"skip_distance,omitempty"`
	StartPosition int    `json:"start_position,omitempty"`
	MessageLength int    `json:"message_length,omitempty"`
	NumberOfLines int    `json:"number_of_lines,omitempty"`
	NumberOfWords int    `json:"number_of_words,omitempty"`
	BinaryLength  int    `json:"binary_length,omitempty"`
}

// EncodeResult is the output of a successful encode.
type EncodeResult struct {
	EncodedText   string         `json:"encoded_text"`
	Method        Method         `json:"method"`
	MethodName    string         `json:"method_name"`
	Parameters    map[string]int `json:"method_parameters"`
	Positions     []Position     `json:"positions"`
	SecurityScore int            `json:"security_score"`
	Instructions  Instructions   `json:"instructions"`
}

// Candidate is one guess at a hidden message.
type Candidate struct {
	Message    string         `json:"message"`
	Method     Method         `json:"method"`
	Confidence float64        `json:"confidence"`
	Details    string         `json:"details"`
	Parameters map[string]int `json:"parameters,omitempty"`
}

// Params tune an encode call.
type Params struct {
	Level   Level
	Fillers *FillerPools
	Select  Selector
}

func (p Params) fillers() *FillerPools {
	if p.Fillers != nil {
		return p.Fillers
	}
	return DefaultFillerPools()
}

func (p Params) selector() Selector {
	if p.Select != nil {
		return p.Select
	}
	return Cyclic{}
}

func (p Params) level() Level {
	if p.Level == "" {
		return LevelMedium
	}
	return p.Level
}

// AnalyzeOptions narrow a blind analysis.
type AnalyzeOptions struct {
	// SkipDistance and StartPosition pin the ELS search to a single stride.
	SkipDistance  int
	StartPosition int
	// Limit caps the number of candidates returned; 0 means DefaultLimit.
	Limit int
}

// DefaultLimit is the default number of candidates returned by Analyze.
const DefaultLimit = 20
