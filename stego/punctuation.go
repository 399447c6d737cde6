// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import (
	"fmt"
	"math"
	"unicode"

	"github.com/danielhkuo/codevault/confidence"
)

const (
	bitsPerByte           = 8
	punctuationMinMarks   = 8
	punctuationMinDecoded = 2
	punctuationWeight     = 0.8
	punctuationMaxScore   = 85
	firstPrintable        = 32
	lastPrintable         = 126
)

func bitSymbol(bit byte) rune {
	if bit == 1 {
		return '!'
	}
	return '.'
}

// toBits expands data into bits, most significant bit first.
func toBits(data []byte) []byte {
	bits := make([]byte, 0, len(data)*bitsPerByte)
	for _, b := range data {
		for shift := bitsPerByte - 1; shift >= 0; shift-- {
			bits = append(bits, (b>>uint(shift))&1)
		}
	}
	return bits
}

func encodePunctuation(message, carrier string, _ Params) (*EncodeResult, error) {
	if message == "" {
		return nil, &EncodeError{Method: MethodPunctuation, Kind: ErrEmptyMessage}
	}
	payload := []byte(message)
	bits := toBits(payload)

	rs := []rune(carrier)
	lastMark := -1
	for i, r := range rs {
		if isMark(r) {
			lastMark = i
		}
	}

	out := make([]rune, 0, len(rs)+len(bits)+len(bits)/bitsPerByte+1)
	positions := make([]Position, 0, len(bits)+bitsPerByte)
	bi, terminator, modified := 0, 0, 0

	emit := func(original string) {
		sym := bitSymbol(bits[bi])
		positions = append(positions, Position{
			Offset:   len(out),
			Unit:     bi,
			Original: original,
			Encoded:  string(sym),
		})
		if original != string(sym) {
			modified++
		}
		out = append(out, sym)
		bi++
		if bi == len(bits) {
			terminator = bitsPerByte
		}
	}

	for i, r := range rs {
		switch {
		case isMark(r) && bi < len(bits):
			emit(string(r))
		case isMark(r) && terminator > 0:
			// Zero the next byte so trailing carrier marks read as a terminator.
			positions = append(positions, Position{
				Offset:   len(out),
				Unit:     len(bits) + bitsPerByte - terminator,
				Original: string(r),
				Encoded:  ".",
			})
			if r != '.' {
				modified++
			}
			out = append(out, '.')
			terminator--
		case r == '?' && i > lastMark && bi < len(bits):
			emit("?")
		case r == '\n' && i > lastMark && bi < len(bits) && i > 0 && isAlnum(rs[i-1]):
			emit("")
			out = append(out, r)
		default:
			out = append(out, r)
		}
	}

	appended := 0
	if bi < len(bits) {
		if len(out) > 0 && !unicode.IsSpace(out[len(out)-1]) {
			out = append(out, ' ')
		}
		for first := true; bi < len(bits); first = false {
			if !first && bi%bitsPerByte == 0 {
				out = append(out, ' ')
			}
			emit("")
			appended++
		}
	}

	return &EncodeResult{
		EncodedText: string(out),
		Parameters: map[string]int{
			ParamBinaryLength:  len(bits),
			ParamModifications: modified,
			ParamMarksAppended: appended,
			ParamMessageLength: len(payload),
		},
		Positions: positions,
		Instructions: Instructions{
			Method:        MethodPunctuation,
			BinaryLength:  len(bits),
			MessageLength: len(payload),
		},
	}, nil
}

// readMarks returns one bit per '.' or '!' in text, up to limit bits when
// limit is positive.
func readMarks(text string, limit int) []byte {
	var bits []byte
	for _, r := range text {
		if limit > 0 && len(bits) == limit {
			break
		}
		switch r {
		case '.':
			bits = append(bits, 0)
		case '!':
			bits = append(bits, 1)
		}
	}
	return bits
}

// decodeBits groups bits into bytes and stops at the first byte that is zero
// or not printable ASCII. An incomplete trailing byte is ignored.
func decodeBits(bits []byte) string {
	out := make([]byte, 0, len(bits)/bitsPerByte)
	for i := 0; i+bitsPerByte <= len(bits); i += bitsPerByte {
		var v byte
		for _, bit := range bits[i : i+bitsPerByte] {
			v = v<<1 | bit
		}
		if v < firstPrintable || v > lastPrintable {
			break
		}
		out = append(out, v)
	}
	return string(out)
}

func decodePunctuation(text string, in Instructions) (string, error) {
	if in.BinaryLength < 0 {
		return "", fmt.Errorf("%w: binary_length %d", ErrInvalidInstructions, in.BinaryLength)
	}
	return decodeBits(readMarks(text, in.BinaryLength)), nil
}

func analyzePunctuation(text string, _ AnalyzeOptions) []Candidate {
	bits := readMarks(text, 0)
	if len(bits) < punctuationMinMarks {
		return nil
	}
	decoded := decodeBits(bits)
	if len(decoded) < punctuationMinDecoded {
		return nil
	}
	score := math.Min(confidence.Score(decoded)*punctuationWeight, punctuationMaxScore)
	return []Candidate{{
		Message:    decoded,
		Method:     MethodPunctuation,
		Confidence: score,
		Details:    fmt.Sprintf("Binary: %d bits, Decoded: %d chars", len(bits), len(decoded)),
		Parameters: map[string]int{
			ParamBinaryLength:  len(decoded) * bitsPerByte,
			ParamMessageLength: len(decoded),
		},
	}}
}
