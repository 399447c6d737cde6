// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

import (
	"errors"
	"fmt"
)

// Error kinds. Encoders return them wrapped in *EncodeError.
var (
	ErrEmptyMessage        = errors.New("message contains no letters")
	ErrInsufficientCarrier = errors.New("carrier text too short")
	ErrSkipTooSmall        = errors.New("skip distance below 2")
	ErrEncodingIncomplete  = errors.New("carrier exhausted before message was placed")
	ErrInvalidMethod       = errors.New("invalid method")
	ErrInvalidLevel        = errors.New("invalid security level")
	ErrInvalidInstructions = errors.New("invalid decode instructions")
)

// EncodeError describes why an encode call failed.
type EncodeError struct {
	Method Method
	Kind   error
	Placed int // letters placed before failing (EncodingIncomplete)
	Needed int
	Detail string
}

func (e *EncodeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %v", e.Method, e.Kind)
	if e.Kind == ErrEncodingIncomplete {
		base += fmt.Sprintf(" (placed %d/%d)", e.Placed, e.Needed)
	}
	if e.Detail != "" {
		base += ": " + e.Detail
	}
	return base
}

func (e *EncodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

// KindName returns the snake_case name of err's kind, or "" when err is not
// one of the package's kinds.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrEmptyMessage):
		return "empty_message"
	case errors.Is(err, ErrInsufficientCarrier):
		return "insufficient_carrier"
	case errors.Is(err, ErrSkipTooSmall):
		return "skip_too_small"
	case errors.Is(err, ErrEncodingIncomplete):
		return "encoding_incomplete"
	case errors.Is(err, ErrInvalidMethod):
		return "invalid_method"
	case errors.Is(err, ErrInvalidLevel):
		return "invalid_level"
	case errors.Is(err, ErrInvalidInstructions):
		return "invalid_instructions"
	}
	return ""
}
