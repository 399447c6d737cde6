// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/danielhkuo/codevault/stego"
)

var testLimits = Limits{MaxMessageLength: 10, MaxCarrierLength: 50, MaxResults: 5}

func TestEncodeRequestValidate(t *testing.T) {
	tests := []struct {
		name        string
		req         EncodeRequest
		wantDetails int
	}{
		{"valid", EncodeRequest{Message: "hi", CarrierText: "some carrier", Method: "els"}, 0},
		{"valid with level", EncodeRequest{Message: "hi", CarrierText: "c", Method: "null", SecurityLevel: "heavy"}, 0},
		{"everything missing", EncodeRequest{}, 3},
		{"message too long", EncodeRequest{Message: strings.Repeat("a", 11), CarrierText: "c", Method: "els"}, 1},
		{"carrier too long", EncodeRequest{Message: "a", CarrierText: strings.Repeat("c", 51), Method: "els"}, 1},
		{"auto cannot encode", EncodeRequest{Message: "a", CarrierText: "c", Method: "auto"}, 1},
		{"bad method and level", EncodeRequest{Message: "a", CarrierText: "c", Method: "rot13", SecurityLevel: "max"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(testLimits)
			if got := len(Details(err)); got != tt.wantDetails {
				t.Errorf("Expected %d problems, got %d: %v", tt.wantDetails, got, Details(err))
			}
		})
	}
}

func TestEncodeRequestValidateKinds(t *testing.T) {
	err := EncodeRequest{Message: "a", CarrierText: "c", Method: "rot13"}.Validate(testLimits)
	if !errors.Is(err, stego.ErrInvalidMethod) {
		t.Errorf("Expected ErrInvalidMethod in %v", err)
	}
}

func TestDecodeRequestValidate(t *testing.T) {
	tests := []struct {
		name        string
		req         DecodeRequest
		wantDetails int
	}{
		{"blind auto", DecodeRequest{Text: "abc"}, 0},
		{"blind method", DecodeRequest{Text: "abc", Method: "acrostic"}, 0},
		{"exact", DecodeRequest{Text: "abc", Instructions: &stego.Instructions{Method: stego.MethodELS, SkipDistance: 2}}, 0},
		{"exact method from request", DecodeRequest{Text: "abc", Method: "punctuation", Instructions: &stego.Instructions{BinaryLength: 8}}, 0},
		{"exact auto", DecodeRequest{Text: "abc", Method: "auto", Instructions: &stego.Instructions{}}, 1},
		{"missing text", DecodeRequest{Method: "els"}, 1},
		{"negative parameters", DecodeRequest{Text: "abc", Parameters: &DecodeParameters{SkipDistance: -1, StartPosition: -2}}, 2},
		{"unknown method", DecodeRequest{Text: "abc", Method: "caesar"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(testLimits)
			if got := len(Details(err)); got != tt.wantDetails {
				t.Errorf("Expected %d problems, got %d: %v", tt.wantDetails, got, Details(err))
			}
		})
	}
}

func TestTextAndCarrierCheckValidate(t *testing.T) {
	if err := (TextRequest{Text: "hello"}).Validate(testLimits); err != nil {
		t.Errorf("Expected valid, got %v", err)
	}
	if err := (TextRequest{}).Validate(testLimits); err == nil {
		t.Error("Expected missing text to fail")
	}
	err := CarrierCheckRequest{Message: "hi", CarrierText: "carrier", Method: "auto"}.Validate(testLimits)
	if len(Details(err)) != 1 {
		t.Errorf("Expected one problem, got %v", Details(err))
	}
}

func TestDetails(t *testing.T) {
	if Details(nil) != nil {
		t.Error("Expected nil details for nil error")
	}
	if got := Details(errors.New("plain")); len(got) != 1 || got[0] != "plain" {
		t.Errorf("Unexpected details %v", got)
	}
}
