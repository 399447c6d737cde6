// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"

	"github.com/danielhkuo/codevault/stego"
)

// Validate reports every problem with the request at once.
func (r EncodeRequest) Validate(l Limits) error {
	var result *multierror.Error
	result = multierror.Append(result, checkText("message", r.Message, l.MaxMessageLength)...)
	result = multierror.Append(result, checkText("carrier_text", r.CarrierText, l.MaxCarrierLength)...)
	if r.Method == "" {
		result = multierror.Append(result, fmt.Errorf("method is required"))
	} else if _, err := stego.ParseMethod(r.Method, false); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := stego.ParseLevel(r.SecurityLevel); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// Validate reports every problem with the request at once.
func (r DecodeRequest) Validate(l Limits) error {
	var result *multierror.Error
	result = multierror.Append(result, checkText("text", r.Text, l.MaxCarrierLength)...)

	if r.Instructions != nil {
		m := r.Instructions.Method
		if m == "" {
			m = stego.Method(r.Method)
		}
		if _, err := stego.ParseMethod(string(m), false); err != nil {
			result = multierror.Append(result, fmt.Errorf("instructions: %w", err))
		}
	} else if _, err := stego.ParseMethod(r.Method, true); err != nil {
		result = multierror.Append(result, err)
	}

	if p := r.Parameters; p != nil {
		if p.SkipDistance < 0 {
			result = multierror.Append(result, fmt.Errorf("skip_distance must not be negative"))
		}
		if p.StartPosition < 0 {
			result = multierror.Append(result, fmt.Errorf("start_position must not be negative"))
		}
	}
	return result.ErrorOrNil()
}

// Validate reports every problem with the request at once.
func (r TextRequest) Validate(l Limits) error {
	var result *multierror.Error
	result = multierror.Append(result, checkText("text", r.Text, l.MaxCarrierLength)...)
	return result.ErrorOrNil()
}

// Validate reports every problem with the request at once.
func (r CarrierCheckRequest) Validate(l Limits) error {
	var result *multierror.Error
	result = multierror.Append(result, checkText("message", r.Message, l.MaxMessageLength)...)
	result = multierror.Append(result, checkText("carrier_text", r.CarrierText, l.MaxCarrierLength)...)
	if _, err := stego.ParseMethod(r.Method, false); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

func checkText(field, s string, max int) []error {
	if s == "" {
		return []error{fmt.Errorf("%s is required", field)}
	}
	if n := utf8.RuneCountInString(s); max > 0 && n > max {
		return []error{fmt.Errorf("%s too long: %d characters, maximum %d", field, n, max)}
	}
	return nil
}

// Details flattens a validation error into one message per problem.
func Details(err error) []string {
	if err == nil {
		return nil
	}
	merr, ok := err.(*multierror.Error)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, len(merr.Errors))
	for i, e := range merr.Errors {
		out[i] = e.Error()
	}
	return out
}
