// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stego

// MethodInfo describes a method for clients choosing one.
type MethodInfo struct {
	Method           Method `json:"method"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	MinCarrierLength int    `json:"min_carrier_length"`
	MaxMessageLength int    `json:"max_message_length"`
	SecurityLevel    string `json:"security_level"`
}

// Catalog lists the concrete methods.
func Catalog() []MethodInfo {
	return []MethodInfo{
		{
			Method:           MethodELS,
			Name:             MethodELS.DisplayName(),
			Description:      "Hides messages by placing letters at regular intervals",
			MinCarrierLength: 100,
			MaxMessageLength: 500,
			SecurityLevel:    "High",
		},
		{
			Method:           MethodAcrostic,
			Name:             MethodAcrostic.DisplayName(),
			Description:      "Uses first letters of lines to spell message",
			MinCarrierLength: 50,
			MaxMessageLength: 100,
			SecurityLevel:    "Medium",
		},
		{
			Method:           MethodPunctuation,
			Name:             MethodPunctuation.DisplayName(),
			Description:      "Encodes messages in punctuation marks",
			MinCarrierLength: 200,
			MaxMessageLength: 100,
			SecurityLevel:    "Low",
		},
		{
			Method:           MethodNullCipher,
			Name:             MethodNullCipher.DisplayName(),
			Description:      "Hides messages in first letters of words",
			MinCarrierLength: 100,
			MaxMessageLength: 200,
			SecurityLevel:    "Medium",
		},
	}
}
