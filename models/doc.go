// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - EncodeRequest: message, carrier_text, method, security_level
  - DecodeRequest: text, method, instructions, parameters
  - TextRequest: text (detect and analyze)
  - CarrierCheckRequest: message, carrier_text, method

Every request type has a Validate method. Validation collects all problems
with go-multierror instead of stopping at the first one:

	if err := req.Validate(limits); err != nil {
		details := models.Details(err) // one string per problem
	}

# Response Types

Types for JSON responses:

  - EncodeResponse: result, security, timestamp
  - DecodeResponse: message recovered with instructions
  - BlindDecodeResponse: ranked results, total_found, detection
  - DetectResponse, AnalyzeResponse, CarrierCheckResponse
  - MethodsResponse, StatusResponse
  - ErrorResponse: error, message, error_kind, details

Encode results, candidates, detections and profiles are the stego package's
own types, serialised as-is.
*/
package models
