// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the codevault API.

# Handler Types

Each handler is a struct with config and clock dependencies:

  - EncodeHandler: encoding and carrier suitability checks
  - DecodeHandler: exact decode, blind decode and method detection
  - InfoHandler: method catalogue, service status and text profiles

Handlers are created via constructor functions. A nil clock means the real
clock; tests pass a clockwork fake so response timestamps are fixed:

	encodeHandler := handlers.NewEncodeHandler(cfg, fillers, nil)

# Encoding

	POST /api/encode        → Encode (result, instructions, security metrics)
	POST /api/carrier/check → CheckCarrier

# Decoding

	POST /api/decode → Decode
	POST /api/detect → Detect

Decode is exact when the body carries the instructions returned by encode and
blind otherwise. Blind results are ranked by confidence, capped at
MAX_RESULTS and kept in an ARC cache keyed by a digest of the text and search
parameters.

# Errors

Every field problem is reported at once with status 400. Invalid methods,
levels and instructions are also 400. Encode failures such as a carrier that
is too short are 422 with an error_kind. Message text is never logged.
*/
package handlers
