// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the codevault API server.

codevault hides short messages inside ordinary text and finds them again. It
supports four methods: equidistant letter sequences (ELS), acrostics,
punctuation patterns and null ciphers. Blind decoding ranks candidate
messages with a heuristic English confidence score.

# Starting the Server

Every setting has a default, so the server starts without configuration:

	go run .

Or with flags:

	go run . -p 8080 -max-results 50 -fillers ./fillers.toml

# Configuration

Flags win over environment variables, which win over defaults. A .env file
is read first when present and never overrides the real environment.

  - PORT (-p): Server port (default: 3001)
  - MAX_MESSAGE_LENGTH (-max-message): default 1000
  - MAX_CARRIER_LENGTH (-max-carrier): default 100000
  - MAX_RESULTS (-max-results): blind decode candidates, default 20
  - ANALYSIS_CACHE_SIZE (-cache-size): default 256, 0 disables
  - RATE_LIMIT / RATE_BURST: per client, default 10/s burst 20, 0 disables
  - FILLER_FILE (-fillers): TOML filler pools
  - IP_HASH_SALT (-ip-salt): random per process when unset
  - ENV_FILE (-env-file): default .env

# Architecture

  - stego: the four methods, detector, security metrics, text profile
  - confidence: English plausibility scoring for blind decode
  - handlers: HTTP request handlers (encode, decode, info)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, rate limiting, JSON helpers
  - metrics: Prometheus collectors
  - models: Request/response types and validation
  - clientid: Salted client hashing
  - cliparse: Configuration parsing

The stegctl command in cmd/stegctl runs the same encoders offline.
*/
package main
