// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the codevault API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(cfg, fillers, nil)

A nil fillers uses the built-in pools; a nil clock uses the real clock.

# Endpoints

Health and discovery:

	GET /health      - Liveness
	GET /            - Banner
	GET /api/methods - Method catalogue
	GET /api/status  - Status, features and limits
	GET /metrics     - Prometheus exposition

Encoding:

	POST /api/encode        - Hide a message in a carrier
	POST /api/carrier/check - Rate a carrier for a message

Decoding:

	POST /api/decode  - Exact (with instructions) or blind decode
	POST /api/detect  - Guess the method used
	POST /api/analyze - Text profile and per-method capacity

API routes are wrapped with middleware.WithLogging. CORS, rate limiting,
HTTP metrics and panic recovery wrap the whole mux in main.
*/
package router
