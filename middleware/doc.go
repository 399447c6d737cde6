// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler, cfg.IPHashSalt))

Every request gets an X-Request-ID (a caller supplied UUID is kept) that is
echoed in the response and available to handlers through RequestID. Clients
are logged by salted hash only.

# Rate Limiting

A token bucket per hashed client IP, backed by golang.org/x/time/rate:

	rl := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, cfg.IPHashSalt, nil)
	handler = rl.Middleware(handler)

Rejected requests get 429 with Retry-After and bump the rate_limited_total
metric. Idle clients are dropped once the table grows large.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ErrorDetails(w, http.StatusUnprocessableEntity, msg, "carrier_too_short", nil)

Parse JSON request bodies (capped at MaxBodyBytes):

	var req models.EncodeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
