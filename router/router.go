// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/codevault/cliparse"
	"github.com/danielhkuo/codevault/handlers"
	"github.com/danielhkuo/codevault/metrics"
	"github.com/danielhkuo/codevault/middleware"
	"github.com/danielhkuo/codevault/stego"
)

func NewRouter(cfg cliparse.Config, fillers *stego.FillerPools, clock clockwork.Clock) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	encodeHandler := handlers.NewEncodeHandler(cfg, fillers, clock)
	decodeHandler := handlers.NewDecodeHandler(cfg, clock)
	infoHandler := handlers.NewInfoHandler(cfg, clock)

	logged := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(h, cfg.IPHashSalt)
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Encoding
	mux.HandleFunc("POST /api/encode", logged(encodeHandler.Encode))
	mux.HandleFunc("POST /api/carrier/check", logged(encodeHandler.CheckCarrier))

	// Decoding and detection
	mux.HandleFunc("POST /api/decode", logged(decodeHandler.Decode))
	mux.HandleFunc("POST /api/detect", logged(decodeHandler.Detect))

	// Text profile, catalogue and status
	mux.HandleFunc("POST /api/analyze", logged(infoHandler.Analyze))
	mux.HandleFunc("GET /api/methods", logged(infoHandler.Methods))
	mux.HandleFunc("GET /api/status", logged(infoHandler.Status))

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", metrics.Handler())

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("codevault API v1"))
	})

	return mux
}
