// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/codevault/cliparse"
	"github.com/danielhkuo/codevault/middleware"
	"github.com/danielhkuo/codevault/models"
	"github.com/danielhkuo/codevault/stego"
)

// InfoHandler serves the method catalogue, service status and text profiles
type InfoHandler struct {
	cfg     cliparse.Config
	clock   clockwork.Clock
	started time.Time
}

func NewInfoHandler(cfg cliparse.Config, clock clockwork.Clock) *InfoHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &InfoHandler{cfg: cfg, clock: clock, started: clock.Now()}
}

// Methods handles GET /api/methods
func (h *InfoHandler) Methods(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.MethodsResponse{
		Success: true,
		Methods: stego.Catalog(),
	})
}

// Status handles GET /api/status
func (h *InfoHandler) Status(w http.ResponseWriter, r *http.Request) {
	features := map[string]bool{
		"exact_decode":   true,
		"blind_decode":   true,
		"auto_detect":    true,
		"carrier_check":  true,
		"text_analysis":  true,
		"analysis_cache": h.cfg.AnalysisCacheSize > 0,
		"rate_limiting":  h.cfg.RateLimit > 0,
		"custom_fillers": h.cfg.FillerFile != "",
	}
	for _, m := range stego.Methods {
		features[string(m)] = true
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		Success:  true,
		Status:   "operational",
		Features: features,
		Limits:   limitsOf(h.cfg),
		Version:  Version,
		Uptime:   h.clock.Since(h.started).Round(time.Second).String(),
	})
}

// Analyze handles POST /api/analyze
func (h *InfoHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.TextRequest
	if !decodeRequest(w, r, h.cfg, &req) {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AnalyzeResponse{
		Success:   true,
		Analysis:  stego.Profile(req.Text),
		Timestamp: h.clock.Now().UTC(),
	})
}
