// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/codevault/cliparse"
	"github.com/danielhkuo/codevault/metrics"
	"github.com/danielhkuo/codevault/middleware"
	"github.com/danielhkuo/codevault/models"
	"github.com/danielhkuo/codevault/stego"
)

type EncodeHandler struct {
	cfg     cliparse.Config
	fillers *stego.FillerPools
	clock   clockwork.Clock
}

// NewEncodeHandler uses the built-in filler pools when fillers is nil
func NewEncodeHandler(cfg cliparse.Config, fillers *stego.FillerPools, clock clockwork.Clock) *EncodeHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &EncodeHandler{cfg: cfg, fillers: fillers, clock: clock}
}

// Encode handles POST /api/encode
func (h *EncodeHandler) Encode(w http.ResponseWriter, r *http.Request) {
	var req models.EncodeRequest
	if !decodeRequest(w, r, h.cfg, &req) {
		return
	}
	// Validate already rejected unknown methods
	method, _ := stego.ParseMethod(req.Method, false)

	res, err := stego.Encode(method, req.Message, req.CarrierText, stego.Params{
		Level:   stego.Level(req.SecurityLevel),
		Fillers: h.fillers,
	})
	if err != nil {
		kind := stegoError(w, r, err)
		metrics.EncodeCounter.WithLabelValues(string(method), kind).Inc()
		slog.Info("encode rejected",
			"request_id", middleware.RequestID(r.Context()),
			"method", method,
			"kind", kind,
		)
		return
	}
	metrics.EncodeCounter.WithLabelValues(string(method), "ok").Inc()

	security := stego.Assess(method, req.Message, req.CarrierText, res.Positions)

	// Lengths only; the message itself is never logged
	slog.Info("message encoded",
		"request_id", middleware.RequestID(r.Context()),
		"method", method,
		"message_length", utf8.RuneCountInString(req.Message),
		"carrier_length", utf8.RuneCountInString(req.CarrierText),
		"security_score", res.SecurityScore,
		"risk", security.DetectionRisk,
	)

	middleware.JSONResponse(w, http.StatusOK, models.EncodeResponse{
		Success:   true,
		Result:    res,
		Security:  security,
		Timestamp: h.clock.Now().UTC(),
	})
}

// CheckCarrier handles POST /api/carrier/check
func (h *EncodeHandler) CheckCarrier(w http.ResponseWriter, r *http.Request) {
	var req models.CarrierCheckRequest
	if !decodeRequest(w, r, h.cfg, &req) {
		return
	}
	method, _ := stego.ParseMethod(req.Method, false)

	s, err := stego.CheckCarrier(method, req.Message, req.CarrierText)
	if err != nil {
		stegoError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CarrierCheckResponse{
		Success:     true,
		Method:      method,
		Suitability: s,
		Timestamp:   h.clock.Now().UTC(),
	})
}
