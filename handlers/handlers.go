// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/codevault/cliparse"
	"github.com/danielhkuo/codevault/middleware"
	"github.com/danielhkuo/codevault/models"
	"github.com/danielhkuo/codevault/stego"
)

// Version is reported by GET /api/status
const Version = "1.0.0"

func limitsOf(cfg cliparse.Config) models.Limits {
	return models.Limits{
		MaxMessageLength: cfg.MaxMessageLength,
		MaxCarrierLength: cfg.MaxCarrierLength,
		MaxResults:       cfg.MaxResults,
	}
}

// validator is implemented by every request type in models
type validator interface {
	Validate(models.Limits) error
}

// decodeRequest parses and validates the body into req, writing the error
// response itself. It reports whether the handler should continue.
func decodeRequest(w http.ResponseWriter, r *http.Request, cfg cliparse.Config, req validator) bool {
	if err := middleware.ParseJSONBody(r, req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return false
	}
	if err := req.Validate(limitsOf(cfg)); err != nil {
		middleware.ErrorDetails(w, http.StatusBadRequest, "Invalid request", "", models.Details(err))
		return false
	}
	return true
}

// stegoError maps a stego error onto a response and returns its kind name
// for metrics and logs.
func stegoError(w http.ResponseWriter, r *http.Request, err error) string {
	kind := stego.KindName(err)
	switch {
	case errors.Is(err, stego.ErrInvalidMethod),
		errors.Is(err, stego.ErrInvalidLevel),
		errors.Is(err, stego.ErrInvalidInstructions):
		middleware.ErrorDetails(w, http.StatusBadRequest, err.Error(), kind, nil)
	case kind != "":
		middleware.ErrorDetails(w, http.StatusUnprocessableEntity, err.Error(), kind, nil)
	default:
		kind = "internal"
		slog.Error("unexpected stego error", "request_id", middleware.RequestID(r.Context()), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
	return kind
}
