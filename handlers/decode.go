// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/danielhkuo/codevault/clientid"
	"github.com/danielhkuo/codevault/cliparse"
	"github.com/danielhkuo/codevault/metrics"
	"github.com/danielhkuo/codevault/middleware"
	"github.com/danielhkuo/codevault/models"
	"github.com/danielhkuo/codevault/stego"
)

type DecodeHandler struct {
	cfg   cliparse.Config
	clock clockwork.Clock
	// nil when AnalysisCacheSize is 0
	cache *lru.ARCCache
}

func NewDecodeHandler(cfg cliparse.Config, clock clockwork.Clock) *DecodeHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	h := &DecodeHandler{cfg: cfg, clock: clock}
	if cfg.AnalysisCacheSize > 0 {
		// NewARC only fails on a non-positive size
		h.cache, _ = lru.NewARC(cfg.AnalysisCacheSize)
	}
	return h
}

// Decode handles POST /api/decode
// Exact when the request carries instructions, blind otherwise
func (h *DecodeHandler) Decode(w http.ResponseWriter, r *http.Request) {
	var req models.DecodeRequest
	if !decodeRequest(w, r, h.cfg, &req) {
		return
	}
	if req.Instructions != nil {
		h.decodeExact(w, r, req)
		return
	}
	h.decodeBlind(w, r, req)
}

func (h *DecodeHandler) decodeExact(w http.ResponseWriter, r *http.Request, req models.DecodeRequest) {
	in := *req.Instructions
	tag := string(in.Method)
	if tag == "" {
		tag = req.Method
	}
	in.Method, _ = stego.ParseMethod(tag, false)

	msg, err := stego.Decode(req.Text, in)
	if err != nil {
		stegoError(w, r, err)
		return
	}
	metrics.DecodeCounter.WithLabelValues(string(in.Method), "exact").Inc()
	slog.Info("message decoded",
		"request_id", middleware.RequestID(r.Context()),
		"method", in.Method,
		"mode", "exact",
		"text_length", utf8.RuneCountInString(req.Text),
	)

	middleware.JSONResponse(w, http.StatusOK, models.DecodeResponse{
		Success:   true,
		Message:   msg,
		Method:    in.Method,
		Timestamp: h.clock.Now().UTC(),
	})
}

func (h *DecodeHandler) decodeBlind(w http.ResponseWriter, r *http.Request, req models.DecodeRequest) {
	method, _ := stego.ParseMethod(req.Method, true)
	opts := stego.AnalyzeOptions{Limit: h.cfg.MaxResults}
	if p := req.Parameters; p != nil {
		opts.SkipDistance = p.SkipDistance
		opts.StartPosition = p.StartPosition
	}

	analysis, cached := h.lookup(method, opts, req.Text)
	if !cached {
		timer := prometheus.NewTimer(metrics.AnalysisLatency.WithLabelValues(string(method)))
		var err error
		analysis, err = stego.Analyze(req.Text, method, opts)
		timer.ObserveDuration()
		if err != nil {
			stegoError(w, r, err)
			return
		}
		h.store(method, opts, req.Text, analysis)
		metrics.CandidatesFound.Observe(float64(len(analysis.Candidates)))
		if d := analysis.Detection; d != nil {
			metrics.DetectedMethod.WithLabelValues(detectedLabel(d.Method), d.Confidence).Inc()
		}
	}
	metrics.DecodeCounter.WithLabelValues(string(method), "blind").Inc()

	results := analysis.Candidates
	if results == nil {
		results = []stego.Candidate{}
	}
	slog.Info("blind decode finished",
		"request_id", middleware.RequestID(r.Context()),
		"method", method,
		"text_length", utf8.RuneCountInString(req.Text),
		"candidates", len(results),
		"cached", cached,
	)

	middleware.JSONResponse(w, http.StatusOK, models.BlindDecodeResponse{
		Success:    true,
		Results:    results,
		TotalFound: len(results),
		Detection:  analysis.Detection,
		Cached:     cached,
		Timestamp:  h.clock.Now().UTC(),
	})
}

func analysisKey(method stego.Method, opts stego.AnalyzeOptions, text string) string {
	return clientid.Digest(
		string(method),
		strconv.Itoa(opts.SkipDistance),
		strconv.Itoa(opts.StartPosition),
		strconv.Itoa(opts.Limit),
		text,
	)
}

func (h *DecodeHandler) lookup(method stego.Method, opts stego.AnalyzeOptions, text string) (*stego.Analysis, bool) {
	if h.cache == nil {
		return nil, false
	}
	if v, ok := h.cache.Get(analysisKey(method, opts, text)); ok {
		metrics.AnalysisCache.WithLabelValues("hit").Inc()
		return v.(*stego.Analysis), true
	}
	metrics.AnalysisCache.WithLabelValues("miss").Inc()
	return nil, false
}

func (h *DecodeHandler) store(method stego.Method, opts stego.AnalyzeOptions, text string, a *stego.Analysis) {
	if h.cache != nil {
		h.cache.Add(analysisKey(method, opts, text), a)
	}
}

// Detect handles POST /api/detect
func (h *DecodeHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var req models.TextRequest
	if !decodeRequest(w, r, h.cfg, &req) {
		return
	}

	d := stego.Detect(req.Text)
	metrics.DetectedMethod.WithLabelValues(detectedLabel(d.Method), d.Confidence).Inc()

	middleware.JSONResponse(w, http.StatusOK, models.DetectResponse{
		Success:   true,
		Detection: d,
		Timestamp: h.clock.Now().UTC(),
	})
}

func detectedLabel(m stego.Method) string {
	if m == "" {
		return "none"
	}
	return string(m)
}
