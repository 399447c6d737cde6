// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus collectors for the API.

# Collectors

Domain:

  - EncodeCounter{method, outcome}
  - DecodeCounter{method, mode}
  - AnalysisLatency{method}, CandidatesFound
  - AnalysisCache{result}
  - DetectedMethod{method, confidence}
  - RateLimited

HTTP (filled by Instrument):

  - HTTPCallCounter{code, method}, HTTPLatency{method}, HTTPInFlight

# Serving

	mux.Handle("GET /metrics", metrics.Handler())

Collectors are registered once, on first use of Handler, Instrument or Bind.
*/
package metrics
