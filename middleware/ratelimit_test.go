// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestRateLimiter_Allow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rl := NewRateLimiter(1, 2, testSalt, clock)

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatal("Expected burst of 2 to be allowed")
	}
	if rl.Allow("a") {
		t.Error("Expected third request to be limited")
	}
	if !rl.Allow("b") {
		t.Error("Expected a different client to have its own bucket")
	}

	clock.Advance(time.Second)
	if !rl.Allow("a") {
		t.Error("Expected a token after one second")
	}
	if rl.Allow("a") {
		t.Error("Expected only one token after one second")
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(0, 0, testSalt, clockwork.NewFakeClock())
	for i := 0; i < 100; i++ {
		if !rl.Allow("a") {
			t.Fatalf("Expected disabled limiter to allow request %d", i)
		}
	}
	if rl.Len() != 0 {
		t.Errorf("Expected no tracked clients, got %d", rl.Len())
	}
}

func TestRateLimiter_SweepsIdleClients(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rl := NewRateLimiter(1, 1, testSalt, clock)

	for i := 0; i < sweepThreshold; i++ {
		rl.Allow(fmt.Sprintf("client-%d", i))
	}
	if rl.Len() != sweepThreshold {
		t.Fatalf("Expected %d clients, got %d", sweepThreshold, rl.Len())
	}

	clock.Advance(idleAfter + time.Second)
	rl.Allow("fresh")

	if rl.Len() != 1 {
		t.Errorf("Expected idle clients to be swept, %d remain", rl.Len())
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rl := NewRateLimiter(1, 1, testSalt, clock)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/encode", nil)
		req.RemoteAddr = ip + ":4000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	if w := send("10.0.0.1"); w.Code != http.StatusOK {
		t.Fatalf("Expected first request to pass, got %d", w.Code)
	}

	w := send("10.0.0.1")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") != "1" {
		t.Error("Expected Retry-After header")
	}

	if w := send("10.0.0.2"); w.Code != http.StatusOK {
		t.Errorf("Expected other client to pass, got %d", w.Code)
	}
}
