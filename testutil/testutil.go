// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/codevault/cliparse"
)

// FixedTime is the instant fake clocks in HTTP tests start at
var FixedTime = time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)

// ProseCarrier is an ordinary paragraph of a few hundred letters
const ProseCarrier = "The harbour was quiet in the early morning, and the fishing boats " +
	"rocked gently against the old stone pier. A few gulls circled above the " +
	"market stalls while merchants unpacked crates of bread, cheese and " +
	"bright winter apples. Somewhere down the lane a bell rang twice, and the " +
	"baker opened his shutters to let the warm smell drift across the square. " +
	"Travellers waiting for the ferry sat on their bags, reading newspapers " +
	"and sipping coffee from paper cups, watching the grey water turn silver."

// PoemCarrier has one short clause per line
const PoemCarrier = "Morning comes softly over the hills\n" +
	"Evening rests upon the quiet sea\n" +
	"Every river finds its way home\n" +
	"Tall trees lean toward the light\n" +
	"Autumn leaves gather by the door\n" +
	"Travelers pause at the crossroads"

// LongCarrier repeats ProseCarrier until it is comfortably large for any method
var LongCarrier = strings.Repeat(ProseCarrier+"\n", 8)

// GetTestConfig returns a config suitable for handler tests.
// Rate limiting is off so tests never see 429s unless they ask for them.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              3001,
		MaxMessageLength:  cliparse.DefaultMaxMessageLength,
		MaxCarrierLength:  cliparse.DefaultMaxCarrierLength,
		MaxResults:        cliparse.DefaultMaxResults,
		AnalysisCacheSize: 16,
		RateLimit:         0,
		RateBurst:         cliparse.DefaultRateBurst,
		IPHashSalt:        "test-salt",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
