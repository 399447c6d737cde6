// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

var configEnv = []string{
	"PORT", "MAX_MESSAGE_LENGTH", "MAX_CARRIER_LENGTH", "MAX_RESULTS",
	"ANALYSIS_CACHE_SIZE", "RATE_LIMIT", "RATE_BURST", "FILLER_FILE", "IP_HASH_SALT",
}

// isolateEnv blanks every config variable and points ENV_FILE at nothing
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnv {
		t.Setenv(k, "")
	}
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestParseFlags_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.MaxMessageLength != DefaultMaxMessageLength || cfg.MaxCarrierLength != DefaultMaxCarrierLength {
		t.Errorf("unexpected length limits: %d / %d", cfg.MaxMessageLength, cfg.MaxCarrierLength)
	}
	if cfg.MaxResults != DefaultMaxResults {
		t.Errorf("expected max results %d, got %d", DefaultMaxResults, cfg.MaxResults)
	}
	if cfg.AnalysisCacheSize != DefaultAnalysisCacheSize {
		t.Errorf("expected cache size %d, got %d", DefaultAnalysisCacheSize, cfg.AnalysisCacheSize)
	}
	if cfg.RateLimit != DefaultRateLimit || cfg.RateBurst != DefaultRateBurst {
		t.Errorf("unexpected rate settings: %v / %d", cfg.RateLimit, cfg.RateBurst)
	}
	if cfg.FillerFile != "" {
		t.Errorf("expected no filler file, got %q", cfg.FillerFile)
	}
	// 16 random bytes, hex encoded
	if len(cfg.IPHashSalt) != 32 {
		t.Errorf("expected a generated 32 character salt, got %q", cfg.IPHashSalt)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_RESULTS", "5")
	t.Setenv("RATE_LIMIT", "2.5")
	t.Setenv("FILLER_FILE", "/etc/codevault/fillers.toml")
	t.Setenv("IP_HASH_SALT", "env-salt")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.MaxResults != 5 {
		t.Errorf("expected max results 5, got %d", cfg.MaxResults)
	}
	if cfg.RateLimit != 2.5 {
		t.Errorf("expected rate limit 2.5, got %v", cfg.RateLimit)
	}
	if cfg.FillerFile != "/etc/codevault/fillers.toml" {
		t.Errorf("unexpected filler file %q", cfg.FillerFile)
	}
	if cfg.IPHashSalt != "env-salt" {
		t.Errorf("expected env salt, got %q", cfg.IPHashSalt)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("RATE_LIMIT", "50")

	cfg, err := ParseFlags([]string{"-p", "8080", "-rate-limit", "0", "-cache-size", "0", "-ip-salt", "cli-salt"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	// An explicit zero still wins
	if cfg.RateLimit != 0 {
		t.Errorf("expected rate limiting disabled, got %v", cfg.RateLimit)
	}
	if cfg.AnalysisCacheSize != 0 {
		t.Errorf("expected cache disabled, got %d", cfg.AnalysisCacheSize)
	}
	if cfg.IPHashSalt != "cli-salt" {
		t.Errorf("expected cli salt, got %q", cfg.IPHashSalt)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"non-numeric port", map[string]string{"PORT": "http"}, nil},
		{"non-numeric rate", map[string]string{"RATE_LIMIT": "fast"}, nil},
		{"port out of range", nil, []string{"-p", "70000"}},
		{"zero max results", nil, []string{"-max-results", "0"}},
		{"negative cache", nil, []string{"-cache-size", "-1"}},
		{"negative rate", nil, []string{"-rate-limit", "-1"}},
		{"limit without burst", nil, []string{"-rate-limit", "5", "-rate-burst", "0"}},
		{"unknown flag", nil, []string{"-database-url", "postgres://"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			isolateEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tc.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseFlags_DotEnv(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	content := "MAX_RESULTS=7\nPORT=4000\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	// MAX_RESULTS must be absent for the file to supply it
	os.Unsetenv("MAX_RESULTS")
	t.Cleanup(func() { os.Unsetenv("MAX_RESULTS") })
	t.Setenv("PORT", "5000")

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.MaxResults != 7 {
		t.Errorf("expected max results from .env, got %d", cfg.MaxResults)
	}
	// The real environment is never overridden
	if cfg.Port != 5000 {
		t.Errorf("expected port 5000 from env, got %d", cfg.Port)
	}
	if cfg.EnvFile != path {
		t.Errorf("expected env file %q, got %q", path, cfg.EnvFile)
	}
}
