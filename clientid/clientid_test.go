// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package clientid

import (
	"testing"
)

func TestGenerateSalt(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salt, err := GenerateSalt(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateSalt() error = %v", err)
			}
			if len(salt) != tt.wantLen {
				t.Errorf("GenerateSalt() length = %d, want %d", len(salt), tt.wantLen)
			}
			for _, c := range salt {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateSalt() contains invalid hex char: %c", c)
				}
			}
		})
	}

	s1, _ := GenerateSalt(16)
	s2, _ := GenerateSalt(16)
	if s1 == s2 {
		t.Error("GenerateSalt() produced duplicate salts (extremely unlikely)")
	}
}

func TestHashIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		salt string
	}{
		{"ipv4", "192.168.1.1", "salt"},
		{"ipv6", "2001:db8::1", "salt"},
		{"empty ip", "", "salt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashIP(tt.ip, tt.salt)
			if len(hash) != 16 {
				t.Errorf("HashIP() length = %d, want 16", len(hash))
			}
			if hash != HashIP(tt.ip, tt.salt) {
				t.Error("HashIP() is not deterministic")
			}
			if hash == HashIP(tt.ip, tt.salt+"x") {
				t.Error("HashIP() ignores the salt")
			}
			if tt.ip != "" && hash == tt.ip {
				t.Error("HashIP() returned the raw IP")
			}
		})
	}
}

func TestDigest(t *testing.T) {
	if Digest("ab", "c") == Digest("a", "bc") {
		t.Error("Digest() must separate parts")
	}
	if Digest("els", "text") != Digest("els", "text") {
		t.Error("Digest() is not deterministic")
	}
	if got := len(Digest()); got != 64 {
		t.Errorf("Digest() length = %d, want 64", got)
	}
}
