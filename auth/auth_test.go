// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateAdminKey(t *testing.T) {
	tests := []struct {
		name       string
		storageKey string
		salt       string
	}{
		{"standard", "ksa_nps_responses_v1", "secret-salt"},
		{"empty storage key", "", "salt"},
		{"empty salt", "survey_b", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateAdminKey(tt.storageKey, tt.salt)

			if key == "" {
				t.Error("GenerateAdminKey() returned empty string")
			}

			// Should be deterministic
			if key != GenerateAdminKey(tt.storageKey, tt.salt) {
				t.Error("GenerateAdminKey() is not deterministic")
			}

			if tt.storageKey != "" && tt.salt != "" {
				if key == GenerateAdminKey(tt.storageKey+"x", tt.salt) {
					t.Error("GenerateAdminKey() produced same key for different storage keys")
				}
			}

			// Should be URL-safe (no padding)
			if strings.Contains(key, "=") {
				t.Error("GenerateAdminKey() contains padding characters")
			}
		})
	}
}

func TestValidateAdminKey(t *testing.T) {
	storageKey := "ksa_nps_responses_v1"
	salt := "test-salt"
	validKey := GenerateAdminKey(storageKey, salt)

	tests := []struct {
		name       string
		storageKey string
		adminKey   string
		salt       string
		wantErr    error
	}{
		{"valid key", storageKey, validKey, salt, nil},
		{"wrong key", storageKey, "wrong-key", salt, ErrInvalidAdminKey},
		{"wrong storage key", "other_survey", validKey, salt, ErrInvalidAdminKey},
		{"wrong salt", storageKey, validKey, "different-salt", ErrInvalidAdminKey},
		{"empty key", storageKey, "", salt, ErrMissingAdminKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.storageKey, tt.adminKey, tt.salt)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAdminKey() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHashIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		salt string
	}{
		{"IPv4", "192.168.1.1", "ip-salt"},
		{"IPv6", "2001:0db8:85a3::8a2e:0370:7334", "ip-salt"},
		{"localhost", "127.0.0.1", "ip-salt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashIP(tt.ip, tt.salt)

			// Should be 16 hex characters (8 bytes * 2)
			if len(hash) != 16 {
				t.Errorf("HashIP() length = %d, want 16", len(hash))
			}

			for _, c := range hash {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("HashIP() contains invalid hex char: %c", c)
				}
			}

			if hash != HashIP(tt.ip, tt.salt) {
				t.Error("HashIP() is not deterministic")
			}
		})
	}

	if HashIP("192.168.1.1", "salt") == HashIP("192.168.1.2", "salt") {
		t.Error("HashIP() produced same hash for different IPs")
	}
	if HashIP("192.168.1.1", "salt1") == HashIP("192.168.1.1", "salt2") {
		t.Error("HashIP() produced same hash for different salts")
	}
}

func BenchmarkGenerateAdminKey(b *testing.B) {
	storageKey := "ksa_nps_responses_v1"
	salt := "test-salt"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateAdminKey(storageKey, salt)
	}
}
