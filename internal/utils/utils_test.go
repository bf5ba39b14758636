package utils

import (
	"strings"
	"testing"
)

func TestMaskFingerprint(t *testing.T) {
	tests := []struct {
		name        string
		fingerprint string
		want        string
	}{
		{"long value keeps edges", "abcdef123456", "abc******456"},
		{"short value fully masked", "abc12", "******"},
		{"empty value", "", "******"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskFingerprint(tt.fingerprint); got != tt.want {
				t.Errorf("MaskFingerprint(%q) = %q, want %q", tt.fingerprint, got, tt.want)
			}
		})
	}
}

func TestGenerateRandomString(t *testing.T) {
	first, err := GenerateRandomString(32)
	if err != nil {
		t.Fatalf("GenerateRandomString returned error: %v", err)
	}
	if len(first) != 32 {
		t.Errorf("generated string has length %d, want 32", len(first))
	}
	second, err := GenerateRandomString(32)
	if err != nil {
		t.Fatalf("GenerateRandomString returned error: %v", err)
	}
	if strings.EqualFold(first, second) {
		t.Error("two generated strings are identical")
	}
}
