package util

import (
	"testing"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "image limit", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "just over the limit", bytes: 1024*1024 + 200*1024, expected: "1.2 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestContainsFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		haystack string
		needle   string
		want     bool
	}{
		{haystack: "Patel Kirana Store", needle: "kirana", want: true},
		{haystack: "Patel Kirana Store", needle: "PATEL", want: true},
		{haystack: "Ring Road, Surat", needle: "surat", want: true},
		{haystack: "Ring Road, Surat", needle: "ahmedabad", want: false},
		{haystack: "anything", needle: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.haystack+"/"+tt.needle, func(t *testing.T) {
			t.Parallel()

			if got := ContainsFold(tt.haystack, tt.needle); got != tt.want {
				t.Fatalf("ContainsFold(%q, %q) = %v, want %v", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}
