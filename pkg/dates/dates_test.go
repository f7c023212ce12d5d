package dates

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"rfc3339 with offset", "2025-08-22T15:05:20+00:00", "2025-08-22T15:05:20Z", true},
		{"rfc3339 zulu", "2025-08-22T15:05:20Z", "2025-08-22T15:05:20Z", true},
		{"rfc2822 gmt", "Fri, 22 Aug 2025 15:05:20 GMT", "2025-08-22T15:05:20Z", true},
		{"rfc2822 numeric offset", "Fri, 22 Aug 2025 15:05:20 +0000", "2025-08-22T15:05:20Z", true},
		{"naive datetime", "2025-08-22 15:05:20", "2025-08-22T15:05:20Z", true},
		{"date only", "2025-08-22", "2025-08-22T00:00:00Z", true},
		{"slash date", "08/22/2025", "2025-08-22T00:00:00Z", true},
		{"positive offset converts to utc", "2025-08-22T17:05:20+02:00", "2025-08-22T15:05:20Z", true},
		{"embedded date", "Published on Aug 22, 2025 by staff", "2025-08-22T00:00:00Z", true},
		{"not a date", "not a date", "", false},
		{"empty", "", "", false},
		{"null literal", "null", "", false},
		{"whitespace only", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.input)
			if ok != tt.ok {
				t.Fatalf("Normalize(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	first, ok := Normalize("2025-08-22T15:05:20+00:00")
	if !ok {
		t.Fatal("expected first normalization to succeed")
	}
	second, ok := Normalize(first)
	if !ok {
		t.Fatal("expected canonical output to re-normalize")
	}
	if first != second {
		t.Errorf("re-normalized %q to %q, want identical", first, second)
	}
}
