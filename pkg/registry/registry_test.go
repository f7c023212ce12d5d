package registry

import (
	"testing"

	"github.com/pemistahl/lingua-go"
)

func TestDefaultIsShared(t *testing.T) {
	first := Default()
	second := Default()
	if first != second {
		t.Error("Default() returned different instances, want one shared registry")
	}
	if first == nil || first.LanguageDetector == nil {
		t.Fatal("Default() registry is incomplete")
	}
}

func TestNewIsIndependent(t *testing.T) {
	if New() == Default() {
		t.Error("New() returned the shared instance, want an independent one")
	}
}

func TestIsStopword(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"and", true},
		{"with", true},
		{"kubernetes", false},
		{"chemistry", false},
	}
	for _, tt := range tests {
		if got := IsStopword(tt.word); got != tt.want {
			t.Errorf("IsStopword(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestTechKeywordsPattern(t *testing.T) {
	reg := New()

	if !reg.TechKeywords.MatchString("the algorithm uses a hash") {
		t.Error("TechKeywords missed plain technical terms")
	}
	if reg.TechKeywords.MatchString("the weather was pleasant yesterday") {
		t.Error("TechKeywords matched non-technical text")
	}
}

func TestCleaningPatterns(t *testing.T) {
	reg := New()

	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"url", "URLPattern", "visit https://example.com/x now", true},
		{"email", "EmailPattern", "mail me at a.b@example.org please", true},
		{"entity", "HTMLEntities", "fish &amp; chips", true},
		{"entity numeric", "HTMLEntities", "a &#8212; b", true},
		{"excessive punct", "ExcessivePunct", "what?!... really", true},
		{"wiki noise", "WikiNoise", "02:31 diffhist +14 Some Article", true},
	}

	patterns := map[string]interface{ MatchString(string) bool }{
		"URLPattern":     reg.URLPattern,
		"EmailPattern":   reg.EmailPattern,
		"HTMLEntities":   reg.HTMLEntities,
		"ExcessivePunct": reg.ExcessivePunct,
		"WikiNoise":      reg.WikiNoise,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := patterns[tt.pattern].MatchString(tt.input); got != tt.want {
				t.Errorf("%s.MatchString(%q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		lang lingua.Language
		want string
	}{
		{lingua.English, "en"},
		{lingua.German, "de"},
		{lingua.Japanese, "ja"},
		{lingua.Chinese, "zh"},
	}
	for _, tt := range tests {
		if got := LanguageCode(tt.lang); got != tt.want {
			t.Errorf("LanguageCode(%v) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}
