// Package language decides what language a page is written in, cheaply.
// URL heuristics run first, then a literal scan for a lang attribute in the
// raw markup, and only then statistical detection over a trimmed sample.
package language

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/search-ingest/pkg/registry"
)

// englishTLDs are top-level domains (and common subdomains) that strongly
// imply English content.
var englishTLDs = map[string]struct{}{
	"com": {}, "org": {}, "net": {}, "edu": {}, "gov": {}, "mil": {}, "int": {},
	"us": {}, "uk": {}, "ca": {}, "au": {}, "nz": {}, "ie": {}, "za": {},
	"www": {}, "en": {}, "english": {},
}

// englishDomainNames are sites known to serve English content.
var englishDomainNames = []string{
	"google", "facebook", "twitter", "youtube", "reddit", "stackoverflow",
	"github", "microsoft", "apple", "amazon", "wikipedia", "linkedin",
	"instagram", "netflix", "spotify", "dropbox", "slack", "zoom",
	"techcrunch", "engadget", "theverge", "wired", "medium", "substack",
	"wordpress", "blogspot",
}

// nonEnglishPathSegments flag localized site sections.
var nonEnglishPathSegments = []string{
	"/de/", "/es/", "/fr/", "/it/", "/pt/", "/ru/", "/zh/", "/ja/", "/ko/",
	"/deutsch/", "/espanol/", "/francais/", "/italiano/", "/portuguese/",
}

const sampleSize = 1000

// Detector performs the three-stage language decision. It is stateless
// beyond the shared registry and safe for concurrent use.
type Detector struct {
	reg           *registry.Registry
	minConfidence float64
}

// New returns a detector backed by the given registry.
func New(reg *registry.Registry, minConfidence float64) *Detector {
	return &Detector{reg: reg, minConfidence: minConfidence}
}

// Detect returns the ISO-639-1 code for the page, or false when no stage
// produces a confident answer.
func (d *Detector) Detect(text, rawURL string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	// 1. URL heuristics. Only a positive English signal short-circuits;
	// a non-English path segment still defers to the content itself.
	if rawURL != "" {
		if lang, ok := detectFromURL(rawURL); ok && lang == "en" {
			return "en", true
		}
	}

	// 2. Literal lang attribute scan over the raw markup.
	if lang, ok := markupLang(text); ok {
		return lang, true
	}

	// 3. Statistical detection over a cleaned sample.
	return d.detectFromContent(text)
}

// IsEnglish reports whether the page is confidently English.
func (d *Detector) IsEnglish(text, rawURL string) bool {
	lang, ok := d.Detect(text, rawURL)
	return ok && lang == "en"
}

// detectFromURL inspects host and path. Returns "en" for English signals
// and "non-en" when a localized path segment is present.
func detectFromURL(rawURL string) (string, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(parsed.Hostname())
	if host != "" {
		if strings.HasPrefix(host, "en.") || strings.HasPrefix(host, "english.") {
			return "en", true
		}
		for _, name := range englishDomainNames {
			if strings.Contains(host, name) {
				return "en", true
			}
		}
		parts := strings.Split(host, ".")
		tld := parts[len(parts)-1]
		if _, ok := englishTLDs[tld]; ok {
			return "en", true
		}
	}

	path := strings.ToLower(parsed.Path)
	if strings.Contains(path, "/en/") || strings.Contains(path, "/english/") {
		return "en", true
	}
	for _, seg := range nonEnglishPathSegments {
		if strings.Contains(path, seg) {
			return "non-en", true
		}
	}

	return "", false
}

// markupLang scans for the first lang= attribute occurrence, quoted or
// unquoted, and takes the first two codepoints of its value.
func markupLang(html string) (string, bool) {
	idx := strings.Index(html, "lang=")
	if idx < 0 {
		return "", false
	}

	rest := html[idx+len("lang="):]
	var value string
	switch {
	case strings.HasPrefix(rest, `"`):
		value = strings.SplitN(rest[1:], `"`, 2)[0]
	case strings.HasPrefix(rest, "'"):
		value = strings.SplitN(rest[1:], "'", 2)[0]
	default:
		value = strings.SplitN(rest, ">", 2)[0]
		if fields := strings.Fields(value); len(fields) > 0 {
			value = fields[0]
		} else {
			value = ""
		}
	}

	code := firstRunes(value, 2)
	if utf8.RuneCountInString(code) < 2 {
		return "", false
	}
	return strings.ToLower(code), true
}

func (d *Detector) detectFromContent(text string) (string, bool) {
	sample := cleanSample(text)
	if sample == "" {
		return "", false
	}

	values := d.reg.LanguageDetector.ComputeLanguageConfidenceValues(sample)
	if len(values) == 0 {
		return "", false
	}

	best := values[0]
	if best.Value() < d.minConfidence {
		return "", false
	}
	code := registry.LanguageCode(best.Language())
	return code, code != ""
}

// cleanSample strips residual markup and URLs, then truncates to a fixed
// codepoint budget for fast detection.
func cleanSample(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inTag := false
	for _, r := range text {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteRune(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}

	words := strings.Fields(b.String())
	kept := words[:0]
	for _, w := range words {
		if strings.HasPrefix(w, "http://") || strings.HasPrefix(w, "https://") {
			continue
		}
		kept = append(kept, w)
	}

	return firstRunes(strings.Join(kept, " "), sampleSize)
}

// firstRunes truncates at a codepoint boundary, never mid-rune.
func firstRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
