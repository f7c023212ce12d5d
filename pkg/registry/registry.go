// Package registry holds the process-wide, read-only pattern tables used by
// every pipeline stage: precompiled regular expressions, stopword and noise
// lookup tables, the domain-authority table, category dictionaries, and the
// statistical language detector. A Registry is immutable after construction
// and safe for concurrent use.
package registry

import (
	"regexp"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// Registry is built once at startup (Default) or explicitly per test (New)
// and passed by reference into the pipeline components. It is never mutated
// after construction.
type Registry struct {
	// Text cleaning
	Whitespace      *regexp.Regexp
	HTMLEntities    *regexp.Regexp
	UnicodeEntities *regexp.Regexp
	ExcessivePunct  *regexp.Regexp
	URLPattern      *regexp.Regexp
	EmailPattern    *regexp.Regexp
	WikiNoise       *regexp.Regexp
	VTEMarker       *regexp.Regexp

	// Tokenization and scoring
	WordToken        *regexp.Regexp
	TechKeywords     *regexp.Regexp
	CitationPatterns []*regexp.Regexp

	// Statistical language detection restricted to the supported set.
	LanguageDetector lingua.LanguageDetector
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared process-wide registry, building it on first
// use. Construction is the only synchronized step; reads need no locking.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
	})
	return defaultReg
}

// New builds an independent registry. Tests use this for isolation instead
// of sharing Default.
func New() *Registry {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(supportedLanguages...).
		Build()

	return &Registry{
		Whitespace:      regexp.MustCompile(`\s+`),
		HTMLEntities:    regexp.MustCompile(`&[a-zA-Z0-9#]+;`),
		UnicodeEntities: regexp.MustCompile(`\\u003[cC]|\\u003[eE]|\\u0026|\\u0022|\\u0027|\\u003[aA]|\\u003[dD]`),
		ExcessivePunct:  regexp.MustCompile(`[.!?]{3,}`),
		URLPattern:      regexp.MustCompile(`https?://\S+`),
		EmailPattern:    regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
		WikiNoise:       regexp.MustCompile(`(?i)\b(?:diffhist|contribs|mobile\s+edit|visual\s+edit|android\s+app|ios\s+app|hidden\s+tag|wikiedu|dashboard|assignment\s+wizard|wikiloop|battlefield|user\s+creation|antivandal|rollback|manual\s+revert)\b`),
		VTEMarker:       regexp.MustCompile(`\s?vte\s`),
		WordToken:       regexp.MustCompile(`\b\w+\b`),
		TechKeywords:    regexp.MustCompile(`(?i)\b(?:` + techKeywordAlternation + `)\b`),
		CitationPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\[\d+\]`),
			regexp.MustCompile(`\(\d{4}\)`),
			regexp.MustCompile(`doi:`),
			regexp.MustCompile(`isbn:`),
			regexp.MustCompile(`arxiv:`),
			regexp.MustCompile(`according to`),
			regexp.MustCompile(`research shows`),
			regexp.MustCompile(`study found`),
			regexp.MustCompile(`published in`),
		},
		LanguageDetector: detector,
	}
}

// supportedLanguages is the detection allow-list; anything outside it is
// reported as undetermined rather than guessed.
var supportedLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Russian,
	lingua.Japanese,
	lingua.Korean,
	lingua.Chinese,
}

// LanguageCode maps a detected language to its ISO-639-1 code.
func LanguageCode(lang lingua.Language) string {
	switch lang {
	case lingua.English:
		return "en"
	case lingua.Spanish:
		return "es"
	case lingua.French:
		return "fr"
	case lingua.German:
		return "de"
	case lingua.Italian:
		return "it"
	case lingua.Portuguese:
		return "pt"
	case lingua.Russian:
		return "ru"
	case lingua.Japanese:
		return "ja"
	case lingua.Korean:
		return "ko"
	case lingua.Chinese:
		return "zh"
	default:
		return ""
	}
}
