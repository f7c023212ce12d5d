// Package scorer computes the composite content-quality score, the
// domain-authority score, and the technical-content signals for a
// processed document.
package scorer

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dtnitsch/search-ingest/models"
	"github.com/dtnitsch/search-ingest/pkg/registry"
)

// Factor weights sum to 1.0. Completeness stays a placeholder constant.
const (
	weightLength      = 0.20
	weightStructure   = 0.20
	weightContentType = 0.15
	weightLanguage    = 0.10
	weightMetadata    = 0.10
	weightTechnical   = 0.10
	weightAuthority   = 0.10
	weightComplete    = 0.05

	emptyContentFloor  = 0.1
	defaultDomainScore = 0.3
)

// Scorer evaluates documents against fixed keyword and weight tables.
type Scorer struct {
	reg *registry.Registry
}

func New(reg *registry.Registry) *Scorer {
	return &Scorer{reg: reg}
}

// QualityScore returns the weighted composite quality score. Empty
// content collapses to the floor value.
func (s *Scorer) QualityScore(doc *models.Document) float64 {
	if doc.MainContent == "" {
		return emptyContentFloor
	}

	return weightLength*lengthScore(doc.WordCount) +
		weightStructure*structureScore(doc) +
		weightContentType*contentTypeScore(doc.MainContent, doc.Title) +
		weightLanguage*languageQualityScore(doc.MainContent) +
		weightMetadata*metadataScore(doc) +
		weightTechnical*technicalBonus(doc.MainContent) +
		weightAuthority*s.authoritativenessScore(doc.MainContent, doc.Title) +
		weightComplete*1.0
}

// DomainScore maps the URL's host to a fixed authority score: exact
// domain match first (subdomains collapse to their registered domain),
// then dotted TLD suffix patterns, else the default.
func (s *Scorer) DomainScore(rawURL string) float64 {
	if rawURL == "" {
		return defaultDomainScore
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return defaultDomainScore
	}
	domain := strings.ToLower(parsed.Hostname())
	if domain == "" {
		return defaultDomainScore
	}

	// Walk parent domains so en.wikipedia.org resolves through its
	// wikipedia.org entry before the TLD suffix patterns apply.
	for candidate := domain; candidate != ""; {
		if score, ok := registry.DomainScores[candidate]; ok {
			return score
		}
		_, rest, found := strings.Cut(candidate, ".")
		if !found || !strings.Contains(rest, ".") {
			break
		}
		candidate = rest
	}
	for pattern, score := range registry.DomainScores {
		if strings.HasPrefix(pattern, ".") && strings.HasSuffix(domain, pattern) {
			return score
		}
	}
	return defaultDomainScore
}

// TechnicalScore is the technical-keyword density per thousand bytes.
func (s *Scorer) TechnicalScore(content string) float64 {
	if content == "" {
		return 0
	}
	count := len(s.reg.TechKeywords.FindAllStringIndex(strings.ToLower(content), -1))
	return float64(count) / float64(len(content)) * 1000.0
}

// IsTechnical flags content with three or more technical-keyword hits,
// or a high hit density for short content.
func (s *Scorer) IsTechnical(content string) bool {
	if content == "" {
		return false
	}
	count := len(s.reg.TechKeywords.FindAllStringIndex(strings.ToLower(content), -1))
	return count >= 3 || float64(count)/float64(len(content)) > 0.0001
}

func lengthScore(wordCount int) float64 {
	switch {
	case wordCount < 30:
		return 0.05
	case wordCount < 50:
		return 0.15
	case wordCount < 75:
		return 0.4
	case wordCount < 150:
		return 0.8
	case wordCount < 300:
		return 1.3
	case wordCount <= 1000:
		return 1.5
	case wordCount <= 3000:
		return 1.4
	default:
		return 1.2
	}
}

func structureScore(doc *models.Document) float64 {
	score := 1.0
	if strings.Contains(doc.MainContent, "```") {
		score *= 1.2
	}
	switch {
	case len(doc.Headings) >= 3:
		score *= 1.15
	case len(doc.Headings) >= 1:
		score *= 1.05
	}
	return score
}

// contentTypeScore rewards educational intent (first strength tier that
// matches wins) and adjusts for quality-indicator words.
func contentTypeScore(content, title string) float64 {
	combined := strings.ToLower(content) + " " + strings.ToLower(title)
	score := 1.0

	tiers := []struct {
		words []string
		bonus float64
	}{
		{registry.EducationalStrong, 1.4},
		{registry.EducationalMedium, 1.25},
		{registry.EducationalWeak, 1.1},
	}
	for _, tier := range tiers {
		if containsAnyWord(combined, tier.words) {
			score *= tier.bonus
			break
		}
	}

	score *= 1.0 + float64(countMatches(combined, registry.QualityPositive))*0.08
	score *= 1.0 - float64(countMatches(combined, registry.QualityNegative))*0.15

	if score < 0.1 {
		return 0.1
	}
	return score
}

func languageQualityScore(content string) float64 {
	if content == "" {
		return 0.1
	}
	score := 1.0

	upper := 0
	total := 0
	for _, r := range content {
		total++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	capRatio := float64(upper) / float64(total)
	switch {
	case capRatio >= 0.02 && capRatio <= 0.08:
		score *= 1.1
	case capRatio > 0.15:
		score *= 0.8
	}

	words := strings.Fields(content)
	if len(words) > 0 {
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[strings.ToLower(w)] = struct{}{}
		}
		if float64(len(unique))/float64(len(words)) > 0.4 {
			score *= 1.1
		}
	}

	return score
}

func metadataScore(doc *models.Document) float64 {
	score := 1.0
	titleLen := utf8.RuneCountInString(doc.Title)
	if titleLen >= 10 && titleLen <= 120 {
		score *= 1.1
	}
	for _, w := range strings.Fields(strings.ToLower(doc.Title)) {
		if wordEquals(w, registry.InstructionalTitleWords) {
			score *= 1.05
			break
		}
	}
	if utf8.RuneCountInString(doc.Description) > 50 {
		score *= 1.05
	}
	if doc.AuthorName != "" {
		score *= 1.02
	}
	if doc.PublishedDate != "" {
		score *= 1.02
	}
	return score
}

func technicalBonus(content string) float64 {
	score := 1.0
	lower := strings.ToLower(content)
	if strings.Contains(content, "```") || strings.Contains(content, "<code>") {
		score *= 1.25
	}
	if strings.Contains(content, "def ") || strings.Contains(content, "function ") {
		score *= 1.15
	}
	if strings.Contains(lower, "class ") {
		score *= 1.1
	}
	if score > 2.5 {
		return 2.5
	}
	return score
}

func (s *Scorer) authoritativenessScore(content, title string) float64 {
	score := 1.0
	contentLower := strings.ToLower(content)
	titleLower := strings.ToLower(title)

	citations := 0
	for _, pattern := range s.reg.CitationPatterns {
		citations += len(pattern.FindAllStringIndex(contentLower, -1))
	}
	if citations > 0 {
		bonus := float64(citations) * 0.1
		if bonus > 0.5 {
			bonus = 0.5
		}
		score *= 1.0 + bonus
	}

	if containsAnyWord(contentLower, registry.CredentialIndicators) || containsAnyWord(titleLower, registry.CredentialIndicators) {
		score *= 1.1
	}
	if containsAnyWord(contentLower, registry.InstitutionalIndicators) || containsAnyWord(titleLower, registry.InstitutionalIndicators) {
		score *= 1.15
	}

	if score > 2.0 {
		return 2.0
	}
	return score
}

func containsAnyWord(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func wordEquals(s string, words []string) bool {
	for _, w := range words {
		if s == w {
			return true
		}
	}
	return false
}

func countMatches(s string, words []string) int {
	count := 0
	for _, w := range words {
		if strings.Contains(s, w) {
			count++
		}
	}
	return count
}
