// Package cleaner denoises extracted page text and splits it into
// size-bounded chunks suitable for indexing. Cleaning is an ordered,
// idempotent sequence of substitutions; chunk acceptance is a pair of
// gates that keep prose and reject chrome, CSS, and structured-data
// remnants.
package cleaner

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dtnitsch/search-ingest/models"
	"github.com/dtnitsch/search-ingest/pkg/registry"
)

const maxDescriptionRunes = 300

// Cleaner applies the noise-removal pipeline using the shared pattern
// registry. Safe for concurrent use.
type Cleaner struct {
	reg *registry.Registry
}

// New returns a cleaner backed by the given registry.
func New(reg *registry.Registry) *Cleaner {
	return &Cleaner{reg: reg}
}

// Clean runs the full noise-removal pipeline over extracted body text.
// The order matters: phrase noise first, then URLs/emails, then entity
// remnants, then punctuation and whitespace normalization.
func (c *Cleaner) Clean(text string) string {
	if text == "" {
		return ""
	}

	cleaned := c.reg.VTEMarker.ReplaceAllString(text, " ")
	cleaned = c.reg.WikiNoise.ReplaceAllString(cleaned, " ")
	cleaned = c.reg.URLPattern.ReplaceAllString(cleaned, " ")
	cleaned = c.reg.EmailPattern.ReplaceAllString(cleaned, " ")
	cleaned = c.reg.HTMLEntities.ReplaceAllString(cleaned, " ")
	cleaned = c.reg.UnicodeEntities.ReplaceAllString(cleaned, " ")
	cleaned = c.reg.ExcessivePunct.ReplaceAllString(cleaned, "...")
	cleaned = c.reg.Whitespace.ReplaceAllString(cleaned, " ")

	return strings.TrimSpace(cleaned)
}

// CleanDescription normalizes a meta description and truncates it to a
// codepoint budget, preferring a sentence boundary, then a word boundary.
func (c *Cleaner) CleanDescription(description string) string {
	if description == "" {
		return ""
	}

	cleaned := c.reg.HTMLEntities.ReplaceAllString(description, " ")
	cleaned = c.reg.Whitespace.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	runes := []rune(cleaned)
	if len(runes) <= maxDescriptionRunes {
		return cleaned
	}

	head := string(runes[:maxDescriptionRunes])
	if pos := strings.LastIndex(head, "."); pos > 0 {
		return head[:pos+1]
	}
	if pos := strings.LastIndex(head, " "); pos > 0 {
		return head[:pos] + "..."
	}
	return string(runes[:maxDescriptionRunes-3]) + "..."
}

// CreateChunks splits cleaned text into segments of [minSize, maxSize]
// bytes. Text that already fits is returned whole when it meets minSize,
// else nothing is returned. Sentences are greedily packed; when no
// sentence delimiter exists the same greedy pack runs over words. A final
// short remainder below minSize is dropped, never truncated into the
// index.
func CreateChunks(text string, maxSize, minSize int) []string {
	if len(text) <= maxSize {
		if len(text) >= minSize {
			return []string{text}
		}
		return nil
	}

	var chunks []string
	var current strings.Builder

	flush := func() {
		chunk := strings.TrimSpace(current.String())
		if len(chunk) >= minSize {
			chunks = append(chunks, chunk)
		}
		current.Reset()
	}

	for _, sentence := range strings.Split(text, ". ") {
		if !strings.HasSuffix(sentence, ".") {
			sentence += "."
		}
		if current.Len()+len(sentence)+1 > maxSize {
			flush()
			// A single sentence over the budget is split by words
			// rather than emitted oversized.
			if len(sentence) > maxSize {
				chunks = append(chunks, wordChunks(sentence, maxSize, minSize)...)
				continue
			}
			current.WriteString(sentence)
			continue
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(sentence)
	}
	flush()

	if len(chunks) == 0 && len(text) >= minSize {
		chunks = wordChunks(text, maxSize, minSize)
	}

	return chunks
}

// wordChunks is the fallback greedy pack over whitespace-delimited words.
func wordChunks(text string, maxSize, minSize int) []string {
	var chunks []string
	var current strings.Builder

	flush := func() {
		chunk := strings.TrimSpace(current.String())
		if len(chunk) >= minSize {
			chunks = append(chunks, chunk)
		}
		current.Reset()
	}

	for _, word := range strings.Fields(text) {
		if current.Len()+len(word)+1 > maxSize {
			flush()
			current.WriteString(word)
			continue
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	flush()

	return chunks
}

// ChunksWithContext cleans, chunks, filters, and heading-tags the body
// text. Chunk indices refer to the raw chunk sequence, so gaps mark
// rejected chunks.
func (c *Cleaner) ChunksWithContext(content string, headings []models.Heading, maxSize, minSize int) []models.ChunkWithContext {
	if content == "" {
		return nil
	}

	raw := CreateChunks(c.Clean(content), maxSize, minSize)

	var out []models.ChunkWithContext
	for i, chunk := range raw {
		if !c.IsMeaningful(chunk) || c.ContainsWebNoise(chunk) {
			continue
		}
		out = append(out, models.ChunkWithContext{
			TextChunk:        chunk,
			RelevantHeadings: relevantHeadings(chunk, headings),
			ChunkIndex:       i,
		})
	}
	return out
}

// IsMeaningful is the acceptance gate for prose structure: minimum
// length, word count, alphabetic density, bounded JSON-like punctuation,
// and at least one common English function word.
func (c *Cleaner) IsMeaningful(chunk string) bool {
	chunk = strings.TrimSpace(chunk)
	if len(chunk) < 20 {
		return false
	}
	if len(strings.Fields(chunk)) < 3 {
		return false
	}

	alpha := 0
	jsonLike := 0
	for _, r := range chunk {
		if unicode.IsLetter(r) {
			alpha++
		}
		if strings.ContainsRune(`{}[]",:;`, r) {
			jsonLike++
		}
	}
	if alpha < len(chunk)/5 {
		return false
	}
	if jsonLike > len(chunk)/3 {
		return false
	}

	lower := strings.ToLower(chunk)
	for _, word := range registry.CommonFunctionWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// ContainsWebNoise is the rejection gate: residual entity escapes, CSS
// declarations, wiki chrome, structured-data fragments, and boilerplate
// dominance all disqualify a chunk.
func (c *Cleaner) ContainsWebNoise(text string) bool {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))

	escapes := []string{"\\u003c", "\\u003e", "\\u0026", "&nbsp;", "&amp;", "&lt;", "&gt;"}
	for _, e := range escapes {
		if strings.Contains(text, e) {
			return true
		}
	}

	for _, token := range registry.CSSTokens {
		if strings.Contains(text, token) {
			return true
		}
	}

	for _, phrase := range registry.WikiResidualPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}

	for _, frag := range registry.JSONFragments {
		if strings.Contains(text, frag) {
			return true
		}
	}

	// Interface vocabulary density.
	if wordCount > 0 {
		noiseCount := 0
		for _, phrase := range registry.InterfaceNoisePhrases {
			noiseCount += strings.Count(lower, phrase)
		}
		if float64(noiseCount)/float64(wordCount) > 0.2 {
			return true
		}
	}

	// Colon/semicolon density signals stylesheet text in long chunks.
	cssChars := strings.Count(text, ":") + strings.Count(text, ";")
	if cssChars > 20 && len(text) > 500 {
		if float64(cssChars)/float64(len(text)) > 0.01 {
			return true
		}
	}

	// Bracket-heavy text is version/ID noise.
	if strings.Count(text, "[")+strings.Count(text, "]") > 10 {
		return true
	}

	// Runs of uppercase or non-alphabetic characters mark acronym soup.
	runes := []rune(text)
	upperRuns := 0
	for i := 0; i+2 < len(runes); i++ {
		run := true
		for _, r := range runes[i : i+3] {
			if !unicode.IsUpper(r) && unicode.IsLetter(r) {
				run = false
				break
			}
		}
		if run {
			upperRuns++
		}
	}
	if upperRuns > wordCount/4 {
		return true
	}

	// Navigation boilerplate dominance.
	hasNav := false
	navWords := 0
	for _, phrase := range registry.NavPhrases {
		n := strings.Count(lower, phrase)
		if n > 0 {
			hasNav = true
			navWords += n * len(strings.Fields(phrase))
		}
	}
	if hasNav && wordCount > 0 && float64(navWords)/float64(wordCount) > 0.3 {
		return true
	}

	return false
}

// relevantHeadings tags a chunk with up to three headings that share a
// word (longer than 3 characters) with the chunk's first 20 such words.
func relevantHeadings(chunk string, headings []models.Heading) []string {
	chunkWords := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(chunk)) {
		if len(w) > 3 {
			chunkWords[w] = struct{}{}
			if len(chunkWords) >= 20 {
				break
			}
		}
	}

	var relevant []string
	for _, h := range headings {
		if len(relevant) >= 3 {
			break
		}
		for _, w := range strings.Fields(strings.ToLower(h.Text)) {
			if _, ok := chunkWords[w]; ok {
				relevant = append(relevant, h.Text)
				break
			}
		}
	}
	return relevant
}

// ExtractKeywords falls back to frequency analysis when a page declares
// no keywords: alphabetic words longer than 3 characters, stopwords
// removed, appearing at least twice, most frequent first.
func (c *Cleaner) ExtractKeywords(text string, maxKeywords int) []string {
	if text == "" {
		return nil
	}

	counts := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if utf8.RuneCountInString(word) <= 3 || registry.IsStopword(word) {
			continue
		}
		alphabetic := true
		for _, r := range word {
			if !unicode.IsLetter(r) {
				alphabetic = false
				break
			}
		}
		if alphabetic {
			counts[word]++
		}
	}

	type wordCount struct {
		word  string
		count int
	}
	sorted := make([]wordCount, 0, len(counts))
	for w, n := range counts {
		if n >= 2 {
			sorted = append(sorted, wordCount{w, n})
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].word < sorted[j].word
	})

	if len(sorted) > maxKeywords {
		sorted = sorted[:maxKeywords]
	}
	keywords := make([]string, len(sorted))
	for i, wc := range sorted {
		keywords[i] = wc.word
	}
	return keywords
}
