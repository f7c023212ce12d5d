// Package processor sequences the full ingestion pipeline: parse,
// metadata and content extraction, cleaning and chunking, date
// normalization, the language admission filter, and scoring. The output
// is one immutable Document per page.
package processor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/search-ingest/models"
	"github.com/dtnitsch/search-ingest/pkg/cleaner"
	"github.com/dtnitsch/search-ingest/pkg/content"
	"github.com/dtnitsch/search-ingest/pkg/language"
	"github.com/dtnitsch/search-ingest/pkg/metadata"
	"github.com/dtnitsch/search-ingest/pkg/registry"
	"github.com/dtnitsch/search-ingest/pkg/scorer"
)

// ProcessingError wraps a fatal parse failure with the page URL so the
// caller can decide whether to retry or skip.
type ProcessingError struct {
	URL string
	Err error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing %s: %v", e.URL, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }

// Processor is safe for concurrent use; all shared state lives in the
// immutable pattern registry.
type Processor struct {
	cfg      models.Config
	reg      *registry.Registry
	content  *content.Extractor
	cleaner  *cleaner.Cleaner
	language *language.Detector
	scorer   *scorer.Scorer
}

// New builds a processor over the process-wide pattern registry.
func New(cfg models.Config) *Processor {
	reg := registry.Default()
	return &Processor{
		cfg:      cfg,
		reg:      reg,
		content:  content.New(cfg.MinContentLength),
		cleaner:  cleaner.New(reg),
		language: language.New(reg, cfg.LanguageConfidence),
		scorer:   scorer.New(reg),
	}
}

// Process runs the full pipeline over one page.
func (p *Processor) Process(rawHTML, rawURL string) (*models.Document, error) {
	return p.ProcessWithProfile(rawHTML, rawURL, metadata.FullProfile)
}

// ProcessWithProfile runs the pipeline with a reduced analysis profile
// when the caller does not need categories or content-type
// classification.
func (p *Processor) ProcessWithProfile(rawHTML, rawURL string, profile metadata.Profile) (*models.Document, error) {
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, &ProcessingError{URL: rawURL, Err: err}
	}

	meta := metadata.New(parsed, p.reg, rawURL)

	doc := &models.Document{}
	doc.Title = meta.Title()
	doc.AuthorName = meta.Author()
	doc.PublishedDate, doc.ModifiedDate = meta.Dates()
	doc.PrimaryImage = meta.PrimaryImage()
	doc.Favicon = meta.Favicon()
	doc.CanonicalURL = meta.CanonicalURL()
	doc.Description = p.cleaner.CleanDescription(meta.Description())
	if profile.StructuredMeta {
		doc.StructuredMeta = meta.StructuredMeta()
	}

	rawContent := p.content.MainContent(parsed, rawHTML, rawURL)
	doc.Headings = p.content.Headings(parsed)
	doc.MainContent = p.cleaner.Clean(rawContent)

	doc.Keywords = meta.Keywords(profile, func() []string {
		return p.cleaner.ExtractKeywords(doc.MainContent, 10)
	}, p.cfg.MaxKeywords)

	if profile.ContentType {
		doc.ContentType = meta.ContentType(rawURL, doc.Title, doc.Description)
	}
	if profile.Categories {
		doc.ContentCategories = meta.Categories(doc.MainContent, p.cfg.MaxCategories)
	}

	doc.TextChunksWithContext = p.cleaner.ChunksWithContext(rawContent, doc.Headings, p.cfg.MaxChunkSize, p.cfg.MinChunkSize)
	doc.WordCount = len(strings.Fields(doc.MainContent))

	// Admission filter. The detected language admits the page outright
	// when English; otherwise a content-only recheck gets the final say.
	// Rejected pages keep their metadata but lose body and chunks.
	lang, ok := p.language.Detect(rawHTML, rawURL)
	admitted := (ok && lang == "en") || p.language.IsEnglish(doc.MainContent, "")
	switch {
	case ok:
		doc.Language = lang
	case admitted:
		doc.Language = "en"
	}
	if !admitted {
		doc.Tombstone()
	}

	doc.SemanticInfo = p.semanticInfo(doc)
	doc.ContentQualityScore = p.scorer.QualityScore(doc)
	doc.DomainScore = p.scorer.DomainScore(rawURL)
	doc.IsTechnicalContent = p.scorer.IsTechnical(doc.MainContent)

	return doc, nil
}

func (p *Processor) semanticInfo(doc *models.Document) models.SemanticInfo {
	info := models.SemanticInfo{WordCount: doc.WordCount}
	if doc.MainContent == "" {
		return info
	}

	info.SentenceCount = strings.Count(doc.MainContent, ".")
	info.ParagraphCount = strings.Count(doc.MainContent, "\n")
	if info.ParagraphCount < 1 {
		info.ParagraphCount = 1
	}
	info.ReadingTimeMinutes = float64(doc.WordCount) / 200.0
	if info.ReadingTimeMinutes < 1.0 {
		info.ReadingTimeMinutes = 1.0
	}
	if info.SentenceCount > 0 {
		info.AvgSentenceLength = float64(doc.WordCount) / float64(info.SentenceCount)
	}
	info.ContentDensity = float64(doc.WordCount) / float64(len(doc.MainContent))
	info.TechnicalScore = p.scorer.TechnicalScore(doc.MainContent)

	return info
}

// EmptyDocument returns the placeholder shape emitted alongside a fatal
// parse error so downstream consumers never special-case the failure.
func EmptyDocument() *models.Document {
	return &models.Document{}
}
