package models

// Document is the normalized, search-indexable record produced for a single
// page. It is built once by the processor and never mutated afterwards; the
// downstream indexer consumes it as-is.
type Document struct {
	// Core content
	MainContent string   `json:"main_content" yaml:"main_content"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Language    string   `json:"language" yaml:"language"`
	Keywords    []string `json:"keywords" yaml:"keywords"`

	// Content structure
	Headings []Heading `json:"headings" yaml:"headings"`

	// Media and links
	PrimaryImage *ImageInfo `json:"primary_image,omitempty" yaml:"primary_image,omitempty"`
	Favicon      string     `json:"favicon,omitempty" yaml:"favicon,omitempty"`

	// CanonicalURL is set only when the page declares a canonical location
	// different from the URL it was fetched from.
	CanonicalURL string `json:"canonical_url,omitempty" yaml:"canonical_url,omitempty"`

	// Dates are canonical UTC ISO-8601 ("2006-01-02T15:04:05Z") or empty.
	// An unparsable source date leaves the field empty, never a raw string.
	PublishedDate string `json:"published_date,omitempty" yaml:"published_date,omitempty"`
	ModifiedDate  string `json:"modified_date,omitempty" yaml:"modified_date,omitempty"`

	AuthorName     string          `json:"author_name,omitempty" yaml:"author_name,omitempty"`
	StructuredMeta *StructuredMeta `json:"structured_meta,omitempty" yaml:"structured_meta,omitempty"`

	// Classification
	ContentType       string   `json:"content_type" yaml:"content_type"`
	ContentCategories []string `json:"content_categories" yaml:"content_categories"`

	// Analysis
	WordCount           int          `json:"word_count" yaml:"word_count"`
	ContentQualityScore float64      `json:"content_quality_score" yaml:"content_quality_score"`
	DomainScore         float64      `json:"domain_score" yaml:"domain_score"`
	IsTechnicalContent  bool         `json:"is_technical_content" yaml:"is_technical_content"`
	SemanticInfo        SemanticInfo `json:"semantic_info" yaml:"semantic_info"`

	// Indexing units
	TextChunksWithContext []ChunkWithContext `json:"text_chunks_with_context" yaml:"text_chunks_with_context"`
}

// Heading is a section heading retained for chunk context tagging.
type Heading struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// ImageInfo describes the page's primary/featured image.
type ImageInfo struct {
	Src string `json:"src" yaml:"src"`
	Alt string `json:"alt" yaml:"alt"`
}

// StructuredMeta is the condensed summary of the page's JSON-LD blocks.
// Date fields are canonical-or-absent, same contract as the Document dates.
type StructuredMeta struct {
	ArticleType   string `json:"article_type,omitempty" yaml:"article_type,omitempty"`
	FeaturedImage string `json:"featured_image,omitempty" yaml:"featured_image,omitempty"`
	DatePublished string `json:"date_published,omitempty" yaml:"date_published,omitempty"`
	DateModified  string `json:"date_modified,omitempty" yaml:"date_modified,omitempty"`
	PublisherName string `json:"publisher_name,omitempty" yaml:"publisher_name,omitempty"`
}

// IsEmpty reports whether no JSON-LD block contributed anything useful.
func (s *StructuredMeta) IsEmpty() bool {
	return s == nil || (s.ArticleType == "" && s.FeaturedImage == "" &&
		s.DatePublished == "" && s.DateModified == "" && s.PublisherName == "")
}

// SemanticInfo carries derived text statistics for ranking signals.
type SemanticInfo struct {
	WordCount          int     `json:"word_count" yaml:"word_count"`
	SentenceCount      int     `json:"sentence_count" yaml:"sentence_count"`
	ParagraphCount     int     `json:"paragraph_count" yaml:"paragraph_count"`
	ReadingTimeMinutes float64 `json:"reading_time_minutes" yaml:"reading_time_minutes"`
	TechnicalScore     float64 `json:"technical_score" yaml:"technical_score"`
	AvgSentenceLength  float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`
	ContentDensity     float64 `json:"content_density" yaml:"content_density"`
}

// ChunkWithContext is one indexing unit: a size-bounded slice of cleaned
// body text tagged with up to three headings it likely falls under.
type ChunkWithContext struct {
	TextChunk        string   `json:"text_chunk" yaml:"text_chunk"`
	RelevantHeadings []string `json:"relevant_headings" yaml:"relevant_headings"`
	ChunkIndex       int      `json:"chunk_index" yaml:"chunk_index"`
}

// Tombstone clears body content while keeping all metadata. Used when a
// page fails the English admission filter: downstream stages still see a
// consistently shaped record.
func (d *Document) Tombstone() {
	d.MainContent = ""
	d.TextChunksWithContext = nil
	d.WordCount = 0
}
