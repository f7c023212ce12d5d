package metadata

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/search-ingest/pkg/registry"
)

func newExtractor(t *testing.T, html, baseURL string) *Extractor {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return New(doc, registry.New(), baseURL)
}

func TestTitlePriority(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"og wins over everything",
			`<html><head>
				<meta property="og:title" content="A">
				<meta name="twitter:title" content="B">
				<title>C</title></head><body><h1>D</h1></body></html>`,
			"A",
		},
		{
			"twitter wins over title tag",
			`<html><head><meta name="twitter:title" content="B"><title>C</title></head></html>`,
			"B",
		},
		{
			"title tag wins over h1",
			`<html><head><title>C</title></head><body><h1>D</h1></body></html>`,
			"C",
		},
		{
			"h1 as last resort",
			`<html><body><h1>D</h1></body></html>`,
			"D",
		},
		{
			"nothing available",
			`<html><body><p>text</p></body></html>`,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newExtractor(t, tt.html, "https://example.com")
			if got := e.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeywordsNormalization(t *testing.T) {
	html := `<html><head>
		<meta name="keywords" content="Go, Testing, go, AI, ` + strings.Repeat("x", 40) + `, parsers">
	</head></html>`

	e := newExtractor(t, html, "https://example.com")
	got := e.Keywords(FullProfile, nil, 15)

	want := []string{"testing", "parsers"}
	if len(got) != len(want) {
		t.Fatalf("Keywords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keywords[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestKeywordsArticleTagsWin(t *testing.T) {
	html := `<html><head>
		<meta property="article:tag" content="Distributed Systems">
		<meta property="article:tag" content="Consensus">
		<meta name="keywords" content="should, not, be, used">
	</head></html>`

	e := newExtractor(t, html, "https://example.com")
	got := e.Keywords(FullProfile, nil, 15)
	if len(got) != 2 || got[0] != "distributed systems" || got[1] != "consensus" {
		t.Errorf("Keywords = %v, want article tags only", got)
	}
}

func TestKeywordsCap(t *testing.T) {
	parts := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot"}
	html := `<html><head><meta name="keywords" content="` + strings.Join(parts, ",") + `"></head></html>`

	e := newExtractor(t, html, "https://example.com")
	if got := e.Keywords(FullProfile, nil, 3); len(got) != 3 {
		t.Errorf("Keywords = %v, want capped at 3", got)
	}
}

func TestAuthorFallbacks(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"meta author",
			`<html><head><meta name="author" content="Jan Kowalski"></head></html>`,
			"Jan Kowalski",
		},
		{
			"json-ld author object",
			`<html><head><script type="application/ld+json">{"@type":"Article","author":{"name":"Maria Silva"}}</script></head></html>`,
			"Maria Silva",
		},
		{
			"json-ld author array",
			`<html><head><script type="application/ld+json">{"author":["First Person","Second Person"]}</script></head></html>`,
			"First Person",
		},
		{
			"byline selector",
			`<html><body><div class="byline"><span class="name">Casey Lee</span></div></body></html>`,
			"Casey Lee",
		},
		{
			"absent",
			`<html><body></body></html>`,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newExtractor(t, tt.html, "https://example.com")
			if got := e.Author(); got != tt.want {
				t.Errorf("Author() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDatesAreNormalized(t *testing.T) {
	html := `<html><head>
		<meta property="article:published_time" content="2025-08-22T15:05:20+00:00">
		<meta property="article:modified_time" content="garbage">
		<script type="application/ld+json">{"dateModified":"2025-08-23"}</script>
	</head></html>`

	e := newExtractor(t, html, "https://example.com")
	published, modified := e.Dates()

	if published != "2025-08-22T15:05:20Z" {
		t.Errorf("published = %q, want canonical UTC", published)
	}
	if modified != "2025-08-23T00:00:00Z" {
		t.Errorf("modified = %q, want the JSON-LD fallback", modified)
	}
}

func TestDatesFromTimeElement(t *testing.T) {
	html := `<html><body><time datetime="2025-08-22">August 22nd</time></body></html>`
	e := newExtractor(t, html, "https://example.com")
	published, _ := e.Dates()
	if published != "2025-08-22T00:00:00Z" {
		t.Errorf("published = %q, want date from <time>", published)
	}
}

func TestPrimaryImage(t *testing.T) {
	html := `<html><head><meta property="og:image" content="/img/cover.jpg"></head>
	<body><img src="/logo.png"><img src="/img/body.png" alt="diagram"></body></html>`

	e := newExtractor(t, html, "https://example.com/articles/one")
	img := e.PrimaryImage()
	if img == nil {
		t.Fatal("PrimaryImage() = nil, want og:image")
	}
	if img.Src != "https://example.com/img/cover.jpg" {
		t.Errorf("Src = %q, want resolved og:image", img.Src)
	}
}

func TestPrimaryImageSkipsLogos(t *testing.T) {
	html := `<html><body><img src="/assets/logo.png"><img src="/assets/photo.jpg" alt="street"></body></html>`
	e := newExtractor(t, html, "https://example.com")
	img := e.PrimaryImage()
	if img == nil || !strings.HasSuffix(img.Src, "/assets/photo.jpg") {
		t.Errorf("PrimaryImage() = %+v, want the non-logo image", img)
	}
	if img != nil && img.Alt != "street" {
		t.Errorf("Alt = %q, want the img alt text", img.Alt)
	}
}

func TestCanonicalURL(t *testing.T) {
	html := `<html><head><link rel="canonical" href="https://example.com/one"></head></html>`

	same := newExtractor(t, html, "https://example.com/one")
	if got := same.CanonicalURL(); got != "" {
		t.Errorf("CanonicalURL() = %q, want empty when identical to base", got)
	}

	diff := newExtractor(t, html, "https://example.com/one?ref=feed")
	if got := diff.CanonicalURL(); got != "https://example.com/one" {
		t.Errorf("CanonicalURL() = %q, want the link href", got)
	}
}

func TestContentType(t *testing.T) {
	jsonLD := `<html><head><script type="application/ld+json">{"@type":"NewsArticle"}</script></head></html>`
	e := newExtractor(t, jsonLD, "https://example.com")
	if got := e.ContentType("https://example.com", "t", "d"); got != "newsarticle" {
		t.Errorf("ContentType = %q, want the JSON-LD @type", got)
	}

	empty := `<html><body></body></html>`
	tests := []struct {
		name  string
		url   string
		title string
		desc  string
		want  string
	}{
		{"faq", "https://example.com", "Frequently asked question list", "", "faq"},
		{"product", "https://example.com", "Best price on widgets", "", "product"},
		{"video", "https://example.com/video/123", "Clip", "", "video"},
		{"recipe", "https://example.com", "Weeknight dinner", "simple ingredients you have", "recipe"},
		{"blog via url", "https://example.com/blog/entry", "Plain writing", "", "blog"},
		{"default", "https://example.com/page", "Quarterly results", "", "article"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newExtractor(t, empty, tt.url)
			if got := e.ContentType(tt.url, tt.title, tt.desc); got != tt.want {
				t.Errorf("ContentType = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	e := newExtractor(t, `<html><body></body></html>`, "https://example.com")

	sporty := "The football match ended with a late goal. The league table now puts the team at the top before the championship playoff."
	got := e.Categories(sporty, 3)
	if len(got) == 0 || got[0] != "sports" {
		t.Errorf("Categories = %v, want sports first", got)
	}
	if len(got) > 3 {
		t.Errorf("Categories = %v, want at most 3", got)
	}

	if got := e.Categories("", 3); got != nil {
		t.Errorf("Categories(empty) = %v, want nil", got)
	}
}

func TestStructuredMeta(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
		{"@type":"Article","datePublished":"2025-08-22T15:05:20+00:00","publisher":{"name":"The Daily"},"image":"https://cdn.example.com/x.jpg"}
	</script></head></html>`

	e := newExtractor(t, html, "https://example.com")
	meta := e.StructuredMeta()
	if meta == nil {
		t.Fatal("StructuredMeta() = nil, want populated summary")
	}
	if meta.ArticleType != "Article" {
		t.Errorf("ArticleType = %q, want Article", meta.ArticleType)
	}
	if meta.DatePublished != "2025-08-22T15:05:20Z" {
		t.Errorf("DatePublished = %q, want canonical form", meta.DatePublished)
	}
	if meta.PublisherName != "The Daily" {
		t.Errorf("PublisherName = %q, want The Daily", meta.PublisherName)
	}

	if got := newExtractor(t, `<html></html>`, "https://example.com").StructuredMeta(); got != nil {
		t.Errorf("StructuredMeta() = %+v, want nil without JSON-LD", got)
	}
}

func TestBrokenJSONLDIsSkipped(t *testing.T) {
	html := `<html><head>
		<script type="application/ld+json">{not valid json</script>
		<script type="application/ld+json">{"@type":"Recipe"}</script>
	</head></html>`

	e := newExtractor(t, html, "https://example.com")
	meta := e.StructuredMeta()
	if meta == nil || meta.ArticleType != "Recipe" {
		t.Errorf("StructuredMeta = %+v, want the valid block only", meta)
	}
}
