// Package content isolates the main-content region of a parsed page and
// returns denoised plain text plus its headings. Location runs down an
// ordered selector list; extraction is a pruning walk over the node tree
// that discards site chrome by tag name and class/id tokens.
package content

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"

	"github.com/dtnitsch/search-ingest/models"
)

// contentSelectors is the location priority: semantic containers, then
// CMS-specific classes, then generic wrappers. The first match whose
// pruned text exceeds the minimum length wins.
var contentSelectors = []string{
	"main", "article", "[role='main']",
	".content", ".post-content", ".entry-content", "#content",
	".article-body", ".post-body", ".article-text", ".main-content",
	".page-content", ".content-wrapper", ".story-content",
	".article-wrapper", ".text-content",
}

// noiseTags root subtrees that never contain body prose.
var noiseTags = map[string]struct{}{
	"script": {}, "style": {}, "noscript": {}, "nav": {}, "header": {},
	"footer": {}, "aside": {}, "menu": {}, "menuitem": {}, "figure": {},
	"figcaption": {}, "button": {}, "input": {}, "select": {},
	"textarea": {}, "form": {}, "iframe": {},
}

// noiseTokens prune subtrees whose class or id marks them as chrome.
var noiseTokens = []string{
	"nav", "menu", "sidebar", "footer", "header", "ad", "popup", "banner",
}

// minTextFragment drops isolated short text nodes (stray punctuation,
// single interface tokens) during the walk.
const minTextFragment = 20

// maxHeadingLength filters out headline-sized blobs misusing h tags.
const maxHeadingLength = 200

// Extractor locates and extracts main content. Safe for concurrent use.
type Extractor struct {
	minContentLength int
}

// New returns an extractor that accepts a content region only when its
// pruned text exceeds minContentLength bytes.
func New(minContentLength int) *Extractor {
	return &Extractor{minContentLength: minContentLength}
}

// MainContent returns the cleaned text of the page's main-content region.
// Priority selectors are tried first; when none yields enough text a
// readability pass runs over the raw markup, and the pruned <body> walk
// is the last resort.
func (e *Extractor) MainContent(doc *goquery.Document, rawHTML, baseURL string) string {
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if len(sel.Nodes) == 0 {
			continue
		}
		text := collectText(sel.Nodes[0])
		if len(strings.TrimSpace(text)) > e.minContentLength {
			return normalize(text)
		}
	}

	// Recovery pass: let readability carve out an article region before
	// falling back to the whole body.
	if text := e.readabilityContent(rawHTML, baseURL); text != "" {
		return text
	}

	body := doc.Find("body").First()
	if len(body.Nodes) == 0 {
		return ""
	}
	return normalize(collectText(body.Nodes[0]))
}

func (e *Extractor) readabilityContent(rawHTML, baseURL string) string {
	pageURL, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return ""
	}
	text := normalize(article.TextContent)
	if len(text) <= e.minContentLength {
		return ""
	}
	return text
}

// Headings collects h1..h6 text, level by level, skipping empty and
// oversized entries.
func (e *Extractor) Headings(doc *goquery.Document) []models.Heading {
	var headings []models.Heading
	for level := 1; level <= 6; level++ {
		doc.Find(fmt.Sprintf("h%d", level)).Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if text != "" && len(text) < maxHeadingLength {
				headings = append(headings, models.Heading{Level: level, Text: text})
			}
		})
	}
	return headings
}

// collectText is the recursive pruning walk. Every node kind is handled
// explicitly; nothing falls through a silent default.
func collectText(node *html.Node) string {
	switch node.Type {
	case html.ElementNode:
		tag := strings.ToLower(node.Data)
		if _, noisy := noiseTags[tag]; noisy {
			return ""
		}
		if hasNoiseAttr(node) {
			return ""
		}
		var b strings.Builder
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if text := collectText(child); text != "" {
				b.WriteString(text)
				b.WriteByte(' ')
			}
		}
		return b.String()

	case html.TextNode:
		text := strings.NewReplacer("​", "", "\n", " ", "\r", " ").Replace(node.Data)
		text = strings.TrimSpace(text)
		if len(text) <= minTextFragment {
			return ""
		}
		return text

	case html.DocumentNode:
		var b strings.Builder
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if text := collectText(child); text != "" {
				b.WriteString(text)
				b.WriteByte(' ')
			}
		}
		return b.String()

	case html.CommentNode, html.DoctypeNode, html.ErrorNode, html.RawNode:
		return ""
	}
	return ""
}

// hasNoiseAttr reports whether the element's class or id carries a chrome
// token such as nav, sidebar, or ad.
func hasNoiseAttr(node *html.Node) bool {
	for _, attr := range node.Attr {
		if attr.Key != "class" && attr.Key != "id" {
			continue
		}
		val := strings.ToLower(attr.Val)
		for _, token := range noiseTokens {
			if strings.Contains(val, token) {
				return true
			}
		}
	}
	return false
}

func normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
