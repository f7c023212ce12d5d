// Package metadata extracts page metadata with prioritized multi-source
// fallbacks: OpenGraph and Twitter cards, standard meta tags, JSON-LD
// blocks, and finally CSS-selector heuristics. For every field the first
// non-empty validated candidate wins; later sources are never consulted.
package metadata

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/search-ingest/models"
	"github.com/dtnitsch/search-ingest/pkg/dates"
	"github.com/dtnitsch/search-ingest/pkg/registry"
)

// Profile selects which derived fields the extractor computes. The one
// extractor replaces the historical full/optimized pair; a reduced
// profile skips the expensive analyses instead of maintaining a second
// code path.
type Profile struct {
	ContentType     bool
	Categories      bool
	KeywordFallback bool
	StructuredMeta  bool
}

// FullProfile computes everything; MinimalProfile covers only the
// direct-lookup fields.
var (
	FullProfile    = Profile{ContentType: true, Categories: true, KeywordFallback: true, StructuredMeta: true}
	MinimalProfile = Profile{}
)

const maxAuthorRunes = 100

var (
	publishedMetaKeys = []string{"article:published_time", "datePublished", "date"}
	modifiedMetaKeys  = []string{"article:modified_time", "dateModified", "lastmod"}
	authorMetaKeys    = []string{"author", "article:author"}
	authorSelectors   = []string{".author-name", ".author", "[data-author]", ".byline .name"}
)

// Extractor holds the pre-collected metadata sources for one page.
type Extractor struct {
	doc     *goquery.Document
	reg     *registry.Registry
	baseURL string

	metaMap map[string]string
	jsonLD  []map[string]any
	title   string
	h1      string
}

// New collects meta tags, JSON-LD blocks, and the title/h1 pair in one
// pass over the parsed tree.
func New(doc *goquery.Document, reg *registry.Registry, baseURL string) *Extractor {
	e := &Extractor{
		doc:     doc,
		reg:     reg,
		baseURL: baseURL,
		metaMap: make(map[string]string),
	}

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		key, ok := s.Attr("property")
		if !ok || key == "" {
			key, _ = s.Attr("name")
		}
		content, _ := s.Attr("content")
		if key != "" && content != "" {
			e.metaMap[key] = content
		}
	})

	// A block that fails to parse is skipped, never fatal.
	doc.Find("script[type*='ld+json']").Each(func(_ int, s *goquery.Selection) {
		var value any
		if err := json.Unmarshal([]byte(s.Text()), &value); err != nil {
			return
		}
		if obj, ok := value.(map[string]any); ok {
			e.jsonLD = append(e.jsonLD, obj)
		}
	})

	e.title = strings.TrimSpace(doc.Find("title").First().Text())
	e.h1 = strings.TrimSpace(doc.Find("h1").First().Text())

	return e
}

// Title priority: og:title, twitter:title, <title>, first <h1>.
func (e *Extractor) Title() string {
	for _, candidate := range []string{e.metaMap["og:title"], e.metaMap["twitter:title"], e.title, e.h1} {
		if t := strings.TrimSpace(candidate); t != "" {
			return t
		}
	}
	return ""
}

// Description priority: og:description, twitter:description, description.
func (e *Extractor) Description() string {
	for _, candidate := range []string{e.metaMap["og:description"], e.metaMap["twitter:description"], e.metaMap["description"]} {
		if d := strings.TrimSpace(candidate); d != "" {
			return d
		}
	}
	return ""
}

// Keywords gathers article:tag properties, falling back to the legacy
// keywords meta tag, then to frequency extraction over the body text when
// the profile allows it. Results are case-folded, deduplicated, bounded
// to 3..30 characters, and capped.
func (e *Extractor) Keywords(profile Profile, fallback func() []string, max int) []string {
	var raw []string

	e.doc.Find("meta[property='article:tag']").Each(func(_ int, s *goquery.Selection) {
		if content, ok := s.Attr("content"); ok {
			raw = append(raw, content)
		}
	})

	if len(raw) == 0 {
		if kw, ok := e.metaMap["keywords"]; ok {
			raw = append(raw, strings.Split(kw, ",")...)
		}
	}

	if len(raw) == 0 && profile.KeywordFallback && fallback != nil {
		raw = fallback()
	}

	seen := make(map[string]struct{})
	var keywords []string
	for _, k := range raw {
		k = strings.ToLower(strings.TrimSpace(k))
		n := utf8.RuneCountInString(k)
		if n < 3 || n > 30 {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keywords = append(keywords, k)
		if len(keywords) >= max {
			break
		}
	}
	return keywords
}

// Author priority: allow-listed meta tags, JSON-LD author then publisher,
// byline selectors. The result is truncated to 100 codepoints.
func (e *Extractor) Author() string {
	for _, key := range authorMetaKeys {
		if author := strings.TrimSpace(e.metaMap[key]); author != "" {
			return truncateRunes(author, maxAuthorRunes)
		}
	}

	for _, obj := range e.jsonLD {
		for _, field := range []string{"author", "publisher"} {
			if val, ok := obj[field]; ok {
				if name := strings.TrimSpace(nameFromValue(val)); name != "" {
					return truncateRunes(name, maxAuthorRunes)
				}
			}
		}
	}

	for _, selector := range authorSelectors {
		sel := e.doc.Find(selector).First()
		if len(sel.Nodes) == 0 {
			continue
		}
		author := strings.TrimSpace(sel.Text())
		if author != "" && utf8.RuneCountInString(author) < maxAuthorRunes {
			return author
		}
	}

	return ""
}

// nameFromValue resolves a JSON-LD person/organization value: a bare
// string, an object's name field, or the first element of an array.
func nameFromValue(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case map[string]any:
		if name, ok := v["name"].(string); ok {
			return name
		}
	case []any:
		if len(v) > 0 {
			return nameFromValue(v[0])
		}
	}
	return ""
}

// Dates returns the published and modified timestamps. Every candidate
// passes through the date normalizer; a candidate that fails to normalize
// is dropped and the next source is consulted.
func (e *Extractor) Dates() (published, modified string) {
	published = e.firstnormalized(publishedMetaKeys)
	modified = e.firstnormalizedMod()

	for _, obj := range e.jsonLD {
		if published == "" {
			if s, ok := obj["datePublished"].(string); ok {
				if normalized, ok := dates.Normalize(s); ok {
					published = normalized
				}
			}
		}
		if modified == "" {
			if s, ok := obj["dateModified"].(string); ok {
				if normalized, ok := dates.Normalize(s); ok {
					modified = normalized
				}
			}
		}
	}

	if published == "" {
		e.doc.Find("time").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			candidate, ok := s.Attr("datetime")
			if !ok || candidate == "" {
				candidate = strings.TrimSpace(s.Text())
			}
			if normalized, ok := dates.Normalize(candidate); ok {
				published = normalized
				return false
			}
			return true
		})
	}

	return published, modified
}

func (e *Extractor) firstnormalized(keys []string) string {
	for _, key := range keys {
		if candidate, ok := e.metaMap[key]; ok {
			if normalized, ok := dates.Normalize(candidate); ok {
				return normalized
			}
		}
	}
	return ""
}

func (e *Extractor) firstnormalizedMod() string {
	return e.firstnormalized(modifiedMetaKeys)
}

// PrimaryImage priority: JSON-LD image, og:image, first <img> whose src
// is not an icon, logo, or favicon. URLs are resolved against the base.
func (e *Extractor) PrimaryImage() *models.ImageInfo {
	for _, obj := range e.jsonLD {
		if val, ok := obj["image"]; ok {
			if src := imageURLFromValue(val); src != "" {
				return &models.ImageInfo{Src: e.resolveURL(src), Alt: "Featured image"}
			}
		}
	}

	if og, ok := e.metaMap["og:image"]; ok && og != "" {
		return &models.ImageInfo{Src: e.resolveURL(og), Alt: "Featured image"}
	}

	var image *models.ImageInfo
	e.doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		if src == "" || strings.Contains(src, "icon") || strings.Contains(src, "logo") || strings.Contains(src, "favicon") {
			return true
		}
		alt, _ := s.Attr("alt")
		image = &models.ImageInfo{Src: e.resolveURL(src), Alt: alt}
		return false
	})
	return image
}

func imageURLFromValue(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case map[string]any:
		if u, ok := v["url"].(string); ok {
			return u
		}
	}
	return ""
}

// Favicon returns the first <link> whose rel mentions icon.
func (e *Extractor) Favicon() string {
	var favicon string
	e.doc.Find("link[rel]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		rel, _ := s.Attr("rel")
		if !strings.Contains(strings.ToLower(rel), "icon") {
			return true
		}
		if href, ok := s.Attr("href"); ok && href != "" {
			favicon = e.resolveURL(href)
			return false
		}
		return true
	})
	return favicon
}

// CanonicalURL is reported only when it differs from the supplied base.
func (e *Extractor) CanonicalURL() string {
	href, ok := e.doc.Find("link[rel='canonical']").First().Attr("href")
	if !ok || href == "" || href == e.baseURL {
		return ""
	}
	return href
}

// StructuredMeta condenses the page's JSON-LD blocks. Date fields are
// normalized-or-absent like every other date in the document.
func (e *Extractor) StructuredMeta() *models.StructuredMeta {
	meta := &models.StructuredMeta{}

	for _, obj := range e.jsonLD {
		if meta.ArticleType == "" {
			if t, ok := obj["@type"].(string); ok {
				meta.ArticleType = t
			}
		}
		if meta.FeaturedImage == "" {
			if val, ok := obj["image"]; ok {
				meta.FeaturedImage = imageURLFromValue(val)
			}
		}
		if meta.PublisherName == "" {
			if val, ok := obj["publisher"]; ok {
				meta.PublisherName = nameFromValue(val)
			}
		}
		if meta.DatePublished == "" {
			if s, ok := obj["datePublished"].(string); ok {
				if normalized, ok := dates.Normalize(s); ok {
					meta.DatePublished = normalized
				}
			}
		}
		if meta.DateModified == "" {
			if s, ok := obj["dateModified"].(string); ok {
				if normalized, ok := dates.Normalize(s); ok {
					meta.DateModified = normalized
				}
			}
		}
	}

	if meta.IsEmpty() {
		return nil
	}
	return meta
}

// resolveURL resolves a possibly relative reference against the base URL.
func (e *Extractor) resolveURL(ref string) string {
	switch {
	case strings.HasPrefix(ref, "http"):
		return ref
	case strings.HasPrefix(ref, "//"):
		return "https:" + ref
	case strings.HasPrefix(ref, "/"):
		if origin := urlOrigin(e.baseURL); origin != "" {
			return origin + ref
		}
		return ref
	default:
		return strings.TrimSuffix(e.baseURL, "/") + "/" + ref
	}
}

func urlOrigin(rawURL string) string {
	idx := strings.Index(rawURL, "://")
	if idx < 0 {
		return ""
	}
	rest := rawURL[idx+3:]
	if slash := strings.Index(rest, "/"); slash >= 0 {
		rest = rest[:slash]
	}
	if rest == "" {
		return ""
	}
	return rawURL[:idx+3] + rest
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
