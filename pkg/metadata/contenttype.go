package metadata

import "strings"

// ContentType classifies the page into a coarse bucket. A JSON-LD @type
// wins outright; otherwise fixed keyword groups are checked against the
// title and description (plus the URL for video and blog signals) in
// priority order, defaulting to "article".
func (e *Extractor) ContentType(rawURL, title, description string) string {
	for _, obj := range e.jsonLD {
		if t, ok := obj["@type"].(string); ok && t != "" {
			return strings.ToLower(t)
		}
	}

	text := strings.ToLower(title + " " + description)
	url := strings.ToLower(rawURL)

	switch {
	case containsAny(text, "faq", "question", "answer", "help"):
		return "faq"
	case containsAny(text, "buy", "price", "product", "cart", "shop", "add to basket"):
		return "product"
	case containsAny(text, "video", "watch", "youtube") || strings.Contains(url, "video"):
		return "video"
	case containsAny(text, "recipe", "ingredients", "cook", "servings"):
		return "recipe"
	case containsAny(text, "review", "rating", "stars"):
		return "review"
	case containsAny(url, "blog", "news", "post") ||
		containsAny(text, "blog", "news", "article", "post", "journal", "press", "update", "editorial"):
		return "blog"
	default:
		return "article"
	}
}

func containsAny(s string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
