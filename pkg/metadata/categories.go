package metadata

import (
	"sort"
	"strings"
	"sync"

	"github.com/kljensen/snowball"

	"github.com/dtnitsch/search-ingest/pkg/registry"
)

// stemmedDict is a topical dictionary with every keyword reduced to its
// Porter stem, so matching happens stem-to-stem regardless of inflection.
type stemmedDict struct {
	name  string
	stems map[string]struct{}
}

var (
	stemmedDictsOnce sync.Once
	stemmedDicts     []stemmedDict
)

func stem(word string) string {
	stemmed, err := snowball.Stem(word, "english", false)
	if err != nil || stemmed == "" {
		return word
	}
	return stemmed
}

// stemPhrase stems each word of a dictionary entry, preserving multi-word
// entries as space-joined stem bigrams.
func stemPhrase(phrase string) string {
	words := strings.Fields(phrase)
	for i, w := range words {
		words[i] = stem(w)
	}
	return strings.Join(words, " ")
}

func categoryDicts() []stemmedDict {
	stemmedDictsOnce.Do(func() {
		for _, dict := range registry.CategoryDicts {
			stems := make(map[string]struct{}, len(dict.Keywords))
			for _, kw := range dict.Keywords {
				stems[stemPhrase(kw)] = struct{}{}
			}
			stemmedDicts = append(stemmedDicts, stemmedDict{name: dict.Name, stems: stems})
		}
	})
	return stemmedDicts
}

// Categories scores the body text against ten fixed topical dictionaries
// and returns up to max categories with a nonzero score, highest first.
// Ties keep the dictionaries' declaration order.
func (e *Extractor) Categories(content string, max int) []string {
	tokens := e.reg.WordToken.FindAllString(strings.ToLower(content), -1)
	if len(tokens) == 0 {
		return nil
	}

	// Unigram stems plus bigrams of adjacent non-stopword tokens.
	ngrams := make(map[string]struct{}, len(tokens)*2)
	for i, token := range tokens {
		if registry.IsStopword(token) {
			continue
		}
		stemmed := stem(token)
		ngrams[stemmed] = struct{}{}
		if i+1 < len(tokens) && !registry.IsStopword(tokens[i+1]) {
			ngrams[stemmed+" "+stem(tokens[i+1])] = struct{}{}
		}
	}

	type scored struct {
		name  string
		count int
	}
	var hits []scored
	for _, dict := range categoryDicts() {
		count := 0
		for s := range dict.stems {
			if _, ok := ngrams[s]; ok {
				count++
			}
		}
		if count > 0 {
			hits = append(hits, scored{name: dict.name, count: count})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].count > hits[j].count })

	if len(hits) > max {
		hits = hits[:max]
	}
	categories := make([]string, 0, len(hits))
	for _, h := range hits {
		categories = append(categories, h.name)
	}
	return categories
}
