package registry

import "strings"

// stopwords are skipped during keyword extraction and category stemming.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "almost": {}, "also": {}, "although": {}, "always": {}, "am": {},
	"among": {}, "an": {}, "and": {}, "another": {}, "any": {}, "are": {},
	"around": {}, "as": {}, "at": {},

	"back": {}, "be": {}, "because": {}, "been": {}, "before": {}, "behind": {},
	"being": {}, "below": {}, "beside": {}, "between": {}, "beyond": {},
	"both": {}, "but": {}, "by": {},

	"can": {}, "cannot": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "doing": {}, "done": {}, "down": {},
	"during": {},

	"each": {}, "either": {}, "else": {}, "enough": {}, "etc": {}, "even": {},
	"ever": {}, "every": {}, "everything": {},

	"few": {}, "first": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "him": {}, "his": {}, "how": {}, "however": {},

	"i": {}, "if": {}, "in": {}, "indeed": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "itself": {},

	"just": {},

	"last": {}, "least": {}, "less": {}, "like": {},

	"made": {}, "make": {}, "many": {}, "may": {}, "maybe": {}, "me": {},
	"might": {}, "more": {}, "most": {}, "much": {}, "must": {}, "my": {},

	"neither": {}, "never": {}, "next": {}, "no": {}, "nobody": {}, "none": {},
	"nor": {}, "not": {}, "nothing": {}, "now": {},

	"of": {}, "off": {}, "often": {}, "on": {}, "once": {}, "one": {},
	"only": {}, "onto": {}, "or": {}, "other": {}, "our": {}, "ours": {},
	"out": {}, "over": {}, "own": {},

	"per": {}, "perhaps": {},

	"rather": {},

	"same": {}, "second": {}, "several": {}, "shall": {}, "she": {},
	"should": {}, "since": {}, "so": {}, "some": {}, "something": {},
	"sometimes": {}, "still": {}, "such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {}, "them": {},
	"then": {}, "there": {}, "therefore": {}, "these": {}, "they": {},
	"this": {}, "those": {}, "through": {}, "thus": {}, "to": {},
	"together": {}, "too": {}, "toward": {}, "towards": {}, "two": {},
	"three": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "use": {},

	"very": {}, "via": {},

	"was": {}, "we": {}, "well": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "whether": {}, "which": {}, "while": {}, "who": {},
	"whose": {}, "why": {}, "will": {}, "with": {}, "within": {},
	"without": {}, "would": {},

	"yet": {}, "you": {}, "your": {}, "yours": {},
}

// IsStopword reports whether a word should be ignored in keyword and
// category analysis.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

// techKeywordAlternation feeds the compiled technical-content pattern.
var techKeywordAlternation = strings.Join([]string{
	"api", "function", "class", "method", "algorithm", "code", "software",
	"programming", "development", "technology", "technical", "system",
	"framework", "library", "database", "server", "client", "frontend",
	"backend", "compiler", "interpreter", "object", "variable", "loop",
	"array", "string", "boolean", "integer", "pointer", "recursion",
	"stack", "queue", "tree", "graph", "hash", "encryption", "protocol",
	"network", "cloud", "container", "docker", "kubernetes", "git",
	"repository", "branch", "merge", "commit", "debug", "exception",
	"error", "log", "performance", "optimization", "testing", "endpoint",
	"request", "response", "json", "xml", "yaml", "html", "css",
	"javascript", "typescript", "python", "java", "ruby", "php", "sql",
	"nosql", "mongodb", "postgresql", "mysql", "data", "machine-learning",
	"ai", "deep-learning", "neural-network", "automation", "script",
	"shell", "bash", "devops", "security", "authentication", "token",
	"session", "cookie", "ssl", "tls", "http", "https", "rest", "graphql",
	"websocket", "middleware", "architecture", "microservice", "thread",
	"process", "concurrency", "asynchronous", "callback", "promise",
	"lambda", "cache", "cdn", "scalability", "replication", "cluster",
	"sharding", "indexing", "query", "latency", "throughput", "serverless",
	"monitoring", "logging", "tracing", "refactoring", "linting", "sdk",
	"ide", "terminal", "cli", "crud", "orm", "mvc", "oop", "etl", "kafka",
	"hadoop", "spark", "streaming", "map-reduce",
}, "|")

// DomainScores is the authority table: exact domains score directly, keys
// starting with "." match as TLD suffixes. Unlisted domains score 0.3.
var DomainScores = map[string]float64{
	// High authority
	"wikipedia.org":           0.9,
	"github.com":              0.85,
	"stackoverflow.com":       0.8,
	"arxiv.org":               0.85,
	"nature.com":              0.9,
	"science.org":             0.9,
	"pubmed.ncbi.nlm.nih.gov": 0.85,
	// Education and government
	".edu":   0.8,
	".ac.uk": 0.8,
	".gov":   0.75,
	".mil":   0.7,
	// News
	"reuters.com": 0.8,
	"bbc.com":     0.8,
	"cnn.com":     0.7,
	"npr.org":     0.75,
	// Tech press
	"techcrunch.com":  0.7,
	"arstechnica.com": 0.75,
	"wired.com":       0.7,
	// Generic TLDs
	".org":  0.6,
	".com":  0.5,
	".net":  0.45,
	".info": 0.4,
	".biz":  0.35,
}

// CategoryDict pairs a topical category with its keyword stems. Declaration
// order breaks score ties.
type CategoryDict struct {
	Name     string
	Keywords []string
}

// CategoryDicts are matched against the stemmed unigram/bigram set of the
// body text; up to three categories with nonzero counts are reported.
var CategoryDicts = []CategoryDict{
	{"news", []string{
		"news", "breaking", "update", "report", "headline", "journal",
		"media", "press", "announcement", "current", "daily news",
		"broadcast", "bulletin", "article", "coverage",
	}},
	{"sports", []string{
		"football", "soccer", "basketball", "tennis", "cricket", "match",
		"tournament", "goal", "score", "league", "athlete", "olympics",
		"championship", "competition", "playoff", "coach", "team", "game",
		"player",
	}},
	{"finance", []string{
		"stocks", "market", "investment", "finance", "economy", "bitcoin",
		"trading", "crypto", "banking", "fund", "portfolio", "mutual fund",
		"currency", "inflation", "deficit", "revenue", "capital",
		"dividend", "savings", "insurance",
	}},
	{"health", []string{
		"health", "medicine", "wellness", "fitness", "disease", "nutrition",
		"exercise", "mental health", "medical", "therapy", "diet",
		"treatment", "hospital", "doctor", "clinic", "vaccine", "infection",
		"immune", "prevention", "rehabilitation",
	}},
	{"entertainment", []string{
		"movie", "film", "tv", "music", "celebrity", "show", "concert",
		"series", "album", "entertainment", "theater", "drama", "comedy",
		"festival", "artist", "actor", "actress", "performance",
	}},
	{"science", []string{
		"research", "experiment", "physics", "chemistry", "biology",
		"scientist", "study", "discovery", "laboratory", "theory",
		"analysis", "observation", "scientific", "innovation", "space",
		"astronomy", "genetics", "geology", "climate",
	}},
	{"travel", []string{
		"travel", "tourism", "destination", "flight", "hotel", "journey",
		"adventure", "trip", "vacation", "holiday", "explore",
		"sightseeing", "cruise", "itinerary", "backpacking", "resort",
		"beach", "mountain", "transportation",
	}},
	{"food", []string{
		"food", "cuisine", "recipe", "dish", "restaurant", "meal", "dining",
		"chef", "ingredient", "gourmet", "taste", "baking", "cooking",
		"snack", "drink", "beverage", "dessert", "vegan", "organic",
	}},
	{"fashion", []string{
		"fashion", "style", "clothing", "apparel", "designer", "trend",
		"runway", "collection", "brand", "outfit", "accessory", "model",
		"vogue", "couture", "textile", "footwear", "jewelry", "cosmetics",
		"makeup",
	}},
	{"education", []string{
		"education", "learning", "school", "college", "university",
		"course", "student", "teacher", "lecture", "curriculum", "study",
		"training", "knowledge", "academy", "classroom", "exam",
		"scholarship", "tutorial", "online course", "degree",
	}},
}

// InterfaceNoisePhrases are wiki/CMS interface vocabulary; a chunk whose
// text is dominated by them is rejected.
var InterfaceNoisePhrases = []string{
	"diffhist", "talk contribs", "mobile edit", "visual edit",
	"android app", "ios app", "hidden tag", "wikiedu", "dashboard",
	"assignment wizard", "wikiloop", "battlefield", "user creation",
	"account", "antivandal", "rollback", "manual revert", "tag filter",
	"namespace", "template", "category", "portal", "module",
	"invert selection", "recent changes", "options", "hide", "show",
	"edit filter", "cleanup", "vandalism", "deletion", "backlogs",
	"village pump", "mailing lists", "signpost",
}

// WikiResidualPhrases mark chunks carrying MediaWiki chrome that survived
// DOM pruning.
var WikiResidualPhrases = []string{
	"vtePart of", "vteReligions", "Retrieved from", "Hidden categories:",
	"Articles with", "Pages with", "Webarchive template",
	"Commons category",
}

// CSSTokens identify stylesheet text mistakenly extracted as content.
var CSSTokens = []string{
	".mw-parser-output", "navbox", "display:", "margin:", "padding:",
	"font-weight:", "background-color:", "border:", "content:", "::after",
	"::before", ".hlist", "box-sizing:", "line-height:", "text-align:",
	"white-space:", "border-color:", "border-left:", "border-top:",
	"float:", "max-width:", "@media", "counter-reset:",
	"counter-increment:",
}

// JSONFragments are structured-data key remnants that signal a chunk of
// raw embedded JSON rather than prose.
var JSONFragments = []string{
	`"type":`, `"href":`, `"title":`, `"class":`, `"id":`, `"style":`,
}

// NavPhrases are boilerplate link texts; chunks that are mostly these are
// navigation, not content.
var NavPhrases = []string{
	"click here", "read more", "learn more", "view all", "home page",
	"contact us", "about us", "privacy policy",
}

// CommonFunctionWords gate chunk acceptance: genuine English prose
// contains at least one of these.
var CommonFunctionWords = []string{
	"the", "and", "or", "but", "in", "on", "at", "to", "for", "of",
	"with", "by", "a", "an", "is", "are", "was", "were", "this", "that",
}

// Scorer keyword tables.
var (
	EducationalStrong = []string{"tutorial", "guide", "documentation", "manual", "reference", "api", "how-to"}
	EducationalMedium = []string{"example", "demo", "introduction", "overview", "basics", "fundamentals"}
	EducationalWeak   = []string{"blog", "news", "announcement", "release"}

	QualityPositive = []string{"detailed", "comprehensive", "complete", "thorough", "in-depth"}
	QualityNegative = []string{"broken", "outdated", "deprecated", "old", "legacy"}

	CredentialIndicators = []string{
		"phd", "ph.d", "doctor", "professor", "researcher", "expert",
		"scientist", "engineer", "certified", "author:", "by:", "written by",
	}
	InstitutionalIndicators = []string{
		"university", "institute", "research center", "official",
		"documentation", "specification", "standard", "rfc", "ieee", "acm",
	}

	InstructionalTitleWords = []string{"how", "guide", "tutorial", "api"}
)
