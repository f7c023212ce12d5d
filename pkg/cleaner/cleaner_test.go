package cleaner

import (
	"strings"
	"testing"

	"github.com/dtnitsch/search-ingest/models"
	"github.com/dtnitsch/search-ingest/pkg/registry"
)

func TestCreateChunksBelowMinimum(t *testing.T) {
	text := strings.Repeat("a", 50)
	chunks := CreateChunks(text, 2500, 100)
	if len(chunks) != 0 {
		t.Errorf("CreateChunks on %d chars = %d chunks, want 0", len(text), len(chunks))
	}
}

func TestCreateChunksSingleChunk(t *testing.T) {
	text := strings.Repeat("word ", 40)
	text = strings.TrimSpace(text) // 199 chars
	chunks := CreateChunks(text, 2500, 100)
	if len(chunks) != 1 {
		t.Fatalf("CreateChunks = %d chunks, want 1", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("chunk = %q, want input unchanged", chunks[0])
	}
}

func TestCreateChunksBounds(t *testing.T) {
	sentence := "The quick brown fox jumps over the lazy dog near the river bank today. "
	text := strings.TrimSpace(strings.Repeat(sentence, 100))

	chunks := CreateChunks(text, 500, 100)
	if len(chunks) < 2 {
		t.Fatalf("CreateChunks = %d chunks, want several", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 500 {
			t.Errorf("chunk %d length = %d, want <= 500", i, len(chunk))
		}
		if len(chunk) < 100 {
			t.Errorf("chunk %d length = %d, want >= 100", i, len(chunk))
		}
	}
}

func TestCreateChunksWordFallback(t *testing.T) {
	// No sentence delimiters at all: the word-based pack must kick in.
	text := strings.TrimSpace(strings.Repeat("alpha beta gamma delta ", 100))
	chunks := CreateChunks(text, 300, 50)
	if len(chunks) == 0 {
		t.Fatal("expected word-based chunks for delimiter-free text")
	}
	for i, chunk := range chunks {
		if len(chunk) > 300 {
			t.Errorf("chunk %d length = %d, want <= 300", i, len(chunk))
		}
	}
}

func TestClean(t *testing.T) {
	c := New(registry.New())

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"collapses whitespace", "hello   \n\t world", "hello world"},
		{"strips urls", "see https://example.com/page for details", "see for details"},
		{"strips emails", "contact admin@example.com now", "contact now"},
		{"strips entities", "fish &amp; chips", "fish chips"},
		{"excessive punctuation", "wait for it!!!!! now", "wait for it... now"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanDescriptionTruncation(t *testing.T) {
	c := New(registry.New())

	short := "A short description."
	if got := c.CleanDescription(short); got != short {
		t.Errorf("CleanDescription(short) = %q, want unchanged", got)
	}

	// Over budget with a sentence boundary inside the first 300 runes.
	long := strings.Repeat("Sentence one is here. ", 20)
	got := c.CleanDescription(long)
	if len([]rune(got)) > 300 {
		t.Errorf("CleanDescription length = %d runes, want <= 300", len([]rune(got)))
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("CleanDescription = %q, want sentence-boundary ending", got)
	}

	// No boundaries: hard cut with ellipsis.
	unbroken := strings.Repeat("x", 400)
	got = c.CleanDescription(unbroken)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("CleanDescription(unbroken) = %q, want ellipsis ending", got)
	}
	if len([]rune(got)) > 300 {
		t.Errorf("CleanDescription(unbroken) length = %d runes, want <= 300", len([]rune(got)))
	}
}

func TestIsMeaningful(t *testing.T) {
	c := New(registry.New())

	tests := []struct {
		name  string
		chunk string
		want  bool
	}{
		{"prose", "The processing pipeline handles each page and writes the result downstream.", true},
		{"too short", "tiny text", false},
		{"too few words", "supercalifragilisticexpialidocious", false},
		{"json heavy", `{"a":[1,2],"b":{"c":3},"d":[4,5],"e":6}`, false},
		{"no function words", "xyz qwrt zxcv bnmp xyz qwrt zxcv bnmp", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsMeaningful(tt.chunk); got != tt.want {
				t.Errorf("IsMeaningful(%q) = %v, want %v", tt.chunk, got, tt.want)
			}
		})
	}
}

func TestContainsWebNoise(t *testing.T) {
	c := New(registry.New())

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"css declaration", ".mw-parser-output{margin:0;display:inline}", true},
		{"wiki chrome", "Retrieved from the archive on Tuesday", true},
		{"html entity escape", "the &lt;div&gt; element", true},
		{"unicode escape", `a "<div>" literal`, true},
		{"raw markup passes", "the <div> element wraps the content", false},
		{"json fragment", `here "type": "Article" appears`, true},
		{"bracket soup", "[1][2][3][4][5][6] release notes", true},
		{"clean prose", "The library parses each page and stores the cleaned text for the indexer.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ContainsWebNoise(tt.text); got != tt.want {
				t.Errorf("ContainsWebNoise(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestChunksWithContextFiltersNoise(t *testing.T) {
	c := New(registry.New())
	headings := []models.Heading{{Level: 2, Text: "Pipeline overview"}}

	prose := strings.TrimSpace(strings.Repeat("The pipeline reads each page and the cleaner removes the noise before indexing. ", 10))
	chunks := c.ChunksWithContext(prose, headings, 400, 50)
	if len(chunks) == 0 {
		t.Fatal("expected chunks from clean prose")
	}
	for _, chunk := range chunks {
		for _, h := range chunk.RelevantHeadings {
			if h != "Pipeline overview" {
				t.Errorf("unexpected heading %q", h)
			}
		}
	}

	noise := ".mw-parser-output{margin:0;display:inline}"
	if got := c.ChunksWithContext(noise, nil, 2500, 10); len(got) != 0 {
		t.Errorf("ChunksWithContext(noise) = %d chunks, want 0", len(got))
	}
}

func TestExtractKeywords(t *testing.T) {
	c := New(registry.New())

	text := "Kubernetes clusters schedule containers. Kubernetes clusters scale containers automatically. Operators watch clusters."
	keywords := c.ExtractKeywords(text, 10)

	want := map[string]bool{"kubernetes": true, "clusters": true, "containers": true}
	for _, kw := range keywords {
		if !want[kw] {
			t.Errorf("unexpected keyword %q", kw)
		}
	}
	if len(keywords) == 0 || keywords[0] != "clusters" {
		t.Errorf("keywords = %v, want most frequent (clusters) first", keywords)
	}
}
