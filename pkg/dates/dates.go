// Package dates normalizes the many date encodings found in page metadata
// to a single canonical form: UTC ISO-8601 with second precision and a Z
// suffix. Anything that cannot be parsed is reported absent; the caller
// never receives a raw or best-effort value.
package dates

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Format ladder, attempted strictly in order. The first successful parse
// wins; later stages are never consulted.
var (
	rfc2822Layouts = []string{
		time.RFC1123,
		time.RFC1123Z,
	}

	// Explicit-offset web formats.
	offsetLayouts = []string{
		"2006-01-02T15:04:05-0700",
		"2006-01-02 15:04:05 -0700",
		"02 Jan 2006 15:04:05 -0700",
		"Jan 02, 2006 15:04:05 -0700",
	}

	// Naive datetimes are interpreted as UTC.
	naiveLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"01/02/2006 15:04:05",
		"02/01/2006 15:04:05",
		"01-02-2006 15:04:05",
		"02-01-2006 15:04:05",
		"Jan 2, 2006 15:04:05",
		"2 Jan 2006 15:04:05",
		"January 2, 2006 15:04:05",
		"2 January 2006 15:04:05",
		"2006/01/02 15:04:05",
		"02.01.2006 15:04:05",
	}

	// 12-hour formats, e.g. "7/29/2025, 9:28:40 AM".
	amPMLayouts = []string{
		"1/2/2006, 3:04:05 PM",
		"1/2/2006 3:04:05 PM",
		"2/1/2006, 3:04:05 PM",
		"2/1/2006 3:04:05 PM",
		"1-2-2006, 3:04:05 PM",
		"1-2-2006 3:04:05 PM",
		"Jan 2, 2006, 3:04:05 PM",
		"January 2, 2006, 3:04:05 PM",
	}

	// Date-only formats resolve to midnight UTC.
	dateOnlyLayouts = []string{
		"2006-01-02",
		"01/02/2006",
		"02/01/2006",
		"01-02-2006",
		"02-01-2006",
		"Jan 2, 2006",
		"2 Jan 2006",
		"January 2, 2006",
		"2 January 2006",
		"2006/01/02",
		"02.01.2006",
		"2006.01.02",
	}
)

// embeddedDatePatterns extract a date substring from mixed text such as
// "Last updated 2025-08-22 by staff". Ordered most- to least-specific.
var embeddedDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
	regexp.MustCompile(`\d{2}/\d{2}/\d{4}`),
	regexp.MustCompile(`\d{2}-\d{2}-\d{4}`),
	regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`),
	regexp.MustCompile(`\d{4}/\d{2}/\d{2}`),
	regexp.MustCompile(`\d{4}\.\d{2}\.\d{2}`),
	regexp.MustCompile(`\d{1,2} [A-Z][a-z]+ \d{4}`),
	regexp.MustCompile(`[A-Z][a-z]+ \d{1,2}, \d{4}`),
	regexp.MustCompile(`\d{1,2}-[A-Z][a-z]{2}-\d{4}`),
}

// Normalize converts an arbitrary date string to "2006-01-02T15:04:05Z".
// The second return value is false when no stage of the ladder succeeds.
func Normalize(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "null" {
		return "", false
	}

	// RFC 3339, e.g. "2025-08-22T15:05:20+00:00".
	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return canonical(t), true
	}

	// RFC 2822 / 1123, e.g. "Fri, 22 Aug 2025 15:05:20 GMT".
	for _, layout := range rfc2822Layouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return canonical(t), true
		}
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return canonical(t), true
		}
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return canonical(t), true
		}
	}

	for _, layout := range amPMLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return canonical(t), true
		}
	}

	for _, layout := range dateOnlyLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return canonical(t), true
		}
	}

	// Safety net for layouts the ladder misses. dateparse rejects
	// non-date text, so this never produces a guess from garbage.
	if t, err := dateparse.ParseIn(trimmed, time.UTC); err == nil {
		return canonical(t), true
	}

	// Mixed text: pull out the first embedded date and re-normalize it.
	for _, pattern := range embeddedDatePatterns {
		match := pattern.FindString(trimmed)
		if match != "" && match != trimmed {
			if normalized, ok := Normalize(match); ok {
				return normalized, true
			}
		}
	}

	return "", false
}

func canonical(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
