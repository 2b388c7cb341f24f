// Package matching scores job listings against a user profile using weighted
// keyword-set similarity, ranks job collections, and drafts cover letters.
package matching

import (
	"regexp"
	"strings"
)

// stopWords are excluded from keyword extraction.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "have": true, "has": true, "had": true,
	"will": true, "would": true, "could": true, "should": true, "may": true,
	"might": true, "can": true, "must": true, "shall": true,
}

// minKeywordLength drops very short tokens that carry no signal.
const minKeywordLength = 3

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// ExtractKeywords lowercases text, strips punctuation, splits on whitespace,
// and returns deduplicated tokens longer than two characters that are not
// stop words. Order follows first occurrence.
func ExtractKeywords(text string) []string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(text), " ")

	seen := make(map[string]bool)
	var keywords []string
	for _, token := range strings.Fields(cleaned) {
		if len(token) < minKeywordLength || stopWords[token] || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
	}
	return keywords
}

// jaccard returns |A∩B| / |A∪B| over the lowercased sets of the two keyword
// slices. Either side empty yields 0.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := toSet(a)
	setB := toSet(b)

	intersection := 0
	for item := range setA {
		if setB[item] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
