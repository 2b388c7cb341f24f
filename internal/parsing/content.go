package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Sentinel values returned when no extraction tier yields anything. These are
// explicit "not found" markers, not failures.
const (
	ExperiencePlaceholder = "Experience details will be extracted from your resume."
	EducationPlaceholder  = "Education details extracted from resume"
)

// maxExperienceLength caps the extracted experience summary.
const maxExperienceLength = 500

// maxEducationEntries caps the extracted education list.
const maxEducationEntries = 3

// minEducationLineLength filters trivial lines out of education sections.
const minEducationLineLength = 10

var experienceKeywords = []string{"experience", "work history", "employment", "professional", "career"}

var educationKeywords = []string{"education", "academic", "university", "college", "school", "degree"}

var (
	// Spans starting at a 4-digit year, read as date ranges implying work history.
	yearSpanPattern = regexp.MustCompile(`\b(19|20)\d{2}\b[^\n]*`)
	degreePattern   = regexp.MustCompile(`(?i)(bachelor|master|phd|doctorate|associate|diploma|certificate)[^\n]*?(computer science|engineering|business|marketing|design)`)
)

// ExtractExperience returns a work-history summary. Tiers: a section whose
// name matches an experience keyword, then year-span scanning over the whole
// text, then the sentinel.
func ExtractExperience(text string, sections map[string]string) string {
	if content, ok := findSection(sections, experienceKeywords); ok {
		return truncate(content, maxExperienceLength)
	}

	if spans := yearSpanPattern.FindAllString(text, 3); len(spans) > 0 {
		return truncate(strings.Join(spans, "\n"), maxExperienceLength)
	}

	return ExperiencePlaceholder
}

// ExtractEducation returns up to three education entries. Tiers: a section
// whose name matches an education keyword (non-trivial lines only), then
// degree/field pattern scanning, then the sentinel.
func ExtractEducation(text string, sections map[string]string) []string {
	if content, ok := findSection(sections, educationKeywords); ok {
		var entries []string
		for _, line := range strings.Split(content, "\n") {
			if len(strings.TrimSpace(line)) > minEducationLineLength {
				entries = append(entries, strings.TrimSpace(line))
			}
			if len(entries) == maxEducationEntries {
				break
			}
		}
		if len(entries) > 0 {
			return entries
		}
	}

	if degrees := degreePattern.FindAllString(text, maxEducationEntries); len(degrees) > 0 {
		return degrees
	}

	return []string{EducationPlaceholder}
}

// truncate caps s at limit bytes without splitting a multibyte rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
