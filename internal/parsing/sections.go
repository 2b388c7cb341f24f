// Package parsing segments resume text into named sections and pulls
// structured entities (skills, contact details, experience, education) out of
// it. Extraction is heuristic and degrades through fallback tiers to sentinel
// values; only text extraction upstream can fail a parse.
package parsing

import (
	"sort"
	"strings"
)

// maxHeaderLength is the longest line still considered a section header.
const maxHeaderLength = 50

// GeneralSection is the implicit key for text appearing before any header.
const GeneralSection = "general"

// sectionHeaders is the fixed vocabulary of header keywords.
var sectionHeaders = []string{
	"summary", "objective", "experience", "work", "employment", "education",
	"skills", "projects", "achievements", "certifications", "awards",
}

// SplitSections scans lines top to bottom and groups them under the nearest
// preceding header. A header is a short line containing a known section
// keyword; its lowercased text becomes the section key. Text before the first
// header lands under GeneralSection. Single pass, deterministic.
func SplitSections(text string) map[string]string {
	sections := make(map[string]string)
	current := GeneralSection
	var content []string

	flush := func() {
		if len(content) > 0 {
			sections[current] = strings.TrimSpace(strings.Join(content, "\n"))
			content = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if isSectionHeader(line) {
			flush()
			current = strings.ToLower(strings.TrimSpace(line))
			continue
		}
		content = append(content, line)
	}
	flush()

	return sections
}

func isSectionHeader(line string) bool {
	if len(line) >= maxHeaderLength {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(line))
	if lower == "" {
		return false
	}
	for _, header := range sectionHeaders {
		if strings.Contains(lower, header) {
			return true
		}
	}
	return false
}

// findSection returns the content of the first section whose name contains
// any of the given keywords, in keyword priority order. Section names are
// scanned in sorted order so lookups stay deterministic.
func findSection(sections map[string]string, keywords []string) (string, bool) {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, keyword := range keywords {
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), keyword) {
				return sections[name], true
			}
		}
	}
	return "", false
}
