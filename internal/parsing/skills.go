package parsing

import (
	"regexp"
	"strings"

	"github.com/jobflow/jobflow/internal/types"
)

// skillVocabulary is the fixed list of known skills matched case-insensitively
// against resume text.
var skillVocabulary = []string{
	// Programming languages
	"javascript", "typescript", "python", "java", "c++", "c#", "php", "ruby", "go", "rust", "swift", "kotlin",
	// Frontend
	"react", "vue", "angular", "html", "css", "sass", "less", "tailwind", "bootstrap", "jquery",
	// Backend
	"node.js", "express", "django", "flask", "spring", "laravel", "rails", "asp.net",
	// Databases
	"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "sqlite", "oracle",
	// Cloud & devops
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "github actions", "terraform",
	// Tools
	"git", "webpack", "babel", "jest", "cypress", "graphql", "rest api", "microservices",
	// Methodologies
	"agile", "scrum", "kanban", "tdd", "ci/cd", "devops",
}

// acronymStopList filters common English words out of the uppercase-token
// catch-all.
var acronymStopList = map[string]bool{
	"THE": true, "AND": true, "FOR": true, "ARE": true, "YOU": true,
}

const maxAcronymLength = 10

var (
	skillPatterns  = buildSkillPatterns()
	acronymPattern = regexp.MustCompile(`\b[A-Z]{2,}\b`)
)

func buildSkillPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(skillVocabulary))
	for _, skill := range skillVocabulary {
		patterns[skill] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return patterns
}

// ExtractSkills finds vocabulary skills via case-insensitive whole-word match,
// title-casing hits, then adds bare uppercase tokens as a catch-all for
// acronyms the vocabulary misses. The result is deduplicated and idempotent
// over the same input.
func ExtractSkills(text string) []string {
	var found []string
	for _, skill := range skillVocabulary {
		if skillPatterns[skill].MatchString(text) {
			found = append(found, titleCase(skill))
		}
	}

	for _, token := range acronymPattern.FindAllString(text, -1) {
		if len(token) <= maxAcronymLength && !acronymStopList[token] {
			found = append(found, token)
		}
	}

	return types.DedupeStrings(found)
}

// titleCase uppercases only the first letter, matching how vocabulary hits
// are displayed (e.g. "python" -> "Python", "aws" -> "Aws").
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
