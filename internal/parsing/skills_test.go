package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_VocabularyMatchesAreCaseInsensitive(t *testing.T) {
	skills := ExtractSkills("Worked with PYTHON, react and TypeScript on a daily basis.")

	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "React")
	assert.Contains(t, skills, "Typescript")
}

func TestExtractSkills_WholeWordOnly(t *testing.T) {
	// "ruby" inside another word must not match.
	skills := ExtractSkills("I collect rubies and gemstones.")

	assert.NotContains(t, skills, "Ruby")
}

func TestExtractSkills_AcronymCatchAll(t *testing.T) {
	skills := ExtractSkills("Experience with HIPAA compliance AND THE ETL tooling FOR batch jobs.")

	assert.Contains(t, skills, "HIPAA")
	assert.Contains(t, skills, "ETL")
	// Stop-listed words are excluded even though they are uppercase.
	assert.NotContains(t, skills, "AND")
	assert.NotContains(t, skills, "THE")
	assert.NotContains(t, skills, "FOR")
}

func TestExtractSkills_LongUppercaseTokenRejected(t *testing.T) {
	skills := ExtractSkills("CONFIDENTIALITY notice")

	assert.NotContains(t, skills, "CONFIDENTIALITY")
}

func TestExtractSkills_Deduplicates(t *testing.T) {
	skills := ExtractSkills("python Python PYTHON")

	count := 0
	for _, s := range skills {
		if s == "Python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractSkills_Idempotent(t *testing.T) {
	text := "Go engineer using Docker, AWS and PostgreSQL with CI/CD."

	first := ExtractSkills(text)
	second := ExtractSkills(text)

	assert.Equal(t, first, second)
}

func TestExtractSkills_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
}
