package parsing

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperience_FromSection(t *testing.T) {
	text := "Work Experience\nBuilt things at Acme from 2019 to 2023."
	sections := SplitSections(text)

	experience := ExtractExperience(text, sections)

	assert.Equal(t, "Built things at Acme from 2019 to 2023.", experience)
}

func TestExtractExperience_SectionContentIsCapped(t *testing.T) {
	long := strings.Repeat("worked on backend systems ", 40)
	sections := map[string]string{"experience": long}

	experience := ExtractExperience(long, sections)

	assert.Len(t, experience, 500)
}

func TestExtractExperience_CapKeepsValidUTF8(t *testing.T) {
	// A multibyte rune straddling the cap must not be split.
	long := strings.Repeat("a", 499) + "é métier résumé"
	sections := map[string]string{"experience": long}

	experience := ExtractExperience(long, sections)

	assert.True(t, utf8.ValidString(experience))
	assert.LessOrEqual(t, len(experience), 500)
	assert.Equal(t, strings.Repeat("a", 499), experience)
}

func TestExtractExperience_YearSpanFallback(t *testing.T) {
	// No experience-named section, but date ranges imply work history.
	text := "Profile\n2019 - 2021 Backend Engineer at Acme\n2021 - 2024 Staff Engineer at Globex"
	sections := map[string]string{"general": text}

	experience := ExtractExperience(text, sections)

	assert.Contains(t, experience, "2019 - 2021 Backend Engineer at Acme")
	assert.Contains(t, experience, "2021 - 2024 Staff Engineer at Globex")
}

func TestExtractExperience_Sentinel(t *testing.T) {
	text := "nothing datable here"

	experience := ExtractExperience(text, map[string]string{})

	assert.Equal(t, ExperiencePlaceholder, experience)
}

func TestExtractEducation_FromSection(t *testing.T) {
	text := strings.Join([]string{
		"Education",
		"BSc Computer Science, State University",
		"ok", // too short, filtered
		"MSc Distributed Systems, Tech Institute",
	}, "\n")
	sections := SplitSections(text)

	education := ExtractEducation(text, sections)

	require.Len(t, education, 2)
	assert.Equal(t, "BSc Computer Science, State University", education[0])
	assert.Equal(t, "MSc Distributed Systems, Tech Institute", education[1])
}

func TestExtractEducation_CapsAtThreeEntries(t *testing.T) {
	content := strings.Join([]string{
		"BSc Computer Science, State University",
		"MSc Computer Science, State University",
		"PhD Computer Science, State University",
		"Certificate in Cloud Architecture Design",
	}, "\n")
	sections := map[string]string{"education": content}

	education := ExtractEducation(content, sections)

	assert.Len(t, education, 3)
}

func TestExtractEducation_DegreePatternFallback(t *testing.T) {
	text := "Completed a Bachelor of Science in Computer Science, then moved into industry."

	education := ExtractEducation(text, map[string]string{})

	require.Len(t, education, 1)
	assert.Contains(t, strings.ToLower(education[0]), "bachelor")
	assert.Contains(t, strings.ToLower(education[0]), "computer science")
}

func TestExtractEducation_Sentinel(t *testing.T) {
	education := ExtractEducation("no schooling mentioned", map[string]string{})

	assert.Equal(t, []string{EducationPlaceholder}, education)
}
