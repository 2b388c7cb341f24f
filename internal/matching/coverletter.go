package matching

import (
	"fmt"
	"strings"

	"github.com/jobflow/jobflow/internal/types"
)

// maxLetterSkills caps how many profile skills are listed in the letter body.
const maxLetterSkills = 5

// maxAlignedSkills caps how many skills appear in the alignment sentence.
const maxAlignedSkills = 3

// GenerateCoverLetter renders a deterministic cover letter from profile and
// job fields. The only branching is the remote-vs-onsite phrasing.
func GenerateCoverLetter(profile *types.UserProfile, job *types.JobListing) string {
	name := profile.Name
	if name == "" {
		name = "Job Seeker"
	}

	var qualifications []string
	for _, skill := range firstN(profile.Skills, maxLetterSkills) {
		qualifications = append(qualifications, fmt.Sprintf("- Proficiency in %s", skill))
	}

	locationReason := fmt.Sprintf("it's located in %s", job.Location)
	if strings.Contains(strings.ToLower(job.Location), "remote") {
		locationReason = "of the remote work flexibility"
	}

	aligned := strings.Join(firstN(profile.Skills, maxAlignedSkills), ", ")

	return fmt.Sprintf(`Dear Hiring Manager,

I am writing to express my interest in the %s position at %s. With my background in %s, I am excited about the opportunity to contribute to your team.

My key qualifications include:
%s

I am particularly drawn to this role because %s, and I believe my skills in %s align well with your requirements.

I would welcome the opportunity to discuss how my experience can benefit %s. Thank you for your consideration.

Best regards,
%s`,
		job.Title, job.Company, profile.Experience,
		strings.Join(qualifications, "\n"),
		locationReason, aligned,
		job.Company, name)
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
