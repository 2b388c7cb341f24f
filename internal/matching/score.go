package matching

import (
	"math"
	"strings"

	"github.com/jobflow/jobflow/internal/types"
)

// Signal weights. A signal with empty inputs on either side contributes
// neither to the score nor to the normalizing denominator, so sparse profiles
// are not penalized on axes they carry no data for.
const (
	skillsWeight     = 0.40
	roleWeight       = 0.30
	locationWeight   = 0.15
	experienceWeight = 0.15
)

// Score computes a 0-100 match score between a profile and a job from up to
// four weighted similarity signals: skills overlap, preferred-role/title
// overlap, location match, and experience/requirements overlap.
func Score(profile *types.UserProfile, job *types.JobListing) int {
	if profile == nil || job == nil {
		return 0
	}

	total := 0.0
	weights := 0.0

	if len(profile.Skills) > 0 && len(job.Skills) > 0 {
		total += jaccard(profile.Skills, job.Skills) * skillsWeight
		weights += skillsWeight
	}

	if len(profile.PreferredRoles) > 0 {
		var roleKeywords []string
		for _, role := range profile.PreferredRoles {
			roleKeywords = append(roleKeywords, ExtractKeywords(role)...)
		}
		total += jaccard(roleKeywords, ExtractKeywords(job.Title)) * roleWeight
		weights += roleWeight
	}

	if len(profile.PreferredLocations) > 0 {
		if locationMatches(profile.PreferredLocations, job.Location) {
			total += locationWeight
		}
		weights += locationWeight
	}

	experienceKeywords := ExtractKeywords(profile.Experience)
	var requirementKeywords []string
	for _, req := range job.Requirements {
		requirementKeywords = append(requirementKeywords, ExtractKeywords(req)...)
	}
	if len(experienceKeywords) > 0 && len(requirementKeywords) > 0 {
		total += jaccard(experienceKeywords, requirementKeywords) * experienceWeight
		weights += experienceWeight
	}

	if weights == 0 {
		return 0
	}
	return clampScore(math.Round(total / weights * 100))
}

// locationMatches reports whether any preferred location substring-matches
// the job location, or both sides mention remote work.
func locationMatches(preferred []string, jobLocation string) bool {
	jobLower := strings.ToLower(jobLocation)
	for _, loc := range preferred {
		locLower := strings.ToLower(loc)
		if strings.Contains(jobLower, locLower) {
			return true
		}
		if strings.Contains(locLower, "remote") && strings.Contains(jobLower, "remote") {
			return true
		}
	}
	return false
}

func clampScore(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}
