package matching

import "github.com/jobflow/jobflow/internal/types"

// Completeness summarizes how filled-out a profile is.
type Completeness struct {
	Score       int      `json:"score"`
	Missing     []string `json:"missing"`
	Suggestions []string `json:"suggestions"`
}

type completenessCheck struct {
	label  string
	weight int
	filled func(p *types.UserProfile) bool
}

var completenessChecks = []completenessCheck{
	{"Full name", 5, func(p *types.UserProfile) bool { return p.Name != "" }},
	{"Email address", 10, func(p *types.UserProfile) bool { return p.Email != "" }},
	{"Phone number", 5, func(p *types.UserProfile) bool { return p.Phone != "" }},
	{"Location preference", 10, func(p *types.UserProfile) bool { return p.Location != "" }},
	{"Skills list", 25, func(p *types.UserProfile) bool { return len(p.Skills) > 0 }},
	{"Experience description", 20, func(p *types.UserProfile) bool { return p.Experience != "" }},
	{"Education background", 10, func(p *types.UserProfile) bool { return len(p.Education) > 0 }},
	{"Preferred job roles", 15, func(p *types.UserProfile) bool { return len(p.PreferredRoles) > 0 }},
}

// AnalyzeCompleteness scores a profile against a weighted field checklist and
// suggests the highest-impact gaps to fill.
func AnalyzeCompleteness(profile *types.UserProfile) Completeness {
	result := Completeness{Missing: []string{}, Suggestions: []string{}}
	if profile == nil {
		for _, check := range completenessChecks {
			result.Missing = append(result.Missing, check.label)
		}
		return result
	}

	totalWeight := 0
	achievedWeight := 0
	for _, check := range completenessChecks {
		totalWeight += check.weight
		if check.filled(profile) {
			achievedWeight += check.weight
		} else {
			result.Missing = append(result.Missing, check.label)
		}
	}

	if len(profile.Skills) < 5 {
		result.Suggestions = append(result.Suggestions, "Add more technical skills to improve job matching")
	}
	if profile.ResumeText == "" {
		result.Suggestions = append(result.Suggestions, "Upload your resume for automated parsing")
	}
	if len(profile.PreferredRoles) < 2 {
		result.Suggestions = append(result.Suggestions, "Add multiple job role preferences")
	}

	result.Score = achievedWeight * 100 / totalWeight
	return result
}
