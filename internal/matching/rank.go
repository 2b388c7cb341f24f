package matching

import (
	"sort"

	"github.com/jobflow/jobflow/internal/types"
)

// RecommendationThreshold is the minimum score for a job to qualify as a
// recommendation.
const RecommendationThreshold = 50

// RankJobs scores every job against the profile and returns a new slice
// sorted by match score descending. The sort is stable: ties keep their
// original relative order. The input slice is not mutated.
func RankJobs(profile *types.UserProfile, jobs []types.JobListing) []types.JobListing {
	ranked := make([]types.JobListing, len(jobs))
	copy(ranked, jobs)

	for i := range ranked {
		score := Score(profile, &ranked[i])
		ranked[i].MatchScore = &score
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].MatchScore > *ranked[j].MatchScore
	})
	return ranked
}

// Recommendations returns up to limit jobs from the ranked sequence whose
// score meets RecommendationThreshold. An empty profile or job collection
// yields an empty result, never an error.
func Recommendations(profile *types.UserProfile, jobs []types.JobListing, limit int) []types.JobListing {
	if profile == nil || len(jobs) == 0 || limit <= 0 {
		return nil
	}

	ranked := RankJobs(profile, jobs)
	recommendations := make([]types.JobListing, 0, limit)
	for _, job := range ranked {
		if *job.MatchScore < RecommendationThreshold {
			break
		}
		recommendations = append(recommendations, job)
		if len(recommendations) == limit {
			break
		}
	}
	return recommendations
}
