// Package store persists application state. The parsing and matching packages
// never touch persistence; callers load state, run the pipeline, and save.
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jobflow/jobflow/internal/types"
)

// SearchMeta records the most recent job search.
type SearchMeta struct {
	Params types.SearchParams `json:"params"`
	Source string             `json:"source"`
	RanAt  time.Time          `json:"ran_at"`
}

// SearchSchedule is a persisted auto-search preference. A scheduler or cron
// entry runs the saved params when NextRun has passed.
type SearchSchedule struct {
	Params   types.SearchParams `json:"params"`
	Interval time.Duration      `json:"interval"`
	NextRun  time.Time          `json:"next_run"`
	Enabled  bool               `json:"enabled"`
}

// Due reports whether the schedule should run now.
func (s *SearchSchedule) Due(now time.Time) bool {
	return s != nil && s.Enabled && !now.Before(s.NextRun)
}

// Advance moves NextRun forward by the interval.
func (s *SearchSchedule) Advance(now time.Time) {
	s.NextRun = now.Add(s.Interval)
}

// State is everything jobflow persists between invocations.
type State struct {
	Profile      *types.UserProfile  `json:"profile,omitempty"`
	Jobs         []types.JobListing  `json:"jobs,omitempty"`
	Applications []types.Application `json:"applications,omitempty"`
	LastSearch   *SearchMeta         `json:"last_search,omitempty"`
	Schedule     *SearchSchedule     `json:"schedule,omitempty"`
}

// NewState returns an empty state.
func NewState() *State {
	return &State{}
}

// RecordSearch replaces the cached job list and search metadata.
func (s *State) RecordSearch(result *types.SearchResult, params types.SearchParams, now time.Time) {
	s.Jobs = result.Jobs
	s.LastSearch = &SearchMeta{
		Params: params,
		Source: result.Source,
		RanAt:  now,
	}
}

// FindJob returns the cached job with the given ID, or nil.
func (s *State) FindJob(jobID string) *types.JobListing {
	for i := range s.Jobs {
		if s.Jobs[i].ID == jobID {
			return &s.Jobs[i]
		}
	}
	return nil
}

// MarkApplied creates an application record for a cached job and flags the
// job itself as applied.
func (s *State) MarkApplied(jobID, coverLetter string, now time.Time) (*types.Application, error) {
	job := s.FindJob(jobID)
	if job == nil {
		return nil, fmt.Errorf("job %s not found in saved search results", jobID)
	}

	job.Applied = true
	job.AppliedAt = &now

	app := types.Application{
		ID:          uuid.NewString(),
		JobID:       job.ID,
		JobTitle:    job.Title,
		Company:     job.Company,
		AppliedAt:   now,
		Status:      types.StatusApplied,
		CoverLetter: coverLetter,
	}
	s.Applications = append(s.Applications, app)
	return &app, nil
}

// UpdateApplicationStatus sets the status of an application by ID.
func (s *State) UpdateApplicationStatus(appID string, status types.ApplicationStatus) error {
	for i := range s.Applications {
		if s.Applications[i].ID == appID {
			s.Applications[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("application %s not found", appID)
}
