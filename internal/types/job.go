package types

import "time"

// JobListing represents a single job posting from any source. MatchScore is
// derived by the ranking engine and is not authoritative until set.
type JobListing struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Location     string     `json:"location"`
	Type         string     `json:"type"`
	Salary       string     `json:"salary,omitempty"`
	Description  string     `json:"description"`
	Requirements []string   `json:"requirements"`
	Skills       []string   `json:"skills"`
	PostedDate   string     `json:"posted_date"`
	Source       string     `json:"source"`
	URL          string     `json:"url,omitempty"`
	MatchScore   *int       `json:"match_score,omitempty"`
	Applied      bool       `json:"applied,omitempty"`
	AppliedAt    *time.Time `json:"applied_at,omitempty"`
}

// SearchParams describes a job search request.
type SearchParams struct {
	Query    string   `json:"query,omitempty"`
	Location string   `json:"location,omitempty"`
	Skills   []string `json:"skills,omitempty"`
	Limit    int      `json:"limit,omitempty"`
}

// SearchResult is the aggregated outcome of a job search. Source is a
// comma-joined list of the source names that contributed listings.
type SearchResult struct {
	Jobs   []JobListing `json:"jobs"`
	Source string       `json:"source"`
}

// ApplicationStatus tracks where an application is in its lifecycle.
type ApplicationStatus string

// Application statuses.
const (
	StatusPending   ApplicationStatus = "pending"
	StatusApplied   ApplicationStatus = "applied"
	StatusReviewing ApplicationStatus = "reviewing"
	StatusInterview ApplicationStatus = "interview"
	StatusRejected  ApplicationStatus = "rejected"
	StatusAccepted  ApplicationStatus = "accepted"
)

// Response records a single employer contact on an application.
type Response struct {
	Date    time.Time `json:"date"`
	Type    string    `json:"type"` // email, call, interview
	Content string    `json:"content"`
}

// Application represents one tracked job application.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	JobTitle    string            `json:"job_title"`
	Company     string            `json:"company"`
	AppliedAt   time.Time         `json:"applied_at"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter string            `json:"cover_letter,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	Responses   []Response        `json:"responses,omitempty"`
}
