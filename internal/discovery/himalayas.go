package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jobflow/jobflow/internal/types"
)

// himalayasBaseURL is the public Himalayas job search API.
const himalayasBaseURL = "https://himalayas.app/api/jobs/search"

// HimalayasSource queries the Himalayas remote-jobs API.
type HimalayasSource struct {
	baseURL string
	client  *http.Client
}

// NewHimalayasSource creates the source with its own HTTP client.
func NewHimalayasSource() *HimalayasSource {
	return &HimalayasSource{
		baseURL: himalayasBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Name implements Source.
func (s *HimalayasSource) Name() string {
	return "Himalayas"
}

type himalayasResponse struct {
	Jobs []himalayasJob `json:"jobs"`
}

type himalayasJob struct {
	ID      json.Number `json:"id"`
	Title   string      `json:"title"`
	Company *struct {
		Name string `json:"name"`
	} `json:"company"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"employment_type"`
	SalaryRange    string   `json:"salary_range"`
	Description    string   `json:"description"`
	Requirements   []string `json:"requirements"`
	Skills         []string `json:"skills"`
	CreatedAt      string   `json:"created_at"`
	URL            string   `json:"url"`
}

// Search implements Source.
func (s *HimalayasSource) Search(ctx context.Context, params types.SearchParams) ([]types.JobListing, error) {
	query := url.Values{}
	if params.Query != "" {
		query.Set("q", params.Query)
	}
	if params.Location != "" {
		query.Set("location", params.Location)
	}

	endpoint := s.baseURL
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("himalayas request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("himalayas returned HTTP %d", resp.StatusCode)
	}

	var payload himalayasResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode himalayas response: %w", err)
	}

	jobs := make([]types.JobListing, 0, len(payload.Jobs))
	for _, job := range payload.Jobs {
		jobs = append(jobs, s.toListing(job))
	}
	return jobs, nil
}

func (s *HimalayasSource) toListing(job himalayasJob) types.JobListing {
	company := "Unknown Company"
	if job.Company != nil && job.Company.Name != "" {
		company = job.Company.Name
	}
	location := job.Location
	if location == "" {
		location = "Remote"
	}
	jobType := job.EmploymentType
	if jobType == "" {
		jobType = "Full-time"
	}
	posted := job.CreatedAt
	if t, err := time.Parse(time.RFC3339, job.CreatedAt); err == nil {
		posted = t.Format("2006-01-02")
	}

	return types.JobListing{
		ID:           fmt.Sprintf("himalayas_%s", job.ID.String()),
		Title:        job.Title,
		Company:      company,
		Location:     location,
		Type:         jobType,
		Salary:       job.SalaryRange,
		Description:  job.Description,
		Requirements: job.Requirements,
		Skills:       job.Skills,
		PostedDate:   posted,
		Source:       s.Name(),
		URL:          job.URL,
	}
}
