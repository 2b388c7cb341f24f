package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jobflow/jobflow/internal/types"
)

// remoteOKBaseURL is the public RemoteOK API. It returns a JSON array whose
// first element is a legal notice rather than a job.
const remoteOKBaseURL = "https://remoteok.com/api"

// RemoteOKSource queries the RemoteOK API and filters client-side, since the
// API does not accept query parameters.
type RemoteOKSource struct {
	baseURL string
	client  *http.Client
}

// NewRemoteOKSource creates the source with its own HTTP client.
func NewRemoteOKSource() *RemoteOKSource {
	return &RemoteOKSource{
		baseURL: remoteOKBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Name implements Source.
func (s *RemoteOKSource) Name() string {
	return "RemoteOK"
}

type remoteOKJob struct {
	ID          json.Number `json:"id"`
	Position    string      `json:"position"`
	Company     string      `json:"company"`
	Location    string      `json:"location"`
	Salary      string      `json:"salary"`
	Description string      `json:"description"`
	Tags        []string    `json:"tags"`
	Date        string      `json:"date"`
	URL         string      `json:"url"`
}

// Search implements Source.
func (s *RemoteOKSource) Search(ctx context.Context, params types.SearchParams) ([]types.JobListing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remoteok request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remoteok returned HTTP %d", resp.StatusCode)
	}

	var payload []remoteOKJob
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode remoteok response: %w", err)
	}

	query := strings.ToLower(params.Query)
	var jobs []types.JobListing
	for _, job := range payload {
		// Entries without a position are metadata, not listings.
		if job.Position == "" {
			continue
		}
		if query != "" && !matchesQuery(job, query) {
			continue
		}
		jobs = append(jobs, s.toListing(job))
	}
	return jobs, nil
}

func matchesQuery(job remoteOKJob, query string) bool {
	if strings.Contains(strings.ToLower(job.Position), query) {
		return true
	}
	if strings.Contains(strings.ToLower(job.Description), query) {
		return true
	}
	for _, tag := range job.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func (s *RemoteOKSource) toListing(job remoteOKJob) types.JobListing {
	location := job.Location
	if location == "" {
		location = "Remote"
	}
	posted := job.Date
	if t, err := time.Parse(time.RFC3339, job.Date); err == nil {
		posted = t.Format("2006-01-02")
	}

	return types.JobListing{
		ID:          fmt.Sprintf("remoteok_%s", job.ID.String()),
		Title:       job.Position,
		Company:     job.Company,
		Location:    location,
		Type:        "Full-time",
		Salary:      job.Salary,
		Description: job.Description,
		Skills:      job.Tags,
		PostedDate:  posted,
		Source:      s.Name(),
		URL:         job.URL,
	}
}
