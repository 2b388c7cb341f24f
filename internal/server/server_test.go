package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jobflow/jobflow/internal/discovery"
	"github.com/jobflow/jobflow/internal/types"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	log := zaptest.NewLogger(t)
	aggregator := discovery.NewAggregator(nil, log,
		discovery.WithFallback(discovery.NewMockSource(1)))
	return New(Config{Port: 0, Aggregator: aggregator, Logger: log})
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestCORSPreflight(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/jobs/search", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestParseResume(t *testing.T) {
	s := testServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", "resume.doc")
	require.NoError(t, err)
	_, err = part.Write([]byte("John Smith\njohn@example.com\nSkills\nPython and Docker\nExperience\n5 years building backend services\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/resume/parse", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Parsed types.ParsedContent `json:"parsed"`
		Patch  types.ProfilePatch  `json:"patch"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "john@example.com", resp.Parsed.Contact.Email)
	assert.Contains(t, resp.Parsed.Skills, "Python")
	assert.Equal(t, "John Smith", resp.Patch.Name)
}

func TestParseResume_UnsupportedFormat(t *testing.T) {
	s := testServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", "photo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("not a resume"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/resume/parse", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestParseResume_MissingFile(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/resume/parse", strings.NewReader("plain body"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchJobs(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/jobs/search", map[string]any{"query": "golang", "limit": 5})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result types.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Jobs)
	assert.Equal(t, discovery.MockSourceName, result.Source)
}

func TestSearchJobs_InvalidLimit(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/jobs/search", map[string]any{"limit": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRankJobs(t *testing.T) {
	s := testServer(t)

	profile := &types.UserProfile{ID: "p1", Skills: []string{"Go", "Docker"}}
	jobs := []types.JobListing{
		{ID: "1", Title: "Go Developer", Company: "Acme", Skills: []string{"Go", "Docker"}},
		{ID: "2", Title: "Florist", Company: "Petals", Skills: []string{"Flowers"}},
	}

	rec := postJSON(t, s, "/match/rank", map[string]any{"profile": profile, "jobs": jobs})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Jobs []types.JobListing `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Jobs, 2)
	assert.Equal(t, "1", resp.Jobs[0].ID)
	require.NotNil(t, resp.Jobs[0].MatchScore)
	require.NotNil(t, resp.Jobs[1].MatchScore)
	assert.Greater(t, *resp.Jobs[0].MatchScore, *resp.Jobs[1].MatchScore)
}

func TestRankJobs_MissingProfile(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/match/rank", map[string]any{"jobs": []types.JobListing{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendations(t *testing.T) {
	s := testServer(t)

	profile := &types.UserProfile{ID: "p1", Skills: []string{"Go"}}
	jobs := []types.JobListing{
		{ID: "1", Title: "Go Developer", Company: "Acme", Skills: []string{"Go"}},
		{ID: "2", Title: "Florist", Company: "Petals", Skills: []string{"Flowers"}},
	}

	rec := postJSON(t, s, "/match/recommendations", map[string]any{
		"profile": profile, "jobs": jobs,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Jobs []types.JobListing `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, job := range resp.Jobs {
		require.NotNil(t, job.MatchScore)
		assert.GreaterOrEqual(t, *job.MatchScore, 50)
	}
}

func TestCoverLetter(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/cover-letter", map[string]any{
		"profile": &types.UserProfile{ID: "p1", Name: "Ada Lovelace", Skills: []string{"Go"}},
		"job":     &types.JobListing{ID: "1", Title: "Go Developer", Company: "Acme", Location: "Remote"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	letter := resp["cover_letter"]
	assert.Contains(t, letter, "Dear Hiring Manager,")
	assert.Contains(t, letter, "Go Developer")
	assert.Contains(t, letter, "Acme")
	assert.Contains(t, letter, "Ada Lovelace")
}

func TestCoverLetter_MissingJob(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/cover-letter", map[string]any{
		"profile": &types.UserProfile{ID: "p1"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteness(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/profile/completeness", map[string]any{
		"profile": &types.UserProfile{ID: "p1", Name: "Ada", Email: "ada@example.com"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Score       int      `json:"score"`
		Missing     []string `json:"missing"`
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Greater(t, resp.Score, 0)
	assert.Less(t, resp.Score, 100)
	assert.NotEmpty(t, resp.Missing)
}

func TestInvalidJSONBody(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/jobs/search", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
