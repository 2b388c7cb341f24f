package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/jobflow/jobflow/internal/extraction"
	"github.com/jobflow/jobflow/internal/matching"
	"github.com/jobflow/jobflow/internal/parsing"
	"github.com/jobflow/jobflow/internal/types"
)

// maxResumeSize caps resume uploads at 10 MB.
const maxResumeSize = 10 << 20

// handleParseResume accepts a multipart resume upload under the "resume"
// field and returns the parsed content plus the profile patch derived from
// it.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'resume' file field")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeSize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	doc := extraction.NewRawDocument(data, header.Header.Get("Content-Type"), header.Filename)
	parsed, err := parsing.ParseResume(doc)
	if err != nil {
		var unsupported *extraction.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			s.errorResponse(w, http.StatusUnsupportedMediaType, unsupported.Error())
			return
		}
		var extractionErr *extraction.ExtractionError
		if errors.As(err, &extractionErr) {
			s.errorResponse(w, http.StatusUnprocessableEntity, extractionErr.Error())
			return
		}
		s.log.Error("resume parse failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "resume parsing failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"parsed": parsed,
		"patch":  parsing.ProfileFromResume(parsed),
	})
}

type searchRequest struct {
	Query    string   `json:"query"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
	Limit    int      `json:"limit" validate:"gte=0,lte=200"`
}

// handleSearchJobs runs a concurrent multi-source search.
func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.aggregator.Search(r.Context(), types.SearchParams{
		Query:    req.Query,
		Location: req.Location,
		Skills:   req.Skills,
		Limit:    req.Limit,
	})
	if err != nil {
		s.log.Error("job search failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "job search failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

type rankRequest struct {
	Profile *types.UserProfile `json:"profile" validate:"required"`
	Jobs    []types.JobListing `json:"jobs" validate:"required"`
}

// handleRankJobs scores and ranks the posted jobs against the profile.
func (s *Server) handleRankJobs(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	ranked := matching.RankJobs(req.Profile, req.Jobs)
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": ranked})
}

type recommendationsRequest struct {
	Profile *types.UserProfile `json:"profile" validate:"required"`
	Jobs    []types.JobListing `json:"jobs" validate:"required"`
	Limit   int                `json:"limit" validate:"gte=0,lte=200"`
}

// handleRecommendations returns jobs scoring at or above the recommendation
// threshold.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = len(req.Jobs)
	}
	recommended := matching.Recommendations(req.Profile, req.Jobs, limit)
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": recommended})
}

type coverLetterRequest struct {
	Profile *types.UserProfile `json:"profile" validate:"required"`
	Job     *types.JobListing  `json:"job" validate:"required"`
}

// handleCoverLetter generates a templated cover letter.
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req coverLetterRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	letter := matching.GenerateCoverLetter(req.Profile, req.Job)
	s.jsonResponse(w, http.StatusOK, map[string]string{"cover_letter": letter})
}

type completenessRequest struct {
	Profile *types.UserProfile `json:"profile" validate:"required"`
}

// handleCompleteness reports how complete the profile is and what to add.
func (s *Server) handleCompleteness(w http.ResponseWriter, r *http.Request) {
	var req completenessRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	s.jsonResponse(w, http.StatusOK, matching.AnalyzeCompleteness(req.Profile))
}

// decodeAndValidate decodes the JSON body into dst and validates it. On
// failure it writes the error response and returns false.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return false
	}
	return true
}
