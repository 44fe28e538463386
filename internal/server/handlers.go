package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/erizov/jobmatch/internal/ingestion"
	"github.com/erizov/jobmatch/internal/pipeline"
	"github.com/erizov/jobmatch/internal/types"
)

// maxUploadBytes bounds resume file uploads.
const maxUploadBytes = 10 << 20

// ResumeRequest is the JSON body for /api/resume when no file is uploaded.
type ResumeRequest struct {
	Text string `json:"text"`
}

// ResumeResponse is the response for /api/resume.
type ResumeResponse struct {
	ResumeID uuid.UUID           `json:"resume_id"`
	Resume   types.Resume        `json:"resume"`
	Metadata *ingestion.Metadata `json:"metadata,omitempty"`
	Warnings []string            `json:"warnings,omitempty"`
}

// JobRequest is the JSON body for /api/job. Either Text or URL is required.
type JobRequest struct {
	Text    string `json:"text,omitempty"`
	URL     string `json:"url,omitempty"`
	Title   string `json:"title,omitempty"`
	Company string `json:"company,omitempty"`
}

// JobResponse is the response for /api/job.
type JobResponse struct {
	JobID    uuid.UUID        `json:"job_id"`
	Job      types.JobPosting `json:"job"`
	Warnings []string         `json:"warnings,omitempty"`
}

// AnalyzeRequest is the JSON body for /api/analyze. It references stored
// documents by ID.
type AnalyzeRequest struct {
	ResumeID uuid.UUID `json:"resume_id"`
	JobID    uuid.UUID `json:"job_id"`
}

// OptimizeRequest is the JSON body for /api/optimize.
type OptimizeRequest struct {
	ResumeID    uuid.UUID `json:"resume_id"`
	JobID       uuid.UUID `json:"job_id"`
	Tone        string    `json:"tone,omitempty"`
	MaxKeywords int       `json:"max_keywords,omitempty"`
}

// handleResume extracts and parses a resume from an uploaded file or raw
// text, and stores it for later analysis.
func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	text, meta, err := s.readResumeInput(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	resume, warnings := s.runner.ParseResume(text)
	stored := &storedResume{
		ID:       uuid.New(),
		Text:     text,
		Resume:   resume,
		Warnings: warnings,
	}
	s.store.PutResume(stored)

	s.jsonResponse(w, http.StatusOK, ResumeResponse{
		ResumeID: stored.ID,
		Resume:   resume,
		Metadata: meta,
		Warnings: warnings,
	})
}

// readResumeInput accepts either a multipart upload under the "file" field
// or a JSON body with a "text" field.
func (s *Server) readResumeInput(r *http.Request) (string, *ingestion.Metadata, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return "", nil, &ErrValidation{Field: "file", Message: "invalid multipart body: " + err.Error()}
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return "", nil, &ErrValidation{Field: "file", Message: "file field is required"}
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return "", nil, &ErrValidation{Field: "file", Message: "failed to read upload: " + err.Error()}
		}
		text, meta, err := ingestion.FromBytes(header.Filename, data)
		if err != nil {
			return "", nil, &ErrValidation{Field: "file", Message: err.Error()}
		}
		return text, meta, nil
	}

	var req ResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", nil, &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()}
	}
	if req.Text == "" {
		return "", nil, &ErrValidation{Field: "text", Message: "text is required"}
	}
	return req.Text, nil, nil
}

// handleJob parses a job posting from raw text or fetches it from a URL,
// and stores it for later analysis.
func (s *Server) handleJob(w http.ResponseWriter, r *http.Request) {
	var req JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()})
		return
	}
	if req.Text == "" && req.URL == "" {
		s.errorResponse(w, &ErrValidation{Field: "text", Message: "either text or url is required"})
		return
	}

	text, title, company := req.Text, req.Title, req.Company
	if text == "" {
		var err error
		text, title, company, err = s.runner.FetchJob(r.Context(), req.URL)
		if err != nil {
			s.errorResponse(w, &ErrFetchFailed{URL: req.URL, Cause: err})
			return
		}
	}

	job, warnings := s.runner.ParseJob(text, title, company)
	stored := &storedJob{
		ID:       uuid.New(),
		Text:     text,
		Job:      job,
		Warnings: warnings,
	}
	s.store.PutJob(stored)

	s.jsonResponse(w, http.StatusOK, JobResponse{
		JobID:    stored.ID,
		Job:      job,
		Warnings: warnings,
	})
}

// handleAnalyze scores a stored resume against a stored job posting and
// keeps the analysis for status retrieval and optimization.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()})
		return
	}

	analysis, err := s.analyze(r.Context(), s.runner, req.ResumeID, req.JobID)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// analyze resolves stored documents and runs the scoring pipeline.
func (s *Server) analyze(ctx context.Context, runner *pipeline.Runner, resumeID, jobID uuid.UUID) (*pipeline.Analysis, error) {
	if resumeID == uuid.Nil {
		return nil, &ErrValidation{Field: "resume_id", Message: "resume_id is required"}
	}
	if jobID == uuid.Nil {
		return nil, &ErrValidation{Field: "job_id", Message: "job_id is required"}
	}

	resume, ok := s.store.GetResume(resumeID)
	if !ok {
		return nil, &ErrNotFound{Kind: "resume", ID: resumeID}
	}
	job, ok := s.store.GetJob(jobID)
	if !ok {
		return nil, &ErrNotFound{Kind: "job", ID: jobID}
	}

	analysis, err := runner.Analyze(ctx, resume.Text, job.Text, job.Job.Title, job.Job.Company)
	if err != nil {
		return nil, err
	}
	s.store.PutAnalysis(analysis)
	return analysis, nil
}

// handleStatus returns a previously stored analysis by ID.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, &ErrValidation{Field: "id", Message: "invalid analysis ID format"})
		return
	}

	analysis, ok := s.store.GetAnalysis(id)
	if !ok {
		s.errorResponse(w, &ErrNotFound{Kind: "analysis", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleOptimize analyzes a stored resume/job pair, rewrites the resume,
// and renders the output documents. Tone and keyword limit can be
// overridden per request.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	if s.gen == nil {
		s.errorResponse(w, &ErrGeneratorUnavailable{})
		return
	}

	var req OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()})
		return
	}

	runner := s.runner
	if req.Tone != "" || req.MaxKeywords > 0 {
		cfg := *s.cfg
		if req.Tone != "" {
			cfg.Tone = req.Tone
		}
		if req.MaxKeywords > 0 {
			cfg.TopKeywords = req.MaxKeywords
		}
		if err := cfg.Validate(); err != nil {
			s.errorResponse(w, &ErrValidation{Field: "body", Message: err.Error()})
			return
		}
		runner = pipeline.NewRunner(&cfg)
	}

	analysis, err := s.analyze(r.Context(), runner, req.ResumeID, req.JobID)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	result := runner.Optimize(r.Context(), s.gen, analysis)
	s.jsonResponse(w, http.StatusOK, result)
}
