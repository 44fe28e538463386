package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erizov/jobmatch/internal/config"
	"github.com/erizov/jobmatch/internal/pipeline"
	"github.com/erizov/jobmatch/internal/rewrite"
)

const sampleResume = `John Doe
john@example.com | +1 555 123 4567

Summary
Backend engineer with six years of experience building billing systems in Python.

Experience
Backend Engineer at Acme Corp
2018-2022
- Built the billing service in Python
- Improved API latency by 40% using Docker

Skills
Python, Docker, PostgreSQL

Education
BSc Computer Science, MIT, 2014-2018`

const sampleJob = `Senior Backend Engineer
Company: Globex

Requirements:
- Python
- Kubernetes
- 5+ years experience

Responsibilities:
- Design billing APIs
- Operate production services`

type stubGenerator struct{}

func (stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "achievement bullets"):
		return `["Built the billing service in Python", "Improved API latency by 40% using Docker"]`, nil
	case strings.Contains(prompt, "skills section"):
		return "Python, Docker, PostgreSQL", nil
	case strings.Contains(prompt, "cover letter"):
		return "My billing work at Acme Corp prepares me well for this role.", nil
	default:
		return "Backend engineer with six years of experience building billing systems in Python.", nil
	}
}

func newTestServer(t *testing.T, gen rewrite.Generator) *Server {
	t.Helper()
	cfg := config.Default()
	return New(&cfg, gen)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

// uploadDocuments stores the sample resume and job and returns their IDs.
func uploadDocuments(t *testing.T, s *Server) (resumeID, jobID uuid.UUID) {
	t.Helper()

	rec := doJSON(t, s, http.MethodPost, "/api/resume", ResumeRequest{Text: sampleResume})
	require.Equal(t, http.StatusOK, rec.Code)
	resumeID = decodeBody[ResumeResponse](t, rec).ResumeID

	rec = doJSON(t, s, http.MethodPost, "/api/job", JobRequest{Text: sampleJob})
	require.Equal(t, http.StatusOK, rec.Code)
	jobID = decodeBody[JobResponse](t, rec).JobID
	return resumeID, jobID
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
}

func TestHandleResume_Text(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/api/resume", ResumeRequest{Text: sampleResume})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[ResumeResponse](t, rec)
	assert.NotEqual(t, uuid.Nil, resp.ResumeID)
	assert.Equal(t, "John Doe", resp.Resume.Contact.Name)
	assert.Contains(t, resp.Resume.Skills, "Python")
	assert.Nil(t, resp.Metadata)
}

func TestHandleResume_MissingText(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/api/resume", ResumeRequest{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Contains(t, body["error"], "text is required")
}

func TestHandleResume_FileUpload(t *testing.T) {
	s := newTestServer(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "resume.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte(sampleResume))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/resume", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[ResumeResponse](t, rec)
	assert.Equal(t, "John Doe", resp.Resume.Contact.Name)
	require.NotNil(t, resp.Metadata)
	assert.Equal(t, "resume.txt", resp.Metadata.Source)
	assert.NotEmpty(t, resp.Metadata.Hash)
}

func TestHandleJob_Text(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/api/job", JobRequest{Text: sampleJob})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[JobResponse](t, rec)
	assert.NotEqual(t, uuid.Nil, resp.JobID)
	assert.Equal(t, "Globex", resp.Job.Company)
	assert.NotEmpty(t, resp.Job.Keywords)
}

func TestHandleJob_MissingInput(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/api/job", JobRequest{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Contains(t, body["error"], "either text or url is required")
}

func TestHandleAnalyze(t *testing.T) {
	s := newTestServer(t, nil)
	resumeID, jobID := uploadDocuments(t, s)

	rec := doJSON(t, s, http.MethodPost, "/api/analyze", AnalyzeRequest{
		ResumeID: resumeID,
		JobID:    jobID,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	analysis := decodeBody[pipeline.Analysis](t, rec)
	assert.NotEqual(t, uuid.Nil, analysis.ID)
	assert.Equal(t, "Globex", analysis.Job.Company)
	assert.Contains(t, analysis.Match.OverlapKeywords, "python")
	assert.Contains(t, analysis.Match.MustHaveMissing, "kubernetes")

	// The analysis must be retrievable afterwards.
	rec = doJSON(t, s, http.MethodGet, "/api/status/"+analysis.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stored := decodeBody[pipeline.Analysis](t, rec)
	assert.Equal(t, analysis.ID, stored.ID)
}

func TestHandleAnalyze_MissingIDs(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/api/analyze", AnalyzeRequest{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_UnknownResume(t *testing.T) {
	s := newTestServer(t, nil)
	_, jobID := uploadDocuments(t, s)

	rec := doJSON(t, s, http.MethodPost, "/api/analyze", AnalyzeRequest{
		ResumeID: uuid.New(),
		JobID:    jobID,
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Contains(t, body["error"], "resume not found")
}

func TestHandleStatus_InvalidID(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/api/status/not-a-uuid", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleStatus_NotFound(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/api/status/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Contains(t, body["error"], "analysis not found")
}

func TestHandleOptimize(t *testing.T) {
	s := newTestServer(t, stubGenerator{})
	resumeID, jobID := uploadDocuments(t, s)

	rec := doJSON(t, s, http.MethodPost, "/api/optimize", OptimizeRequest{
		ResumeID: resumeID,
		JobID:    jobID,
		Tone:     "conservative",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeBody[pipeline.OptimizeResult](t, rec)
	assert.Contains(t, result.Text, "John Doe")
	assert.Contains(t, result.Markdown, "# John Doe")
	assert.Contains(t, result.Report, "ATS score")
	assert.Contains(t, result.CoverLetter, "Acme Corp")
	assert.Equal(t, result.ATSScoreAfter-result.ATSScoreBefore, result.Improvement)
}

func TestHandleOptimize_InvalidTone(t *testing.T) {
	s := newTestServer(t, stubGenerator{})
	resumeID, jobID := uploadDocuments(t, s)

	rec := doJSON(t, s, http.MethodPost, "/api/optimize", OptimizeRequest{
		ResumeID: resumeID,
		JobID:    jobID,
		Tone:     "flowery",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleOptimize_NoGenerator(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/api/optimize", OptimizeRequest{
		ResumeID: uuid.New(),
		JobID:    uuid.New(),
	})

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleOptimize_UnknownJob(t *testing.T) {
	s := newTestServer(t, stubGenerator{})
	resumeID, _ := uploadDocuments(t, s)

	rec := doJSON(t, s, http.MethodPost, "/api/optimize", OptimizeRequest{
		ResumeID: resumeID,
		JobID:    uuid.New(),
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Contains(t, body["error"], "job not found")
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "x", Message: "y"}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrNotFound{Kind: "resume", ID: uuid.New()}))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&ErrGeneratorUnavailable{}))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(&ErrFetchFailed{URL: "http://x"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
