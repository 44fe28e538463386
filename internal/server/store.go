package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/erizov/jobmatch/internal/pipeline"
	"github.com/erizov/jobmatch/internal/types"
)

// storedResume is an uploaded resume kept for later analysis. Immutable
// after insertion.
type storedResume struct {
	ID       uuid.UUID
	Text     string
	Resume   types.Resume
	Warnings []string
}

// storedJob is a submitted job posting kept for later analysis. Immutable
// after insertion.
type storedJob struct {
	ID       uuid.UUID
	Text     string
	Job      types.JobPosting
	Warnings []string
}

// sessionStore keeps resumes, jobs, and completed analyses in memory.
// Entries live until the process exits; nothing here is durable.
type sessionStore struct {
	mu       sync.Mutex
	resumes  map[uuid.UUID]*storedResume
	jobs     map[uuid.UUID]*storedJob
	analyses map[uuid.UUID]*pipeline.Analysis
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		resumes:  make(map[uuid.UUID]*storedResume),
		jobs:     make(map[uuid.UUID]*storedJob),
		analyses: make(map[uuid.UUID]*pipeline.Analysis),
	}
}

func (s *sessionStore) PutResume(r *storedResume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumes[r.ID] = r
}

func (s *sessionStore) GetResume(id uuid.UUID) (*storedResume, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.resumes[id]
	return r, ok
}

func (s *sessionStore) PutJob(j *storedJob) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[j.ID] = j
}

func (s *sessionStore) GetJob(id uuid.UUID) (*storedJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	return j, ok
}

func (s *sessionStore) PutAnalysis(a *pipeline.Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[a.ID] = a
}

func (s *sessionStore) GetAnalysis(id uuid.UUID) (*pipeline.Analysis, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.analyses[id]
	return a, ok
}
