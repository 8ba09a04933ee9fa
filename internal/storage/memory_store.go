package storage

import (
	"context"
	"sync"
	"time"

	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
)

const defaultPerPage = 10

// MemoryStore keeps jobs and detection results in process memory. Values are
// copied on the way in and out so callers never share state with the store.
type MemoryStore struct {
	jobs            map[string]*domain.Job
	results         map[string]*domain.DetectionResult
	cache           map[string]*domain.DetectionResult
	processedEvents map[string]bool
	now             func() time.Time
	mu              sync.RWMutex
}

var _ domain.Repository = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs:            make(map[string]*domain.Job),
		results:         make(map[string]*domain.DetectionResult),
		cache:           make(map[string]*domain.DetectionResult),
		processedEvents: make(map[string]bool),
		now:             time.Now,
	}
}

func (s *MemoryStore) CreateJob(ctx context.Context, jobID, fileName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs[jobID] = &domain.Job{
		ID:        jobID,
		Status:    domain.JobStatusProcessing,
		FileName:  fileName,
		CreatedAt: s.now(),
	}

	return nil
}

func (s *MemoryStore) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, exists := s.jobs[jobID]
	if !exists {
		return nil, domain.ErrJobNotFound
	}

	clone := *job
	return &clone, nil
}

func (s *MemoryStore) CompleteJob(ctx context.Context, jobID, documentID string) error {
	return s.finishJob(jobID, func(job *domain.Job) {
		job.Status = domain.JobStatusCompleted
		job.DocumentID = documentID
	})
}

func (s *MemoryStore) FailJob(ctx context.Context, jobID, reason string) error {
	return s.finishJob(jobID, func(job *domain.Job) {
		job.Status = domain.JobStatusFailed
		job.Error = reason
	})
}

func (s *MemoryStore) finishJob(jobID string, update func(*domain.Job)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, exists := s.jobs[jobID]
	if !exists {
		return domain.ErrJobNotFound
	}

	update(job)
	now := s.now()
	job.CompletedAt = &now

	return nil
}

// SaveResult stores result as the latest one for its document. A non-empty
// cacheKey also keeps this exact result retrievable through GetCachedResult,
// even after a later result for the same document id replaces it.
func (s *MemoryStore) SaveResult(ctx context.Context, cacheKey string, result *domain.DetectionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results[result.DocumentID] = cloneResult(result)
	if cacheKey != "" {
		s.cache[cacheKey] = cloneResult(result)
	}

	return nil
}

func (s *MemoryStore) GetResult(ctx context.Context, documentID string) (*domain.DetectionResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, exists := s.results[documentID]
	if !exists {
		return nil, domain.ErrResultNotFound
	}

	return cloneResult(result), nil
}

func (s *MemoryStore) GetCachedResult(ctx context.Context, cacheKey string) (*domain.DetectionResult, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, exists := s.cache[cacheKey]
	if !exists {
		return nil, false, nil
	}

	return cloneResult(result), true, nil
}

func (s *MemoryStore) GetIssues(ctx context.Context, documentID string, page, perPage int, severity *domain.Severity) ([]domain.ValidationIssue, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, exists := s.results[documentID]
	if !exists {
		return nil, 0, domain.ErrResultNotFound
	}

	filtered := []domain.ValidationIssue{}
	for _, issue := range result.Issues {
		if severity != nil && issue.Severity != *severity {
			continue
		}
		filtered = append(filtered, issue)
	}

	total := len(filtered)

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}

	start := (page - 1) * perPage
	end := start + perPage

	if start >= total {
		return []domain.ValidationIssue{}, total, nil
	}
	if end > total {
		end = total
	}

	return filtered[start:end], total, nil
}

func (s *MemoryStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.processedEvents[eventID], nil
}

func (s *MemoryStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processedEvents[eventID] = true

	return nil
}

func cloneResult(r *domain.DetectionResult) *domain.DetectionResult {
	clone := *r
	clone.Issues = append([]domain.ValidationIssue(nil), r.Issues...)
	if clone.Issues == nil {
		clone.Issues = []domain.ValidationIssue{}
	}
	if r.LLMRiskScore != nil {
		score := *r.LLMRiskScore
		clone.LLMRiskScore = &score
	}
	return &clone
}
