package domain

import "context"

type Repository interface {
	// Job management
	CreateJob(ctx context.Context, jobID, fileName string) error
	GetJob(ctx context.Context, jobID string) (*Job, error)
	CompleteJob(ctx context.Context, jobID, documentID string) error
	FailJob(ctx context.Context, jobID, reason string) error

	// Detection results
	SaveResult(ctx context.Context, cacheKey string, result *DetectionResult) error
	GetResult(ctx context.Context, documentID string) (*DetectionResult, error)
	GetCachedResult(ctx context.Context, cacheKey string) (*DetectionResult, bool, error)
	GetIssues(ctx context.Context, documentID string, page, perPage int, severity *Severity) ([]ValidationIssue, int, error)

	// Idempotency tracking
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error
}
