package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/statement-fraud-detector/internal/detection"
	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/grachmannico95/statement-fraud-detector/internal/eventbus"
	"github.com/grachmannico95/statement-fraud-detector/internal/report"
	"github.com/grachmannico95/statement-fraud-detector/pkg/logger"
)

var pdfMagic = []byte("%PDF-")

type DetectionService interface {
	Detect(ctx context.Context, doc *domain.BankDocument, opts detection.Options) (*domain.DetectionResult, error)
	SubmitPDF(ctx context.Context, fileName string, content []byte, opts detection.Options) (*domain.Job, error)
	GetJob(ctx context.Context, jobID string) (*domain.Job, error)
	GetResult(ctx context.Context, documentID string) (*domain.DetectionResult, error)
	GetIssues(ctx context.Context, documentID string, page, perPage int, severity *domain.Severity) ([]domain.ValidationIssue, int, error)
	RenderReport(ctx context.Context, documentID string) (string, error)
}

type Detector interface {
	Run(ctx context.Context, doc *domain.BankDocument, opts detection.Options) (*domain.DetectionResult, error)
}

type detectionService struct {
	repo     domain.Repository
	detector Detector
	bus      eventbus.EventBus
	renderer *report.Renderer
	logger   *logger.Logger
}

func NewDetectionService(repo domain.Repository, detector Detector, bus eventbus.EventBus, renderer *report.Renderer, log *logger.Logger) DetectionService {
	return &detectionService{
		repo:     repo,
		detector: detector,
		bus:      bus,
		renderer: renderer,
		logger:   log,
	}
}

// Detect runs the pipeline synchronously. An unchanged document submitted
// with the same options is answered from the stored result.
func (s *detectionService) Detect(ctx context.Context, doc *domain.BankDocument, opts detection.Options) (*domain.DetectionResult, error) {
	if doc == nil {
		return nil, domain.ErrMalformedDocument
	}
	ctx = logger.WithDocumentID(ctx, doc.Meta.DocumentID)

	key, err := DocumentCacheKey(doc, opts)
	if err != nil {
		return nil, err
	}

	cached, found, err := s.repo.GetCachedResult(ctx, key)
	if err != nil {
		s.logger.Error(ctx, "Failed to read result cache",
			"error", err,
		)
		return nil, err
	}
	if found {
		s.logger.Debug(ctx, "Serving cached detection result")
		return cached, nil
	}

	result, err := s.detector.Run(ctx, doc, opts)
	if err != nil {
		s.logger.Warn(ctx, "Document rejected",
			"error", err,
		)
		return nil, err
	}

	if err := s.repo.SaveResult(ctx, key, result); err != nil {
		s.logger.Error(ctx, "Failed to save detection result",
			"error", err,
		)
		return nil, err
	}

	return result, nil
}

// SubmitPDF registers a job and hands the file to the worker pool. The
// returned job is still processing unless the same file was seen before.
func (s *detectionService) SubmitPDF(ctx context.Context, fileName string, content []byte, opts detection.Options) (*domain.Job, error) {
	if !strings.EqualFold(filepath.Ext(fileName), ".pdf") || !bytes.HasPrefix(content, pdfMagic) {
		return nil, domain.ErrUnsupportedFile
	}

	jobID := uuid.New().String()
	ctx = logger.WithJobID(ctx, jobID)
	key := contentCacheKey(content, opts)

	if err := s.repo.CreateJob(ctx, jobID, fileName); err != nil {
		s.logger.Error(ctx, "Failed to create job",
			"error", err,
		)
		return nil, err
	}

	cached, found, err := s.repo.GetCachedResult(ctx, key)
	if err != nil {
		return nil, err
	}
	if found {
		s.logger.Info(ctx, "File already analysed, completing job from cache",
			"document_id", cached.DocumentID,
		)
		if err := s.repo.CompleteJob(ctx, jobID, cached.DocumentID); err != nil {
			return nil, err
		}
		return s.repo.GetJob(ctx, jobID)
	}

	err = s.bus.Publish(ctx, eventbus.Event{
		ID:   uuid.New().String(),
		Type: eventbus.EventTypeDetection,
		Payload: eventbus.DetectionEvent{
			JobID:     jobID,
			FileName:  fileName,
			Content:   content,
			CacheKey:  key,
			EnableLLM: opts.EnableLLM,
		},
		Timestamp: time.Now(),
	})
	if err != nil {
		s.logger.Error(ctx, "Failed to queue detection job",
			"error", err,
		)
		if failErr := s.repo.FailJob(ctx, jobID, err.Error()); failErr != nil {
			s.logger.Error(ctx, "Failed to mark job as failed",
				"error", failErr,
			)
		}
		return nil, fmt.Errorf("queue detection job: %w", err)
	}

	s.logger.Info(ctx, "Detection job queued",
		"file_name", fileName,
		"size", len(content),
	)

	return s.repo.GetJob(ctx, jobID)
}

func (s *detectionService) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	ctx = logger.WithJobID(ctx, jobID)

	job, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		s.logger.Debug(ctx, "Failed to get job",
			"error", err,
		)
		return nil, err
	}

	return job, nil
}

func (s *detectionService) GetResult(ctx context.Context, documentID string) (*domain.DetectionResult, error) {
	ctx = logger.WithDocumentID(ctx, documentID)

	result, err := s.repo.GetResult(ctx, documentID)
	if err != nil {
		s.logger.Debug(ctx, "Failed to get result",
			"error", err,
		)
		return nil, err
	}

	return result, nil
}

func (s *detectionService) GetIssues(ctx context.Context, documentID string, page, perPage int, severity *domain.Severity) ([]domain.ValidationIssue, int, error) {
	ctx = logger.WithDocumentID(ctx, documentID)

	s.logger.Debug(ctx, "Getting issues",
		"page", page,
		"per_page", perPage,
		"severity", severity,
	)

	issues, total, err := s.repo.GetIssues(ctx, documentID, page, perPage, severity)
	if err != nil {
		s.logger.Debug(ctx, "Failed to get issues",
			"error", err,
		)
		return nil, 0, err
	}

	return issues, total, nil
}

func (s *detectionService) RenderReport(ctx context.Context, documentID string) (string, error) {
	result, err := s.GetResult(ctx, documentID)
	if err != nil {
		return "", err
	}
	return s.renderer.Render(result), nil
}

// DocumentCacheKey identifies a document together with the options it was
// analysed with.
func DocumentCacheKey(doc *domain.BankDocument, opts detection.Options) (string, error) {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document for cache key: %w", err)
	}
	return contentCacheKey(encoded, opts), nil
}

func contentCacheKey(content []byte, opts detection.Options) string {
	h := sha256.New()
	h.Write(content)
	h.Write([]byte("|llm=" + strconv.FormatBool(opts.EnableLLM)))
	return hex.EncodeToString(h.Sum(nil))
}
