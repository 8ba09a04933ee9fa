package eventbus

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/grachmannico95/statement-fraud-detector/internal/detection"
	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/grachmannico95/statement-fraud-detector/internal/extractor"
	"github.com/grachmannico95/statement-fraud-detector/pkg/logger"
)

type DocumentExtractor interface {
	ExtractPDF(ctx context.Context, content *extractor.PDFContent, opts extractor.Options) *domain.BankDocument
}

type Detector interface {
	Run(ctx context.Context, doc *domain.BankDocument, opts detection.Options) (*domain.DetectionResult, error)
}

// DetectionConsumer reads an uploaded PDF, runs the detection pipeline over
// it and settles the job. Unreadable or rejected documents fail the job
// without a retry; only repository errors are returned to the bus.
type DetectionConsumer struct {
	repo        domain.Repository
	extractor   DocumentExtractor
	detector    Detector
	readPDF     func(io.ReaderAt, int64) (*extractor.PDFContent, error)
	logger      *logger.Logger
	workerCount int
}

func NewDetectionConsumer(repo domain.Repository, ext DocumentExtractor, detector Detector, log *logger.Logger, workerCount int) *DetectionConsumer {
	return &DetectionConsumer{
		repo:        repo,
		extractor:   ext,
		detector:    detector,
		readPDF:     extractor.ReadPDF,
		logger:      log,
		workerCount: workerCount,
	}
}

func (dc *DetectionConsumer) Consume(ctx context.Context, event Event) error {
	processed, err := dc.repo.IsEventProcessed(ctx, event.ID)
	if err != nil {
		dc.logger.Error(ctx, "Failed to check event processed status",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}
	if processed {
		dc.logger.Debug(ctx, "Event already processed, skipping",
			"event_id", event.ID,
		)
		return nil
	}

	payload, ok := event.Payload.(DetectionEvent)
	if !ok {
		dc.logger.Error(ctx, "Invalid payload type for detection event",
			"event_id", event.ID,
		)
		return fmt.Errorf("invalid payload type %T", event.Payload)
	}

	ctx = logger.WithJobID(ctx, payload.JobID)

	result, runErr := dc.detect(ctx, payload)
	if runErr != nil {
		dc.logger.Warn(ctx, "Detection failed",
			"file_name", payload.FileName,
			"error", runErr,
		)
		if err := dc.repo.FailJob(ctx, payload.JobID, runErr.Error()); err != nil {
			return err
		}
		return dc.repo.MarkEventProcessed(ctx, event.ID)
	}

	if err := dc.repo.SaveResult(ctx, payload.CacheKey, result); err != nil {
		dc.logger.Error(ctx, "Failed to save detection result",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}
	if err := dc.repo.CompleteJob(ctx, payload.JobID, result.DocumentID); err != nil {
		return err
	}
	if err := dc.repo.MarkEventProcessed(ctx, event.ID); err != nil {
		dc.logger.Error(ctx, "Failed to mark event as processed",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	dc.logger.Info(ctx, "Detection job completed",
		"document_id", result.DocumentID,
		"classification", result.Classification,
	)

	return nil
}

func (dc *DetectionConsumer) detect(ctx context.Context, payload DetectionEvent) (*domain.DetectionResult, error) {
	content, err := dc.readPDF(bytes.NewReader(payload.Content), int64(len(payload.Content)))
	if err != nil {
		return nil, err
	}

	doc := dc.extractor.ExtractPDF(ctx, content, extractor.Options{
		DocumentID: "PDF_" + payload.JobID,
		EnableLLM:  payload.EnableLLM,
	})

	return dc.detector.Run(ctx, doc, detection.Options{EnableLLM: payload.EnableLLM})
}

func (dc *DetectionConsumer) GetWorkerCount() int {
	return dc.workerCount
}
