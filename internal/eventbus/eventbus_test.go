package eventbus

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/grachmannico95/statement-fraud-detector/internal/detection"
	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/grachmannico95/statement-fraud-detector/internal/extractor"
	"github.com/grachmannico95/statement-fraud-detector/internal/storage"
	"github.com/grachmannico95/statement-fraud-detector/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statementText = `Account Statement
Statement Date: 2025-09-30
Account Number: 0012345678
Customer ID: CUST77
IFSC: HDFC0001234
Branch: Fort
2025-09-02 credit 1500.00 Salary September
2025-09-05 debit 200.00 Grocery store
`

type countingConsumer struct {
	calls   atomic.Int32
	failFor int32
	done    chan struct{}
	once    sync.Once
}

func (c *countingConsumer) Consume(context.Context, Event) error {
	n := c.calls.Add(1)
	if n <= c.failFor {
		return errors.New("transient")
	}
	c.once.Do(func() { close(c.done) })
	return nil
}

func (c *countingConsumer) GetWorkerCount() int { return 1 }

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for consumer")
	}
}

func TestEventBus_DeliversToSubscriber(t *testing.T) {
	log := logger.New("error")
	bus := New(log, &Config{ChannelBuffer: 4})
	consumer := &countingConsumer{done: make(chan struct{})}

	require.NoError(t, bus.Subscribe(EventTypeDetection, consumer))
	require.NoError(t, bus.Start(context.Background()))
	t.Cleanup(func() { _ = bus.Shutdown(context.Background()) })

	require.NoError(t, bus.Publish(context.Background(), Event{ID: "e1", Type: EventTypeDetection}))

	waitFor(t, consumer.done)
	assert.Equal(t, int32(1), consumer.calls.Load())
}

func TestEventBus_RetriesFailedConsume(t *testing.T) {
	bus := New(logger.New("error"), &Config{MaxAttempts: 3})
	consumer := &countingConsumer{failFor: 2, done: make(chan struct{})}

	require.NoError(t, bus.Subscribe(EventTypeDetection, consumer))
	require.NoError(t, bus.Start(context.Background()))
	t.Cleanup(func() { _ = bus.Shutdown(context.Background()) })

	require.NoError(t, bus.Publish(context.Background(), Event{ID: "e1", Type: EventTypeDetection}))

	waitFor(t, consumer.done)
	assert.Equal(t, int32(3), consumer.calls.Load())
}

func TestEventBus_PublishWithoutSubscriber(t *testing.T) {
	bus := New(logger.New("error"), nil)

	err := bus.Publish(context.Background(), Event{ID: "e1", Type: EventTypeDetection})

	assert.ErrorIs(t, err, ErrNoSubscribers)
}

func TestEventBus_PublishRejectsWhenFull(t *testing.T) {
	bus := New(logger.New("error"), &Config{ChannelBuffer: 1})
	require.NoError(t, bus.Subscribe(EventTypeDetection, &countingConsumer{done: make(chan struct{})}))

	// Not started, so nothing drains the channel.
	require.NoError(t, bus.Publish(context.Background(), Event{ID: "e1", Type: EventTypeDetection}))
	err := bus.Publish(context.Background(), Event{ID: "e2", Type: EventTypeDetection})

	assert.ErrorIs(t, err, ErrBusFull)
}

func TestEventBus_ShutdownBeforeStart(t *testing.T) {
	bus := New(logger.New("error"), nil)

	assert.NoError(t, bus.Shutdown(context.Background()))
}

func newTestConsumer(t *testing.T, readPDF func(io.ReaderAt, int64) (*extractor.PDFContent, error)) (*DetectionConsumer, *storage.MemoryStore) {
	t.Helper()
	log := logger.New("error")
	repo := storage.NewMemoryStore()
	pipeline := detection.NewPipeline(nil, nil, nil, log)

	dc := NewDetectionConsumer(repo, extractor.New(nil, log), pipeline, log, 2)
	dc.readPDF = readPDF
	return dc, repo
}

func detectionEvent(id, jobID string) Event {
	return Event{
		ID:   id,
		Type: EventTypeDetection,
		Payload: DetectionEvent{
			JobID:    jobID,
			FileName: "statement.pdf",
			Content:  []byte("%PDF-1.4"),
			CacheKey: "key-" + jobID,
		},
		Timestamp: time.Now(),
	}
}

func TestDetectionConsumer_CompletesJob(t *testing.T) {
	ctx := context.Background()
	dc, repo := newTestConsumer(t, func(io.ReaderAt, int64) (*extractor.PDFContent, error) {
		return &extractor.PDFContent{Text: statementText, Producer: "Core Banking Export", Pages: 1}, nil
	})
	require.NoError(t, repo.CreateJob(ctx, "job-1", "statement.pdf"))

	err := dc.Consume(ctx, detectionEvent("evt-1", "job-1"))
	require.NoError(t, err)

	job, err := repo.GetJob(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, job.Status)
	assert.Equal(t, "PDF_job-1", job.DocumentID)

	result, err := repo.GetResult(ctx, "PDF_job-1")
	require.NoError(t, err)
	assert.Equal(t, "PDF_job-1", result.DocumentID)

	cached, found, err := repo.GetCachedResult(ctx, "key-job-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, result.DocumentID, cached.DocumentID)

	processed, err := repo.IsEventProcessed(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestDetectionConsumer_UnreadablePDFFailsJob(t *testing.T) {
	ctx := context.Background()
	dc, repo := newTestConsumer(t, func(io.ReaderAt, int64) (*extractor.PDFContent, error) {
		return nil, domain.ErrPDFUnreadable
	})
	require.NoError(t, repo.CreateJob(ctx, "job-2", "broken.pdf"))

	err := dc.Consume(ctx, detectionEvent("evt-2", "job-2"))
	require.NoError(t, err)

	job, err := repo.GetJob(ctx, "job-2")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusFailed, job.Status)
	assert.Contains(t, job.Error, domain.ErrPDFUnreadable.Error())

	processed, err := repo.IsEventProcessed(ctx, "evt-2")
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestDetectionConsumer_SkipsProcessedEvent(t *testing.T) {
	ctx := context.Background()
	var reads atomic.Int32
	dc, repo := newTestConsumer(t, func(io.ReaderAt, int64) (*extractor.PDFContent, error) {
		reads.Add(1)
		return &extractor.PDFContent{Text: statementText}, nil
	})
	require.NoError(t, repo.MarkEventProcessed(ctx, "evt-3"))

	err := dc.Consume(ctx, detectionEvent("evt-3", "job-3"))

	require.NoError(t, err)
	assert.Zero(t, reads.Load())
}

func TestDetectionConsumer_RejectsWrongPayload(t *testing.T) {
	dc, _ := newTestConsumer(t, nil)

	err := dc.Consume(context.Background(), Event{ID: "evt-4", Type: EventTypeDetection, Payload: "nope"})

	assert.Error(t, err)
	assert.Equal(t, 2, dc.GetWorkerCount())
}
