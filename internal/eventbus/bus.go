package eventbus

import (
	"context"
	"errors"
	"sync"

	"github.com/grachmannico95/statement-fraud-detector/pkg/logger"
	"github.com/grachmannico95/statement-fraud-detector/pkg/retry"
)

var (
	ErrBusFull       = errors.New("event channel full")
	ErrNoSubscribers = errors.New("no consumer subscribed for event type")
)

type EventBus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, consumer Consumer) error
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type eventBus struct {
	channels      map[EventType]chan Event
	consumers     map[EventType][]Consumer
	mu            sync.RWMutex
	wg            sync.WaitGroup
	cancel        context.CancelFunc
	logger        *logger.Logger
	channelBuffer int
	maxAttempts   int
	started       bool
}

type Config struct {
	ChannelBuffer int
	// MaxAttempts bounds how often a failing Consume is retried per event.
	MaxAttempts int
}

func New(log *logger.Logger, cfg *Config) EventBus {
	if cfg == nil {
		cfg = &Config{}
	}
	eb := &eventBus{
		channels:      make(map[EventType]chan Event),
		consumers:     make(map[EventType][]Consumer),
		logger:        log,
		channelBuffer: cfg.ChannelBuffer,
		maxAttempts:   cfg.MaxAttempts,
	}
	if eb.channelBuffer <= 0 {
		eb.channelBuffer = 100
	}
	if eb.maxAttempts <= 0 {
		eb.maxAttempts = 1
	}
	return eb
}

func (eb *eventBus) Subscribe(eventType EventType, consumer Consumer) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if _, exists := eb.channels[eventType]; !exists {
		eb.channels[eventType] = make(chan Event, eb.channelBuffer)
	}
	eb.consumers[eventType] = append(eb.consumers[eventType], consumer)

	return nil
}

func (eb *eventBus) Start(ctx context.Context) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.started {
		return nil
	}

	var runCtx context.Context
	runCtx, eb.cancel = context.WithCancel(ctx)

	for eventType, consumers := range eb.consumers {
		ch := eb.channels[eventType]

		for _, consumer := range consumers {
			workers := consumer.GetWorkerCount()
			if workers < 1 {
				workers = 1
			}
			eb.logger.Info(runCtx, "Starting workers",
				"event_type", eventType,
				"worker_count", workers,
			)

			for i := 0; i < workers; i++ {
				eb.wg.Add(1)
				go eb.worker(runCtx, ch, consumer, i)
			}
		}
	}

	eb.started = true
	eb.logger.Info(runCtx, "Event bus started")

	return nil
}

func (eb *eventBus) worker(ctx context.Context, ch <-chan Event, consumer Consumer, workerID int) {
	defer eb.wg.Done()

	for {
		select {
		case <-ctx.Done():
			eb.logger.Debug(ctx, "Worker stopping", "worker_id", workerID)
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			eb.handle(ctx, event, consumer, workerID)
		}
	}
}

func (eb *eventBus) handle(ctx context.Context, event Event, consumer Consumer, workerID int) {
	if event.ID != "" {
		ctx = logger.WithTraceID(ctx, event.ID)
	}

	err := retry.Do(ctx, func() error {
		return consumer.Consume(ctx, event)
	}, retry.WithMaxAttempts(eb.maxAttempts))

	if err != nil {
		eb.logger.Error(ctx, "Failed to process event",
			"event_id", event.ID,
			"event_type", event.Type,
			"worker_id", workerID,
			"error", err,
		)
		return
	}

	eb.logger.Debug(ctx, "Event processed",
		"event_id", event.ID,
		"event_type", event.Type,
		"worker_id", workerID,
	)
}

// Publish never blocks. A full channel is reported as ErrBusFull so the
// caller can settle whatever the event was tracking.
func (eb *eventBus) Publish(ctx context.Context, event Event) error {
	eb.mu.RLock()
	ch, exists := eb.channels[event.Type]
	eb.mu.RUnlock()

	if !exists {
		return ErrNoSubscribers
	}

	select {
	case ch <- event:
		eb.logger.Debug(ctx, "Event published",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		eb.logger.Warn(ctx, "Event channel full, event rejected",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return ErrBusFull
	}
}

func (eb *eventBus) Shutdown(ctx context.Context) error {
	eb.logger.Info(ctx, "Shutting down event bus")

	eb.mu.RLock()
	cancel := eb.cancel
	eb.mu.RUnlock()
	if cancel != nil {
		cancel()
	}

	done := make(chan struct{})
	go func() {
		eb.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		eb.logger.Info(ctx, "Event bus shutdown complete")
		return nil
	case <-ctx.Done():
		eb.logger.Warn(ctx, "Event bus shutdown timeout")
		return ctx.Err()
	}
}
