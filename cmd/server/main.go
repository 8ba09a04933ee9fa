package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/statement-fraud-detector/internal/anomaly"
	"github.com/grachmannico95/statement-fraud-detector/internal/config"
	"github.com/grachmannico95/statement-fraud-detector/internal/detection"
	"github.com/grachmannico95/statement-fraud-detector/internal/eventbus"
	"github.com/grachmannico95/statement-fraud-detector/internal/extractor"
	"github.com/grachmannico95/statement-fraud-detector/internal/handler"
	"github.com/grachmannico95/statement-fraud-detector/internal/llm"
	"github.com/grachmannico95/statement-fraud-detector/internal/report"
	"github.com/grachmannico95/statement-fraud-detector/internal/risk"
	"github.com/grachmannico95/statement-fraud-detector/internal/server"
	"github.com/grachmannico95/statement-fraud-detector/internal/service"
	"github.com/grachmannico95/statement-fraud-detector/internal/storage"
	"github.com/grachmannico95/statement-fraud-detector/internal/validation"
	"github.com/grachmannico95/statement-fraud-detector/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	repo := storage.NewMemoryStore()
	log.Info(ctx, "Repository initialized")

	var refiner extractor.Refiner = extractor.NopRefiner{}
	var adjuster risk.Adjuster = risk.NopAdjuster{}
	if cfg.LLM.Available() {
		client, err := llm.NewClient(ctx, cfg.LLM, log)
		if err != nil {
			log.Warn(ctx, "Model client unavailable, continuing without it",
				"error", err,
			)
		} else {
			refiner, adjuster = client, client
			log.Info(ctx, "Model client initialized",
				"model", cfg.LLM.Model,
			)
		}
	}

	thresholds := risk.Thresholds{
		Suspicious:  cfg.Risk.SuspiciousThreshold,
		FraudLikely: cfg.Risk.FraudLikelyThreshold,
	}
	engine := risk.NewEngine(adjuster, log,
		risk.WithTimeout(cfg.LLM.Timeout),
		risk.WithThresholds(thresholds),
	)
	pipeline := detection.NewPipeline(
		validation.NewSet(validation.WithSourceValidator(validation.PDFProvenance{})),
		anomaly.NewSet(),
		engine,
		log,
	)
	ext := extractor.New(refiner, log)

	bus := eventbus.New(log, &eventbus.Config{
		ChannelBuffer: cfg.EventBus.ChannelBufferSize,
		MaxAttempts:   cfg.Worker.MaxRetries,
	})
	log.Info(ctx, "Event bus initialized")

	detectionConsumer := eventbus.NewDetectionConsumer(repo, ext, pipeline, log, cfg.Worker.PoolSize)
	log.Info(ctx, "Detection consumer initialized",
		"worker_count", cfg.Worker.PoolSize,
	)

	err := bus.Subscribe(eventbus.EventTypeDetection, detectionConsumer)
	if err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer",
			"error", err,
		)
	}

	err = bus.Start(ctx)
	if err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}

	detectionService := service.NewDetectionService(repo, pipeline, bus, report.NewRenderer(engine.Thresholds()), log)
	log.Info(ctx, "Services initialized")

	detectionHandler := handler.NewDetectionHandler(detectionService, log, cfg.Upload.MaxBytes, cfg.LLM.Available())
	healthHandler := handler.NewHealthHandler(cfg.LLM.Available())

	srv := server.New(cfg, log, detectionHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// HTTP first so no new jobs arrive while workers drain.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
