package server

import (
	"context"
	"fmt"

	"github.com/grachmannico95/statement-fraud-detector/internal/config"
	"github.com/grachmannico95/statement-fraud-detector/internal/handler"
	"github.com/grachmannico95/statement-fraud-detector/internal/middleware"
	"github.com/grachmannico95/statement-fraud-detector/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo             *echo.Echo
	cfg              *config.Config
	logger           *logger.Logger
	detectionHandler *handler.DetectionHandler
	healthHandler    *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	detectionHandler *handler.DetectionHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:             e,
		cfg:              cfg,
		logger:           log,
		detectionHandler: detectionHandler,
		healthHandler:    healthHandler,
	}
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	s.echo.POST("/detections", s.detectionHandler.DetectJSON)
	s.echo.POST("/detections/pdf", s.detectionHandler.DetectPDF)
	s.echo.GET("/detections/:document_id", s.detectionHandler.GetResult)
	s.echo.GET("/detections/:document_id/issues", s.detectionHandler.GetIssues)
	s.echo.GET("/detections/:document_id/report", s.detectionHandler.GetReport)

	s.echo.GET("/jobs/:id", s.detectionHandler.GetJob)
}

func (s *Server) Handler() *echo.Echo {
	return s.echo
}
