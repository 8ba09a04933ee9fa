package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/grachmannico95/statement-fraud-detector/internal/detection"
	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/grachmannico95/statement-fraud-detector/internal/service"
	"github.com/grachmannico95/statement-fraud-detector/pkg/logger"
	"github.com/labstack/echo/v4"
)

const maxPerPage = 100

var errTooLarge = errors.New("payload too large")

type DetectionHandler struct {
	service    service.DetectionService
	logger     *logger.Logger
	maxBytes   int64
	llmDefault bool
}

// NewDetectionHandler builds the handler. llmDefault applies when a request
// does not say whether the model should be consulted.
func NewDetectionHandler(service service.DetectionService, log *logger.Logger, maxBytes int64, llmDefault bool) *DetectionHandler {
	return &DetectionHandler{
		service:    service,
		logger:     log,
		maxBytes:   maxBytes,
		llmDefault: llmDefault,
	}
}

func (h *DetectionHandler) DetectJSON(c echo.Context) error {
	ctx := c.Request().Context()

	opts, err := h.options(c.QueryParam("llm"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	data, err := h.readLimited(c.Request().Body)
	if err != nil {
		return h.writeError(c, err)
	}

	doc, err := domain.DecodeDocument(data)
	if err != nil {
		return h.writeError(c, err)
	}

	result, err := h.service.Detect(ctx, doc, opts)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *DetectionHandler) DetectPDF(c echo.Context) error {
	ctx := c.Request().Context()

	opts, err := h.options(c.FormValue("llm"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	if h.maxBytes > 0 && file.Size > h.maxBytes {
		return h.writeError(c, errTooLarge)
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open file",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to open file",
		})
	}
	defer src.Close()

	content, err := h.readLimited(src)
	if err != nil {
		return h.writeError(c, err)
	}

	job, err := h.service.SubmitPDF(ctx, file.Filename, content, opts)
	if err != nil {
		return h.writeError(c, err)
	}

	h.logger.Info(ctx, "PDF accepted",
		"job_id", job.ID,
		"file_name", file.Filename,
	)

	return c.JSON(http.StatusAccepted, job)
}

func (h *DetectionHandler) GetJob(c echo.Context) error {
	job, err := h.service.GetJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, job)
}

func (h *DetectionHandler) GetResult(c echo.Context) error {
	result, err := h.service.GetResult(c.Request().Context(), c.Param("document_id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *DetectionHandler) GetIssues(c echo.Context) error {
	ctx := c.Request().Context()
	documentID := c.Param("document_id")

	page, err := intParam(c.QueryParam("page"), 1)
	if err != nil {
		return h.writeError(c, err)
	}
	perPage, err := intParam(c.QueryParam("per_page"), 10)
	if err != nil {
		return h.writeError(c, err)
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	var severityFilter *domain.Severity
	if raw := c.QueryParam("severity"); raw != "" {
		severity := domain.Severity(strings.ToUpper(raw))
		switch severity {
		case domain.SeverityInfo, domain.SeverityWarn, domain.SeverityError:
			severityFilter = &severity
		default:
			return badRequest(c, "severity must be INFO, WARN or ERROR")
		}
	}

	issues, total, err := h.service.GetIssues(ctx, documentID, page, perPage, severityFilter)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"document_id": documentID,
		"items":       issues,
		"page":        page,
		"per_page":    perPage,
		"total":       total,
	})
}

func (h *DetectionHandler) GetReport(c echo.Context) error {
	md, err := h.service.RenderReport(c.Request().Context(), c.Param("document_id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
}

func (h *DetectionHandler) options(raw string) (detection.Options, error) {
	if raw == "" {
		return detection.Options{EnableLLM: h.llmDefault}, nil
	}
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return detection.Options{}, fmt.Errorf("llm must be a boolean, got %q", raw)
	}
	return detection.Options{EnableLLM: enabled}, nil
}

func (h *DetectionHandler) readLimited(r io.Reader) ([]byte, error) {
	if h.maxBytes <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, h.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > h.maxBytes {
		return nil, errTooLarge
	}
	return data, nil
}

func (h *DetectionHandler) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrMalformedDocument),
		errors.Is(err, domain.ErrInvalidPageParams):
		return badRequest(c, err.Error())
	case errors.Is(err, domain.ErrUnsupportedFile):
		return c.JSON(http.StatusUnsupportedMediaType, map[string]string{
			"error": "only PDF files are accepted",
		})
	case errors.Is(err, errTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{
			"error": fmt.Sprintf("payload exceeds %d bytes", h.maxBytes),
		})
	case errors.Is(err, domain.ErrJobNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "job not found",
		})
	case errors.Is(err, domain.ErrResultNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "detection result not found",
		})
	}

	h.logger.Error(c.Request().Context(), "Request failed",
		"path", c.Path(),
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": "internal error",
	})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: %q is not a positive integer", domain.ErrInvalidPageParams, raw)
	}
	return v, nil
}
