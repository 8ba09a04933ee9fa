package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	modelAvailable bool
}

func NewHealthHandler(modelAvailable bool) *HealthHandler {
	return &HealthHandler{modelAvailable: modelAvailable}
}

func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":          "ok",
		"model_available": h.modelAvailable,
		"timestamp":       time.Now().Format(time.RFC3339),
	})
}
