package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"gamenight/backend/internal/engine"

	"github.com/gin-gonic/gin"
)

// Handler exposes the engine operations over HTTP. The engine is injected
// rather than reached through a package global so tests can stand up a
// handler against any database.
type Handler struct {
	Engine *engine.Engine
}

// New creates a Handler on top of the given engine.
func New(e *engine.Engine) *Handler {
	return &Handler{Engine: e}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// respondError maps an engine error to its HTTP status. Store failures are
// logged with their cause but reported to the client generically.
func respondError(c *gin.Context, err error) {
	var validation engine.ValidationError
	var storeErr *engine.StoreError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validation.Error()})
	case errors.Is(err, engine.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, engine.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: engine.ErrConflict.Error()})
	case errors.As(err, &storeErr):
		log.Printf("store error: %v", storeErr)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	default:
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// Helper to split comma-separated strings
func splitCommaSeparated(s string) []string {
	var result []string
	parts := strings.Split(s, ",")
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
