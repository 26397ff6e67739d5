// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/report-export-service/internal/model"
	"github.com/maxviazov/report-export-service/internal/paginate"
	"github.com/maxviazov/report-export-service/internal/pdf"
	"github.com/maxviazov/report-export-service/internal/render"
	"github.com/maxviazov/report-export-service/internal/repository"
	"github.com/maxviazov/report-export-service/internal/service"
	"github.com/maxviazov/report-export-service/internal/spreadsheet"
)

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error       string               `json:"error"`
	Message     string               `json:"message,omitempty"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
}

// MapError converts a domain / infrastructure error into an HTTP status and payload.
// Client-caused errors carry the error text as message; server-side ones do not.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest, ErrorPayload{
			Error:       "invalid_input",
			Message:     "one or more fields are invalid",
			FieldErrors: service.FieldErrors(err),
		}
	}

	switch {
	case errors.Is(err, paginate.ErrInvalidArgument):
		return http.StatusBadRequest, ErrorPayload{Error: "invalid_argument", Message: err.Error()}
	case errors.Is(err, spreadsheet.ErrUnknownColumn):
		return http.StatusBadRequest, ErrorPayload{Error: "unknown_column", Message: err.Error()}
	case errors.Is(err, repository.ErrInvalidValue):
		return http.StatusBadRequest, ErrorPayload{Error: "invalid_value"}
	case errors.Is(err, model.ErrSchemaMismatch):
		return http.StatusUnprocessableEntity, ErrorPayload{Error: "schema_mismatch", Message: err.Error()}
	case errors.Is(err, render.ErrInvalidTemplate):
		return http.StatusUnprocessableEntity, ErrorPayload{Error: "invalid_template", Message: err.Error()}
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, ErrorPayload{Error: "not_found"}
	case errors.Is(err, repository.ErrAlreadyExists):
		return http.StatusConflict, ErrorPayload{Error: "already_exists"}
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, ErrorPayload{Error: "conflict"}
	case errors.Is(err, pdf.ErrUnsupported):
		return http.StatusNotImplemented, ErrorPayload{Error: "unsupported", Message: err.Error()}
	case errors.Is(err, pdf.ErrClosed):
		return http.StatusServiceUnavailable, ErrorPayload{Error: "unavailable"}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrorPayload{Error: "timeout"}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error"}
	}
}

// WriteError writes an error response and aborts the context.
// Server-side failures are attached to the gin context so the request logger can report them.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Disposition tells the client whether to display a file or save it.
type Disposition string

const (
	Inline     Disposition = "inline"
	Attachment Disposition = "attachment"
)

// WriteFile writes a binary document with its content type, length and disposition.
func WriteFile(c *gin.Context, contentType string, disposition Disposition, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%s", disposition, filename))
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, contentType, data)
}
