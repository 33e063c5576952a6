package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Houeta/hrms-api/internal/lib/logger/sl"
	"github.com/Houeta/hrms-api/internal/services/records"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

// renderError translates a service error into the HTTP status its kind
// maps to. Unclassified errors become a generic 500 so storage details
// never leak into responses.
func renderError(c *gin.Context, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, records.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, NewErrorResponse(err.Error()))
	case errors.Is(err, records.ErrConflict):
		c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error()))
	case errors.Is(err, records.ErrNotFound):
		c.JSON(http.StatusNotFound, NewErrorResponse(err.Error()))
	default:
		log.ErrorContext(c.Request.Context(), "request failed", sl.Err(err))
		c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
	}
}
