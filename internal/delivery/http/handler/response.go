package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gdugdh24/profiles-backend/internal/domain"
	"github.com/gdugdh24/profiles-backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Code    int                     `json:"code"`
	Details []domain.FieldViolation `json:"details,omitempty"`
}

// IDResponse represents the response of a create call
type IDResponse struct {
	ID string `json:"id"`
}

// writeError maps a domain error onto its status code.
func writeError(c *gin.Context, err error) {
	status := domain.StatusOf(err)
	resp := ErrorResponse{
		Error: domain.MessageOf(err),
		Code:  status,
	}
	var de *domain.Error
	if errors.As(err, &de) {
		resp.Details = de.Details
	}

	if status >= 500 {
		logger.From(c.Request.Context()).Error("request failed", "err", err)
	}

	c.JSON(status, resp)
}

func badRequest(c *gin.Context, message string) {
	writeError(c, domain.InvalidInput(message))
}

// bindError answers a request whose body could not be read or decoded.
// Bodies cut off by the size limit get 413, everything else 400.
func bindError(c *gin.Context, err error, message string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			Code:  http.StatusRequestEntityTooLarge,
		})
		return
	}
	badRequest(c, message)
}
