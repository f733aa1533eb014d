package dto

import (
	"time"

	"depot/internal/errors"
)

type ErrorResponse struct {
	TraceID   string    `json:"traceId"`
	Status    int       `json:"status"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationErrorResponse struct {
	Error   string                    `json:"error"`
	Message string                    `json:"message"`
	Details []errors.ValidationDetail `json:"details"`
}
