package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

type ApiResponse struct {
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Error   bool         `json:"error,omitempty"`
	Errors  any          `json:"errors,omitempty"`
	Rate    *RateLimiter `json:"rate_limit,omitempty"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// helper to fetch rate limiter info from Gin context
func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Message: message,
		Data:    data,
		Rate:    getRateFromContext(c),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message: message,
		Error:   true,
		Rate:    getRateFromContext(c),
	}
}

// ValidationErrorResponse carries field-level binding errors alongside the message.
func ValidationErrorResponse(c *gin.Context, message string, errs any) ApiResponse {
	return ApiResponse{
		Message: message,
		Error:   true,
		Errors:  errs,
		Rate:    getRateFromContext(c),
	}
}
