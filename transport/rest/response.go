package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/mindgames-backend/internal/apperror"
)

// Response is the envelope of every JSON reply.
type Response struct {
	Success bool `json:"success"`
	Code    int  `json:"code"`
	Extras  any  `json:"extras"`
}

func NewResponse(success bool, code int, extras any) Response {
	return Response{
		Success: success,
		Code:    code,
		Extras:  extras,
	}
}

func successResponse(c *gin.Context, code int, extras any) {
	c.JSON(code, NewResponse(true, code, extras))
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, NewResponse(false, code, gin.H{"message": message}))
}

// statusFor maps use case errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidMove):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrConcurrentWrite):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
