package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Failure is the error envelope shared by every endpoint.
type Failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, Failure{Success: false, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func TooManyRequests(c *gin.Context, message string) {
	Write(c, http.StatusTooManyRequests, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func statusFor(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindPermission:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		// validation, invalid state and conflicts all surface as 400.
		return http.StatusBadRequest
	}
}

// WriteError maps a BusinessError onto its HTTP status; anything else is an
// unexpected failure and surfaces as a generic 500.
func WriteError(c *gin.Context, err error, fallback string) {
	if be, ok := AsBusiness(err); ok {
		Write(c, statusFor(be.Kind), be.Message)
		return
	}

	zap.L().Error("unexpected error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	Internal(c, fallback)
}
