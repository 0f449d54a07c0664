package middleware

import (
	"fmt"

	"cn7-transcriptor/internal/api/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler recovers from panics and answers with an internal APIError
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString(RequestIDKey)

		apiErr, ok := recovered.(*errors.APIError)
		if !ok {
			logger.Error("Recovered from panic",
				zap.String("recovered", fmt.Sprint(recovered)),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			apiErr = errors.NewInternalError("Internal server error")
		}
		apiErr.RequestID = requestID

		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError writes err as an APIError response. Unmapped errors are
// logged and hidden behind a generic message.
func HandleError(c *gin.Context, logger *zap.Logger, err error) {
	if err == nil {
		return
	}

	apiErr := errors.FromDomain(err)
	apiErr.RequestID = c.GetString(RequestIDKey)
	if apiErr.HTTPStatus() >= 500 && logger != nil {
		logger.Error("Request failed",
			zap.Error(err),
			zap.String("request_id", apiErr.RequestID),
			zap.String("path", c.Request.URL.Path),
		)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
