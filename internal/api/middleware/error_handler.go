package middleware

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"speech-summarizer/internal/api/errors"
)

// ErrorHandler recovers panics into the generic internal error response
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Error("Recovered from panic",
			zap.Any("recovered", recovered),
			zap.String("request_id", GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Stack("stack"),
		)

		apiErr := errors.NewInternalError()
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError is a helper function for handlers to return errors.
// APIErrors are rendered as they are; anything else is logged and
// answered with the generic internal error.
func HandleError(c *gin.Context, logger *zap.Logger, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)

	var apiErr *errors.APIError
	if !stderrors.As(err, &apiErr) {
		logger.Error("Internal server error",
			zap.Error(err),
			zap.String("request_id", GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		apiErr = errors.NewInternalError()
	}

	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
