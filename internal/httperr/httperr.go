package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Respond writes err using the business code table. Anything that is not a
// BusinessError is logged and reported as a 500.
func Respond(c *gin.Context, err error) {
	code, ok := CodeOf(err)
	if !ok {
		zap.L().Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		Internal(c, CodeInternal, messageFor(CodeInternal))
		return
	}

	Write(c, StatusFor(code), code, messageFor(code))
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}
