package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message writes {"message": msg} plus one named payload when key is set.
func Message(c *gin.Context, status int, msg, key string, payload any) {
	body := gin.H{"message": msg}
	if key != "" {
		body[key] = payload
	}
	c.JSON(status, body)
}
