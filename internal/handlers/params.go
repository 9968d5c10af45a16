package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/local-services/internal/httperr"
)

// idParam parses a positive numeric path parameter. Anything else is
// reported as notFoundCode so malformed ids look like missing ones.
func idParam(c *gin.Context, name, notFoundCode string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		httperr.Respond(c, httperr.ErrBusiness(notFoundCode))
		return 0, false
	}
	return uint(v), true
}

func invalidRequest(c *gin.Context) {
	httperr.Respond(c, httperr.ErrBusiness(httperr.CodeInvalidRequest))
}
