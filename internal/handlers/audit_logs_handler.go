package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/local-services/internal/audit"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/httpresp"
	"github.com/BruksfildServices01/local-services/internal/middleware"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	reader audit.Reader
}

func NewAuditLogsHandler(reader audit.Reader) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	page, limit := audit.ParsePaging(c.DefaultQuery("page", "1"), c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		ProviderID: user.ProviderID,
		Action:     c.Query("action"),
		Entity:     c.Query("entity"),
		Page:       page,
		Limit:      limit,
	}

	// Unparseable dates are ignored, as are empty ones.
	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		f.To = &to
	}

	out, err := h.reader.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}
