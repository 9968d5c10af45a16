package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/local-services/internal/dto"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/httpresp"
	"github.com/BruksfildServices01/local-services/internal/middleware"
	ucEarnings "github.com/BruksfildServices01/local-services/internal/usecase/earnings"
)

type EarningsHandler struct {
	compute *ucEarnings.ComputeEarnings
}

func NewEarningsHandler(compute *ucEarnings.ComputeEarnings) *EarningsHandler {
	return &EarningsHandler{compute: compute}
}

func (h *EarningsHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)

	sum, err := h.compute.Execute(c.Request.Context(), user.ProviderID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.EarningsDTO{
		Today:              sum.Today.InexactFloat64(),
		Week:               sum.Week.InexactFloat64(),
		Month:              sum.Month.InexactFloat64(),
		Total:              sum.Total.InexactFloat64(),
		RecentTransactions: dto.Bookings(sum.Recent),
	})
}
