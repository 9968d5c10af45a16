package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/local-services/internal/domain/profile"
	"github.com/BruksfildServices01/local-services/internal/dto"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/httpresp"
	"github.com/BruksfildServices01/local-services/internal/middleware"
	ucProfile "github.com/BruksfildServices01/local-services/internal/usecase/profile"
)

type ProfileHandler struct {
	profiles *ucProfile.Profiles
}

func NewProfileHandler(profiles *ucProfile.Profiles) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// --------------------------------------------------
// Provider
// --------------------------------------------------

func (h *ProfileHandler) GetProvider(c *gin.Context) {
	user := middleware.CurrentUser(c)

	p, err := h.profiles.Provider(c.Request.Context(), user.ProviderID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Provider(p))
}

func (h *ProfileHandler) UpdateProvider(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var patch profile.ProviderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		invalidRequest(c)
		return
	}

	p, err := h.profiles.UpdateProvider(c.Request.Context(), user.ProviderID, patch)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Profile updated successfully", "provider", dto.Provider(p))
}

func (h *ProfileHandler) UpdateLocation(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ErrBusiness(httperr.CodeInvalidCoordinates))
		return
	}

	p, err := h.profiles.SetLocation(c.Request.Context(), user.ProviderID, *req.Latitude, *req.Longitude)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Location updated successfully", "provider", dto.Provider(p))
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (h *ProfileHandler) GetCustomer(c *gin.Context) {
	user := middleware.CurrentUser(c)

	cu, err := h.profiles.Customer(c.Request.Context(), user.CustomerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Customer(cu))
}

func (h *ProfileHandler) UpdateCustomer(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var patch profile.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		invalidRequest(c)
		return
	}

	cu, err := h.profiles.UpdateCustomer(c.Request.Context(), user.CustomerID, patch)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Profile updated successfully", "customer", dto.Customer(cu))
}
