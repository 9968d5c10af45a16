package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/local-services/internal/domain/discovery"
	"github.com/BruksfildServices01/local-services/internal/dto"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/httpresp"
	ucCatalogue "github.com/BruksfildServices01/local-services/internal/usecase/catalogue"
	ucDiscovery "github.com/BruksfildServices01/local-services/internal/usecase/discovery"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler serves the unauthenticated catalogue.
type PublicHandler struct {
	services *ucCatalogue.ListServices
	nearby   *ucDiscovery.ListNearby
}

func NewPublicHandler(services *ucCatalogue.ListServices, nearby *ucDiscovery.ListNearby) *PublicHandler {
	return &PublicHandler{services: services, nearby: nearby}
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, providers, err := h.services.Active(c.Request.Context(), c.Query("category"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.PublicServices(services, providers))
}

func (h *PublicHandler) Nearby(c *gin.Context) {
	q, err := discovery.ParseQuery(
		c.Query("lat"),
		c.Query("lon"),
		c.Query("radius"),
		c.Query("category"),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	matches, err := h.nearby.Execute(c.Request.Context(), q)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Nearby(matches))
}

func (h *PublicHandler) GetProvider(c *gin.Context) {
	id, ok := idParam(c, "id", httperr.CodeProviderNotFound)
	if !ok {
		return
	}

	p, err := h.services.Provider(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Provider(p))
}

func (h *PublicHandler) ProviderServices(c *gin.Context) {
	id, ok := idParam(c, "id", httperr.CodeProviderNotFound)
	if !ok {
		return
	}

	services, err := h.services.OfProvider(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Services(services))
}
