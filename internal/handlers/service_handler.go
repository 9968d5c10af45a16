package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/local-services/internal/dto"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/httpresp"
	"github.com/BruksfildServices01/local-services/internal/media"
	"github.com/BruksfildServices01/local-services/internal/middleware"
	ucCatalogue "github.com/BruksfildServices01/local-services/internal/usecase/catalogue"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	create *ucCatalogue.CreateService
	update *ucCatalogue.UpdateService
	delete *ucCatalogue.DeleteService
	list   *ucCatalogue.ListServices
	image  *ucCatalogue.UploadServiceImage
}

func NewServiceHandler(
	create *ucCatalogue.CreateService,
	update *ucCatalogue.UpdateService,
	delete *ucCatalogue.DeleteService,
	list *ucCatalogue.ListServices,
	image *ucCatalogue.UploadServiceImage,
) *ServiceHandler {
	return &ServiceHandler{
		create: create,
		update: update,
		delete: delete,
		list:   list,
		image:  image,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Duration    *int             `json:"duration"`
	IsActive    *bool            `json:"is_active"`
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Duration    *int             `json:"duration"`
	IsActive    *bool            `json:"is_active"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	services, err := h.list.ForProvider(c.Request.Context(), user.ProviderID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Services(services))
}

func (h *ServiceHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	s, err := h.create.Execute(c.Request.Context(), user.ProviderID, user.UserID, ucCatalogue.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Duration:    req.Duration,
		IsActive:    req.IsActive,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusCreated, "Service created successfully", "service", dto.Service(s))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := idParam(c, "id", httperr.CodeServiceNotFound)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	s, err := h.update.Execute(c.Request.Context(), user.ProviderID, user.UserID, id, ucCatalogue.UpdateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Duration:    req.Duration,
		IsActive:    req.IsActive,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Service updated successfully", "service", dto.Service(s))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := idParam(c, "id", httperr.CodeServiceNotFound)
	if !ok {
		return
	}

	res, err := h.delete.Execute(c.Request.Context(), user.ProviderID, user.UserID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if res.Deactivated {
		httpresp.OK(c, gin.H{
			"message":     "Service has bookings and was deactivated",
			"deactivated": true,
		})
		return
	}

	httpresp.OK(c, gin.H{
		"message":     "Service deleted successfully",
		"deactivated": false,
	})
}

// UploadImage accepts a multipart "image" field.
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := idParam(c, "id", httperr.CodeServiceNotFound)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, media.MaxUploadBytes+1<<20)

	fh, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.Respond(c, httperr.ErrBusiness(httperr.CodeInvalidImage))
			return
		}
		httperr.Respond(c, httperr.ErrBusiness(httperr.CodeMissingField))
		return
	}
	if fh.Size > media.MaxUploadBytes {
		httperr.Respond(c, httperr.ErrBusiness(httperr.CodeInvalidImage))
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer f.Close()

	s, err := h.image.Execute(c.Request.Context(), user.ProviderID, user.UserID, id, f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Image updated successfully", "service", dto.Service(s))
}
