package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/local-services/internal/dto"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/httpresp"
	"github.com/BruksfildServices01/local-services/internal/middleware"
	ucBooking "github.com/BruksfildServices01/local-services/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create    *ucBooking.CreateBooking
	setStatus *ucBooking.SetStatus
	list      *ucBooking.ListBookings
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	setStatus *ucBooking.SetStatus,
	list *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{create: create, setStatus: setStatus, list: list}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID uint   `json:"service_id"`
	Notes     string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ======================================================
// CUSTOMER
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	res, err := h.create.Execute(c.Request.Context(), user.CustomerID, user.UserID, ucBooking.CreateBookingInput{
		ServiceID: req.ServiceID,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := dto.CreatedBookingDTO{
		Message: "Booking created successfully",
		Booking: dto.Booking(res.Booking),
	}
	if res.SMSError != "" {
		out.SMSError = &res.SMSError
	}

	httpresp.Created(c, out)
}

func (h *BookingHandler) ListForCustomer(c *gin.Context) {
	user := middleware.CurrentUser(c)

	bookings, err := h.list.ForCustomer(c.Request.Context(), user.CustomerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Bookings(bookings))
}

// ======================================================
// PROVIDER
// ======================================================

func (h *BookingHandler) ListForProvider(c *gin.Context) {
	user := middleware.CurrentUser(c)

	bookings, err := h.list.ForProvider(c.Request.Context(), user.ProviderID, c.Query("status"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Bookings(bookings))
}

func (h *BookingHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := idParam(c, "id", httperr.CodeBookingNotFound)
	if !ok {
		return
	}

	b, err := h.list.Get(c.Request.Context(), user.ProviderID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Booking(b))
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := idParam(c, "id", httperr.CodeBookingNotFound)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	b, err := h.setStatus.Execute(c.Request.Context(), user.ProviderID, user.UserID, id, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Booking status updated successfully", "booking", dto.Booking(b))
}
