package dto

import (
	"time"

	"github.com/BruksfildServices01/local-services/internal/models"
)

const dateLayout = "2006-01-02"

type BookingDTO struct {
	ID           uint      `json:"id"`
	CustomerID   uint      `json:"customer_id"`
	ProviderID   uint      `json:"provider_id"`
	ServiceID    uint      `json:"service_id"`
	CustomerName string    `json:"customerName"`
	ProviderName string    `json:"providerName"`
	ServiceName  string    `json:"serviceName"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	TotalPrice   float64   `json:"total_price"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Booking projects b. Names are empty when the relation was not loaded.
func Booking(b *models.Booking) BookingDTO {
	return BookingDTO{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		ProviderID:   b.ProviderID,
		ServiceID:    b.ServiceID,
		CustomerName: b.Customer.Name,
		ProviderName: b.Provider.Name,
		ServiceName:  b.Service.Name,
		Date:         b.BookingDate.UTC().Format(dateLayout),
		Time:         b.BookingTime,
		Status:       b.Status,
		TotalPrice:   b.TotalPrice.InexactFloat64(),
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func Bookings(in []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(in))
	for i := range in {
		out = append(out, Booking(&in[i]))
	}
	return out
}

// CreatedBookingDTO is returned from booking creation. SMSError is set when
// a notification could not be delivered; the booking is stored regardless.
type CreatedBookingDTO struct {
	Message  string     `json:"message"`
	Booking  BookingDTO `json:"booking"`
	SMSError *string    `json:"sms_error,omitempty"`
}
