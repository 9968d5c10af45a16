package booking

import (
	"time"

	"github.com/BruksfildServices01/local-services/internal/models"
)

const TimeLayout = "15:04:05"

// New builds a pending booking for service at now. The price is copied from
// the service and is never re-read afterwards.
func New(customerID uint, service *models.Service, notes string, now time.Time) *models.Booking {
	now = now.UTC()
	return &models.Booking{
		CustomerID:  customerID,
		ProviderID:  service.ProviderID,
		ServiceID:   service.ID,
		BookingDate: DateOf(now),
		BookingTime: now.Format(TimeLayout),
		Status:      string(InitialStatus()),
		TotalPrice:  service.Price,
		Notes:       notes,
	}
}

// SetStatus applies any of the four statuses regardless of the current one.
func SetStatus(b *models.Booking, to Status, now time.Time) {
	b.Status = string(to)
	b.UpdatedAt = now.UTC()
}

// DateOf truncates t to its UTC calendar day.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
