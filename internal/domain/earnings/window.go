package earnings

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/local-services/internal/models"
)

const RecentLimit = 10

// Windows holds the UTC day boundaries the buckets are computed from.
type Windows struct {
	Today      time.Time
	Tomorrow   time.Time
	WeekStart  time.Time
	MonthStart time.Time
}

// WindowsAt derives the buckets for now. Weeks start on Monday.
func WindowsAt(now time.Time) Windows {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(today.Weekday()) + 6) % 7

	return Windows{
		Today:      today,
		Tomorrow:   today.AddDate(0, 0, 1),
		WeekStart:  today.AddDate(0, 0, -offset),
		MonthStart: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC),
	}
}

// Range bounds booking_date as [From, To). A nil bound is open.
type Range struct {
	From *time.Time
	To   *time.Time
}

type Repository interface {
	SumCompleted(ctx context.Context, providerID uint, r Range) (decimal.Decimal, error)
	RecentCompleted(ctx context.Context, providerID uint, limit int) ([]models.Booking, error)
}
