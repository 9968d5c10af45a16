package earnings

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/local-services/internal/clock"
	domain "github.com/BruksfildServices01/local-services/internal/domain/earnings"
	"github.com/BruksfildServices01/local-services/internal/models"
)

type Summary struct {
	Today  decimal.Decimal
	Week   decimal.Decimal
	Month  decimal.Decimal
	Total  decimal.Decimal
	Recent []models.Booking
}

type ComputeEarnings struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewComputeEarnings(repo domain.Repository, clk clock.Clock) *ComputeEarnings {
	return &ComputeEarnings{repo: repo, clock: clk}
}

// Execute sums completed bookings per window. Week and month have no upper
// bound, so completed bookings dated in the future count towards them.
func (uc *ComputeEarnings) Execute(ctx context.Context, providerID uint) (*Summary, error) {
	w := domain.WindowsAt(uc.clock.Now())

	ranges := []domain.Range{
		{From: &w.Today, To: &w.Tomorrow},
		{From: &w.WeekStart},
		{From: &w.MonthStart},
		{},
	}

	sums := make([]decimal.Decimal, len(ranges))
	for i, r := range ranges {
		v, err := uc.repo.SumCompleted(ctx, providerID, r)
		if err != nil {
			return nil, err
		}
		sums[i] = v
	}

	recent, err := uc.repo.RecentCompleted(ctx, providerID, domain.RecentLimit)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Today:  sums[0],
		Week:   sums[1],
		Month:  sums[2],
		Total:  sums[3],
		Recent: recent,
	}, nil
}
