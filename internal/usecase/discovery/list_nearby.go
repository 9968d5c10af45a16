package discovery

import (
	"context"

	"github.com/BruksfildServices01/local-services/internal/domain/catalogue"
	domain "github.com/BruksfildServices01/local-services/internal/domain/discovery"
)

type ListNearby struct {
	repo domain.Repository
}

func NewListNearby(repo domain.Repository) *ListNearby {
	return &ListNearby{repo: repo}
}

func (uc *ListNearby) Execute(ctx context.Context, q domain.Query) ([]domain.Match, error) {
	if q.Category != "" {
		if err := catalogue.ValidateCategory(q.Category); err != nil {
			return nil, err
		}
	}

	candidates, err := uc.repo.LocatedCandidates(ctx, q.Category)
	if err != nil {
		return nil, err
	}

	return domain.Rank(candidates, q), nil
}
