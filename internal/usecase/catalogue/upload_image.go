package catalogue

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/local-services/internal/audit"
	"github.com/BruksfildServices01/local-services/internal/clock"
	domain "github.com/BruksfildServices01/local-services/internal/domain/catalogue"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/media"
	"github.com/BruksfildServices01/local-services/internal/models"
)

type UploadServiceImage struct {
	repo      domain.Repository
	processor *media.Processor
	store     media.ObjectStore
	audit     *audit.Dispatcher
	clock     clock.Clock
}

// NewUploadServiceImage builds the usecase. With a nil store every upload
// fails with media_unavailable.
func NewUploadServiceImage(
	repo domain.Repository,
	processor *media.Processor,
	store media.ObjectStore,
	audit *audit.Dispatcher,
	clk clock.Clock,
) *UploadServiceImage {
	return &UploadServiceImage{repo: repo, processor: processor, store: store, audit: audit, clock: clk}
}

func (uc *UploadServiceImage) Execute(
	ctx context.Context,
	providerID uint,
	userID uint,
	serviceID uint,
	image io.Reader,
) (*models.Service, error) {
	if uc.store == nil {
		return nil, httperr.ErrBusiness(httperr.CodeMediaUnavailable)
	}

	s, err := uc.repo.GetOwnedService(ctx, providerID, serviceID)
	if err != nil {
		return nil, err
	}

	data, err := uc.processor.Process(image)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("services/%d/%s.webp", s.ID, uuid.NewString())
	url, err := uc.store.Put(ctx, key, media.ContentType, data)
	if err != nil {
		return nil, err
	}

	s.ImageURL = url
	s.UpdatedAt = uc.clock.Now()
	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		UserID:     &userID,
		Action:     audit.ActionServiceImageUpdated,
		Entity:     "service",
		EntityID:   &s.ID,
		Metadata:   map[string]any{"key": key, "bytes": len(data)},
	})

	return s, nil
}
