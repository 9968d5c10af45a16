package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/local-services/internal/audit"
	"github.com/BruksfildServices01/local-services/internal/clock"
	domain "github.com/BruksfildServices01/local-services/internal/domain/booking"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/models"
	"github.com/BruksfildServices01/local-services/internal/notify"
)

type CreateBookingInput struct {
	ServiceID uint
	Notes     string
}

type CreateBookingResult struct {
	Booking *models.Booking
	// SMSError is non-empty when a notification failed. The booking is
	// stored either way.
	SMSError string
}

type CreateBooking struct {
	repo     domain.Repository
	notifier *notify.Notifier
	audit    *audit.Dispatcher
	logger   *zap.Logger
	clock    clock.Clock
}

// NewCreateBooking builds the usecase. A nil notifier disables messages.
func NewCreateBooking(
	repo domain.Repository,
	notifier *notify.Notifier,
	audit *audit.Dispatcher,
	logger *zap.Logger,
	clk clock.Clock,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		logger:   logger,
		clock:    clk,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	customerID uint,
	userID uint,
	in CreateBookingInput,
) (*CreateBookingResult, error) {
	if in.ServiceID == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeMissingServiceID)
	}

	var (
		b        *models.Booking
		smsError error
	)

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		service, err := tx.GetBookableService(ctx, in.ServiceID)
		if err != nil {
			return err
		}

		customer, err := tx.GetCustomer(ctx, customerID)
		if err != nil {
			return err
		}

		provider, err := tx.GetProviderContact(ctx, service.ProviderID)
		if err != nil {
			return err
		}

		b = domain.New(customerID, service, in.Notes, uc.clock.Now())
		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		b.Service = *service
		b.Customer = *customer
		b.Provider = models.Provider{ID: provider.ID, Name: provider.Name, Phone: provider.Phone}

		// Delivery failures are reported, never returned: the row stays.
		smsError = uc.notify(ctx, customer, provider, service)
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := &CreateBookingResult{Booking: b}
	if smsError != nil {
		res.SMSError = smsError.Error()
		uc.logger.Warn("booking notification failed",
			zap.Uint("booking_id", b.ID),
			zap.Error(smsError))
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: b.ProviderID,
		UserID:     &userID,
		Action:     audit.ActionBookingCreated,
		Entity:     "booking",
		EntityID:   &b.ID,
		Metadata: map[string]any{
			"service_id":  b.ServiceID,
			"customer_id": b.CustomerID,
			"total_price": b.TotalPrice.String(),
			"sms_error":   res.SMSError,
		},
	})

	return res, nil
}

func (uc *CreateBooking) notify(
	ctx context.Context,
	customer *models.Customer,
	provider *domain.ProviderContact,
	service *models.Service,
) error {
	if uc.notifier == nil {
		return nil
	}

	var errs []error

	if customer.Phone != "" {
		if _, err := uc.notifier.SendBookingConfirmation(
			ctx, customer.Phone, provider.Name, provider.Phone, provider.Email,
		); err != nil {
			errs = append(errs, err)
		}
	}

	if provider.Phone != "" {
		if _, err := uc.notifier.SendBookingNotification(
			ctx, provider.Phone, customer.Name, customer.Address, service.Name,
		); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
