package booking

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/local-services/internal/clock"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/infra/repository"
	"github.com/BruksfildServices01/local-services/internal/models"
	"github.com/BruksfildServices01/local-services/internal/notify"
	"github.com/BruksfildServices01/local-services/internal/testutil"
)

type fakeSender struct {
	mu   sync.Mutex
	to   []string
	fail error
}

func (s *fakeSender) Send(_ context.Context, to, _ string) (notify.Ack, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.to = append(s.to, to)
	if s.fail != nil {
		return notify.Ack{}, s.fail
	}
	return notify.Ack{MessageID: "SM1", Status: "queued"}, nil
}

var now = time.Date(2024, 5, 15, 14, 30, 5, 0, time.UTC)

type fixture struct {
	db     *gorm.DB
	sender *fakeSender
	create *CreateBooking
	status *SetStatus
	list   *ListBookings
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	repo := repository.NewBookingGormRepository(db)
	sender := &fakeSender{}
	clk := clock.Fixed(now)

	return &fixture{
		db:     db,
		sender: sender,
		create: NewCreateBooking(repo, notify.NewNotifier(sender, time.Second), nil, zap.NewNop(), clk),
		status: NewSetStatus(repo, nil, clk),
		list:   NewListBookings(repo),
	}
}

func countBookings(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.Booking{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestCreateBooking_SnapshotsPrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := testutil.SeedProvider(t, f.db, "p@example.com", "555-0100", nil, nil)
	c := testutil.SeedCustomer(t, f.db, "c@example.com", "555-0199")
	s := testutil.SeedService(t, f.db, p.ID, "Dog walk", "pets", "25.00", true)

	res, err := f.create.Execute(ctx, c.ID, c.UserID, CreateBookingInput{ServiceID: s.ID, Notes: "gate code 12"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	b := res.Booking
	if b.Status != "pending" || b.ProviderID != p.ID || b.CustomerID != c.ID {
		t.Fatalf("booking = %+v", b)
	}
	if b.BookingTime != "14:30:05" || !b.BookingDate.Equal(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date/time = %v %s", b.BookingDate, b.BookingTime)
	}
	if res.SMSError != "" {
		t.Fatalf("unexpected sms error %q", res.SMSError)
	}

	if err := f.db.Model(&models.Service{}).Where("id = ?", s.ID).
		Update("price", decimal.RequireFromString("99.00")).Error; err != nil {
		t.Fatalf("reprice: %v", err)
	}

	got, err := f.list.ForCustomer(ctx, c.ID)
	if err != nil || len(got) != 1 {
		t.Fatalf("list: %v %d", err, len(got))
	}
	if !got[0].TotalPrice.Equal(decimal.RequireFromString("25")) {
		t.Fatalf("total_price = %s, want 25", got[0].TotalPrice)
	}
	if got[0].Service.Name != "Dog walk" || got[0].Notes != "gate code 12" {
		t.Fatalf("booking relations not loaded: %+v", got[0])
	}
}

func TestCreateBooking_NotifiesBothParties(t *testing.T) {
	f := newFixture(t)

	p := testutil.SeedProvider(t, f.db, "p@example.com", "(555) 010-0100", nil, nil)
	c := testutil.SeedCustomer(t, f.db, "c@example.com", "+445550199")
	s := testutil.SeedService(t, f.db, p.ID, "Wash", "vehicles", "40", true)

	if _, err := f.create.Execute(context.Background(), c.ID, c.UserID, CreateBookingInput{ServiceID: s.ID}); err != nil {
		t.Fatalf("create: %v", err)
	}

	want := []string{"+445550199", "+15550100100"}
	if strings.Join(f.sender.to, ",") != strings.Join(want, ",") {
		t.Fatalf("sent to %v, want %v", f.sender.to, want)
	}
}

func TestCreateBooking_CustomerWithoutPhone(t *testing.T) {
	f := newFixture(t)

	p := testutil.SeedProvider(t, f.db, "p@example.com", "555-0100", nil, nil)
	c := testutil.SeedCustomer(t, f.db, "c@example.com", "")
	s := testutil.SeedService(t, f.db, p.ID, "Trim", "beauty", "30", true)

	res, err := f.create.Execute(context.Background(), c.ID, c.UserID, CreateBookingInput{ServiceID: s.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Booking.ID == 0 {
		t.Fatal("booking not stored")
	}
	if len(f.sender.to) != 1 || f.sender.to[0] != "+15550100" {
		t.Fatalf("sent to %v, want only the provider", f.sender.to)
	}
}

func TestCreateBooking_NotificationFailureKeepsBooking(t *testing.T) {
	f := newFixture(t)
	f.sender.fail = errors.New("gateway down")

	p := testutil.SeedProvider(t, f.db, "p@example.com", "555-0100", nil, nil)
	c := testutil.SeedCustomer(t, f.db, "c@example.com", "555-0199")
	s := testutil.SeedService(t, f.db, p.ID, "Clean", "home", "80", true)

	res, err := f.create.Execute(context.Background(), c.ID, c.UserID, CreateBookingInput{ServiceID: s.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.Contains(res.SMSError, "sms sending failed") {
		t.Fatalf("sms_error = %q", res.SMSError)
	}
	if n := countBookings(t, f.db); n != 1 {
		t.Fatalf("bookings = %d, want 1", n)
	}
}

func TestCreateBooking_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := testutil.SeedProvider(t, f.db, "p@example.com", "", nil, nil)
	c := testutil.SeedCustomer(t, f.db, "c@example.com", "")
	hidden := testutil.SeedService(t, f.db, p.ID, "Hidden", "home", "10", false)

	_, err := f.create.Execute(ctx, c.ID, c.UserID, CreateBookingInput{})
	if !httperr.IsBusiness(err, httperr.CodeMissingServiceID) {
		t.Fatalf("err = %v, want missing_service_id", err)
	}

	_, err = f.create.Execute(ctx, c.ID, c.UserID, CreateBookingInput{ServiceID: 4242})
	if !httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
		t.Fatalf("err = %v, want service_not_found", err)
	}

	_, err = f.create.Execute(ctx, c.ID, c.UserID, CreateBookingInput{ServiceID: hidden.ID})
	if !httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
		t.Fatalf("inactive service: err = %v, want service_not_found", err)
	}

	if n := countBookings(t, f.db); n != 0 {
		t.Fatalf("bookings = %d, want 0", n)
	}
}

func TestSetStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := testutil.SeedProvider(t, f.db, "p@example.com", "", nil, nil)
	other := testutil.SeedProvider(t, f.db, "o@example.com", "", nil, nil)
	c := testutil.SeedCustomer(t, f.db, "c@example.com", "")
	s := testutil.SeedService(t, f.db, p.ID, "Groom", "pets", "50", true)

	res, err := f.create.Execute(ctx, c.ID, c.UserID, CreateBookingInput{ServiceID: s.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := res.Booking.ID

	_, err = f.status.Execute(ctx, other.ID, other.UserID, id, "confirmed")
	if !httperr.IsBusiness(err, httperr.CodeBookingNotFound) {
		t.Fatalf("non-owner: err = %v, want booking_not_found", err)
	}

	_, err = f.status.Execute(ctx, p.ID, p.UserID, id, "done")
	if !httperr.IsBusiness(err, httperr.CodeInvalidStatus) {
		t.Fatalf("err = %v, want invalid_status", err)
	}

	for i := 0; i < 2; i++ {
		b, err := f.status.Execute(ctx, p.ID, p.UserID, id, "completed")
		if err != nil || b.Status != "completed" {
			t.Fatalf("complete #%d: %v %+v", i, err, b)
		}
	}

	// Terminal states are not enforced.
	b, err := f.status.Execute(ctx, p.ID, p.UserID, id, "pending")
	if err != nil || b.Status != "pending" {
		t.Fatalf("reopen: %v %+v", err, b)
	}

	if n := countBookings(t, f.db); n != 1 {
		t.Fatalf("bookings = %d, want 1", n)
	}
}

func TestListBookings_ForProvider(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := testutil.SeedProvider(t, f.db, "p@example.com", "", nil, nil)
	c := testutil.SeedCustomer(t, f.db, "c@example.com", "")
	s := testutil.SeedService(t, f.db, p.ID, "Groom", "pets", "50", true)

	for _, d := range []string{"2024-05-01", "2024-05-03", "2024-05-02"} {
		day, _ := time.Parse("2006-01-02", d)
		b := models.Booking{
			CustomerID: c.ID, ProviderID: p.ID, ServiceID: s.ID,
			BookingDate: day, BookingTime: "09:00:00", Status: "confirmed",
			TotalPrice: s.Price,
		}
		if err := f.db.Create(&b).Error; err != nil {
			t.Fatalf("seed booking: %v", err)
		}
	}

	got, err := f.list.ForProvider(ctx, p.ID, "")
	if err != nil || len(got) != 3 {
		t.Fatalf("list: %v %d", err, len(got))
	}
	for i, want := range []string{"2024-05-03", "2024-05-02", "2024-05-01"} {
		if d := got[i].BookingDate.UTC().Format("2006-01-02"); d != want {
			t.Fatalf("row %d date = %s, want %s", i, d, want)
		}
	}

	pending, err := f.list.ForProvider(ctx, p.ID, "pending")
	if err != nil || len(pending) != 0 {
		t.Fatalf("pending filter: %v %d", err, len(pending))
	}

	_, err = f.list.ForProvider(ctx, p.ID, "bogus")
	if !httperr.IsBusiness(err, httperr.CodeInvalidStatus) {
		t.Fatalf("err = %v, want invalid_status", err)
	}
}
