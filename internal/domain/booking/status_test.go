package booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/models"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "cancelled"} {
		if _, err := ParseStatus(s); err != nil {
			t.Errorf("%q rejected: %v", s, err)
		}
	}
	for _, s := range []string{"", "done", "Completed", "canceled"} {
		if _, err := ParseStatus(s); !httperr.IsBusiness(err, httperr.CodeInvalidStatus) {
			t.Errorf("%q: err = %v, want invalid_status", s, err)
		}
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCompleted, StatusCompleted, true},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestSetStatus_IsPermissive(t *testing.T) {
	b := &models.Booking{Status: string(StatusCancelled)}
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	SetStatus(b, StatusCompleted, now)

	if b.Status != string(StatusCompleted) {
		t.Fatalf("status = %s, want completed", b.Status)
	}
	if !b.UpdatedAt.Equal(now) {
		t.Fatalf("updated_at = %s", b.UpdatedAt)
	}
}

func TestNew_SnapshotsPriceAndInstant(t *testing.T) {
	svc := &models.Service{ID: 3, ProviderID: 9, Price: decimal.RequireFromString("45.50")}
	now := time.Date(2026, 10, 15, 13, 4, 5, 0, time.FixedZone("X", -4*3600))

	b := New(11, svc, "gate code 12", now)

	if b.Status != string(StatusPending) {
		t.Fatalf("status = %s", b.Status)
	}
	if !b.TotalPrice.Equal(svc.Price) {
		t.Fatalf("total = %s", b.TotalPrice)
	}
	svc.Price = decimal.RequireFromString("99")
	if b.TotalPrice.String() != "45.5" {
		t.Fatalf("total followed service price: %s", b.TotalPrice)
	}
	if b.BookingDate != time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("date = %s", b.BookingDate)
	}
	if b.BookingTime != "17:04:05" {
		t.Fatalf("time = %s", b.BookingTime)
	}
	if b.ProviderID != 9 || b.ServiceID != 3 || b.CustomerID != 11 {
		t.Fatalf("ids = %+v", b)
	}
}
