package service

import (
	"context"
	"testing"
	"time"

	"tourism-tracker/internal/core/money"
	bookingdomain "tourism-tracker/internal/features/bookings/domain"
	purchasedomain "tourism-tracker/internal/features/purchases/domain"
	"tourism-tracker/internal/features/reports/domain"
	tracking "tourism-tracker/internal/features/tracking/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSources struct {
	bookings  []bookingdomain.Booking
	purchases []purchasedomain.Purchase
}

func (s *stubSources) GetAllBookings(ctx context.Context) ([]bookingdomain.Booking, error) {
	return s.bookings, nil
}

func (s *stubSources) GetAllPurchases(ctx context.Context) ([]purchasedomain.Purchase, error) {
	return s.purchases, nil
}

var june = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func booking(t bookingdomain.Type, price money.Amount, status tracking.Status, createdAt time.Time) bookingdomain.Booking {
	return bookingdomain.Booking{Type: t, Price: price, Status: status, CreatedAt: createdAt, BookingDate: createdAt.AddDate(0, 0, 14)}
}

// TestAggregate_FeeRevenue verifies the platform cut per category.
func TestAggregate_FeeRevenue(t *testing.T) {
	bookings := []bookingdomain.Booking{
		booking(bookingdomain.TypeItinerary, money.FromFloat(50), tracking.StatusConfirmed, june),
		booking(bookingdomain.TypeActivity, money.FromFloat(30), tracking.StatusAttended, june),
	}
	purchases := []purchasedomain.Purchase{
		{TotalPrice: money.FromFloat(20), PurchaseDate: june},
	}

	report := Aggregate(bookings, purchases, domain.Filters{}, 0.10)

	// A $50 itinerary earns the platform $5.00.
	itinerary := report.Categories[domain.CategoryItinerary]
	assert.Equal(t, 1, itinerary.Count)
	assert.Equal(t, money.Amount(500), itinerary.Total)

	assert.Equal(t, money.Amount(300), report.Categories[domain.CategoryActivity].Total)
	assert.Equal(t, money.Amount(200), report.Categories[domain.CategoryProduct].Total)

	assert.Equal(t, 3, report.Totals.Transactions)
	assert.Equal(t, money.Amount(1000), report.Totals.Revenue)
}

// TestAggregate_Cancelled verifies cancelled transactions earn nothing and are
// reported at full value.
func TestAggregate_Cancelled(t *testing.T) {
	bookings := []bookingdomain.Booking{
		booking(bookingdomain.TypeItinerary, money.FromFloat(100), tracking.StatusCancelled, june),
	}
	purchases := []purchasedomain.Purchase{
		{TotalPrice: money.FromFloat(40), PurchaseDate: june, Status: tracking.StatusCancelled},
	}

	report := Aggregate(bookings, purchases, domain.Filters{}, 0.10)

	assert.Equal(t, 2, report.Cancelled.Count)
	assert.Equal(t, money.FromFloat(140), report.Cancelled.Amount)
	assert.Equal(t, 0, report.Totals.Transactions)
	assert.Equal(t, money.Amount(0), report.Totals.Revenue)
	assert.Empty(t, report.Categories)
}

// TestAggregate_DateRange verifies records outside the window are excluded.
func TestAggregate_DateRange(t *testing.T) {
	bookings := []bookingdomain.Booking{
		booking(bookingdomain.TypeActivity, money.FromFloat(30), tracking.StatusConfirmed, june),
		booking(bookingdomain.TypeActivity, money.FromFloat(30), tracking.StatusConfirmed, june.AddDate(0, 2, 0)),
	}

	filters := domain.Filters{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC),
	}
	report := Aggregate(bookings, nil, filters, 0.10)

	assert.Equal(t, 1, report.Categories[domain.CategoryActivity].Count)
	assert.Equal(t, 1, report.Totals.Transactions)
}

// TestAggregate_BookingsWindowedByCreationDate verifies the window applies to
// when the booking was placed, not the scheduled event date.
func TestAggregate_BookingsWindowedByCreationDate(t *testing.T) {
	soldInJune := bookingdomain.Booking{
		Type:        bookingdomain.TypeItinerary,
		Price:       money.FromFloat(50),
		Status:      tracking.StatusConfirmed,
		CreatedAt:   time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		BookingDate: time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC),
	}
	eventInJune := bookingdomain.Booking{
		Type:        bookingdomain.TypeItinerary,
		Price:       money.FromFloat(50),
		Status:      tracking.StatusConfirmed,
		CreatedAt:   time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
		BookingDate: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
	}

	filters := domain.Filters{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC),
	}
	report := Aggregate([]bookingdomain.Booking{soldInJune, eventInJune}, nil, filters, 0.10)

	// Only the booking placed in June counts, even though its event is later.
	assert.Equal(t, 1, report.Categories[domain.CategoryItinerary].Count)
	assert.Equal(t, money.Amount(500), report.Totals.Revenue)
}

// TestAggregate_CategoryFilter verifies the category filter drops other buckets.
func TestAggregate_CategoryFilter(t *testing.T) {
	bookings := []bookingdomain.Booking{
		booking(bookingdomain.TypeItinerary, money.FromFloat(50), tracking.StatusConfirmed, june),
	}
	purchases := []purchasedomain.Purchase{
		{TotalPrice: money.FromFloat(20), PurchaseDate: june},
	}

	report := Aggregate(bookings, purchases, domain.Filters{Category: domain.CategoryProduct}, 0.10)

	assert.NotContains(t, report.Categories, domain.CategoryItinerary)
	assert.Equal(t, 1, report.Categories[domain.CategoryProduct].Count)
	assert.Equal(t, money.Amount(200), report.Totals.Revenue)
}

// TestAggregate_Deterministic verifies identical inputs yield identical reports.
func TestAggregate_Deterministic(t *testing.T) {
	bookings := []bookingdomain.Booking{
		booking(bookingdomain.TypeItinerary, money.FromFloat(50), tracking.StatusConfirmed, june),
		booking(bookingdomain.TypeActivity, money.FromFloat(75), tracking.StatusCancelled, june),
	}
	purchases := []purchasedomain.Purchase{
		{TotalPrice: money.FromFloat(20), PurchaseDate: june},
	}

	first := Aggregate(bookings, purchases, domain.Filters{}, 0.10)
	second := Aggregate(bookings, purchases, domain.Filters{}, 0.10)
	assert.Equal(t, first, second)
}

// TestReportService_SalesReport verifies fetching and filter validation.
func TestReportService_SalesReport(t *testing.T) {
	sources := &stubSources{
		bookings: []bookingdomain.Booking{
			booking(bookingdomain.TypeItinerary, money.FromFloat(50), tracking.StatusConfirmed, june),
		},
	}
	svc := NewReportService(sources, sources, 0.10)

	report, err := svc.SalesReport(context.Background(), domain.Filters{})
	require.NoError(t, err)
	assert.Equal(t, money.Amount(500), report.Totals.Revenue)
}

// TestReportService_SalesReport_InvalidRange verifies range validation.
func TestReportService_SalesReport_InvalidRange(t *testing.T) {
	svc := NewReportService(&stubSources{}, &stubSources{}, 0.10)

	_, err := svc.SalesReport(context.Background(), domain.Filters{
		Start: june,
		End:   june.AddDate(0, 0, -5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

// TestReportService_SalesReport_InvalidCategory verifies category validation.
func TestReportService_SalesReport_InvalidCategory(t *testing.T) {
	svc := NewReportService(&stubSources{}, &stubSources{}, 0.10)

	_, err := svc.SalesReport(context.Background(), domain.Filters{Category: "Museum"})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}
