package ports

import (
	"context"

	bookingdomain "tourism-tracker/internal/features/bookings/domain"
	purchasedomain "tourism-tracker/internal/features/purchases/domain"
)

// BookingSource supplies the platform-wide booking records a report
// aggregates over. The booking feature's provider satisfies it.
type BookingSource interface {
	GetAllBookings(ctx context.Context) ([]bookingdomain.Booking, error)
}

// PurchaseSource supplies the platform-wide purchase records a report
// aggregates over. The purchase feature's provider satisfies it.
type PurchaseSource interface {
	GetAllPurchases(ctx context.Context) ([]purchasedomain.Purchase, error)
}
