package ports

import (
	"context"

	"tourism-tracker/internal/features/bookings/domain"
	tracking "tourism-tracker/internal/features/tracking/domain"
)

// BookingProvider defines the interface for booking operations against the
// upstream platform API. This is a Secondary Port (Driven Port).
type BookingProvider interface {
	// GetUserBookings retrieves all bookings belonging to a user.
	GetUserBookings(ctx context.Context, userID string) ([]domain.Booking, error)
	// GetAllBookings retrieves every booking on the platform (reporting).
	GetAllBookings(ctx context.Context) ([]domain.Booking, error)
	// GetBooking retrieves a single booking by id.
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	// UpdateStatus persists a status transition upstream.
	UpdateStatus(ctx context.Context, id string, status tracking.Status) (*domain.Booking, error)
	// Cancel cancels the booking upstream and returns its updated state.
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	// SubmitRating records a one-shot rating for an attended booking.
	SubmitRating(ctx context.Context, id string, input domain.RatingInput) error
}
