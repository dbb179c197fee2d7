package adapter

import (
	"context"
	"time"

	bookingports "tourism-tracker/internal/features/bookings/ports"
	"tourism-tracker/internal/features/tracking/ports"
)

// BookingSource adapts the booking provider into a trackable record source.
type BookingSource struct {
	provider bookingports.BookingProvider
}

// NewBookingSource creates a new instance of BookingSource.
func NewBookingSource(provider bookingports.BookingProvider) *BookingSource {
	return &BookingSource{provider: provider}
}

// GetRecord resolves a booking into its trackable view. The reservation time
// anchors the timeline and the booking date marks attendance.
func (s *BookingSource) GetRecord(ctx context.Context, id string) (*ports.Record, error) {
	booking, err := s.provider.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	var updatedAt *time.Time
	if !booking.UpdatedAt.IsZero() {
		updatedAt = &booking.UpdatedAt
	}

	return &ports.Record{
		PlacedAt:  booking.CreatedAt,
		EventDate: booking.BookingDate,
		Status:    booking.Status,
		UpdatedAt: updatedAt,
	}, nil
}
