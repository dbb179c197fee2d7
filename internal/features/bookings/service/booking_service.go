package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourism-tracker/internal/core/httpclient"
	"tourism-tracker/internal/features/bookings/domain"
	"tourism-tracker/internal/features/bookings/ports"
	tracking "tourism-tracker/internal/features/tracking/domain"
)

var (
	// ErrBookingNotFound is returned when the booking does not exist upstream.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidStatus is returned for an unrecognized target status.
	ErrInvalidStatus = errors.New("invalid booking status")
	// ErrInvalidTransition is returned when the state machine forbids a move.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidRating is returned for out-of-range rating values.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// BookingService handles the business logic for booking lifecycle operations.
type BookingService struct {
	// provider is the interface for booking data on the upstream platform.
	provider ports.BookingProvider
}

// NewBookingService creates a new instance of BookingService.
func NewBookingService(provider ports.BookingProvider) *BookingService {
	return &BookingService{
		provider: provider,
	}
}

// ListUserBookings returns a user's bookings with the derived attendance
// hint attached to each record.
func (s *BookingService) ListUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	bookings, err := s.provider.GetUserBookings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	now := time.Now()
	for i := range bookings {
		bookings[i].DerivedStatus = tracking.DeriveBooking(bookings[i].BookingDate, bookings[i].Status, now)
	}
	return bookings, nil
}

// GetBooking returns a single booking with its derived attendance hint.
func (s *BookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.provider.GetBooking(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to get booking")
	}

	booking.DerivedStatus = tracking.DeriveBooking(booking.BookingDate, booking.Status, time.Now())
	return booking, nil
}

// UpdateStatus validates a transition against the state machine before
// persisting it upstream.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status tracking.Status) (*domain.Booking, error) {
	if !domain.IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	booking, err := s.provider.GetBooking(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to get booking")
	}

	if !domain.CanTransition(booking.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
	}

	updated, err := s.provider.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return updated, nil
}

// Cancel cancels a non-terminal booking.
func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.provider.GetBooking(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to get booking")
	}

	if !domain.CanTransition(booking.Status, tracking.StatusCancelled) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, tracking.StatusCancelled)
	}

	cancelled, err := s.provider.Cancel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	return cancelled, nil
}

// Rate validates and submits a one-shot rating for an attended booking.
func (s *BookingService) Rate(ctx context.Context, id string, input domain.RatingInput) error {
	if input.Rating < 1 || input.Rating > 5 {
		return ErrInvalidRating
	}
	if input.GuideRating != nil && (*input.GuideRating < 1 || *input.GuideRating > 5) {
		return ErrInvalidRating
	}

	booking, err := s.provider.GetBooking(ctx, id)
	if err != nil {
		return notFoundOr(err, "failed to get booking")
	}

	if err := booking.CanRate(); err != nil {
		return err
	}
	if input.GuideRating != nil {
		if err := booking.CanRateGuide(); err != nil {
			return err
		}
	}

	if err := s.provider.SubmitRating(ctx, id, input); err != nil {
		return fmt.Errorf("failed to submit rating: %w", err)
	}
	return nil
}

// notFoundOr maps upstream 404s to ErrBookingNotFound and wraps the rest.
func notFoundOr(err error, msg string) error {
	if ue, ok := httpclient.AsUpstreamError(err); ok && ue.IsNotFound() {
		return ErrBookingNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
