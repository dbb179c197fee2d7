package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourism-tracker/internal/core/httpclient"
	"tourism-tracker/internal/features/tracking/domain"
	"tourism-tracker/internal/features/tracking/ports"
)

// ErrRecordNotFound is returned when the tracked record does not exist upstream.
var ErrRecordNotFound = errors.New("record not found")

// TrackingService builds derived-status timelines for purchases and bookings.
type TrackingService struct {
	purchases ports.RecordSource
	bookings  ports.RecordSource
}

// NewTrackingService creates a new instance of TrackingService.
func NewTrackingService(purchases, bookings ports.RecordSource) *TrackingService {
	return &TrackingService{
		purchases: purchases,
		bookings:  bookings,
	}
}

// PurchaseTimeline derives the delivery status of a purchase and builds its
// event timeline.
func (s *TrackingService) PurchaseTimeline(ctx context.Context, id string) (*domain.Timeline, error) {
	rec, err := s.purchases.GetRecord(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to get purchase record")
	}

	now := time.Now()
	status := domain.Derive(rec.PlacedAt, rec.Status, now)
	return &domain.Timeline{
		Status: status,
		Events: domain.BuildDeliveryTimeline(rec.PlacedAt, status, rec.UpdatedAt, now),
	}, nil
}

// BookingTimeline derives the attendance status of a booking and builds its
// event timeline.
func (s *TrackingService) BookingTimeline(ctx context.Context, id string) (*domain.Timeline, error) {
	rec, err := s.bookings.GetRecord(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to get booking record")
	}

	now := time.Now()
	status := domain.DeriveBooking(rec.EventDate, rec.Status, now)
	return &domain.Timeline{
		Status: status,
		Events: domain.BuildBookingTimeline(rec.PlacedAt, rec.EventDate, status, rec.UpdatedAt, now),
	}, nil
}

// notFoundOr maps upstream 404s to ErrRecordNotFound and wraps the rest.
func notFoundOr(err error, msg string) error {
	if ue, ok := httpclient.AsUpstreamError(err); ok && ue.IsNotFound() {
		return ErrRecordNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
