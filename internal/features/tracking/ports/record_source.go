package ports

import (
	"context"
	"time"

	"tourism-tracker/internal/features/tracking/domain"
)

// Record is the feature-neutral view of a trackable record: just enough to
// derive a status and build a timeline, regardless of whether the record is a
// product purchase or an event booking.
type Record struct {
	// PlacedAt is when the record was created (purchase or reservation time).
	PlacedAt time.Time
	// EventDate is the scheduled occurrence for bookings; zero for purchases.
	EventDate time.Time
	// Status is the upstream-persisted state; may be empty for purchases.
	Status domain.Status
	// UpdatedAt is the last upstream modification time, when known.
	UpdatedAt *time.Time
}

// RecordSource resolves a record id to its trackable view. This is a
// Secondary Port (Driven Port); adapters wrap the feature providers.
type RecordSource interface {
	GetRecord(ctx context.Context, id string) (*Record, error)
}
