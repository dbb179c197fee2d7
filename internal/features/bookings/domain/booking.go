package domain

import (
	"errors"
	"time"

	"tourism-tracker/internal/core/money"
	tracking "tourism-tracker/internal/features/tracking/domain"
)

// Type identifies what kind of entity a booking reserves.
type Type string

const (
	TypeItinerary       Type = "Itinerary"
	TypeActivity        Type = "Activity"
	TypeHistoricalPlace Type = "HistoricalPlace"
)

// IsValid reports whether the type is one of the three bookable kinds.
func (t Type) IsValid() bool {
	switch t {
	case TypeItinerary, TypeActivity, TypeHistoricalPlace:
		return true
	default:
		return false
	}
}

var (
	// ErrNotAttended is returned when rating a booking that has not taken place.
	ErrNotAttended = errors.New("booking has not been attended yet")
	// ErrAlreadyRated is returned when a booking already carries a rating.
	ErrAlreadyRated = errors.New("booking already rated")
	// ErrNotRatable is returned for bookings of an unknown type.
	ErrNotRatable = errors.New("booking type cannot be rated")
	// ErrNoGuide is returned when rating the guide of a booking without one.
	ErrNoGuide = errors.New("only itinerary bookings have a guide to rate")
	// ErrGuideAlreadyRated is returned when the guide was already rated.
	ErrGuideAlreadyRated = errors.New("guide already rated")
)

// Booking is a reservation against an itinerary, activity or historical
// place, as owned by the upstream platform.
type Booking struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Type     Type   `json:"booking_type"`
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name,omitempty"`
	// Price is the booked item's price in minor units.
	Price money.Amount `json:"price"`
	// BookingDate is when the booked event takes place.
	BookingDate time.Time `json:"booking_date"`
	// Status is the upstream-persisted lifecycle state.
	Status tracking.Status `json:"status"`
	// DerivedStatus is the attendance hint computed from elapsed time. The
	// upstream status stays authoritative.
	DerivedStatus tracking.Status `json:"derived_status,omitempty"`

	Rating *int    `json:"rating,omitempty"`
	Review *string `json:"review,omitempty"`

	// Guide fields are present only for itinerary bookings.
	GuideID     *string `json:"guide_id,omitempty"`
	GuideRating *int    `json:"guide_rating,omitempty"`
	GuideReview *string `json:"guide_review,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatingInput carries a tourist's rating submission.
type RatingInput struct {
	Rating      int     `json:"rating"`
	Review      string  `json:"review,omitempty"`
	GuideRating *int    `json:"guide_rating,omitempty"`
	GuideReview *string `json:"guide_review,omitempty"`
}

// CanRate checks the one-shot rating invariant: only attended bookings of a
// bookable type may be rated, and only once.
func (b *Booking) CanRate() error {
	if !b.Type.IsValid() {
		return ErrNotRatable
	}
	if b.Status != tracking.StatusAttended {
		return ErrNotAttended
	}
	if b.Rating != nil {
		return ErrAlreadyRated
	}
	return nil
}

// CanRateGuide checks whether the booking's tour guide may be rated.
func (b *Booking) CanRateGuide() error {
	if b.Type != TypeItinerary || b.GuideID == nil {
		return ErrNoGuide
	}
	if b.Status != tracking.StatusAttended {
		return ErrNotAttended
	}
	if b.GuideRating != nil {
		return ErrGuideAlreadyRated
	}
	return nil
}
