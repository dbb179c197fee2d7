package domain

import (
	"errors"
	"time"

	"tourism-tracker/internal/core/money"
	tracking "tourism-tracker/internal/features/tracking/domain"
)

var (
	// ErrAlreadyCancelled is returned when cancelling a cancelled purchase.
	ErrAlreadyCancelled = errors.New("purchase already cancelled")
	// ErrAlreadyDelivered is returned when cancelling a delivered purchase.
	ErrAlreadyDelivered = errors.New("purchase already delivered")
	// ErrNotDelivered is returned when reviewing an undelivered purchase.
	ErrNotDelivered = errors.New("purchase has not been delivered yet")
	// ErrAlreadyReviewed is returned when a purchase already carries a review.
	ErrAlreadyReviewed = errors.New("purchase already reviewed")
)

// Review is a product review attached to a delivered purchase.
type Review struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// Purchase is a product order owned by the upstream platform. Its delivery
// status is derived from the purchase date unless cancelled.
type Purchase struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int    `json:"quantity"`
	// TotalPrice is the order total in minor units.
	TotalPrice money.Amount `json:"total_price"`
	// PurchaseDate is when the order was placed.
	PurchaseDate time.Time `json:"purchase_date"`
	// Status is the upstream-persisted state; empty unless cancelled.
	Status tracking.Status `json:"status,omitempty"`
	// DerivedStatus is the delivery status computed from elapsed time.
	DerivedStatus tracking.Status `json:"derived_status,omitempty"`

	Review *Review `json:"review,omitempty"`

	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// IsCancelled reports whether the purchase is in the terminal cancelled state.
func (p *Purchase) IsCancelled() bool {
	return p.Status == tracking.StatusCancelled
}

// CanCancel checks whether the purchase may still be cancelled at the given
// time. Delivered and cancelled orders are final.
func (p *Purchase) CanCancel(now time.Time) error {
	if p.IsCancelled() {
		return ErrAlreadyCancelled
	}
	if tracking.Derive(p.PurchaseDate, p.Status, now) == tracking.StatusDelivered {
		return ErrAlreadyDelivered
	}
	return nil
}

// CanReview checks the one-shot review invariant: only delivered purchases
// may be reviewed, and only once.
func (p *Purchase) CanReview(now time.Time) error {
	if p.IsCancelled() {
		return ErrNotDelivered
	}
	if tracking.Derive(p.PurchaseDate, p.Status, now) != tracking.StatusDelivered {
		return ErrNotDelivered
	}
	if p.Review != nil {
		return ErrAlreadyReviewed
	}
	return nil
}
