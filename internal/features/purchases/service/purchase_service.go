package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourism-tracker/internal/core/httpclient"
	"tourism-tracker/internal/features/purchases/domain"
	"tourism-tracker/internal/features/purchases/ports"
	tracking "tourism-tracker/internal/features/tracking/domain"
)

var (
	// ErrPurchaseNotFound is returned when the purchase does not exist upstream.
	ErrPurchaseNotFound = errors.New("purchase not found")
	// ErrInvalidRating is returned for out-of-range review ratings.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// PurchaseService handles the business logic for product purchase operations.
type PurchaseService struct {
	// provider is the interface for purchase data on the upstream platform.
	provider ports.PurchaseProvider
}

// NewPurchaseService creates a new instance of PurchaseService.
func NewPurchaseService(provider ports.PurchaseProvider) *PurchaseService {
	return &PurchaseService{
		provider: provider,
	}
}

// ListUserPurchases returns a user's purchases with the derived delivery
// status attached to each record.
func (s *PurchaseService) ListUserPurchases(ctx context.Context, userID string) ([]domain.Purchase, error) {
	purchases, err := s.provider.GetUserPurchases(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	attachDerivedStatus(purchases, time.Now())
	return purchases, nil
}

// ListAllPurchases returns every purchase on the platform with derived
// delivery statuses attached.
func (s *PurchaseService) ListAllPurchases(ctx context.Context) ([]domain.Purchase, error) {
	purchases, err := s.provider.GetAllPurchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all purchases: %w", err)
	}

	attachDerivedStatus(purchases, time.Now())
	return purchases, nil
}

// Cancel cancels an undelivered purchase and returns the refund details.
func (s *PurchaseService) Cancel(ctx context.Context, id string) (*ports.CancelResult, error) {
	purchase, err := s.provider.GetPurchase(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to get purchase")
	}

	if err := purchase.CanCancel(time.Now()); err != nil {
		return nil, err
	}

	result, err := s.provider.Cancel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel purchase: %w", err)
	}
	return result, nil
}

// Review validates and submits a one-shot review for a delivered purchase.
func (s *PurchaseService) Review(ctx context.Context, id string, review domain.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}

	purchase, err := s.provider.GetPurchase(ctx, id)
	if err != nil {
		return notFoundOr(err, "failed to get purchase")
	}

	if err := purchase.CanReview(time.Now()); err != nil {
		return err
	}

	if err := s.provider.SubmitReview(ctx, id, review); err != nil {
		return fmt.Errorf("failed to submit review: %w", err)
	}
	return nil
}

// attachDerivedStatus computes the delivery status for each purchase in place.
func attachDerivedStatus(purchases []domain.Purchase, now time.Time) {
	for i := range purchases {
		purchases[i].DerivedStatus = tracking.Derive(purchases[i].PurchaseDate, purchases[i].Status, now)
	}
}

// notFoundOr maps upstream 404s to ErrPurchaseNotFound and wraps the rest.
func notFoundOr(err error, msg string) error {
	if ue, ok := httpclient.AsUpstreamError(err); ok && ue.IsNotFound() {
		return ErrPurchaseNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
