package ports

import (
	"context"

	"tourism-tracker/internal/core/money"
	"tourism-tracker/internal/features/purchases/domain"
)

// CancelResult carries the refund details returned by the platform when a
// purchase is cancelled.
type CancelResult struct {
	// RefundAmount is what was returned to the tourist's wallet.
	RefundAmount money.Amount `json:"refund_amount"`
	// NewWalletBalance is the wallet balance after the refund.
	NewWalletBalance money.Amount `json:"new_wallet_balance"`
}

// PurchaseProvider defines the interface for purchase operations against the
// upstream platform API. This is a Secondary Port (Driven Port).
type PurchaseProvider interface {
	// GetUserPurchases retrieves all purchases belonging to a user.
	GetUserPurchases(ctx context.Context, userID string) ([]domain.Purchase, error)
	// GetAllPurchases retrieves every purchase on the platform (admin/reporting).
	GetAllPurchases(ctx context.Context) ([]domain.Purchase, error)
	// GetPurchase retrieves a single purchase by id.
	GetPurchase(ctx context.Context, id string) (*domain.Purchase, error)
	// Cancel cancels the purchase upstream, refunding the wallet.
	Cancel(ctx context.Context, id string) (*CancelResult, error)
	// SubmitReview records a one-shot review for a delivered purchase.
	SubmitReview(ctx context.Context, id string, review domain.Review) error
}
