package adapter

import (
	"context"

	purchaseports "tourism-tracker/internal/features/purchases/ports"
	"tourism-tracker/internal/features/tracking/ports"
)

// PurchaseSource adapts the purchase provider into a trackable record source.
type PurchaseSource struct {
	provider purchaseports.PurchaseProvider
}

// NewPurchaseSource creates a new instance of PurchaseSource.
func NewPurchaseSource(provider purchaseports.PurchaseProvider) *PurchaseSource {
	return &PurchaseSource{provider: provider}
}

// GetRecord resolves a purchase into its trackable view. The purchase date is
// the timeline origin.
func (s *PurchaseSource) GetRecord(ctx context.Context, id string) (*ports.Record, error) {
	purchase, err := s.provider.GetPurchase(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ports.Record{
		PlacedAt:  purchase.PurchaseDate,
		Status:    purchase.Status,
		UpdatedAt: purchase.UpdatedAt,
	}, nil
}
