package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tourism-tracker/internal/core/config"
	"tourism-tracker/internal/core/httpclient"
	"tourism-tracker/internal/core/money"
	"tourism-tracker/internal/features/purchases/domain"
	"tourism-tracker/internal/features/purchases/ports"
	tracking "tourism-tracker/internal/features/tracking/domain"
)

// PlatformAdapter implements the PurchaseProvider interface against the
// tourism platform REST API.
type PlatformAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the platform API connection details.
	config config.UpstreamConfig
}

// NewPlatformAdapter creates a new instance of PlatformAdapter.
func NewPlatformAdapter(cfg config.UpstreamConfig) *PlatformAdapter {
	return &PlatformAdapter{
		client: httpclient.NewClient(time.Duration(cfg.TimeoutSeconds) * time.Second),
		config: cfg,
	}
}

// platformPurchase represents the purchase document returned by the platform API.
type platformPurchase struct {
	ID      string `json:"_id"`
	UserID  string `json:"userId"`
	Product struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	} `json:"productId"`
	Quantity     int       `json:"quantity"`
	TotalPrice   float64   `json:"totalPrice"`
	PurchaseDate time.Time `json:"purchaseDate"`
	Status       string    `json:"status,omitempty"`
	Review       *struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	} `json:"review,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// cancelResponse matches the platform's refund envelope.
type cancelResponse struct {
	Success bool `json:"success"`
	Data    struct {
		RefundAmount     float64 `json:"refundAmount"`
		NewWalletBalance float64 `json:"newWalletBalance"`
	} `json:"data"`
}

type listEnvelope struct {
	Data []platformPurchase `json:"data"`
}

type itemEnvelope struct {
	Data platformPurchase `json:"data"`
}

// GetUserPurchases fetches all purchases of a user from the platform API.
func (a *PlatformAdapter) GetUserPurchases(ctx context.Context, userID string) ([]domain.Purchase, error) {
	var env listEnvelope
	if err := a.send(ctx, http.MethodGet, fmt.Sprintf("/api/products/purchases/%s", userID), nil, &env); err != nil {
		return nil, err
	}
	return mapPurchases(env.Data), nil
}

// GetAllPurchases fetches every purchase on the platform.
func (a *PlatformAdapter) GetAllPurchases(ctx context.Context) ([]domain.Purchase, error) {
	var env listEnvelope
	if err := a.send(ctx, http.MethodGet, "/api/products/purchase/all", nil, &env); err != nil {
		return nil, err
	}
	return mapPurchases(env.Data), nil
}

// GetPurchase fetches a single purchase by id.
func (a *PlatformAdapter) GetPurchase(ctx context.Context, id string) (*domain.Purchase, error) {
	var env itemEnvelope
	if err := a.send(ctx, http.MethodGet, fmt.Sprintf("/api/products/purchase/%s", id), nil, &env); err != nil {
		return nil, err
	}

	purchase := mapPurchase(env.Data)
	return &purchase, nil
}

// Cancel cancels a purchase upstream and returns the refund details.
func (a *PlatformAdapter) Cancel(ctx context.Context, id string) (*ports.CancelResult, error) {
	var resp cancelResponse
	if err := a.send(ctx, http.MethodPost, fmt.Sprintf("/api/products/purchases/%s/cancel", id), nil, &resp); err != nil {
		return nil, err
	}

	return &ports.CancelResult{
		RefundAmount:     money.FromFloat(resp.Data.RefundAmount),
		NewWalletBalance: money.FromFloat(resp.Data.NewWalletBalance),
	}, nil
}

// SubmitReview POSTs a one-shot review for a purchase.
func (a *PlatformAdapter) SubmitReview(ctx context.Context, id string, review domain.Review) error {
	var out json.RawMessage
	return a.send(ctx, http.MethodPost, fmt.Sprintf("/api/products/purchases/%s/review", id), review, &out)
}

// send issues an authenticated request with an optional JSON body.
func (a *PlatformAdapter) send(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, a.config.URL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.config.ServiceToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("platform API call failed: %w", httpclient.ErrorFromResponse(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func mapPurchases(raw []platformPurchase) []domain.Purchase {
	purchases := make([]domain.Purchase, 0, len(raw))
	for _, pp := range raw {
		purchases = append(purchases, mapPurchase(pp))
	}
	return purchases
}

// mapPurchase converts a raw platform purchase into the domain entity.
func mapPurchase(pp platformPurchase) domain.Purchase {
	p := domain.Purchase{
		ID:           pp.ID,
		UserID:       pp.UserID,
		ProductID:    pp.Product.ID,
		ProductName:  pp.Product.Name,
		Quantity:     pp.Quantity,
		TotalPrice:   money.FromFloat(pp.TotalPrice),
		PurchaseDate: pp.PurchaseDate,
		Status:       tracking.Status(pp.Status),
		UpdatedAt:    pp.UpdatedAt,
	}

	if pp.Review != nil {
		p.Review = &domain.Review{
			Rating:  pp.Review.Rating,
			Comment: pp.Review.Comment,
		}
	}
	return p
}
