package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourism-tracker/internal/core/config"
	"tourism-tracker/internal/core/httpclient"
	"tourism-tracker/internal/core/money"
	"tourism-tracker/internal/features/purchases/domain"
	tracking "tourism-tracker/internal/features/tracking/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(serverURL string) *PlatformAdapter {
	return NewPlatformAdapter(config.UpstreamConfig{
		URL:            serverURL,
		ServiceToken:   "svc_test",
		TimeoutSeconds: 5,
	})
}

// TestPlatformAdapter_GetUserPurchases verifies fetching and mapping a user's purchases.
func TestPlatformAdapter_GetUserPurchases(t *testing.T) {
	mockResponse := `{
		"data": [
			{
				"_id": "p1",
				"userId": "u1",
				"productId": {"_id": "prod1", "name": "Papyrus Scroll"},
				"quantity": 2,
				"totalPrice": 19.99,
				"purchaseDate": "2025-06-10T09:30:00Z"
			},
			{
				"_id": "p2",
				"userId": "u1",
				"productId": {"_id": "prod2", "name": "Scarab Amulet"},
				"quantity": 1,
				"totalPrice": 100,
				"purchaseDate": "2025-06-01T09:30:00Z",
				"status": "cancelled",
				"review": {"rating": 4, "comment": "fine"}
			}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/purchases/u1", r.URL.Path)
		assert.Equal(t, "Bearer svc_test", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	purchases, err := newAdapter(server.URL).GetUserPurchases(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, purchases, 2)

	assert.Equal(t, "p1", purchases[0].ID)
	assert.Equal(t, "prod1", purchases[0].ProductID)
	assert.Equal(t, "Papyrus Scroll", purchases[0].ProductName)
	assert.Equal(t, 2, purchases[0].Quantity)
	assert.Equal(t, money.Amount(1999), purchases[0].TotalPrice)
	assert.Equal(t, time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC), purchases[0].PurchaseDate)
	assert.Nil(t, purchases[0].Review)

	assert.Equal(t, tracking.StatusCancelled, purchases[1].Status)
	require.NotNil(t, purchases[1].Review)
	assert.Equal(t, 4, purchases[1].Review.Rating)
}

// TestPlatformAdapter_Cancel verifies the refund envelope mapping.
func TestPlatformAdapter_Cancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/products/purchases/p1/cancel", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success":true,"data":{"refundAmount":19.99,"newWalletBalance":120.49}}`))
	}))
	defer server.Close()

	result, err := newAdapter(server.URL).Cancel(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, money.Amount(1999), result.RefundAmount)
	assert.Equal(t, money.Amount(12049), result.NewWalletBalance)
}

// TestPlatformAdapter_Cancel_BusinessError verifies verbatim upstream error passthrough.
func TestPlatformAdapter_Cancel_BusinessError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"purchase cannot be cancelled after delivery"}`))
	}))
	defer server.Close()

	_, err := newAdapter(server.URL).Cancel(context.Background(), "p1")
	require.Error(t, err)

	ue, ok := httpclient.AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ue.StatusCode)
	assert.Equal(t, "purchase cannot be cancelled after delivery", ue.Message)
}

// TestPlatformAdapter_SubmitReview verifies the review request body.
func TestPlatformAdapter_SubmitReview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/products/purchases/p1/review", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	err := newAdapter(server.URL).SubmitReview(context.Background(), "p1", domain.Review{Rating: 5, Comment: "arrived fast"})
	assert.NoError(t, err)
}

// TestPlatformAdapter_NotFound verifies upstream 404 surfacing.
func TestPlatformAdapter_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"purchase not found"}`))
	}))
	defer server.Close()

	_, err := newAdapter(server.URL).GetPurchase(context.Background(), "missing")
	require.Error(t, err)

	ue, ok := httpclient.AsUpstreamError(err)
	require.True(t, ok)
	assert.True(t, ue.IsNotFound())
}
