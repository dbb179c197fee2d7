package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"tourism-tracker/internal/core/cache"
	"tourism-tracker/internal/core/money"
	"tourism-tracker/internal/features/purchases/domain"
	"tourism-tracker/internal/features/purchases/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProvider counts upstream calls to verify cache behavior.
type countingProvider struct {
	listCalls   int
	singleCalls int
	purchase    domain.Purchase
}

func (c *countingProvider) GetUserPurchases(ctx context.Context, userID string) ([]domain.Purchase, error) {
	c.listCalls++
	return []domain.Purchase{c.purchase}, nil
}

func (c *countingProvider) GetAllPurchases(ctx context.Context) ([]domain.Purchase, error) {
	c.listCalls++
	return []domain.Purchase{c.purchase}, nil
}

func (c *countingProvider) GetPurchase(ctx context.Context, id string) (*domain.Purchase, error) {
	c.singleCalls++
	p := c.purchase
	return &p, nil
}

func (c *countingProvider) Cancel(ctx context.Context, id string) (*ports.CancelResult, error) {
	return &ports.CancelResult{RefundAmount: c.purchase.TotalPrice}, nil
}

func (c *countingProvider) SubmitReview(ctx context.Context, id string, review domain.Review) error {
	return nil
}

func newCachedProvider(t *testing.T) (*CachedProvider, *countingProvider) {
	t.Helper()
	mr := miniredis.RunT(t)

	redisCache, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { redisCache.Close() })

	inner := &countingProvider{purchase: domain.Purchase{
		ID:           "p1",
		UserID:       "u1",
		TotalPrice:   money.Amount(1999),
		PurchaseDate: time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC),
	}}

	return NewCachedProvider(inner, redisCache, time.Minute), inner
}

// TestCachedProvider_GetUserPurchases verifies the second read hits the cache.
func TestCachedProvider_GetUserPurchases(t *testing.T) {
	provider, inner := newCachedProvider(t)
	ctx := context.Background()

	first, err := provider.GetUserPurchases(ctx, "u1")
	require.NoError(t, err)
	second, err := provider.GetUserPurchases(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.listCalls)
}

// TestCachedProvider_GetPurchase verifies single-record caching.
func TestCachedProvider_GetPurchase(t *testing.T) {
	provider, inner := newCachedProvider(t)
	ctx := context.Background()

	_, err := provider.GetPurchase(ctx, "p1")
	require.NoError(t, err)
	_, err = provider.GetPurchase(ctx, "p1")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.singleCalls)
}

// failingCache rejects every delete to exercise invalidation failure handling.
type failingCache struct {
	deleteErr error
}

func (f *failingCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, cache.ErrCacheMiss
}

func (f *failingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (f *failingCache) Delete(ctx context.Context, key string) error {
	return f.deleteErr
}

func (f *failingCache) Ping(ctx context.Context) error { return nil }

func (f *failingCache) Close() error { return nil }

// TestCachedProvider_CancelInvalidates verifies mutations drop the cached record.
func TestCachedProvider_CancelInvalidates(t *testing.T) {
	provider, inner := newCachedProvider(t)
	ctx := context.Background()

	_, err := provider.GetPurchase(ctx, "p1")
	require.NoError(t, err)

	_, err = provider.Cancel(ctx, "p1")
	require.NoError(t, err)

	_, err = provider.GetPurchase(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.singleCalls)
}

// TestCachedProvider_InvalidationFailure verifies that mutations still succeed
// when the cache rejects the key deletes.
func TestCachedProvider_InvalidationFailure(t *testing.T) {
	inner := &countingProvider{purchase: domain.Purchase{ID: "p1", UserID: "u1"}}
	provider := NewCachedProvider(inner, &failingCache{deleteErr: errors.New("connection refused")}, time.Minute)
	ctx := context.Background()

	result, err := provider.Cancel(ctx, "p1")
	require.NoError(t, err)
	assert.NotNil(t, result)

	err = provider.SubmitReview(ctx, "p1", domain.Review{Rating: 5})
	assert.NoError(t, err)
}
