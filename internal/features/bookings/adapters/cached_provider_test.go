package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"tourism-tracker/internal/core/cache"
	"tourism-tracker/internal/core/money"
	"tourism-tracker/internal/features/bookings/domain"
	tracking "tourism-tracker/internal/features/tracking/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProvider counts upstream calls to verify cache behavior.
type countingProvider struct {
	listCalls   int
	singleCalls int
	booking     domain.Booking
}

func (c *countingProvider) GetUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	c.listCalls++
	return []domain.Booking{c.booking}, nil
}

func (c *countingProvider) GetAllBookings(ctx context.Context) ([]domain.Booking, error) {
	c.listCalls++
	return []domain.Booking{c.booking}, nil
}

func (c *countingProvider) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	c.singleCalls++
	b := c.booking
	return &b, nil
}

func (c *countingProvider) UpdateStatus(ctx context.Context, id string, status tracking.Status) (*domain.Booking, error) {
	b := c.booking
	b.Status = status
	return &b, nil
}

func (c *countingProvider) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	b := c.booking
	b.Status = tracking.StatusCancelled
	return &b, nil
}

func (c *countingProvider) SubmitRating(ctx context.Context, id string, input domain.RatingInput) error {
	return nil
}

// brokenCache rejects every delete to exercise invalidation failure handling.
type brokenCache struct {
	deleteErr error
}

func (f *brokenCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, cache.ErrCacheMiss
}

func (f *brokenCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (f *brokenCache) Delete(ctx context.Context, key string) error {
	return f.deleteErr
}

func (f *brokenCache) Ping(ctx context.Context) error { return nil }

func (f *brokenCache) Close() error { return nil }

func newCachedProvider(t *testing.T) (*CachedProvider, *countingProvider) {
	t.Helper()
	mr := miniredis.RunT(t)

	redisCache, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { redisCache.Close() })

	inner := &countingProvider{booking: domain.Booking{
		ID:          "b1",
		UserID:      "u1",
		Type:        domain.TypeActivity,
		Price:       money.Amount(2500),
		BookingDate: time.Date(2025, 7, 4, 10, 0, 0, 0, time.UTC),
		Status:      tracking.StatusConfirmed,
	}}

	return NewCachedProvider(inner, redisCache, time.Minute), inner
}

// TestCachedProvider_GetUserBookings verifies the second read hits the cache.
func TestCachedProvider_GetUserBookings(t *testing.T) {
	provider, inner := newCachedProvider(t)
	ctx := context.Background()

	first, err := provider.GetUserBookings(ctx, "u1")
	require.NoError(t, err)
	second, err := provider.GetUserBookings(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.listCalls)
}

// TestCachedProvider_CancelInvalidates verifies mutations drop the cached record.
func TestCachedProvider_CancelInvalidates(t *testing.T) {
	provider, inner := newCachedProvider(t)
	ctx := context.Background()

	_, err := provider.GetBooking(ctx, "b1")
	require.NoError(t, err)

	_, err = provider.Cancel(ctx, "b1")
	require.NoError(t, err)

	_, err = provider.GetBooking(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.singleCalls)
}

// TestCachedProvider_InvalidationFailure verifies that mutations still succeed
// when the cache rejects the key deletes.
func TestCachedProvider_InvalidationFailure(t *testing.T) {
	inner := &countingProvider{booking: domain.Booking{ID: "b1", UserID: "u1"}}
	provider := NewCachedProvider(inner, &brokenCache{deleteErr: errors.New("connection refused")}, time.Minute)
	ctx := context.Background()

	booking, err := provider.UpdateStatus(ctx, "b1", tracking.StatusAttended)
	require.NoError(t, err)
	assert.Equal(t, tracking.StatusAttended, booking.Status)

	err = provider.SubmitRating(ctx, "b1", domain.RatingInput{Rating: 4})
	assert.NoError(t, err)
}
