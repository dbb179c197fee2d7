package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tourism-tracker/internal/core/cache"
	"tourism-tracker/internal/core/logger"
	"tourism-tracker/internal/features/bookings/domain"
	"tourism-tracker/internal/features/bookings/ports"
	tracking "tourism-tracker/internal/features/tracking/domain"

	"go.uber.org/zap"
)

// CachedProvider decorates a BookingProvider with a short-TTL read cache.
// Mutations invalidate the affected keys; user lists not touched by a
// mutation age out within the TTL.
type CachedProvider struct {
	inner ports.BookingProvider
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedProvider creates a caching decorator around a BookingProvider.
func NewCachedProvider(inner ports.BookingProvider, c cache.Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: c,
		ttl:   ttl,
	}
}

func userKey(userID string) string { return "bookings:user:" + userID }
func idKey(id string) string       { return "bookings:id:" + id }

const allKey = "bookings:all"

// GetUserBookings returns the cached user list or falls through to upstream.
func (p *CachedProvider) GetUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if hit := p.lookup(ctx, userKey(userID), &bookings); hit {
		return bookings, nil
	}

	bookings, err := p.inner.GetUserBookings(ctx, userID)
	if err != nil {
		return nil, err
	}

	p.store(ctx, userKey(userID), bookings)
	return bookings, nil
}

// GetAllBookings returns the cached platform-wide list or falls through.
func (p *CachedProvider) GetAllBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if hit := p.lookup(ctx, allKey, &bookings); hit {
		return bookings, nil
	}

	bookings, err := p.inner.GetAllBookings(ctx)
	if err != nil {
		return nil, err
	}

	p.store(ctx, allKey, bookings)
	return bookings, nil
}

// GetBooking returns the cached booking or falls through to upstream.
func (p *CachedProvider) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	var booking domain.Booking
	if hit := p.lookup(ctx, idKey(id), &booking); hit {
		return &booking, nil
	}

	fetched, err := p.inner.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	p.store(ctx, idKey(id), fetched)
	return fetched, nil
}

// UpdateStatus forwards the transition and invalidates the affected keys.
func (p *CachedProvider) UpdateStatus(ctx context.Context, id string, status tracking.Status) (*domain.Booking, error) {
	booking, err := p.inner.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	p.invalidate(ctx, booking)
	return booking, nil
}

// Cancel forwards the cancellation and invalidates the affected keys.
func (p *CachedProvider) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := p.inner.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}

	p.invalidate(ctx, booking)
	return booking, nil
}

// SubmitRating forwards the rating and invalidates the affected keys.
func (p *CachedProvider) SubmitRating(ctx context.Context, id string, input domain.RatingInput) error {
	if err := p.inner.SubmitRating(ctx, id, input); err != nil {
		return err
	}

	p.drop(ctx, idKey(id), allKey)
	return nil
}

// lookup reads and decodes a cached value. Cache failures are logged and
// treated as misses.
func (p *CachedProvider) lookup(ctx context.Context, key string, out interface{}) bool {
	data, err := p.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Get().Warn("Booking cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		logger.Get().Warn("Booking cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// store encodes and writes a value with the configured TTL; failures only log.
func (p *CachedProvider) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Get().Warn("Booking cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
		logger.Get().Warn(fmt.Sprintf("Booking cache write failed for %s", key), zap.Error(err))
	}
}

// invalidate drops the keys affected by a mutation.
func (p *CachedProvider) invalidate(ctx context.Context, booking *domain.Booking) {
	keys := []string{idKey(booking.ID), allKey}
	if booking.UserID != "" {
		keys = append(keys, userKey(booking.UserID))
	}
	p.drop(ctx, keys...)
}

// drop deletes cache keys; a failed delete leaves a stale entry behind until
// the TTL expires, so it is logged rather than swallowed.
func (p *CachedProvider) drop(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := p.cache.Delete(ctx, key); err != nil {
			logger.Get().Warn("Booking cache invalidation failed", zap.String("key", key), zap.Error(err))
		}
	}
}
