package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tourism-tracker/internal/core/cache"
	"tourism-tracker/internal/core/logger"
	"tourism-tracker/internal/features/purchases/domain"
	"tourism-tracker/internal/features/purchases/ports"

	"go.uber.org/zap"
)

// CachedProvider decorates a PurchaseProvider with a short-TTL read cache.
type CachedProvider struct {
	inner ports.PurchaseProvider
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedProvider creates a caching decorator around a PurchaseProvider.
func NewCachedProvider(inner ports.PurchaseProvider, c cache.Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: c,
		ttl:   ttl,
	}
}

func purchaseUserKey(userID string) string { return "purchases:user:" + userID }
func purchaseIDKey(id string) string       { return "purchases:id:" + id }

const purchasesAllKey = "purchases:all"

// GetUserPurchases returns the cached user list or falls through to upstream.
func (p *CachedProvider) GetUserPurchases(ctx context.Context, userID string) ([]domain.Purchase, error) {
	var purchases []domain.Purchase
	if p.lookup(ctx, purchaseUserKey(userID), &purchases) {
		return purchases, nil
	}

	purchases, err := p.inner.GetUserPurchases(ctx, userID)
	if err != nil {
		return nil, err
	}

	p.store(ctx, purchaseUserKey(userID), purchases)
	return purchases, nil
}

// GetAllPurchases returns the cached platform-wide list or falls through.
func (p *CachedProvider) GetAllPurchases(ctx context.Context) ([]domain.Purchase, error) {
	var purchases []domain.Purchase
	if p.lookup(ctx, purchasesAllKey, &purchases) {
		return purchases, nil
	}

	purchases, err := p.inner.GetAllPurchases(ctx)
	if err != nil {
		return nil, err
	}

	p.store(ctx, purchasesAllKey, purchases)
	return purchases, nil
}

// GetPurchase returns the cached purchase or falls through to upstream.
func (p *CachedProvider) GetPurchase(ctx context.Context, id string) (*domain.Purchase, error) {
	var purchase domain.Purchase
	if p.lookup(ctx, purchaseIDKey(id), &purchase) {
		return &purchase, nil
	}

	fetched, err := p.inner.GetPurchase(ctx, id)
	if err != nil {
		return nil, err
	}

	p.store(ctx, purchaseIDKey(id), fetched)
	return fetched, nil
}

// Cancel forwards the cancellation and invalidates the affected keys.
func (p *CachedProvider) Cancel(ctx context.Context, id string) (*ports.CancelResult, error) {
	result, err := p.inner.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}

	p.invalidate(ctx, id)
	return result, nil
}

// SubmitReview forwards the review and invalidates the affected keys.
func (p *CachedProvider) SubmitReview(ctx context.Context, id string, review domain.Review) error {
	if err := p.inner.SubmitReview(ctx, id, review); err != nil {
		return err
	}

	p.invalidate(ctx, id)
	return nil
}

// lookup reads and decodes a cached value. Cache failures are treated as misses.
func (p *CachedProvider) lookup(ctx context.Context, key string, out interface{}) bool {
	data, err := p.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Get().Warn("Purchase cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		logger.Get().Warn("Purchase cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// store encodes and writes a value with the configured TTL; failures only log.
func (p *CachedProvider) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Get().Warn("Purchase cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
		logger.Get().Warn("Purchase cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// invalidate drops the keys affected by a mutation. User lists cannot be
// addressed by purchase id alone and age out within the TTL. A failed delete
// leaves a stale entry behind until the TTL expires, so it is logged.
func (p *CachedProvider) invalidate(ctx context.Context, id string) {
	for _, key := range []string{purchaseIDKey(id), purchasesAllKey} {
		if err := p.cache.Delete(ctx, key); err != nil {
			logger.Get().Warn("Purchase cache invalidation failed", zap.String("key", key), zap.Error(err))
		}
	}
}
