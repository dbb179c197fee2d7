package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tourism-tracker/internal/core/cache"
	"tourism-tracker/internal/features/announcements/domain"
)

const announcementKey = "platform_announcement"

// RedisRepository implements ports.AnnouncementRepository on the cache port.
type RedisRepository struct {
	cache cache.Cache
}

// NewRedisRepository creates a new RedisRepository.
func NewRedisRepository(c cache.Cache) *RedisRepository {
	return &RedisRepository{
		cache: c,
	}
}

// Save stores the announcement. A non-zero duration doubles as the TTL, so
// expiry needs no sweeper.
func (r *RedisRepository) Save(ctx context.Context, announcement *domain.Announcement) error {
	data, err := json.Marshal(announcement)
	if err != nil {
		return fmt.Errorf("failed to marshal announcement: %w", err)
	}

	ttl := time.Duration(announcement.Duration) * time.Second
	if err := r.cache.Set(ctx, announcementKey, data, ttl); err != nil {
		return fmt.Errorf("failed to save announcement: %w", err)
	}
	return nil
}

// Get retrieves the active announcement. Returns nil, nil when none is set.
func (r *RedisRepository) Get(ctx context.Context) (*domain.Announcement, error) {
	data, err := r.cache.Get(ctx, announcementKey)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}

	var announcement domain.Announcement
	if err := json.Unmarshal(data, &announcement); err != nil {
		return nil, fmt.Errorf("failed to unmarshal announcement: %w", err)
	}
	return &announcement, nil
}

// Delete removes the active announcement.
func (r *RedisRepository) Delete(ctx context.Context) error {
	if err := r.cache.Delete(ctx, announcementKey); err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}
