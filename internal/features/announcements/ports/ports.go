package ports

import (
	"context"

	"tourism-tracker/internal/features/announcements/domain"
)

// AnnouncementService defines the primary port for announcement operations.
type AnnouncementService interface {
	Publish(ctx context.Context, title, body string, severity domain.Severity, audience domain.Audience, duration int) error
	Current(ctx context.Context) (*domain.Announcement, error)
	Remove(ctx context.Context) error
}

// AnnouncementRepository defines the secondary port for announcement storage.
type AnnouncementRepository interface {
	Save(ctx context.Context, announcement *domain.Announcement) error
	Get(ctx context.Context) (*domain.Announcement, error)
	Delete(ctx context.Context) error
}
