package service

import (
	"context"
	"fmt"

	"tourism-tracker/internal/features/announcements/domain"
	"tourism-tracker/internal/features/announcements/ports"
)

// AnnouncementServiceImpl implements ports.AnnouncementService.
type AnnouncementServiceImpl struct {
	repo ports.AnnouncementRepository
}

// NewAnnouncementService creates a new AnnouncementServiceImpl.
func NewAnnouncementService(repo ports.AnnouncementRepository) *AnnouncementServiceImpl {
	return &AnnouncementServiceImpl{
		repo: repo,
	}
}

// Publish validates and stores a new platform announcement, replacing any
// existing one.
func (s *AnnouncementServiceImpl) Publish(ctx context.Context, title, body string, severity domain.Severity, audience domain.Audience, duration int) error {
	announcement, err := domain.NewAnnouncement(title, body, severity, audience, duration)
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, announcement); err != nil {
		return fmt.Errorf("service: failed to publish announcement: %w", err)
	}
	return nil
}

// Current retrieves the active announcement, or nil when none is set.
func (s *AnnouncementServiceImpl) Current(ctx context.Context) (*domain.Announcement, error) {
	announcement, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get announcement: %w", err)
	}
	return announcement, nil
}

// Remove deletes the active announcement.
func (s *AnnouncementServiceImpl) Remove(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("service: failed to remove announcement: %w", err)
	}
	return nil
}
