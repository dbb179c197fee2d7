package domain

import (
	"errors"
	"time"
)

// Severity represents the visual weight of an announcement.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Audience restricts who an announcement is shown to. Empty means everyone.
type Audience string

const (
	AudienceAll        Audience = "all"
	AudienceTourists   Audience = "tourists"
	AudienceSellers    Audience = "sellers"
	AudienceAdvertiser Audience = "advertisers"
)

var (
	ErrInvalidSeverity = errors.New("invalid announcement severity")
	ErrEmptyTitle      = errors.New("announcement title is required")
)

// Announcement is a platform-wide notice shown to users.
type Announcement struct {
	Title    string   `json:"title"`
	Body     string   `json:"body,omitempty"`
	Severity Severity `json:"severity"`
	Audience Audience `json:"audience,omitempty"`
	// Duration in seconds. 0 means permanent (until manually deleted).
	Duration  int       `json:"duration,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAnnouncement creates a new Announcement and validates it.
func NewAnnouncement(title, body string, severity Severity, audience Audience, duration int) (*Announcement, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if severity != SeverityInfo && severity != SeverityWarning && severity != SeverityDanger {
		return nil, ErrInvalidSeverity
	}
	if audience == "" {
		audience = AudienceAll
	}

	return &Announcement{
		Title:     title,
		Body:      body,
		Severity:  severity,
		Audience:  audience,
		Duration:  duration,
		CreatedAt: time.Now(),
	}, nil
}
