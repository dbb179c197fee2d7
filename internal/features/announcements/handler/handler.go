package handler

import (
	"errors"
	"net/http"

	"tourism-tracker/internal/core/logger"
	"tourism-tracker/internal/features/announcements/domain"
	"tourism-tracker/internal/features/announcements/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AnnouncementHandler handles HTTP requests for platform announcements.
type AnnouncementHandler struct {
	service ports.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(service ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{
		service: service,
	}
}

// PublishRequest represents the request body for publishing an announcement.
type PublishRequest struct {
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Severity domain.Severity `json:"severity"`
	Audience domain.Audience `json:"audience"`
	// Duration in seconds; 0 keeps the announcement until deleted.
	Duration int `json:"duration"`
}

// Publish handles POST /api/announcements.
// @Summary Publish an announcement
// @Description Creates or replaces the platform-wide announcement. Admin only.
// @Tags announcements
// @Accept json
// @Produce json
// @Param body body PublishRequest true "Announcement details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/announcements [post]
func (h *AnnouncementHandler) Publish(c *fiber.Ctx) error {
	var req PublishRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	err := h.service.Publish(c.Context(), req.Title, req.Body, req.Severity, req.Audience, req.Duration)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSeverity) || errors.Is(err, domain.ErrEmptyTitle) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to publish announcement", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Announcement published",
	})
}

// Get handles GET /api/announcements.
// @Summary Get the current announcement
// @Description Retrieves the active platform-wide announcement.
// @Tags announcements
// @Produce json
// @Success 200 {object} domain.Announcement
// @Failure 404 {object} map[string]string
// @Router /api/announcements [get]
func (h *AnnouncementHandler) Get(c *fiber.Ctx) error {
	announcement, err := h.service.Current(c.Context())
	if err != nil {
		logger.Get().Error("Failed to get announcement", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if announcement == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "No active announcement",
		})
	}

	return c.Status(http.StatusOK).JSON(announcement)
}

// Remove handles DELETE /api/announcements.
// @Summary Remove the current announcement
// @Description Deletes the active platform-wide announcement. Admin only.
// @Tags announcements
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/announcements [delete]
func (h *AnnouncementHandler) Remove(c *fiber.Ctx) error {
	if err := h.service.Remove(c.Context()); err != nil {
		logger.Get().Error("Failed to remove announcement", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Announcement removed",
	})
}
