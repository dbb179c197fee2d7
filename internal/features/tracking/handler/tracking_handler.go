package handler

import (
	"errors"
	"net/http"

	"tourism-tracker/internal/core/logger"
	"tourism-tracker/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles HTTP requests for record timelines.
type TrackingHandler struct {
	// service is the TrackingService instance.
	service *service.TrackingService
}

// NewTrackingHandler creates a new instance of TrackingHandler.
func NewTrackingHandler(s *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		service: s,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id,omitempty"`
}

// GetPurchaseTimeline handles fetching a purchase's delivery timeline.
// @Summary Get a purchase's tracking timeline
// @Description Returns the derived delivery status and ordered lifecycle events of a purchase.
// @Tags tracking
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} domain.Timeline
// @Failure 404 {object} ErrorResponse
// @Router /api/tracking/purchases/{id} [get]
func (h *TrackingHandler) GetPurchaseTimeline(c *fiber.Ctx) error {
	timeline, err := h.service.PurchaseTimeline(c.Context(), c.Params("id"))
	if err != nil {
		return h.respondServiceError(c, err, "Failed to build purchase timeline")
	}

	return c.JSON(timeline)
}

// GetBookingTimeline handles fetching a booking's lifecycle timeline.
// @Summary Get a booking's tracking timeline
// @Description Returns the derived attendance status and ordered lifecycle events of a booking.
// @Tags tracking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} domain.Timeline
// @Failure 404 {object} ErrorResponse
// @Router /api/tracking/bookings/{id} [get]
func (h *TrackingHandler) GetBookingTimeline(c *fiber.Ctx) error {
	timeline, err := h.service.BookingTimeline(c.Context(), c.Params("id"))
	if err != nil {
		return h.respondServiceError(c, err, "Failed to build booking timeline")
	}

	return c.JSON(timeline)
}

func (h *TrackingHandler) respondServiceError(c *fiber.Ctx, err error, logMsg string) error {
	if errors.Is(err, service.ErrRecordNotFound) {
		return respondError(c, http.StatusNotFound, service.ErrRecordNotFound.Error())
	}

	logger.Get().Error(logMsg,
		zap.String("record_id", c.Params("id")),
		zap.Error(err),
	)
	return respondError(c, http.StatusInternalServerError, "internal server error")
}

func respondError(c *fiber.Ctx, status int, msg string) error {
	rayID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID,
	})
}
