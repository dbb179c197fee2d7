package handler

import (
	"errors"
	"net/http"

	"tourism-tracker/internal/core/auth"
	"tourism-tracker/internal/core/httpclient"
	"tourism-tracker/internal/core/logger"
	"tourism-tracker/internal/features/bookings/domain"
	"tourism-tracker/internal/features/bookings/service"
	tracking "tourism-tracker/internal/features/tracking/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BookingHandler handles HTTP requests related to bookings.
type BookingHandler struct {
	// service is the BookingService instance.
	service *service.BookingService
}

// NewBookingHandler creates a new instance of BookingHandler.
func NewBookingHandler(s *service.BookingService) *BookingHandler {
	return &BookingHandler{
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

// UpdateStatusRequest represents the body of a status transition request.
type UpdateStatusRequest struct {
	Status tracking.Status `json:"status"`
}

// GetUserBookings handles listing a user's bookings.
// @Summary List a user's bookings
// @Description Returns all bookings of a user with their derived attendance status.
// @Tags bookings
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string][]domain.Booking
// @Failure 403 {object} ErrorResponse
// @Router /api/bookings/user/{id} [get]
func (h *BookingHandler) GetUserBookings(c *fiber.Ctx) error {
	userID := c.Params("id")

	if !canActFor(c, userID) {
		return respondError(c, http.StatusForbidden, "cannot view another user's bookings")
	}

	bookings, err := h.service.ListUserBookings(c.Context(), userID)
	if err != nil {
		return h.respondServiceError(c, err, "Failed to list bookings")
	}

	return c.JSON(fiber.Map{"data": bookings})
}

// UpdateStatus handles a booking status transition.
// @Summary Update a booking's status
// @Description Applies a validated status transition and persists it upstream.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param body body UpdateStatusRequest true "Target status"
// @Success 200 {object} domain.Booking
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/bookings/status/{id} [patch]
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Status == "" {
		return respondError(c, http.StatusBadRequest, "status is required")
	}

	booking, err := h.service.UpdateStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return h.respondServiceError(c, err, "Failed to update booking status")
	}

	return c.JSON(booking)
}

// Cancel handles a booking cancellation.
// @Summary Cancel a booking
// @Description Cancels a non-terminal booking upstream.
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/bookings/cancel/{id} [patch]
func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	booking, err := h.service.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return h.respondServiceError(c, err, "Failed to cancel booking")
	}

	return c.JSON(fiber.Map{"success": true, "data": booking})
}

// Rate handles a one-shot rating submission.
// @Summary Rate an attended booking
// @Description Submits a rating (and optionally a tour-guide rating) for an attended booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param body body domain.RatingInput true "Rating"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/bookings/{id}/rating [post]
func (h *BookingHandler) Rate(c *fiber.Ctx) error {
	var input domain.RatingInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	if err := h.service.Rate(c.Context(), c.Params("id"), input); err != nil {
		return h.respondServiceError(c, err, "Failed to rate booking")
	}

	return c.JSON(fiber.Map{"success": true})
}

// respondServiceError maps service errors onto HTTP responses. Upstream
// business-rule messages pass through verbatim.
func (h *BookingHandler) respondServiceError(c *fiber.Ctx, err error, logMsg string) error {
	switch {
	case errors.Is(err, service.ErrBookingNotFound):
		return respondError(c, http.StatusNotFound, service.ErrBookingNotFound.Error())
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, domain.ErrNotAttended),
		errors.Is(err, domain.ErrAlreadyRated),
		errors.Is(err, domain.ErrNotRatable),
		errors.Is(err, domain.ErrNoGuide),
		errors.Is(err, domain.ErrGuideAlreadyRated):
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if ue, ok := httpclient.AsUpstreamError(err); ok && ue.StatusCode >= 400 && ue.StatusCode < 500 {
		return respondError(c, ue.StatusCode, ue.Message)
	}

	logger.Get().Error(logMsg,
		zap.String("booking_id", c.Params("id")),
		zap.Error(err),
	)
	return respondError(c, http.StatusInternalServerError, "internal server error")
}

// canActFor reports whether the caller may act on the given user's records.
func canActFor(c *fiber.Ctx, userID string) bool {
	if auth.UserID(c) == userID {
		return true
	}
	role, _ := c.Locals(auth.LocalRole).(string)
	return role == auth.RoleAdmin
}

func respondError(c *fiber.Ctx, status int, msg string) error {
	rayID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID,
	})
}
