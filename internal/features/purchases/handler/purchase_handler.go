package handler

import (
	"errors"
	"net/http"

	"tourism-tracker/internal/core/auth"
	"tourism-tracker/internal/core/httpclient"
	"tourism-tracker/internal/core/logger"
	"tourism-tracker/internal/features/purchases/domain"
	"tourism-tracker/internal/features/purchases/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PurchaseHandler handles HTTP requests related to product purchases.
type PurchaseHandler struct {
	// service is the PurchaseService instance.
	service *service.PurchaseService
}

// NewPurchaseHandler creates a new instance of PurchaseHandler.
func NewPurchaseHandler(s *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
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

// GetUserPurchases handles listing a user's purchases.
// @Summary List a user's purchases
// @Description Returns all purchases of a user with their derived delivery status.
// @Tags purchases
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string][]domain.Purchase
// @Failure 403 {object} ErrorResponse
// @Router /api/purchases/user/{id} [get]
func (h *PurchaseHandler) GetUserPurchases(c *fiber.Ctx) error {
	userID := c.Params("id")

	if !canActFor(c, userID) {
		return respondError(c, http.StatusForbidden, "cannot view another user's purchases")
	}

	purchases, err := h.service.ListUserPurchases(c.Context(), userID)
	if err != nil {
		return h.respondServiceError(c, err, "Failed to list purchases")
	}

	return c.JSON(fiber.Map{"data": purchases})
}

// GetAllPurchases handles listing every purchase on the platform.
// @Summary List all purchases
// @Description Returns every purchase with its derived delivery status. Admin only.
// @Tags purchases
// @Produce json
// @Success 200 {object} map[string][]domain.Purchase
// @Failure 403 {object} ErrorResponse
// @Router /api/purchases [get]
func (h *PurchaseHandler) GetAllPurchases(c *fiber.Ctx) error {
	purchases, err := h.service.ListAllPurchases(c.Context())
	if err != nil {
		return h.respondServiceError(c, err, "Failed to list all purchases")
	}

	return c.JSON(fiber.Map{"data": purchases})
}

// Cancel handles a purchase cancellation with a wallet refund.
// @Summary Cancel a purchase
// @Description Cancels an undelivered purchase and refunds the tourist's wallet.
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/purchases/{id}/cancel [post]
func (h *PurchaseHandler) Cancel(c *fiber.Ctx) error {
	result, err := h.service.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return h.respondServiceError(c, err, "Failed to cancel purchase")
	}

	return c.JSON(fiber.Map{"success": true, "data": result})
}

// Review handles a one-shot product review submission.
// @Summary Review a delivered purchase
// @Description Submits a rating and optional comment for a delivered purchase.
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path string true "Purchase ID"
// @Param body body domain.Review true "Review"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/purchases/{id}/review [post]
func (h *PurchaseHandler) Review(c *fiber.Ctx) error {
	var review domain.Review
	if err := c.BodyParser(&review); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	if err := h.service.Review(c.Context(), c.Params("id"), review); err != nil {
		return h.respondServiceError(c, err, "Failed to review purchase")
	}

	return c.JSON(fiber.Map{"success": true})
}

// respondServiceError maps service errors onto HTTP responses. Upstream
// business-rule messages pass through verbatim.
func (h *PurchaseHandler) respondServiceError(c *fiber.Ctx, err error, logMsg string) error {
	switch {
	case errors.Is(err, service.ErrPurchaseNotFound):
		return respondError(c, http.StatusNotFound, service.ErrPurchaseNotFound.Error())
	case errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrAlreadyDelivered),
		errors.Is(err, domain.ErrNotDelivered),
		errors.Is(err, domain.ErrAlreadyReviewed):
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if ue, ok := httpclient.AsUpstreamError(err); ok && ue.StatusCode >= 400 && ue.StatusCode < 500 {
		return respondError(c, ue.StatusCode, ue.Message)
	}

	logger.Get().Error(logMsg,
		zap.String("purchase_id", c.Params("id")),
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
