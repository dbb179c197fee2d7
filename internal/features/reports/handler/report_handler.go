package handler

import (
	"errors"
	"net/http"
	"time"

	"tourism-tracker/internal/core/logger"
	"tourism-tracker/internal/features/reports/domain"
	"tourism-tracker/internal/features/reports/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// dateLayout is the query-parameter date format.
const dateLayout = "2006-01-02"

// ReportHandler handles HTTP requests for sales reports.
type ReportHandler struct {
	// service is the ReportService instance.
	service *service.ReportService
}

// NewReportHandler creates a new instance of ReportHandler.
func NewReportHandler(s *service.ReportService) *ReportHandler {
	return &ReportHandler{
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

// GetSalesReport handles the aggregated sales report.
// @Summary Get the sales report
// @Description Aggregates platform revenue per category over an optional date range. Admin only.
// @Tags reports
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD), inclusive"
// @Param category query string false "Category filter" Enums(all, Itinerary, Activity, HistoricalPlace, Product)
// @Success 200 {object} domain.Report
// @Failure 400 {object} ErrorResponse
// @Router /api/reports/sales [get]
func (h *ReportHandler) GetSalesReport(c *fiber.Ctx) error {
	filters, err := parseFilters(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	report, err := h.service.SalesReport(c.Context(), filters)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) || errors.Is(err, domain.ErrInvalidCategory) {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		logger.Get().Error("Failed to build sales report", zap.Error(err))
		return respondError(c, http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(report)
}

// parseFilters reads the query parameters. The end date is inclusive: it is
// pushed to the last instant of its day.
func parseFilters(c *fiber.Ctx) (domain.Filters, error) {
	var filters domain.Filters

	if start := c.Query("start"); start != "" {
		t, err := time.Parse(dateLayout, start)
		if err != nil {
			return filters, errors.New("invalid start date, expected YYYY-MM-DD")
		}
		filters.Start = t
	}
	if end := c.Query("end"); end != "" {
		t, err := time.Parse(dateLayout, end)
		if err != nil {
			return filters, errors.New("invalid end date, expected YYYY-MM-DD")
		}
		filters.End = t.Add(24*time.Hour - time.Nanosecond)
	}
	filters.Category = domain.Category(c.Query("category"))

	return filters, nil
}

func respondError(c *fiber.Ctx, status int, msg string) error {
	rayID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID,
	})
}
