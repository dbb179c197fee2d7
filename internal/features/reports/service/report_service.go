package service

import (
	"context"
	"fmt"

	"tourism-tracker/internal/core/money"
	bookingdomain "tourism-tracker/internal/features/bookings/domain"
	purchasedomain "tourism-tracker/internal/features/purchases/domain"
	"tourism-tracker/internal/features/reports/domain"
	"tourism-tracker/internal/features/reports/ports"
	tracking "tourism-tracker/internal/features/tracking/domain"
)

// ReportService aggregates platform-wide sales into category buckets.
type ReportService struct {
	bookings  ports.BookingSource
	purchases ports.PurchaseSource
	// feeRate is the platform's cut of every transaction, e.g. 0.10.
	feeRate float64
}

// NewReportService creates a new instance of ReportService.
func NewReportService(bookings ports.BookingSource, purchases ports.PurchaseSource, feeRate float64) *ReportService {
	return &ReportService{
		bookings:  bookings,
		purchases: purchases,
		feeRate:   feeRate,
	}
}

// SalesReport fetches all bookings and purchases and aggregates them under
// the given filters.
func (s *ReportService) SalesReport(ctx context.Context, filters domain.Filters) (*domain.Report, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	bookings, err := s.bookings.GetAllBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for report: %w", err)
	}
	purchases, err := s.purchases.GetAllPurchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchases for report: %w", err)
	}

	return Aggregate(bookings, purchases, filters, s.feeRate), nil
}

// Aggregate folds bookings and purchases into a sales report. The platform's
// revenue per transaction is its fee fraction of the price; cancelled
// transactions earn nothing and are reported separately at full value. The
// result depends only on its inputs.
func Aggregate(bookings []bookingdomain.Booking, purchases []purchasedomain.Purchase, filters domain.Filters, feeRate float64) *domain.Report {
	report := &domain.Report{
		Categories: make(map[domain.Category]domain.Bucket),
	}

	// Bookings fall into the window by their creation date, purchases by their
	// purchase date; the scheduled event date is irrelevant to when the sale
	// happened.
	for _, b := range bookings {
		category := domain.Category(b.Type)
		if !filters.Includes(category) || !filters.InRange(b.CreatedAt) {
			continue
		}
		if b.Status == tracking.StatusCancelled {
			report.Cancelled.Count++
			report.Cancelled.Amount += b.Price
			continue
		}
		accrue(report, category, b.Price.Fraction(feeRate))
	}

	for _, p := range purchases {
		if !filters.Includes(domain.CategoryProduct) || !filters.InRange(p.PurchaseDate) {
			continue
		}
		if p.IsCancelled() {
			report.Cancelled.Count++
			report.Cancelled.Amount += p.TotalPrice
			continue
		}
		accrue(report, domain.CategoryProduct, p.TotalPrice.Fraction(feeRate))
	}

	return report
}

// accrue adds one transaction's revenue to its category bucket and the totals.
func accrue(report *domain.Report, category domain.Category, revenue money.Amount) {
	bucket := report.Categories[category]
	bucket.Count++
	bucket.Total += revenue
	report.Categories[category] = bucket

	report.Totals.Revenue += revenue
	report.Totals.Transactions++
}
