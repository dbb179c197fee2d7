package domain

import (
	"errors"
	"time"

	"tourism-tracker/internal/core/money"
)

var (
	// ErrInvalidRange is returned when the end of a range precedes its start.
	ErrInvalidRange = errors.New("end date must not precede start date")
	// ErrInvalidCategory is returned for an unrecognized category filter.
	ErrInvalidCategory = errors.New("invalid report category")
)

// Category identifies a sales bucket. Booking categories match the upstream
// booking types; products form their own bucket.
type Category string

const (
	CategoryAll             Category = "all"
	CategoryItinerary       Category = "Itinerary"
	CategoryActivity        Category = "Activity"
	CategoryHistoricalPlace Category = "HistoricalPlace"
	CategoryProduct         Category = "Product"
)

// IsValid checks whether the category is a known filter value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAll, CategoryItinerary, CategoryActivity, CategoryHistoricalPlace, CategoryProduct:
		return true
	}
	return false
}

// Filters narrow a sales report by date range and category. Zero dates leave
// that side of the range open.
type Filters struct {
	Start    time.Time
	End      time.Time
	Category Category
}

// Validate checks the range ordering and the category value.
func (f Filters) Validate() error {
	if !f.Start.IsZero() && !f.End.IsZero() && f.End.Before(f.Start) {
		return ErrInvalidRange
	}
	if f.Category != "" && !f.Category.IsValid() {
		return ErrInvalidCategory
	}
	return nil
}

// InRange reports whether a record dated t falls inside the filter window.
func (f Filters) InRange(t time.Time) bool {
	if !f.Start.IsZero() && t.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && t.After(f.End) {
		return false
	}
	return true
}

// Includes reports whether a record category passes the category filter.
func (f Filters) Includes(c Category) bool {
	return f.Category == "" || f.Category == CategoryAll || f.Category == c
}

// Bucket accumulates the revenue of one category.
type Bucket struct {
	// Count is the number of transactions in the bucket.
	Count int `json:"count"`
	// Total is the accrued platform revenue in minor units.
	Total money.Amount `json:"total"`
}

// Cancelled accumulates cancelled transactions, which carry no revenue but
// are reported at their full value.
type Cancelled struct {
	Count int `json:"count"`
	// Amount is the full value of the cancelled transactions.
	Amount money.Amount `json:"amount"`
}

// Totals summarize a report across all buckets.
type Totals struct {
	// Revenue is the platform revenue across every category bucket.
	Revenue money.Amount `json:"revenue"`
	// Transactions counts every revenue-bearing transaction.
	Transactions int `json:"transactions"`
}

// Report is the aggregated sales view served to admins.
type Report struct {
	Categories map[Category]Bucket `json:"categories"`
	Cancelled  Cancelled           `json:"cancelled"`
	Totals     Totals              `json:"totals"`
}
