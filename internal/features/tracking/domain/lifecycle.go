package domain

import "time"

// Status represents a lifecycle state of a booking or purchase.
type Status string

const (
	// StatusProcessing indicates the order was received and is being prepared.
	StatusProcessing Status = "processing"
	// StatusOnTheWay indicates the order left the seller.
	StatusOnTheWay Status = "on_the_way"
	// StatusDelivered indicates the order reached the tourist.
	StatusDelivered Status = "delivered"
	// StatusCancelled is the terminal cancelled state.
	StatusCancelled Status = "cancelled"

	// StatusPending indicates a booking awaiting confirmation.
	StatusPending Status = "pending"
	// StatusConfirmed indicates a confirmed upcoming booking.
	StatusConfirmed Status = "confirmed"
	// StatusAttended indicates the booked event took place.
	StatusAttended Status = "attended"
)

// Delivery progression thresholds, in whole elapsed days.
const (
	onTheWayAfterDays  = 2
	deliveredAfterDays = 3
)

// Derive computes the delivery status of a record from its origin date.
// A persisted cancelled status is terminal and short-circuits the time logic.
// A record dated in the future derives to processing.
func Derive(origin time.Time, persisted Status, now time.Time) Status {
	if persisted == StatusCancelled {
		return StatusCancelled
	}

	switch days := wholeDaysBetween(origin, now); {
	case days >= deliveredAfterDays:
		return StatusDelivered
	case days >= onTheWayAfterDays:
		return StatusOnTheWay
	default:
		return StatusProcessing
	}
}

// DeriveBooking computes the attendance hint for a booking. Cancelled and
// attended are terminal; a non-terminal booking whose date has passed reports
// attended. The persisted status stays authoritative, this value is only a
// hint until the upstream records the transition.
func DeriveBooking(bookingDate time.Time, persisted Status, now time.Time) Status {
	if persisted == StatusCancelled || persisted == StatusAttended {
		return persisted
	}
	if bookingDate.Before(now) {
		return StatusAttended
	}
	return persisted
}

// wholeDaysBetween floors the elapsed time to whole calendar days. Exactly
// 2.0 or 3.0 elapsed days counts as 2 or 3.
func wholeDaysBetween(origin, now time.Time) int {
	return int(now.Sub(origin) / (24 * time.Hour))
}
