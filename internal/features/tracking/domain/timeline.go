package domain

import "time"

// Event is a single entry in a record's tracking timeline.
type Event struct {
	// Status is the lifecycle state this event represents.
	Status Status `json:"status"`
	// Message is the display description of the event.
	Message string `json:"message"`
	// Timestamp is when the state was (or will be considered) reached.
	Timestamp time.Time `json:"timestamp"`
}

// Timeline is the ordered event history of a record, newest last.
type Timeline struct {
	// Status is the current derived status of the record.
	Status Status `json:"status"`
	// Events are the chronological lifecycle events.
	Events []Event `json:"events"`
}

var deliveryMessages = map[Status]string{
	StatusProcessing: "Order received and is being processed",
	StatusOnTheWay:   "Shipment is on the way",
	StatusDelivered:  "Shipment delivered",
	StatusCancelled:  "Order cancelled",
}

var bookingMessages = map[Status]string{
	StatusPending:   "Booking placed, awaiting confirmation",
	StatusConfirmed: "Booking confirmed",
	StatusAttended:  "Event attended",
	StatusCancelled: "Booking cancelled",
}

// BuildDeliveryTimeline produces the ordered event sequence for a purchase.
// The processing event is stamped at the origin date, on_the_way at
// origin + 2 days and delivered at origin + 3 days. A cancelled record gets a
// terminal cancelled event stamped at updatedAt (or now when unknown),
// appended after the events accumulated so far. The output is monotonically
// time-ordered and identical for identical input.
func BuildDeliveryTimeline(origin time.Time, status Status, updatedAt *time.Time, now time.Time) []Event {
	events := []Event{{
		Status:    StatusProcessing,
		Message:   deliveryMessages[StatusProcessing],
		Timestamp: origin,
	}}

	if status == StatusCancelled {
		return appendCancelled(events, deliveryMessages[StatusCancelled], updatedAt, now)
	}

	if status == StatusOnTheWay || status == StatusDelivered {
		events = append(events, Event{
			Status:    StatusOnTheWay,
			Message:   deliveryMessages[StatusOnTheWay],
			Timestamp: origin.Add(onTheWayAfterDays * 24 * time.Hour),
		})
	}

	if status == StatusDelivered {
		events = append(events, Event{
			Status:    StatusDelivered,
			Message:   deliveryMessages[StatusDelivered],
			Timestamp: origin.Add(deliveredAfterDays * 24 * time.Hour),
		})
	}

	return events
}

// BuildBookingTimeline produces the ordered event sequence for a booking.
// The initial event carries the persisted pre-attendance status stamped at the
// reservation time; attended is stamped at the event date.
func BuildBookingTimeline(placedAt, bookingDate time.Time, status Status, updatedAt *time.Time, now time.Time) []Event {
	initial := StatusPending
	if status == StatusConfirmed || status == StatusAttended {
		initial = StatusConfirmed
	}

	events := []Event{{
		Status:    initial,
		Message:   bookingMessages[initial],
		Timestamp: placedAt,
	}}

	if status == StatusCancelled {
		return appendCancelled(events, bookingMessages[StatusCancelled], updatedAt, now)
	}

	if status == StatusAttended {
		events = append(events, Event{
			Status:    StatusAttended,
			Message:   bookingMessages[StatusAttended],
			Timestamp: bookingDate,
		})
	}

	return events
}

// appendCancelled appends the terminal cancelled event, keeping the sequence
// time-ordered even when the update time predates earlier events.
func appendCancelled(events []Event, message string, updatedAt *time.Time, now time.Time) []Event {
	ts := now
	if updatedAt != nil {
		ts = *updatedAt
	}
	if last := events[len(events)-1].Timestamp; ts.Before(last) {
		ts = last
	}

	return append(events, Event{
		Status:    StatusCancelled,
		Message:   message,
		Timestamp: ts,
	})
}
