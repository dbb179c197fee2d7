package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// TestDerive_TimeProgression verifies the elapsed-day thresholds.
func TestDerive_TimeProgression(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    Status
	}{
		{"just purchased", 0, StatusProcessing},
		{"one day ago", 24 * time.Hour, StatusProcessing},
		{"just under two days", 48*time.Hour - time.Second, StatusProcessing},
		{"exactly two days", 48 * time.Hour, StatusOnTheWay},
		{"two and a half days", 60 * time.Hour, StatusOnTheWay},
		{"just under three days", 72*time.Hour - time.Second, StatusOnTheWay},
		{"exactly three days", 72 * time.Hour, StatusDelivered},
		{"four days ago", 96 * time.Hour, StatusDelivered},
		{"a month ago", 30 * 24 * time.Hour, StatusDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(now.Add(-tt.elapsed), "", now)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestDerive_CancelledIsTerminal verifies cancelled wins regardless of elapsed time.
func TestDerive_CancelledIsTerminal(t *testing.T) {
	for _, elapsed := range []time.Duration{0, 24 * time.Hour, 96 * time.Hour, 365 * 24 * time.Hour} {
		got := Derive(now.Add(-elapsed), StatusCancelled, now)
		assert.Equal(t, StatusCancelled, got)
	}
}

// TestDerive_FutureOrigin verifies that a record dated in the future fails closed to processing.
func TestDerive_FutureOrigin(t *testing.T) {
	got := Derive(now.Add(48*time.Hour), "", now)
	assert.Equal(t, StatusProcessing, got)
}

// TestDeriveBooking_PastDate verifies the attended hint for past non-terminal bookings.
func TestDeriveBooking_PastDate(t *testing.T) {
	got := DeriveBooking(now.Add(-96*time.Hour), StatusConfirmed, now)
	assert.Equal(t, StatusAttended, got)

	got = DeriveBooking(now.Add(-time.Hour), StatusPending, now)
	assert.Equal(t, StatusAttended, got)
}

// TestDeriveBooking_UpcomingKeepsStatus verifies upcoming bookings keep their persisted status.
func TestDeriveBooking_UpcomingKeepsStatus(t *testing.T) {
	got := DeriveBooking(now.Add(24*time.Hour), StatusConfirmed, now)
	assert.Equal(t, StatusConfirmed, got)

	got = DeriveBooking(now.Add(24*time.Hour), StatusPending, now)
	assert.Equal(t, StatusPending, got)
}

// TestDeriveBooking_TerminalStates verifies cancelled and attended are terminal.
func TestDeriveBooking_TerminalStates(t *testing.T) {
	got := DeriveBooking(now.Add(-96*time.Hour), StatusCancelled, now)
	assert.Equal(t, StatusCancelled, got)

	got = DeriveBooking(now.Add(24*time.Hour), StatusAttended, now)
	assert.Equal(t, StatusAttended, got)
}
