package bookings

import (
	"time"

	"grabgood/models"
)

// holdsSlot reports whether a booking in this status blocks its slot.
func holdsSlot(status string) bool {
	return status == models.BookingStatusPending || status == models.BookingStatusConfirmed
}

// canTransition encodes the booking lifecycle: pending may confirm or cancel,
// confirmed may complete or cancel, terminal states stay put.
func canTransition(from, to string) bool {
	switch from {
	case models.BookingStatusPending:
		return to == models.BookingStatusConfirmed || to == models.BookingStatusCancelled
	case models.BookingStatusConfirmed:
		return to == models.BookingStatusCompleted || to == models.BookingStatusCancelled
	}
	return false
}

// bookingStart resolves the scheduled start instant. Falls back to midnight
// when the time-of-day is absent or malformed.
func bookingStart(date, startTime string) (time.Time, error) {
	if startTime != "" {
		if t, err := time.Parse("2006-01-02 15:04", date+" "+startTime); err == nil {
			return t, nil
		}
	}
	return time.Parse("2006-01-02", date)
}

const cancelLeadTime = 24 * time.Hour

// cancellable reports whether the booking may still be removed at `now`.
// Admins bypass the lead-time rule.
func cancellable(date, startTime string, now time.Time, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	start, err := bookingStart(date, startTime)
	if err != nil {
		return false
	}
	return start.Sub(now) >= cancelLeadTime
}
