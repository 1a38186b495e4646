package bookings

import (
	"testing"
	"time"

	"grabgood/models"

	"github.com/stretchr/testify/assert"
)

func TestHoldsSlot(t *testing.T) {
	assert.True(t, holdsSlot(models.BookingStatusPending))
	assert.True(t, holdsSlot(models.BookingStatusConfirmed))
	assert.False(t, holdsSlot(models.BookingStatusCancelled))
	assert.False(t, holdsSlot(models.BookingStatusCompleted))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{models.BookingStatusPending, models.BookingStatusConfirmed, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusPending, models.BookingStatusCompleted, false},
		{models.BookingStatusConfirmed, models.BookingStatusCompleted, true},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusPending, false},
		{models.BookingStatusCancelled, models.BookingStatusPending, false},
		{models.BookingStatusCancelled, models.BookingStatusConfirmed, false},
		{models.BookingStatusCompleted, models.BookingStatusCancelled, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, canTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestBookingStart(t *testing.T) {
	start, err := bookingStart("2024-06-01", "19:30")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 19, 30, 0, 0, time.UTC), start)

	// Missing or malformed time falls back to midnight.
	start, err = bookingStart("2024-06-01", "")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), start)

	start, err = bookingStart("2024-06-01", "late evening")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), start)

	_, err = bookingStart("not-a-date", "")
	assert.Error(t, err)
}

func TestCancellable(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// More than 24h out.
	assert.True(t, cancellable("2024-06-03", "10:00", now, false))
	// Exactly 24h out.
	assert.True(t, cancellable("2024-06-02", "12:00", now, false))
	// Inside the lead time.
	assert.False(t, cancellable("2024-06-02", "09:00", now, false))
	// Already past.
	assert.False(t, cancellable("2024-05-30", "10:00", now, false))
	// Admins bypass the window entirely.
	assert.True(t, cancellable("2024-06-01", "13:00", now, true))
	assert.True(t, cancellable("2024-05-30", "10:00", now, true))
	// Bad date is never cancellable for non-admins.
	assert.False(t, cancellable("garbage", "", now, false))
}
