package availability

import (
	"errors"
	"testing"

	"grabgood/apperr"
	"grabgood/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandDateRange(t *testing.T) {
	days, err := expandDateRange("2024-06-01", "2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-01", "2024-06-02", "2024-06-03"}, days)

	// Single-day range.
	days, err = expandDateRange("2024-06-01", "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-01"}, days)

	// Crosses a month boundary.
	days, err = expandDateRange("2024-06-29", "2024-07-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-29", "2024-06-30", "2024-07-01", "2024-07-02"}, days)

	_, err = expandDateRange("2024-06-03", "2024-06-01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = expandDateRange("June 1st", "2024-06-03")
	assert.Error(t, err)
	_, err = expandDateRange("2024-06-01", "2024-13-40")
	assert.Error(t, err)
}

func TestRangeUpdateFullShift(t *testing.T) {
	days, err := expandDateRange("2024-06-01", "2024-06-03")
	require.NoError(t, err)

	update := rangeUpdate(days, "table-4", ShiftFull, models.SlotBooked)
	require.Len(t, update, 3)
	for _, day := range days {
		key := "availability." + day + ".table-4"
		entry, ok := update[key].(models.ShiftStatus)
		require.True(t, ok, "missing %s", key)
		assert.Equal(t, models.SlotBooked, entry.Morning)
		assert.Equal(t, models.SlotBooked, entry.Evening)
	}
	// Days outside the range are untouched.
	assert.NotContains(t, update, "availability.2024-06-04.table-4")
}

func TestRangeUpdateSingleShift(t *testing.T) {
	update := rangeUpdate([]string{"2024-06-01"}, "room-2", ShiftEvening, models.SlotMaintenance)
	require.Len(t, update, 1)
	assert.Equal(t, models.SlotMaintenance, update["availability.2024-06-01.room-2.evening"])
}

func TestShiftValue(t *testing.T) {
	entry := models.ShiftStatus{Morning: models.SlotBooked}

	assert.Equal(t, models.SlotBooked, shiftValue(entry, ShiftMorning))
	// Unset shift defaults to available.
	assert.Equal(t, models.SlotAvailable, shiftValue(entry, ShiftEvening))
	// Full-day view with disagreeing shifts reads as limited.
	assert.Equal(t, models.SlotLimited, shiftValue(entry, ShiftFull))

	both := models.ShiftStatus{Morning: models.SlotBooked, Evening: models.SlotBooked}
	assert.Equal(t, models.SlotBooked, shiftValue(both, ShiftFull))

	assert.Equal(t, models.SlotAvailable, shiftValue(models.ShiftStatus{}, ShiftFull))
}

func TestLookupDefaultsToAvailable(t *testing.T) {
	avail := models.Availability{
		"2024-06-01": {
			"table-4": {Morning: models.SlotBooked, Evening: models.SlotBooked},
		},
	}

	assert.Equal(t, models.SlotBooked, lookup(avail, "2024-06-01", "table-4", ShiftFull))
	// Unknown day, unknown resource and nil map all read as available.
	assert.Equal(t, models.SlotAvailable, lookup(avail, "2024-06-04", "table-4", ShiftFull))
	assert.Equal(t, models.SlotAvailable, lookup(avail, "2024-06-01", "table-9", ShiftFull))
	assert.Equal(t, models.SlotAvailable, lookup(nil, "2024-06-01", "table-4", ShiftFull))
}

func TestValidShift(t *testing.T) {
	assert.True(t, validShift(ShiftMorning))
	assert.True(t, validShift(ShiftEvening))
	assert.True(t, validShift(ShiftFull))
	assert.True(t, validShift(""))
	assert.False(t, validShift("night"))
}
