package business

import (
	"encoding/json"
	"errors"
	"testing"

	"grabgood/apperr"
	"grabgood/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreate(t *testing.T) {
	b := &models.Business{
		Name:        "Tandoor House",
		Type:        models.BusinessTypeRestaurant,
		Description: "North Indian dining",
		Location:    models.Location{Address: "12 MG Road", City: "Pune"},
		Contact:     models.Contact{Phone: "9876543210"},
		Capacity:    40,
	}
	assert.Empty(t, validateCreate(b))

	empty := &models.Business{}
	fields := validateCreate(empty)
	for _, key := range []string{"name", "type", "description", "location", "contact", "capacity"} {
		assert.Contains(t, fields, key)
	}

	b.Type = "foodtruck"
	b.Capacity = 0
	fields = validateCreate(b)
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "capacity")
	assert.NotContains(t, fields, "name")
}

func TestBuildPatchFlattensNestedKeys(t *testing.T) {
	patch := map[string]json.RawMessage{
		"name":     json.RawMessage(`"New Name"`),
		"capacity": json.RawMessage(`60`),
		"location": json.RawMessage(`{"city":"Mumbai"}`),
		"typeSpecific": json.RawMessage(
			`{"restaurant":{"tableCount":12,"pureVeg":true}}`,
		),
	}

	update, err := buildPatch(patch)
	require.NoError(t, err)

	assert.Equal(t, "New Name", update["name"])
	assert.Equal(t, float64(60), update["capacity"])
	// Nested objects become dotted paths so omitted siblings survive.
	assert.Equal(t, "Mumbai", update["location.city"])
	assert.NotContains(t, update, "location")
	assert.Equal(t, float64(12), update["typeSpecific.restaurant.tableCount"])
	assert.Equal(t, true, update["typeSpecific.restaurant.pureVeg"])
}

func TestBuildPatchRejectsProtectedKeys(t *testing.T) {
	for _, key := range []string{"status", "owner", "availability", "businessid", "settings"} {
		_, err := buildPatch(map[string]json.RawMessage{key: json.RawMessage(`"x"`)})
		require.Error(t, err, "key %q", key)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	}
}

func TestBuildPatchRejectsMalformedNested(t *testing.T) {
	_, err := buildPatch(map[string]json.RawMessage{
		"contact": json.RawMessage(`"not an object"`),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestMergeSettings(t *testing.T) {
	// Empty stored settings come back as the full defaults.
	merged := mergeSettings(models.BusinessSettings{})
	defaults := models.DefaultBusinessSettings()
	assert.Equal(t, defaults, merged)

	// A stored block wins over its default; absent blocks stay defaulted.
	stored := models.BusinessSettings{
		Booking: &models.BookingPolicy{AutoConfirm: true, MaxAdvanceDays: 30},
	}
	merged = mergeSettings(stored)
	assert.True(t, merged.Booking.AutoConfirm)
	assert.Equal(t, 30, merged.Booking.MaxAdvanceDays)
	assert.Equal(t, defaults.Notifications, merged.Notifications)
	assert.Equal(t, defaults.Payment, merged.Payment)
}
