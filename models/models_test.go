package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	assert.True(t, ValidBusinessType("restaurant"))
	assert.True(t, ValidBusinessType("sweetshop"))
	assert.False(t, ValidBusinessType("foodtruck"))
	assert.False(t, ValidBusinessType(""))

	assert.True(t, ValidBusinessStatus("pending"))
	assert.True(t, ValidBusinessStatus("suspended"))
	assert.False(t, ValidBusinessStatus("deleted"))

	assert.True(t, ValidSlotStatus("available"))
	assert.True(t, ValidSlotStatus("maintenance"))
	assert.False(t, ValidSlotStatus("closed"))

	assert.True(t, ValidBookingType("table"))
	assert.True(t, ValidBookingType("order"))
	assert.False(t, ValidBookingType("seat"))

	assert.True(t, ValidBookingStatus("confirmed"))
	assert.False(t, ValidBookingStatus("done"))

	assert.True(t, ValidUserStatus("active"))
	assert.False(t, ValidUserStatus("banned"))

	assert.True(t, ValidRole("partner"))
	assert.True(t, ValidRole("admin"))
	assert.False(t, ValidRole("superuser"))
}

func TestProfileResponseOmitsSecrets(t *testing.T) {
	u := &User{
		UserID:       "u123",
		Email:        "owner@example.com",
		Name:         "Asha",
		Phone:        "9876543210",
		Role:         RoleBusiness,
		Status:       UserStatusActive,
		PasswordHash: "$2a$10$secret",
		RefreshToken: "rt-secret",
		CreatedAt:    time.Now(),
	}

	resp := u.ProfileResponse()
	assert.Equal(t, "u123", resp.UserID)
	assert.Equal(t, "owner@example.com", resp.Email)
	assert.Equal(t, RoleBusiness, resp.Role)
}

func TestDefaultBusinessSettings(t *testing.T) {
	s := DefaultBusinessSettings()
	assert.NotNil(t, s.Booking)
	assert.NotNil(t, s.Notifications)
	assert.NotNil(t, s.Payment)
	assert.False(t, s.Booking.AutoConfirm)
	assert.Equal(t, 90, s.Booking.MaxAdvanceDays)
	assert.True(t, s.Booking.AllowCancellation)
	assert.Equal(t, 20, s.Payment.AdvancePercent)
}
