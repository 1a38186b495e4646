package notifications

import (
	"testing"

	"grabgood/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyPreferencePatch(t *testing.T) {
	prefs := models.DefaultNotificationPreference("u123")

	quiet := models.ChannelPrefs{Bookings: true}
	digest := true
	from := "22:00"

	patched := applyPreferencePatch(prefs, preferencePatch{
		Email:     &quiet,
		Digest:    &digest,
		QuietFrom: &from,
	})

	assert.Equal(t, quiet, patched.Email)
	assert.True(t, patched.Digest)
	assert.Equal(t, "22:00", patched.QuietFrom)
	// Untouched fields keep their stored values.
	assert.Equal(t, prefs.Push, patched.Push)
	assert.Equal(t, prefs.InApp, patched.InApp)
	assert.Equal(t, "u123", patched.UserID)
}

func TestApplyPreferencePatchEmpty(t *testing.T) {
	prefs := models.DefaultNotificationPreference("u123")
	patched := applyPreferencePatch(prefs, preferencePatch{})
	assert.Equal(t, prefs, patched)
}

func TestDefaultPreferenceWantsInApp(t *testing.T) {
	prefs := models.DefaultNotificationPreference("u123")

	// Everything is delivered in-app by default, promotions included.
	for _, cat := range []string{
		models.NotifCategoryBooking,
		models.NotifCategoryBusiness,
		models.NotifCategoryPayment,
		models.NotifCategoryPromotion,
		models.NotifCategorySystem,
	} {
		assert.True(t, prefs.WantsInApp(cat), "category %s", cat)
	}
	// Unknown categories are delivered rather than dropped.
	assert.True(t, prefs.WantsInApp("weird"))

	prefs.InApp.Promotions = false
	assert.False(t, prefs.WantsInApp(models.NotifCategoryPromotion))
	assert.True(t, prefs.WantsInApp(models.NotifCategoryBooking))
}
