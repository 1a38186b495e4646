package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"grabgood/db"
	"grabgood/middleware"
	"grabgood/models"
	"grabgood/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// loadOrCreatePreferences lazily writes a fully-defaulted document on first
// access. Concurrent first reads can race; the upsert keeps that benign.
func loadOrCreatePreferences(ctx context.Context, userID string) (models.NotificationPreference, error) {
	var prefs models.NotificationPreference
	err := db.PreferencesCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&prefs)
	if err == nil {
		return prefs, nil
	}
	if err != mongo.ErrNoDocuments {
		return prefs, err
	}

	prefs = models.DefaultNotificationPreference(userID)
	prefs.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := db.PreferencesCollection.ReplaceOne(ctx, bson.M{"userid": userID}, prefs, opts); err != nil {
		return prefs, err
	}
	return prefs, nil
}

// GetPreferences handles GET /api/notifications/preferences.
func GetPreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := middleware.RequestUser(r)

	prefs, err := loadOrCreatePreferences(r.Context(), userID)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to load preferences")
		return
	}

	utils.SendResponse(w, http.StatusOK, prefs, "")
}

// preferencePatch carries only the parts of the document the client sent;
// nil channel blocks and flags are left untouched.
type preferencePatch struct {
	Email     *models.ChannelPrefs `json:"email"`
	Push      *models.ChannelPrefs `json:"push"`
	InApp     *models.ChannelPrefs `json:"inApp"`
	Digest    *bool                `json:"digest"`
	QuietFrom *string              `json:"quietFrom"`
	QuietTo   *string              `json:"quietTo"`
}

// applyPreferencePatch shallow-merges a patch over stored preferences.
func applyPreferencePatch(prefs models.NotificationPreference, patch preferencePatch) models.NotificationPreference {
	if patch.Email != nil {
		prefs.Email = *patch.Email
	}
	if patch.Push != nil {
		prefs.Push = *patch.Push
	}
	if patch.InApp != nil {
		prefs.InApp = *patch.InApp
	}
	if patch.Digest != nil {
		prefs.Digest = *patch.Digest
	}
	if patch.QuietFrom != nil {
		prefs.QuietFrom = *patch.QuietFrom
	}
	if patch.QuietTo != nil {
		prefs.QuietTo = *patch.QuietTo
	}
	return prefs
}

// UpdatePreferences handles PUT /api/notifications/preferences.
func UpdatePreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := middleware.RequestUser(r)

	var patch preferencePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	prefs, err := loadOrCreatePreferences(r.Context(), userID)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to load preferences")
		return
	}

	prefs = applyPreferencePatch(prefs, patch)
	prefs.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	if _, err := db.PreferencesCollection.ReplaceOne(context.TODO(), bson.M{"userid": userID}, prefs, opts); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to update preferences")
		return
	}

	utils.SendResponse(w, http.StatusOK, prefs, "Preferences updated")
}
