package business

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"grabgood/db"
	"grabgood/middleware"
	"grabgood/models"
	"grabgood/mq"
	"grabgood/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mergeSettings lays stored partial settings over the defaults, so documents
// written before a settings field existed still come back complete.
func mergeSettings(stored models.BusinessSettings) models.BusinessSettings {
	merged := models.DefaultBusinessSettings()
	if stored.Booking != nil {
		merged.Booking = stored.Booking
	}
	if stored.Notifications != nil {
		merged.Notifications = stored.Notifications
	}
	if stored.Payment != nil {
		merged.Payment = stored.Payment
	}
	return merged
}

// GetSettings handles GET /api/business/settings. An owner with no business
// yet gets a null data payload, not an error.
func GetSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := middleware.RequestUser(r)

	var biz models.Business
	err := db.BusinessCollection.FindOne(r.Context(), bson.M{"owner": userID}).Decode(&biz)
	if err == mongo.ErrNoDocuments {
		utils.SendResponse(w, http.StatusOK, nil, "No business registered yet")
		return
	} else if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.SendResponse(w, http.StatusOK, mergeSettings(biz.Settings), "")
}

// UpdateSettings handles PUT /api/business/settings. Only the policy blocks
// present in the payload are replaced.
func UpdateSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := middleware.RequestUser(r)

	var input models.BusinessSettings
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var biz models.Business
	err := db.BusinessCollection.FindOne(r.Context(), bson.M{"owner": userID}).Decode(&biz)
	if err == mongo.ErrNoDocuments {
		utils.SendError(w, http.StatusNotFound, "No business registered yet")
		return
	} else if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}

	update := bson.M{"updated_at": time.Now()}
	if input.Booking != nil {
		update["settings.booking"] = input.Booking
	}
	if input.Notifications != nil {
		update["settings.notifications"] = input.Notifications
	}
	if input.Payment != nil {
		update["settings.payment"] = input.Payment
	}
	if len(update) == 1 {
		utils.SendError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	_, err = db.BusinessCollection.UpdateOne(
		context.TODO(),
		bson.M{"businessid": biz.BusinessID},
		bson.M{"$set": update},
	)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	mq.Emit("settings-updated", models.Event{
		EntityType: "business",
		EntityID:   biz.BusinessID,
		OwnerID:    userID,
		Message:    "Business settings were updated",
	})

	if err := db.BusinessCollection.FindOne(context.TODO(), bson.M{"businessid": biz.BusinessID}).Decode(&biz); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	utils.SendResponse(w, http.StatusOK, mergeSettings(biz.Settings), "Settings updated")
}
