package notifications

import (
	"context"
	"net/http"
	"time"

	"grabgood/db"
	"grabgood/middleware"
	"grabgood/models"
	"grabgood/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListNotifications handles GET /api/notifications.
func ListNotifications(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := middleware.RequestUser(r)
	q := r.URL.Query()

	filter := bson.M{"userid": userID}
	if q.Get("unread") == "true" {
		filter["read"] = false
	}

	pg := utils.ParsePagination(q)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	total, err := db.NotificationCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}
	unread, err := db.NotificationCollection.CountDocuments(ctx, bson.M{"userid": userID, "read": false})
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}

	opts := options.Find().
		SetSkip(pg.Skip()).
		SetLimit(pg.Limit).
		SetSort(bson.M{"created_at": -1})
	cur, err := db.NotificationCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(ctx)

	list := []models.Notification{}
	if err := cur.All(ctx, &list); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    list,
		"unread":  unread,
		"page":    pg.Page,
		"limit":   pg.Limit,
		"total":   total,
	})
}

// MarkRead handles PATCH /api/notifications/:id/read.
func MarkRead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, _ := middleware.RequestUser(r)

	res, err := db.NotificationCollection.UpdateOne(
		context.TODO(),
		bson.M{"notificationid": ps.ByName("id"), "userid": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to update notification")
		return
	}
	if res.MatchedCount == 0 {
		utils.SendError(w, http.StatusNotFound, "Notification not found")
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Notification marked read")
}

// MarkAllRead handles POST /api/notifications/read-all.
func MarkAllRead(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := middleware.RequestUser(r)

	res, err := db.NotificationCollection.UpdateMany(
		context.TODO(),
		bson.M{"userid": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to update notifications")
		return
	}

	utils.SendResponse(w, http.StatusOK, map[string]any{"updated": res.ModifiedCount}, "All notifications marked read")
}
