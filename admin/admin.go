// Package admin holds the staff-facing user administration handlers. Route
// registration wraps these with RequireRoles(admin).
package admin

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListUsers handles GET /api/admin/users.
func ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()

	filter := bson.M{}
	if role := q.Get("role"); role != "" {
		filter["role"] = role
	}
	if status := q.Get("status"); status != "" {
		filter["status"] = status
	}

	pg := utils.ParsePagination(q)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	total, err := db.UserCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}

	opts := options.Find().
		SetSkip(pg.Skip()).
		SetLimit(pg.Limit).
		SetSort(bson.M{"created_at": -1})
	cur, err := db.UserCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}

	profiles := make([]models.UserProfileResponse, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].ProfileResponse())
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    profiles,
		"page":    pg.Page,
		"limit":   pg.Limit,
		"total":   total,
	})
}

// UpdateUserStatus handles PATCH /api/admin/users/:id/status. Accounts are
// never hard-deleted through this surface.
func UpdateUserStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	adminID, _ := middleware.RequestUser(r)
	targetID := ps.ByName("id")

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !models.ValidUserStatus(input.Status) {
		utils.SendError(w, http.StatusBadRequest, "Invalid status value")
		return
	}
	if targetID == adminID {
		utils.SendError(w, http.StatusBadRequest, "Cannot change your own status")
		return
	}

	res, err := db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": targetID},
		bson.M{"$set": bson.M{"status": input.Status, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	if res.MatchedCount == 0 {
		utils.SendError(w, http.StatusNotFound, "User not found")
		return
	}

	mq.Emit("user-status-updated", models.Event{
		EntityType: "user",
		EntityID:   targetID,
		UserID:     targetID,
		Message:    "Your account is now " + input.Status,
	})

	utils.SendResponse(w, http.StatusOK, nil, "User status updated")
}
