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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateBusiness handles POST /api/business. A non-admin owner may hold only
// one business that is not suspended.
func CreateBusiness(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, role := middleware.RequestUser(r)

	var payload models.Business
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if fields := validateCreate(&payload); len(fields) > 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Missing or invalid fields",
			"errors":  fields,
		})
		return
	}

	if role != models.RoleAdmin {
		err := db.BusinessCollection.FindOne(context.TODO(), bson.M{
			"owner":  userID,
			"status": bson.M{"$ne": models.BusinessStatusSuspended},
		}).Err()
		if err == nil {
			utils.SendError(w, http.StatusBadRequest, "You already have a registered business")
			return
		} else if err != mongo.ErrNoDocuments {
			utils.SendError(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	payload.BusinessID = "biz" + utils.GenerateRandomString(10)
	payload.Owner = userID
	payload.Status = models.BusinessStatusPending
	payload.Settings = models.DefaultBusinessSettings()
	payload.Availability = nil
	payload.CreatedAt = time.Now()
	payload.UpdatedAt = time.Now()

	if _, err := db.BusinessCollection.InsertOne(context.TODO(), payload); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to create business")
		return
	}

	// Link the profile on the owner record
	_, _ = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"business_profile": payload.BusinessID}},
	)

	mq.Emit("business-created", models.Event{
		EntityType: "business",
		EntityID:   payload.BusinessID,
		OwnerID:    userID,
		Message:    payload.Name + " was submitted for review",
	})

	utils.SendResponse(w, http.StatusCreated, payload, "Business created")
}

// GetBusiness handles GET /api/business/:id.
func GetBusiness(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var biz models.Business
	err := db.BusinessCollection.FindOne(r.Context(), bson.M{"businessid": ps.ByName("id")}).Decode(&biz)
	if err != nil {
		utils.SendError(w, http.StatusNotFound, "Business not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, biz, "")
}

// GetMyBusiness handles GET /api/business/mine for the partner portal.
func GetMyBusiness(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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
	utils.SendResponse(w, http.StatusOK, biz, "")
}

// ListBusinesses handles GET /api/business. Public browse: only active
// listings unless an admin asks for a specific status.
func ListBusinesses(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	_, role := middleware.RequestUser(r)

	filter := bson.M{}
	if t := q.Get("type"); t != "" {
		filter["type"] = t
	}
	if city := q.Get("city"); city != "" {
		filter["location.city"] = city
	}
	if role == models.RoleAdmin {
		if s := q.Get("status"); s != "" {
			filter["status"] = s
		}
	} else {
		filter["status"] = models.BusinessStatusActive
	}

	pg := utils.ParsePagination(q)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	total, err := db.BusinessCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}

	opts := options.Find().
		SetSkip(pg.Skip()).
		SetLimit(pg.Limit).
		SetSort(bson.M{"created_at": -1})
	cur, err := db.BusinessCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(ctx)

	businesses := []models.Business{}
	if err := cur.All(ctx, &businesses); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    businesses,
		"page":    pg.Page,
		"limit":   pg.Limit,
		"total":   total,
	})
}

// UpdateBusiness handles PUT /api/business/:id. Partial update: only the
// top-level keys present in the patch are replaced; nested typeSpecific
// fields not mentioned survive via dotted $set keys.
func UpdateBusiness(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, role := middleware.RequestUser(r)
	businessID := ps.ByName("id")

	var biz models.Business
	err := db.BusinessCollection.FindOne(r.Context(), bson.M{"businessid": businessID}).Decode(&biz)
	if err != nil {
		utils.SendError(w, http.StatusNotFound, "Business not found")
		return
	}

	if biz.Owner != userID && role != models.RoleAdmin {
		utils.SendError(w, http.StatusForbidden, "You do not own this business")
		return
	}

	var patch map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	update, err := buildPatch(patch)
	if err != nil {
		utils.SendAppError(w, err)
		return
	}
	if len(update) == 0 {
		utils.SendError(w, http.StatusBadRequest, "Nothing to update")
		return
	}
	update["updated_at"] = time.Now()
	update["updated_by"] = userID

	_, err = db.BusinessCollection.UpdateOne(
		context.TODO(),
		bson.M{"businessid": businessID},
		bson.M{"$set": update},
	)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to update business")
		return
	}

	if err := db.BusinessCollection.FindOne(context.TODO(), bson.M{"businessid": businessID}).Decode(&biz); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to load business")
		return
	}

	utils.SendResponse(w, http.StatusOK, biz, "Business updated")
}

// UpdateStatus handles PATCH /api/business/:id/status. Admin only (enforced
// in routes).
func UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, _ := middleware.RequestUser(r)
	businessID := ps.ByName("id")

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !models.ValidBusinessStatus(input.Status) {
		utils.SendError(w, http.StatusBadRequest, "Invalid status value")
		return
	}

	var biz models.Business
	if err := db.BusinessCollection.FindOne(r.Context(), bson.M{"businessid": businessID}).Decode(&biz); err != nil {
		utils.SendError(w, http.StatusNotFound, "Business not found")
		return
	}

	_, err := db.BusinessCollection.UpdateOne(
		context.TODO(),
		bson.M{"businessid": businessID},
		bson.M{"$set": bson.M{
			"status":     input.Status,
			"updated_at": time.Now(),
			"updated_by": userID,
		}},
	)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	mq.Emit("business-status-updated", models.Event{
		EntityType: "business",
		EntityID:   businessID,
		OwnerID:    biz.Owner,
		Message:    biz.Name + " is now " + input.Status,
	})

	biz.Status = input.Status
	utils.SendResponse(w, http.StatusOK, biz, "Status updated")
}

// DeleteBusiness handles DELETE /api/business/:id. Owner-initiated removal;
// the admin flow retires via status instead.
func DeleteBusiness(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, role := middleware.RequestUser(r)
	businessID := ps.ByName("id")

	var biz models.Business
	if err := db.BusinessCollection.FindOne(r.Context(), bson.M{"businessid": businessID}).Decode(&biz); err != nil {
		utils.SendError(w, http.StatusNotFound, "Business not found")
		return
	}
	if biz.Owner != userID && role != models.RoleAdmin {
		utils.SendError(w, http.StatusForbidden, "You do not own this business")
		return
	}

	if _, err := db.BusinessCollection.DeleteOne(context.TODO(), bson.M{"businessid": businessID}); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to delete business")
		return
	}

	_, _ = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": biz.Owner},
		bson.M{"$unset": bson.M{"business_profile": ""}},
	)

	utils.SendResponse(w, http.StatusOK, nil, "Business deleted")
}
