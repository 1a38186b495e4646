package bookings

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
	"grabgood/ws"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateBooking handles POST /api/bookings. The slot-conflict check is
// read-then-write without a unique index, so two racing requests can both
// pass it.
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := middleware.RequestUser(r)

	var payload models.Booking
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	fields := map[string]string{}
	if payload.Business == "" {
		fields["business"] = "Business is required"
	}
	if !models.ValidBookingType(payload.BookingType) {
		fields["bookingType"] = "Booking type must be table, room, hall or order"
	}
	if _, err := time.Parse("2006-01-02", payload.Date); err != nil {
		fields["date"] = "Date must be YYYY-MM-DD"
	}
	if payload.StartTime == "" {
		fields["startTime"] = "Start time is required"
	}
	if len(fields) > 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Missing or invalid fields",
			"errors":  fields,
		})
		return
	}

	var biz models.Business
	err := db.BusinessCollection.FindOne(r.Context(), bson.M{"businessid": payload.Business}).Decode(&biz)
	if err != nil {
		utils.SendError(w, http.StatusNotFound, "Business not found")
		return
	}
	if biz.Status != models.BusinessStatusActive {
		utils.SendError(w, http.StatusBadRequest, "Business is not accepting bookings")
		return
	}

	// Slot conflict: an existing pending or confirmed booking for the same
	// business, date and start time blocks the slot.
	err = db.BookingCollection.FindOne(r.Context(), bson.M{
		"business":   payload.Business,
		"date":       payload.Date,
		"start_time": payload.StartTime,
		"status":     bson.M{"$in": []string{models.BookingStatusPending, models.BookingStatusConfirmed}},
	}).Err()
	if err == nil {
		utils.SendError(w, http.StatusBadRequest, "Slot is no longer available")
		return
	} else if err != mongo.ErrNoDocuments {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}

	payload.BookingID = "bk" + utils.GenerateRandomDigitString(12)
	payload.User = userID
	payload.Status = models.BookingStatusPending
	payload.Payment.Status = models.PaymentStatusPending
	payload.ReceiptCode = utils.GenerateRandomString(16)
	payload.Cancellation = nil
	payload.CreatedAt = time.Now()
	payload.UpdatedAt = time.Now()

	if _, err := db.BookingCollection.InsertOne(context.TODO(), payload); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	mq.Emit("booking-created", models.Event{
		EntityType: "booking",
		EntityID:   payload.BookingID,
		UserID:     userID,
		OwnerID:    biz.Owner,
		Message:    "New " + payload.BookingType + " booking for " + payload.Date,
	})
	ws.BroadcastUpdate(payload.Business, "booking-created")

	utils.SendResponse(w, http.StatusCreated, payload, "Booking created")
}

// GetBooking handles GET /api/bookings/:id.
func GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, role := middleware.RequestUser(r)

	var booking models.Booking
	err := db.BookingCollection.FindOne(r.Context(), bson.M{"bookingid": ps.ByName("id")}).Decode(&booking)
	if err != nil {
		utils.SendError(w, http.StatusNotFound, "Booking not found")
		return
	}

	if booking.User != userID && role != models.RoleAdmin && !ownsBusiness(r.Context(), userID, booking.Business) {
		utils.SendError(w, http.StatusForbidden, "Not your booking")
		return
	}

	utils.SendResponse(w, http.StatusOK, booking, "")
}

func ownsBusiness(ctx context.Context, userID, businessID string) bool {
	err := db.BusinessCollection.FindOne(ctx, bson.M{
		"businessid": businessID,
		"owner":      userID,
	}).Err()
	return err == nil
}

// ListBookings handles GET /api/bookings. Scope is derived from the actor:
// plain users see their own bookings, business owners their business's,
// admins everything (with optional filters).
func ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, role := middleware.RequestUser(r)
	q := r.URL.Query()

	filter := bson.M{}
	switch role {
	case models.RoleAdmin:
		if b := q.Get("business"); b != "" {
			filter["business"] = b
		}
	case models.RolePartner, models.RoleBusiness:
		var biz models.Business
		err := db.BusinessCollection.FindOne(r.Context(), bson.M{"owner": userID}).Decode(&biz)
		if err != nil {
			utils.SendError(w, http.StatusNotFound, "No business registered yet")
			return
		}
		filter["business"] = biz.BusinessID
	default:
		filter["user"] = userID
	}

	if s := q.Get("status"); s != "" {
		filter["status"] = s
	}
	dateRange := bson.M{}
	if from := q.Get("from"); from != "" {
		dateRange["$gte"] = from
	}
	if to := q.Get("to"); to != "" {
		dateRange["$lte"] = to
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}

	pg := utils.ParsePagination(q)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	total, err := db.BookingCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}

	opts := options.Find().
		SetSkip(pg.Skip()).
		SetLimit(pg.Limit).
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start_time", Value: -1}})
	cur, err := db.BookingCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(ctx)

	list := []models.Booking{}
	if err := cur.All(ctx, &list); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    list,
		"page":    pg.Page,
		"limit":   pg.Limit,
		"total":   total,
	})
}

// UpdateBookingStatus handles PATCH /api/bookings/:id/status. Only the
// business owner or an admin may move a booking through its lifecycle.
func UpdateBookingStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, role := middleware.RequestUser(r)
	bookingID := ps.ByName("id")

	var input struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !models.ValidBookingStatus(input.Status) {
		utils.SendError(w, http.StatusBadRequest, "Invalid status value")
		return
	}

	var booking models.Booking
	if err := db.BookingCollection.FindOne(r.Context(), bson.M{"bookingid": bookingID}).Decode(&booking); err != nil {
		utils.SendError(w, http.StatusNotFound, "Booking not found")
		return
	}

	if role != models.RoleAdmin && !ownsBusiness(r.Context(), userID, booking.Business) {
		utils.SendError(w, http.StatusForbidden, "Only the business owner may update booking status")
		return
	}

	if !canTransition(booking.Status, input.Status) {
		utils.SendError(w, http.StatusBadRequest, "Cannot move booking from "+booking.Status+" to "+input.Status)
		return
	}

	now := time.Now()
	update := bson.M{
		"status":            input.Status,
		"status_updated_at": now,
		"status_updated_by": userID,
		"updated_at":        now,
	}
	if input.Status == models.BookingStatusCancelled {
		update["cancellation"] = models.Cancellation{
			Reason:      input.Reason,
			CancelledBy: userID,
			CancelledAt: now,
		}
	}

	_, err := db.BookingCollection.UpdateOne(
		context.TODO(),
		bson.M{"bookingid": bookingID},
		bson.M{"$set": update},
	)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	mq.Emit("booking-status-updated", models.Event{
		EntityType: "booking",
		EntityID:   bookingID,
		UserID:     booking.User,
		Message:    "Your booking for " + booking.Date + " is now " + input.Status,
	})
	ws.BroadcastUpdate(booking.Business, "booking-status-updated")

	if err := db.BookingCollection.FindOne(context.TODO(), bson.M{"bookingid": bookingID}).Decode(&booking); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to load booking")
		return
	}
	utils.SendResponse(w, http.StatusOK, booking, "Booking updated")
}

// DeleteBooking handles DELETE /api/bookings/:id. Non-admin actors need at
// least 24 hours of lead time before the scheduled start.
func DeleteBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, role := middleware.RequestUser(r)
	bookingID := ps.ByName("id")

	var booking models.Booking
	if err := db.BookingCollection.FindOne(r.Context(), bson.M{"bookingid": bookingID}).Decode(&booking); err != nil {
		utils.SendError(w, http.StatusNotFound, "Booking not found")
		return
	}

	isAdmin := role == models.RoleAdmin
	if booking.User != userID && !isAdmin {
		utils.SendError(w, http.StatusForbidden, "Not your booking")
		return
	}

	if !cancellable(booking.Date, booking.StartTime, time.Now(), isAdmin) {
		utils.SendError(w, http.StatusBadRequest, "Bookings can only be cancelled at least 24 hours in advance")
		return
	}

	if _, err := db.BookingCollection.DeleteOne(context.TODO(), bson.M{"bookingid": bookingID}); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to delete booking")
		return
	}

	mq.Emit("booking-cancelled", models.Event{
		EntityType: "booking",
		EntityID:   bookingID,
		UserID:     booking.User,
		Message:    "Booking for " + booking.Date + " was cancelled",
	})
	ws.BroadcastUpdate(booking.Business, "booking-cancelled")

	utils.SendResponse(w, http.StatusOK, nil, "Booking deleted")
}
