// Package availability maintains the per-venue date grid stored on the
// business document. A missing entry at any level means "available".
package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"grabgood/apperr"
	"grabgood/db"
	"grabgood/middleware"
	"grabgood/models"
	"grabgood/utils"
	"grabgood/ws"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const dateLayout = "2006-01-02"

const (
	ShiftMorning = "morning"
	ShiftEvening = "evening"
	ShiftFull    = "full"
)

func validShift(s string) bool {
	switch s {
	case ShiftMorning, ShiftEvening, ShiftFull, "":
		return true
	}
	return false
}

// expandDateRange lists every calendar day in [start, end] inclusive.
func expandDateRange(startDate, endDate string) ([]string, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, apperr.New(apperr.ErrValidation, "invalid start date")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, apperr.New(apperr.ErrValidation, "invalid end date")
	}
	if start.After(end) {
		return nil, apperr.New(apperr.ErrValidation, "start date is after end date")
	}

	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(dateLayout))
	}
	return days, nil
}

// rangeUpdate builds one $set key per day. A full (or empty) shift
// overwrites the whole per-resource entry; a named shift touches only that
// sub-slot.
func rangeUpdate(days []string, resourceID, shift, status string) bson.M {
	update := bson.M{}
	for _, day := range days {
		base := fmt.Sprintf("availability.%s.%s", day, resourceID)
		switch shift {
		case ShiftMorning, ShiftEvening:
			update[base+"."+shift] = status
		default:
			update[base] = models.ShiftStatus{Morning: status, Evening: status}
		}
	}
	return update
}

// shiftValue reads one shift out of a stored entry, defaulting to available.
func shiftValue(entry models.ShiftStatus, shift string) string {
	var v string
	switch shift {
	case ShiftMorning:
		v = entry.Morning
	case ShiftEvening:
		v = entry.Evening
	default:
		// Full-day view: both shifts must agree, otherwise it's limited.
		m, e := entry.Morning, entry.Evening
		if m == "" {
			m = models.SlotAvailable
		}
		if e == "" {
			e = models.SlotAvailable
		}
		if m == e {
			return m
		}
		return models.SlotLimited
	}
	if v == "" {
		return models.SlotAvailable
	}
	return v
}

// UpdateAvailability handles PUT /api/business/:id/availability. Writes the
// given status into every day of the inclusive range for one resource.
func UpdateAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, role := middleware.RequestUser(r)
	businessID := ps.ByName("id")

	var input struct {
		ResourceID string `json:"resourceId"`
		StartDate  string `json:"startDate"`
		EndDate    string `json:"endDate"`
		Shift      string `json:"shift"`
		Status     string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.ResourceID == "" {
		utils.SendError(w, http.StatusBadRequest, "Resource id is required")
		return
	}
	if !models.ValidSlotStatus(input.Status) {
		utils.SendError(w, http.StatusBadRequest, "Invalid availability status")
		return
	}
	if !validShift(input.Shift) {
		utils.SendError(w, http.StatusBadRequest, "Shift must be morning, evening or full")
		return
	}

	var biz models.Business
	if err := db.BusinessCollection.FindOne(r.Context(), bson.M{"businessid": businessID}).Decode(&biz); err != nil {
		utils.SendError(w, http.StatusNotFound, "Business not found")
		return
	}
	if biz.Owner != userID && role != models.RoleAdmin {
		utils.SendError(w, http.StatusForbidden, "You do not own this business")
		return
	}

	days, err := expandDateRange(input.StartDate, input.EndDate)
	if err != nil {
		utils.SendAppError(w, err)
		return
	}

	update := rangeUpdate(days, input.ResourceID, input.Shift, input.Status)
	update["updated_at"] = time.Now()

	_, err = db.BusinessCollection.UpdateOne(
		context.TODO(),
		bson.M{"businessid": businessID},
		bson.M{"$set": update},
	)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to update availability")
		return
	}

	ws.BroadcastUpdate(businessID, "availability-updated")

	utils.SendResponse(w, http.StatusOK, map[string]any{
		"resourceId": input.ResourceID,
		"days":       len(days),
		"status":     input.Status,
	}, "Availability updated")
}

// GetAvailability handles GET /api/business/:id/availability with query
// params resource, date (or from/to for a grid view) and optional shift.
func GetAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	businessID := ps.ByName("id")
	q := r.URL.Query()
	resourceID := q.Get("resource")
	if resourceID == "" {
		utils.SendError(w, http.StatusBadRequest, "Resource id is required")
		return
	}
	shift := q.Get("shift")
	if !validShift(shift) {
		utils.SendError(w, http.StatusBadRequest, "Shift must be morning, evening or full")
		return
	}

	var biz models.Business
	if err := db.BusinessCollection.FindOne(r.Context(), bson.M{"businessid": businessID}).Decode(&biz); err != nil {
		utils.SendError(w, http.StatusNotFound, "Business not found")
		return
	}

	// Single-day lookup
	if date := q.Get("date"); date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			utils.SendError(w, http.StatusBadRequest, "Date must be YYYY-MM-DD")
			return
		}
		utils.SendResponse(w, http.StatusOK, map[string]any{
			"date":     date,
			"resource": resourceID,
			"status":   lookup(biz.Availability, date, resourceID, shift),
		}, "")
		return
	}

	// Grid view over a range
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		utils.SendError(w, http.StatusBadRequest, "Provide date or from/to")
		return
	}
	days, err := expandDateRange(from, to)
	if err != nil {
		utils.SendAppError(w, err)
		return
	}

	grid := map[string]string{}
	for _, day := range days {
		grid[day] = lookup(biz.Availability, day, resourceID, shift)
	}
	utils.SendResponse(w, http.StatusOK, map[string]any{
		"resource": resourceID,
		"grid":     grid,
	}, "")
}

func lookup(avail models.Availability, date, resourceID, shift string) string {
	if avail == nil {
		return models.SlotAvailable
	}
	dayMap, ok := avail[date]
	if !ok {
		return models.SlotAvailable
	}
	entry, ok := dayMap[resourceID]
	if !ok {
		return models.SlotAvailable
	}
	return shiftValue(entry, shift)
}
