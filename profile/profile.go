package profile

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
	"golang.org/x/crypto/bcrypt"
)

// GetProfile handles GET /api/auth/me.
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := middleware.RequestUser(r)

	var user models.User
	if err := db.UserCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&user); err != nil {
		utils.SendError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.SendResponse(w, http.StatusOK, user.ProfileResponse(), "")
}

// UpdateProfile handles PUT /api/auth/me. Only name and phone are editable
// here; email and role changes go through dedicated flows.
func UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := middleware.RequestUser(r)

	var input struct {
		Name  *string `json:"name"`
		Phone *string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	update := bson.M{"updated_at": time.Now()}
	if input.Name != nil {
		if *input.Name == "" {
			utils.SendError(w, http.StatusBadRequest, "Name cannot be empty")
			return
		}
		update["name"] = *input.Name
	}
	if input.Phone != nil {
		update["phone"] = *input.Phone
	}

	_, err := db.UserCollection.UpdateOne(context.TODO(), bson.M{"userid": userID}, bson.M{"$set": update})
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(context.TODO(), bson.M{"userid": userID}).Decode(&user); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	utils.SendResponse(w, http.StatusOK, user.ProfileResponse(), "Profile updated")
}

// ChangePassword handles PUT /api/auth/password.
func ChangePassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := middleware.RequestUser(r)

	var input struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if len(input.NewPassword) < 6 {
		utils.SendError(w, http.StatusBadRequest, "New password must be at least 6 characters")
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(context.TODO(), bson.M{"userid": userID}).Decode(&user); err != nil {
		utils.SendError(w, http.StatusNotFound, "User not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		utils.SendError(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), 10)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not process password")
		return
	}

	_, err = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"password_hash": string(hashed), "updated_at": time.Now()}},
	)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to change password")
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Password changed")
}
