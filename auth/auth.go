package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"grabgood/db"
	"grabgood/middleware"
	"grabgood/models"
	"grabgood/mq"
	"grabgood/rdx"
	"grabgood/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Register handles POST /api/auth/register.
func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	fields := map[string]string{}
	if input.Name == "" {
		fields["name"] = "Name is required"
	}
	if input.Email == "" {
		fields["email"] = "Email is required"
	}
	if len(input.Password) < 6 {
		fields["password"] = "Password must be at least 6 characters"
	}
	if len(fields) > 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Missing required fields",
			"errors":  fields,
		})
		return
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	if role == models.RoleAdmin || !models.ValidRole(role) {
		utils.SendError(w, http.StatusBadRequest, "Invalid role")
		return
	}

	// Unique email check
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"email": input.Email}).Err()
	if err == nil {
		utils.SendError(w, http.StatusBadRequest, "Email already registered")
		return
	} else if err != mongo.ErrNoDocuments {
		utils.SendError(w, http.StatusInternalServerError, "Database error")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		log.Printf("Failed to hash password for %s: %v", input.Email, err)
		utils.SendError(w, http.StatusInternalServerError, "Could not process password")
		return
	}

	user := models.User{
		UserID:       "u" + utils.GenerateRandomString(10),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Role:         role,
		Status:       models.UserStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if _, err := db.UserCollection.InsertOne(context.TODO(), user); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	if err := rdx.RdxSet("users:"+user.UserID, user.Email); err != nil {
		log.Printf("Failed to cache user email: %v", err)
	}

	utils.SendResponse(w, http.StatusCreated, user.ProfileResponse(), "Registration successful")
}

// Login handles POST /api/auth/login. Wrong email, wrong password and
// non-active accounts all return the same 401 message.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || input.Password == "" {
		utils.SendError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"email": input.Email}).Decode(&user)
	if err != nil {
		utils.SendError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		utils.SendError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if user.Status != models.UserStatusActive {
		utils.SendError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	tokenString, err := middleware.IssueToken(user.UserID, user.Role)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	if err := rdx.StoreSessionToken(user.UserID, tokenString); err != nil {
		log.Printf("Session cache failed for %s: %v", user.UserID, err)
	}

	_, err = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": user.UserID},
		bson.M{"$set": bson.M{"last_login": time.Now()}},
	)
	if err != nil {
		log.Printf("Failed to record last login for %s: %v", user.UserID, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    tokenString,
		Path:     "/",
		Expires:  time.Now().Add(middleware.TokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"token":   tokenString,
		"user":    user.ProfileResponse(),
	})
}

// Logout handles POST /api/auth/logout.
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := middleware.RequestUser(r)
	if err := rdx.DropSessionToken(userID); err != nil {
		log.Printf("Failed to drop session for %s: %v", userID, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	mq.Emit("user-loggedout", models.Event{EntityType: "user", EntityID: userID})

	utils.SendResponse(w, http.StatusOK, nil, "Logged out successfully")
}

// RefreshToken handles POST /api/auth/refresh. Reissues a token for a still
// valid session; the user is reloaded so status or role changes take effect.
func RefreshToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := middleware.RequestUser(r)

	var user models.User
	if err := db.UserCollection.FindOne(context.TODO(), bson.M{"userid": userID}).Decode(&user); err != nil {
		utils.SendError(w, http.StatusUnauthorized, "User not found")
		return
	}
	if user.Status != models.UserStatusActive {
		utils.SendError(w, http.StatusUnauthorized, "Account is not active")
		return
	}

	tokenString, err := middleware.IssueToken(user.UserID, user.Role)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to refresh token")
		return
	}

	if err := rdx.StoreSessionToken(user.UserID, tokenString); err != nil {
		log.Printf("Session cache failed for %s: %v", user.UserID, err)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Token refreshed",
		"token":   tokenString,
	})
}
