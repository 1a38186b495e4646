package utils

import (
	"encoding/json"
	"log"
	rndm "math/rand"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"grabgood/apperr"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ")
var digitRunes = []rune("0123456789")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// GenerateRandomDigitString creates a random numeric string of length n.
func GenerateRandomDigitString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = digitRunes[rndm.Intn(len(digitRunes))]
	}
	return string(b)
}

// --- HTTP Response Helpers ---

func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// SendResponse writes the success envelope: {success:true, message, ...data}.
func SendResponse(w http.ResponseWriter, status int, data any, message string) {
	resp := map[string]any{
		"success": true,
		"message": message,
		"data":    data,
	}
	RespondWithJSON(w, status, resp)
}

// SendError writes the failure envelope with an explicit status code.
func SendError(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

// SendAppError maps a taxonomy error onto the failure envelope. Unexpected
// errors get a generic message unless APP_ENV=development.
func SendAppError(w http.ResponseWriter, err error) {
	status := apperr.StatusCode(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		if os.Getenv("APP_ENV") != "development" {
			msg = "Something went wrong"
		}
	}
	resp := map[string]any{
		"success": false,
		"message": msg,
	}
	if fields := apperr.FieldsOf(err); len(fields) > 0 {
		resp["errors"] = fields
	}
	RespondWithJSON(w, status, resp)
}

// --- Pagination ---

type Pagination struct {
	Page  int64
	Limit int64
}

func (p Pagination) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// ParsePagination reads page/limit query params with sane bounds.
func ParsePagination(q url.Values) Pagination {
	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.ParseInt(q.Get("limit"), 10, 64)
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return Pagination{Page: page, Limit: limit}
}
