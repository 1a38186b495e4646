package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

// The reserved-id branches of the dispatch closures must enforce
// authentication themselves; the wildcard routes they share are registered
// under OptionalAuth for the public lookups.
func TestReservedBusinessIDsRequireAuth(t *testing.T) {
	router := httprouter.New()
	AddBusinessRoutes(router)

	for _, path := range []string{"/api/business/settings", "/api/business/mine"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "GET %s without token", path)
	}

	// A garbage bearer token must not get further than a missing one.
	req := httptest.NewRequest(http.MethodGet, "/api/business/settings", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookingLookupRequiresAuth(t *testing.T) {
	router := httprouter.New()
	AddBookingRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/bk123456789012", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/bookings/bk123456789012", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// The verify branch stays public: an empty payload is a validation error,
// never an auth one.
func TestVerifyBranchIsPublic(t *testing.T) {
	router := httprouter.New()
	AddBookingRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/verify", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
