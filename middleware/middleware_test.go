package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"grabgood/globals"
	"grabgood/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidateToken(t *testing.T) {
	token, err := IssueToken("u123", models.RoleBusiness)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "u123", claims.UserID)
	assert.Equal(t, models.RoleBusiness, claims.Role)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("Bearer not.a.token")
	assert.Error(t, err)

	_, err = ValidateJWT("")
	assert.Error(t, err)
}

func TestValidateJWTRejectsTamperedToken(t *testing.T) {
	token, err := IssueToken("u123", models.RoleUser)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateJWT("Bearer " + tampered)
	assert.Error(t, err)
}

func TestRequireRolesForbidsOtherRoles(t *testing.T) {
	var called bool
	handler := RequireRoles(models.RoleAdmin)(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
	})

	ctx := context.WithValue(context.Background(), globals.RoleKey, models.RoleUser)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	var called bool
	handler := RequireRoles(models.RoleAdmin)(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	ctx := context.WithValue(context.Background(), globals.RoleKey, models.RoleAdmin)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
