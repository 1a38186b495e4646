package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(New(ErrValidation, "bad input")))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(New(ErrUnauthorized, "no token")))
	assert.Equal(t, http.StatusForbidden, StatusCode(New(ErrForbidden, "not yours")))
	assert.Equal(t, http.StatusNotFound, StatusCode(New(ErrNotFound, "gone")))
	// Conflicts surface as validation failures to the client.
	assert.Equal(t, http.StatusBadRequest, StatusCode(New(ErrConflict, "slot taken")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}

func TestUnwrapThroughWrapping(t *testing.T) {
	err := Newf(ErrValidation, "field %q cannot be updated", "owner")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, `field "owner" cannot be updated`, err.Error())

	wrapped := fmt.Errorf("update business: %w", err)
	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Equal(t, http.StatusBadRequest, StatusCode(wrapped))
}

func TestFieldsOf(t *testing.T) {
	fields := map[string]string{"name": "Name is required"}
	err := WithFields(ErrValidation, "Invalid input", fields)
	assert.Equal(t, fields, FieldsOf(err))

	wrapped := fmt.Errorf("register: %w", err)
	assert.Equal(t, fields, FieldsOf(wrapped))

	assert.Nil(t, FieldsOf(errors.New("plain")))
}
