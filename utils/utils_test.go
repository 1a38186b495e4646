package utils

import (
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	p := ParsePagination(url.Values{})
	assert.Equal(t, int64(1), p.Page)
	assert.Equal(t, int64(10), p.Limit)
	assert.Equal(t, int64(0), p.Skip())

	p = ParsePagination(url.Values{"page": {"3"}, "limit": {"25"}})
	assert.Equal(t, int64(3), p.Page)
	assert.Equal(t, int64(25), p.Limit)
	assert.Equal(t, int64(50), p.Skip())

	// Out-of-range values are clamped, not rejected.
	p = ParsePagination(url.Values{"page": {"-5"}, "limit": {"9999"}})
	assert.Equal(t, int64(1), p.Page)
	assert.Equal(t, int64(100), p.Limit)

	p = ParsePagination(url.Values{"page": {"abc"}, "limit": {"abc"}})
	assert.Equal(t, int64(1), p.Page)
	assert.Equal(t, int64(10), p.Limit)
}

func TestSendResponseEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	SendResponse(rec, 200, map[string]string{"id": "b1"}, "Created")

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Created", body["message"])
	assert.Equal(t, map[string]any{"id": "b1"}, body["data"])
}

func TestSendErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	SendError(rec, 404, "Business not found")

	assert.Equal(t, 404, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Business not found", body["message"])
}

func TestGenerateRandomStrings(t *testing.T) {
	a := GenerateRandomString(10)
	b := GenerateRandomString(10)
	assert.Len(t, a, 10)
	assert.NotEqual(t, a, b)

	digits := GenerateRandomDigitString(12)
	assert.Len(t, digits, 12)
	for _, c := range digits {
		assert.True(t, c >= '0' && c <= '9')
	}
}
