package bookings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptPayloadRoundTrip(t *testing.T) {
	payload := signReceiptPayload("bk123456789012", "abcdef0123456789")

	bookingID, receiptCode, err := verifyReceiptPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, "bk123456789012", bookingID)
	assert.Equal(t, "abcdef0123456789", receiptCode)
}

func TestReceiptPayloadTampered(t *testing.T) {
	payload := signReceiptPayload("bk123456789012", "abcdef0123456789")

	// Swap the booking id out from under the signature.
	tampered := strings.Replace(payload, "bk123456789012", "bk999999999999", 1)
	_, _, err := verifyReceiptPayload(tampered)
	assert.Error(t, err)
}

func TestReceiptPayloadMalformed(t *testing.T) {
	for _, payload := range []string{"", "onlyonepart", "two|parts", "a|b|c|d"} {
		_, _, err := verifyReceiptPayload(payload)
		assert.Error(t, err, "payload %q", payload)
	}
}
