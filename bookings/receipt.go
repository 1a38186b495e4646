package bookings

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"grabgood/db"
	"grabgood/middleware"
	"grabgood/models"
	"grabgood/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

func receiptSecret() []byte {
	if s := os.Getenv("RECEIPT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("grabgood-receipt-secret")
}

// signReceiptPayload builds "bookingID|receiptCode|signature" for the QR.
func signReceiptPayload(bookingID, receiptCode string) string {
	data := fmt.Sprintf("%s|%s", bookingID, receiptCode)
	h := hmac.New(sha256.New, receiptSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// verifyReceiptPayload checks a scanned QR payload and returns its parts.
func verifyReceiptPayload(payload string) (bookingID, receiptCode string, err error) {
	parts := strings.Split(payload, "|")
	if len(parts) != 3 {
		return "", "", fmt.Errorf("malformed payload")
	}
	data := fmt.Sprintf("%s|%s", parts[0], parts[1])
	h := hmac.New(sha256.New, receiptSecret())
	h.Write([]byte(data))
	expected := base64.StdEncoding.EncodeToString(h.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return "", "", fmt.Errorf("invalid signature")
	}
	return parts[0], parts[1], nil
}

// PrintReceipt handles GET /api/bookings/:id/receipt and streams a PDF with
// a signed QR the venue can scan at arrival.
func PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, role := middleware.RequestUser(r)
	bookingID := ps.ByName("id")

	var booking models.Booking
	if err := db.BookingCollection.FindOne(r.Context(), bson.M{"bookingid": bookingID}).Decode(&booking); err != nil {
		utils.SendError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if booking.User != userID && role != models.RoleAdmin && !ownsBusiness(r.Context(), userID, booking.Business) {
		utils.SendError(w, http.StatusForbidden, "Not your booking")
		return
	}

	var biz models.Business
	_ = db.BusinessCollection.FindOne(r.Context(), bson.M{"businessid": booking.Business}).Decode(&biz)

	qrPNG, err := qrcode.Encode(signReceiptPayload(booking.BookingID, booking.ReceiptCode), qrcode.Medium, 256)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Booking ID: %s", booking.BookingID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Venue: %s", biz.Name))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s  %s", booking.Date, booking.StartTime))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Guests: %d", booking.NumberOfPeople))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s", booking.Status))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %.2f (payment %s)", booking.Amount.Total, booking.Payment.Status))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt-%s.pdf"`, booking.BookingID))
	w.Write(buf.Bytes())
}

// VerifyReceipt handles GET /api/bookings/verify?payload=... for venue-side
// scanners.
func VerifyReceipt(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	payload := r.URL.Query().Get("payload")
	if payload == "" {
		utils.SendError(w, http.StatusBadRequest, "Payload is required")
		return
	}

	bookingID, receiptCode, err := verifyReceiptPayload(payload)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest, "Receipt verification failed")
		return
	}

	var booking models.Booking
	err = db.BookingCollection.FindOne(r.Context(), bson.M{
		"bookingid":    bookingID,
		"receipt_code": receiptCode,
	}).Decode(&booking)
	if err != nil {
		utils.SendError(w, http.StatusNotFound, "Booking not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"valid":    booking.Status == models.BookingStatusConfirmed,
		"status":   booking.Status,
		"booking":  booking.BookingID,
		"date":     booking.Date,
		"verified": time.Now(),
	})
}
