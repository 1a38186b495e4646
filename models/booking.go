package models

import "time"

const (
	BookingTypeTable = "table"
	BookingTypeRoom  = "room"
	BookingTypeHall  = "hall"
	BookingTypeOrder = "order"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
	PaymentStatusFailed   = "failed"
)

type Amount struct {
	Subtotal float64 `json:"subtotal" bson:"subtotal"`
	Tax      float64 `json:"tax" bson:"tax"`
	Total    float64 `json:"total" bson:"total"`
}

type Payment struct {
	Status        string `json:"status" bson:"status"`
	Method        string `json:"method,omitempty" bson:"method,omitempty"`
	TransactionID string `json:"transactionId,omitempty" bson:"transaction_id,omitempty"`
}

// BookingDetails is a tagged union keyed by Booking.BookingType.
type BookingDetails struct {
	Table *TableDetails `json:"table,omitempty" bson:"table,omitempty"`
	Room  *RoomDetails  `json:"room,omitempty" bson:"room,omitempty"`
	Hall  *HallBooking  `json:"hall,omitempty" bson:"hall,omitempty"`
	Order *OrderDetails `json:"order,omitempty" bson:"order,omitempty"`
}

type TableDetails struct {
	TableNumber string `json:"tableNumber,omitempty" bson:"table_number,omitempty"`
	Section     string `json:"section,omitempty" bson:"section,omitempty"`
}

type RoomDetails struct {
	RoomType string `json:"roomType,omitempty" bson:"room_type,omitempty"`
	RoomID   string `json:"roomId,omitempty" bson:"room_id,omitempty"`
	Nights   int    `json:"nights,omitempty" bson:"nights,omitempty"`
	CheckOut string `json:"checkOut,omitempty" bson:"check_out,omitempty"`
}

type HallBooking struct {
	HallID    string `json:"hallId,omitempty" bson:"hall_id,omitempty"`
	EventType string `json:"eventType,omitempty" bson:"event_type,omitempty"`
	Shift     string `json:"shift,omitempty" bson:"shift,omitempty"`
	Catering  bool   `json:"catering,omitempty" bson:"catering,omitempty"`
}

type OrderDetails struct {
	Items []OrderItem `json:"items,omitempty" bson:"items,omitempty"`
	Notes string      `json:"notes,omitempty" bson:"notes,omitempty"`
}

type OrderItem struct {
	Name     string  `json:"name" bson:"name"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Price    float64 `json:"price" bson:"price"`
}

type Cancellation struct {
	Reason      string    `json:"reason,omitempty" bson:"reason,omitempty"`
	CancelledBy string    `json:"cancelledBy" bson:"cancelled_by"`
	CancelledAt time.Time `json:"cancelledAt" bson:"cancelled_at"`
}

type Booking struct {
	BookingID       string          `json:"bookingid" bson:"bookingid"`
	Business        string          `json:"business" bson:"business"`
	User            string          `json:"user" bson:"user"`
	BookingType     string          `json:"bookingType" bson:"booking_type"`
	Date            string          `json:"date" bson:"date"` // YYYY-MM-DD
	StartTime       string          `json:"startTime" bson:"start_time"`
	EndTime         string          `json:"endTime,omitempty" bson:"end_time,omitempty"`
	Status          string          `json:"status" bson:"status"`
	NumberOfPeople  int             `json:"numberOfPeople,omitempty" bson:"number_of_people,omitempty"`
	Amount          Amount          `json:"amount" bson:"amount"`
	Payment         Payment         `json:"payment" bson:"payment"`
	Details         BookingDetails  `json:"details,omitempty" bson:"details,omitempty"`
	Cancellation    *Cancellation   `json:"cancellation,omitempty" bson:"cancellation,omitempty"`
	ReceiptCode     string          `json:"receiptCode,omitempty" bson:"receipt_code,omitempty"`
	StatusUpdatedAt time.Time       `json:"statusUpdatedAt,omitempty" bson:"status_updated_at,omitempty"`
	StatusUpdatedBy string          `json:"statusUpdatedBy,omitempty" bson:"status_updated_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" bson:"updated_at"`
}

func ValidBookingType(t string) bool {
	switch t {
	case BookingTypeTable, BookingTypeRoom, BookingTypeHall, BookingTypeOrder:
		return true
	}
	return false
}

func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}
