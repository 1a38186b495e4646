package models

import "time"

const (
	BusinessTypeRestaurant = "restaurant"
	BusinessTypeHotel      = "hotel"
	BusinessTypeHall       = "hall"
	BusinessTypeSweetShop  = "sweetshop"
)

const (
	BusinessStatusPending   = "pending"
	BusinessStatusActive    = "active"
	BusinessStatusInactive  = "inactive"
	BusinessStatusSuspended = "suspended"
)

type Location struct {
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Pincode string `json:"pincode" bson:"pincode"`
}

type Contact struct {
	Phone string `json:"phone" bson:"phone"`
	Email string `json:"email" bson:"email"`
}

// TypeSpecific is a tagged union keyed by Business.Type; only the variant
// matching the type carries meaningful data.
type TypeSpecific struct {
	Restaurant *RestaurantDetails `json:"restaurant,omitempty" bson:"restaurant,omitempty"`
	Hotel      *HotelDetails      `json:"hotel,omitempty" bson:"hotel,omitempty"`
	Hall       *HallDetails       `json:"hall,omitempty" bson:"hall,omitempty"`
	SweetShop  *SweetShopDetails  `json:"sweetshop,omitempty" bson:"sweetshop,omitempty"`
}

type RestaurantDetails struct {
	Cuisines      []string `json:"cuisines,omitempty" bson:"cuisines,omitempty"`
	Seating       int      `json:"seating,omitempty" bson:"seating,omitempty"`
	TableCount    int      `json:"tableCount,omitempty" bson:"tableCount,omitempty"`
	AvgCostForTwo float64  `json:"avgCostForTwo,omitempty" bson:"avgCostForTwo,omitempty"`
	PureVeg       bool     `json:"pureVeg,omitempty" bson:"pureVeg,omitempty"`
}

type HotelDetails struct {
	RoomCount  int      `json:"roomCount,omitempty" bson:"roomCount,omitempty"`
	RoomTypes  []string `json:"roomTypes,omitempty" bson:"roomTypes,omitempty"`
	StarRating int      `json:"starRating,omitempty" bson:"starRating,omitempty"`
	CheckIn    string   `json:"checkIn,omitempty" bson:"checkIn,omitempty"`
	CheckOut   string   `json:"checkOut,omitempty" bson:"checkOut,omitempty"`
}

type HallDetails struct {
	HallCount     int      `json:"hallCount,omitempty" bson:"hallCount,omitempty"`
	EventTypes    []string `json:"eventTypes,omitempty" bson:"eventTypes,omitempty"`
	CateringTypes []string `json:"cateringTypes,omitempty" bson:"cateringTypes,omitempty"`
	ParkingSpaces int      `json:"parkingSpaces,omitempty" bson:"parkingSpaces,omitempty"`
}

type SweetShopDetails struct {
	Specialities []string `json:"specialities,omitempty" bson:"specialities,omitempty"`
	BulkOrders   bool     `json:"bulkOrders,omitempty" bson:"bulkOrders,omitempty"`
	MinOrderKg   float64  `json:"minOrderKg,omitempty" bson:"minOrderKg,omitempty"`
}

// BusinessSettings holds per-business policy knobs. Stored partially; reads
// merge over DefaultBusinessSettings so older documents still come back
// complete.
type BusinessSettings struct {
	Booking       *BookingPolicy      `json:"booking,omitempty" bson:"booking,omitempty"`
	Notifications *NotificationPolicy `json:"notifications,omitempty" bson:"notifications,omitempty"`
	Payment       *PaymentPolicy      `json:"payment,omitempty" bson:"payment,omitempty"`
}

type BookingPolicy struct {
	AutoConfirm       bool `json:"autoConfirm" bson:"auto_confirm"`
	MaxAdvanceDays    int  `json:"maxAdvanceDays" bson:"max_advance_days"`
	MinNoticeHours    int  `json:"minNoticeHours" bson:"min_notice_hours"`
	AllowCancellation bool `json:"allowCancellation" bson:"allow_cancellation"`
}

type NotificationPolicy struct {
	Email bool `json:"email" bson:"email"`
	SMS   bool `json:"sms" bson:"sms"`
}

type PaymentPolicy struct {
	AdvancePercent int  `json:"advancePercent" bson:"advance_percent"`
	AcceptCash     bool `json:"acceptCash" bson:"accept_cash"`
	AcceptOnline   bool `json:"acceptOnline" bson:"accept_online"`
}

func DefaultBusinessSettings() BusinessSettings {
	return BusinessSettings{
		Booking: &BookingPolicy{
			AutoConfirm:       false,
			MaxAdvanceDays:    90,
			MinNoticeHours:    2,
			AllowCancellation: true,
		},
		Notifications: &NotificationPolicy{Email: true, SMS: false},
		Payment:       &PaymentPolicy{AdvancePercent: 20, AcceptCash: true, AcceptOnline: true},
	}
}

// Availability maps "YYYY-MM-DD" -> resourceId -> per-shift status. A missing
// entry at any level means the slot is available.
type Availability map[string]map[string]ShiftStatus

type ShiftStatus struct {
	Morning string `json:"morning,omitempty" bson:"morning,omitempty"`
	Evening string `json:"evening,omitempty" bson:"evening,omitempty"`
}

const (
	SlotAvailable   = "available"
	SlotLimited     = "limited"
	SlotBooked      = "booked"
	SlotMaintenance = "maintenance"
)

type Business struct {
	BusinessID   string           `json:"businessid" bson:"businessid"`
	Name         string           `json:"name" bson:"name"`
	Type         string           `json:"type" bson:"type"`
	Description  string           `json:"description" bson:"description"`
	Location     Location         `json:"location" bson:"location"`
	Contact      Contact          `json:"contact" bson:"contact"`
	Capacity     int              `json:"capacity" bson:"capacity"`
	Status       string           `json:"status" bson:"status"`
	Owner        string           `json:"owner" bson:"owner"`
	Settings     BusinessSettings `json:"settings,omitempty" bson:"settings,omitempty"`
	TypeSpecific TypeSpecific     `json:"typeSpecific,omitempty" bson:"typeSpecific,omitempty"`
	Availability Availability     `json:"availability,omitempty" bson:"availability,omitempty"`
	Photos       []string         `json:"photos,omitempty" bson:"photos,omitempty"`
	Banner       string           `json:"banner,omitempty" bson:"banner,omitempty"`
	CreatedAt    time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at" bson:"updated_at"`
	UpdatedBy    string           `json:"updatedBy,omitempty" bson:"updated_by,omitempty"`
}

func ValidBusinessType(t string) bool {
	switch t {
	case BusinessTypeRestaurant, BusinessTypeHotel, BusinessTypeHall, BusinessTypeSweetShop:
		return true
	}
	return false
}

func ValidBusinessStatus(s string) bool {
	switch s {
	case BusinessStatusPending, BusinessStatusActive, BusinessStatusInactive, BusinessStatusSuspended:
		return true
	}
	return false
}

func ValidSlotStatus(s string) bool {
	switch s {
	case SlotAvailable, SlotLimited, SlotBooked, SlotMaintenance:
		return true
	}
	return false
}
