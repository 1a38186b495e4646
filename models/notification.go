package models

import "time"

const (
	NotifCategoryBooking   = "booking"
	NotifCategoryBusiness  = "business"
	NotifCategoryPayment   = "payment"
	NotifCategoryPromotion = "promotion"
	NotifCategorySystem    = "system"
)

type Notification struct {
	NotificationID string    `json:"notificationid" bson:"notificationid"`
	UserID         string    `json:"userid" bson:"userid"`
	Category       string    `json:"category" bson:"category"`
	Title          string    `json:"title" bson:"title"`
	Message        string    `json:"message" bson:"message"`
	EntityType     string    `json:"entityType,omitempty" bson:"entity_type,omitempty"`
	EntityID       string    `json:"entityId,omitempty" bson:"entity_id,omitempty"`
	Read           bool      `json:"read" bson:"read"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

// ChannelPrefs toggles one delivery channel per category.
type ChannelPrefs struct {
	Bookings   bool `json:"bookings" bson:"bookings"`
	Business   bool `json:"business" bson:"business"`
	Payments   bool `json:"payments" bson:"payments"`
	Promotions bool `json:"promotions" bson:"promotions"`
	System     bool `json:"system" bson:"system"`
}

type NotificationPreference struct {
	UserID    string       `json:"userid" bson:"userid"`
	Email     ChannelPrefs `json:"email" bson:"email"`
	Push      ChannelPrefs `json:"push" bson:"push"`
	InApp     ChannelPrefs `json:"inApp" bson:"in_app"`
	Digest    bool         `json:"digest" bson:"digest"`
	QuietFrom string       `json:"quietFrom,omitempty" bson:"quiet_from,omitempty"`
	QuietTo   string       `json:"quietTo,omitempty" bson:"quiet_to,omitempty"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}

func DefaultNotificationPreference(userID string) NotificationPreference {
	all := ChannelPrefs{Bookings: true, Business: true, Payments: true, Promotions: false, System: true}
	return NotificationPreference{
		UserID: userID,
		Email:  all,
		Push:   all,
		InApp:  ChannelPrefs{Bookings: true, Business: true, Payments: true, Promotions: true, System: true},
		Digest: false,
	}
}

// WantsInApp reports whether an in-app notification of the given category
// should be stored for this user.
func (p NotificationPreference) WantsInApp(category string) bool {
	switch category {
	case NotifCategoryBooking:
		return p.InApp.Bookings
	case NotifCategoryBusiness:
		return p.InApp.Business
	case NotifCategoryPayment:
		return p.InApp.Payments
	case NotifCategoryPromotion:
		return p.InApp.Promotions
	case NotifCategorySystem:
		return p.InApp.System
	}
	return true
}

// Event is the payload published on the mq channel for domain events.
type Event struct {
	Name       string `json:"name"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	UserID     string `json:"user_id,omitempty"`
	OwnerID    string `json:"owner_id,omitempty"`
	Message    string `json:"message,omitempty"`
}
