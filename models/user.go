package models

import "time"

const (
	RoleUser     = "user"
	RolePartner  = "partner"
	RoleBusiness = "business"
	RoleAdmin    = "admin"
)

const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

type User struct {
	UserID          string    `json:"userid" bson:"userid"`
	Name            string    `json:"name" bson:"name"`
	Email           string    `json:"email" bson:"email"`
	Password        string    `json:"-" bson:"-"`
	PasswordHash    string    `json:"-" bson:"password_hash"`
	Role            string    `json:"role" bson:"role"`
	Status          string    `json:"status" bson:"status"`
	Phone           string    `json:"phone,omitempty" bson:"phone,omitempty"`
	BusinessProfile string    `json:"businessProfile,omitempty" bson:"business_profile,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
	LastLogin       time.Time `json:"last_login" bson:"last_login"`
	RefreshToken    string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry   time.Time `json:"-" bson:"refresh_expiry,omitempty"`
}

// UserProfileResponse is the shape returned to the client; it never carries
// password material.
type UserProfileResponse struct {
	UserID          string    `json:"userid"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	Phone           string    `json:"phone,omitempty"`
	BusinessProfile string    `json:"businessProfile,omitempty"`
	LastLogin       time.Time `json:"last_login"`
}

func (u *User) ProfileResponse() UserProfileResponse {
	return UserProfileResponse{
		UserID:          u.UserID,
		Name:            u.Name,
		Email:           u.Email,
		Role:            u.Role,
		Status:          u.Status,
		Phone:           u.Phone,
		BusinessProfile: u.BusinessProfile,
		LastLogin:       u.LastLogin,
	}
}

func ValidUserStatus(s string) bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	}
	return false
}

func ValidRole(r string) bool {
	switch r {
	case RoleUser, RolePartner, RoleBusiness, RoleAdmin:
		return true
	}
	return false
}
