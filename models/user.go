package models

import "time"

// User is a registered traveller profile. Profile fields feed the booking
// form's auto-fill bridge.
type User struct {
	ID             string    `bson:"id" json:"id"`
	FullName       string    `bson:"fullName" json:"fullName"`
	Email          string    `bson:"email" json:"email"`
	Phone          string    `bson:"phone" json:"phone"`
	Nationality    string    `bson:"nationality" json:"nationality,omitempty"`
	PassportNumber string    `bson:"passportNumber" json:"passportNumber,omitempty"`
	PassportExpiry string    `bson:"passportExpiry" json:"passportExpiry,omitempty"`
	DateOfBirth    string    `bson:"dateOfBirth" json:"dateOfBirth,omitempty"`
	PasswordHash   string    `bson:"passwordHash" json:"-"`
	FCMToken       string    `bson:"fcmToken" json:"-"`
	IsAdmin        bool      `bson:"isAdmin" json:"isAdmin,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserRegistration is the signup request body.
type UserRegistration struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
