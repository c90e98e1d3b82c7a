package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// TailorBooking is an in-person appointment at the atelier. UserID is 0
// for bookings made without signing in.
type TailorBooking struct {
	gorm.Model
	UserID      int    `json:"userId"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	ServiceType string `json:"serviceType" binding:"required"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

// OnlineAppointment is a virtual consultation. ReferenceImages holds the
// S3 URLs of any inspiration images the customer uploads.
type OnlineAppointment struct {
	gorm.Model
	UserID          int            `json:"userId"`
	FirstName       string         `json:"firstName" binding:"required"`
	LastName        string         `json:"lastName" binding:"required"`
	Email           string         `json:"email" binding:"required,email"`
	Date            string         `json:"date" binding:"required"`
	Time            string         `json:"time" binding:"required"`
	MeetingLink     string         `json:"meetingLink"`
	Notes           string         `json:"notes"`
	ReferenceImages datatypes.JSON `json:"referenceImages"`
	Status          string         `json:"status"`
}
