package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking status values.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// IsValidBookingStatus reports whether s is one of the four statuses.
func IsValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking links a user to a service on a date.
type Booking struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId"`
	ServiceID   primitive.ObjectID `json:"serviceId" bson:"serviceId"`
	Status      string             `json:"status" bson:"status"`
	BookingDate time.Time          `json:"bookingDate" bson:"bookingDate"`
	Notes       string             `json:"notes" bson:"notes"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// BookingDetail is a booking with its user and service references
// resolved for display on the admin dashboard.
type BookingDetail struct {
	Booking `bson:",inline"`
	User    User    `json:"user" bson:"user"`
	Service Service `json:"service" bson:"service"`
}

// BookingRequest is the public booking form body.
type BookingRequest struct {
	ServiceID   string `form:"serviceId" validate:"required"`
	BookingDate string `form:"bookingDate" validate:"required"`
	Notes       string `form:"notes"`
}
