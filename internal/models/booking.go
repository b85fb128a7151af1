// internal/models/booking.go
package models

import "time"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is one reservation against a room type.
type Booking struct {
	ID          string     `json:"id"`
	RoomID      string     `json:"roomId"`
	GuestName   string     `json:"guestName"`
	GuestEmail  string     `json:"guestEmail,omitempty"`
	GuestPhone  string     `json:"guestPhone,omitempty"`
	CheckIn     string     `json:"checkIn"`
	CheckOut    string     `json:"checkOut"`
	Guests      int        `json:"guests"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}
