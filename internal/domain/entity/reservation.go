package entity

import "time"

// ReservationStatus is the lifecycle state of a reservation.
// Transitions only move forward: confirmed -> completed or cancelled.
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusPending   ReservationStatus = "pending"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Valid reports whether s is a known status value.
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Upcoming reports whether a reservation in this status still lies ahead of
// the guest. The bookings view splits on this.
func (s ReservationStatus) Upcoming() bool {
	return s == StatusConfirmed || s == StatusPending
}

// Reservation is a single booking record. Hotel and room display fields are
// denormalized at creation time so the record stays readable even if the
// catalog changes.
type Reservation struct {
	ID         string
	IdentityID string
	HotelID    string
	RoomID     string
	HotelName  string
	RoomName   string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalPrice float64
	Status     ReservationStatus
	Image      string
	CreatedAt  time.Time
}

// Nights returns the stay length as the ceiling of the calendar-day
// difference between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		nights++
	}
	return nights
}
