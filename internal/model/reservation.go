package model

import "time"

// Reservation is a row of the reservations table.
type Reservation struct {
	ID         int64     `json:"id"`
	GuestID    int64     `json:"guest_id"`
	PropertyID int64     `json:"property_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

// GuestReservation is a reservation joined with its property and the
// property's review average, as returned by per-guest listings.
type GuestReservation struct {
	Reservation
	Property Property `json:"property"`
}
