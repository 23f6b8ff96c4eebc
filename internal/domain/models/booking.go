package models

import (
	"time"

	"backend/internal/utils"
)

// Booking is a purchase of tickets to one Event by one User.
type Booking struct {
	ID          int64
	EventID     int64
	UserID      int64
	Tickets     int
	AmountCents int64
	Status      string
	BookingDate time.Time
}

// BookingDetail carries the denormalized event/customer fields resolved at
// read time from the parent rows.
type BookingDetail struct {
	Booking
	EventName     string
	CustomerName  string
	CustomerEmail string
}

// APIBooking is the wire representation of a Booking. createdAt mirrors
// bookingDate, matching what admin clients expect.
type APIBooking struct {
	ID            int64   `json:"id"`
	EventID       int64   `json:"eventId"`
	UserID        int64   `json:"userId"`
	EventName     string  `json:"eventName"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Tickets       int     `json:"tickets"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	BookingDate   string  `json:"bookingDate"`
	CreatedAt     string  `json:"createdAt"`
}

func (b BookingDetail) API() APIBooking {
	when := utils.FormatAPITime(b.BookingDate)
	return APIBooking{
		ID:            b.ID,
		EventID:       b.EventID,
		UserID:        b.UserID,
		EventName:     b.EventName,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Tickets:       b.Tickets,
		TotalAmount:   utils.CentsToNumber(b.AmountCents),
		Status:        b.Status,
		BookingDate:   when,
		CreatedAt:     when,
	}
}
