package models

import (
	"time"

	"backend/internal/utils"
)

// Event is a ticketed occasion. PriceCents keeps the monetary value in fixed
// point; the stored column is DECIMAL(10,2).
type Event struct {
	ID             int64
	Name           string
	Category       string
	Description    string
	Venue          string
	Date           time.Time
	TotalSeats     int
	AvailableSeats int
	PriceCents     int64
	Thumbnail      *string
	Status         string
	CreatedAt      time.Time
}

// APIEvent is the wire representation of an Event.
type APIEvent struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	Venue          string   `json:"venue"`
	Date           string   `json:"date"`
	TotalSeats     int      `json:"totalSeats"`
	AvailableSeats int      `json:"availableSeats"`
	Price          float64  `json:"price"`
	Thumbnail      *string  `json:"thumbnail"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"createdAt"`
	Tags           []string `json:"tags"`
}

// API builds the external representation. The tags list is derived, never
// stored: a fixed "Event" marker followed by the category.
func (e Event) API() APIEvent {
	return APIEvent{
		ID:             e.ID,
		Name:           e.Name,
		Category:       e.Category,
		Description:    e.Description,
		Venue:          e.Venue,
		Date:           utils.FormatAPITime(e.Date),
		TotalSeats:     e.TotalSeats,
		AvailableSeats: e.AvailableSeats,
		Price:          utils.CentsToNumber(e.PriceCents),
		Thumbnail:      e.Thumbnail,
		Status:         e.Status,
		CreatedAt:      utils.FormatAPITime(e.CreatedAt),
		Tags:           []string{"Event", e.Category},
	}
}
