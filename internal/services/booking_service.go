package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"
)

type BookingService struct {
	Bookings  repositories.BookingRepository
	RequestID string
}

type BookingPage struct {
	Items []models.APIBooking
	Meta  PageMeta
}

func (s BookingService) List(ctx context.Context, page PageRequest) (BookingPage, error) {
	if err := validatePage(page); err != nil {
		return BookingPage{}, err
	}

	details, total, err := s.Bookings.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return BookingPage{}, err
	}

	items := make([]models.APIBooking, 0, len(details))
	for _, det := range details {
		items = append(items, det.API())
	}
	return BookingPage{Items: items, Meta: pageMeta(page, total)}, nil
}

type CreateBookingInput struct {
	EventID int64 `json:"eventId"`
	UserID  int64 `json:"userId"`
	Tickets int   `json:"tickets"`
}

// Create books tickets for a user. The seat check-and-decrement runs inside
// the repository transaction so two requests cannot both take the last seats.
func (s BookingService) Create(ctx context.Context, in CreateBookingInput) (models.APIBooking, error) {
	if in.EventID <= 0 {
		return models.APIBooking{}, domain.ValidationError{Field: "eventId", Msg: "missing required field"}
	}
	if in.UserID <= 0 {
		return models.APIBooking{}, domain.ValidationError{Field: "userId", Msg: "missing required field"}
	}
	if in.Tickets <= 0 {
		return models.APIBooking{}, domain.ValidationError{Field: "tickets", Msg: "must be at least 1"}
	}

	b := models.Booking{
		EventID:     in.EventID,
		UserID:      in.UserID,
		Tickets:     in.Tickets,
		Status:      "confirmed",
		BookingDate: utils.NowUTC(),
	}
	if err := s.Bookings.Create(ctx, &b); err != nil {
		return models.APIBooking{}, err
	}
	utils.LogEvent(s.RequestID, "bookings", "create",
		fmt.Sprintf("booking_id=%d event_id=%d tickets=%d", b.ID, b.EventID, b.Tickets))

	det, err := s.Bookings.GetDetail(ctx, b.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.APIBooking{}, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return models.APIBooking{}, err
	}
	return det.API(), nil
}
