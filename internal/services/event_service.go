package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"
)

type EventService struct {
	Events    repositories.EventRepository
	RequestID string
}

type ListEventsInput struct {
	Page     PageRequest
	Search   string
	Category string
}

type EventPage struct {
	Items []models.APIEvent
	Meta  PageMeta
}

func (s EventService) List(ctx context.Context, in ListEventsInput) (EventPage, error) {
	if err := validatePage(in.Page); err != nil {
		return EventPage{}, err
	}

	events, total, err := s.Events.List(ctx, repositories.EventFilter{
		Search:   in.Search,
		Category: in.Category,
		Limit:    in.Page.Limit,
		Offset:   in.Page.Offset(),
	})
	if err != nil {
		return EventPage{}, err
	}

	items := make([]models.APIEvent, 0, len(events))
	for _, ev := range events {
		items = append(items, ev.API())
	}
	return EventPage{Items: items, Meta: pageMeta(in.Page, total)}, nil
}

func (s EventService) Get(ctx context.Context, id int64) (models.APIEvent, error) {
	ev, err := s.Events.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.APIEvent{}, domain.NotFoundError{Resource: "event"}
	}
	if err != nil {
		return models.APIEvent{}, err
	}
	return ev.API(), nil
}

// EventInput uses pointers so a partial update can tell an absent key from a
// zero value. Create requires the fields listed in requiredEventFields.
type EventInput struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Venue       *string  `json:"venue"`
	Date        *string  `json:"date"`
	TotalSeats  *int     `json:"totalSeats"`
	Price       *float64 `json:"price"`
	Thumbnail   *string  `json:"thumbnail"`
	Status      *string  `json:"status"`
}

var requiredEventFields = []struct {
	name    string
	present func(EventInput) bool
}{
	{"name", func(in EventInput) bool { return in.Name != nil }},
	{"category", func(in EventInput) bool { return in.Category != nil }},
	{"venue", func(in EventInput) bool { return in.Venue != nil }},
	{"date", func(in EventInput) bool { return in.Date != nil }},
	{"totalSeats", func(in EventInput) bool { return in.TotalSeats != nil }},
	{"price", func(in EventInput) bool { return in.Price != nil }},
}

func (s EventService) Create(ctx context.Context, in EventInput) (models.APIEvent, error) {
	for _, f := range requiredEventFields {
		if !f.present(in) {
			return models.APIEvent{}, domain.ValidationError{
				Field: f.name,
				Msg:   "missing required field",
			}
		}
	}
	if *in.TotalSeats < 0 {
		return models.APIEvent{}, domain.ValidationError{Field: "totalSeats", Msg: "must not be negative"}
	}
	if *in.Price < 0 {
		return models.APIEvent{}, domain.ValidationError{Field: "price", Msg: "must not be negative"}
	}

	date, err := utils.ParseAPITime(*in.Date)
	if err != nil {
		return models.APIEvent{}, domain.ValidationError{Field: "date", Msg: "invalid timestamp", Err: err}
	}

	// A new event starts fully available.
	ev := models.Event{
		Name:           strings.TrimSpace(*in.Name),
		Category:       strings.TrimSpace(*in.Category),
		Venue:          strings.TrimSpace(*in.Venue),
		Date:           date,
		TotalSeats:     *in.TotalSeats,
		AvailableSeats: *in.TotalSeats,
		PriceCents:     utils.NumberToCents(*in.Price),
		Status:         "Active",
		CreatedAt:      utils.NowUTC(),
	}
	if in.Description != nil {
		ev.Description = *in.Description
	}
	if in.Thumbnail != nil && strings.TrimSpace(*in.Thumbnail) != "" {
		ev.Thumbnail = in.Thumbnail
	}
	if ev.Name == "" {
		return models.APIEvent{}, domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}

	if err := s.Events.Create(ctx, &ev); err != nil {
		return models.APIEvent{}, err
	}
	utils.LogEvent(s.RequestID, "events", "create", fmt.Sprintf("event_id=%d", ev.ID))
	return ev.API(), nil
}

// Update applies the provided subset of fields over the stored row.
func (s EventService) Update(ctx context.Context, id int64, in EventInput) (models.APIEvent, error) {
	ev, err := s.Events.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.APIEvent{}, domain.NotFoundError{Resource: "event"}
	}
	if err != nil {
		return models.APIEvent{}, err
	}

	if in.Name != nil {
		ev.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		ev.Category = strings.TrimSpace(*in.Category)
	}
	if in.Description != nil {
		ev.Description = *in.Description
	}
	if in.Venue != nil {
		ev.Venue = strings.TrimSpace(*in.Venue)
	}
	if in.Date != nil {
		date, err := utils.ParseAPITime(*in.Date)
		if err != nil {
			return models.APIEvent{}, domain.ValidationError{Field: "date", Msg: "invalid timestamp", Err: err}
		}
		ev.Date = date
	}
	if in.TotalSeats != nil {
		if *in.TotalSeats < 0 {
			return models.APIEvent{}, domain.ValidationError{Field: "totalSeats", Msg: "must not be negative"}
		}
		ev.TotalSeats = *in.TotalSeats
		// available_seats may never exceed total_seats
		if ev.AvailableSeats > ev.TotalSeats {
			ev.AvailableSeats = ev.TotalSeats
		}
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return models.APIEvent{}, domain.ValidationError{Field: "price", Msg: "must not be negative"}
		}
		ev.PriceCents = utils.NumberToCents(*in.Price)
	}
	if in.Thumbnail != nil {
		if strings.TrimSpace(*in.Thumbnail) == "" {
			ev.Thumbnail = nil
		} else {
			ev.Thumbnail = in.Thumbnail
		}
	}
	if in.Status != nil {
		ev.Status = strings.TrimSpace(*in.Status)
	}

	if err := s.Events.Update(ctx, ev); err != nil {
		return models.APIEvent{}, err
	}
	utils.LogEvent(s.RequestID, "events", "update", fmt.Sprintf("event_id=%d", ev.ID))
	return ev.API(), nil
}

func (s EventService) Delete(ctx context.Context, id int64) error {
	rows, err := s.Events.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundError{Resource: "event"}
	}
	utils.LogEvent(s.RequestID, "events", "delete", fmt.Sprintf("event_id=%d", id))
	return nil
}

// Categories returns the distinct category list with the synthetic "All"
// entry first, even for an empty store.
func (s EventService) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.Events.DistinctCategories(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{"All"}, cats...), nil
}
