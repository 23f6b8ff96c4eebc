package services

import (
	"context"
	"time"

	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"
)

const (
	recentBookingsLimit = 10
	upcomingEventsLimit = 5
)

// DashboardService computes the admin summary from current store state on
// every call; nothing is cached or maintained incrementally.
type DashboardService struct {
	Events   repositories.EventRepository
	Bookings repositories.BookingRepository
	Users    repositories.UserRepository
	Now      func() time.Time
}

type DashboardStats struct {
	TotalEvents   int64   `json:"totalEvents"`
	TotalBookings int64   `json:"totalBookings"`
	TotalUsers    int64   `json:"totalUsers"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

type DashboardData struct {
	Stats          DashboardStats      `json:"stats"`
	RecentBookings []models.APIBooking `json:"recentBookings"`
	UpcomingEvents []models.APIEvent   `json:"upcomingEvents"`
	RecentActivity []any               `json:"recentActivity"`
}

func (s DashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s DashboardService) Summary(ctx context.Context) (DashboardData, error) {
	totalEvents, err := s.Events.CountAll(ctx)
	if err != nil {
		return DashboardData{}, err
	}
	totalBookings, err := s.Bookings.CountAll(ctx)
	if err != nil {
		return DashboardData{}, err
	}
	totalUsers, err := s.Users.CountAll(ctx)
	if err != nil {
		return DashboardData{}, err
	}
	// Revenue sums every booking; no status filter.
	revenueCents, err := s.Bookings.SumRevenue(ctx)
	if err != nil {
		return DashboardData{}, err
	}

	recent, err := s.Bookings.Recent(ctx, recentBookingsLimit)
	if err != nil {
		return DashboardData{}, err
	}
	upcoming, err := s.Events.Upcoming(ctx, s.now(), upcomingEventsLimit)
	if err != nil {
		return DashboardData{}, err
	}

	recentAPI := make([]models.APIBooking, 0, len(recent))
	for _, det := range recent {
		recentAPI = append(recentAPI, det.API())
	}
	upcomingAPI := make([]models.APIEvent, 0, len(upcoming))
	for _, ev := range upcoming {
		upcomingAPI = append(upcomingAPI, ev.API())
	}

	return DashboardData{
		Stats: DashboardStats{
			TotalEvents:   totalEvents,
			TotalBookings: totalBookings,
			TotalUsers:    totalUsers,
			TotalRevenue:  utils.CentsToNumber(revenueCents),
		},
		RecentBookings: recentAPI,
		UpcomingEvents: upcomingAPI,
		// Reserved; intentionally always empty for now.
		RecentActivity: []any{},
	}, nil
}
