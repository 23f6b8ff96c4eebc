package handlers

import (
	"net/http"

	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Events   repositories.EventRepository
	Bookings repositories.BookingRepository
	Users    repositories.UserRepository
}

// GET /api/dashboard
func (h DashboardHandler) Summary(c *gin.Context) {
	svc := services.DashboardService{
		Events:   h.Events,
		Bookings: h.Bookings,
		Users:    h.Users,
	}
	data, err := svc.Summary(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
