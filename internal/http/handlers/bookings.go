package handlers

import (
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Bookings repositories.BookingRepository
}

func (h BookingHandler) service(c *gin.Context) services.BookingService {
	return services.BookingService{
		Bookings:  h.Bookings,
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/bookings
func (h BookingHandler) List(c *gin.Context) {
	page := services.PageRequest{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", services.DefaultBookingLimit),
	}

	result, err := h.service(c).List(c.Request.Context(), page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings":     result.Items,
		"total":        result.Meta.Total,
		"pages":        result.Meta.Pages,
		"current_page": result.Meta.CurrentPage,
		"per_page":     result.Meta.PerPage,
	})
}

// POST /api/bookings
func (h BookingHandler) Create(c *gin.Context) {
	var in services.CreateBookingInput
	if !bindJSONOrError(c, &in) {
		return
	}
	booking, err := h.service(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings/:id/receipt
func (h BookingHandler) Receipt(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := services.DocsService{
		Bookings:  h.Bookings,
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.BookingReceipt(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
