package handlers

import (
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	Events repositories.EventRepository
}

func (h EventHandler) service(c *gin.Context) services.EventService {
	return services.EventService{
		Events:    h.Events,
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/events
func (h EventHandler) List(c *gin.Context) {
	in := services.ListEventsInput{
		Page: services.PageRequest{
			Page:  queryInt(c, "page", 1),
			Limit: queryInt(c, "limit", services.DefaultEventLimit),
		},
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}

	page, err := h.service(c).List(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":       page.Items,
		"total":        page.Meta.Total,
		"pages":        page.Meta.Pages,
		"current_page": page.Meta.CurrentPage,
		"per_page":     page.Meta.PerPage,
	})
}

// GET /api/events/:id
func (h EventHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ev, err := h.service(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// POST /api/events
func (h EventHandler) Create(c *gin.Context) {
	var in services.EventInput
	if !bindJSONOrError(c, &in) {
		return
	}
	ev, err := h.service(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// PUT /api/events/:id
func (h EventHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.EventInput
	if !bindJSONOrError(c, &in) {
		return
	}
	ev, err := h.service(c).Update(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// DELETE /api/events/:id
func (h EventHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// GET /api/categories
func (h EventHandler) Categories(c *gin.Context) {
	cats, err := h.service(c).Categories(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}
