package handlers

import (
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Users repositories.UserRepository
}

// GET /api/users
func (h UserHandler) List(c *gin.Context) {
	svc := services.UserService{
		Users:     h.Users,
		RequestID: middleware.GetRequestID(c),
	}
	page := services.PageRequest{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", services.DefaultUserLimit),
	}

	result, err := svc.List(c.Request.Context(), page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":        result.Items,
		"total":        result.Meta.Total,
		"pages":        result.Meta.Pages,
		"current_page": result.Meta.CurrentPage,
		"per_page":     result.Meta.PerPage,
	})
}
