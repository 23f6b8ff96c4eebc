package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	"backend/internal/config"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// NewRouter wires repositories over the injected DB handle into the gin
// engine. Nothing here keeps package-level state.
func NewRouter(env config.Env, conn *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	eventRepo := repositories.EventRepository{DB: conn}
	userRepo := repositories.UserRepository{DB: conn}
	bookingRepo := repositories.BookingRepository{DB: conn}

	events := h.EventHandler{Events: eventRepo}
	bookings := h.BookingHandler{Bookings: bookingRepo}
	users := h.UserHandler{Users: userRepo}
	dashboard := h.DashboardHandler{Events: eventRepo, Bookings: bookingRepo, Users: userRepo}
	auth := h.AuthHandler{Users: userRepo, JWTSecret: env.JWTSecret}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/placeholder/:width/:height", h.Placeholder)

		api.POST("/auth/login", auth.Login)

		api.GET("/events", events.List)
		api.POST("/events", events.Create)
		api.GET("/events/:id", events.Get)
		api.PUT("/events/:id", events.Update)
		api.DELETE("/events/:id", events.Delete)
		api.GET("/categories", events.Categories)

		api.GET("/bookings", bookings.List)
		api.POST("/bookings", bookings.Create)
		api.GET("/bookings/:id/receipt", bookings.Receipt)

		api.GET("/users", users.List)

		api.GET("/dashboard", dashboard.Summary)
	}

	return r
}
