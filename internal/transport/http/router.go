package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"vn.io.arda/toast/internal/transport/mw"
)

// NewRouter sets up all Echo routes and middleware.
func NewRouter(h *Handler, jwtSecret string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Session-ID"},
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
	}))

	// Health (no auth required)
	e.GET("/health", h.Health)

	// API — requires authentication
	v1 := e.Group("")
	v1.Use(mw.JWTAuth(jwtSecret))
	v1.Use(mw.SessionResolver())

	// REST endpoints
	v1.POST("/toasts", h.PostToast)
	v1.GET("/toasts", h.ListToasts)
	v1.POST("/toasts/:id/dismiss", h.DismissToast)
	v1.PUT("/viewport", h.Viewport)

	// SSE endpoint
	v1.GET("/toasts/stream", h.Stream)

	return e
}
