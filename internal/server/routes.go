package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	e.Use(RequestIDMiddleware)

	e.GET("/health", s.healthHandler)

	// Recommendation workflow
	e.POST("/generate-workout", s.generateWorkoutHandler)
	e.POST("/generate-nutrition", s.generateNutritionHandler)
	e.POST("/user-concerns/:session_id", s.userConcernsHandler)

	// Session inspection
	e.GET("/session/:session_id", s.getSessionHandler)
	e.DELETE("/session/:session_id", s.deleteSessionHandler)

	// Video search collaborator
	e.POST("/youtube-search", s.youtubeSearchHandler)
	e.GET("/youtube-video/:video_id", s.youtubeVideoHandler)

	return e
}

func (s *Server) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":        "up",
		"live_sessions": s.sessions.Len(),
	})
}

// RequestIDMiddleware tags every request with an id and stashes a child
// logger in the echo context.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().Str("request_id", requestID).Logger()
		c.Set("logger", &logger)

		return next(c)
	}
}
