/*
Package server implements the application's network transport layer:
the HTTP server, route registration, and request handlers. Handlers are
methods on Server so every collaborator is injected and replaceable in
tests.
*/
package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"fitcoach/internal/coach"
	"fitcoach/internal/session"
	"fitcoach/internal/youtube"
)

// Server holds the dependencies of the HTTP service.
type Server struct {
	port int

	coach    *coach.Service
	sessions *session.Store

	// videos is nil when no video-search credential is configured; the
	// video endpoints answer 503 in that case.
	videos *youtube.Client

	log zerolog.Logger
}

// New initializes a Server and returns a configured *http.Server. The
// port comes from the PORT environment variable, falling back to 8080.
func New(svc *coach.Service, sessions *session.Store, videos *youtube.Client, log zerolog.Logger) *http.Server {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port == 0 {
		port = 8080
	}

	app := &Server{
		port:     port,
		coach:    svc,
		sessions: sessions,
		videos:   videos,
		log:      log,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", app.port),
		Handler:      app.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second, // generation fan-out waits on the backend
	}
}

// NewForTest builds a Server around test doubles without reading the
// environment.
func NewForTest(svc *coach.Service, sessions *session.Store, videos *youtube.Client, log zerolog.Logger) *Server {
	return &Server{coach: svc, sessions: sessions, videos: videos, log: log}
}
