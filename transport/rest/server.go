package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// Start - starts the HTTP server with the health and read-only session
// endpoints.
func Start(port string, logger *slog.Logger, manager *usecase.SessionManager) error {
	router := chi.NewRouter()

	h := newHandlers(logger, manager)
	router.Get("/ping", h.ping)
	router.Get("/sessions/{id}", h.session)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
