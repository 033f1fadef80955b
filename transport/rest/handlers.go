package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type handlers struct {
	logger  *slog.Logger
	manager *usecase.SessionManager
}

func newHandlers(logger *slog.Logger, manager *usecase.SessionManager) *handlers {
	return &handlers{
		logger:  logger,
		manager: manager,
	}
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// session - read-only snapshot of a session for rendering or debugging.
func (that *handlers) session(w http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "session")

	sessionID := chi.URLParam(req, "id")

	session, err := that.manager.SessionByID(req.Context(), sessionID)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	if err != nil {
		log.Error("failed to get session", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(session); err != nil {
		log.Error("failed to encode session", "error", err)
	}
}
