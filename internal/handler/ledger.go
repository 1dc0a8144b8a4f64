package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/simonkvalheim/bankist/internal/middleware"
	"github.com/simonkvalheim/bankist/internal/model"
	"github.com/simonkvalheim/bankist/internal/session"
)

// errSessionMismatch means the token belongs to a session that has ended
var errSessionMismatch = errors.New("session has ended")

// Ledger serializes HTTP requests onto the single session controller.
// The controller is not safe for concurrent use, so every call holds mu.
type Ledger struct {
	mu      sync.Mutex
	session *session.Controller
	log     zerolog.Logger
}

// NewLedger wraps a session controller for use by the HTTP handlers
func NewLedger(controller *session.Controller, log zerolog.Logger) *Ledger {
	return &Ledger{
		session: controller,
		log:     log.With().Str("component", "http").Logger(),
	}
}

// Do runs fn with exclusive access to the controller
func (l *Ledger) Do(fn func(c *session.Controller) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.session)
}

// DoInSession runs fn only if the request's token belongs to the live session
func (l *Ledger) DoInSession(ctx context.Context, fn func(c *session.Controller) error) error {
	tokenSession := middleware.GetSessionID(ctx)

	return l.Do(func(c *session.Controller) error {
		if c.State() != session.StateLoggedIn {
			return model.ErrNotLoggedIn
		}
		if tokenSession == uuid.Nil || tokenSession != c.SessionID() {
			l.log.Info().
				Str("username", middleware.GetUsername(ctx)).
				Str("token_session", tokenSession.String()).
				Msg("Rejected token from an ended session")
			return errSessionMismatch
		}
		return fn(c)
	})
}

// writeLedgerError maps domain errors to HTTP responses.
// Every domain error is recoverable, so none of them is a 500.
func (l *Ledger) writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid username or pin")
	case errors.Is(err, model.ErrNotLoggedIn), errors.Is(err, errSessionMismatch):
		writeError(w, http.StatusUnauthorized, "Not logged in")
	case errors.Is(err, model.ErrInsufficientFunds), errors.Is(err, model.ErrNoQualifyingDeposit):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrInvalidTransfer), errors.Is(err, model.ErrLoanRejected),
		errors.Is(err, model.ErrInvalidAmount), errors.Is(err, model.ErrInvalidToAccount):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrClosureDenied):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		l.log.Error().Err(err).Msg("Unexpected ledger error")
		writeError(w, http.StatusInternalServerError, "Internal error")
	}
}

// Helper functions for HTTP responses

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
