package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/simonkvalheim/bankist/internal/auth"
	"github.com/simonkvalheim/bankist/internal/model"
	"github.com/simonkvalheim/bankist/internal/presentation"
	"github.com/simonkvalheim/bankist/internal/session"
)

// SessionHandler handles login and logout
type SessionHandler struct {
	ledger      *Ledger
	authService *auth.Service
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(ledger *Ledger, authService *auth.Service) *SessionHandler {
	return &SessionHandler{ledger: ledger, authService: authService}
}

// RegisterRoutes sets up the public session routes
func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/session/login", h.Login)
}

// RegisterProtectedRoutes sets up the session routes that need a token
func (h *SessionHandler) RegisterProtectedRoutes(r chi.Router) {
	r.Post("/session/logout", h.Logout)
}

// LoginResponse carries the session token and the first view
type LoginResponse struct {
	auth.Token
	View *presentation.View `json:"view"`
}

// Login handles POST /session/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var resp LoginResponse
	err := h.ledger.Do(func(c *session.Controller) error {
		if err := req.Validate(); err != nil {
			return err
		}

		acc, err := c.Login(req.Username, req.PIN)
		if err != nil {
			return err
		}

		token, err := h.authService.Issue(acc.Username, c.SessionID())
		if err != nil {
			c.Logout()
			return err
		}
		resp.Token = *token

		resp.View, err = c.Render()
		return err
	})
	if err != nil {
		h.ledger.writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Logout handles POST /v1/session/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.ledger.DoInSession(r.Context(), func(c *session.Controller) error {
		c.Logout()
		return nil
	})
	if err != nil {
		h.ledger.writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Logged out successfully",
	})
}
