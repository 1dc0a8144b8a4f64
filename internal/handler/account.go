package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/simonkvalheim/bankist/internal/model"
	"github.com/simonkvalheim/bankist/internal/presentation"
	"github.com/simonkvalheim/bankist/internal/session"
)

// AccountHandler handles HTTP requests about the session account
type AccountHandler struct {
	ledger *Ledger
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(ledger *Ledger) *AccountHandler {
	return &AccountHandler{ledger: ledger}
}

// RegisterRoutes sets up the account routes on the given router
func (h *AccountHandler) RegisterRoutes(r chi.Router) {
	r.Get("/account", h.Get)
	r.Post("/account/close", h.Close)
	r.Post("/movements/sort", h.ToggleSort)
}

// Get handles GET /account
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	var view *presentation.View
	err := h.ledger.DoInSession(r.Context(), func(c *session.Controller) error {
		var err error
		view, err = c.Render()
		return err
	})
	if err != nil {
		h.ledger.writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Close handles POST /account/close
// The body must repeat the session's username and pin
func (h *AccountHandler) Close(w http.ResponseWriter, r *http.Request) {
	var req model.CloseAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.ledger.DoInSession(r.Context(), func(c *session.Controller) error {
		if err := req.Validate(); err != nil {
			return err
		}
		return c.CloseCurrentAccount(req.Username, req.PIN)
	})
	if err != nil {
		h.ledger.writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Account closed",
	})
}

// ToggleSort handles POST /movements/sort
func (h *AccountHandler) ToggleSort(w http.ResponseWriter, r *http.Request) {
	var view *presentation.View
	err := h.ledger.DoInSession(r.Context(), func(c *session.Controller) error {
		var err error
		view, err = c.ToggleSortAndRender()
		return err
	})
	if err != nil {
		h.ledger.writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
