package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankist/internal/model"
	"github.com/simonkvalheim/bankist/internal/presentation"
	"github.com/simonkvalheim/bankist/internal/session"
)

// TransferHandler handles HTTP requests for transfers and loans
type TransferHandler struct {
	ledger *Ledger
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(ledger *Ledger) *TransferHandler {
	return &TransferHandler{ledger: ledger}
}

// RegisterRoutes sets up the transfer routes on the given router
func (h *TransferHandler) RegisterRoutes(r chi.Router) {
	r.Post("/transfers", h.CreateTransfer)
	r.Post("/loans", h.RequestLoan)
}

// CreateTransfer handles POST /transfers
func (h *TransferHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	amount, err := validateAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var view *presentation.View
	err = h.ledger.DoInSession(r.Context(), func(c *session.Controller) error {
		if err := c.Transfer(amount, strings.TrimSpace(req.To)); err != nil {
			return err
		}
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

// RequestLoan handles POST /loans
func (h *TransferHandler) RequestLoan(w http.ResponseWriter, r *http.Request) {
	var req model.LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	amount, err := validateAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var view *presentation.View
	err = h.ledger.DoInSession(r.Context(), func(c *session.Controller) error {
		if err := c.RequestLoan(amount); err != nil {
			return err
		}
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

// validateAmount parses a user-entered amount.
// Format, precision and magnitude are checked here; sign rules belong to the ledger.
func validateAmount(amount string) (decimal.Decimal, error) {
	return model.ParseAmount(amount)
}
