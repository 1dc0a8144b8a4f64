// Package ledger holds the business rules that read and append account movements.
package ledger

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankist/internal/model"
	"github.com/simonkvalheim/bankist/internal/repository"
)

// Clock returns the current instant
type Clock func() time.Time

// Engine applies transfers, loans and closures to accounts.
// It is not safe for concurrent use; callers serialize operations.
type Engine struct {
	now Clock
	log zerolog.Logger
}

// NewEngine creates a new Engine. A nil clock falls back to time.Now.
func NewEngine(now Clock, log zerolog.Logger) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		now: now,
		log: log.With().Str("component", "ledger").Logger(),
	}
}

// ComputeBalance sums the account's movements and refreshes the cached balance
func (e *Engine) ComputeBalance(account *model.Account) decimal.Decimal {
	balance := SumMovements(account.Movements)
	account.Balance = balance
	return balance
}

// SumMovements returns the sum of all movement amounts
func SumMovements(movements []model.Movement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		total = total.Add(m.Amount)
	}
	return total
}

// CloseAccount removes the account from the directory.
// Credentials must already have been checked by the caller.
func (e *Engine) CloseAccount(account *model.Account, dir *repository.Directory) error {
	if !dir.Remove(account) {
		return fmt.Errorf("failed to close account: %w", model.ErrAccountNotFound)
	}

	e.log.Info().
		Str("username", account.Username).
		Int("remaining_accounts", dir.Len()).
		Msg("Account closed")
	return nil
}
