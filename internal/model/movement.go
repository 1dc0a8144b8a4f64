package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType classifies a movement for display
type MovementType string

const (
	MovementTypeDeposit    MovementType = "deposit"
	MovementTypeWithdrawal MovementType = "withdrawal"
)

// Movement is a single ledger entry on an account.
// Positive amounts are deposits, negative amounts are withdrawals.
// Movements are never edited once appended.
type Movement struct {
	CreatedAt time.Time       `json:"created_at"`
	Amount    decimal.Decimal `json:"amount"`
}

// NewMovement creates a movement stamped with the given instant
func NewMovement(at time.Time, amount decimal.Decimal) Movement {
	return Movement{CreatedAt: at, Amount: amount}
}

// Type returns deposit for positive amounts and withdrawal otherwise
func (m Movement) Type() MovementType {
	if m.Amount.IsPositive() {
		return MovementTypeDeposit
	}
	return MovementTypeWithdrawal
}

// IsDeposit returns true if the movement adds money to the account
func (m Movement) IsDeposit() bool {
	return m.Amount.IsPositive()
}
