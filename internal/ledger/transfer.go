package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankist/internal/model"
)

// TransferResult contains the movements appended by a successful transfer
type TransferResult struct {
	Debit  model.Movement
	Credit model.Movement
}

// Transfer moves amount from one account to another.
// Validation order: recipient present, recipient distinct, amount positive,
// amount covered by the sender's fresh balance. Any failure wraps
// ErrInvalidTransfer and leaves both accounts untouched.
func (e *Engine) Transfer(from, to *model.Account, amount decimal.Decimal) (*TransferResult, error) {
	if err := e.validateTransfer(from, to, amount); err != nil {
		e.log.Info().
			Err(err).
			Str("amount", amount.String()).
			Msg("Transfer rejected")
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidTransfer, err)
	}

	debit, credit := buildTransferMovements(e.now(), amount)
	from.Append(debit)
	to.Append(credit)

	e.ComputeBalance(from)
	e.ComputeBalance(to)

	e.log.Info().
		Str("from", from.Username).
		Str("to", to.Username).
		Str("amount", amount.String()).
		Msg("Transfer completed")

	return &TransferResult{Debit: debit, Credit: credit}, nil
}

func (e *Engine) validateTransfer(from, to *model.Account, amount decimal.Decimal) error {
	if from == nil || to == nil {
		return model.ErrInvalidToAccount
	}
	if from == to || from.ID == to.ID {
		return model.ErrSameAccount
	}
	if !amount.IsPositive() {
		return model.ErrInvalidAmount
	}
	// Balance is recomputed here, the cache may be stale
	if !hasSufficientFunds(e.ComputeBalance(from), amount) {
		return model.ErrInsufficientFunds
	}
	return nil
}

// hasSufficientFunds checks if the balance covers the transfer amount
func hasSufficientFunds(balance, amount decimal.Decimal) bool {
	return balance.GreaterThanOrEqual(amount)
}

// buildTransferMovements creates the paired debit and credit for a transfer.
// Both carry the same instant and sum to zero.
func buildTransferMovements(at time.Time, amount decimal.Decimal) (debit, credit model.Movement) {
	return model.NewMovement(at, amount.Neg()), model.NewMovement(at, amount)
}
