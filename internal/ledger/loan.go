package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankist/internal/model"
)

// LoanQualifyingRatio is the share of a requested loan that at least one
// existing movement must reach for the loan to be approved.
var LoanQualifyingRatio = decimal.RequireFromString("0.1")

// RequestLoan grants a loan when amount is positive and the account holds a
// movement of at least 10% of it. On approval a single deposit is appended.
func (e *Engine) RequestLoan(account *model.Account, amount decimal.Decimal) (*model.Movement, error) {
	if err := checkLoanEligibility(account.Movements, amount); err != nil {
		e.log.Info().
			Err(err).
			Str("username", account.Username).
			Str("amount", amount.String()).
			Msg("Loan rejected")
		return nil, fmt.Errorf("%w: %w", model.ErrLoanRejected, err)
	}

	loan := model.NewMovement(e.now(), amount)
	account.Append(loan)
	e.ComputeBalance(account)

	e.log.Info().
		Str("username", account.Username).
		Str("amount", amount.String()).
		Msg("Loan approved")

	return &loan, nil
}

func checkLoanEligibility(movements []model.Movement, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return model.ErrInvalidAmount
	}

	threshold := amount.Mul(LoanQualifyingRatio)
	for _, m := range movements {
		if m.Amount.GreaterThanOrEqual(threshold) {
			return nil
		}
	}
	return model.ErrNoQualifyingDeposit
}
