package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankist/internal/model"
)

var (
	// DefaultInterestRate is the percentage used for the interest summary.
	// It is applied to every account regardless of Account.InterestRate.
	DefaultInterestRate = decimal.RequireFromString("1.2")

	// InterestThreshold is the minimum interest a single deposit must earn to count
	InterestThreshold = decimal.NewFromInt(1)

	hundred = decimal.NewFromInt(100)
)

// SumInterestEligibleDeposits computes amount*rate/100 for each deposit and
// sums only the contributions strictly greater than InterestThreshold.
// The threshold applies per deposit, not to the total.
func SumInterestEligibleDeposits(movements []model.Movement, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if !m.IsDeposit() {
			continue
		}
		interest := m.Amount.Mul(rate).Div(hundred)
		if interest.GreaterThan(InterestThreshold) {
			total = total.Add(interest)
		}
	}
	return total
}
