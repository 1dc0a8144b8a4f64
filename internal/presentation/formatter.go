// Package presentation derives read-only display data from accounts.
// Nothing in this package modifies an account.
package presentation

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankist/internal/ledger"
	"github.com/simonkvalheim/bankist/internal/model"
)

// Summary holds the income, outcome and interest totals of a movement list
type Summary struct {
	Income   decimal.Decimal `json:"income"`
	Outcome  decimal.Decimal `json:"outcome"` // Positive magnitude of all withdrawals
	Interest decimal.Decimal `json:"interest"`
}

// OrderedMovements returns the movements in stored order, or a copy sorted
// ascending by amount when sorted is true. Ties keep their stored order.
func OrderedMovements(account *model.Account, sorted bool) []model.Movement {
	movements := slices.Clone(account.Movements)
	if sorted {
		slices.SortStableFunc(movements, func(a, b model.Movement) int {
			return a.Amount.Cmp(b.Amount)
		})
	}
	return movements
}

// DaysBetween returns the absolute distance between two instants in whole
// days, rounded to the nearest day.
func DaysBetween(a, b time.Time) int {
	diff := math.Abs(a.Sub(b).Hours()) / 24
	return int(math.Round(diff))
}

// RelativeDateLabel describes when a movement happened relative to now
func RelativeDateLabel(at, now time.Time, locale string) string {
	days := DaysBetween(now, at)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return FormatDate(at, locale)
	}
}

// SummaryTotals computes the income, outcome and interest shown under the
// movement list. Interest always uses ledger.DefaultInterestRate.
func SummaryTotals(movements []model.Movement) Summary {
	income, outcome := decimal.Zero, decimal.Zero
	for _, m := range movements {
		if m.IsDeposit() {
			income = income.Add(m.Amount)
		} else {
			outcome = outcome.Add(m.Amount)
		}
	}

	return Summary{
		Income:   income,
		Outcome:  outcome.Abs(),
		Interest: ledger.SumInterestEligibleDeposits(movements, ledger.DefaultInterestRate),
	}
}

// FormatCurrency renders an amount with two decimals, locale digit grouping
// and a trailing euro sign.
func FormatCurrency(amount decimal.Decimal, locale string) string {
	return formatAmount(amount, locale) + "€"
}

// FormatBalance renders the headline balance, e.g. "3,840.00 EUR"
func FormatBalance(amount decimal.Decimal, locale string) string {
	return formatAmount(amount, locale) + " EUR"
}
