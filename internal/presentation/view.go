package presentation

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankist/internal/ledger"
	"github.com/simonkvalheim/bankist/internal/model"
)

// MovementRow is one line of the movement list
type MovementRow struct {
	Index     int                `json:"index"` // 1-based position in the displayed order
	Type      model.MovementType `json:"type"`
	DateLabel string             `json:"date"`
	Amount    decimal.Decimal    `json:"amount"`
	Display   string             `json:"display"`
	CreatedAt time.Time          `json:"created_at"`
}

// SummaryView is a Summary with its formatted labels
type SummaryView struct {
	Summary
	IncomeLabel   string `json:"income_label"`
	OutcomeLabel  string `json:"outcome_label"`
	InterestLabel string `json:"interest_label"`
}

// View is the full display projection of the session account
type View struct {
	Welcome      string          `json:"welcome"`
	DateLabel    string          `json:"date"`
	Username     string          `json:"username"`
	Locale       string          `json:"locale"`
	Balance      decimal.Decimal `json:"balance"`
	BalanceLabel string          `json:"balance_label"`
	Sorted       bool            `json:"sorted"`
	Movements    []MovementRow   `json:"movements"`
	Summary      SummaryView     `json:"summary"`
}

// BuildView derives the display projection for an account at instant now
func BuildView(account *model.Account, sorted bool, now time.Time) *View {
	locale := account.Locale
	ordered := OrderedMovements(account, sorted)

	rows := make([]MovementRow, 0, len(ordered))
	for i, m := range ordered {
		rows = append(rows, MovementRow{
			Index:     i + 1,
			Type:      m.Type(),
			DateLabel: RelativeDateLabel(m.CreatedAt, now, locale),
			Amount:    m.Amount,
			Display:   FormatCurrency(m.Amount, locale),
			CreatedAt: m.CreatedAt,
		})
	}

	// Pure sum; the cached Account.Balance is left alone
	balance := ledger.SumMovements(account.Movements)
	summary := SummaryTotals(account.Movements)

	return &View{
		Welcome:      "Welcome back, " + account.FirstName() + "!",
		DateLabel:    FormatDateTime(now, locale),
		Username:     account.Username,
		Locale:       locale,
		Balance:      balance,
		BalanceLabel: FormatBalance(balance, locale),
		Sorted:       sorted,
		Movements:    rows,
		Summary: SummaryView{
			Summary:       summary,
			IncomeLabel:   FormatCurrency(summary.Income, locale),
			OutcomeLabel:  FormatCurrency(summary.Outcome, locale),
			InterestLabel: FormatCurrency(summary.Interest, locale),
		},
	}
}

// NewestFirst returns the rows with the last row on top, the way the
// movement list is stacked on screen
func (v *View) NewestFirst() []MovementRow {
	rows := slices.Clone(v.Movements)
	slices.Reverse(rows)
	return rows
}
