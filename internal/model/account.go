package model

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents a customer account held in the directory
type Account struct {
	ID           uuid.UUID       `json:"id"`
	Owner        string          `json:"owner"`
	Username     string          `json:"username"`
	PIN          int             `json:"-"`             // Never serialize the pin
	InterestRate decimal.Decimal `json:"interest_rate"` // Percent, e.g. 1.2 means 1.2%
	Locale       string          `json:"locale"`
	Movements    []Movement      `json:"movements"`

	// Balance is a cached projection of the movements.
	// Only trust it right after ledger.Engine.ComputeBalance.
	Balance decimal.Decimal `json:"balance"`
}

// NewAccount creates an account with a fresh ID and a derived username
func NewAccount(owner string, pin int, interestRate decimal.Decimal, locale string, movements []Movement) *Account {
	return &Account{
		ID:           uuid.New(),
		Owner:        owner,
		Username:     DeriveUsername(owner),
		PIN:          pin,
		InterestRate: interestRate,
		Locale:       locale,
		Movements:    movements,
	}
}

// FirstName returns the first token of the owner's name
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Append adds a movement to the end of the history
func (a *Account) Append(m Movement) {
	a.Movements = append(a.Movements, m)
}

// DeriveUsername builds the login name from an owner's display name:
// lowercase initials of every whitespace-separated token, in order.
// "Steven Thomas Williams" becomes "stw".
func DeriveUsername(owner string) string {
	var sb strings.Builder
	for _, token := range strings.Fields(strings.ToLower(owner)) {
		r, _ := utf8.DecodeRuneInString(token)
		sb.WriteRune(r)
	}
	return sb.String()
}
