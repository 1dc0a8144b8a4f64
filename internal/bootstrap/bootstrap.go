package bootstrap

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankist/internal/model"
	"github.com/simonkvalheim/bankist/internal/repository"
)

type seedAccount struct {
	owner        string
	pin          int
	interestRate string
	locale       string
	movements    []seedMovement
}

type seedMovement struct {
	created string
	amount  int64
}

var seedAccounts = []seedAccount{
	{
		owner:        "Jonas Schmedtmann",
		pin:          1111,
		interestRate: "1.2",
		locale:       "en-US",
		movements: []seedMovement{
			{"2023-01-11T18:43:51.826Z", 200},
			{"2023-01-11T18:43:51.826Z", 450},
			{"2023-01-11T18:43:51.826Z", -400},
			{"2023-01-11T18:43:51.826Z", 3000},
			{"2023-02-03T18:43:51.826Z", -650},
			{"2023-02-05T18:43:51.826Z", -130},
			{"2023-02-09T18:43:51.826Z", 70},
			{"2023-02-10T18:43:51.826Z", 1300},
		},
	},
	{
		owner:        "Jessica Davis",
		pin:          2222,
		interestRate: "1.5",
		locale:       "uk-UA",
		movements: []seedMovement{
			{"2023-02-11T18:43:51.826Z", 5000},
			{"2023-02-11T18:43:51.826Z", 3400},
			{"2023-02-11T18:43:51.826Z", -150},
			{"2023-02-11T18:43:51.826Z", -790},
			{"2023-02-11T18:43:51.826Z", -3210},
			{"2023-02-11T18:43:51.826Z", -1000},
			{"2023-02-11T18:43:51.826Z", 8500},
			{"2023-02-11T18:43:51.826Z", -30},
		},
	},
	{
		owner:        "Steven Thomas Williams",
		pin:          3333,
		interestRate: "0.7",
		locale:       "de-DE",
		movements: []seedMovement{
			{"2023-02-11T18:43:51.826Z", 200},
			{"2023-02-11T18:43:51.826Z", -200},
			{"2023-02-11T18:43:51.826Z", 340},
			{"2023-02-11T18:43:51.826Z", -300},
			{"2023-02-11T18:43:51.826Z", -20},
			{"2023-02-11T18:43:51.826Z", 50},
			{"2023-02-11T18:43:51.826Z", 400},
			{"2023-02-11T18:43:51.826Z", -460},
		},
	},
	{
		owner:        "Sarah Smith",
		pin:          4444,
		interestRate: "1",
		locale:       "en-GB",
		movements: []seedMovement{
			{"2023-02-11T18:43:51.826Z", 430},
			{"2023-02-11T18:43:51.826Z", 1000},
			{"2023-02-11T18:43:51.826Z", 700},
			{"2023-02-11T18:43:51.826Z", 50},
			{"2023-02-11T18:43:51.826Z", 90},
		},
	},
}

// SeedAccounts builds a fresh copy of the fixed demo accounts.
// Every call returns new accounts with new IDs.
func SeedAccounts() []*model.Account {
	accounts := make([]*model.Account, 0, len(seedAccounts))
	for _, s := range seedAccounts {
		movements := make([]model.Movement, 0, len(s.movements))
		for _, m := range s.movements {
			created, err := time.Parse(time.RFC3339Nano, m.created)
			if err != nil {
				panic("bootstrap: bad seed timestamp " + m.created)
			}
			movements = append(movements, model.NewMovement(created, decimal.NewFromInt(m.amount)))
		}

		accounts = append(accounts, model.NewAccount(
			s.owner,
			s.pin,
			decimal.RequireFromString(s.interestRate),
			s.locale,
			movements,
		))
	}
	return accounts
}

// Initialize creates the account directory from the seed set.
// This should be called once on startup.
func Initialize(log zerolog.Logger) *repository.Directory {
	dir := repository.NewDirectory(SeedAccounts()...)

	for _, acc := range dir.List() {
		log.Debug().
			Str("username", acc.Username).
			Str("locale", acc.Locale).
			Int("movements", len(acc.Movements)).
			Msg("Seeded account")
	}
	log.Info().Int("accounts", dir.Len()).Msg("Account directory initialized")

	return dir
}
