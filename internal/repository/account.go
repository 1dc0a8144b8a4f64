package repository

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankist/internal/model"
)

// Directory is the in-memory set of all accounts.
// Accounts are keyed by ID so removal never depends on a position.
type Directory struct {
	accounts map[uuid.UUID]*model.Account
	order    []uuid.UUID
}

// NewDirectory creates a Directory holding the given accounts in order
func NewDirectory(accounts ...*model.Account) *Directory {
	d := &Directory{
		accounts: make(map[uuid.UUID]*model.Account, len(accounts)),
	}
	for _, acc := range accounts {
		d.insert(acc)
	}
	d.RegenerateUsernames()
	return d
}

// Add inserts an account and refreshes usernames
func (d *Directory) Add(account *model.Account) {
	d.insert(account)
	d.RegenerateUsernames()
}

func (d *Directory) insert(account *model.Account) {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if _, exists := d.accounts[account.ID]; exists {
		return
	}
	d.accounts[account.ID] = account
	d.order = append(d.order, account.ID)
}

// Get retrieves an account by its ID
func (d *Directory) Get(id uuid.UUID) (*model.Account, error) {
	acc, ok := d.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return acc, nil
}

// FindByUsername returns the account whose derived username matches exactly
func (d *Directory) FindByUsername(username string) (*model.Account, error) {
	for _, id := range d.order {
		if acc := d.accounts[id]; acc.Username == username {
			return acc, nil
		}
	}
	return nil, model.ErrAccountNotFound
}

// FindByCredentials resolves a username and checks the pin.
// Unknown user and wrong pin both return ErrInvalidCredentials.
func (d *Directory) FindByCredentials(username string, pin int) (*model.Account, error) {
	acc, err := d.FindByUsername(username)
	if err != nil || acc.PIN != pin {
		return nil, model.ErrInvalidCredentials
	}
	return acc, nil
}

// Remove deletes the account from the directory.
// Returns false when the account is not present.
func (d *Directory) Remove(account *model.Account) bool {
	if account == nil {
		return false
	}
	held, ok := d.accounts[account.ID]
	if !ok || held != account {
		return false
	}

	delete(d.accounts, account.ID)
	for i, id := range d.order {
		if id == account.ID {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}

	d.RegenerateUsernames()
	return true
}

// RegenerateUsernames recomputes every username from the current owner.
// Safe to call any number of times.
func (d *Directory) RegenerateUsernames() {
	for _, acc := range d.accounts {
		acc.Username = model.DeriveUsername(acc.Owner)
	}
}

// List returns the accounts in insertion order
func (d *Directory) List() []*model.Account {
	out := make([]*model.Account, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.accounts[id])
	}
	return out
}

// Len returns the number of accounts in the directory
func (d *Directory) Len() int {
	return len(d.order)
}

// TotalBalance sums the movements of every account
func (d *Directory) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, acc := range d.accounts {
		for _, m := range acc.Movements {
			total = total.Add(m.Amount)
		}
	}
	return total
}
