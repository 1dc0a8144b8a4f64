// Package session tracks the single logged-in account and routes operation
// requests to the ledger on its behalf.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankist/internal/ledger"
	"github.com/simonkvalheim/bankist/internal/model"
	"github.com/simonkvalheim/bankist/internal/presentation"
	"github.com/simonkvalheim/bankist/internal/repository"
)

// State is the session's position in the login state machine
type State string

const (
	StateLoggedOut State = "logged_out"
	StateLoggedIn  State = "logged_in"
)

// Controller owns the session state for one process.
// It is not safe for concurrent use.
type Controller struct {
	dir    *repository.Directory
	engine *ledger.Engine
	now    ledger.Clock
	log    zerolog.Logger

	state   State
	current *model.Account // Non-owning; nil while logged out
	id      uuid.UUID      // Changes on every login
	sorted  bool
}

// NewController creates a logged-out Controller over the directory
func NewController(dir *repository.Directory, engine *ledger.Engine, now ledger.Clock, log zerolog.Logger) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{
		dir:    dir,
		engine: engine,
		now:    now,
		log:    log.With().Str("component", "session").Logger(),
		state:  StateLoggedOut,
	}
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Current returns the logged-in account, or nil when logged out
func (c *Controller) Current() *model.Account {
	return c.current
}

// SessionID identifies the current login. uuid.Nil while logged out.
func (c *Controller) SessionID() uuid.UUID {
	return c.id
}

// Directory returns the account directory the session resolves against
func (c *Controller) Directory() *repository.Directory {
	return c.dir
}

// Login opens a session for the matching account.
// A failed login leaves any existing session untouched.
func (c *Controller) Login(username string, pin int) (*model.Account, error) {
	acc, err := c.dir.FindByCredentials(username, pin)
	if err != nil {
		c.log.Info().Msg("Login failed: invalid credentials")
		return nil, err
	}

	c.state = StateLoggedIn
	c.current = acc
	c.id = uuid.New()
	c.sorted = false
	c.engine.ComputeBalance(acc)

	c.log.Info().
		Str("username", acc.Username).
		Str("session_id", c.id.String()).
		Msg("Logged in")
	return acc, nil
}

// Logout clears the session. Logging out while logged out is a no-op.
func (c *Controller) Logout() {
	if c.state == StateLoggedIn {
		c.log.Info().Str("username", c.current.Username).Msg("Logged out")
	}
	c.state = StateLoggedOut
	c.current = nil
	c.id = uuid.Nil
	c.sorted = false
}

// Transfer sends amount from the session account to the named account
func (c *Controller) Transfer(amount decimal.Decimal, destinationUsername string) error {
	from, err := c.requireLogin()
	if err != nil {
		return err
	}

	// An unknown recipient is passed on as nil so the engine reports it
	to, _ := c.dir.FindByUsername(destinationUsername)

	_, err = c.engine.Transfer(from, to, amount)
	return err
}

// RequestLoan asks the ledger for a loan on the session account
func (c *Controller) RequestLoan(amount decimal.Decimal) error {
	acc, err := c.requireLogin()
	if err != nil {
		return err
	}

	_, err = c.engine.RequestLoan(acc, amount)
	return err
}

// CloseCurrentAccount removes the session account after re-checking its
// username and pin, then logs out.
func (c *Controller) CloseCurrentAccount(usernameConfirm string, pinConfirm int) error {
	acc, err := c.requireLogin()
	if err != nil {
		return err
	}

	if usernameConfirm != acc.Username || pinConfirm != acc.PIN {
		c.log.Info().Str("username", acc.Username).Msg("Closure denied: confirmation mismatch")
		return model.ErrClosureDenied
	}

	if err := c.engine.CloseAccount(acc, c.dir); err != nil {
		return err
	}

	c.Logout()
	return nil
}

// ToggleSortAndRender flips the movement sort order and returns the new view
func (c *Controller) ToggleSortAndRender() (*presentation.View, error) {
	if _, err := c.requireLogin(); err != nil {
		return nil, err
	}

	c.sorted = !c.sorted
	return c.Render()
}

// Render builds the display projection of the session account
func (c *Controller) Render() (*presentation.View, error) {
	acc, err := c.requireLogin()
	if err != nil {
		return nil, err
	}

	c.engine.ComputeBalance(acc)
	return presentation.BuildView(acc, c.sorted, c.now()), nil
}

func (c *Controller) requireLogin() (*model.Account, error) {
	if c.state != StateLoggedIn || c.current == nil {
		return nil, model.ErrNotLoggedIn
	}
	// The account may have been removed behind the session's back
	if _, err := c.dir.Get(c.current.ID); err != nil {
		c.Logout()
		return nil, fmt.Errorf("%w: %w", model.ErrNotLoggedIn, err)
	}
	return c.current, nil
}
