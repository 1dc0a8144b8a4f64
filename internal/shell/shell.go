// Package shell runs a line-oriented session against the ledger, one
// command per line.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/simonkvalheim/bankist/internal/model"
	"github.com/simonkvalheim/bankist/internal/presentation"
	"github.com/simonkvalheim/bankist/internal/session"
)

const helpText = `Commands:
  login <username> <pin>      open a session
  logout                      close the session
  transfer <username> <amt>   send money to another account
  loan <amt>                  request a loan
  close <username> <pin>      close the logged-in account
  sort                        toggle sorting movements by amount
  show                        print the account
  help                        print this help
  quit                        leave the shell
`

// errQuit stops the read loop
var errQuit = errors.New("quit")

// Shell reads commands and prints results
type Shell struct {
	session *session.Controller
	out     io.Writer
}

// New creates a Shell writing to out
func New(controller *session.Controller, out io.Writer) *Shell {
	return &Shell{session: controller, out: out}
}

// Run processes commands from in until EOF or quit
func (s *Shell) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	s.prompt()
	for scanner.Scan() {
		err := s.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.out, describe(err))
		}
		s.prompt()
	}
	return scanner.Err()
}

func (s *Shell) prompt() {
	if acc := s.session.Current(); acc != nil {
		fmt.Fprintf(s.out, "%s> ", acc.Username)
		return
	}
	fmt.Fprint(s.out, "> ")
}

// Exec runs a single command line
func (s *Shell) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "login":
		if len(args) != 2 {
			return usage("login <username> <pin>")
		}
		pin, err := strconv.Atoi(args[1])
		if err != nil {
			return model.ErrInvalidCredentials
		}
		if _, err := s.session.Login(args[0], pin); err != nil {
			return err
		}
		return s.show()

	case "logout":
		s.session.Logout()
		fmt.Fprintln(s.out, "Log in to get started")
		return nil

	case "transfer":
		if len(args) != 2 {
			return usage("transfer <username> <amount>")
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		if err := s.session.Transfer(amount, args[0]); err != nil {
			return err
		}
		return s.show()

	case "loan":
		if len(args) != 1 {
			return usage("loan <amount>")
		}
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}
		if err := s.session.RequestLoan(amount); err != nil {
			return err
		}
		return s.show()

	case "close":
		if len(args) != 2 {
			return usage("close <username> <pin>")
		}
		pin, err := strconv.Atoi(args[1])
		if err != nil {
			return model.ErrClosureDenied
		}
		if err := s.session.CloseCurrentAccount(args[0], pin); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Account closed. Log in to get started")
		return nil

	case "sort":
		view, err := s.session.ToggleSortAndRender()
		if err != nil {
			return err
		}
		return s.print(view)

	case "show":
		return s.show()

	case "help":
		fmt.Fprint(s.out, helpText)
		return nil

	case "quit", "exit":
		return errQuit

	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
}

func (s *Shell) show() error {
	view, err := s.session.Render()
	if err != nil {
		return err
	}
	return s.print(view)
}

// print renders a view, newest movement on top
func (s *Shell) print(view *presentation.View) error {
	fmt.Fprintf(s.out, "%s\nAs of %s\nBalance: %s\n\n", view.Welcome, view.DateLabel, view.BalanceLabel)

	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, row := range view.NewestFirst() {
		fmt.Fprintf(tw, "%d %s\t%s\t%s\t\n", row.Index, row.Type, row.DateLabel, row.Display)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\nIn: %s  Out: %s  Interest: %s\n",
		view.Summary.IncomeLabel, view.Summary.OutcomeLabel, view.Summary.InterestLabel)
	return nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	return model.ParseAmount(s)
}

func usage(form string) error {
	return fmt.Errorf("usage: %s", form)
}

// describe turns domain errors into the messages shown to the user
func describe(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		return "Credentials are invalid"
	case errors.Is(err, model.ErrNotLoggedIn):
		return "Log in to get started"
	case errors.Is(err, model.ErrInvalidAmount):
		return "Enter an amount with at most two decimals"
	default:
		return "Error: " + err.Error()
	}
}
