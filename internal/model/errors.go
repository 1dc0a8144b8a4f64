package model

import "errors"

var (
	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid username or pin")
	ErrNotLoggedIn        = errors.New("no account is logged in")
	ErrClosureDenied      = errors.New("closure denied: confirmation does not match the current account")

	// Transfer errors
	ErrInvalidTransfer   = errors.New("invalid transfer")
	ErrInvalidToAccount  = errors.New("invalid destination account")
	ErrSameAccount       = errors.New("source and destination accounts must be different")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Loan errors
	ErrLoanRejected        = errors.New("loan rejected")
	ErrNoQualifyingDeposit = errors.New("no deposit of at least 10% of the requested amount")
)
