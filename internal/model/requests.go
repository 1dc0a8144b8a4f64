package model

// LoginRequest is the payload for opening a session
type LoginRequest struct {
	Username string `json:"username"`
	PIN      int    `json:"pin"`
}

// Validate checks if the login request has required fields
func (r LoginRequest) Validate() error {
	if r.Username == "" {
		return ErrInvalidCredentials
	}
	return nil
}

// TransferRequest is the payload for moving money to another account.
// Amount stays a string until the transport layer parses it.
type TransferRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// Validate checks if the transfer request is valid
func (r TransferRequest) Validate() error {
	if r.To == "" {
		return ErrInvalidToAccount
	}
	if r.Amount == "" {
		return ErrInvalidAmount
	}
	return nil
}

// LoanRequest is the payload for requesting a loan
type LoanRequest struct {
	Amount string `json:"amount"`
}

// Validate checks if the loan request is valid
func (r LoanRequest) Validate() error {
	if r.Amount == "" {
		return ErrInvalidAmount
	}
	return nil
}

// CloseAccountRequest repeats the session credentials to confirm closure
type CloseAccountRequest struct {
	Username string `json:"username"`
	PIN      int    `json:"pin"`
}

// Validate checks if the close request has required fields
func (r CloseAccountRequest) Validate() error {
	if r.Username == "" {
		return ErrClosureDenied
	}
	return nil
}
