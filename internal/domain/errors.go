package domain

import "errors"

var (
	// Account operation rejections
	ErrInvalidAmount           = errors.New("amount must be positive")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrExceedsWithdrawalLimit  = errors.New("amount exceeds withdrawal limit")
	ErrWithdrawalCountExceeded = errors.New("withdrawal count exceeded")

	// Registry errors
	ErrClientNotFound  = errors.New("client not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicateClient = errors.New("client with this tax id already registered")
	ErrNoAccounts      = errors.New("client has no accounts")
)
