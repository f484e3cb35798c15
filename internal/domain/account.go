// Package domain holds the banking core: clients, account variants, the
// transaction hierarchy and the per-account history with statement
// generation. Nothing in this package does I/O.
package domain

import (
	"github.com/shopspring/decimal"
)

// Account is the capability shared by every account variant. The set of
// variants is closed and chosen at construction time; variants differ only
// in the business rules they layer on top of Withdraw.
type Account interface {
	Number() int
	Branch() string
	Balance() decimal.Decimal
	Owner() *Client
	History() *History

	// Deposit and Withdraw mutate the balance only. Appending the matching
	// history record is the transaction's responsibility, so a rejected
	// operation leaves no trace anywhere.
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
}

// BaseAccount carries the state and the base rule set shared by all
// variants. The balance can only change through Deposit and Withdraw and
// never goes negative.
type BaseAccount struct {
	number  int
	branch  string
	balance decimal.Decimal
	owner   *Client
	history *History
}

// NewBaseAccount creates an account with a zero balance and an empty
// history. The owner is shared by reference: the registry and the client
// must see the same object.
func NewBaseAccount(owner *Client, number int, branch string) *BaseAccount {
	return &BaseAccount{
		number:  number,
		branch:  branch,
		balance: decimal.Zero,
		owner:   owner,
		history: NewHistory(),
	}
}

func (a *BaseAccount) Number() int              { return a.number }
func (a *BaseAccount) Branch() string           { return a.branch }
func (a *BaseAccount) Balance() decimal.Decimal { return a.balance }
func (a *BaseAccount) Owner() *Client           { return a.owner }
func (a *BaseAccount) History() *History        { return a.history }

// Deposit credits amount to the balance. Non-positive amounts are rejected
// with ErrInvalidAmount and leave the account untouched.
func (a *BaseAccount) Deposit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw debits amount from the balance. Non-positive amounts are rejected
// with ErrInvalidAmount, amounts above the current balance with
// ErrInsufficientFunds. No partial effects on rejection.
func (a *BaseAccount) Withdraw(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}
