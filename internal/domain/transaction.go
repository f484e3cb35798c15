package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one attempted movement against an account. A transaction
// validates and applies itself through the account's own rules; only a
// successful application is recorded in the history.
type Transaction interface {
	Kind() TransactionKind
	Amount() decimal.Decimal

	// Register applies the transaction to the account. On success the
	// matching record is appended to the account's history and nil is
	// returned. On rejection the balance and the history are untouched and
	// the account's error is returned unchanged.
	Register(account Account) error
}

// Deposit credits its amount to an account.
type Deposit struct {
	amount decimal.Decimal
}

// NewDeposit creates a deposit of the given amount.
func NewDeposit(amount decimal.Decimal) *Deposit {
	return &Deposit{amount: amount}
}

func (d *Deposit) Kind() TransactionKind   { return KindDeposit }
func (d *Deposit) Amount() decimal.Decimal { return d.amount }

func (d *Deposit) Register(account Account) error {
	if err := account.Deposit(d.amount); err != nil {
		return err
	}
	account.History().Append(Record{
		Kind:      KindDeposit,
		Amount:    d.amount,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// Withdrawal debits its amount from an account. Which rules apply depends on
// the account variant it is registered against.
type Withdrawal struct {
	amount decimal.Decimal
}

// NewWithdrawal creates a withdrawal of the given amount.
func NewWithdrawal(amount decimal.Decimal) *Withdrawal {
	return &Withdrawal{amount: amount}
}

func (w *Withdrawal) Kind() TransactionKind   { return KindWithdrawal }
func (w *Withdrawal) Amount() decimal.Decimal { return w.amount }

func (w *Withdrawal) Register(account Account) error {
	if err := account.Withdraw(w.amount); err != nil {
		return err
	}
	account.History().Append(Record{
		Kind:      KindWithdrawal,
		Amount:    w.amount,
		Timestamp: time.Now().UTC(),
	})
	return nil
}
