package domain

import "github.com/shopspring/decimal"

// CheckingAccount is the account variant with a per-transaction withdrawal
// cap and a maximum number of withdrawals over the account's lifetime.
type CheckingAccount struct {
	*BaseAccount
	limit          decimal.Decimal
	maxWithdrawals int
}

// NewCheckingAccount builds a checking account owned by client. The caller
// is responsible for registering the account on the client and in the
// account registry.
func NewCheckingAccount(owner *Client, number int, branch string, limit decimal.Decimal, maxWithdrawals int) *CheckingAccount {
	return &CheckingAccount{
		BaseAccount:    NewBaseAccount(owner, number, branch),
		limit:          limit,
		maxWithdrawals: maxWithdrawals,
	}
}

// Limit is the maximum amount a single withdrawal may move.
func (a *CheckingAccount) Limit() decimal.Decimal {
	return a.limit
}

// MaxWithdrawals is the number of withdrawals the account permits.
func (a *CheckingAccount) MaxWithdrawals() int {
	return a.maxWithdrawals
}

// Withdraw applies the checking-specific rules before the base balance
// check, first match wins:
//
//  1. the count of prior withdrawals in the history has reached the cap
//  2. the amount exceeds the per-transaction limit
//  3. the base rules (positive amount, sufficient balance)
//
// The limit is checked before the balance so a client asking for more than
// their cap hears "exceeds limit" rather than "insufficient funds", even
// when the balance would cover the amount. The withdrawal count is derived
// from the history on every call, so it can never drift from the log.
func (a *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	if a.History().Count(KindWithdrawal) >= a.maxWithdrawals {
		return ErrWithdrawalCountExceeded
	}
	if amount.GreaterThan(a.limit) {
		return ErrExceedsWithdrawalLimit
	}
	return a.BaseAccount.Withdraw(amount)
}
