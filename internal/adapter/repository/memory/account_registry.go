package memory

import (
	"github.com/iho/minibank/internal/domain"
)

// AccountRegistry is the in-memory collection of open accounts. Accounts are
// shared by reference with their owning client, so balance mutations are
// visible from both sides.
type AccountRegistry struct {
	accounts []domain.Account
}

// NewAccountRegistry creates an empty account registry.
func NewAccountRegistry() *AccountRegistry {
	return &AccountRegistry{}
}

// Add registers an open account.
func (r *AccountRegistry) Add(account domain.Account) {
	r.accounts = append(r.accounts, account)
}

// FindByNumber returns the account with the given number, or
// ErrAccountNotFound.
func (r *AccountRegistry) FindByNumber(number int) (domain.Account, error) {
	for _, account := range r.accounts {
		if account.Number() == number {
			return account, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

// List returns the open accounts in creation order.
func (r *AccountRegistry) List() []domain.Account {
	out := make([]domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// NextNumber returns the number the next opened account should take.
// Numbers are sequential starting at 1.
func (r *AccountRegistry) NextNumber() int {
	return len(r.accounts) + 1
}
