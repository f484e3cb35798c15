package domain

// Client holds one or more accounts and is the actor that initiates
// transactions against them. Uniqueness of the tax identifier is enforced by
// the client registry, not here.
type Client struct {
	Name      string
	BirthDate string
	TaxID     string
	Address   string

	accounts []Account
}

// NewClient creates a client with no accounts.
func NewClient(name, birthDate, taxID, address string) *Client {
	return &Client{
		Name:      name,
		BirthDate: birthDate,
		TaxID:     taxID,
		Address:   address,
	}
}

// AddAccount appends an account to the client's set. Accounts are never
// removed.
func (c *Client) AddAccount(a Account) {
	c.accounts = append(c.accounts, a)
}

// Accounts returns a copy of the client's accounts in the order they were
// opened.
func (c *Client) Accounts() []Account {
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// PrimaryAccount returns the client's first account, or ErrNoAccounts when
// the client has none. Operations initiated on behalf of a client always act
// on the first account; letting the actor choose among multiple accounts is
// intentionally not supported.
func (c *Client) PrimaryAccount() (Account, error) {
	if len(c.accounts) == 0 {
		return nil, ErrNoAccounts
	}
	return c.accounts[0], nil
}

// Perform runs a transaction against one of the client's accounts.
func (c *Client) Perform(account Account, tx Transaction) error {
	return tx.Register(account)
}
