package usecase

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/infrastructure/metrics"
)

// Bank orchestrates the operations exposed to the actor driving the system:
// client and account creation, deposits, withdrawals, statements and account
// listing. Every operation is recorded on the audit sink with its arguments
// and outcome; rejections are returned to the caller unchanged.
type Bank struct {
	clients  ClientRegistry
	accounts AccountRegistry
	audit    AuditSink
	idGen    IDGenerator
	metrics  *metrics.Metrics
	log      zerolog.Logger
	branch   string
}

// NewBank creates a Bank on top of the given registries and observers.
func NewBank(
	clients ClientRegistry,
	accounts AccountRegistry,
	audit AuditSink,
	idGen IDGenerator,
	m *metrics.Metrics,
	log zerolog.Logger,
	branch string,
) *Bank {
	return &Bank{
		clients:  clients,
		accounts: accounts,
		audit:    audit,
		idGen:    idGen,
		metrics:  m,
		log:      log,
		branch:   branch,
	}
}

// CreateClientInput represents input for registering a client.
type CreateClientInput struct {
	Name      string
	BirthDate string
	TaxID     string
	Address   string
}

// CreateClient registers a new client. The tax identifier must be valid and
// not yet registered.
func (b *Bank) CreateClient(input CreateClientInput) (client *domain.Client, err error) {
	defer func() {
		b.record("client.create", map[string]any{"tax_id": input.TaxID, "name": input.Name}, err)
	}()

	if err = domain.ValidateTaxID(input.TaxID); err != nil {
		return nil, err
	}
	if err = domain.ValidateClientName(input.Name); err != nil {
		return nil, err
	}

	client = domain.NewClient(input.Name, input.BirthDate, input.TaxID, input.Address)
	if err = b.clients.Add(client); err != nil {
		return nil, err
	}

	b.metrics.ClientsCreated.Inc()
	b.log.Info().Str("tax_id", client.TaxID).Msg("client created")
	return client, nil
}

// OpenAccountInput represents input for opening a checking account.
type OpenAccountInput struct {
	TaxID          string
	Limit          decimal.Decimal
	MaxWithdrawals int
}

// OpenAccount opens a checking account for an existing client. The account
// number is assigned sequentially by the registry, and the account is shared
// by reference between the registry and the owning client.
func (b *Bank) OpenAccount(input OpenAccountInput) (account domain.Account, err error) {
	defer func() {
		b.record("account.open", map[string]any{"tax_id": input.TaxID, "limit": input.Limit.String()}, err)
	}()

	client, err := b.clients.FindByTaxID(input.TaxID)
	if err != nil {
		return nil, err
	}

	number := b.accounts.NextNumber()
	acc := domain.NewCheckingAccount(client, number, b.branch, input.Limit, input.MaxWithdrawals)
	client.AddAccount(acc)
	b.accounts.Add(acc)

	b.metrics.AccountsOpened.Inc()
	b.log.Info().Str("tax_id", client.TaxID).Int("number", number).Msg("account opened")
	return acc, nil
}

// MovementInput represents input for a deposit or withdrawal on the client's
// primary account.
type MovementInput struct {
	TaxID  string
	Amount decimal.Decimal
}

// Deposit credits an amount to the primary account of the client identified
// by tax id.
func (b *Bank) Deposit(input MovementInput) (err error) {
	defer func() {
		b.record("deposit", map[string]any{"tax_id": input.TaxID, "amount": input.Amount.String()}, err)
	}()

	account, err := b.primaryAccount(input.TaxID)
	if err != nil {
		return err
	}
	if err = domain.ValidateAmount(input.Amount); err != nil {
		return err
	}

	if err = account.Owner().Perform(account, domain.NewDeposit(input.Amount)); err != nil {
		return err
	}

	b.metrics.Deposits.Inc()
	b.log.Info().Str("tax_id", input.TaxID).Str("amount", input.Amount.String()).Msg("deposit")
	return nil
}

// Withdraw debits an amount from the primary account of the client
// identified by tax id, under the account variant's rules.
func (b *Bank) Withdraw(input MovementInput) (err error) {
	defer func() {
		b.record("withdraw", map[string]any{"tax_id": input.TaxID, "amount": input.Amount.String()}, err)
	}()

	account, err := b.primaryAccount(input.TaxID)
	if err != nil {
		return err
	}
	if err = domain.ValidateAmount(input.Amount); err != nil {
		return err
	}

	if err = account.Owner().Perform(account, domain.NewWithdrawal(input.Amount)); err != nil {
		return err
	}

	b.metrics.Withdrawals.Inc()
	b.log.Info().Str("tax_id", input.TaxID).Str("amount", input.Amount.String()).Msg("withdrawal")
	return nil
}

// StatementInput represents input for generating a statement. Kind filters
// the records ("deposit", "withdrawal", case-insensitive); empty keeps all.
type StatementInput struct {
	TaxID string
	Kind  string
}

// Statement builds the filtered statement of the client's primary account.
func (b *Bank) Statement(input StatementInput) (st domain.Statement, err error) {
	defer func() {
		b.record("statement", map[string]any{"tax_id": input.TaxID, "kind": input.Kind}, err)
	}()

	account, err := b.primaryAccount(input.TaxID)
	if err != nil {
		return domain.Statement{}, err
	}

	b.metrics.Statements.Inc()
	return domain.BuildStatement(account, input.Kind), nil
}

// AccountSummary is the display form of an open account.
type AccountSummary struct {
	Branch  string
	Number  int
	Holder  string
	Balance decimal.Decimal
}

// ListAccounts returns a summary of every open account in creation order.
func (b *Bank) ListAccounts() []AccountSummary {
	accounts := b.accounts.List()
	out := make([]AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, AccountSummary{
			Branch:  account.Branch(),
			Number:  account.Number(),
			Holder:  account.Owner().Name,
			Balance: account.Balance(),
		})
	}
	return out
}

// primaryAccount resolves a client by tax id and picks their first account.
func (b *Bank) primaryAccount(taxID string) (domain.Account, error) {
	client, err := b.clients.FindByTaxID(taxID)
	if err != nil {
		return nil, err
	}
	return client.PrimaryAccount()
}

// record writes one audit entry and counts the rejection when err is a
// business rejection. It never changes the operation's outcome.
func (b *Bank) record(op string, args map[string]any, err error) {
	result := "success"
	if err != nil {
		result = err.Error()
		b.metrics.Rejections.WithLabelValues(rejectionReason(err)).Inc()
		b.log.Warn().Str("operation", op).Err(err).Msg("operation rejected")
	}

	b.audit.Record(AuditEntry{
		ID:        b.idGen.Generate(),
		Timestamp: time.Now().UTC(),
		Operation: op,
		Args:      args,
		Result:    result,
	})
}

// rejectionReason maps a rejection to its metric label.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrExceedsWithdrawalLimit):
		return "exceeds_withdrawal_limit"
	case errors.Is(err, domain.ErrWithdrawalCountExceeded):
		return "withdrawal_count_exceeded"
	case errors.Is(err, domain.ErrClientNotFound):
		return "client_not_found"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrDuplicateClient):
		return "duplicate_client"
	case errors.Is(err, domain.ErrNoAccounts):
		return "no_accounts"
	case errors.Is(err, domain.ErrInvalidTaxID):
		return "invalid_tax_id"
	case errors.Is(err, domain.ErrInvalidClientName):
		return "invalid_client_name"
	case errors.Is(err, domain.ErrAmountTooLarge):
		return "amount_too_large"
	default:
		return "other"
	}
}
