package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestClient_PrimaryAccount(t *testing.T) {
	client := NewClient("Diego", "04-04-2000", "55566677788", "downtown")

	if _, err := client.PrimaryAccount(); !errors.Is(err, ErrNoAccounts) {
		t.Errorf("expected ErrNoAccounts, got %v", err)
	}

	first := NewCheckingAccount(client, 1, "0001", decimal.NewFromInt(500), 3)
	second := NewCheckingAccount(client, 2, "0001", decimal.NewFromInt(500), 3)
	client.AddAccount(first)
	client.AddAccount(second)

	got, err := client.PrimaryAccount()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// always the first account, even when more exist
	if got.Number() != first.Number() {
		t.Errorf("expected account %d, got %d", first.Number(), got.Number())
	}
}

func TestClient_AccountsReturnsCopy(t *testing.T) {
	client := NewClient("Diego", "04-04-2000", "55566677788", "downtown")
	client.AddAccount(NewCheckingAccount(client, 1, "0001", decimal.NewFromInt(500), 3))

	accounts := client.Accounts()
	accounts[0] = nil

	if client.Accounts()[0] == nil {
		t.Error("mutating the returned slice changed the client's accounts")
	}
}

func TestClient_Perform(t *testing.T) {
	client := NewClient("Diego", "04-04-2000", "55566677788", "downtown")
	acc := NewCheckingAccount(client, 1, "0001", decimal.NewFromInt(500), 3)
	client.AddAccount(acc)

	if err := client.Perform(acc, NewDeposit(decimal.NewFromInt(75))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !acc.Balance().Equal(decimal.NewFromInt(75)) {
		t.Errorf("expected balance 75, got %s", acc.Balance())
	}

	err := client.Perform(acc, NewWithdrawal(decimal.NewFromInt(100)))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}
}
