package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/adapter/repository/memory"
	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/infrastructure/audit"
	"github.com/iho/minibank/internal/infrastructure/idgen"
	"github.com/iho/minibank/internal/infrastructure/metrics"
	"github.com/iho/minibank/internal/usecase"
)

func testBank() *usecase.Bank {
	return usecase.NewBank(
		memory.NewClientRegistry(),
		memory.NewAccountRegistry(),
		audit.Nop(),
		idgen.NewULIDGenerator(),
		metrics.New(prometheus.NewRegistry()),
		zerolog.Nop(),
		"0001",
	)
}

func runSession(t *testing.T, script string) string {
	t.Helper()

	var out bytes.Buffer
	in := bufio.NewScanner(strings.NewReader(script))
	defaults := accountDefaults{limit: decimal.NewFromInt(500), maxWithdrawals: 3}

	menuLoop(testBank(), in, &out, defaults)
	return out.String()
}

func TestMenuLoop_FullSession(t *testing.T) {
	script := strings.Join([]string{
		"nc",
		"12345678901",
		"Maria Silva",
		"10-10-1980",
		"main street, 1",
		"na",
		"12345678901",
		"d",
		"12345678901",
		"1000",
		"w",
		"12345678901",
		"600",
		"s",
		"12345678901",
		"a",
		"la",
		"q",
	}, "\n")

	out := runSession(t, script)

	if !strings.Contains(out, "client created") {
		t.Errorf("expected client creation confirmation, got:\n%s", out)
	}
	if !strings.Contains(out, "account 1 created") {
		t.Errorf("expected account creation confirmation, got:\n%s", out)
	}
	if !strings.Contains(out, "deposit completed") {
		t.Errorf("expected deposit confirmation, got:\n%s", out)
	}
	if !strings.Contains(out, "withdrawal failed") || !strings.Contains(out, "exceeds withdrawal limit") {
		t.Errorf("expected limit rejection, got:\n%s", out)
	}
	if !strings.Contains(out, "balance:\t1000.00") {
		t.Errorf("expected statement balance 1000.00, got:\n%s", out)
	}
	if !strings.Contains(out, "holder: Maria Silva") {
		t.Errorf("expected account listing, got:\n%s", out)
	}
}

func TestMenuLoop_InvalidOption(t *testing.T) {
	out := runSession(t, "zz\nq\n")

	if !strings.Contains(out, "invalid option") {
		t.Errorf("expected invalid option message, got:\n%s", out)
	}
}

func TestMenuLoop_MalformedAmountStaysOutOfCore(t *testing.T) {
	script := strings.Join([]string{
		"nc",
		"12345678901",
		"Maria Silva",
		"10-10-1980",
		"main street, 1",
		"na",
		"12345678901",
		"d",
		"12345678901",
		"ten",
		"q",
	}, "\n")

	out := runSession(t, script)

	if !strings.Contains(out, `invalid amount "ten"`) {
		t.Errorf("expected malformed amount report, got:\n%s", out)
	}
}

func TestFormatRecord(t *testing.T) {
	r := domain.Record{
		Kind:      domain.KindDeposit,
		Amount:    decimal.NewFromInt(1000),
		Timestamp: time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
	}

	got := formatRecord(r)

	if !strings.Contains(got, "deposit") || !strings.Contains(got, "1000.00") || !strings.Contains(got, "01-06-2024 12:30:00") {
		t.Errorf("unexpected record formatting: %q", got)
	}
}

func TestPromptAmount(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewScanner(strings.NewReader("12.50\n"))

	amount, ok := promptAmount(in, &out, "amount: ")
	if !ok {
		t.Fatal("expected ok")
	}
	if !amount.Equal(decimal.NewFromFloat(12.5)) {
		t.Errorf("expected 12.5, got %s", amount)
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	if cmd.Use != "bank" {
		t.Errorf("expected use bank, got %q", cmd.Use)
	}
	if cmd.Flags().Lookup("audit-log") == nil {
		t.Error("expected audit-log flag")
	}
}
