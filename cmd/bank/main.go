package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/minibank/internal/adapter/repository/memory"
	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/infrastructure/audit"
	"github.com/iho/minibank/internal/infrastructure/config"
	"github.com/iho/minibank/internal/infrastructure/idgen"
	"github.com/iho/minibank/internal/infrastructure/logger"
	"github.com/iho/minibank/internal/infrastructure/metrics"
	"github.com/iho/minibank/internal/usecase"
)

const mainMenu = `
========= MENU =========

 [d]   deposit
 [w]   withdraw
 [s]   statement
 [nc]  new client
 [na]  new account
 [la]  list accounts
 [q]   quit
`

const statementMenu = `
====== STATEMENT ======

 [a]  all movements
 [d]  deposits only
 [w]  withdrawals only
 [q]  back
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var auditPath string

	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Interactive retail banking ledger",
		Long: `An in-memory retail banking ledger driven by an interactive menu:
clients, checking accounts, deposits, withdrawals and statements.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(auditPath)
		},
	}

	cmd.Flags().StringVar(&auditPath, "audit-log", "", "audit log path (overrides AUDIT_LOG_PATH)")
	return cmd
}

func run(auditPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if auditPath != "" {
		cfg.AuditLogPath = auditPath
	}

	log := logger.New(os.Stderr, logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	auditFile, err := audit.OpenFile(cfg.AuditLogPath)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer auditFile.Close()

	limit, err := cfg.WithdrawalLimit()
	if err != nil {
		return fmt.Errorf("parse default withdrawal limit: %w", err)
	}

	bank := usecase.NewBank(
		memory.NewClientRegistry(),
		memory.NewAccountRegistry(),
		audit.New(auditFile),
		idgen.NewULIDGenerator(),
		metrics.New(prometheus.NewRegistry()),
		log,
		cfg.BranchCode,
	)

	log.Info().Str("audit_log", cfg.AuditLogPath).Msg("bank ready")

	defaults := accountDefaults{limit: limit, maxWithdrawals: cfg.DefaultMaxWithdrawals}
	menuLoop(bank, bufio.NewScanner(os.Stdin), os.Stdout, defaults)
	return nil
}

type accountDefaults struct {
	limit          decimal.Decimal
	maxWithdrawals int
}

func menuLoop(bank *usecase.Bank, in *bufio.Scanner, out io.Writer, defaults accountDefaults) {
	for {
		fmt.Fprint(out, mainMenu+"\n> ")
		if !in.Scan() {
			return
		}

		switch strings.ToLower(strings.TrimSpace(in.Text())) {
		case "d":
			doDeposit(bank, in, out)
		case "w":
			doWithdraw(bank, in, out)
		case "s":
			doStatement(bank, in, out)
		case "nc":
			doCreateClient(bank, in, out)
		case "na":
			doOpenAccount(bank, in, out, defaults)
		case "la":
			doListAccounts(bank, out)
		case "q":
			return
		default:
			fmt.Fprintln(out, "invalid option, please choose again")
		}
	}
}

// prompt prints label and reads one trimmed line. ok is false when input is
// exhausted.
func prompt(in *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

// promptAmount reads and parses a monetary amount. Malformed input is
// reported here; the core only ever sees well-formed decimals.
func promptAmount(in *bufio.Scanner, out io.Writer, label string) (decimal.Decimal, bool) {
	raw, ok := prompt(in, out, label)
	if !ok {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintf(out, "invalid amount %q\n", raw)
		return decimal.Zero, false
	}
	return amount, true
}

func doDeposit(bank *usecase.Bank, in *bufio.Scanner, out io.Writer) {
	taxID, ok := prompt(in, out, "client tax id: ")
	if !ok {
		return
	}
	amount, ok := promptAmount(in, out, "deposit amount: ")
	if !ok {
		return
	}

	if err := bank.Deposit(usecase.MovementInput{TaxID: taxID, Amount: amount}); err != nil {
		fmt.Fprintf(out, "deposit failed: %v\n", err)
		return
	}
	fmt.Fprintln(out, "deposit completed")
}

func doWithdraw(bank *usecase.Bank, in *bufio.Scanner, out io.Writer) {
	taxID, ok := prompt(in, out, "client tax id: ")
	if !ok {
		return
	}
	amount, ok := promptAmount(in, out, "withdrawal amount: ")
	if !ok {
		return
	}

	if err := bank.Withdraw(usecase.MovementInput{TaxID: taxID, Amount: amount}); err != nil {
		fmt.Fprintf(out, "withdrawal failed: %v\n", err)
		return
	}
	fmt.Fprintln(out, "withdrawal completed")
}

func doStatement(bank *usecase.Bank, in *bufio.Scanner, out io.Writer) {
	taxID, ok := prompt(in, out, "client tax id: ")
	if !ok {
		return
	}

	choice, ok := prompt(in, out, statementMenu+"\n> ")
	if !ok {
		return
	}

	var kind string
	switch strings.ToLower(choice) {
	case "a":
		kind = ""
	case "d":
		kind = string(domain.KindDeposit)
	case "w":
		kind = string(domain.KindWithdrawal)
	case "q":
		return
	default:
		fmt.Fprintln(out, "invalid option, please choose again")
		return
	}

	st, err := bank.Statement(usecase.StatementInput{TaxID: taxID, Kind: kind})
	if err != nil {
		fmt.Fprintf(out, "statement failed: %v\n", err)
		return
	}
	printStatement(out, st)
}

func printStatement(out io.Writer, st domain.Statement) {
	fmt.Fprintln(out, "\n========== STATEMENT ==========")
	if !st.HasRecords() {
		fmt.Fprintln(out, "no movements recorded")
	}
	for _, r := range st.Records {
		fmt.Fprintln(out, formatRecord(r))
	}
	fmt.Fprintf(out, "\nbalance:\t%s\n", st.Balance.StringFixed(2))
	fmt.Fprintln(out, "===============================")
}

func formatRecord(r domain.Record) string {
	return fmt.Sprintf("%-12s %12s   %s",
		r.Kind, r.Amount.StringFixed(2), r.Timestamp.Format("02-01-2006 15:04:05"))
}

func doCreateClient(bank *usecase.Bank, in *bufio.Scanner, out io.Writer) {
	taxID, ok := prompt(in, out, "tax id (digits only): ")
	if !ok {
		return
	}
	name, ok := prompt(in, out, "full name: ")
	if !ok {
		return
	}
	birthDate, ok := prompt(in, out, "birth date (dd-mm-yyyy): ")
	if !ok {
		return
	}
	address, ok := prompt(in, out, "address: ")
	if !ok {
		return
	}

	if _, err := bank.CreateClient(usecase.CreateClientInput{
		Name:      name,
		BirthDate: birthDate,
		TaxID:     taxID,
		Address:   address,
	}); err != nil {
		fmt.Fprintf(out, "client creation failed: %v\n", err)
		return
	}
	fmt.Fprintln(out, "client created")
}

func doOpenAccount(bank *usecase.Bank, in *bufio.Scanner, out io.Writer, defaults accountDefaults) {
	taxID, ok := prompt(in, out, "client tax id: ")
	if !ok {
		return
	}

	account, err := bank.OpenAccount(usecase.OpenAccountInput{
		TaxID:          taxID,
		Limit:          defaults.limit,
		MaxWithdrawals: defaults.maxWithdrawals,
	})
	if err != nil {
		fmt.Fprintf(out, "account creation failed: %v\n", err)
		return
	}
	fmt.Fprintf(out, "account %d created\n", account.Number())
}

func doListAccounts(bank *usecase.Bank, out io.Writer) {
	summaries := bank.ListAccounts()
	if len(summaries) == 0 {
		fmt.Fprintln(out, "no accounts open")
		return
	}
	for _, s := range summaries {
		fmt.Fprintf(out, "branch: %s\taccount: %d\tholder: %s\tbalance: %s\n",
			s.Branch, s.Number, s.Holder, s.Balance.StringFixed(2))
	}
}
