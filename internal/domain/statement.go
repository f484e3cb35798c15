package domain

import "github.com/shopspring/decimal"

// Statement is a derived view over an account's history: the records that
// matched the requested kind in chronological order, the same records
// partitioned by kind for display grouping, and the final balance.
type Statement struct {
	AccountNumber int
	Records       []Record
	Deposits      []Record
	Withdrawals   []Record
	Balance       decimal.Decimal
}

// HasRecords reports whether the statement contains any movement.
func (s Statement) HasRecords() bool {
	return len(s.Records) > 0
}

// BuildStatement assembles the statement for an account, keeping only the
// records whose kind matches filter. An empty filter keeps everything.
func BuildStatement(account Account, filter string) Statement {
	st := Statement{
		AccountNumber: account.Number(),
		Balance:       account.Balance(),
	}
	for r := range account.History().Filtered(filter) {
		st.Records = append(st.Records, r)
		switch r.Kind {
		case KindDeposit:
			st.Deposits = append(st.Deposits, r)
		case KindWithdrawal:
			st.Withdrawals = append(st.Withdrawals, r)
		}
	}
	return st
}
