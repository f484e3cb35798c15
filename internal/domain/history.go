package domain

import (
	"iter"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tags a history record with the movement that produced it.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
)

// Matches reports whether the kind matches a caller-supplied filter name.
// An empty filter matches every kind; the comparison is case-insensitive.
func (k TransactionKind) Matches(filter string) bool {
	return filter == "" || strings.EqualFold(string(k), filter)
}

// Record is one completed movement: what happened, how much, and when.
// Records are immutable once appended.
type Record struct {
	Kind      TransactionKind
	Amount    decimal.Decimal
	Timestamp time.Time
}

// History is the append-only, chronologically ordered log of completed
// transactions belonging to one account. Insertion order is chronological
// order; timestamps never decrease along the log.
type History struct {
	records []Record
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Append adds a record to the end of the log. It never validates the record;
// validation already happened when the transaction was applied.
func (h *History) Append(r Record) {
	h.records = append(h.records, r)
}

// Len returns the number of records in the log.
func (h *History) Len() int {
	return len(h.records)
}

// All returns a copy of the records in chronological order.
func (h *History) All() []Record {
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// Filtered returns a lazy sequence of the records whose kind matches filter,
// preserving chronological order. Every range over the returned sequence is
// an independent traversal starting from the first record; there is no
// shared cursor.
func (h *History) Filtered(filter string) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, r := range h.records {
			if !r.Kind.Matches(filter) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Count returns how many records of the given kind the log holds.
func (h *History) Count(kind TransactionKind) int {
	n := 0
	for _, r := range h.records {
		if r.Kind == kind {
			n++
		}
	}
	return n
}
