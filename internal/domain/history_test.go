package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func seedHistory(h *History) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	h.Append(Record{Kind: KindDeposit, Amount: decimal.NewFromInt(100), Timestamp: base})
	h.Append(Record{Kind: KindWithdrawal, Amount: decimal.NewFromInt(40), Timestamp: base.Add(time.Minute)})
	h.Append(Record{Kind: KindDeposit, Amount: decimal.NewFromInt(25), Timestamp: base.Add(2 * time.Minute)})
}

func TestHistory_AppendPreservesOrder(t *testing.T) {
	h := NewHistory()
	seedHistory(h)

	if h.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", h.Len())
	}

	records := h.All()
	for i := 1; i < len(records); i++ {
		if records[i].Timestamp.Before(records[i-1].Timestamp) {
			t.Errorf("timestamps decreased at index %d", i)
		}
	}
}

func TestHistory_Filtered(t *testing.T) {
	tests := []struct {
		name        string
		filter      string
		expectKinds []TransactionKind
	}{
		{
			name:        "all records with empty filter",
			filter:      "",
			expectKinds: []TransactionKind{KindDeposit, KindWithdrawal, KindDeposit},
		},
		{
			name:        "deposits only",
			filter:      "deposit",
			expectKinds: []TransactionKind{KindDeposit, KindDeposit},
		},
		{
			name:        "withdrawals only",
			filter:      "withdrawal",
			expectKinds: []TransactionKind{KindWithdrawal},
		},
		{
			name:        "filter match is case-insensitive",
			filter:      "DEPOSIT",
			expectKinds: []TransactionKind{KindDeposit, KindDeposit},
		},
		{
			name:        "unknown kind matches nothing",
			filter:      "transfer",
			expectKinds: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory()
			seedHistory(h)

			var got []TransactionKind
			for r := range h.Filtered(tt.filter) {
				got = append(got, r.Kind)
			}

			if len(got) != len(tt.expectKinds) {
				t.Fatalf("expected %d records, got %d", len(tt.expectKinds), len(got))
			}
			for i, kind := range tt.expectKinds {
				if got[i] != kind {
					t.Errorf("record %d: expected kind %s, got %s", i, kind, got[i])
				}
			}
		})
	}
}

// Two traversals of the same filter are independent and identical: the
// sequence restarts from the first record on every range.
func TestHistory_FilteredRestartable(t *testing.T) {
	h := NewHistory()
	seedHistory(h)

	seq := h.Filtered("deposit")

	var first, second []decimal.Decimal
	for r := range seq {
		first = append(first, r.Amount)
	}
	for r := range seq {
		second = append(second, r.Amount)
	}

	if len(first) != len(second) {
		t.Fatalf("traversals differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("traversals differ at %d: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestHistory_FilteredEarlyStop(t *testing.T) {
	h := NewHistory()
	seedHistory(h)

	count := 0
	for range h.Filtered("") {
		count++
		if count == 1 {
			break
		}
	}

	if count != 1 {
		t.Fatalf("expected traversal to stop after 1 record, saw %d", count)
	}
}

func TestHistory_Count(t *testing.T) {
	h := NewHistory()
	seedHistory(h)

	if got := h.Count(KindDeposit); got != 2 {
		t.Errorf("expected 2 deposits, got %d", got)
	}
	if got := h.Count(KindWithdrawal); got != 1 {
		t.Errorf("expected 1 withdrawal, got %d", got)
	}
}

func TestHistory_AllReturnsCopy(t *testing.T) {
	h := NewHistory()
	seedHistory(h)

	records := h.All()
	records[0].Amount = decimal.NewFromInt(-999)

	if !h.All()[0].Amount.Equal(decimal.NewFromInt(100)) {
		t.Error("mutating the returned slice changed the log")
	}
}
