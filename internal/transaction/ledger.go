package transaction

import (
	"errors"
	"fmt"
	"slices"
)

var ErrInvalidLedger = errors.New("invalid ledger")

// Ledger is the ordered record history of one account, most recent first.
// It is an immutable value: Prepend returns a new Ledger and leaves the
// receiver, and any snapshot taken from it, untouched.
type Ledger struct {
	entries []Transaction
}

// NewLedger builds a ledger from records already in most-recent-first order.
func NewLedger(entries ...Transaction) Ledger {
	return Ledger{entries: slices.Clone(entries)}
}

// Prepend returns a ledger with tx as its most recent record.
func (l Ledger) Prepend(tx Transaction) Ledger {
	entries := make([]Transaction, 0, len(l.entries)+1)
	entries = append(entries, tx)
	entries = append(entries, l.entries...)

	return Ledger{entries: entries}
}

func (l Ledger) Len() int {
	return len(l.entries)
}

// Entries returns a copy of all records, most recent first.
func (l Ledger) Entries() []Transaction {
	return slices.Clone(l.entries)
}

// Recent returns up to n of the most recent records.
func (l Ledger) Recent(n int) []Transaction {
	if n < 0 || n > len(l.entries) {
		n = len(l.entries)
	}

	return slices.Clone(l.entries[:n])
}

func (l Ledger) Contains(id string) bool {
	return slices.ContainsFunc(l.entries, func(tx Transaction) bool { return tx.ID == id })
}

// Validate checks the record invariants: unique ids, positive amounts,
// non-negative payment savings, zeroed withdrawal savings and
// most-recent-first ordering.
func (l Ledger) Validate() error {
	seen := make(map[string]struct{}, len(l.entries))

	for i, tx := range l.entries {
		if tx.ID == "" {
			return fmt.Errorf("%w: record %d has no id", ErrInvalidLedger, i)
		}

		if _, dup := seen[tx.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidLedger, tx.ID)
		}

		seen[tx.ID] = struct{}{}

		if !tx.Kind.Valid() {
			return fmt.Errorf("%w: record %s has unknown kind %q", ErrInvalidLedger, tx.ID, tx.Kind)
		}

		if tx.Amount <= 0 {
			return fmt.Errorf("%w: record %s has non-positive amount", ErrInvalidLedger, tx.ID)
		}

		switch tx.Kind {
		case KindPayment:
			if tx.RoundedAmount < 0 || tx.Multiplier < 1 {
				return fmt.Errorf("%w: payment %s has negative savings or multiplier below 1", ErrInvalidLedger, tx.ID)
			}
		case KindWithdrawal:
			if tx.RoundedAmount != 0 || tx.Multiplier != 0 {
				return fmt.Errorf("%w: withdrawal %s carries savings", ErrInvalidLedger, tx.ID)
			}
		}

		if i > 0 && tx.Date.After(l.entries[i-1].Date) {
			return fmt.Errorf("%w: record %s is newer than its predecessor", ErrInvalidLedger, tx.ID)
		}
	}

	return nil
}
