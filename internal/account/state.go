package account

import (
	"strings"
	"time"

	"github.com/MrJamesThe3rd/paygrow/internal/badge"
	"github.com/MrJamesThe3rd/paygrow/internal/roundup"
	"github.com/MrJamesThe3rd/paygrow/internal/transaction"
)

// State is an account together with its ledger. Operations never modify the
// receiver: they return the next State, or an error and no change at all, so
// the balance update and the ledger append are applied together or not at all.
type State struct {
	Account Account
	Ledger  transaction.Ledger
}

type PaymentParams struct {
	ID         string
	Vendor     string
	Amount     int64
	Multiplier int
	At         time.Time
}

type PaymentOutcome struct {
	Transaction transaction.Transaction
	RoundUp     roundup.Result
	Tier        badge.Tier
}

// ApplyPayment debits amount plus its round-up savings from the balance,
// credits the savings pot and promotes badges for any milestone crossed.
func (s State) ApplyPayment(p PaymentParams) (State, PaymentOutcome, error) {
	vendor := strings.TrimSpace(p.Vendor)

	switch {
	case p.Amount <= 0:
		return s, PaymentOutcome{}, invalidInput("amount must be positive")
	case vendor == "":
		return s, PaymentOutcome{}, invalidInput("vendor is required")
	case p.Multiplier < roundup.MinMultiplier:
		return s, PaymentOutcome{}, invalidInput("multiplier must be at least 1")
	}

	if err := s.checkRecord(p.ID, p.At); err != nil {
		return s, PaymentOutcome{}, err
	}

	ru := roundup.Compute(p.Amount, p.Multiplier)
	if s.Account.Balance < ru.TotalDeduction {
		return s, PaymentOutcome{}, &InsufficientFundsError{
			Balance:  s.Account.Balance,
			Required: ru.TotalDeduction,
		}
	}

	next := s
	next.Account.Balance -= ru.TotalDeduction
	next.Account.TotalSaved += ru.Savings

	var tier badge.Tier
	next.Account.Badges, tier = badge.Promote(s.Account.TotalSaved, next.Account.TotalSaved, s.Account.Badges)

	tx := transaction.NewPayment(p.ID, vendor, p.Amount, ru.Savings, p.Multiplier, p.At)
	next.Ledger = s.Ledger.Prepend(tx)

	return next, PaymentOutcome{Transaction: tx, RoundUp: ru, Tier: tier}, nil
}

type WithdrawalParams struct {
	ID     string
	Amount int64
	At     time.Time
}

type WithdrawalOutcome struct {
	Transaction transaction.Transaction
}

// ApplyWithdrawal moves amount from the savings pot back to the balance.
// Badges are never taken back.
func (s State) ApplyWithdrawal(p WithdrawalParams) (State, WithdrawalOutcome, error) {
	if p.Amount <= 0 {
		return s, WithdrawalOutcome{}, invalidInput("amount must be positive")
	}

	if err := s.checkRecord(p.ID, p.At); err != nil {
		return s, WithdrawalOutcome{}, err
	}

	if p.Amount > s.Account.TotalSaved {
		return s, WithdrawalOutcome{}, &InsufficientSavingsError{
			Saved:     s.Account.TotalSaved,
			Requested: p.Amount,
		}
	}

	next := s
	next.Account.Balance += p.Amount
	next.Account.TotalSaved = max(s.Account.TotalSaved-p.Amount, 0)

	tx := transaction.NewWithdrawal(p.ID, p.Amount, p.At)
	next.Ledger = s.Ledger.Prepend(tx)

	return next, WithdrawalOutcome{Transaction: tx}, nil
}

func (s State) checkRecord(id string, at time.Time) error {
	switch {
	case id == "":
		return invalidInput("transaction id is required")
	case at.IsZero():
		return invalidInput("transaction time is required")
	case s.Ledger.Contains(id):
		return invalidInput("duplicate transaction id " + id)
	}

	return nil
}
