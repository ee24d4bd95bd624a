package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Kind represents what moved money in a ledger record.
type Kind string

const (
	KindPayment    Kind = "payment"
	KindWithdrawal Kind = "withdrawal"
	// KindDeposit is reserved; no core operation produces it.
	KindDeposit Kind = "deposit"
)

func (k Kind) Valid() bool {
	switch k {
	case KindPayment, KindWithdrawal, KindDeposit:
		return true
	}

	return false
}

// WithdrawalVendor is the vendor recorded on savings withdrawals.
const WithdrawalVendor = "Savings Withdrawal"

// Transaction is an immutable ledger record.
type Transaction struct {
	ID            string
	Vendor        string
	Amount        int64 // Absolute amount moved, in paise
	Date          time.Time
	Kind          Kind
	RoundedAmount int64 // Savings attached to a payment, zero otherwise
	Multiplier    int   // Multiplier used for a payment, zero otherwise
}

// NewID returns a time-ordered unique identifier for a ledger record.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// Timestamp normalizes t to the precision records are stored with.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func NewPayment(id, vendor string, amount, savings int64, multiplier int, at time.Time) Transaction {
	return Transaction{
		ID:            id,
		Vendor:        vendor,
		Amount:        amount,
		Date:          Timestamp(at),
		Kind:          KindPayment,
		RoundedAmount: savings,
		Multiplier:    multiplier,
	}
}

func NewWithdrawal(id string, amount int64, at time.Time) Transaction {
	return Transaction{
		ID:     id,
		Vendor: WithdrawalVendor,
		Amount: amount,
		Date:   Timestamp(at),
		Kind:   KindWithdrawal,
	}
}
