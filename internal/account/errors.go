package account

import (
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/paygrow/internal/money"
)

var (
	// ErrInvalidInput is returned for non-positive amounts, a missing vendor
	// or a malformed multiplier.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientFunds is returned when a payment plus its boosted
	// savings would overdraw the main balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientSavings is returned when a withdrawal exceeds the savings pot.
	ErrInsufficientSavings = errors.New("insufficient savings")
)

// InsufficientFundsError provides details about a rejected payment.
type InsufficientFundsError struct {
	Balance  int64
	Required int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %s, required %s",
		money.Format(e.Balance), money.Format(e.Required))
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// InsufficientSavingsError provides details about a rejected withdrawal.
type InsufficientSavingsError struct {
	Saved     int64
	Requested int64
}

func (e *InsufficientSavingsError) Error() string {
	return fmt.Sprintf("insufficient savings: saved %s, requested %s",
		money.Format(e.Saved), money.Format(e.Requested))
}

func (e *InsufficientSavingsError) Unwrap() error {
	return ErrInsufficientSavings
}

func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
