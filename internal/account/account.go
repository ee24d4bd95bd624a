// Package account owns the balances of a user and the two operations that
// are allowed to change them.
package account

import (
	"strings"

	"github.com/MrJamesThe3rd/paygrow/internal/badge"
)

// Account is the balance record of one user, keyed by phone. Amounts are paise.
type Account struct {
	Name           string
	Phone          string
	BankAccountRef string
	Balance        int64
	TotalSaved     int64
	Badges         badge.Badges
}

// SeedParams describes a freshly created account.
type SeedParams struct {
	Name           string
	Phone          string
	BankAccountRef string
	Balance        int64
}

// New creates an account with an empty savings pot and no badges.
func New(p SeedParams) Account {
	return Account{
		Name:           p.Name,
		Phone:          p.Phone,
		BankAccountRef: MaskBankAccount(p.BankAccountRef),
		Balance:        p.Balance,
	}
}

// MaskBankAccount keeps only the last four characters of a bank reference.
func MaskBankAccount(ref string) string {
	r := []rune(strings.TrimSpace(ref))
	if len(r) > 4 {
		r = r[len(r)-4:]
	}

	return "XXXX-XXXX-" + string(r)
}
