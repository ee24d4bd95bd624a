package session

import (
	"context"

	"github.com/MrJamesThe3rd/paygrow/internal/account"
	"github.com/MrJamesThe3rd/paygrow/internal/transaction"
)

//go:generate mockgen -source=gateway.go -destination=gateway_mock.go -package=session

// Gateway persists an account together with its ledger.
type Gateway interface {
	// Load returns ErrNotFound when nothing is stored for phone.
	Load(ctx context.Context, phone string) (*account.Account, transaction.Ledger, error)
	// Save stores acc and ledger as one unit, replacing what was there.
	Save(ctx context.Context, acc account.Account, ledger transaction.Ledger) error
}
