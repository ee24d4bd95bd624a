package store

import (
	"context"
	"sync"

	"github.com/MrJamesThe3rd/paygrow/internal/account"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
	"github.com/MrJamesThe3rd/paygrow/internal/transaction"
)

type record struct {
	account account.Account
	ledger  transaction.Ledger
}

// Memory is a Gateway that keeps everything in process memory.
type Memory struct {
	mu      sync.RWMutex
	records map[string]record
}

func NewMemory() *Memory {
	return &Memory{records: make(map[string]record)}
}

func (m *Memory) Load(_ context.Context, phone string) (*account.Account, transaction.Ledger, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[phone]
	if !ok {
		return nil, transaction.Ledger{}, session.ErrNotFound
	}

	acc := r.account

	return &acc, transaction.NewLedger(r.ledger.Entries()...), nil
}

func (m *Memory) Save(_ context.Context, acc account.Account, ledger transaction.Ledger) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[acc.Phone] = record{
		account: acc,
		ledger:  transaction.NewLedger(ledger.Entries()...),
	}

	return nil
}
