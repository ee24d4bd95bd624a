package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/paygrow/internal/account"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
	"github.com/MrJamesThe3rd/paygrow/internal/transaction"
)

// Store is the SQL Gateway. Queries use $n placeholders, understood by both
// the pgx and sqlite3 drivers.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Load(ctx context.Context, phone string) (*account.Account, transaction.Ledger, error) {
	query := `
		SELECT phone, name, bank_account_ref, balance, total_saved, bronze, silver, gold
		FROM accounts
		WHERE phone = $1`

	var acc account.Account

	err := s.db.QueryRowContext(ctx, query, phone).Scan(
		&acc.Phone, &acc.Name, &acc.BankAccountRef, &acc.Balance, &acc.TotalSaved,
		&acc.Badges.Bronze, &acc.Badges.Silver, &acc.Badges.Gold,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.Ledger{}, session.ErrNotFound
		}

		return nil, transaction.Ledger{}, fmt.Errorf("getting account: %w", err)
	}

	ledger, err := s.loadLedger(ctx, phone)
	if err != nil {
		return nil, transaction.Ledger{}, err
	}

	return &acc, ledger, nil
}

func (s *Store) loadLedger(ctx context.Context, phone string) (transaction.Ledger, error) {
	query := `
		SELECT id, vendor, amount, occurred_at, kind, rounded_amount, multiplier
		FROM ledger_entries
		WHERE phone = $1
		ORDER BY seq DESC`

	rows, err := s.db.QueryContext(ctx, query, phone)
	if err != nil {
		return transaction.Ledger{}, fmt.Errorf("listing ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []transaction.Transaction

	for rows.Next() {
		var (
			tx   transaction.Transaction
			kind string
		)

		if err := rows.Scan(&tx.ID, &tx.Vendor, &tx.Amount, &tx.Date, &kind, &tx.RoundedAmount, &tx.Multiplier); err != nil {
			return transaction.Ledger{}, fmt.Errorf("scanning ledger entry: %w", err)
		}

		tx.Kind = transaction.Kind(kind)
		tx.Date = transaction.Timestamp(tx.Date)
		entries = append(entries, tx)
	}

	if err := rows.Err(); err != nil {
		return transaction.Ledger{}, fmt.Errorf("iterating ledger entries: %w", err)
	}

	return transaction.NewLedger(entries...), nil
}

// Save upserts the account and replaces its ledger rows in one database
// transaction. Rows are numbered oldest first.
func (s *Store) Save(ctx context.Context, acc account.Account, ledger transaction.Ledger) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	upsert := `
		INSERT INTO accounts (phone, name, bank_account_ref, balance, total_saved, bronze, silver, gold, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (phone) DO UPDATE SET
			name = excluded.name,
			bank_account_ref = excluded.bank_account_ref,
			balance = excluded.balance,
			total_saved = excluded.total_saved,
			bronze = excluded.bronze,
			silver = excluded.silver,
			gold = excluded.gold,
			updated_at = excluded.updated_at`

	_, err = dbTx.ExecContext(ctx, upsert,
		acc.Phone, acc.Name, acc.BankAccountRef, acc.Balance, acc.TotalSaved,
		acc.Badges.Bronze, acc.Badges.Silver, acc.Badges.Gold,
		transaction.Timestamp(s.now()),
	)
	if err != nil {
		return fmt.Errorf("upserting account: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM ledger_entries WHERE phone = $1`, acc.Phone); err != nil {
		return fmt.Errorf("clearing ledger entries: %w", err)
	}

	insert := `
		INSERT INTO ledger_entries (phone, seq, id, vendor, amount, occurred_at, kind, rounded_amount, multiplier)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	stmt, err := dbTx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("preparing ledger insert: %w", err)
	}
	defer stmt.Close()

	entries := ledger.Entries()
	for i, tx := range entries {
		seq := len(entries) - 1 - i

		_, err := stmt.ExecContext(ctx,
			acc.Phone, seq, tx.ID, tx.Vendor, tx.Amount, transaction.Timestamp(tx.Date),
			string(tx.Kind), tx.RoundedAmount, tx.Multiplier,
		)
		if err != nil {
			return fmt.Errorf("inserting ledger entry %s: %w", tx.ID, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
