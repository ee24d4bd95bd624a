package account_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/paygrow/internal/account"
	"github.com/MrJamesThe3rd/paygrow/internal/badge"
	"github.com/MrJamesThe3rd/paygrow/internal/money"
	"github.com/MrJamesThe3rd/paygrow/internal/transaction"
)

var now = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func stateWith(balance, saved int64, badges badge.Badges) account.State {
	return account.State{
		Account: account.Account{
			Name:       "Alex Doe",
			Phone:      "9876543210",
			Balance:    balance,
			TotalSaved: saved,
			Badges:     badges,
		},
		Ledger: transaction.NewLedger(),
	}
}

func payment(amount int64, multiplier int) account.PaymentParams {
	return account.PaymentParams{
		ID:         transaction.NewID(),
		Vendor:     "Coffee Shop",
		Amount:     amount,
		Multiplier: multiplier,
		At:         now,
	}
}

func TestState_ApplyPayment(t *testing.T) {
	tests := []struct {
		name        string
		state       account.State
		params      account.PaymentParams
		wantBalance int64
		wantSaved   int64
		wantBadges  badge.Badges
		wantTier    badge.Tier
	}{
		{
			name:        "rounds up into savings and drains the balance",
			state:       stateWith(money.Rupees(100), 0, badge.Badges{}),
			params:      payment(money.Rupees(95), 1),
			wantBalance: 0,
			wantSaved:   money.Rupees(5),
		},
		{
			name:        "multiplier boosts savings",
			state:       stateWith(money.Rupees(1000), 0, badge.Badges{}),
			params:      payment(money.Rupees(95), 3),
			wantBalance: money.Rupees(1000 - 95 - 15),
			wantSaved:   money.Rupees(15),
		},
		{
			name:        "exact multiple of ten saves nothing",
			state:       stateWith(money.Rupees(1000), money.Rupees(40), badge.Badges{}),
			params:      payment(money.Rupees(120), 2),
			wantBalance: money.Rupees(880),
			wantSaved:   money.Rupees(40),
		},
		{
			name:        "crossing a milestone earns bronze",
			state:       stateWith(money.Rupees(1000), money.Rupees(98), badge.Badges{}),
			params:      payment(money.Rupees(95), 1),
			wantBalance: money.Rupees(900),
			wantSaved:   money.Rupees(103),
			wantBadges:  badge.Badges{Bronze: 1},
			wantTier:    badge.TierBronze,
		},
		{
			name:        "third bronze cascades to silver",
			state:       stateWith(money.Rupees(1000), money.Rupees(298), badge.Badges{Bronze: 2}),
			params:      payment(money.Rupees(91), 1),
			wantBalance: money.Rupees(900),
			wantSaved:   money.Rupees(307),
			wantBadges:  badge.Badges{Silver: 1},
			wantTier:    badge.TierSilver,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, outcome, err := tt.state.ApplyPayment(tt.params)
			require.NoError(t, err)

			assert.Equal(t, tt.wantBalance, next.Account.Balance)
			assert.Equal(t, tt.wantSaved, next.Account.TotalSaved)
			assert.Equal(t, tt.wantBadges, next.Account.Badges)
			assert.Equal(t, tt.wantTier, outcome.Tier)

			require.Equal(t, 1, next.Ledger.Len())
			tx := next.Ledger.Entries()[0]
			assert.Equal(t, outcome.Transaction, tx)
			assert.Equal(t, transaction.KindPayment, tx.Kind)
			assert.Equal(t, tt.params.Amount, tx.Amount)
			assert.Equal(t, tt.wantSaved-tt.state.Account.TotalSaved, tx.RoundedAmount)
			assert.Equal(t, tt.params.Multiplier, tx.Multiplier)
			assert.Equal(t, tt.params.Amount+tx.RoundedAmount, outcome.RoundUp.TotalDeduction)

			// The receiver is a snapshot and stays untouched.
			assert.Equal(t, 0, tt.state.Ledger.Len())
		})
	}
}

func TestState_ApplyPayment_InsufficientFunds(t *testing.T) {
	state := stateWith(money.Rupees(10), money.Rupees(7), badge.Badges{Bronze: 1})

	next, outcome, err := state.ApplyPayment(payment(money.Rupees(95), 1))

	require.ErrorIs(t, err, account.ErrInsufficientFunds)

	var fundsErr *account.InsufficientFundsError
	require.ErrorAs(t, err, &fundsErr)
	assert.Equal(t, money.Rupees(10), fundsErr.Balance)
	assert.Equal(t, money.Rupees(100), fundsErr.Required)

	assert.Equal(t, state, next)
	assert.Equal(t, account.PaymentOutcome{}, outcome)
	assert.Equal(t, 0, next.Ledger.Len())
}

func TestState_ApplyPayment_BoostedSavingsCountTowardsFunds(t *testing.T) {
	// 95 alone fits, 95 + 3x5 does not.
	state := stateWith(money.Rupees(105), 0, badge.Badges{})

	_, _, err := state.ApplyPayment(payment(money.Rupees(95), 3))
	assert.ErrorIs(t, err, account.ErrInsufficientFunds)
}

func TestState_ApplyPayment_InvalidInput(t *testing.T) {
	state := stateWith(money.Rupees(1000), 0, badge.Badges{})

	existing, _, err := state.ApplyPayment(payment(money.Rupees(10), 1))
	require.NoError(t, err)

	dup := payment(money.Rupees(20), 1)
	dup.ID = existing.Ledger.Entries()[0].ID

	tests := []struct {
		name   string
		state  account.State
		mutate func(p *account.PaymentParams)
	}{
		{name: "zero amount", state: state, mutate: func(p *account.PaymentParams) { p.Amount = 0 }},
		{name: "negative amount", state: state, mutate: func(p *account.PaymentParams) { p.Amount = -500 }},
		{name: "blank vendor", state: state, mutate: func(p *account.PaymentParams) { p.Vendor = "  " }},
		{name: "zero multiplier", state: state, mutate: func(p *account.PaymentParams) { p.Multiplier = 0 }},
		{name: "missing id", state: state, mutate: func(p *account.PaymentParams) { p.ID = "" }},
		{name: "missing time", state: state, mutate: func(p *account.PaymentParams) { p.At = time.Time{} }},
		{name: "duplicate id", state: existing, mutate: func(p *account.PaymentParams) { *p = dup }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := payment(money.Rupees(95), 1)
			tt.mutate(&p)

			next, _, err := tt.state.ApplyPayment(p)

			assert.ErrorIs(t, err, account.ErrInvalidInput)
			assert.Equal(t, tt.state, next)
		})
	}
}

func TestState_ApplyWithdrawal(t *testing.T) {
	state := stateWith(money.Rupees(200), money.Rupees(50), badge.Badges{Bronze: 2})

	next, outcome, err := state.ApplyWithdrawal(account.WithdrawalParams{
		ID:     "w-1",
		Amount: money.Rupees(50),
		At:     now,
	})
	require.NoError(t, err)

	assert.Equal(t, money.Rupees(250), next.Account.Balance)
	assert.Equal(t, int64(0), next.Account.TotalSaved)
	assert.Equal(t, badge.Badges{Bronze: 2}, next.Account.Badges)

	require.Equal(t, 1, next.Ledger.Len())
	tx := next.Ledger.Entries()[0]
	assert.Equal(t, outcome.Transaction, tx)
	assert.Equal(t, transaction.KindWithdrawal, tx.Kind)
	assert.Equal(t, transaction.WithdrawalVendor, tx.Vendor)
	assert.Zero(t, tx.RoundedAmount)
	assert.Zero(t, tx.Multiplier)
	assert.NoError(t, next.Ledger.Validate())
}

func TestState_ApplyWithdrawal_InsufficientSavings(t *testing.T) {
	state := stateWith(money.Rupees(200), money.Rupees(50), badge.Badges{})

	next, _, err := state.ApplyWithdrawal(account.WithdrawalParams{ID: "w-1", Amount: money.Rupees(60), At: now})

	require.ErrorIs(t, err, account.ErrInsufficientSavings)

	var savingsErr *account.InsufficientSavingsError
	require.ErrorAs(t, err, &savingsErr)
	assert.Equal(t, money.Rupees(50), savingsErr.Saved)
	assert.Equal(t, state, next)
}

func TestState_ApplyWithdrawal_InvalidInput(t *testing.T) {
	state := stateWith(money.Rupees(200), money.Rupees(50), badge.Badges{})

	_, _, err := state.ApplyWithdrawal(account.WithdrawalParams{ID: "w-1", Amount: 0, At: now})
	assert.ErrorIs(t, err, account.ErrInvalidInput)

	_, _, err = state.ApplyWithdrawal(account.WithdrawalParams{Amount: 100, At: now})
	assert.ErrorIs(t, err, account.ErrInvalidInput)
}

func TestState_SequenceKeepsLedgerValid(t *testing.T) {
	state := stateWith(money.Rupees(15450)+75, 0, badge.Badges{})

	var err error
	for i := 0; i < 40; i++ {
		p := payment(money.Rupees(91), 2)
		p.At = now.Add(time.Duration(i) * time.Minute)

		state, _, err = state.ApplyPayment(p)
		require.NoError(t, err)
	}

	// 40 payments x 18 rupees = 720 saved -> 7 bronze milestones -> 2 silver, 1 bronze.
	assert.Equal(t, money.Rupees(720), state.Account.TotalSaved)
	assert.Equal(t, badge.Badges{Bronze: 1, Silver: 2}, state.Account.Badges)
	assert.True(t, state.Account.Badges.Normalized())

	state, _, err = state.ApplyWithdrawal(account.WithdrawalParams{ID: "w", Amount: money.Rupees(720), At: now.Add(time.Hour)})
	require.NoError(t, err)

	assert.Zero(t, state.Account.TotalSaved)
	assert.Equal(t, money.Rupees(15450)+75-money.Rupees(40*91), state.Account.Balance)
	assert.Equal(t, 41, state.Ledger.Len())
	assert.NoError(t, state.Ledger.Validate())
}

func TestNew(t *testing.T) {
	a := account.New(account.SeedParams{
		Name:           "Alex Doe",
		Phone:          "9876543210",
		BankAccountRef: "001122334455",
		Balance:        1545075,
	})

	assert.Equal(t, "XXXX-XXXX-4455", a.BankAccountRef)
	assert.Equal(t, int64(1545075), a.Balance)
	assert.Zero(t, a.TotalSaved)
	assert.Equal(t, badge.Badges{}, a.Badges)
	assert.Equal(t, "XXXX-XXXX-12", account.MaskBankAccount(" 12 "))
}
