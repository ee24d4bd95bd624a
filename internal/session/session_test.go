package session_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/paygrow/internal/account"
	"github.com/MrJamesThe3rd/paygrow/internal/badge"
	"github.com/MrJamesThe3rd/paygrow/internal/insight"
	"github.com/MrJamesThe3rd/paygrow/internal/metrics"
	"github.com/MrJamesThe3rd/paygrow/internal/money"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
	"github.com/MrJamesThe3rd/paygrow/internal/session/store"
	"github.com/MrJamesThe3rd/paygrow/internal/transaction"
)

const phone = "9876543210"

var (
	clock    = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	settings = session.Settings{
		SeedName:            "Alex Doe",
		SeedBalance:         1545075,
		MultiplierThreshold: money.Rupees(10000),
		InsightTimeout:      time.Second,
		Location:            time.UTC,
	}
)

type fixture struct {
	gateway  *session.MockGateway
	insights *insight.MockProvider
	metrics  *metrics.Collector
	svc      *session.Service
}

func newFixture(t *testing.T, opts ...session.Option) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		gateway:  session.NewMockGateway(ctrl),
		insights: insight.NewMockProvider(ctrl),
		metrics:  metrics.New(),
	}

	opts = append([]session.Option{session.WithClock(func() time.Time { return clock })}, opts...)
	f.svc = session.NewService(f.gateway, f.insights, f.metrics, settings, opts...)

	return f
}

func (f *fixture) restore(t *testing.T, acc account.Account, ledger transaction.Ledger) *session.Session {
	t.Helper()

	f.gateway.EXPECT().Load(gomock.Any(), acc.Phone).Return(&acc, ledger, nil)

	sess, err := f.svc.Restore(context.Background(), acc.Phone)
	require.NoError(t, err)

	return sess
}

func seeded(balance, saved int64) account.Account {
	return account.Account{
		Name:           "Alex Doe",
		Phone:          phone,
		BankAccountRef: "XXXX-XXXX-1234",
		Balance:        balance,
		TotalSaved:     saved,
	}
}

func assertOperations(t *testing.T, m *metrics.Collector, expected string) {
	t.Helper()

	const header = `
# HELP paygrow_operations_total Payments and withdrawals by result
# TYPE paygrow_operations_total counter
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(header+expected), "paygrow_operations_total")
	require.NoError(t, err)
}

func TestService_Signup(t *testing.T) {
	f := newFixture(t)

	var saved account.Account

	f.gateway.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc account.Account, ledger transaction.Ledger) error {
			saved = acc
			assert.Equal(t, 0, ledger.Len())

			return nil
		})

	sess, err := f.svc.Signup(context.Background(), session.SignupParams{
		Phone:          phone,
		BankAccountRef: "001122334455",
	})
	require.NoError(t, err)

	state := sess.Snapshot()
	assert.Equal(t, saved, state.Account)
	assert.Equal(t, "Alex Doe", state.Account.Name)
	assert.Equal(t, int64(1545075), state.Account.Balance)
	assert.Equal(t, int64(0), state.Account.TotalSaved)
	assert.Equal(t, badge.Badges{}, state.Account.Badges)
	assert.Equal(t, "XXXX-XXXX-4455", state.Account.BankAccountRef)
	assert.True(t, sess.MultiplierAvailable())

	again, err := f.svc.Restore(context.Background(), phone)
	require.NoError(t, err)
	assert.Same(t, sess, again)
}

func TestService_Signup_Errors(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Signup(context.Background(), session.SignupParams{Phone: "  "})
	assert.ErrorIs(t, err, account.ErrInvalidInput)

	f.gateway.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err = f.svc.Signup(context.Background(), session.SignupParams{Phone: phone, Name: "Priya"})
	assert.ErrorIs(t, err, session.ErrPersistence)

	f.gateway.EXPECT().Load(gomock.Any(), phone).Return(nil, transaction.Ledger{}, session.ErrNotFound)

	_, err = f.svc.Restore(context.Background(), phone)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestService_Restore(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m *session.MockGateway)
		wantErr   error
	}{
		{
			name: "NotFound",
			setupMock: func(m *session.MockGateway) {
				m.EXPECT().Load(gomock.Any(), phone).Return(nil, transaction.Ledger{}, session.ErrNotFound)
			},
			wantErr: session.ErrNotFound,
		},
		{
			name: "GatewayError",
			setupMock: func(m *session.MockGateway) {
				m.EXPECT().Load(gomock.Any(), phone).Return(nil, transaction.Ledger{}, errors.New("connection reset"))
			},
			wantErr: session.ErrPersistence,
		},
		{
			name: "CorruptLedger",
			setupMock: func(m *session.MockGateway) {
				acc := seeded(1000, 0)
				older := transaction.NewPayment("a", "Cafe", 100, 900, 1, clock.Add(-time.Hour))
				newer := transaction.NewPayment("b", "Cafe", 100, 900, 1, clock)
				m.EXPECT().Load(gomock.Any(), phone).Return(&acc, transaction.NewLedger(older, newer), nil)
			},
			wantErr: transaction.ErrInvalidLedger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f.gateway)

			sess, err := f.svc.Restore(context.Background(), phone)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, sess)
		})
	}
}

func TestService_RestoreLoadsOnce(t *testing.T) {
	f := newFixture(t)
	sess := f.restore(t, seeded(1000, 0), transaction.NewLedger())

	again, err := f.svc.Restore(context.Background(), phone)
	require.NoError(t, err)
	assert.Same(t, sess, again)

	f.svc.Logout(phone)
	f.restore(t, seeded(1000, 0), transaction.NewLedger())
}

func TestService_ReplacedSessionsStopWriting(t *testing.T) {
	ctx := context.Background()
	gateway := store.NewMemory()
	svc := session.NewService(gateway, insight.NewMockProvider(gomock.NewController(t)), metrics.New(), settings,
		session.WithClock(func() time.Time { return clock }))

	signup := func() *session.Session {
		sess, err := svc.Signup(ctx, session.SignupParams{Phone: phone, BankAccountRef: "001122334455"})
		require.NoError(t, err)

		return sess
	}

	assertStored := func(want account.State) {
		acc, ledger, err := gateway.Load(ctx, phone)
		require.NoError(t, err)
		assert.Equal(t, want.Account, *acc)
		assert.True(t, slices.Equal(want.Ledger.Entries(), ledger.Entries()))
	}

	t.Run("Signup", func(t *testing.T) {
		old := signup()
		fresh := signup()
		require.NotSame(t, old, fresh)

		_, err := old.Pay(ctx, session.PaymentRequest{Vendor: "Cafe", Amount: 9500, Multiplier: 1})
		require.ErrorIs(t, err, session.ErrNotFound)

		_, err = old.Withdraw(ctx, 100)
		require.ErrorIs(t, err, session.ErrNotFound)

		live, err := svc.Restore(ctx, phone)
		require.NoError(t, err)
		assert.Same(t, fresh, live)
		assert.Equal(t, 0, live.Snapshot().Ledger.Len())
		assertStored(live.Snapshot())
	})

	t.Run("Logout", func(t *testing.T) {
		sess := signup()
		svc.Logout(phone)

		_, err := sess.Pay(ctx, session.PaymentRequest{Vendor: "Cafe", Amount: 9000, Multiplier: 1})
		require.ErrorIs(t, err, session.ErrSessionClosed)
		assertStored(sess.Snapshot())

		restored, err := svc.Restore(ctx, phone)
		require.NoError(t, err)
		assert.NotSame(t, sess, restored)
		assert.Equal(t, sess.Snapshot().Account, restored.Snapshot().Account)
	})
}

func TestSession_Pay(t *testing.T) {
	tests := []struct {
		name             string
		account          account.Account
		req              session.PaymentRequest
		setupMock        func(f *fixture)
		wantBalance      int64
		wantSaved        int64
		wantMultiplier   int
		wantTier         badge.Tier
		wantNotification string
	}{
		{
			name:    "BoostedAboveThreshold",
			account: seeded(1545075, 0),
			req:     session.PaymentRequest{Vendor: "Cafe", Amount: 9100, Multiplier: 2},
			setupMock: func(f *fixture) {
				f.insights.EXPECT().InsightForSavings(gomock.Any(), int64(1800)).Return("Nice one!", nil)
			},
			wantBalance:      1545075 - 10900,
			wantSaved:        1800,
			wantMultiplier:   2,
			wantNotification: "Nice one!",
		},
		{
			name:    "MultiplierForcedAtThreshold",
			account: seeded(money.Rupees(10000), 0),
			req:     session.PaymentRequest{Vendor: "Cafe", Amount: 9100, Multiplier: 3},
			setupMock: func(f *fixture) {
				f.insights.EXPECT().InsightForSavings(gomock.Any(), int64(900)).Return("Great job!", nil)
			},
			wantBalance:      money.Rupees(10000) - 10000,
			wantSaved:        900,
			wantMultiplier:   1,
			wantNotification: "Great job!",
		},
		{
			name:             "BadgeMessageReplacesInsight",
			account:          seeded(50000, 9500),
			req:              session.PaymentRequest{Vendor: "Cafe", Amount: 9100, Multiplier: 1},
			setupMock:        func(*fixture) {},
			wantBalance:      40000,
			wantSaved:        10400,
			wantMultiplier:   1,
			wantTier:         badge.TierBronze,
			wantNotification: "Bronze Badge Earned!",
		},
		{
			name:             "NoSavingsNoNotification",
			account:          seeded(50000, 0),
			req:              session.PaymentRequest{Vendor: "Cafe", Amount: 10000, Multiplier: 1},
			setupMock:        func(*fixture) {},
			wantBalance:      40000,
			wantSaved:        0,
			wantMultiplier:   1,
			wantNotification: "",
		},
		{
			name:    "InsightFailureFallsBack",
			account: seeded(50000, 0),
			req:     session.PaymentRequest{Vendor: "Cafe", Amount: 9100, Multiplier: 1},
			setupMock: func(f *fixture) {
				f.insights.EXPECT().InsightForSavings(gomock.Any(), int64(900)).Return("", insight.ErrSuggestionUnavailable)
			},
			wantBalance:      40000,
			wantSaved:        900,
			wantMultiplier:   1,
			wantNotification: insight.FallbackInsight(900),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			sess := f.restore(t, tt.account, transaction.NewLedger())

			var saved account.Account

			f.gateway.EXPECT().
				Save(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, acc account.Account, ledger transaction.Ledger) error {
					saved = acc
					assert.Equal(t, 1, ledger.Len())

					return nil
				})
			tt.setupMock(f)

			res, err := sess.Pay(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantBalance, res.Account.Balance)
			assert.Equal(t, tt.wantSaved, res.Account.TotalSaved)
			assert.Equal(t, tt.wantMultiplier, res.Transaction.Multiplier)
			assert.Equal(t, tt.wantTier, res.Tier)
			assert.Equal(t, tt.wantNotification, res.Notification)
			assert.Equal(t, transaction.KindPayment, res.Transaction.Kind)
			assert.Equal(t, clock, res.Transaction.Date)
			assert.Equal(t, res.Account, saved)
			assert.Equal(t, res.Account, sess.Snapshot().Account)

			assertOperations(t, f.metrics, `paygrow_operations_total{op="payment",result="applied"} 1
`)
		})
	}
}

func TestSession_Pay_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		account account.Account
		req     session.PaymentRequest
		wantErr error
		result  string
	}{
		{
			name:    "ZeroAmount",
			account: seeded(50000, 0),
			req:     session.PaymentRequest{Vendor: "Cafe", Amount: 0, Multiplier: 1},
			wantErr: account.ErrInvalidInput,
			result:  "invalid_input",
		},
		{
			name:    "MultiplierOutOfRange",
			account: seeded(money.Rupees(20000), 0),
			req:     session.PaymentRequest{Vendor: "Cafe", Amount: 9100, Multiplier: 4},
			wantErr: account.ErrInvalidInput,
			result:  "invalid_input",
		},
		{
			name:    "BlankVendor",
			account: seeded(50000, 0),
			req:     session.PaymentRequest{Vendor: " ", Amount: 9100, Multiplier: 1},
			wantErr: account.ErrInvalidInput,
			result:  "invalid_input",
		},
		{
			name:    "InsufficientFunds",
			account: seeded(9999, 0),
			req:     session.PaymentRequest{Vendor: "Cafe", Amount: 9100, Multiplier: 1},
			wantErr: account.ErrInsufficientFunds,
			result:  "rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			sess := f.restore(t, tt.account, transaction.NewLedger())
			before := sess.Snapshot()

			_, err := sess.Pay(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, sess.Snapshot())
			assertOperations(t, f.metrics, `paygrow_operations_total{op="payment",result="`+tt.result+`"} 1
`)
		})
	}
}

func TestSession_Pay_PersistenceFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	sess := f.restore(t, seeded(50000, 0), transaction.NewLedger())
	before := sess.Snapshot()

	f.gateway.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := sess.Pay(context.Background(), session.PaymentRequest{Vendor: "Cafe", Amount: 9100, Multiplier: 1})

	require.ErrorIs(t, err, session.ErrPersistence)
	assert.Equal(t, before, sess.Snapshot())
	assertOperations(t, f.metrics, `paygrow_operations_total{op="payment",result="persistence_failure"} 1
`)
}

func TestSession_Withdraw(t *testing.T) {
	f := newFixture(t)
	sess := f.restore(t, seeded(40000, 900), transaction.NewLedger(
		transaction.NewPayment("p1", "Cafe", 9100, 900, 1, clock.Add(-time.Hour)),
	))

	f.gateway.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := sess.Withdraw(context.Background(), 500)
	require.NoError(t, err)

	assert.Equal(t, int64(40500), res.Account.Balance)
	assert.Equal(t, int64(400), res.Account.TotalSaved)
	assert.Equal(t, "₹5.00 withdrawn.", res.Notification)
	assert.Equal(t, transaction.WithdrawalVendor, res.Transaction.Vendor)
	assert.Equal(t, 2, sess.Snapshot().Ledger.Len())

	_, err = sess.Withdraw(context.Background(), 401)
	assert.ErrorIs(t, err, account.ErrInsufficientSavings)

	_, err = sess.Withdraw(context.Background(), 0)
	assert.ErrorIs(t, err, account.ErrInvalidInput)

	assertOperations(t, f.metrics, `paygrow_operations_total{op="withdrawal",result="applied"} 1
paygrow_operations_total{op="withdrawal",result="invalid_input"} 1
paygrow_operations_total{op="withdrawal",result="rejected"} 1
`)
}

func TestSession_Withdraw_PersistenceFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	sess := f.restore(t, seeded(40000, 900), transaction.NewLedger(
		transaction.NewPayment("p1", "Cafe", 9100, 900, 1, clock.Add(-time.Hour)),
	))
	before := sess.Snapshot()

	f.gateway.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

	_, err := sess.Withdraw(context.Background(), 900)

	require.ErrorIs(t, err, session.ErrPersistence)
	assert.Equal(t, before, sess.Snapshot())
}

func TestSession_ConcurrentPayments(t *testing.T) {
	f := newFixture(t)
	sess := f.restore(t, seeded(1545075, 0), transaction.NewLedger())

	const n = 20

	f.gateway.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(n)
	f.insights.EXPECT().InsightForSavings(gomock.Any(), gomock.Any()).Return("ok", nil).AnyTimes()

	var wg sync.WaitGroup
	for range n {
		wg.Go(func() {
			_, err := sess.Pay(context.Background(), session.PaymentRequest{Vendor: "Cafe", Amount: 9100, Multiplier: 2})
			assert.NoError(t, err)
		})
	}

	wg.Wait()

	state := sess.Snapshot()
	assert.Equal(t, n, state.Ledger.Len())
	assert.Equal(t, int64(1545075-n*10900), state.Account.Balance)
	assert.Equal(t, int64(n*1800), state.Account.TotalSaved)
	assert.Equal(t, badge.Badges{Bronze: 0, Silver: 1}, state.Account.Badges)
	require.NoError(t, state.Ledger.Validate())
}

func TestSession_RecordTimesNeverGoBack(t *testing.T) {
	now := clock
	f := newFixture(t, session.WithClock(func() time.Time {
		now = now.Add(-time.Minute)
		return now
	}))

	sess := f.restore(t, seeded(50000, 0), transaction.NewLedger(
		transaction.NewPayment("p1", "Cafe", 10000, 0, 1, clock),
	))

	f.gateway.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := sess.Pay(context.Background(), session.PaymentRequest{Vendor: "Cafe", Amount: 10000, Multiplier: 1})
	require.NoError(t, err)

	assert.Equal(t, clock, res.Transaction.Date)
	require.NoError(t, sess.Snapshot().Ledger.Validate())
}

func TestSession_Quote(t *testing.T) {
	f := newFixture(t)
	sess := f.restore(t, seeded(money.Rupees(10000), 0), transaction.NewLedger())

	q, err := sess.Quote(9100, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, q.Multiplier)
	assert.False(t, q.MultiplierAvailable)
	assert.True(t, q.Affordable)
	assert.Equal(t, int64(900), q.RoundUp.Savings)
	assert.Equal(t, int64(10000), q.RoundUp.TotalDeduction)

	_, err = sess.Quote(9100, 0)
	assert.ErrorIs(t, err, account.ErrInvalidInput)
}

func TestSession_DailySavings(t *testing.T) {
	f := newFixture(t)
	sess := f.restore(t, seeded(50000, 1200), transaction.NewLedger(
		transaction.NewPayment("p3", "Cafe", 9100, 900, 1, clock.Add(-time.Hour)),
		transaction.NewWithdrawal("w1", 100, clock.Add(-24*time.Hour)),
		transaction.NewPayment("p2", "Grocer", 9700, 300, 1, clock.Add(-48*time.Hour)),
		transaction.NewPayment("p1", "Grocer", 9700, 300, 1, clock.Add(-10*24*time.Hour)),
	))

	daily := sess.DailySavings(7)
	require.Len(t, daily, 7)
	assert.Equal(t, int64(900), daily[6].Savings)
	assert.Equal(t, int64(0), daily[5].Savings)
	assert.Equal(t, int64(300), daily[4].Savings)
	assert.Equal(t, time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC), daily[0].Date)

	cumulative := sess.Cumulative(7)
	assert.Equal(t, int64(1200), cumulative[6].Total)

	f.insights.EXPECT().
		AnalyzeSavings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, days []insight.DaySavings) (string, error) {
			require.Len(t, days, transaction.DefaultWindowDays)
			assert.Equal(t, int64(900), days[6].Savings)

			return "good start", nil
		})

	text, err := sess.SavingsAnalysis(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "good start", text)
}

func TestSession_Rewards(t *testing.T) {
	f := newFixture(t)
	sess := f.restore(t, seeded(50000, 1200), transaction.NewLedger(
		transaction.NewPayment("p3", "Cafe", 9100, 900, 1, clock.Add(-time.Hour)),
		transaction.NewWithdrawal("w1", 100, clock.Add(-2*time.Hour)),
		transaction.NewPayment("p2", "Grocer", 9700, 300, 1, clock.Add(-3*time.Hour)),
		transaction.NewPayment("p1", "Cafe", 9700, 300, 1, clock.Add(-4*time.Hour)),
	))

	offers := insight.FallbackRewards()
	f.insights.EXPECT().SuggestRewards(gomock.Any(), []string{"Cafe", "Grocer"}).Return(offers, nil)

	got, err := sess.Rewards(context.Background())
	require.NoError(t, err)
	assert.Equal(t, offers, got)
}

func TestSession_InsightFailures(t *testing.T) {
	f := newFixture(t)
	sess := f.restore(t, seeded(50000, 0), transaction.NewLedger())

	f.insights.EXPECT().SuggestInvestments(gomock.Any()).Return(nil, errors.New("quota exceeded"))
	f.insights.EXPECT().SuggestRewards(gomock.Any(), gomock.Nil()).Return(nil, insight.ErrSuggestionUnavailable)
	f.insights.EXPECT().AnalyzeSavings(gomock.Any(), gomock.Any()).Return("", context.DeadlineExceeded)

	_, err := sess.Investments(context.Background())
	assert.ErrorIs(t, err, insight.ErrSuggestionUnavailable)

	_, err = sess.Rewards(context.Background())
	assert.ErrorIs(t, err, insight.ErrSuggestionUnavailable)

	_, err = sess.SavingsAnalysis(context.Background())
	assert.ErrorIs(t, err, insight.ErrSuggestionUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	count, err := testutil.GatherAndCount(f.metrics.Registry(), "paygrow_insight_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	assert.Equal(t, int64(50000), sess.Snapshot().Account.Balance)
}
