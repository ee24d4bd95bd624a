package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/paygrow/internal/account"
	"github.com/MrJamesThe3rd/paygrow/internal/badge"
	"github.com/MrJamesThe3rd/paygrow/internal/insight"
	"github.com/MrJamesThe3rd/paygrow/internal/metrics"
	"github.com/MrJamesThe3rd/paygrow/internal/money"
	"github.com/MrJamesThe3rd/paygrow/internal/roundup"
	"github.com/MrJamesThe3rd/paygrow/internal/transaction"
)

// Session is the live state of one account. Payments and withdrawals are
// applied one at a time; reads see the state between two operations.
type Session struct {
	svc *Service

	mu     sync.Mutex
	state  account.State
	closed bool
}

type PaymentRequest struct {
	Vendor     string
	Amount     int64
	Multiplier int
}

type PaymentResult struct {
	Account      account.Account
	Transaction  transaction.Transaction
	RoundUp      roundup.Result
	Tier         badge.Tier
	Notification string
}

type WithdrawalResult struct {
	Account      account.Account
	Transaction  transaction.Transaction
	Notification string
}

// Quote previews the effect of a payment without applying it.
type Quote struct {
	Multiplier          int
	RoundUp             roundup.Result
	MultiplierAvailable bool
	Affordable          bool
}

// Snapshot returns the current account and ledger.
func (s *Session) Snapshot() account.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// MultiplierAvailable reports whether boosted multipliers currently apply.
func (s *Session) MultiplierAvailable() bool {
	return roundup.MultiplierAvailable(s.Snapshot().Account.Balance, s.svc.settings.MultiplierThreshold)
}

func (s *Session) Quote(amount int64, multiplier int) (Quote, error) {
	if err := checkRequest(amount, multiplier); err != nil {
		return Quote{}, err
	}

	balance := s.Snapshot().Account.Balance
	threshold := s.svc.settings.MultiplierThreshold
	m := roundup.EffectiveMultiplier(multiplier, balance, threshold)
	ru := roundup.Compute(amount, m)

	return Quote{
		Multiplier:          m,
		RoundUp:             ru,
		MultiplierAvailable: roundup.MultiplierAvailable(balance, threshold),
		Affordable:          balance >= ru.TotalDeduction,
	}, nil
}

// Pay applies a payment. Below the multiplier threshold the multiplier is
// forced to 1. The notification is the badge message when a tier was earned,
// an insight on the savings otherwise.
func (s *Session) Pay(ctx context.Context, req PaymentRequest) (PaymentResult, error) {
	start := s.svc.now()

	res, err := s.pay(ctx, req)
	s.svc.metrics.RecordOperation(metrics.OpPayment, result(err), s.svc.now().Sub(start))

	if err != nil {
		return PaymentResult{}, err
	}

	s.svc.metrics.AddSaved(res.RoundUp.Savings)

	switch {
	case res.Tier.Earned():
		s.svc.metrics.RecordBadge(string(res.Tier))
		res.Notification = res.Tier.Message()
	case res.RoundUp.Savings > 0:
		res.Notification = s.savingsInsight(ctx, res.RoundUp.Savings)
	}

	slog.InfoContext(ctx, "payment applied",
		"phone", res.Account.Phone,
		"id", res.Transaction.ID,
		"amount", res.Transaction.Amount,
		"savings", res.RoundUp.Savings,
		"multiplier", res.Transaction.Multiplier,
	)

	return res, nil
}

func (s *Session) pay(ctx context.Context, req PaymentRequest) (PaymentResult, error) {
	if err := checkRequest(req.Amount, req.Multiplier); err != nil {
		return PaymentResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return PaymentResult{}, ErrSessionClosed
	}

	prev := s.state
	multiplier := roundup.EffectiveMultiplier(req.Multiplier, prev.Account.Balance, s.svc.settings.MultiplierThreshold)

	next, out, err := prev.ApplyPayment(account.PaymentParams{
		ID:         transaction.NewID(),
		Vendor:     req.Vendor,
		Amount:     req.Amount,
		Multiplier: multiplier,
		At:         s.stamp(),
	})
	if err != nil {
		return PaymentResult{}, err
	}

	if err := s.commit(ctx, prev, next); err != nil {
		return PaymentResult{}, err
	}

	return PaymentResult{
		Account:     next.Account,
		Transaction: out.Transaction,
		RoundUp:     out.RoundUp,
		Tier:        out.Tier,
	}, nil
}

// Withdraw moves amount from the savings pot back to the main balance.
func (s *Session) Withdraw(ctx context.Context, amount int64) (WithdrawalResult, error) {
	start := s.svc.now()

	res, err := s.withdraw(ctx, amount)
	s.svc.metrics.RecordOperation(metrics.OpWithdrawal, result(err), s.svc.now().Sub(start))

	if err != nil {
		return WithdrawalResult{}, err
	}

	s.svc.metrics.AddWithdrawn(amount)
	res.Notification = fmt.Sprintf("%s withdrawn.", money.Format(amount))

	slog.InfoContext(ctx, "withdrawal applied",
		"phone", res.Account.Phone,
		"id", res.Transaction.ID,
		"amount", amount,
	)

	return res, nil
}

func (s *Session) withdraw(ctx context.Context, amount int64) (WithdrawalResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return WithdrawalResult{}, ErrSessionClosed
	}

	prev := s.state

	next, out, err := prev.ApplyWithdrawal(account.WithdrawalParams{
		ID:     transaction.NewID(),
		Amount: amount,
		At:     s.stamp(),
	})
	if err != nil {
		return WithdrawalResult{}, err
	}

	if err := s.commit(ctx, prev, next); err != nil {
		return WithdrawalResult{}, err
	}

	return WithdrawalResult{Account: next.Account, Transaction: out.Transaction}, nil
}

// close stops the session from applying further operations. It waits for an
// operation in progress to finish.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
}

// commit installs next and saves it, restoring prev when the save fails.
// Callers hold s.mu.
func (s *Session) commit(ctx context.Context, prev, next account.State) error {
	s.state = next

	if err := s.svc.gateway.Save(ctx, next.Account, next.Ledger); err != nil {
		s.state = prev
		slog.ErrorContext(ctx, "failed to persist account", "phone", next.Account.Phone, "error", err)

		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return nil
}

// stamp returns the record time for the next transaction, never older than
// the most recent one. Callers hold s.mu.
func (s *Session) stamp() time.Time {
	at := transaction.Timestamp(s.svc.now())

	if latest := s.state.Ledger.Recent(1); len(latest) == 1 && latest[0].Date.After(at) {
		return latest[0].Date
	}

	return at
}

func (s *Session) savingsInsight(ctx context.Context, amount int64) string {
	ctx, cancel := context.WithTimeout(ctx, s.svc.settings.InsightTimeout)
	defer cancel()

	text, err := s.svc.insights.InsightForSavings(ctx, amount)
	if err != nil {
		s.svc.metrics.RecordInsightFailure("savings_insight")
		slog.WarnContext(ctx, "failed to generate savings insight", "error", err)

		return insight.FallbackInsight(amount)
	}

	return text
}

// DailySavings returns the round-up totals of the last days days, oldest first.
func (s *Session) DailySavings(days int) []transaction.DaySavings {
	return s.Snapshot().Ledger.DailySavings(s.svc.now().In(s.svc.settings.Location), days)
}

func (s *Session) Cumulative(days int) []transaction.CumulativeSavings {
	return transaction.Cumulative(s.DailySavings(days))
}

func (s *Session) Investments(ctx context.Context) ([]insight.InvestmentSuggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, s.svc.settings.InsightTimeout)
	defer cancel()

	out, err := s.svc.insights.SuggestInvestments(ctx)
	if err != nil {
		return nil, s.insightFailure(ctx, "investments", err)
	}

	return out, nil
}

// Rewards suggests offers for the most recent distinct payment vendors.
func (s *Session) Rewards(ctx context.Context) ([]insight.RewardSuggestion, error) {
	vendors := s.Snapshot().Ledger.RecentVendors(insight.MaxRewardVendors, transaction.KindPayment)

	ctx, cancel := context.WithTimeout(ctx, s.svc.settings.InsightTimeout)
	defer cancel()

	out, err := s.svc.insights.SuggestRewards(ctx, vendors)
	if err != nil {
		return nil, s.insightFailure(ctx, "rewards", err)
	}

	return out, nil
}

// SavingsAnalysis comments on the savings of the default report window.
func (s *Session) SavingsAnalysis(ctx context.Context) (string, error) {
	daily := s.DailySavings(transaction.DefaultWindowDays)

	days := make([]insight.DaySavings, len(daily))
	for i, d := range daily {
		days[i] = insight.DaySavings{Date: d.Date, Savings: d.Savings}
	}

	ctx, cancel := context.WithTimeout(ctx, s.svc.settings.InsightTimeout)
	defer cancel()

	text, err := s.svc.insights.AnalyzeSavings(ctx, days)
	if err != nil {
		return "", s.insightFailure(ctx, "savings_analysis", err)
	}

	return text, nil
}

func (s *Session) insightFailure(ctx context.Context, kind string, err error) error {
	s.svc.metrics.RecordInsightFailure(kind)
	slog.WarnContext(ctx, "insight call failed", "kind", kind, "error", err)

	if errors.Is(err, insight.ErrSuggestionUnavailable) {
		return err
	}

	return fmt.Errorf("%w: %w", insight.ErrSuggestionUnavailable, err)
}

func checkRequest(amount int64, multiplier int) error {
	switch {
	case amount <= 0:
		return fmt.Errorf("%w: amount must be positive", account.ErrInvalidInput)
	case !roundup.ValidMultiplier(multiplier):
		return fmt.Errorf("%w: multiplier must be between %d and %d",
			account.ErrInvalidInput, roundup.MinMultiplier, roundup.MaxMultiplier)
	}

	return nil
}

func result(err error) string {
	switch {
	case err == nil:
		return metrics.ResultApplied
	case errors.Is(err, account.ErrInvalidInput):
		return metrics.ResultInvalidInput
	case errors.Is(err, account.ErrInsufficientFunds), errors.Is(err, account.ErrInsufficientSavings):
		return metrics.ResultRejected
	case errors.Is(err, ErrPersistence):
		return metrics.ResultPersistenceFailure
	default:
		return metrics.ResultError
	}
}
