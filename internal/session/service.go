// Package session serializes the operations of each signed-in account and
// persists every applied transition through a Gateway.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/paygrow/internal/account"
	"github.com/MrJamesThe3rd/paygrow/internal/insight"
	"github.com/MrJamesThe3rd/paygrow/internal/metrics"
	"github.com/MrJamesThe3rd/paygrow/internal/transaction"
)

var (
	// ErrNotFound is returned by a Gateway when no account is stored for a phone.
	ErrNotFound = errors.New("account not found")

	// ErrPersistence is returned when a transition could not be saved. The
	// transition is not applied.
	ErrPersistence = errors.New("persistence failure")

	// ErrSessionClosed is returned by operations on a session that was logged
	// out or replaced by a new signup.
	ErrSessionClosed = fmt.Errorf("%w: session closed", ErrNotFound)
)

const DefaultInsightTimeout = 5 * time.Second

type Settings struct {
	SeedName            string
	SeedBalance         int64
	MultiplierThreshold int64
	InsightTimeout      time.Duration
	// Location sets the day boundaries of savings reports.
	Location *time.Location
}

type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

type Service struct {
	gateway  Gateway
	insights insight.Provider
	metrics  *metrics.Collector
	settings Settings
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewService(gateway Gateway, insights insight.Provider, m *metrics.Collector, settings Settings, opts ...Option) *Service {
	if settings.InsightTimeout <= 0 {
		settings.InsightTimeout = DefaultInsightTimeout
	}

	if settings.Location == nil {
		settings.Location = time.Local
	}

	s := &Service{
		gateway:  gateway,
		insights: insights,
		metrics:  m,
		settings: settings,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type SignupParams struct {
	Phone          string
	Name           string
	BankAccountRef string
}

// Signup creates a freshly seeded account for the phone and persists it,
// replacing any account and ledger stored for it before.
func (s *Service) Signup(ctx context.Context, p SignupParams) (*Session, error) {
	phone := strings.TrimSpace(p.Phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", account.ErrInvalidInput)
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = s.settings.SeedName
	}

	state := account.State{
		Account: account.New(account.SeedParams{
			Name:           name,
			Phone:          phone,
			BankAccountRef: p.BankAccountRef,
			Balance:        s.settings.SeedBalance,
		}),
		Ledger: transaction.NewLedger(),
	}

	// The fresh session stays locked until saved. The replaced one is closed
	// before the save and never writes again.
	sess := &Session{svc: s, state: state}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	s.mu.Lock()
	prev := s.sessions[phone]
	s.sessions[phone] = sess
	s.metrics.SetActiveSessions(len(s.sessions))
	s.mu.Unlock()

	if prev != nil {
		prev.close()
	}

	if err := s.gateway.Save(ctx, state.Account, state.Ledger); err != nil {
		sess.closed = true
		s.drop(phone, sess)

		return nil, fmt.Errorf("%w: saving new account: %w", ErrPersistence, err)
	}

	slog.InfoContext(ctx, "account created", "phone", phone)

	return sess, nil
}

// Restore returns the live session for phone, loading the stored account
// when there is none. It returns ErrNotFound for unknown phones.
func (s *Service) Restore(ctx context.Context, phone string) (*Session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[phone]
	s.mu.Unlock()

	if ok {
		return sess, nil
	}

	acc, ledger, err := s.gateway.Load(ctx, phone)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: loading account: %w", ErrPersistence, err)
	}

	if err := ledger.Validate(); err != nil {
		return nil, fmt.Errorf("restoring account %s: %w", phone, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[phone]; ok {
		return sess, nil
	}

	sess = &Session{svc: s, state: account.State{Account: *acc, Ledger: ledger}}
	s.sessions[phone] = sess
	s.metrics.SetActiveSessions(len(s.sessions))

	slog.InfoContext(ctx, "session restored", "phone", phone, "transactions", ledger.Len())

	return sess, nil
}

// Logout drops the live session. Stored data is kept; holders of the dropped
// session can no longer apply operations through it.
func (s *Service) Logout(phone string) {
	s.mu.Lock()
	sess, ok := s.sessions[phone]
	delete(s.sessions, phone)
	s.metrics.SetActiveSessions(len(s.sessions))
	s.mu.Unlock()

	if ok {
		sess.close()
	}
}

// drop removes sess from the live sessions unless it was replaced already.
func (s *Service) drop(phone string, sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessions[phone] == sess {
		delete(s.sessions, phone)
		s.metrics.SetActiveSessions(len(s.sessions))
	}
}

// MultiplierThreshold is the balance above which boosted multipliers apply.
func (s *Service) MultiplierThreshold() int64 {
	return s.settings.MultiplierThreshold
}
