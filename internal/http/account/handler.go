package account

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/paygrow/internal/account"
	"github.com/MrJamesThe3rd/paygrow/internal/http/api"
	"github.com/MrJamesThe3rd/paygrow/internal/money"
	"github.com/MrJamesThe3rd/paygrow/internal/roundup"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
	"github.com/MrJamesThe3rd/paygrow/internal/transaction"
)

const defaultTransactionLimit = 50

type Handler struct {
	sessions *session.Service
}

func NewHandler(sessions *session.Service) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/account", h.get)
	r.Post("/payments/quote", h.quote)
	r.Post("/payments", h.pay)
	r.Post("/withdrawals", h.withdraw)
	r.Get("/transactions", h.transactions)
	r.Get("/savings/daily", h.dailySavings)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	sess, ok := api.Session(w, r, h.sessions)
	if !ok {
		return
	}

	api.JSON(w, http.StatusOK, api.ToAccount(sess.Snapshot().Account, sess.MultiplierAvailable()))
}

// Amounts are rupees, as JSON numbers or strings.
type paymentRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	Vendor     string          `json:"vendor"`
	Multiplier int             `json:"multiplier"`
}

func (req paymentRequest) multiplier() int {
	if req.Multiplier == 0 {
		return 1
	}

	return req.Multiplier
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !api.Decode(w, r, &req) {
		return
	}

	sess, ok := api.Session(w, r, h.sessions)
	if !ok {
		return
	}

	amount, err := paise(req.Amount)
	if err != nil {
		api.FromError(w, err)
		return
	}

	q, err := sess.Quote(amount, req.multiplier())
	if err != nil {
		api.FromError(w, err)
		return
	}

	api.JSON(w, http.StatusOK, toQuote(amount, q))
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !api.Decode(w, r, &req) {
		return
	}

	sess, ok := api.Session(w, r, h.sessions)
	if !ok {
		return
	}

	amount, err := paise(req.Amount)
	if err != nil {
		api.FromError(w, err)
		return
	}

	res, err := sess.Pay(r.Context(), session.PaymentRequest{
		Vendor:     req.Vendor,
		Amount:     amount,
		Multiplier: req.multiplier(),
	})
	if err != nil {
		api.FromError(w, err)
		return
	}

	api.JSON(w, http.StatusCreated, paymentResponse{
		Account:      api.ToAccount(res.Account, h.multiplierAvailable(res.Account.Balance)),
		Transaction:  api.ToTransaction(res.Transaction),
		Badge:        string(res.Tier),
		Notification: res.Notification,
	})
}

type withdrawalRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) withdraw(w http.ResponseWriter, r *http.Request) {
	var req withdrawalRequest
	if !api.Decode(w, r, &req) {
		return
	}

	sess, ok := api.Session(w, r, h.sessions)
	if !ok {
		return
	}

	amount, err := paise(req.Amount)
	if err != nil {
		api.FromError(w, err)
		return
	}

	res, err := sess.Withdraw(r.Context(), amount)
	if err != nil {
		api.FromError(w, err)
		return
	}

	api.JSON(w, http.StatusCreated, withdrawalResponse{
		Account:      api.ToAccount(res.Account, h.multiplierAvailable(res.Account.Balance)),
		Transaction:  api.ToTransaction(res.Transaction),
		Notification: res.Notification,
	})
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	limit, ok := positiveQuery(w, r, "limit", defaultTransactionLimit)
	if !ok {
		return
	}

	sess, ok := api.Session(w, r, h.sessions)
	if !ok {
		return
	}

	api.JSON(w, http.StatusOK, api.ToTransactions(sess.Snapshot().Ledger.Recent(limit)))
}

func (h *Handler) dailySavings(w http.ResponseWriter, r *http.Request) {
	days, ok := positiveQuery(w, r, "days", transaction.DefaultWindowDays)
	if !ok {
		return
	}

	sess, ok := api.Session(w, r, h.sessions)
	if !ok {
		return
	}

	api.JSON(w, http.StatusOK, toSavings(sess.Cumulative(days)))
}

// paise converts a request amount, reporting amounts that do not fit as
// invalid input.
func paise(d decimal.Decimal) (int64, error) {
	amount, err := money.FromDecimal(d)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", account.ErrInvalidInput, err)
	}

	return amount, nil
}

func (h *Handler) multiplierAvailable(balance int64) bool {
	return roundup.MultiplierAvailable(balance, h.sessions.MultiplierThreshold())
}

func positiveQuery(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, true
	}

	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		api.Error(w, http.StatusBadRequest, "invalid "+name, err)
		return 0, false
	}

	return n, true
}
