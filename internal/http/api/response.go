package api

import (
	"time"

	"github.com/MrJamesThe3rd/paygrow/internal/account"
	"github.com/MrJamesThe3rd/paygrow/internal/money"
	"github.com/MrJamesThe3rd/paygrow/internal/transaction"
)

type BadgesResponse struct {
	Bronze int `json:"bronze"`
	Silver int `json:"silver"`
	Gold   int `json:"gold"`
}

type AccountResponse struct {
	Name                string         `json:"name"`
	Phone               string         `json:"phone"`
	BankAccount         string         `json:"bank_account"`
	Balance             int64          `json:"balance"`
	BalanceDisplay      string         `json:"balance_display"`
	TotalSaved          int64          `json:"total_saved"`
	TotalSavedDisplay   string         `json:"total_saved_display"`
	Badges              BadgesResponse `json:"badges"`
	MultiplierAvailable bool           `json:"multiplier_available"`
}

func ToAccount(acc account.Account, multiplierAvailable bool) AccountResponse {
	return AccountResponse{
		Name:                acc.Name,
		Phone:               acc.Phone,
		BankAccount:         acc.BankAccountRef,
		Balance:             acc.Balance,
		BalanceDisplay:      money.Format(acc.Balance),
		TotalSaved:          acc.TotalSaved,
		TotalSavedDisplay:   money.Format(acc.TotalSaved),
		Badges:              BadgesResponse(acc.Badges),
		MultiplierAvailable: multiplierAvailable,
	}
}

type TransactionResponse struct {
	ID                   string           `json:"id"`
	Vendor               string           `json:"vendor"`
	Amount               int64            `json:"amount"`
	AmountDisplay        string           `json:"amount_display"`
	Date                 time.Time        `json:"date"`
	Type                 transaction.Kind `json:"type"`
	RoundedAmount        int64            `json:"rounded_amount"`
	RoundedAmountDisplay string           `json:"rounded_amount_display"`
	Multiplier           int              `json:"multiplier,omitempty"`
}

func ToTransaction(tx transaction.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                   tx.ID,
		Vendor:               tx.Vendor,
		Amount:               tx.Amount,
		AmountDisplay:        money.Format(tx.Amount),
		Date:                 tx.Date,
		Type:                 tx.Kind,
		RoundedAmount:        tx.RoundedAmount,
		RoundedAmountDisplay: money.Format(tx.RoundedAmount),
		Multiplier:           tx.Multiplier,
	}
}

func ToTransactions(txs []transaction.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		out[i] = ToTransaction(tx)
	}

	return out
}
