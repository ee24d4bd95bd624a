package account

import (
	"time"

	"github.com/MrJamesThe3rd/paygrow/internal/http/api"
	"github.com/MrJamesThe3rd/paygrow/internal/money"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
	"github.com/MrJamesThe3rd/paygrow/internal/transaction"
)

type paymentResponse struct {
	Account      api.AccountResponse     `json:"account"`
	Transaction  api.TransactionResponse `json:"transaction"`
	Badge        string                  `json:"badge,omitempty"`
	Notification string                  `json:"notification,omitempty"`
}

type withdrawalResponse struct {
	Account      api.AccountResponse     `json:"account"`
	Transaction  api.TransactionResponse `json:"transaction"`
	Notification string                  `json:"notification"`
}

type quoteResponse struct {
	Amount                int64  `json:"amount"`
	Multiplier            int    `json:"multiplier"`
	Savings               int64  `json:"savings"`
	SavingsDisplay        string `json:"savings_display"`
	TotalDeduction        int64  `json:"total_deduction"`
	TotalDeductionDisplay string `json:"total_deduction_display"`
	MultiplierAvailable   bool   `json:"multiplier_available"`
	Affordable            bool   `json:"affordable"`
}

func toQuote(amount int64, q session.Quote) quoteResponse {
	return quoteResponse{
		Amount:                amount,
		Multiplier:            q.Multiplier,
		Savings:               q.RoundUp.Savings,
		SavingsDisplay:        money.Format(q.RoundUp.Savings),
		TotalDeduction:        q.RoundUp.TotalDeduction,
		TotalDeductionDisplay: money.Format(q.RoundUp.TotalDeduction),
		MultiplierAvailable:   q.MultiplierAvailable,
		Affordable:            q.Affordable,
	}
}

type daySavingsResponse struct {
	Date           string `json:"date"`
	Savings        int64  `json:"savings"`
	SavingsDisplay string `json:"savings_display"`
	Total          int64  `json:"total"`
}

type savingsResponse struct {
	Days         []daySavingsResponse `json:"days"`
	Total        int64                `json:"total"`
	TotalDisplay string               `json:"total_display"`
}

func toSavings(days []transaction.CumulativeSavings) savingsResponse {
	resp := savingsResponse{Days: make([]daySavingsResponse, len(days))}

	for i, d := range days {
		resp.Days[i] = daySavingsResponse{
			Date:           d.Date.Format(time.DateOnly),
			Savings:        d.Savings,
			SavingsDisplay: money.Format(d.Savings),
			Total:          d.Total,
		}
		resp.Total = d.Total
	}

	resp.TotalDisplay = money.Format(resp.Total)

	return resp
}
