// Package insight produces the textual suggestions shown next to the core
// flows: investment ideas, reward offers, weekly savings analysis and the
// note attached to a single round-up. Results are display-only and never
// feed back into balances.
package insight

import (
	"context"
	"errors"
	"time"
)

// SuggestionCount is the number of items every suggestion call must return.
const SuggestionCount = 3

// MaxRewardVendors caps how many recent vendors are sent for reward offers.
const MaxRewardVendors = 10

// ErrSuggestionUnavailable is returned when a suggestion call fails or
// returns data that does not match the expected shape.
var ErrSuggestionUnavailable = errors.New("suggestion unavailable")

// Static messages shown in place of a failed call.
const (
	MsgInvestmentsUnavailable = "Could not fetch investment suggestions. Please try again later."
	MsgRewardsUnavailable     = "Could not fetch rewards. Please try again later."
	MsgAnalysisUnavailable    = "Sorry, we couldn't analyze your savings right now."
)

type InvestmentType string

const (
	InvestmentStock      InvestmentType = "Stock"
	InvestmentMutualFund InvestmentType = "Mutual Fund"
	InvestmentETF        InvestmentType = "ETF"
	InvestmentCrypto     InvestmentType = "Crypto"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

type InvestmentSuggestion struct {
	Name        string         `json:"name" validate:"required"`
	Type        InvestmentType `json:"type" validate:"required,oneof=Stock 'Mutual Fund' ETF Crypto"`
	Description string         `json:"description" validate:"required"`
	RiskLevel   RiskLevel      `json:"riskLevel" validate:"required,oneof=Low Medium High"`
}

type RewardSuggestion struct {
	Vendor  string `json:"vendor" validate:"required"`
	Offer   string `json:"offer" validate:"required"`
	Details string `json:"details" validate:"required"`
}

// DaySavings is one day of round-up savings, in paise.
type DaySavings struct {
	Date    time.Time
	Savings int64
}

//go:generate mockgen -source=insight.go -destination=provider_mock.go -package=insight

// Suggester produces investment and reward suggestions.
type Suggester interface {
	SuggestInvestments(ctx context.Context) ([]InvestmentSuggestion, error)
	SuggestRewards(ctx context.Context, vendors []string) ([]RewardSuggestion, error)
}

// Analyst produces free-text commentary on savings.
type Analyst interface {
	AnalyzeSavings(ctx context.Context, days []DaySavings) (string, error)
	InsightForSavings(ctx context.Context, amount int64) (string, error)
}

// Provider is the full capability set consumed by the session layer.
type Provider interface {
	Suggester
	Analyst
}

// FallbackRewards is served when there is no payment history to personalize on.
func FallbackRewards() []RewardSuggestion {
	return []RewardSuggestion{
		{
			Vendor:  "Local Cafe",
			Offer:   "10% Off",
			Details: "Enjoy a discount on your next coffee as a new user!",
		},
		{
			Vendor:  "Online Shopping",
			Offer:   "Free Delivery",
			Details: "Get free delivery on your first order from popular online stores.",
		},
		{
			Vendor:  "Movie Tickets",
			Offer:   "Buy 1 Get 1",
			Details: "A special offer for your next movie outing.",
		},
	}
}
