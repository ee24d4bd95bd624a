package insight

import (
	"context"
	"fmt"
)

// Composite serves suggestions from one source and analysis from another.
type Composite struct {
	suggester Suggester
	analyst   Analyst
}

func NewComposite(suggester Suggester, analyst Analyst) *Composite {
	return &Composite{suggester: suggester, analyst: analyst}
}

func (c *Composite) SuggestInvestments(ctx context.Context) ([]InvestmentSuggestion, error) {
	return c.suggester.SuggestInvestments(ctx)
}

// SuggestRewards returns the fallback offers without calling out when
// vendors is empty, and sends at most MaxRewardVendors otherwise.
func (c *Composite) SuggestRewards(ctx context.Context, vendors []string) ([]RewardSuggestion, error) {
	if len(vendors) == 0 {
		return FallbackRewards(), nil
	}

	if len(vendors) > MaxRewardVendors {
		vendors = vendors[:MaxRewardVendors]
	}

	return c.suggester.SuggestRewards(ctx, vendors)
}

func (c *Composite) AnalyzeSavings(ctx context.Context, days []DaySavings) (string, error) {
	return c.analyst.AnalyzeSavings(ctx, days)
}

func (c *Composite) InsightForSavings(ctx context.Context, amount int64) (string, error) {
	return c.analyst.InsightForSavings(ctx, amount)
}

// Unavailable is the Suggester used when no suggestion backend is configured.
type Unavailable struct {
	Reason string
}

func (u Unavailable) SuggestInvestments(context.Context) ([]InvestmentSuggestion, error) {
	return nil, fmt.Errorf("%w: %s", ErrSuggestionUnavailable, u.Reason)
}

func (u Unavailable) SuggestRewards(context.Context, []string) ([]RewardSuggestion, error) {
	return nil, fmt.Errorf("%w: %s", ErrSuggestionUnavailable, u.Reason)
}
