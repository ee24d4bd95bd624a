// Package badge tracks the bronze/silver/gold milestone badges earned by
// accumulating savings.
package badge

// Milestone is the savings total, in paise, that earns one bronze badge (₹100).
const Milestone int64 = 10000

// PromotionRatio is how many badges of one tier make one of the next.
const PromotionRatio = 3

// Badges is the tier distribution of an account. At rest Bronze and Silver
// stay below PromotionRatio; Gold is unbounded. Counts never decrease.
type Badges struct {
	Bronze int
	Silver int
	Gold   int
}

// Normalized reports whether b satisfies the at-rest invariant.
func (b Badges) Normalized() bool {
	return b.Bronze >= 0 && b.Silver >= 0 && b.Gold >= 0 &&
		b.Bronze < PromotionRatio && b.Silver < PromotionRatio
}

// Tier names the highest badge touched by a promotion.
type Tier string

const (
	TierNone   Tier = ""
	TierBronze Tier = "Bronze"
	TierSilver Tier = "Silver"
	TierGold   Tier = "Gold"
)

// Earned reports whether t carries a signal.
func (t Tier) Earned() bool {
	return t != TierNone
}

// Message is the notification text shown when t was earned.
func (t Tier) Message() string {
	if !t.Earned() {
		return ""
	}

	return string(t) + " Badge Earned!"
}

// Promote applies the milestones crossed between oldSaved and newSaved to b.
// One bronze is earned per Milestone crossed, then every PromotionRatio bronze
// become one silver and every PromotionRatio silver one gold. The returned
// tier is the highest one touched, or TierNone when no milestone was crossed.
func Promote(oldSaved, newSaved int64, b Badges) (Badges, Tier) {
	oldMilestones := milestones(oldSaved)
	newMilestones := milestones(newSaved)

	if newMilestones <= oldMilestones {
		return b, TierNone
	}

	b.Bronze += int(newMilestones - oldMilestones)
	tier := TierBronze

	// Integer division already carries every full multiple, so a single step
	// per tier is equivalent to carrying one badge at a time.
	if b.Bronze >= PromotionRatio {
		b.Silver += b.Bronze / PromotionRatio
		b.Bronze %= PromotionRatio
		tier = TierSilver
	}

	if b.Silver >= PromotionRatio {
		b.Gold += b.Silver / PromotionRatio
		b.Silver %= PromotionRatio
		tier = TierGold
	}

	return b, tier
}

func milestones(saved int64) int64 {
	if saved <= 0 {
		return 0
	}

	return saved / Milestone
}
