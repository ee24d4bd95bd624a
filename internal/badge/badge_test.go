package badge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/paygrow/internal/badge"
)

func TestPromote(t *testing.T) {
	tests := []struct {
		name     string
		oldSaved int64
		newSaved int64
		badges   badge.Badges
		want     badge.Badges
		wantTier badge.Tier
	}{
		{
			name:     "first hundred earns bronze",
			oldSaved: 0,
			newSaved: 10000,
			want:     badge.Badges{Bronze: 1},
			wantTier: badge.TierBronze,
		},
		{
			name:     "no milestone crossed",
			oldSaved: 10500,
			newSaved: 19999,
			badges:   badge.Badges{Bronze: 1},
			want:     badge.Badges{Bronze: 1},
			wantTier: badge.TierNone,
		},
		{
			name:     "third bronze cascades to silver",
			oldSaved: 29900,
			newSaved: 30000,
			badges:   badge.Badges{Bronze: 2},
			want:     badge.Badges{Silver: 1},
			wantTier: badge.TierSilver,
		},
		{
			name:     "third silver cascades to gold",
			oldSaved: 89950,
			newSaved: 90000,
			badges:   badge.Badges{Bronze: 2, Silver: 2},
			want:     badge.Badges{Gold: 1},
			wantTier: badge.TierGold,
		},
		{
			name:     "several milestones in one step",
			oldSaved: 0,
			newSaved: 40000,
			want:     badge.Badges{Bronze: 1, Silver: 1},
			wantTier: badge.TierSilver,
		},
		{
			name:     "large jump collapses in one division",
			oldSaved: 0,
			newSaved: 100000,
			want:     badge.Badges{Bronze: 1, Gold: 1},
			wantTier: badge.TierGold,
		},
		{
			name:     "exact boundary is counted",
			oldSaved: 9999,
			newSaved: 10000,
			badges:   badge.Badges{Gold: 4},
			want:     badge.Badges{Bronze: 1, Gold: 4},
			wantTier: badge.TierBronze,
		},
		{
			name:     "decrease leaves badges untouched",
			oldSaved: 30000,
			newSaved: 0,
			badges:   badge.Badges{Silver: 1},
			want:     badge.Badges{Silver: 1},
			wantTier: badge.TierNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, tier := badge.Promote(tt.oldSaved, tt.newSaved, tt.badges)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantTier, tier)
			assert.True(t, got.Normalized())
		})
	}
}

func TestPromote_MatchesIterativeCarrying(t *testing.T) {
	carry := func(b badge.Badges, gain int) badge.Badges {
		for i := 0; i < gain; i++ {
			b.Bronze++
			for b.Bronze >= badge.PromotionRatio {
				b.Bronze -= badge.PromotionRatio
				b.Silver++
			}
			for b.Silver >= badge.PromotionRatio {
				b.Silver -= badge.PromotionRatio
				b.Gold++
			}
		}

		return b
	}

	start := badge.Badges{Bronze: 2, Silver: 2, Gold: 5}
	for gain := 0; gain <= 60; gain++ {
		got, _ := badge.Promote(0, int64(gain)*badge.Milestone, start)
		assert.Equal(t, carry(start, gain), got, "gain %d", gain)
	}
}

func TestTier_Message(t *testing.T) {
	assert.Equal(t, "Bronze Badge Earned!", badge.TierBronze.Message())
	assert.Equal(t, "Gold Badge Earned!", badge.TierGold.Message())
	assert.Empty(t, badge.TierNone.Message())
	assert.False(t, badge.TierNone.Earned())
}
