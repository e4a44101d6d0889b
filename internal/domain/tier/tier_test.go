//go:build unit

package tier_test

import (
	"testing"

	"classbook/internal/domain/tier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, s := range []string{"none", "basic", "performance", "champion"} {
		got, err := tier.New(s)
		require.NoError(t, err)
		assert.Equal(t, s, got.String())
	}

	for _, s := range []string{"", "gold", "Basic", "BASIC"} {
		_, err := tier.New(s)
		assert.ErrorIs(t, err, tier.ErrInvalidTier, "input %q", s)
	}
}

func TestRankOrdering(t *testing.T) {
	ordered := []tier.Tier{tier.TierNone, tier.TierBasic, tier.TierPerformance, tier.TierChampion}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Rank(), ordered[i-1].Rank(),
			"%s should outrank %s", ordered[i], ordered[i-1])
	}
}

func TestCanAccess(t *testing.T) {
	hold := func(tr tier.Tier) *tier.Tier { return &tr }

	t.Run("nil tier always denies", func(t *testing.T) {
		assert.False(t, tier.CanAccess(nil, tier.TierNone))
		assert.False(t, tier.CanAccess(nil, tier.TierBasic))
	})

	t.Run("access is monotone in the holder's tier", func(t *testing.T) {
		all := []tier.Tier{tier.TierNone, tier.TierBasic, tier.TierPerformance, tier.TierChampion}
		for _, held := range all {
			for _, required := range all {
				want := held.Rank() >= required.Rank()
				assert.Equal(t, want, tier.CanAccess(hold(held), required),
					"held=%s required=%s", held, required)
			}
		}
	})

	t.Run("unknown tiers deny", func(t *testing.T) {
		bogus := tier.Tier("platinum")
		assert.False(t, tier.CanAccess(&bogus, tier.TierBasic))
		assert.False(t, tier.CanAccess(hold(tier.TierChampion), bogus))
	})
}

func TestMonthlyLimit(t *testing.T) {
	assert.Equal(t, 0, tier.TierNone.MonthlyLimit())
	assert.Equal(t, 4, tier.TierBasic.MonthlyLimit())
	assert.Equal(t, 8, tier.TierPerformance.MonthlyLimit())
	assert.Equal(t, tier.Unlimited, tier.TierChampion.MonthlyLimit())
	assert.Equal(t, 0, tier.Tier("platinum").MonthlyLimit())
}
