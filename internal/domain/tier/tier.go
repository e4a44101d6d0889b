package tier

import "errors"

var ErrInvalidTier = errors.New("invalid subscription tier")

// Tier is a subscription level. Tiers form a total order:
// none < basic < performance < champion.
type Tier string

const (
	TierNone        Tier = "none"
	TierBasic       Tier = "basic"
	TierPerformance Tier = "performance"
	TierChampion    Tier = "champion"
)

// Unlimited marks a tier with no monthly booking cap.
const Unlimited = -1

var ranks = map[Tier]int{
	TierNone:        0,
	TierBasic:       1,
	TierPerformance: 2,
	TierChampion:    3,
}

var monthlyLimits = map[Tier]int{
	TierNone:        0,
	TierBasic:       4,
	TierPerformance: 8,
	TierChampion:    Unlimited,
}

func New(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", ErrInvalidTier
	}
	return t, nil
}

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	_, ok := ranks[t]
	return ok
}

func (t Tier) Rank() int {
	return ranks[t]
}

// MonthlyLimit returns the number of bookings the tier allows per calendar
// month, or Unlimited.
func (t Tier) MonthlyLimit() int {
	limit, ok := monthlyLimits[t]
	if !ok {
		return 0
	}
	return limit
}

// CanAccess reports whether a user holding userTier may book a session that
// requires required. A nil user tier always denies, regardless of required.
func CanAccess(userTier *Tier, required Tier) bool {
	if userTier == nil {
		return false
	}
	userRank, ok := ranks[*userTier]
	if !ok {
		return false
	}
	requiredRank, ok := ranks[required]
	if !ok {
		return false
	}
	return userRank >= requiredRank
}
