//go:build unit || e2e

package builder

import (
	"time"

	"classbook/internal/domain/tier"
	"classbook/internal/domain/user"
	"classbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Role      user.Role
	Tier      *tier.Tier
	IsActive  bool
	CreatedAt time.Time
}

func NewUserBuilder() *UserBuilder {
	basic := tier.TierBasic
	return &UserBuilder{
		ID:        uuid.New(),
		Email:     "member@example.com",
		FirstName: "Sam",
		LastName:  "Lee",
		Role:      user.RoleMember,
		Tier:      &basic,
		IsActive:  true,
		CreatedAt: time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithTier(t tier.Tier) *UserBuilder {
	u.Tier = &t
	return u
}

func (u *UserBuilder) WithoutTier() *UserBuilder {
	u.Tier = nil
	return u
}

func (u *UserBuilder) BuildDomain() *user.User {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		panic(err)
	}
	return user.ReconstructUser(
		u.ID, email, "$2a$10$hash",
		u.FirstName, u.LastName,
		u.Role, u.Tier, u.IsActive,
		nil, u.CreatedAt, u.CreatedAt,
	)
}

func (u *UserBuilder) BuildView() *queries.UserView {
	var tierStr *string
	if u.Tier != nil {
		s := u.Tier.String()
		tierStr = &s
	}
	return &queries.UserView{
		ID:               u.ID,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Role:             u.Role.String(),
		SubscriptionTier: tierStr,
		IsActive:         u.IsActive,
		CreatedAt:        u.CreatedAt,
	}
}
