//go:build unit

package classrequest_test

import (
	"testing"
	"time"

	"classbook/internal/domain/classrequest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newPending(t *testing.T, mutate ...func(*params)) *classrequest.ClassRequest {
	t.Helper()
	p := &params{
		title:        "Sunrise Yoga",
		description:  "A gentle morning flow",
		instructor:   "Dana",
		duration:     45,
		categoryName: "Yoga",
	}
	for _, m := range mutate {
		m(p)
	}
	r, err := classrequest.NewClassRequest(
		p.title, p.description, p.instructor,
		p.duration, p.categoryName, p.venue, p.preferredTimes,
		classrequest.Requester{UserID: uuid.New(), Email: "member@example.com", Name: "Sam"},
		now,
	)
	require.NoError(t, err)
	return r
}

type params struct {
	title          string
	description    string
	instructor     string
	duration       int
	categoryName   string
	venue          *classrequest.SuggestedVenue
	preferredTimes []time.Time
}

func TestNewClassRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		r := newPending(t)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, "Sunrise Yoga", r.Title())
		assert.Equal(t, 45, r.Duration())
		assert.Equal(t, classrequest.StatusPending, r.Status())
		assert.Equal(t, now, r.CreatedAt())
		assert.Nil(t, r.DecidedAt())
		assert.Nil(t, r.DecidedBy())
	})

	t.Run("title is trimmed", func(t *testing.T) {
		r := newPending(t, func(p *params) { p.title = "  Sunrise Yoga  " })
		assert.Equal(t, "Sunrise Yoga", r.Title())
	})

	t.Run("short title is rejected", func(t *testing.T) {
		for _, title := range []string{"", "ab", "  a  ", "\t\n"} {
			_, err := classrequest.NewClassRequest(
				title, "", "", 45, "", nil, nil,
				classrequest.Requester{UserID: uuid.New()}, now,
			)
			assert.ErrorIs(t, err, classrequest.ErrTitleTooShort, "title %q", title)
		}
	})

	t.Run("non-positive duration falls back to the default", func(t *testing.T) {
		for _, d := range []int{0, -10} {
			r := newPending(t, func(p *params) { p.duration = d })
			assert.Equal(t, classrequest.DefaultDurationMinutes, r.Duration())
		}
	})
}

func TestInstructorOrDefault(t *testing.T) {
	assert.Equal(t, "Dana", newPending(t).InstructorOrDefault())
	assert.Equal(t, "TBD", newPending(t, func(p *params) { p.instructor = "" }).InstructorOrDefault())
	assert.Equal(t, "TBD", newPending(t, func(p *params) { p.instructor = "   " }).InstructorOrDefault())
}

func TestCanCreateSessions(t *testing.T) {
	venueRef := uuid.New()
	times := []time.Time{now.Add(7 * 24 * time.Hour)}

	cases := []struct {
		name   string
		mutate func(*params)
		want   bool
	}{
		{name: "no venue at all", mutate: func(p *params) { p.preferredTimes = times }, want: false},
		{
			name: "venue without a reference",
			mutate: func(p *params) {
				p.venue = &classrequest.SuggestedVenue{Name: "Community hall"}
				p.preferredTimes = times
			},
			want: false,
		},
		{
			name: "resolved venue but no times",
			mutate: func(p *params) {
				p.venue = &classrequest.SuggestedVenue{Name: "Studio 1", VenueRef: &venueRef}
			},
			want: false,
		},
		{
			name: "resolved venue and times",
			mutate: func(p *params) {
				p.venue = &classrequest.SuggestedVenue{Name: "Studio 1", VenueRef: &venueRef}
				p.preferredTimes = times
			},
			want: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, newPending(t, tc.mutate).CanCreateSessions())
		})
	}
}

func TestDecisions(t *testing.T) {
	adminID := uuid.New()

	t.Run("approve", func(t *testing.T) {
		r := newPending(t)

		err := r.Approve(adminID, "looks great", now)

		require.NoError(t, err)
		assert.Equal(t, classrequest.StatusApproved, r.Status())
		assert.Equal(t, "looks great", r.AdminNote())
		require.NotNil(t, r.DecidedAt())
		assert.Equal(t, now, *r.DecidedAt())
		require.NotNil(t, r.DecidedBy())
		assert.Equal(t, adminID, *r.DecidedBy())
	})

	t.Run("reject", func(t *testing.T) {
		r := newPending(t)

		err := r.Reject(adminID, "no capacity this quarter", now)

		require.NoError(t, err)
		assert.Equal(t, classrequest.StatusRejected, r.Status())
	})

	t.Run("a decided request accepts no further decisions", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Approve(adminID, "", now))

		assert.ErrorIs(t, r.Approve(adminID, "", now), classrequest.ErrAlreadyDecided)
		assert.ErrorIs(t, r.Reject(adminID, "", now), classrequest.ErrAlreadyDecided)
		assert.Equal(t, classrequest.StatusApproved, r.Status())
	})
}

func TestStatus(t *testing.T) {
	assert.True(t, classrequest.StatusPending.IsValid())
	assert.False(t, classrequest.Status("open").IsValid())

	assert.False(t, classrequest.StatusPending.IsDecided())
	assert.True(t, classrequest.StatusApproved.IsDecided())
	assert.True(t, classrequest.StatusRejected.IsDecided())
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "Sunrise Yoga", want: "sunrise-yoga"},
		{in: "HIIT 45", want: "hiit-45"},
		{in: "  spaced   out  ", want: "spaced-out"},
		{in: "Crème Brûlée Spin!!", want: "cr-me-br-l-e-spin"},
		{in: "---", want: ""},
		{in: "", want: ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classrequest.Slugify(tc.in), "input %q", tc.in)
	}
}
