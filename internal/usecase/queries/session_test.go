//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"classbook/internal/domain/geo"
	"classbook/internal/infra"
	"classbook/internal/pkg/clock"
	"classbook/internal/usecase/queries"
	"classbook/tests/common/builder"
	queriesmock "classbook/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var listNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type SessionQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockSessionReadStore
	clock         *clock.FakeClock
	queries       queries.SessionQueries
}

func (s *SessionQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockSessionReadStore(s.mockCtrl)
	s.clock = clock.NewFakeClock(listNow)
	s.queries = queries.NewSessionQueries(s.mockReadStore, s.clock)
}

func (s *SessionQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionQueriesSuite(t *testing.T) {
	suite.Run(t, new(SessionQueriesTestSuite))
}

func (s *SessionQueriesTestSuite) itemAt(lat, lng float64) *queries.SessionListItem {
	b := builder.NewSessionBuilder()
	b.Latitude = lat
	b.Longitude = lng
	b.StartTime = listNow.Add(6 * time.Hour)
	return b.BuildListItem()
}

func (s *SessionQueriesTestSuite) TestListWithoutGeoPassesNoBox() {
	rows := []*queries.SessionListItem{s.itemAt(51.5, -0.12)}
	s.mockReadStore.EXPECT().
		FindUpcoming(gomock.Any(), listNow, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time, filter queries.SessionRowFilter) ([]*queries.SessionListItem, error) {
			s.Nil(filter.Box)
			return rows, nil
		})

	items, err := s.queries.List(context.Background(), queries.SessionFilter{})

	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Nil(items[0].DistanceKm)
	s.Empty(cmp.Diff(rows, items))
}

func (s *SessionQueriesTestSuite) TestListRadiusFilterDropsBoxSurvivorsOutsideTheCircle() {
	center := geo.Point{Lat: 51.5074, Lng: -0.1278}

	near := s.itemAt(51.52, -0.10)  // ~2km away
	corner := s.itemAt(51.59, 0.01) // inside a 10km box but ~13km away

	s.mockReadStore.EXPECT().
		FindUpcoming(gomock.Any(), listNow, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time, filter queries.SessionRowFilter) ([]*queries.SessionListItem, error) {
			s.Require().NotNil(filter.Box)
			s.True(filter.Box.Contains(geo.Point{Lat: near.Latitude, Lng: near.Longitude}))
			s.True(filter.Box.Contains(geo.Point{Lat: corner.Latitude, Lng: corner.Longitude}))
			return []*queries.SessionListItem{near, corner}, nil
		})

	items, err := s.queries.List(context.Background(), queries.SessionFilter{Near: &center, RadiusKm: 10})

	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(near.ID, items[0].ID)
	s.Require().NotNil(items[0].DistanceKm)
	s.InDelta(2.2, *items[0].DistanceKm, 0.5)
}

func (s *SessionQueriesTestSuite) TestListMarksLiveSessions() {
	live := builder.NewSessionBuilder()
	live.StartTime = listNow.Add(-30 * time.Minute)
	live.DurationMin = 60

	upcoming := builder.NewSessionBuilder()
	upcoming.StartTime = listNow.Add(2 * time.Hour)

	s.mockReadStore.EXPECT().
		FindUpcoming(gomock.Any(), listNow, gomock.Any()).
		Return([]*queries.SessionListItem{live.BuildListItem(), upcoming.BuildListItem()}, nil)

	items, err := s.queries.List(context.Background(), queries.SessionFilter{})

	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.True(items[0].IsLive)
	s.False(items[1].IsLive)
}

func (s *SessionQueriesTestSuite) TestGetByIDNotFound() {
	id := builder.NewSessionBuilder().ID
	s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("session not found", nil, infra.KindNotFound))

	_, err := s.queries.GetByID(context.Background(), id)

	s.ErrorIs(err, queries.ErrSessionNotFound)
}
