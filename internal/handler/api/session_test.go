//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"classbook/internal/handler/api"
	"classbook/internal/usecase/queries"
	"classbook/tests/common/builder"
	"classbook/tests/common/httptest"
	queriesmock "classbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockSessionQueries
	handler     *api.SessionHandler
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockSessionQueries(s.mockCtrl)
	s.handler = api.NewSessionHandler(s.mockQueries)

	s.router.GET("/sessions", s.handler.List)
	s.router.GET("/sessions/:id", s.handler.Get)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func (s *SessionHandlerTestSuite) TestList() {
	s.Run("success: no filters", func() {
		items := []*queries.SessionListItem{builder.NewSessionBuilder().BuildListItem()}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.SessionFilter{}).Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions", nil, "")

		var got []queries.SessionListItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Len(got, 1)
	})

	s.Run("success: full geo filter is forwarded", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter queries.SessionFilter) ([]*queries.SessionListItem, error) {
				s.Require().NotNil(filter.Near)
				s.InDelta(51.5, filter.Near.Lat, 1e-9)
				s.InDelta(-0.12, filter.Near.Lng, 1e-9)
				s.InDelta(5.0, filter.RadiusKm, 1e-9)
				return nil, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions?lat=51.5&lng=-0.12&radius_km=5", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	partialGeo := []string{
		"/sessions?lat=51.5",
		"/sessions?lat=51.5&lng=-0.12",
		"/sessions?radius_km=5",
		"/sessions?lng=-0.12&radius_km=5",
	}
	for _, url := range partialGeo {
		s.Run("validation: partial geo "+url, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "provided together")
		})
	}

	invalid := []string{
		"/sessions?lat=91&lng=0&radius_km=5",
		"/sessions?lat=0&lng=181&radius_km=5",
		"/sessions?lat=0&lng=0&radius_km=0",
		"/sessions?lat=0&lng=0&radius_km=501",
		"/sessions?tier=gold",
	}
	for _, url := range invalid {
		s.Run("validation: out of range "+url, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
		})
	}
}

func (s *SessionHandlerTestSuite) TestGet() {
	view := builder.NewSessionBuilder().BuildView()

	s.Run("success: returns the session", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/"+view.ID.String(), nil, "")

		var got queries.SessionView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(view.ID, got.ID)
		s.Equal(view.SpotsLeft, got.SpotsLeft)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrSessionNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/"+view.ID.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid session ID")
	})
}
