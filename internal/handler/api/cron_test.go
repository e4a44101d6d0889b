//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"classbook/internal/handler/api"
	"classbook/internal/pkg/config"
	"classbook/internal/usecase/commands"
	"classbook/tests/common/httptest"
	commandsmock "classbook/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CronHandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReminderCommands
}

func (s *CronHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReminderCommands(s.mockCtrl)
}

func (s *CronHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCronHandlerSuite(t *testing.T) {
	suite.Run(t, new(CronHandlerTestSuite))
}

// Both methods stay registered: platform schedulers issue GET, POST is for
// manual triggering.
func (s *CronHandlerTestSuite) newRouter(secret string) *gin.Engine {
	handler := api.NewCronHandler(s.mockCommands, config.ReminderConfig{CronSecret: secret})
	router := gin.New()
	router.GET("/cron/reminders", handler.DispatchReminders)
	router.POST("/cron/reminders", handler.DispatchReminders)
	return router
}

func (s *CronHandlerTestSuite) TestDispatchWithoutSecretConfigured() {
	router := s.newRouter("")
	s.mockCommands.EXPECT().Dispatch(gomock.Any(), false).
		Return(&commands.DispatchResult{Checked: 3, Queued: 1, Sent: 1}, nil)

	rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/cron/reminders", nil, "")

	var got commands.DispatchResult
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Equal(3, got.Checked)
	s.Equal(1, got.Sent)
}

func (s *CronHandlerTestSuite) TestDispatchRequiresMatchingSecret() {
	router := s.newRouter("s3cret")

	s.Run("missing token", func() {
		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/cron/reminders", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid cron secret")
	})

	s.Run("wrong token", func() {
		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/cron/reminders", nil, "wrong")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid cron secret")
	})

	s.Run("matching token", func() {
		s.mockCommands.EXPECT().Dispatch(gomock.Any(), false).
			Return(&commands.DispatchResult{}, nil)
		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/cron/reminders", nil, "s3cret")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *CronHandlerTestSuite) TestDispatchDryRunFlag() {
	router := s.newRouter("")

	for _, q := range []string{"?dryRun=1", "?dryRun=true", "?dry_run=1", "?dry_run=true"} {
		s.Run(q, func() {
			s.mockCommands.EXPECT().Dispatch(gomock.Any(), true).
				Return(&commands.DispatchResult{DryRun: true}, nil)
			rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/cron/reminders"+q, nil, "")

			var got commands.DispatchResult
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
			s.True(got.DryRun)
		})
	}
}

func (s *CronHandlerTestSuite) TestDispatchAcceptsPost() {
	router := s.newRouter("")
	s.mockCommands.EXPECT().Dispatch(gomock.Any(), true).
		Return(&commands.DispatchResult{DryRun: true}, nil)

	rec := httptest.PerformRequest(s.T(), router, http.MethodPost, "/cron/reminders?dryRun=1", nil, "")

	s.Equal(http.StatusOK, rec.Code)
}
