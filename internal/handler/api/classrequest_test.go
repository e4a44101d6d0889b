//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"classbook/internal/domain/user"
	"classbook/internal/handler/api"
	resdto "classbook/internal/handler/dto/response"
	"classbook/internal/usecase/commands"
	"classbook/internal/usecase/queries"
	"classbook/tests/common/builder"
	"classbook/tests/common/httptest"
	"classbook/tests/common/testutil"
	commandsmock "classbook/tests/mock/commands"
	queriesmock "classbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ClassRequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockClassRequestCommands
	mockQueries  *queriesmock.MockClassRequestQueries
	handler      *api.ClassRequestHandler
	userID       uuid.UUID
}

func (s *ClassRequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockClassRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockClassRequestQueries(s.mockCtrl)
	s.handler = api.NewClassRequestHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.POST("/class-requests", authMiddleware, s.handler.Submit)
	s.router.GET("/class-requests", authMiddleware, s.handler.ListMine)
	s.router.GET("/admin/class-requests", authMiddleware, s.handler.List)
	s.router.GET("/admin/class-requests/:id", authMiddleware, s.handler.Get)
	s.router.POST("/admin/class-requests/:id/approve", authMiddleware, s.handler.Approve)
	s.router.POST("/admin/class-requests/:id/reject", authMiddleware, s.handler.Reject)
}

func (s *ClassRequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestClassRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClassRequestHandlerTestSuite))
}

// ================================================================================
// Submit / listings
// ================================================================================

func (s *ClassRequestHandlerTestSuite) TestSubmit() {
	url := "/class-requests"
	b := builder.NewClassRequestBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.userID, gomock.Any()).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var got queries.ClassRequestView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(view.ID, got.ID)
		s.Equal("pending", got.Status)
	})

	s.Run("validation: missing title", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("title", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("validation: title below minimum length", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("title", "ab"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ClassRequestHandlerTestSuite) TestListMine() {
	items := []*queries.ClassRequestListItem{builder.NewClassRequestBuilder().BuildListItem()}
	s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.userID).Return(items, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/class-requests", nil, "bearer-token")

	var got []queries.ClassRequestListItem
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Len(got, 1)
}

func (s *ClassRequestHandlerTestSuite) TestAdminListFiltersByStatus() {
	s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, status *string) ([]*queries.ClassRequestListItem, error) {
			s.Require().NotNil(status)
			s.Equal("pending", *status)
			return nil, nil
		})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/class-requests?status=pending", nil, "bearer-token")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq("[]", rec.Body.String())
}

// ================================================================================
// Approve / Reject
// ================================================================================

func (s *ClassRequestHandlerTestSuite) TestApprove() {
	requestID := uuid.New()
	url := "/admin/class-requests/" + requestID.String() + "/approve"

	defaultInput := commands.ApproveInput{CreateSessions: true}

	s.Run("success: returns the approval outcome", func() {
		result := &commands.ApproveResult{
			RequestID:  requestID,
			ActivityID: uuid.New(),
			SessionIDs: []uuid.UUID{uuid.New(), uuid.New()},
		}
		s.mockCommands.EXPECT().
			Approve(gomock.Any(), s.userID, requestID, commands.ApproveInput{AdminNote: "looks good", CreateSessions: true}).
			Return(result, nil)

		body := map[string]any{"adminNote": "looks good"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var got resdto.ApprovalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("approved", got.Status)
		s.Len(got.SessionIDs, 2)
	})

	s.Run("success: empty body defaults to session creation with no note", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), s.userID, requestID, defaultInput).
			Return(&commands.ApproveResult{RequestID: requestID}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: createSessions false reaches the command", func() {
		s.mockCommands.EXPECT().
			Approve(gomock.Any(), s.userID, requestID, commands.ApproveInput{CreateSessions: false}).
			Return(&commands.ApproveResult{RequestID: requestID}, nil)

		body := map[string]any{"createSessions": false}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var got resdto.ApprovalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Empty(got.SessionIDs)
	})

	s.Run("error: already decided", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), s.userID, requestID, defaultInput).
			Return(nil, commands.ErrClassRequestDecided)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already been decided")
	})

	s.Run("error: not found", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), s.userID, requestID, defaultInput).
			Return(nil, commands.ErrClassRequestNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: unknown venue reference", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), s.userID, requestID, defaultInput).
			Return(nil, commands.ErrInvalidClassRequest)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "unknown venue")
	})
}

func (s *ClassRequestHandlerTestSuite) TestReject() {
	requestID := uuid.New()
	url := "/admin/class-requests/" + requestID.String() + "/reject"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), s.userID, requestID, "no capacity").Return(nil)

		body := map[string]any{"adminNote": "no capacity"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: already decided", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), s.userID, requestID, "").
			Return(commands.ErrClassRequestDecided)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/class-requests/nope/reject", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid class request ID")
	})
}
