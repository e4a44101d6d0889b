package api

import (
	"errors"
	"net/http"

	reqdto "classbook/internal/handler/dto/request"
	resdto "classbook/internal/handler/dto/response"
	"classbook/internal/handler/middleware"
	"classbook/internal/usecase/commands"
	"classbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClassRequestHandler struct {
	requestCommands commands.ClassRequestCommands
	requestQueries  queries.ClassRequestQueries
}

func NewClassRequestHandler(requestCommands commands.ClassRequestCommands, requestQueries queries.ClassRequestQueries) *ClassRequestHandler {
	return &ClassRequestHandler{
		requestCommands: requestCommands,
		requestQueries:  requestQueries,
	}
}

// @Summary Submit a class request
// @Tags class-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateClassRequestRequest true "Class request"
// @Success 201 {object} queries.ClassRequestView
// @Failure 400 {object} map[string]string
// @Router /class-requests [post]
func (h *ClassRequestHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateClassRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.requestCommands.Submit(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidClassRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class request"})
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List own class requests
// @Tags class-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ClassRequestListItem
// @Router /class-requests [get]
func (h *ClassRequestHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.requestQueries.ListByRequester(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if items == nil {
		items = []*queries.ClassRequestListItem{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary List class requests (admin)
// @Tags class-requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Success 200 {array} queries.ClassRequestListItem
// @Router /admin/class-requests [get]
func (h *ClassRequestHandler) List(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	items, err := h.requestQueries.List(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if items == nil {
		items = []*queries.ClassRequestListItem{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get one class request (admin)
// @Tags class-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class request ID"
// @Success 200 {object} queries.ClassRequestView
// @Failure 404 {object} map[string]string
// @Router /admin/class-requests/{id} [get]
func (h *ClassRequestHandler) Get(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class request ID"})
		return
	}

	view, err := h.requestQueries.GetByID(c.Request.Context(), requestID)
	if err != nil {
		if errors.Is(err, queries.ErrClassRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Approve a class request (admin)
// @Tags class-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class request ID"
// @Param request body reqdto.DecideClassRequestRequest false "Decision"
// @Success 200 {object} resdto.ApprovalResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/class-requests/{id}/approve [post]
func (h *ClassRequestHandler) Approve(c *gin.Context) {
	adminID, requestID, req, ok := h.decisionParams(c)
	if !ok {
		return
	}

	result, err := h.requestCommands.Approve(c.Request.Context(), adminID, requestID, commands.ApproveInput{
		AdminNote:      req.AdminNote,
		CreateSessions: req.CreateSessionsOrDefault(),
	})
	if err != nil {
		h.respondDecisionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromApproveResult(result))
}

// @Summary Reject a class request (admin)
// @Tags class-requests
// @Accept json
// @Security BearerAuth
// @Param id path string true "Class request ID"
// @Param request body reqdto.DecideClassRequestRequest false "Decision note"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/class-requests/{id}/reject [post]
func (h *ClassRequestHandler) Reject(c *gin.Context) {
	adminID, requestID, req, ok := h.decisionParams(c)
	if !ok {
		return
	}

	if err := h.requestCommands.Reject(c.Request.Context(), adminID, requestID, req.AdminNote); err != nil {
		h.respondDecisionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClassRequestHandler) decisionParams(c *gin.Context) (adminID, requestID uuid.UUID, req reqdto.DecideClassRequestRequest, ok bool) {
	adminID, found := middleware.GetUserID(c)
	if !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return uuid.Nil, uuid.Nil, req, false
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class request ID"})
		return uuid.Nil, uuid.Nil, req, false
	}

	// An empty body is a valid decision with defaults.
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return uuid.Nil, uuid.Nil, reqdto.DecideClassRequestRequest{}, false
	}
	return adminID, requestID, req, true
}

func (h *ClassRequestHandler) respondDecisionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrClassRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Class request not found"})
	case errors.Is(err, commands.ErrClassRequestDecided):
		c.JSON(http.StatusConflict, gin.H{"error": "Class request has already been decided"})
	case errors.Is(err, commands.ErrInvalidClassRequest):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Class request references an unknown venue"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
