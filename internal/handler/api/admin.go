package api

import (
	"errors"
	"net/http"

	reqdto "classbook/internal/handler/dto/request"
	"classbook/internal/handler/middleware"
	"classbook/internal/usecase/commands"
	"classbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	userCommands commands.UserCommands
	userQueries  queries.UserQueries
}

func NewAdminHandler(userCommands commands.UserCommands, userQueries queries.UserQueries) *AdminHandler {
	return &AdminHandler{
		userCommands: userCommands,
		userQueries:  userQueries,
	}
}

// @Summary List users (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.UserView
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if users == nil {
		users = []*queries.UserView{}
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Set a user's role (admin)
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateRoleRequest true "Role"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id}/role [put]
func (h *AdminHandler) SetRole(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	var req reqdto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.userCommands.SetRole(c.Request.Context(), targetID, req.Role); err != nil {
		h.respondUserError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update a user's profile (admin)
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateProfileRequest true "Profile"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.userCommands.UpdateProfile(c.Request.Context(), targetID, req); err != nil {
		h.respondUserError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a user (admin)
// @Tags admin
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.userCommands.Delete(c.Request.Context(), adminID, targetID); err != nil {
		switch {
		case errors.Is(err, commands.ErrCannotDeleteSelf):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cannot delete your own account"})
		case errors.Is(err, commands.ErrUserHasRecords):
			c.JSON(http.StatusConflict, gin.H{"error": "User still has related records"})
		default:
			h.respondUserError(c, err)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, commands.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
	case errors.Is(err, commands.ErrInvalidTier):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription tier"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
