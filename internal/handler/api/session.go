package api

import (
	"errors"
	"net/http"

	reqdto "classbook/internal/handler/dto/request"
	"classbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionHandler struct {
	sessionQueries queries.SessionQueries
}

func NewSessionHandler(sessionQueries queries.SessionQueries) *SessionHandler {
	return &SessionHandler{sessionQueries: sessionQueries}
}

// @Summary List upcoming class sessions
// @Description Lists sessions that have not ended yet, optionally filtered by proximity, category and tier
// @Tags sessions
// @Produce json
// @Param lat query number false "Latitude of the search center"
// @Param lng query number false "Longitude of the search center"
// @Param radius_km query number false "Search radius in kilometers"
// @Param category query string false "Category slug"
// @Param tier query string false "Required tier level"
// @Success 200 {array} queries.SessionListItem
// @Failure 400 {object} map[string]string
// @Router /sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	var query reqdto.ListSessionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}
	if query.HasPartialGeo() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat, lng and radius_km must be provided together"})
		return
	}

	items, err := h.sessionQueries.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if items == nil {
		items = []*queries.SessionListItem{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get one class session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} queries.SessionView
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	view, err := h.sessionQueries.GetByID(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, queries.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}
