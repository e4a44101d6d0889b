package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "classbook/internal/handler/dto/request"
	"classbook/internal/handler/middleware"
	"classbook/internal/usecase/commands"
	"classbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Book a class session
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	sessionID, err := req.SessionUUID()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), userID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Class session not found"})
		case errors.Is(err, commands.ErrSessionNotBookable):
			c.JSON(http.StatusConflict, gin.H{"error": "Class session is not open for booking"})
		case errors.Is(err, commands.ErrBookingClosed):
			c.JSON(http.StatusConflict, gin.H{"error": "Class has already started"})
		case errors.Is(err, commands.ErrTierInsufficient):
			c.JSON(http.StatusForbidden, gin.H{"error": "Your subscription tier does not allow this class"})
		case errors.Is(err, commands.ErrDuplicateBooking):
			c.JSON(http.StatusConflict, gin.H{"error": "You already have an active booking for this session"})
		case errors.Is(err, commands.ErrMonthlyLimitReached):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Monthly booking limit reached"})
		case errors.Is(err, commands.ErrSessionFull):
			c.JSON(http.StatusConflict, gin.H{"error": "Class session is full"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.BookingListItem
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if items == nil {
		items = []*queries.BookingListItem{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get one booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, bookingID)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Cancel a booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.bookingCommands.Cancel)
}

// @Summary Confirm attendance
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/attend [post]
func (h *BookingHandler) ConfirmAttendance(c *gin.Context) {
	h.transition(c, h.bookingCommands.ConfirmAttendance)
}

func (h *BookingHandler) transition(c *gin.Context, op func(ctx context.Context, userID, bookingID uuid.UUID) error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := op(c.Request.Context(), userID, bookingID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking state does not allow this action"})
		case errors.Is(err, commands.ErrCancelDeadlinePassed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cancellation deadline has passed"})
		case errors.Is(err, commands.ErrOutsideAttendanceWindow):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Attendance can only be confirmed around class time"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
