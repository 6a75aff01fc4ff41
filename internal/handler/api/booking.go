package api

import (
	"errors"
	"net/http"

	"padelbook/internal/domain/booking"
	"padelbook/internal/domain/skill"
	reqdto "padelbook/internal/handler/dto/request"
	resdto "padelbook/internal/handler/dto/response"
	"padelbook/internal/handler/middleware"
	"padelbook/internal/usecase/commands"
	"padelbook/internal/usecase/queries"

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

// @Summary Create booking
// @Description Reserve a court slot, charging the creator's wallet
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidDuration),
			errors.Is(err, booking.ErrInvalidTimeSlot),
			errors.Is(err, booking.ErrInvalidMode),
			errors.Is(err, skill.ErrInvalidTier):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking parameters",
			})
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, commands.ErrTierNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Skill tier not allowed for this booking",
			})
		case errors.Is(err, commands.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Court slot already booked",
			})
		case errors.Is(err, commands.ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Insufficient wallet balance",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		BookingID:    result.BookingID,
		ChargedCents: result.ChargedCents,
	})
}

// @Summary Modify booking
// @Description Direct field update, creator only
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ModifyBookingRequest true "Fields to update"
// @Success 200 {object} resdto.ModifyBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) ModifyBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	var req reqdto.ModifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	updated, err := h.bookingCommands.ModifyBooking(c.Request.Context(), bookingID, req.ToPatch(), userID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidMode),
			errors.Is(err, booking.ErrInvalidStatus),
			errors.Is(err, skill.ErrInvalidTier):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking parameters",
			})
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrNotBookingCreator):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the booking creator may modify it",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ModifyBookingResponse{UpdatedRows: updated})
}

// @Summary Cancel booking
// @Description Leave a booking and refund the seat price
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	result, err := h.bookingCommands.CancelBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound),
			errors.Is(err, commands.ErrNotParticipant):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found for user",
			})
		case errors.Is(err, commands.ErrBalanceCapExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Refund would exceed the wallet cap",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CancelBookingResponse{
		RefundCents:    result.RefundCents,
		BookingDeleted: result.BookingDeleted,
	})
}

// @Summary List own bookings
// @Description List bookings the user participates in
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	out := make([]*resdto.BookingResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromBookingView(v)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary List open bookings
// @Description List joinable shared bookings compatible with the user's tier
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OpenBookingResponse
// @Router /bookings/open [get]
func (h *BookingHandler) GetOpenBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.ListOpenForUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	out := make([]*resdto.OpenBookingResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromOpenBookingView(v)
	}
	c.JSON(http.StatusOK, out)
}
