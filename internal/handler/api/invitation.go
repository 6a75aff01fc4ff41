package api

import (
	"errors"
	"net/http"

	reqdto "padelbook/internal/handler/dto/request"
	resdto "padelbook/internal/handler/dto/response"
	"padelbook/internal/handler/middleware"
	"padelbook/internal/usecase/commands"
	"padelbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvitationHandler struct {
	invitationCommands commands.InvitationCommands
	invitationQueries  queries.InvitationQueries
}

func NewInvitationHandler(invitationCommands commands.InvitationCommands, invitationQueries queries.InvitationQueries) *InvitationHandler {
	return &InvitationHandler{
		invitationCommands: invitationCommands,
		invitationQueries:  invitationQueries,
	}
}

// @Summary Request invitation
// @Description Request to join a shared booking's open seats
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RequestInvitationRequest true "Invitation request"
// @Success 201 {object} resdto.RequestInvitationResponse
// @Failure 402 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /invitations [post]
func (h *InvitationHandler) RequestInvitation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RequestInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.invitationCommands.RequestInvitation(c.Request.Context(), req.BookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, commands.ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Insufficient wallet balance",
			})
		case errors.Is(err, commands.ErrTierNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Skill tier not allowed for this booking",
			})
		case errors.Is(err, commands.ErrDuplicateInvitation):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Invitation already requested",
			})
		case errors.Is(err, commands.ErrAlreadyParticipant):
			c.JSON(http.StatusConflict, gin.H{
				"error": "User already participates in this booking",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RequestInvitationResponse{InvitationID: result.InvitationID})
}

// @Summary Accept invitation
// @Description Seat the invited user and charge their wallet
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invitation ID"
// @Success 204
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /invitations/{id}/accept [post]
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid invitation ID",
		})
		return
	}

	if err := h.invitationCommands.AcceptInvitation(c.Request.Context(), invitationID); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvitationNotFound),
			errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invitation not found",
			})
		case errors.Is(err, commands.ErrNoSeatsAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No open seats left; invitation voided",
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

	c.Status(http.StatusNoContent)
}

// @Summary Reject invitation
// @Description Delete the invitation; idempotent
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invitation ID"
// @Success 204
// @Router /invitations/{id} [delete]
func (h *InvitationHandler) RejectInvitation(c *gin.Context) {
	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid invitation ID",
		})
		return
	}

	if err := h.invitationCommands.RejectInvitation(c.Request.Context(), invitationID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List pending invitations
// @Description List join requests against the user's own bookings
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PendingInvitationResponse
// @Router /invitations/pending [get]
func (h *InvitationHandler) GetPendingInvitations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.invitationQueries.ListPendingForCreator(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	out := make([]*resdto.PendingInvitationResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromPendingInvitationView(v)
	}
	c.JSON(http.StatusOK, out)
}
