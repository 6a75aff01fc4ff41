package api

import (
	"errors"
	"net/http"

	"padelbook/internal/domain/skill"
	reqdto "padelbook/internal/handler/dto/request"
	resdto "padelbook/internal/handler/dto/response"
	"padelbook/internal/handler/middleware"
	"padelbook/internal/usecase/commands"
	"padelbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userCommands commands.UserCommands
	userQueries  queries.UserQueries
}

func NewUserHandler(userCommands commands.UserCommands, userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{
		userCommands: userCommands,
		userQueries:  userQueries,
	}
}

// @Summary Get settings
// @Description Profile with freshly recomputed rating
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserSettingsResponse
// @Failure 404 {object} map[string]string
// @Router /users/me [get]
func (h *UserHandler) GetSettings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	settings, err := h.userQueries.GetSettings(c.Request.Context(), userID)
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

	c.JSON(http.StatusOK, resdto.FromUserSettingsView(settings))
}

// @Summary Update profile
// @Description Update name, surname, postal code or skill tier
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Fields to update"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/me [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if _, err := h.userCommands.UpdateProfile(c.Request.Context(), userID, req.ToPatch()); err != nil {
		switch {
		case errors.Is(err, skill.ErrInvalidTier):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid skill tier",
			})
		case errors.Is(err, commands.ErrUserNotFound):
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

	c.Status(http.StatusNoContent)
}
