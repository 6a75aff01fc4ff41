package api

import (
	"errors"
	"net/http"

	"padelbook/internal/domain/wallet"
	reqdto "padelbook/internal/handler/dto/request"
	resdto "padelbook/internal/handler/dto/response"
	"padelbook/internal/handler/middleware"
	"padelbook/internal/usecase/commands"
	"padelbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletCommands commands.WalletCommands
	userQueries    queries.UserQueries
}

func NewWalletHandler(walletCommands commands.WalletCommands, userQueries queries.UserQueries) *WalletHandler {
	return &WalletHandler{
		walletCommands: walletCommands,
		userQueries:    userQueries,
	}
}

// @Summary Adjust wallet
// @Description Apply a signed top-up or withdrawal to the wallet
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AdjustWalletRequest true "Signed euro amount"
// @Success 200 {object} resdto.WalletBalanceResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wallet [post]
func (h *WalletHandler) AdjustWallet(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AdjustWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	deltaCents, err := req.ToCents()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Amount must have at most two decimals",
		})
		return
	}

	result, err := h.walletCommands.AdjustWallet(c.Request.Context(), userID, deltaCents)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, commands.ErrInsufficientFunds), errors.Is(err, wallet.ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Insufficient wallet balance",
			})
		case errors.Is(err, commands.ErrBalanceCapExceeded), errors.Is(err, wallet.ErrBalanceCapExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Balance cannot exceed 999.99",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.WalletBalanceResponse{BalanceCents: result.BalanceCents})
}

// @Summary Wallet history
// @Description List the user's ledger entries, newest first
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.WalletEntryResponse
// @Router /wallet/history [get]
func (h *WalletHandler) GetWalletHistory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.userQueries.WalletHistory(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	out := make([]*resdto.WalletEntryResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromWalletEntryView(v)
	}
	c.JSON(http.StatusOK, out)
}
