//go:build e2e

package wallet_test

import (
	"net/http"
	"testing"

	"padelbook/internal/handler/dto/request"
	resdto "padelbook/internal/handler/dto/response"
	"padelbook/tests/common/authtest"
	"padelbook/tests/common/httptest"
	"padelbook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	walletURL  = "/api/wallet"
	historyURL = "/api/wallet/history"
)

type walletSuite struct {
	e2e.SharedSuite
}

func TestWalletSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(walletSuite))
}

func (s *walletSuite) TestAdjustWallet() {
	s.Run("top-up raises the balance and records a ledger line", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "30000001A", "B", 500)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, walletURL,
			request.AdjustWalletRequest{Amount: 10.50}, token)

		var body resdto.WalletBalanceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, int64(1550), body.BalanceCents)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL, nil, token)

		var history []resdto.WalletEntryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &history)
		require.Len(t, history, 1)
		require.Equal(t, int64(1050), history[0].AmountCents)
		require.Equal(t, "manual_adjust", history[0].Reason)
	})

	s.Run("withdrawal below zero is rejected without clamping", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "30000001A", "B", 500)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, walletURL,
			request.AdjustWalletRequest{Amount: -10.00}, token)
		httptest.AssertErrorResponse(t, w, http.StatusPaymentRequired, "Insufficient wallet balance")

		var balance int64
		err := s.DB.QueryRow(t.Context(),
			"SELECT balance_cents FROM users WHERE dni = '30000001A'").Scan(&balance)
		require.NoError(t, err)
		require.Equal(t, int64(500), balance)
	})

	s.Run("top-up past the cap is rejected without clamping", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "30000001A", "B", 99900)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, walletURL,
			request.AdjustWalletRequest{Amount: 1.00}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Balance cannot exceed 999.99")

		var balance int64
		err := s.DB.QueryRow(t.Context(),
			"SELECT balance_cents FROM users WHERE dni = '30000001A'").Scan(&balance)
		require.NoError(t, err)
		require.Equal(t, int64(99900), balance)
	})

	s.Run("sub-cent amounts are rejected", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "30000001A", "B", 500)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, walletURL,
			request.AdjustWalletRequest{Amount: 0.005}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Amount must have at most two decimals")
	})
}
