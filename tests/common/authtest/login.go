//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"padelbook/internal/handler/dto/request"
	"padelbook/tests/common/dbtest"
	"padelbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, dni, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{DNI: dni, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.NotEmpty(t, body.Token, "Token missing from login response")

	return body.Token
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, dni, tier string, balanceCents int64) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, dni, tier, balanceCents)
	return LoginUser(t, router, dni, "password123")
}
