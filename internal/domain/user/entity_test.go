//go:build unit

package user_test

import (
	"testing"

	"padelbook/internal/domain/skill"
	"padelbook/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	dni, err := user.NewDNI("12345678Z")
	require.NoError(t, err)

	u := user.NewUser(dni, "Ana", "Garcia", "hashed")

	assert.NotEqual(t, [16]byte{}, [16]byte(u.ID()))
	assert.Equal(t, dni, u.DNI())
	assert.Equal(t, "Ana", u.Name())
	assert.Equal(t, "Garcia", u.Surname())
	assert.Equal(t, "hashed", u.PasswordHash())
	assert.Nil(t, u.PostalCode())

	// New accounts always start at the entry tier with an empty wallet,
	// matching the column defaults in the users table.
	assert.Equal(t, skill.TierF, u.Tier())
	assert.Equal(t, int64(0), u.Balance().Cents())
	assert.Equal(t, float64(0), u.Rating())
}
