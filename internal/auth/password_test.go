package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", hash)

	require.NoError(t, CheckPassword(hash, "secret"))
	require.Error(t, CheckPassword(hash, "wrong"))
}
