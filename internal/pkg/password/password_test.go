package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("supersecret")
	require.NoError(t, err)
	require.NotEqual(t, "supersecret", hash)

	require.True(t, Verify("supersecret", hash))
	require.False(t, Verify("wrong", hash))
	require.False(t, Verify("supersecret", "not-a-hash"))
}

func TestValidate(t *testing.T) {
	require.True(t, Validate("12345678"))
	require.False(t, Validate("1234567"))
	require.False(t, Validate(""))
}
