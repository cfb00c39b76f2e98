package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAdminSecret(t *testing.T) {
	hash, err := HashSecret("xingu")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "stored secret must be a bcrypt hash")

	assert.True(t, VerifyAdminSecret("xingu", hash))
	assert.True(t, VerifyAdminSecret("XINGU", hash), "gate comparison is case-insensitive")
	assert.True(t, VerifyAdminSecret("  xingu  ", hash))
	assert.False(t, VerifyAdminSecret("errado", hash))
	assert.False(t, VerifyAdminSecret("", hash))
	assert.False(t, VerifyAdminSecret("xingu", ""))
}
