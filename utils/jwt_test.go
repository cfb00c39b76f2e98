package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"earec/config"
)

func TestGenerateToken_UsesConfiguredSecret(t *testing.T) {
	prev := config.AppConfig.JWTSecret
	defer func() { config.AppConfig.JWTSecret = prev }()

	config.AppConfig.JWTSecret = "segredo-de-teste"
	token, err := GenerateToken("admin", time.Hour)
	require.NoError(t, err)

	sub, err := ExtractSubjectFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)

	// A token signed under one secret must not validate under another.
	config.AppConfig.JWTSecret = "outro-segredo"
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_ExpiredRejected(t *testing.T) {
	token, err := GenerateToken("admin", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}
