package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *jwtService {
	return &jwtService{secretKey: "test-secret", issuer: "FOODFORALL"}
}

func TestGenerateAndValidateUserToken(t *testing.T) {
	service := newTestService()

	token := service.GenerateTokenUser("user-123", "donor")
	require.NotEmpty(t, token)

	userID, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, "donor", role)
}

func TestValidateUserTokenRejectsGarbage(t *testing.T) {
	service := newTestService()

	_, _, err := service.GetUserIDByToken("not-a-token")
	assert.Error(t, err)
}

func TestForgetPasswordTokenRoundTrip(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateTokenForgetPassword(map[string]any{
		"user_id": "user-123",
		"purpose": "reset_password",
	}, 10*time.Minute)
	require.NoError(t, err)

	claims, err := service.ValidateTokenForgetPassword(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "reset_password", claims["purpose"])
}

func TestForgetPasswordTokenExpired(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateTokenForgetPassword(map[string]any{
		"user_id": "user-123",
	}, -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateTokenForgetPassword(token)
	assert.Error(t, err)
}
