package utils

import (
	"halo-service/internal/pkg/constvars"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	otp, err := GenerateOTP(constvars.OTPLength)
	require.NoError(t, err)
	assert.Len(t, otp, constvars.OTPLength)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9', "otp should contain digits only")
	}
}

func TestSessionJWTRoundTrip(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "secret", 1)
	require.NoError(t, err)

	sessionID, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err, "token signed with another secret should be rejected")

	expired, err := GenerateSessionJWT("session-1", "secret", -1)
	require.NoError(t, err)
	_, err = ParseJWT(expired, "secret")
	assert.Error(t, err, "expired token should be rejected")
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("secret2", hash))
}

func TestGenerateObjectName(t *testing.T) {
	name := GenerateObjectName(constvars.ProfilePictureObjectDir, "user-1", "Me.PNG")
	assert.True(t, strings.HasPrefix(name, "profile-pictures/user-1/"))
	assert.True(t, strings.HasSuffix(name, ".png"))
}

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()
	assert.True(t, strings.HasPrefix(first, constvars.REQUEST_ID_PREFIX))
	assert.NotEqual(t, first, second)
}
