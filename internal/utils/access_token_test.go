package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessToken_SignAndDecodeRoundTrip(t *testing.T) {
	t.Setenv("SECRET_JWT", "a-very-secret-test-key")

	util := NewAccessTokenUtil()

	token, err := util.SignToken("66f0c0ffee0000000000aaaa", "user@example.com", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := util.DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "66f0c0ffee0000000000aaaa", claims.UserId)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestAccessToken_ExpiredTokenIsRejected(t *testing.T) {
	t.Setenv("SECRET_JWT", "a-very-secret-test-key")

	util := NewAccessTokenUtil()

	token, err := util.SignToken("66f0c0ffee0000000000aaaa", "user@example.com", -time.Hour)
	assert.NoError(t, err)

	_, err = util.DecodeToken(token)
	assert.Error(t, err)
}

func TestAccessToken_WrongSecretIsRejected(t *testing.T) {
	t.Setenv("SECRET_JWT", "a-very-secret-test-key")
	util := NewAccessTokenUtil()

	token, err := util.SignToken("66f0c0ffee0000000000aaaa", "user@example.com", time.Hour)
	assert.NoError(t, err)

	t.Setenv("SECRET_JWT", "a-different-key")
	_, err = util.DecodeToken(token)
	assert.Error(t, err)
}

func TestAccessToken_GarbageIsRejected(t *testing.T) {
	t.Setenv("SECRET_JWT", "a-very-secret-test-key")

	_, err := NewAccessTokenUtil().DecodeToken("not-a-token")
	assert.Error(t, err)
}
