package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCookieRoundTrip(t *testing.T) {
	cookie, err := NewSessionCookie("spotify-refresh-token")
	require.NoError(t, err)
	assert.True(t, cookie.HttpOnly)

	r := httptest.NewRequest("POST", "/auth/refresh", nil)
	r.AddCookie(cookie)

	refreshToken, err := RefreshTokenFromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "spotify-refresh-token", refreshToken)
}

func TestSessionCookieMissing(t *testing.T) {
	r := httptest.NewRequest("POST", "/auth/refresh", nil)

	_, err := RefreshTokenFromRequest(r)
	assert.Error(t, err)
}

func TestSessionCookieTampered(t *testing.T) {
	cookie, err := NewSessionCookie("spotify-refresh-token")
	require.NoError(t, err)
	cookie.Value += "x"

	r := httptest.NewRequest("POST", "/auth/refresh", nil)
	r.AddCookie(cookie)

	_, err = RefreshTokenFromRequest(r)
	assert.Error(t, err)
}

func TestLoginStateSingleUse(t *testing.T) {
	StoreLoginState("state-1", "verifier-1")

	verifier, ok := TakeLoginState("state-1")
	require.True(t, ok)
	assert.Equal(t, "verifier-1", verifier)

	_, ok = TakeLoginState("state-1")
	assert.False(t, ok)

	_, ok = TakeLoginState("never-stored")
	assert.False(t, ok)
}
