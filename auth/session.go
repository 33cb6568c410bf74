package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/auxroom/auxroom-api/config"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName holds the signed refresh token between visits.
const SessionCookieName = "aux_session"

const sessionLifetime = 365 * 24 * time.Hour

// NewSessionCookie wraps the Spotify refresh token in a signed http-only
// cookie. The browser never sees the raw refresh token.
func NewSessionCookie(refreshToken string) (*http.Cookie, error) {
	now := time.Now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"refresh_token": refreshToken,
		"iat":           now.Unix(),
		"exp":           now.Add(sessionLifetime).Unix(),
	}).SignedString(config.GetSigningSecret())
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(sessionLifetime.Seconds()),
		HttpOnly: true,
		Secure:   config.GetIsProd(),
		SameSite: http.SameSiteNoneMode,
	}, nil
}

// RefreshTokenFromRequest reads the session cookie and returns the refresh
// token inside it.
func RefreshTokenFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", err
	}
	return parseSessionToken(cookie.Value)
}

func parseSessionToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return config.GetSigningSecret(), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}
	refreshToken, ok := claims["refresh_token"].(string)
	if !ok {
		return "", fmt.Errorf("invalid session token")
	}
	return refreshToken, nil
}

// ClearedSessionCookie expires the session cookie immediately.
func ClearedSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   config.GetIsProd(),
		SameSite: http.SameSiteNoneMode,
	}
}
