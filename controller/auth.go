package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/auxroom/auxroom-api/auth"
	"github.com/auxroom/auxroom-api/config"
	"github.com/auxroom/auxroom-api/requests"
	"github.com/google/uuid"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
)

type LoginURLResponse struct {
	AuthURL string `json:"authUrl"`
	State   string `json:"state"`
}

// GetSpotifyLoginURL starts the PKCE flow: mints a state and verifier,
// remembers the pair, and hands the client the authorize URL.
func (c *Controller) GetSpotifyLoginURL(w http.ResponseWriter, r *http.Request) {
	state := uuid.New().String()
	verifier := oauth2.GenerateVerifier()
	auth.StoreLoginState(state, verifier)

	authenticator := auth.NewAuthenticator()
	authURL := authenticator.AuthURL(state, oauth2.S256ChallengeOption(verifier))

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(LoginURLResponse{AuthURL: authURL, State: state})
}

// SpotifyAuthCallback finishes the round trip: validates state, exchanges
// code plus verifier for tokens, stores the refresh token in the session
// cookie, and bounces the browser back to the frontend. Failures redirect
// with an error query instead of surfacing a bare error page.
func (c *Controller) SpotifyAuthCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	if spotifyError := query.Get("error"); spotifyError != "" {
		log.Printf("spotify error: %s", spotifyError)
		redirectWithError(w, r, spotifyError)
		return
	}

	state := query.Get("state")
	if state == "" || query.Get("code") == "" {
		log.Printf("missing code or state in spotify callback")
		redirectWithError(w, r, "missing_params")
		return
	}

	verifier, ok := auth.TakeLoginState(state)
	if !ok {
		log.Printf("unknown spotify state")
		redirectWithError(w, r, "invalid_state")
		return
	}

	authenticator := auth.NewAuthenticator()
	token, err := authenticator.Token(ctx, state, r, oauth2.VerifierOption(verifier))
	if err != nil {
		log.Printf("get spotify token: %s", err)
		redirectWithError(w, r, "token_exchange_failed")
		return
	}

	cookie, err := auth.NewSessionCookie(token.RefreshToken)
	if err != nil {
		log.Printf("sign session cookie: %s", err)
		redirectWithError(w, r, "session_failed")
		return
	}
	http.SetCookie(w, cookie)

	redirect := config.GetFrontendURL() + "/auth/callback" +
		"?access_token=" + url.QueryEscape(token.AccessToken) +
		"&expires_in=" + strconv.Itoa(expiresIn(token))
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// RefreshToken trades the session cookie's refresh token for a fresh access
// token.
func (c *Controller) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := auth.RefreshTokenFromRequest(r)
	if err != nil {
		requests.RespondAuthError(w)
		return
	}

	conf := &oauth2.Config{
		ClientID:     config.GetSpotifyClientID(),
		ClientSecret: config.GetSpotifyClientSecret(),
		Endpoint: oauth2.Endpoint{
			AuthURL:  spotifyauth.AuthURL,
			TokenURL: spotifyauth.TokenURL,
		},
	}
	token, err := conf.TokenSource(r.Context(), &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		log.Printf("refresh spotify token: %s", err)
		requests.RespondAuthError(w)
		return
	}

	// Spotify rotates refresh tokens under PKCE; keep the cookie current.
	if token.RefreshToken != "" && token.RefreshToken != refreshToken {
		if cookie, err := auth.NewSessionCookie(token.RefreshToken); err == nil {
			http.SetCookie(w, cookie)
		}
	}

	json.NewEncoder(w).Encode(RefreshResponse{
		AccessToken: token.AccessToken,
		ExpiresIn:   expiresIn(token),
	})
}

func (c *Controller) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, auth.ClearedSessionCookie())
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out successfully"})
}

func redirectWithError(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, config.GetFrontendURL()+"/?error="+url.QueryEscape(message), http.StatusSeeOther)
}

func expiresIn(token *oauth2.Token) int {
	if token.Expiry.IsZero() {
		return 3600
	}
	return int(time.Until(token.Expiry).Seconds())
}
