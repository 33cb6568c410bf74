package auth

import (
	"sync"
	"time"

	"github.com/auxroom/auxroom-api/config"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
)

type ContextKey string

// TokenContextKey carries the caller's Spotify access token through the
// request context once the middleware has extracted it.
const TokenContextKey ContextKey = "spotify_token"

// SpotifyScopes is everything the web client needs for playback, profile,
// and listening-history data.
var SpotifyScopes = []string{
	spotifyauth.ScopeUserReadPrivate,
	spotifyauth.ScopeUserReadEmail,
	spotifyauth.ScopeUserReadRecentlyPlayed,
	spotifyauth.ScopeUserTopRead,
	spotifyauth.ScopeUserReadPlaybackState,
	spotifyauth.ScopeUserModifyPlaybackState,
	spotifyauth.ScopeStreaming,
	spotifyauth.ScopeUserReadCurrentlyPlaying,
}

// NewAuthenticator builds the Spotify authenticator from the service config.
func NewAuthenticator() *spotifyauth.Authenticator {
	return spotifyauth.New(
		spotifyauth.WithClientID(config.GetSpotifyClientID()),
		spotifyauth.WithClientSecret(config.GetSpotifyClientSecret()),
		spotifyauth.WithRedirectURL(config.GetSpotifyRedirect()),
		spotifyauth.WithScopes(SpotifyScopes...),
	)
}

// loginState ties an OAuth state value to the PKCE verifier minted with it.
type loginState struct {
	verifier string
	created  time.Time
}

const loginStateTTL = 10 * time.Minute

var (
	loginStates     = map[string]loginState{}
	loginStatesLock sync.Mutex
)

// StoreLoginState remembers the verifier for a pending OAuth round trip.
// Stale entries from abandoned logins are pruned on the way in.
func StoreLoginState(state, verifier string) {
	loginStatesLock.Lock()
	defer loginStatesLock.Unlock()

	for s, ls := range loginStates {
		if time.Since(ls.created) > loginStateTTL {
			delete(loginStates, s)
		}
	}
	loginStates[state] = loginState{verifier: verifier, created: time.Now()}
}

// TakeLoginState consumes the verifier for state. Each state is single-use.
func TakeLoginState(state string) (string, bool) {
	loginStatesLock.Lock()
	defer loginStatesLock.Unlock()

	ls, ok := loginStates[state]
	if !ok {
		return "", false
	}
	delete(loginStates, state)
	if time.Since(ls.created) > loginStateTTL {
		return "", false
	}
	return ls.verifier, true
}
