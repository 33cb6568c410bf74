package service

import (
	"context"

	"github.com/auxroom/auxroom-api/auth"
	"github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"
)

// ClientFromToken wraps a caller-supplied access token in a Spotify client.
// The service keeps no user store; every catalog call runs on the caller's
// own token.
func ClientFromToken(ctx context.Context, accessToken string) *spotify.Client {
	token := &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}
	return spotify.New(auth.NewAuthenticator().Client(ctx, token))
}
