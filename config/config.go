package config

import (
	"encoding/base64"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	spotifyClientID     string
	spotifyClientSecret string
	spotifyRedirectURL  string

	frontendURL   string
	signingSecret []byte
	env           string
	roomGrace     time.Duration
}

var (
	config Config
)

func init() {
	signingSecret, err := base64.StdEncoding.DecodeString(os.Getenv("SIGNING_SECRET"))
	if err != nil {
		panic("can't decode signing secret")
	}
	config = Config{
		spotifyClientID:     os.Getenv("SPOTIFY_ID"),
		spotifyClientSecret: os.Getenv("SPOTIFY_SECRET"),
		spotifyRedirectURL:  os.Getenv("SPOTIFY_REDIRECT"),

		frontendURL:   os.Getenv("FRONTEND_URL"),
		signingSecret: signingSecret,
		env:           os.Getenv("ENV"),
	}
	if config.env == "" {
		config.env = "LOCAL"
	}
	if config.frontendURL == "" {
		config.frontendURL = "http://localhost:5173"
	}
	config.roomGrace = 60 * time.Second
	if raw := os.Getenv("ROOM_GRACE_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			config.roomGrace = time.Duration(secs) * time.Second
		}
	}
}

func GetSpotifyClientID() string {
	return config.spotifyClientID
}

func GetSpotifyClientSecret() string {
	return config.spotifyClientSecret
}

func GetSpotifyRedirect() string {
	return config.spotifyRedirectURL
}

// GetFrontendURL returns the first configured frontend origin. Redirects
// back to the client always target this one.
func GetFrontendURL() string {
	parts := strings.Split(config.frontendURL, ",")
	return strings.TrimSpace(parts[0])
}

func GetSigningSecret() []byte {
	return config.signingSecret
}

// GetRoomGrace is how long an empty room survives before reclamation.
func GetRoomGrace() time.Duration {
	return config.roomGrace
}

func GetIsProd() bool {
	return strings.ToUpper(config.env) == "PROD"
}
