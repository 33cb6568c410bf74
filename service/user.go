package service

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/zmb3/spotify/v2"
)

func GetUser(ctx context.Context, spClient *spotify.Client) (*SpotifyUser, error) {
	user, err := spClient.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	var userImage spotify.Image
	for i := range user.Images {
		if userImage.Height == 0 || user.Images[i].Height < userImage.Height {
			userImage = user.Images[i]
		}
	}

	return &SpotifyUser{
		ID:       user.ID,
		Display:  user.DisplayName,
		Email:    user.Email,
		ImageURL: userImage.URL,
		Product:  user.Product,
	}, nil
}

func TopTracks(ctx context.Context, spClient *spotify.Client, timeRange string, limit int) ([]TrackData, error) {
	results, err := spClient.CurrentUsersTopTracks(ctx, spotify.Timerange(parseTimeRange(timeRange)), spotify.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("top tracks: %w", err)
	}
	return lo.Map(results.Tracks, TrackDataFromFullTrackIdx), nil
}

func TopArtists(ctx context.Context, spClient *spotify.Client, timeRange string, limit int) ([]ArtistData, error) {
	results, err := spClient.CurrentUsersTopArtists(ctx, spotify.Timerange(parseTimeRange(timeRange)), spotify.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("top artists: %w", err)
	}
	return lo.Map(results.Artists, ArtistDataFromFullArtistIdx), nil
}

func parseTimeRange(timeRange string) spotify.Range {
	switch timeRange {
	case "short_term":
		return spotify.ShortTermRange
	case "long_term":
		return spotify.LongTermRange
	default:
		return spotify.MediumTermRange
	}
}
