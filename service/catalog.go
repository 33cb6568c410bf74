package service

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"
)

func GetTrack(ctx context.Context, spClient *spotify.Client, id string) (*TrackData, error) {
	track, err := spClient.GetTrack(ctx, spotify.ID(id))
	if err != nil {
		return nil, fmt.Errorf("get track: %w", err)
	}
	data := TrackDataFromFullTrack(*track)
	return &data, nil
}

func GetArtist(ctx context.Context, spClient *spotify.Client, id string) (*ArtistData, error) {
	artist, err := spClient.GetArtist(ctx, spotify.ID(id))
	if err != nil {
		return nil, fmt.Errorf("get artist: %w", err)
	}
	data := ArtistDataFromFullArtist(*artist)
	return &data, nil
}
