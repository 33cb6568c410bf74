package service

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/zmb3/spotify/v2"
)

type RecommendationSeeds struct {
	Tracks  []string
	Artists []string
	Genres  []string
}

func (s RecommendationSeeds) Empty() bool {
	return len(s.Tracks) == 0 && len(s.Artists) == 0 && len(s.Genres) == 0
}

// RecommendationTargets are the optional audio-feature targets; nil means
// "no preference".
type RecommendationTargets struct {
	Energy       *float64
	Valence      *float64
	Danceability *float64
}

func GetRecommendations(ctx context.Context, spClient *spotify.Client, seeds RecommendationSeeds, targets RecommendationTargets, limit int) ([]TrackData, error) {
	spSeeds := spotify.Seeds{
		Tracks:  lo.Map(seeds.Tracks, toSpotifyID),
		Artists: lo.Map(seeds.Artists, toSpotifyID),
		Genres:  seeds.Genres,
	}

	attrs := spotify.NewTrackAttributes()
	if targets.Energy != nil {
		attrs = attrs.TargetEnergy(*targets.Energy)
	}
	if targets.Valence != nil {
		attrs = attrs.TargetValence(*targets.Valence)
	}
	if targets.Danceability != nil {
		attrs = attrs.TargetDanceability(*targets.Danceability)
	}

	recs, err := spClient.GetRecommendations(ctx, spSeeds, attrs, spotify.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("recommendations: %w", err)
	}
	return lo.Map(recs.Tracks, TrackDataFromSimpleTrack), nil
}

func toSpotifyID(id string, _ int) spotify.ID {
	return spotify.ID(id)
}
