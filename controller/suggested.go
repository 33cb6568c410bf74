package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/auxroom/auxroom-api/auth"
	"github.com/auxroom/auxroom-api/requests"
	"github.com/auxroom/auxroom-api/service"
)

// SuggestedTracks proxies seeded recommendations with optional audio-feature
// targets.
func (c *Controller) SuggestedTracks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accessToken, ok := ctx.Value(auth.TokenContextKey).(string)
	if !ok {
		requests.RespondAuthError(w)
		return
	}

	seeds := service.RecommendationSeeds{
		Tracks:  splitQueryParam(r, "seed_tracks"),
		Artists: splitQueryParam(r, "seed_artists"),
		Genres:  splitQueryParam(r, "seed_genres"),
	}
	if seeds.Empty() {
		requests.RespondWithError(w, http.StatusBadRequest,
			"At least one of seed_tracks, seed_artists, or seed_genres is required")
		return
	}

	targets := service.RecommendationTargets{
		Energy:       floatQueryParam(r, "target_energy"),
		Valence:      floatQueryParam(r, "target_valence"),
		Danceability: floatQueryParam(r, "target_danceability"),
	}

	spClient := service.ClientFromToken(ctx, accessToken)
	tracks, err := service.GetRecommendations(ctx, spClient, seeds, targets, intQueryParam(r, "limit", 20))
	if err != nil {
		log.Printf("recommendations: %s", err)
		requests.RespondInternalError(w)
		return
	}

	json.NewEncoder(w).Encode(tracks)
}
