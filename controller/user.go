package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/auxroom/auxroom-api/auth"
	"github.com/auxroom/auxroom-api/requests"
	"github.com/auxroom/auxroom-api/service"
	"github.com/gorilla/mux"
)

func (c *Controller) CurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accessToken, ok := ctx.Value(auth.TokenContextKey).(string)
	if !ok {
		requests.RespondAuthError(w)
		return
	}

	spClient := service.ClientFromToken(ctx, accessToken)
	user, err := service.GetUser(ctx, spClient)
	if err != nil {
		log.Printf("get spotify user: %s", err)
		requests.RespondInternalError(w)
		return
	}

	json.NewEncoder(w).Encode(user)
}

// UserTopItems serves the caller's top tracks or artists.
func (c *Controller) UserTopItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accessToken, ok := ctx.Value(auth.TokenContextKey).(string)
	if !ok {
		requests.RespondAuthError(w)
		return
	}

	itemType := mux.Vars(r)["type"]
	if itemType != "tracks" && itemType != "artists" {
		requests.RespondWithError(w, http.StatusBadRequest, `Type must be "tracks" or "artists"`)
		return
	}

	timeRange := r.URL.Query().Get("time_range")
	limit := intQueryParam(r, "limit", 20)
	spClient := service.ClientFromToken(ctx, accessToken)

	if itemType == "tracks" {
		tracks, err := service.TopTracks(ctx, spClient, timeRange, limit)
		if err != nil {
			log.Printf("top tracks: %s", err)
			requests.RespondInternalError(w)
			return
		}
		json.NewEncoder(w).Encode(tracks)
		return
	}

	artists, err := service.TopArtists(ctx, spClient, timeRange, limit)
	if err != nil {
		log.Printf("top artists: %s", err)
		requests.RespondInternalError(w)
		return
	}
	json.NewEncoder(w).Encode(artists)
}
