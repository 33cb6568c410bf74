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

func (c *Controller) GetTrack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accessToken, ok := ctx.Value(auth.TokenContextKey).(string)
	if !ok {
		requests.RespondAuthError(w)
		return
	}

	spClient := service.ClientFromToken(ctx, accessToken)
	track, err := service.GetTrack(ctx, spClient, mux.Vars(r)["id"])
	if err != nil {
		log.Printf("get track: %s", err)
		requests.RespondInternalError(w)
		return
	}

	json.NewEncoder(w).Encode(track)
}

func (c *Controller) GetArtist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accessToken, ok := ctx.Value(auth.TokenContextKey).(string)
	if !ok {
		requests.RespondAuthError(w)
		return
	}

	spClient := service.ClientFromToken(ctx, accessToken)
	artist, err := service.GetArtist(ctx, spClient, mux.Vars(r)["id"])
	if err != nil {
		log.Printf("get artist: %s", err)
		requests.RespondInternalError(w)
		return
	}

	json.NewEncoder(w).Encode(artist)
}
