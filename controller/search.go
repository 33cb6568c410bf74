package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/auxroom/auxroom-api/auth"
	"github.com/auxroom/auxroom-api/constants"
	"github.com/auxroom/auxroom-api/requests"
	"github.com/auxroom/auxroom-api/service"
)

var (
	SearchMissingError, _ = json.MarshalIndent(requests.ErrorResponse{
		Error: constants.ErrorMissingQuery,
	}, "", " ")
)

// SearchCatalog proxies a catalog search on the caller's own access token.
func (c *Controller) SearchCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accessToken, ok := ctx.Value(auth.TokenContextKey).(string)
	if !ok {
		requests.RespondAuthError(w)
		return
	}

	term := r.URL.Query().Get("q")
	if term == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(SearchMissingError)
		return
	}

	types := r.URL.Query().Get("type")
	if types == "" {
		types = "track,artist,album,playlist"
	}
	limit := intQueryParam(r, "limit", 20)
	offset := intQueryParam(r, "offset", 0)

	spClient := service.ClientFromToken(ctx, accessToken)
	results, err := service.Search(ctx, spClient, term, types, limit, offset)
	if err != nil {
		log.Printf("catalog search: %s", err)
		requests.RespondInternalError(w)
		return
	}

	json.NewEncoder(w).Encode(results)
}
