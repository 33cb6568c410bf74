package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auxroom/auxroom-api/auth"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithVars(r *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(r, vars)
}

func TestHealth(t *testing.T) {
	c := &Controller{}
	w := httptest.NewRecorder()

	c.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.False(t, body.Timestamp.IsZero())
}

func TestSearchRequiresToken(t *testing.T) {
	c := &Controller{}
	w := httptest.NewRecorder()

	c.SearchCatalog(w, httptest.NewRequest(http.MethodGet, "/spotify/search?q=abba", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSearchRequiresTerm(t *testing.T) {
	c := &Controller{}
	w := httptest.NewRecorder()

	r := httptest.NewRequest(http.MethodGet, "/spotify/search", nil)
	ctx := context.WithValue(r.Context(), auth.TokenContextKey, "token")
	c.SearchCatalog(w, r.WithContext(ctx))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggestedRequiresSeeds(t *testing.T) {
	c := &Controller{}
	w := httptest.NewRecorder()

	r := httptest.NewRequest(http.MethodGet, "/spotify/recommendations?target_energy=0.5", nil)
	ctx := context.WithValue(r.Context(), auth.TokenContextKey, "token")
	c.SuggestedTracks(w, r.WithContext(ctx))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserTopItemsRejectsUnknownType(t *testing.T) {
	c := &Controller{}
	w := httptest.NewRecorder()

	r := httptest.NewRequest(http.MethodGet, "/spotify/me/top/albums", nil)
	r = requestWithVars(r, map[string]string{"type": "albums"})
	ctx := context.WithValue(r.Context(), auth.TokenContextKey, "token")
	c.UserTopItems(w, r.WithContext(ctx))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryParamHelpers(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x?limit=5&bad=oops&ratio=0.25&ids=a,b,c", nil)

	assert.Equal(t, 5, intQueryParam(r, "limit", 20))
	assert.Equal(t, 20, intQueryParam(r, "bad", 20))
	assert.Equal(t, 20, intQueryParam(r, "missing", 20))

	ratio := floatQueryParam(r, "ratio")
	require.NotNil(t, ratio)
	assert.Equal(t, 0.25, *ratio)
	assert.Nil(t, floatQueryParam(r, "bad"))
	assert.Nil(t, floatQueryParam(r, "missing"))

	assert.Equal(t, []string{"a", "b", "c"}, splitQueryParam(r, "ids"))
	assert.Nil(t, splitQueryParam(r, "missing"))
}
