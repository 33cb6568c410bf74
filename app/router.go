package app

import "github.com/gorilla/mux"

func (a *App) initRouter() {
	a.Router = mux.NewRouter()

	// health
	a.Router.HandleFunc("/health", a.Controller.Health).Methods("GET", "OPTIONS")

	a.Router.HandleFunc("/ws", a.Controller.ServeWS).Methods("GET")

	a.Router.HandleFunc("/auth/login", a.Controller.GetSpotifyLoginURL).Methods("GET", "OPTIONS")
	a.Router.HandleFunc("/auth/callback", a.Controller.SpotifyAuthCallback).Methods("GET", "OPTIONS")
	a.Router.HandleFunc("/auth/refresh", a.Controller.RefreshToken).Methods("POST", "OPTIONS")
	a.Router.HandleFunc("/auth/logout", a.Controller.Logout).Methods("POST", "OPTIONS")

	a.Router.HandleFunc("/spotify/search", a.Controller.SearchCatalog).Methods("GET", "OPTIONS")
	a.Router.HandleFunc("/spotify/recommendations", a.Controller.SuggestedTracks).Methods("GET", "OPTIONS")
	a.Router.HandleFunc("/spotify/me", a.Controller.CurrentUser).Methods("GET", "OPTIONS")
	a.Router.HandleFunc("/spotify/me/top/{type}", a.Controller.UserTopItems).Methods("GET", "OPTIONS")
	a.Router.HandleFunc("/spotify/tracks/{id}", a.Controller.GetTrack).Methods("GET", "OPTIONS")
	a.Router.HandleFunc("/spotify/artists/{id}", a.Controller.GetArtist).Methods("GET", "OPTIONS")

	a.Router.HandleFunc("/version", a.Controller.GetVersion).Methods("GET", "OPTIONS")
}
