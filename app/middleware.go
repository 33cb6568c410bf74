package app

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/auxroom/auxroom-api/auth"
	"github.com/auxroom/auxroom-api/config"
	"github.com/auxroom/auxroom-api/util"
)

type middleware func(next http.Handler) http.Handler

var allMiddleware []middleware = []middleware{
	authMW,
	contentMW,
	timeoutMW,
	logMW,
	corsMW,
}

func withMiddleware(handler http.Handler) http.Handler {
	for _, mw := range allMiddleware {
		handler = mw(handler)
	}

	return handler
}

// authMW places a bearer access token on the request context when one is
// present. Handlers that need Spotify decide for themselves whether its
// absence is an error.
func authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqToken := r.Header.Get("Authorization")
		splitToken := strings.Split(reqToken, "Bearer ")
		if len(splitToken) < 2 {
			next.ServeHTTP(w, r)
			return
		}
		reqToken = splitToken[1]

		if r.URL.Path != "/health" {
			util.EnqueueRequestLog(util.LogEntry{
				Timestamp:  time.Now(),
				Method:     r.Method,
				Endpoint:   r.RequestURI,
				RemoteAddr: r.RemoteAddr,
			})
		}
		ctx := context.WithValue(r.Context(), auth.TokenContextKey, reqToken)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func contentMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
		} else if r.URL.Path == "/ws" {
			// the upgrade handshake must not have headers written first
			next.ServeHTTP(w, r)
		} else {
			w.Header().Set("Content-Type", "application/json")
			next.ServeHTTP(w, r)
		}
	})
}

func corsMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", config.GetFrontendURL())
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, *")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

func logMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			log.Printf("%s - %s (%s)", r.Method, r.URL.Path, r.RemoteAddr)
		}

		next.ServeHTTP(w, r)
	})
}

func timeoutMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ws" {
			// websocket connections outlive any sane request deadline
			next.ServeHTTP(w, r)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), time.Second*30)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
